// Package idgen produces the request ids attached to lookups
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new id on every call
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// NewUUID returns ids of the form prefix_<random uuid>
func NewUUID(prefix string) Generator {
	return Func(func() string {
		return withPrefix(prefix, uuid.NewString())
	})
}

// Sequential counts up from 1 so tests can assert exact ids
type Sequential struct {
	prefix string
	n      atomic.Uint64
}

// NewSequential creates a counter whose ids look like prefix_1, prefix_2, ...
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next id
func (s *Sequential) Generate() string {
	return withPrefix(s.prefix, strconv.FormatUint(s.n.Add(1), 10))
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
