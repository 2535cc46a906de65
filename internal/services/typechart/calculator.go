// Package typechart combines per-type damage relations into the combined
// weaknesses, resistances and immunities of a one or two type creature.
package typechart

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
)

const (
	defaultExpiration = time.Hour
	cleanupInterval   = 2 * time.Hour

	multiplierDouble = 2.0
	multiplierHalf   = 0.5
	multiplierNone   = 0.0
)

// KnownTypes are the attacking types every computation starts from
var KnownTypes = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// RelationSource looks up the damage relations of a defending type
type RelationSource interface {
	GetTypeRelation(ctx context.Context, typeName string) (*dex.TypeRelation, error)
}

// Effectiveness classifies attacking types against a set of defending types.
// Attackers with a combined multiplier of exactly 1 appear in no set.
type Effectiveness struct {
	Types       []string           `json:"types"`
	Weak        []string           `json:"weak"`   // multiplier > 1
	Strong      []string           `json:"strong"` // 0 < multiplier < 1
	Immune      []string           `json:"immune"` // multiplier == 0
	Multipliers map[string]float64 `json:"multipliers"`
}

// Config contains configuration for the calculator.
type Config struct {
	Relations RelationSource
	// Expiration of memoised results (optional, defaults to one hour)
	Expiration time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Expiration == 0 {
		cfg.Expiration = defaultExpiration
	}

	vb := errors.NewValidationBuilder()
	if cfg.Relations == nil {
		vb.RequiredField("Relations")
	}
	if cfg.Expiration < 0 {
		vb.Field("Expiration", "must not be negative")
	}
	return vb.Build()
}

// Calculator computes type effectiveness
type Calculator struct {
	relations  RelationSource
	results    *cache.Cache
	expiration time.Duration
}

// New creates a calculator with the given configuration.
func New(cfg *Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		relations:  cfg.Relations,
		results:    cache.New(cfg.Expiration, cleanupInterval),
		expiration: cfg.Expiration,
	}, nil
}

// Compute multiplies the relations of every defending type together. A zero
// from any type makes the attacker an immunity regardless of the others.
// Any relation lookup failure is returned.
func (c *Calculator) Compute(ctx context.Context, types []string) (*Effectiveness, error) {
	defenders := make([]string, 0, len(types))
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		slug := dex.NormalizeName(t)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		defenders = append(defenders, slug)
	}
	if len(defenders) == 0 {
		return nil, errors.InvalidArgument("at least one type is required")
	}

	key := memoKey(defenders)
	if cached, found := c.results.Get(key); found {
		out := cached.(*Effectiveness).clone()
		out.Types = defenders
		return out, nil
	}

	multipliers := make(map[string]float64, len(KnownTypes))
	for _, attacker := range KnownTypes {
		multipliers[attacker] = 1
	}

	for _, defender := range defenders {
		relation, err := c.relations.GetTypeRelation(ctx, defender)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get relations for type %s", defender)
		}
		apply(multipliers, relation.DoubleDamageFrom, multiplierDouble)
		apply(multipliers, relation.HalfDamageFrom, multiplierHalf)
		apply(multipliers, relation.NoDamageFrom, multiplierNone)
	}

	result := classify(defenders, multipliers)
	c.results.Set(key, result, c.expiration)

	slog.DebugContext(ctx, "Computed type effectiveness",
		"types", defenders,
		"weak", len(result.Weak),
		"strong", len(result.Strong),
		"immune", len(result.Immune))
	return result.clone(), nil
}

// apply multiplies each attacker in place. Attackers missing from the known
// list are added at 1 first.
func apply(multipliers map[string]float64, attackers []string, factor float64) {
	for _, attacker := range attackers {
		current, ok := multipliers[attacker]
		if !ok {
			current = 1
		}
		multipliers[attacker] = current * factor
	}
}

func classify(defenders []string, multipliers map[string]float64) *Effectiveness {
	result := &Effectiveness{
		Types:       defenders,
		Weak:        []string{},
		Strong:      []string{},
		Immune:      []string{},
		Multipliers: multipliers,
	}
	for attacker, m := range multipliers {
		switch {
		case m == 0:
			result.Immune = append(result.Immune, attacker)
		case m > 1:
			result.Weak = append(result.Weak, attacker)
		case m < 1:
			result.Strong = append(result.Strong, attacker)
		}
	}
	sort.Strings(result.Weak)
	sort.Strings(result.Strong)
	sort.Strings(result.Immune)
	return result
}

// memoKey ignores defender order; the product is commutative
func memoKey(defenders []string) string {
	sorted := append([]string(nil), defenders...)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

func (e *Effectiveness) clone() *Effectiveness {
	out := &Effectiveness{
		Types:       append([]string(nil), e.Types...),
		Weak:        append([]string{}, e.Weak...),
		Strong:      append([]string{}, e.Strong...),
		Immune:      append([]string{}, e.Immune...),
		Multipliers: make(map[string]float64, len(e.Multipliers)),
	}
	for k, v := range e.Multipliers {
		out.Multipliers[k] = v
	}
	return out
}

// Flush drops memoised results
func (c *Calculator) Flush() {
	c.results.Flush()
}
