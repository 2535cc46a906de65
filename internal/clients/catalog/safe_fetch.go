package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
)

// speciesResult is the outcome of one record lookup. A NotFound is carried
// as a value so the caller can move on to the next candidate.
type speciesResult struct {
	record   *dex.SpeciesRecord
	found    bool
	notFound error
}

func (c *client) trySpecies(ctx context.Context, name string) (speciesResult, error) {
	record, err := c.GetSpecies(ctx, name)
	switch {
	case err == nil:
		return speciesResult{record: record, found: true}, nil
	case errors.IsNotFound(err):
		return speciesResult{notFound: err}, nil
	default:
		return speciesResult{}, err
	}
}

// SafeFetchSpecies resolves names like "deoxys" whose species exists but has
// no record under the bare name. Varieties are tried in listed order and the
// first hit wins. When none resolves, the original NotFound is returned.
// Failures other than NotFound are returned as they occur.
func (c *client) SafeFetchSpecies(ctx context.Context, name string) (*dex.SpeciesRecord, error) {
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	first, err := c.trySpecies(ctx, slug)
	if err != nil {
		return nil, err
	}
	if first.found {
		return first.record, nil
	}

	species, err := c.GetSpeciesDetails(ctx, slug)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, first.notFound
		}
		return nil, err
	}

	for _, variety := range species.Varieties {
		if variety.Name == slug {
			continue
		}

		result, err := c.trySpecies(ctx, variety.Name)
		if err != nil {
			return nil, err
		}
		if result.found {
			slog.DebugContext(ctx, "Resolved species through variety",
				"name", slug,
				"variety", variety.Name)
			return result.record, nil
		}
	}

	return nil, first.notFound
}
