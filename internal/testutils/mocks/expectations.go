// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/dex-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
)

// ExpectTypeRelations serves every relation in the table and answers NotFound
// for any other type
func ExpectTypeRelations(mockClient *catalogmock.MockClient, relations ...*dex.TypeRelation) {
	table := make(map[string]*dex.TypeRelation, len(relations))
	for _, r := range relations {
		table[r.Type] = r
	}

	mockClient.EXPECT().
		GetTypeRelation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, typeName string) (*dex.TypeRelation, error) {
			if r, ok := table[typeName]; ok {
				return r, nil
			}
			return nil, errors.CatalogNotFoundf("type %s not found", typeName)
		}).
		AnyTimes()
}

// ExpectSpeciesDetails serves the species documents by name and answers
// NotFound for any other species
func ExpectSpeciesDetails(mockClient *catalogmock.MockClient, species ...*dex.Species) {
	table := make(map[string]*dex.Species, len(species))
	for _, s := range species {
		table[s.Name] = s
	}

	mockClient.EXPECT().
		GetSpeciesDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*dex.Species, error) {
			if s, ok := table[name]; ok {
				return s, nil
			}
			return nil, errors.CatalogNotFoundf("species %s not found", name)
		}).
		AnyTimes()
}

// ExpectSpeciesLookup sets up the record, species and chain fetches a full
// lookup of record performs
func ExpectSpeciesLookup(ctx context.Context, mockClient *catalogmock.MockClient,
	record *dex.SpeciesRecord, species *dex.Species, chain *dex.EvolutionChain,
) {
	mockClient.EXPECT().
		SafeFetchSpecies(ctx, record.Name).
		Return(record, nil)

	mockClient.EXPECT().
		GetSpeciesDetails(gomock.Any(), record.SpeciesName).
		Return(species, nil).
		AnyTimes()

	mockClient.EXPECT().
		FetchEvolutionChain(ctx, species.EvolutionChainURL).
		Return(chain, nil)
}
