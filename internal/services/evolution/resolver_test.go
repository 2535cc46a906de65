package evolution_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/dex-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/services/evolution"
	"github.com/KirkDiggler/dex-api/internal/testutils/builders"
	"github.com/KirkDiggler/dex-api/internal/testutils/mocks"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *catalogmock.MockClient
	resolver   *evolution.Resolver
	ctx        context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = catalogmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	resolver, err := evolution.New(&evolution.Config{Varieties: s.mockClient})
	s.Require().NoError(err)
	s.resolver = resolver
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func eeveeChain() *dex.EvolutionChain {
	return builders.NewChainBuilder("eevee").
		WithID(67).
		Evolve("eevee", "vaporeon", builders.UseItem("water-stone")).
		Evolve("eevee", "jolteon", builders.UseItem("thunder-stone")).
		Evolve("eevee", "espeon", dex.EvolutionCondition{
			Trigger:      dex.TriggerLevelUp,
			MinHappiness: builders.IntPtr(160),
			TimeOfDay:    "day",
		}).
		Build()
}

func (s *ResolverTestSuite) TestNew() {
	_, err := evolution.New(nil)
	s.Error(err)
	s.Contains(err.Error(), "config cannot be nil")

	_, err = evolution.New(&evolution.Config{})
	s.Error(err)
	s.Contains(err.Error(), "Varieties: is required")
}

func (s *ResolverTestSuite) TestLocate() {
	chain := builders.NewChainBuilder("pichu").
		Evolve("pichu", "pikachu", dex.EvolutionCondition{MinHappiness: builders.IntPtr(220)}).
		Evolve("pikachu", "raichu", builders.UseItem("thunder-stone")).
		Build()

	testCases := []struct {
		name    string
		target  string
		want    string
		wantNil bool
	}{
		{name: "root", target: "pichu", want: "pichu"},
		{name: "nested leaf", target: "raichu", want: "raichu"},
		{name: "user input is normalised", target: "  PikaChu ", want: "pikachu"},
		{name: "absent species", target: "mewtwo", wantNil: true},
		{name: "empty name", target: "", wantNil: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			node := evolution.Locate(chain.Root, tc.target)
			if tc.wantNil {
				s.Nil(node)
				return
			}
			s.Require().NotNil(node)
			s.Equal(tc.want, node.Species)
		})
	}

	s.Nil(evolution.Locate(nil, "pichu"))
}

func (s *ResolverTestSuite) TestWalkVisitsInSourceOrder() {
	var visited []string
	var depths []int
	evolution.Walk(eeveeChain().Root, func(node *dex.EvolutionNode, depth int) bool {
		visited = append(visited, node.Species)
		depths = append(depths, depth)
		return true
	})

	s.Equal([]string{"eevee", "vaporeon", "jolteon", "espeon"}, visited)
	s.Equal([]int{0, 1, 1, 1}, depths)
}

func (s *ResolverTestSuite) TestResolveMissingTargetFallsBackToRoot() {
	mocks.ExpectSpeciesDetails(s.mockClient)

	resolution, err := s.resolver.Resolve(s.ctx, eeveeChain(), "mewtwo")
	s.Require().NoError(err)

	s.True(resolution.FellBack)
	s.Equal("eevee", resolution.Current.Species)
	s.Len(resolution.Branches, 3)
	s.Equal(67, resolution.ChainID)
}

func (s *ResolverTestSuite) TestResolveRequiresChain() {
	_, err := s.resolver.Resolve(s.ctx, nil, "eevee")
	s.True(errors.IsInvalidArgument(err))

	_, err = s.resolver.Resolve(s.ctx, &dex.EvolutionChain{ID: 1}, "eevee")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ResolverTestSuite) TestExpandBranchThreeVariantFamily() {
	chain := builders.NewChainBuilder("rockruff").
		Evolve("rockruff", "lycanroc", builders.LevelUp(25)).
		Build()
	mocks.ExpectSpeciesDetails(s.mockClient,
		builders.NewSpeciesBuilder("lycanroc").
			WithVarieties("lycanroc-midday", "lycanroc-midnight", "lycanroc-dusk").
			Build())

	branches, err := s.resolver.ExpandBranch(s.ctx, chain.Root)
	s.Require().NoError(err)

	s.Require().Len(branches, 3)
	s.Equal([]string{"lycanroc-midday", "lycanroc-midnight", "lycanroc-dusk"},
		[]string{branches[0].TargetSpecies, branches[1].TargetSpecies, branches[2].TargetSpecies})
	s.Equal([]string{"Midday", "Midnight", "Dusk"},
		[]string{branches[0].VariantLabel, branches[1].VariantLabel, branches[2].VariantLabel})
	for _, b := range branches {
		s.Equal("lycanroc", b.Species)
		s.Equal("lycanroc", b.VariantGroup)
		s.Equal("Level: 25", evolution.ConditionText(b.Conditions))
	}
	s.Empty(chain.Root.Children[0].VariantGroup)
}

func (s *ResolverTestSuite) TestExpandBranchKeepsSourceOrder() {
	mocks.ExpectSpeciesDetails(s.mockClient,
		builders.NewSpeciesBuilder("vaporeon").Build(),
		builders.NewSpeciesBuilder("jolteon").Build(),
		builders.NewSpeciesBuilder("espeon").Build())

	branches, err := s.resolver.ExpandBranch(s.ctx, eeveeChain().Root)
	s.Require().NoError(err)

	s.Require().Len(branches, 3)
	s.Equal("vaporeon", branches[0].TargetSpecies)
	s.Equal("jolteon", branches[1].TargetSpecies)
	s.Equal("espeon", branches[2].TargetSpecies)
	s.Empty(branches[0].VariantLabel)
}

func (s *ResolverTestSuite) TestExpandBranchMissingSpeciesDegrades() {
	chain := builders.NewChainBuilder("pikachu").
		Evolve("pikachu", "raichu", builders.UseItem("thunder-stone")).
		Build()
	s.mockClient.EXPECT().
		GetSpeciesDetails(s.ctx, "raichu").
		Return(nil, errors.CatalogNotFoundf("pokemon-species/raichu not found"))

	branches, err := s.resolver.ExpandBranch(s.ctx, chain.Root)
	s.Require().NoError(err)

	s.Require().Len(branches, 1)
	s.Equal("raichu", branches[0].TargetSpecies)
	s.Empty(branches[0].VariantLabel)
}

func (s *ResolverTestSuite) TestExpandBranchLookupFailurePropagates() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "timeout", err: errors.CatalogNetwork(nil, true, "timed out"), check: errors.IsNetwork},
		{name: "decode failure", err: errors.CatalogDecode(errors.Internal("bad json"), "failed to decode"), check: errors.IsDecode},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			chain := builders.NewChainBuilder("pikachu").
				Evolve("pikachu", "raichu", builders.UseItem("thunder-stone")).
				Build()
			s.mockClient.EXPECT().
				GetSpeciesDetails(s.ctx, "raichu").
				Return(nil, tc.err).
				Times(2)

			branches, err := s.resolver.ExpandBranch(s.ctx, chain.Root)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
			s.Nil(branches)

			resolution, err := s.resolver.Resolve(s.ctx, chain, "pikachu")
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
			s.Nil(resolution)
		})
	}
}

func (s *ResolverTestSuite) TestResolveTagsVariantGroup() {
	chain := builders.NewChainBuilder("rockruff").
		Evolve("rockruff", "lycanroc", builders.LevelUp(25)).
		Build()
	mocks.ExpectSpeciesDetails(s.mockClient,
		builders.NewSpeciesBuilder("lycanroc").
			WithVarieties("lycanroc-midday", "lycanroc-midnight").
			Build())

	resolution, err := s.resolver.Resolve(s.ctx, chain, "rockruff")
	s.Require().NoError(err)

	s.Len(resolution.Branches, 2)
	s.Equal("lycanroc", chain.Root.Children[0].VariantGroup)
}

func (s *ResolverTestSuite) TestDescribe() {
	testCases := []struct {
		name    string
		chain   *dex.EvolutionChain
		target  string
		species []*dex.Species
		want    string
	}{
		{
			name:   "final stage",
			chain:  builders.NewChainBuilder("pikachu").Evolve("pikachu", "raichu", builders.UseItem("thunder-stone")).Build(),
			target: "raichu",
			want:   "Raichu (final stage)",
		},
		{
			name:    "branches joined in source order",
			chain:   eeveeChain(),
			target:  "eevee",
			species: []*dex.Species{builders.NewSpeciesBuilder("vaporeon").Build()},
			want:    "Vaporeon (Water Stone) / Jolteon (Thunder Stone) / Espeon (Day, Happiness: 160)",
		},
		{
			name:   "regional variant family",
			chain:  builders.NewChainBuilder("pikachu").Evolve("pikachu", "raichu", builders.UseItem("thunder-stone")).Build(),
			target: "pikachu",
			species: []*dex.Species{
				builders.NewSpeciesBuilder("raichu").WithVarieties("raichu", "raichu-alola").Build(),
			},
			want: "Raichu (Thunder Stone) / Raichu (Alola) (Thunder Stone)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			mocks.ExpectSpeciesDetails(s.mockClient, tc.species...)

			resolution, err := s.resolver.Resolve(s.ctx, tc.chain, tc.target)
			s.Require().NoError(err)
			s.False(resolution.FellBack)
			s.Equal(tc.want, evolution.Describe(resolution))
		})
	}

	s.Equal(dex.Placeholder, evolution.Describe(nil))
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
