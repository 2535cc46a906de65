package lookup_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/dex-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	"github.com/KirkDiggler/dex-api/internal/pkg/clock"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dex-api/internal/services/evolution"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
	"github.com/KirkDiggler/dex-api/internal/testutils/builders"
	"github.com/KirkDiggler/dex-api/internal/testutils/mocks"
)

const chainURL = "https://pokeapi.co/api/v2/evolution-chain/10/"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *catalogmock.MockClient
	orchestrator lookup.Service
	ctx          context.Context
	now          time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = catalogmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	resolver, err := evolution.New(&evolution.Config{Varieties: s.mockClient})
	s.Require().NoError(err)
	calculator, err := typechart.New(&typechart.Config{Relations: s.mockClient})
	s.Require().NoError(err)

	orchestrator, err := lookup.NewOrchestrator(&lookup.Config{
		Client:      s.mockClient,
		Resolver:    resolver,
		Calculator:  calculator,
		IDGenerator: idgen.NewSequential("lookup"),
		Clock:       &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func pikachuChain() *dex.EvolutionChain {
	return builders.NewChainBuilder("pichu").
		WithID(10).
		Baby("pichu").
		Evolve("pichu", "pikachu", dex.EvolutionCondition{
			Trigger:      dex.TriggerLevelUp,
			MinHappiness: builders.IntPtr(220),
		}).
		Evolve("pikachu", "raichu", builders.UseItem("thunder-stone")).
		Build()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := lookup.NewOrchestrator(&lookup.Config{})
	s.Error(err)
	s.Contains(err.Error(), "invalid config")
	s.Contains(err.Error(), "Client: is required")
	s.Contains(err.Error(), "Clock: is required")
}

func (s *OrchestratorTestSuite) TestLookup() {
	record := builders.NewRecordBuilder("pikachu").
		WithID(25).
		WithTypes("electric").
		WithGameVersions("red", "blue", "red").
		WithSprites(dex.Sprites{
			FrontDefault: "https://example.test/25.png",
			FrontFemale:  "https://example.test/female/25.png",
		}).
		Build()
	species := builders.NewSpeciesBuilder("pikachu").
		WithID(25).
		WithChainURL(chainURL).
		WithPokedex("national", 25).
		WithPokedex("kanto", 25).
		Build()

	mocks.ExpectSpeciesLookup(s.ctx, s.mockClient, record, species, pikachuChain())
	mocks.ExpectSpeciesDetails(s.mockClient,
		builders.NewSpeciesBuilder("raichu").WithVarieties("raichu", "raichu-alola").Build())
	mocks.ExpectTypeRelations(s.mockClient,
		builders.NewTypeRelationBuilder("electric").WeakTo("ground").Resists("flying", "steel", "electric").Build())

	output, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Name: "pikachu"})
	s.Require().NoError(err)

	s.Equal("lookup_1", output.RequestID)
	s.Equal(s.now, output.FetchedAt)
	s.Equal("Pikachu", output.DisplayName)
	s.Equal([]lookup.Form{{Name: "pikachu", Label: "Pikachu", IsDefault: true}}, output.Forms)

	s.Require().NotNil(output.Evolution)
	s.Equal("pikachu", output.Evolution.Current)
	s.False(output.Evolution.FellBack)
	s.Equal("Raichu (Thunder Stone) / Raichu (Alola) (Thunder Stone)", output.Evolution.Text)
	s.Equal([]lookup.BranchView{
		{Target: "raichu", Label: "Raichu", Condition: "Thunder Stone"},
		{Target: "raichu-alola", Label: "Raichu (Alola)", Condition: "Thunder Stone"},
	}, output.Evolution.Branches)

	s.Equal([]string{"ground"}, output.Effectiveness.Weak)
	s.Equal([]string{"electric", "flying", "steel"}, output.Effectiveness.Strong)

	s.Equal([]string{"Blue", "Red"}, output.Region.Games)
	s.Equal("Generation I", output.Region.Generation)
	s.Equal([]string{"National", "Kanto"}, output.Region.Pokedexes)

	s.Len(output.Sprites, 4)
	s.Equal(lookup.SpriteView{Label: "Female", URL: "https://example.test/female/25.png"}, output.Sprites[2])
	s.Empty(output.Sprites[1].URL)
}

func (s *OrchestratorTestSuite) TestLookupMovesAndLinks() {
	moves := []dex.MoveLearn{
		{Name: "thunder-shock", Methods: []dex.LearnMethod{
			{Method: "level-up", Level: 1, VersionGroup: "red-blue"},
			{Method: "level-up", Level: 1, VersionGroup: "yellow"},
			{Method: "level-up", Level: 5, VersionGroup: "sword-shield"},
		}},
		{Name: "thunderbolt", Methods: []dex.LearnMethod{
			{Method: "machine", VersionGroup: "red-blue"},
			{Method: "machine", VersionGroup: "yellow"},
		}},
	}
	for i := len(moves); i < 20; i++ {
		moves = append(moves, dex.MoveLearn{Name: fmt.Sprintf("move-%d", i)})
	}
	record := builders.NewRecordBuilder("mr-mime").WithTypes("psychic").WithMoves(moves...).Build()
	species := builders.NewSpeciesBuilder("mr-mime").WithChainURL("").Build()

	s.mockClient.EXPECT().SafeFetchSpecies(s.ctx, "mr-mime").Return(record, nil)
	s.mockClient.EXPECT().GetSpeciesDetails(s.ctx, "mr-mime").Return(species, nil)
	mocks.ExpectTypeRelations(s.mockClient, builders.NewTypeRelationBuilder("psychic").Build())

	output, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Name: "mr-mime"})
	s.Require().NoError(err)

	s.Require().Len(output.Moves, 15)
	s.Equal(lookup.MoveView{Name: "thunder-shock", Label: "Thunder Shock", Methods: []string{"Level: 1", "Level: 5"}},
		output.Moves[0])
	s.Equal([]string{"Machine"}, output.Moves[1].Methods)
	s.Empty(output.Moves[14].Methods)

	s.Equal([]lookup.CommunityLink{
		{Site: "Bulbapedia", URL: "https://bulbapedia.bulbagarden.net/wiki/Mr_Mime_(Pok%C3%A9mon)"},
		{Site: "Serebii", URL: "https://www.serebii.net/pokedex-swsh/mr-mime/"},
		{Site: "Smogon", URL: "https://www.smogon.com/dex/ss/pokemon/mr-mime/"},
	}, output.Links)
}

func (s *OrchestratorTestSuite) TestLookupVarietyWithoutChain() {
	record := builders.NewRecordBuilder("deoxys-attack").
		WithID(10001).
		WithSpecies("deoxys").
		WithTypes("psychic").
		Build()
	species := builders.NewSpeciesBuilder("deoxys").
		WithVarieties("deoxys-normal", "deoxys-attack").
		WithChainURL("").
		Build()

	s.mockClient.EXPECT().SafeFetchSpecies(s.ctx, "deoxys").Return(record, nil)
	s.mockClient.EXPECT().GetSpeciesDetails(s.ctx, "deoxys").Return(species, nil)
	mocks.ExpectTypeRelations(s.mockClient,
		builders.NewTypeRelationBuilder("psychic").WeakTo("bug", "ghost", "dark").Resists("fighting", "psychic").Build())

	output, err := s.orchestrator.Lookup(s.ctx, &lookup.LookupInput{Name: "deoxys"})
	s.Require().NoError(err)

	s.Equal("Deoxys (Attack)", output.DisplayName)
	s.Equal(dex.Placeholder, output.Evolution.Text)
	s.Empty(output.Evolution.Branches)
	s.Equal([]lookup.Form{
		{Name: "deoxys-normal", Label: "Deoxys (Normal)", IsDefault: true},
		{Name: "deoxys-attack", Label: "Deoxys (Attack)"},
	}, output.Forms)
	s.Empty(output.Region.Games)
}

func (s *OrchestratorTestSuite) TestLookupErrors() {
	testCases := []struct {
		name  string
		input *lookup.LookupInput
		setup func()
		check func(error) bool
	}{
		{
			name:  "missing name",
			input: &lookup.LookupInput{Name: " "},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "nil input",
			input: nil,
			check: errors.IsInvalidArgument,
		},
		{
			name:  "species not found",
			input: &lookup.LookupInput{Name: "missingno"},
			setup: func() {
				s.mockClient.EXPECT().
					SafeFetchSpecies(s.ctx, "missingno").
					Return(nil, errors.CatalogNotFoundf("pokemon/missingno not found"))
			},
			check: errors.IsNotFound,
		},
		{
			name:  "relation failure propagates",
			input: &lookup.LookupInput{Name: "pikachu"},
			setup: func() {
				record := builders.NewRecordBuilder("pikachu").WithTypes("electric").Build()
				species := builders.NewSpeciesBuilder("pikachu").WithChainURL(chainURL).Build()
				mocks.ExpectSpeciesLookup(s.ctx, s.mockClient, record, species, pikachuChain())
				mocks.ExpectSpeciesDetails(s.mockClient)
				s.mockClient.EXPECT().
					GetTypeRelation(s.ctx, "electric").
					Return(nil, errors.CatalogNetwork(nil, true, "timed out"))
			},
			check: errors.IsNetwork,
		},
		{
			name:  "chain decode failure propagates",
			input: &lookup.LookupInput{Name: "pikachu"},
			setup: func() {
				record := builders.NewRecordBuilder("pikachu").Build()
				species := builders.NewSpeciesBuilder("pikachu").WithChainURL(chainURL).Build()
				s.mockClient.EXPECT().SafeFetchSpecies(s.ctx, "pikachu").Return(record, nil)
				s.mockClient.EXPECT().GetSpeciesDetails(s.ctx, "pikachu").Return(species, nil)
				s.mockClient.EXPECT().
					FetchEvolutionChain(s.ctx, chainURL).
					Return(nil, errors.CatalogDecode(errors.Internal("bad json"), "failed to decode"))
			},
			check: errors.IsDecode,
		},
		{
			name:  "variety lookup timeout propagates",
			input: &lookup.LookupInput{Name: "pikachu"},
			setup: func() {
				record := builders.NewRecordBuilder("pikachu").WithTypes("electric").Build()
				species := builders.NewSpeciesBuilder("pikachu").WithChainURL(chainURL).Build()
				mocks.ExpectSpeciesLookup(s.ctx, s.mockClient, record, species, pikachuChain())
				s.mockClient.EXPECT().
					GetSpeciesDetails(gomock.Any(), "raichu").
					Return(nil, errors.CatalogNetwork(nil, true, "timed out"))
			},
			check: errors.IsDeadlineExceeded,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setup != nil {
				tc.setup()
			}

			output, err := s.orchestrator.Lookup(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
			s.Nil(output)
		})
	}
}

func (s *OrchestratorTestSuite) TestLookupLatestDiscardsSuperseded() {
	release := make(chan struct{})
	s.mockClient.EXPECT().
		SafeFetchSpecies(gomock.Any(), "slowpoke").
		DoAndReturn(func(context.Context, string) (*dex.SpeciesRecord, error) {
			<-release
			return nil, errors.CatalogNotFoundf("pokemon/slowpoke not found")
		})
	s.mockClient.EXPECT().
		SafeFetchSpecies(gomock.Any(), "missingno").
		Return(nil, errors.CatalogNotFoundf("pokemon/missingno not found"))

	var mu sync.Mutex
	var delivered []error
	deliver := func(_ *lookup.LookupOutput, err error) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, err)
	}

	stale := s.orchestrator.LookupLatest(s.ctx, &lookup.LookupInput{Name: "slowpoke"}, deliver)
	latest := s.orchestrator.LookupLatest(s.ctx, &lookup.LookupInput{Name: "missingno"}, deliver)

	<-latest
	close(release)
	<-stale

	mu.Lock()
	defer mu.Unlock()
	s.Require().Len(delivered, 1)
	s.Contains(delivered[0].Error(), "missingno")
}

func (s *OrchestratorTestSuite) TestLookupLatestDeliversSingleRequest() {
	s.mockClient.EXPECT().
		SafeFetchSpecies(gomock.Any(), "missingno").
		Return(nil, errors.CatalogNotFoundf("pokemon/missingno not found"))

	results := make(chan error, 1)
	done := s.orchestrator.LookupLatest(s.ctx, &lookup.LookupInput{Name: "missingno"},
		func(_ *lookup.LookupOutput, err error) { results <- err })
	<-done

	s.True(errors.IsNotFound(<-results))
}

func (s *OrchestratorTestSuite) TestGetEvolutionFallsBackToRoot() {
	record := builders.NewRecordBuilder("pikachu-gmax").WithSpecies("pikachu-gmax").Build()
	species := builders.NewSpeciesBuilder("pikachu-gmax").WithChainURL(chainURL).Build()
	mocks.ExpectSpeciesLookup(s.ctx, s.mockClient, record, species, pikachuChain())
	mocks.ExpectSpeciesDetails(s.mockClient)

	output, err := s.orchestrator.GetEvolution(s.ctx, &lookup.GetEvolutionInput{Name: "pikachu-gmax"})
	s.Require().NoError(err)

	s.True(output.Evolution.FellBack)
	s.Equal("pichu", output.Evolution.Current)
	s.Equal("Pikachu (Happiness: 220)", output.Evolution.Text)
}

func (s *OrchestratorTestSuite) TestGetTypeEffectiveness() {
	_, err := s.orchestrator.GetTypeEffectiveness(s.ctx, &lookup.GetTypeEffectivenessInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetTypeEffectiveness(s.ctx, &lookup.GetTypeEffectivenessInput{
		Types: []string{"fire", "water", "grass"},
	})
	s.True(errors.IsInvalidArgument(err))

	mocks.ExpectTypeRelations(s.mockClient,
		builders.NewTypeRelationBuilder("ghost").WeakTo("ghost", "dark").ImmuneTo("normal", "fighting").Build())

	output, err := s.orchestrator.GetTypeEffectiveness(s.ctx, &lookup.GetTypeEffectivenessInput{Types: []string{"ghost"}})
	s.Require().NoError(err)
	s.Equal([]string{"fighting", "normal"}, output.Effectiveness.Immune)
}

func (s *OrchestratorTestSuite) TestGetMove() {
	s.mockClient.EXPECT().
		GetMove(s.ctx, "swords-dance").
		Return(&dex.Move{
			ID:               14,
			Name:             "swords-dance",
			Type:             "normal",
			DamageClass:      "status",
			PP:               builders.IntPtr(20),
			LearnedByPokemon: []string{"farfetchd", "mr-mime"},
		}, nil)

	output, err := s.orchestrator.GetMove(s.ctx, &lookup.GetMoveInput{Name: "swords-dance"})
	s.Require().NoError(err)

	s.Equal(dex.Placeholder, output.Power)
	s.Equal("20", output.PP)
	s.Equal(dex.Placeholder, output.Accuracy)
	s.Equal(dex.Placeholder, output.Effect)
	s.Equal([]string{"Farfetchd", "Mr Mime"}, output.Learners)
}

func (s *OrchestratorTestSuite) TestGetAbilityAndItem() {
	s.mockClient.EXPECT().
		GetAbility(s.ctx, "static").
		Return(&dex.Ability{ID: 9, Name: "static", Effect: "Paralyzes on contact.", Pokemon: []string{"pikachu"}}, nil)
	s.mockClient.EXPECT().
		GetItem(s.ctx, "potion").
		Return(nil, errors.CatalogNotFoundf("item/potion not found"))

	ability, err := s.orchestrator.GetAbility(s.ctx, &lookup.GetAbilityInput{Name: "static"})
	s.Require().NoError(err)
	s.Equal("Paralyzes on contact.", ability.Effect)
	s.Equal([]string{"Pikachu"}, ability.Holders)

	_, err = s.orchestrator.GetItem(s.ctx, &lookup.GetItemInput{Name: "potion"})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to get item potion")
}

func (s *OrchestratorTestSuite) TestListResources() {
	s.mockClient.EXPECT().
		ListResources(s.ctx, dex.NamespaceItem).
		Return(&dex.ResourceList{Count: 2, Results: []dex.NamedResource{{Name: "potion"}, {Name: "antidote"}}}, nil)

	output, err := s.orchestrator.ListResources(s.ctx, &lookup.ListResourcesInput{Namespace: dex.NamespaceItem})
	s.Require().NoError(err)
	s.Equal(2, output.Count)
	s.Equal([]string{"potion", "antidote"}, output.Names)

	_, err = s.orchestrator.ListResources(s.ctx, &lookup.ListResourcesInput{Namespace: dex.NamespaceImage})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
