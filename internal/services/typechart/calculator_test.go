package typechart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/dex-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
	"github.com/KirkDiggler/dex-api/internal/testutils/builders"
	"github.com/KirkDiggler/dex-api/internal/testutils/mocks"
)

type CalculatorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *catalogmock.MockClient
	calc       *typechart.Calculator
	ctx        context.Context
}

func (s *CalculatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = catalogmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	calc, err := typechart.New(&typechart.Config{Relations: s.mockClient})
	s.Require().NoError(err)
	s.calc = calc
}

func (s *CalculatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CalculatorTestSuite) TestNew() {
	testCases := []struct {
		name    string
		config  *typechart.Config
		wantErr bool
		errMsg  string
	}{
		{name: "success", config: &typechart.Config{Relations: s.mockClient}},
		{name: "nil config", config: nil, wantErr: true, errMsg: "config cannot be nil"},
		{name: "missing relations", config: &typechart.Config{}, wantErr: true, errMsg: "Relations: is required"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			calc, err := typechart.New(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(calc)
			} else {
				s.NoError(err)
				s.NotNil(calc)
			}
		})
	}
}

func (s *CalculatorTestSuite) TestSingleType() {
	mocks.ExpectTypeRelations(s.mockClient,
		builders.NewTypeRelationBuilder("grass").
			WeakTo("fire", "ice").
			Resists("water", "ground", "electric").
			Build())

	result, err := s.calc.Compute(s.ctx, []string{"grass"})
	s.Require().NoError(err)

	s.Equal([]string{"fire", "ice"}, result.Weak)
	s.Equal([]string{"electric", "ground", "water"}, result.Strong)
	s.Empty(result.Immune)
	s.NotContains(result.Weak, "normal")
	s.Equal(1.0, result.Multipliers["normal"])
	s.Len(result.Multipliers, len(typechart.KnownTypes))
}

func (s *CalculatorTestSuite) TestDualTypeImmunityDominates() {
	mocks.ExpectTypeRelations(s.mockClient,
		builders.NewTypeRelationBuilder("water").WeakTo("electric", "grass").Resists("fire", "water", "ice", "steel").Build(),
		builders.NewTypeRelationBuilder("ground").WeakTo("water", "grass", "ice").Resists("poison", "rock").ImmuneTo("electric").Build(),
	)

	result, err := s.calc.Compute(s.ctx, []string{"water", "ground"})
	s.Require().NoError(err)

	s.Equal([]string{"electric"}, result.Immune)
	s.NotContains(result.Weak, "electric")
	s.Equal([]string{"grass"}, result.Weak)
	s.Equal(4.0, result.Multipliers["grass"])
	// water x2 from ground and x0.5 from water cancel out
	s.NotContains(result.Weak, "water")
	s.NotContains(result.Strong, "water")
	// ice x0.5 and x2 cancel out as well
	s.Equal(1.0, result.Multipliers["ice"])
	s.Equal([]string{"fire", "poison", "rock", "steel"}, result.Strong)
}

func (s *CalculatorTestSuite) TestUnknownAttackerIsAdded() {
	mocks.ExpectTypeRelations(s.mockClient,
		builders.NewTypeRelationBuilder("normal").WeakTo("fighting").ImmuneTo("ghost").Resists("shadow").Build())

	result, err := s.calc.Compute(s.ctx, []string{"normal"})
	s.Require().NoError(err)

	s.Equal(0.5, result.Multipliers["shadow"])
	s.Contains(result.Strong, "shadow")
	s.Equal([]string{"ghost"}, result.Immune)
}

func (s *CalculatorTestSuite) TestResultsAreMemoised() {
	s.mockClient.EXPECT().
		GetTypeRelation(s.ctx, "fire").
		Return(builders.NewTypeRelationBuilder("fire").WeakTo("water").Build(), nil).
		Times(1)
	s.mockClient.EXPECT().
		GetTypeRelation(s.ctx, "flying").
		Return(builders.NewTypeRelationBuilder("flying").WeakTo("rock").ImmuneTo("ground").Build(), nil).
		Times(1)

	first, err := s.calc.Compute(s.ctx, []string{"fire", "flying"})
	s.Require().NoError(err)
	first.Weak[0] = "mutated"

	second, err := s.calc.Compute(s.ctx, []string{"Flying", "Fire"})
	s.Require().NoError(err)
	s.Equal([]string{"rock", "water"}, second.Weak)
	s.Equal([]string{"flying", "fire"}, second.Types)
	s.Equal([]string{"ground"}, second.Immune)
}

func (s *CalculatorTestSuite) TestRelationFailurePropagates() {
	s.mockClient.EXPECT().
		GetTypeRelation(s.ctx, "fire").
		Return(nil, errors.CatalogNetwork(nil, false, "unexpected status 503"))

	result, err := s.calc.Compute(s.ctx, []string{"fire"})
	s.Error(err)
	s.True(errors.IsNetwork(err))
	s.Contains(err.Error(), "failed to get relations for type fire")
	s.Nil(result)
}

func (s *CalculatorTestSuite) TestRequiresATypes() {
	_, err := s.calc.Compute(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.calc.Compute(s.ctx, []string{" ", ""})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CalculatorTestSuite) TestDuplicateTypesCountOnce() {
	mocks.ExpectTypeRelations(s.mockClient, builders.NewTypeRelationBuilder("fire").WeakTo("water").Build())

	result, err := s.calc.Compute(s.ctx, []string{"fire", "FIRE"})
	s.Require().NoError(err)
	s.Equal(2.0, result.Multipliers["water"])
}

func TestCalculatorTestSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}
