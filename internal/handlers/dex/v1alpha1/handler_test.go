package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/handlers/dex/v1alpha1"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	lookupmock "github.com/KirkDiggler/dex-api/internal/orchestrators/lookup/mock"
	"github.com/KirkDiggler/dex-api/internal/repositories/cache"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

type fakeCacheStats struct {
	mock.Mock
}

func (f *fakeCacheStats) Stats(ctx context.Context) *cache.Stats {
	args := f.Called(ctx)
	return args.Get(0).(*cache.Stats)
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLookup *lookupmock.MockService
	stats      *fakeCacheStats
	handler    *v1alpha1.Handler
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLookup = lookupmock.NewMockService(s.ctrl)
	s.stats = &fakeCacheStats{}
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LookupService: s.mockLookup,
		CacheStats:    s.stats,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.stats.AssertExpectations(s.T())
}

func pikachuOutput() *lookup.LookupOutput {
	return &lookup.LookupOutput{
		RequestID:   "lookup_1",
		Record:      &dex.SpeciesRecord{ID: 25, Name: "pikachu", SpeciesName: "pikachu", Types: []string{"electric"}},
		Species:     &dex.Species{ID: 25, Name: "pikachu", Genus: "Mouse Pokémon"},
		DisplayName: "Pikachu",
		Forms:       []lookup.Form{{Name: "pikachu", Label: "Pikachu", IsDefault: true}},
		Evolution: &lookup.EvolutionSummary{
			Current:  "pikachu",
			Branches: []lookup.BranchView{{Target: "raichu", Label: "Raichu", Condition: "Thunder Stone"}},
			Text:     "Raichu (Thunder Stone)",
		},
		Effectiveness: &typechart.Effectiveness{
			Types:       []string{"electric"},
			Weak:        []string{"ground"},
			Strong:      []string{"electric", "flying", "steel"},
			Immune:      []string{},
			Multipliers: map[string]float64{"ground": 2},
		},
		Region: lookup.RegionInfo{Games: []string{"Red"}, Generation: "Generation I"},
		Moves:  []lookup.MoveView{{Name: "thunder-shock", Label: "Thunder Shock", Methods: []string{"Level: 1"}}},
	}
}

func (s *HandlerTestSuite) TestNewHandler() {
	testCases := []struct {
		name   string
		config *v1alpha1.HandlerConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "missing lookup", config: &v1alpha1.HandlerConfig{CacheStats: &fakeCacheStats{}}, errMsg: "LookupService: is required"},
		{name: "missing stats", config: &v1alpha1.HandlerConfig{LookupService: s.mockLookup}, errMsg: "CacheStats: is required"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			handler, err := v1alpha1.NewHandler(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(handler)
		})
	}
}

func (s *HandlerTestSuite) TestGetSpecies() {
	s.mockLookup.EXPECT().
		Lookup(s.ctx, &lookup.LookupInput{Name: "Pikachu"}).
		Return(pikachuOutput(), nil)

	resp, err := s.handler.GetSpecies(s.ctx, wrapperspb.String("Pikachu"))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("Pikachu", fields["display_name"].GetStringValue())
	s.Equal(25.0, fields["id"].GetNumberValue())
	s.Equal("Mouse Pokémon", fields["genus"].GetStringValue())

	entity := fields["entity"].GetStructValue().GetFields()
	s.Equal("species", entity["type"].GetStringValue())
	s.Equal("pikachu", entity["id"].GetStringValue())
	s.Equal("Raichu (Thunder Stone)",
		fields["evolution"].GetStructValue().GetFields()["text"].GetStringValue())

	moves := fields["moves"].GetListValue().GetValues()
	s.Require().Len(moves, 1)
	s.Equal("Thunder Shock", moves[0].GetStructValue().GetFields()["label"].GetStringValue())

	weak := fields["effectiveness"].GetStructValue().GetFields()["weak"].GetListValue().GetValues()
	s.Require().Len(weak, 1)
	s.Equal("ground", weak[0].GetStringValue())
}

func (s *HandlerTestSuite) TestGetSpeciesErrors() {
	testCases := []struct {
		name     string
		value    string
		setup    func()
		wantCode codes.Code
	}{
		{
			name:     "empty name",
			value:    "  ",
			wantCode: codes.InvalidArgument,
		},
		{
			name:  "not found",
			value: "missingno",
			setup: func() {
				s.mockLookup.EXPECT().
					Lookup(gomock.Any(), gomock.Any()).
					Return(nil, errors.CatalogNotFoundf("pokemon/missingno not found"))
			},
			wantCode: codes.NotFound,
		},
		{
			name:  "catalog timeout",
			value: "pikachu",
			setup: func() {
				s.mockLookup.EXPECT().
					Lookup(gomock.Any(), gomock.Any()).
					Return(nil, errors.CatalogNetwork(context.DeadlineExceeded, true, "request timed out"))
			},
			wantCode: codes.DeadlineExceeded,
		},
		{
			name:  "decode failure",
			value: "pikachu",
			setup: func() {
				s.mockLookup.EXPECT().
					Lookup(gomock.Any(), gomock.Any()).
					Return(nil, errors.CatalogDecode(errors.Internal("bad json"), "failed to decode"))
			},
			wantCode: codes.DataLoss,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}

			resp, err := s.handler.GetSpecies(s.ctx, wrapperspb.String(tc.value))
			s.Error(err)
			s.Nil(resp)
			s.Equal(tc.wantCode, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestGetEvolution() {
	s.mockLookup.EXPECT().
		GetEvolution(s.ctx, &lookup.GetEvolutionInput{Name: "pikachu"}).
		Return(&lookup.GetEvolutionOutput{
			Record:    pikachuOutput().Record,
			Evolution: pikachuOutput().Evolution,
		}, nil)

	resp, err := s.handler.GetEvolution(s.ctx, wrapperspb.String("pikachu"))
	s.Require().NoError(err)

	s.Equal("pikachu", resp.GetFields()["entity"].GetStructValue().GetFields()["id"].GetStringValue())

	evo := resp.GetFields()["evolution"].GetStructValue().GetFields()
	s.Equal("pikachu", evo["current"].GetStringValue())
	s.False(evo["fell_back"].GetBoolValue())
	s.Len(evo["branches"].GetListValue().GetValues(), 1)
}

func (s *HandlerTestSuite) TestGetTypeEffectivenessSplitsTypes() {
	s.mockLookup.EXPECT().
		GetTypeEffectiveness(s.ctx, &lookup.GetTypeEffectivenessInput{Types: []string{"water", "ground"}}).
		Return(&lookup.GetTypeEffectivenessOutput{
			Effectiveness: &typechart.Effectiveness{
				Types:  []string{"water", "ground"},
				Weak:   []string{"grass"},
				Immune: []string{"electric"},
			},
		}, nil)

	resp, err := s.handler.GetTypeEffectiveness(s.ctx, wrapperspb.String("water, ground"))
	s.Require().NoError(err)

	immune := resp.GetFields()["immune"].GetListValue().GetValues()
	s.Require().Len(immune, 1)
	s.Equal("electric", immune[0].GetStringValue())

	_, err = s.handler.GetTypeEffectiveness(s.ctx, wrapperspb.String(" , "))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetCacheStats() {
	s.stats.On("Stats", s.ctx).Return(&cache.Stats{
		Backend:    "file:/tmp/cache.json",
		Entries:    map[dex.Namespace]int{dex.NamespaceSpecies: 3, dex.NamespaceType: 1},
		ImageFiles: 2,
		ImageBytes: 2048,
	}).Once()

	resp, err := s.handler.GetCacheStats(s.ctx, &emptypb.Empty{})
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("file:/tmp/cache.json", fields["backend"].GetStringValue())
	s.Equal(3.0, fields["entries"].GetStructValue().GetFields()["species"].GetNumberValue())
	s.Equal(2048.0, fields["image_bytes"].GetNumberValue())
}

func (s *HandlerTestSuite) TestServesOverGRPC() {
	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterDexServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(listener) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockLookup.EXPECT().
		Lookup(gomock.Any(), &lookup.LookupInput{Name: "pikachu"}).
		Return(pikachuOutput(), nil)
	s.mockLookup.EXPECT().
		Lookup(gomock.Any(), &lookup.LookupInput{Name: "missingno"}).
		Return(nil, errors.CatalogNotFoundf("pokemon/missingno not found"))

	client := v1alpha1.NewDexServiceClient(conn)

	resp, err := client.GetSpecies(s.ctx, wrapperspb.String("pikachu"))
	s.Require().NoError(err)
	s.Equal("lookup_1", resp.GetFields()["request_id"].GetStringValue())

	_, err = client.GetSpecies(s.ctx, wrapperspb.String("missingno"))
	s.Equal(codes.NotFound, status.Code(err))
}
