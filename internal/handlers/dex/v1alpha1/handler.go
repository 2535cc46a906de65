// Package v1alpha1 handles the dex grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	"github.com/KirkDiggler/dex-api/internal/repositories/cache"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

// CacheStatsProvider reports cache diagnostics
type CacheStatsProvider interface {
	Stats(ctx context.Context) *cache.Stats
}

// HandlerConfig holds dependencies for the dex handler
type HandlerConfig struct {
	LookupService lookup.Service
	CacheStats    CacheStatsProvider
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.LookupService == nil {
		vb.RequiredField("LookupService")
	}
	if c.CacheStats == nil {
		vb.RequiredField("CacheStats")
	}
	return vb.Build()
}

// Handler implements DexServiceServer
type Handler struct {
	lookupService lookup.Service
	cacheStats    CacheStatsProvider
}

var _ DexServiceServer = (*Handler)(nil)

// NewHandler creates a new dex handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		lookupService: cfg.LookupService,
		cacheStats:    cfg.CacheStats,
	}, nil
}

// entityRef names a catalog entity in responses
type entityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func refOf(e core.Entity) entityRef {
	return entityRef{Type: e.GetType(), ID: e.GetID()}
}

type speciesView struct {
	RequestID     string                   `json:"request_id"`
	Entity        entityRef                `json:"entity"`
	ID            int                      `json:"id"`
	Name          string                   `json:"name"`
	Species       string                   `json:"species"`
	DisplayName   string                   `json:"display_name"`
	Types         []string                 `json:"types"`
	Genus         string                   `json:"genus"`
	FlavorText    string                   `json:"flavor_text"`
	Forms         []lookup.Form            `json:"forms"`
	Evolution     *lookup.EvolutionSummary `json:"evolution"`
	Effectiveness *typechart.Effectiveness `json:"effectiveness"`
	Region        lookup.RegionInfo        `json:"region"`
	Sprites       []lookup.SpriteView      `json:"sprites"`
	Moves         []lookup.MoveView        `json:"moves"`
	Links         []lookup.CommunityLink   `json:"links"`
}

type cacheStatsView struct {
	Backend         string         `json:"backend"`
	Entries         map[string]int `json:"entries"`
	PersistFailures int            `json:"persist_failures"`
	ImageFiles      int            `json:"image_files"`
	ImageBytes      int64          `json:"image_bytes"`
}

// GetSpecies looks up a species and its evolution and type matchups
func (h *Handler) GetSpecies(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.lookupService.Lookup(ctx, &lookup.LookupInput{Name: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	view := &speciesView{
		RequestID:     output.RequestID,
		Entity:        refOf(output.Record),
		ID:            output.Record.ID,
		Name:          output.Record.Name,
		Species:       output.Record.SpeciesName,
		DisplayName:   output.DisplayName,
		Types:         output.Record.Types,
		Genus:         output.Species.Genus,
		FlavorText:    output.Species.FlavorText,
		Forms:         output.Forms,
		Evolution:     output.Evolution,
		Effectiveness: output.Effectiveness,
		Region:        output.Region,
		Sprites:       output.Sprites,
		Moves:         output.Moves,
		Links:         output.Links,
	}
	return respond(view)
}

// GetEvolution resolves the next evolution step of a species
func (h *Handler) GetEvolution(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.lookupService.GetEvolution(ctx, &lookup.GetEvolutionInput{Name: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(struct {
		Entity    entityRef                `json:"entity"`
		Name      string                   `json:"name"`
		Evolution *lookup.EvolutionSummary `json:"evolution"`
	}{
		Entity:    refOf(output.Record),
		Name:      output.Record.Name,
		Evolution: output.Evolution,
	})
}

// GetTypeEffectiveness classifies attackers against one or two defending
// types, given comma or space separated
func (h *Handler) GetTypeEffectiveness(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	types := splitTypes(req.GetValue())
	if len(types) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("at least one type is required"))
	}

	output, err := h.lookupService.GetTypeEffectiveness(ctx, &lookup.GetTypeEffectivenessInput{Types: types})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(output.Effectiveness)
}

// GetCacheStats reports cache entry counts and image usage
func (h *Handler) GetCacheStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats := h.cacheStats.Stats(ctx)

	entries := make(map[string]int, len(stats.Entries))
	for ns, n := range stats.Entries {
		entries[string(ns)] = n
	}
	return respond(&cacheStatsView{
		Backend:         stats.Backend,
		Entries:         entries,
		PersistFailures: stats.PersistFailures,
		ImageFiles:      stats.ImageFiles,
		ImageBytes:      stats.ImageBytes,
	})
}

func splitTypes(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// respond converts a view into a Struct through its JSON form
func respond(view any) (*structpb.Struct, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return out, nil
}
