// Package lookup implements the species lookup orchestrator that ties the
// catalog client, evolution resolver and type chart together
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/KirkDiggler/dex-api/internal/orchestrators/lookup Service

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/dex-api/internal/clients/catalog"
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/pkg/clock"
	"github.com/KirkDiggler/dex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dex-api/internal/services/evolution"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

// Service defines the lookup operations exposed to the CLI and gRPC handlers
type Service interface {
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)

	// LookupLatest runs a lookup in the background and delivers it only if
	// no newer LookupLatest call was made meanwhile. The returned channel is
	// closed once the result has been delivered or discarded.
	LookupLatest(ctx context.Context, input *LookupInput, deliver DeliverFunc) <-chan struct{}

	GetEvolution(ctx context.Context, input *GetEvolutionInput) (*GetEvolutionOutput, error)
	GetTypeEffectiveness(ctx context.Context, input *GetTypeEffectivenessInput) (*GetTypeEffectivenessOutput, error)
	GetMove(ctx context.Context, input *GetMoveInput) (*GetMoveOutput, error)
	GetAbility(ctx context.Context, input *GetAbilityInput) (*GetAbilityOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	ListResources(ctx context.Context, input *ListResourcesInput) (*ListResourcesOutput, error)
}

// Config holds the dependencies for the lookup orchestrator
type Config struct {
	Client      catalog.Client
	Resolver    *evolution.Resolver
	Calculator  *typechart.Calculator
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	client     catalog.Client
	resolver   *evolution.Resolver
	calculator *typechart.Calculator
	idGen      idgen.Generator
	clock      clock.Clock

	latest    atomic.Uint64
	deliverMu sync.Mutex
}

// NewOrchestrator creates a new lookup orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:     cfg.Client,
		resolver:   cfg.Resolver,
		calculator: cfg.Calculator,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
	}, nil
}

func (o *orchestrator) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil || dex.NormalizeName(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	requestID := o.idGen.Generate()
	started := o.clock.Now()
	slog.InfoContext(ctx, "Looking up species",
		"request_id", requestID,
		"name", input.Name)

	record, species, err := o.fetchSpecies(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	summary, err := o.resolveEvolution(ctx, record, species)
	if err != nil {
		return nil, err
	}

	effectiveness, err := o.calculator.Compute(ctx, record.Types)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compute type effectiveness for %s", record.Name)
	}

	output := &LookupOutput{
		RequestID:     requestID,
		FetchedAt:     o.clock.Now(),
		Record:        record,
		Species:       species,
		DisplayName:   dex.FormName(species.Name, record.Name),
		Forms:         forms(species),
		Evolution:     summary,
		Effectiveness: effectiveness,
		Region:        regionInfo(record, species),
		Sprites:       spriteGallery(record.Sprites),
		Moves:         moveList(record.Moves, maxListedMoves),
		Links:         communityLinks(record.SpeciesName),
	}

	slog.InfoContext(ctx, "Species lookup complete",
		entityAttrs(record, "request_id", requestID, "elapsed", clock.Since(o.clock, started))...)
	return output, nil
}

func (o *orchestrator) LookupLatest(ctx context.Context, input *LookupInput, deliver DeliverFunc) <-chan struct{} {
	seq := o.latest.Add(1)
	done := make(chan struct{})

	go func() {
		defer close(done)

		output, err := o.Lookup(ctx, input)

		o.deliverMu.Lock()
		defer o.deliverMu.Unlock()
		if o.latest.Load() != seq {
			slog.DebugContext(ctx, "Discarding superseded lookup",
				"sequence", seq)
			return
		}
		if deliver != nil {
			deliver(output, err)
		}
	}()
	return done
}

func (o *orchestrator) GetEvolution(ctx context.Context, input *GetEvolutionInput) (*GetEvolutionOutput, error) {
	if input == nil || dex.NormalizeName(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	record, species, err := o.fetchSpecies(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	summary, err := o.resolveEvolution(ctx, record, species)
	if err != nil {
		return nil, err
	}
	return &GetEvolutionOutput{Record: record, Evolution: summary}, nil
}

func (o *orchestrator) GetTypeEffectiveness(ctx context.Context, input *GetTypeEffectivenessInput) (*GetTypeEffectivenessOutput, error) {
	if input == nil || len(input.Types) == 0 {
		return nil, errors.InvalidArgument("at least one type is required")
	}
	if len(input.Types) > 2 {
		return nil, errors.InvalidArgumentf("at most two types are allowed, got %d", len(input.Types))
	}

	effectiveness, err := o.calculator.Compute(ctx, input.Types)
	if err != nil {
		return nil, err
	}
	return &GetTypeEffectivenessOutput{Effectiveness: effectiveness}, nil
}

func (o *orchestrator) GetMove(ctx context.Context, input *GetMoveInput) (*GetMoveOutput, error) {
	if input == nil || dex.NormalizeName(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	move, err := o.client.GetMove(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get move %s", input.Name)
	}
	slog.DebugContext(ctx, "Resolved catalog entity", entityAttrs(move)...)

	return &GetMoveOutput{
		Move:     move,
		Power:    optionalInt(move.Power),
		PP:       optionalInt(move.PP),
		Accuracy: optionalInt(move.Accuracy),
		Effect:   orPlaceholder(move.Effect),
		Learners: displayNames(move.LearnedByPokemon),
	}, nil
}

func (o *orchestrator) GetAbility(ctx context.Context, input *GetAbilityInput) (*GetAbilityOutput, error) {
	if input == nil || dex.NormalizeName(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	ability, err := o.client.GetAbility(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ability %s", input.Name)
	}
	slog.DebugContext(ctx, "Resolved catalog entity", entityAttrs(ability)...)

	return &GetAbilityOutput{
		Ability: ability,
		Effect:  orPlaceholder(ability.Effect),
		Holders: displayNames(ability.Pokemon),
	}, nil
}

func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil || dex.NormalizeName(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	item, err := o.client.GetItem(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %s", input.Name)
	}
	slog.DebugContext(ctx, "Resolved catalog entity", entityAttrs(item)...)

	return &GetItemOutput{
		Item:     item,
		Category: dex.DisplayName(item.Category),
		Effect:   orPlaceholder(item.Effect),
	}, nil
}

func (o *orchestrator) ListResources(ctx context.Context, input *ListResourcesInput) (*ListResourcesOutput, error) {
	if input == nil || !input.Namespace.IsDocument() {
		return nil, errors.InvalidArgument("a document namespace is required")
	}

	list, err := o.client.ListResources(ctx, input.Namespace)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", input.Namespace)
	}

	names := make([]string, 0, len(list.Results))
	for _, r := range list.Results {
		names = append(names, r.Name)
	}
	return &ListResourcesOutput{Count: list.Count, Names: names}, nil
}

func (o *orchestrator) fetchSpecies(ctx context.Context, name string) (*dex.SpeciesRecord, *dex.Species, error) {
	record, err := o.client.SafeFetchSpecies(ctx, name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to fetch species %s", name)
	}

	species, err := o.client.GetSpeciesDetails(ctx, record.SpeciesName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to fetch species details for %s", record.SpeciesName)
	}
	return record, species, nil
}

func (o *orchestrator) resolveEvolution(ctx context.Context, record *dex.SpeciesRecord, species *dex.Species) (*EvolutionSummary, error) {
	if species.EvolutionChainURL == "" {
		return &EvolutionSummary{
			Current: record.SpeciesName,
			Text:    dex.Placeholder,
		}, nil
	}

	chain, err := o.client.FetchEvolutionChain(ctx, species.EvolutionChainURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch evolution chain for %s", species.Name)
	}

	resolution, err := o.resolver.Resolve(ctx, chain, record.SpeciesName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve evolution of %s", record.Name)
	}

	summary := &EvolutionSummary{
		Resolution: resolution,
		Current:    resolution.Current.Species,
		FellBack:   resolution.FellBack,
		Text:       evolution.Describe(resolution),
	}
	for _, b := range resolution.Branches {
		label := dex.DisplayName(b.Species)
		if b.VariantLabel != "" {
			label = dex.FormName(b.Species, b.TargetSpecies)
		}
		summary.Branches = append(summary.Branches, BranchView{
			Target:    b.TargetSpecies,
			Label:     label,
			Condition: evolution.ConditionText(b.Conditions),
		})
	}
	return summary, nil
}

func forms(species *dex.Species) []Form {
	out := make([]Form, 0, len(species.Varieties))
	for _, v := range species.Varieties {
		out = append(out, Form{
			Name:      v.Name,
			Label:     dex.FormName(species.Name, v.Name),
			IsDefault: v.IsDefault,
		})
	}
	return out
}

func regionInfo(record *dex.SpeciesRecord, species *dex.Species) RegionInfo {
	seen := make(map[string]bool, len(record.GameVersions))
	games := make([]string, 0, len(record.GameVersions))
	for _, g := range record.GameVersions {
		name := dex.DisplayName(g)
		if !seen[name] {
			seen[name] = true
			games = append(games, name)
		}
	}
	sort.Strings(games)

	pokedexes := make([]string, 0, len(species.PokedexNumbers))
	for _, p := range species.PokedexNumbers {
		pokedexes = append(pokedexes, dex.DisplayName(p.Pokedex))
	}

	return RegionInfo{
		Games:      games,
		Generation: dex.DisplayName(species.Generation),
		Pokedexes:  pokedexes,
	}
}

func spriteGallery(sprites dex.Sprites) []SpriteView {
	return []SpriteView{
		{Label: "Front", URL: sprites.FrontDefault},
		{Label: "Shiny", URL: sprites.FrontShiny},
		{Label: "Female", URL: sprites.FrontFemale},
		{Label: "Shiny Female", URL: sprites.FrontShinyFemale},
	}
}

// maxListedMoves caps the learnable moves shown for a lookup
const maxListedMoves = 15

func moveList(moves []dex.MoveLearn, limit int) []MoveView {
	if len(moves) > limit {
		moves = moves[:limit]
	}

	out := make([]MoveView, 0, len(moves))
	for _, m := range moves {
		seen := make(map[string]bool)
		methods := make([]string, 0, len(m.Methods))
		for _, lm := range m.Methods {
			text := dex.DisplayName(lm.Method)
			if lm.Method == "level-up" {
				text = "Level: " + strconv.Itoa(lm.Level)
			}
			if !seen[text] {
				seen[text] = true
				methods = append(methods, text)
			}
		}
		out = append(out, MoveView{Name: m.Name, Label: dex.DisplayName(m.Name), Methods: methods})
	}
	return out
}

func communityLinks(species string) []CommunityLink {
	if species == "" {
		return nil
	}
	slug := url.PathEscape(species)
	title := url.PathEscape(strings.ReplaceAll(dex.DisplayName(species), " ", "_"))
	return []CommunityLink{
		{Site: "Bulbapedia", URL: "https://bulbapedia.bulbagarden.net/wiki/" + title + "_(Pok%C3%A9mon)"},
		{Site: "Serebii", URL: "https://www.serebii.net/pokedex-swsh/" + slug + "/"},
		{Site: "Smogon", URL: "https://www.smogon.com/dex/ss/pokemon/" + slug + "/"},
	}
}

func displayNames(slugs []string) []string {
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		out = append(out, dex.DisplayName(s))
	}
	return out
}

func optionalInt(v *int) string {
	if v == nil {
		return dex.Placeholder
	}
	return strconv.Itoa(*v)
}

func orPlaceholder(s string) string {
	if s == "" {
		return dex.Placeholder
	}
	return s
}

// entityAttrs prefixes log attributes with the type and id of a catalog entity
func entityAttrs(e core.Entity, attrs ...any) []any {
	return append([]any{"entity_type", e.GetType(), "entity_id", e.GetID()}, attrs...)
}
