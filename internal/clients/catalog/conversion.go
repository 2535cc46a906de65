package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
)

// MaxChainDepth bounds evolution chain conversion. Real chains are at most
// three stages deep.
const MaxChainDepth = 64

const english = "en"

func convertRecord(wire *pokemonResponse) *dex.SpeciesRecord {
	record := &dex.SpeciesRecord{
		ID:          wire.ID,
		Name:        wire.Name,
		SpeciesName: wire.Species.name(),
		Height:      wire.Height,
		Weight:      wire.Weight,
	}
	if record.SpeciesName == "" {
		record.SpeciesName = wire.Name
	}
	if wire.BaseExperience != nil {
		record.BaseExperience = *wire.BaseExperience
	}

	types := wire.Types
	sort.SliceStable(types, func(i, j int) bool { return types[i].Slot < types[j].Slot })
	for _, t := range types {
		if name := t.Type.name(); name != "" {
			record.Types = append(record.Types, name)
		}
	}

	for _, st := range wire.Stats {
		record.Stats = append(record.Stats, dex.Stat{
			Name:   st.Stat.name(),
			Base:   st.BaseStat,
			Effort: st.Effort,
		})
	}

	for _, a := range wire.Abilities {
		record.Abilities = append(record.Abilities, dex.AbilitySlot{
			Name:   a.Ability.name(),
			Slot:   a.Slot,
			Hidden: a.IsHidden,
		})
	}

	for _, m := range wire.Moves {
		learn := dex.MoveLearn{Name: m.Move.name()}
		for _, d := range m.VersionGroupDetails {
			learn.Methods = append(learn.Methods, dex.LearnMethod{
				Method:       d.MoveLearnMethod.name(),
				Level:        d.LevelLearnedAt,
				VersionGroup: d.VersionGroup.name(),
			})
		}
		record.Moves = append(record.Moves, learn)
	}

	record.Sprites = dex.Sprites{
		FrontDefault:     deref(wire.Sprites.FrontDefault),
		FrontShiny:       deref(wire.Sprites.FrontShiny),
		FrontFemale:      deref(wire.Sprites.FrontFemale),
		FrontShinyFemale: deref(wire.Sprites.FrontShinyFemale),
		Artwork:          deref(wire.Sprites.Other.OfficialArtwork.FrontDefault),
	}

	for _, g := range wire.GameIndices {
		if name := g.Version.name(); name != "" {
			record.GameVersions = append(record.GameVersions, name)
		}
	}
	return record
}

func convertSpecies(wire *speciesResponse) *dex.Species {
	species := &dex.Species{
		ID:            wire.ID,
		Name:          wire.Name,
		Generation:    wire.Generation.name(),
		CaptureRate:   wire.CaptureRate,
		BaseHappiness: wire.BaseHappiness,
		GrowthRate:    wire.GrowthRate.name(),
		IsLegendary:   wire.IsLegendary,
		IsMythical:    wire.IsMythical,
	}
	if wire.EvolutionChain != nil {
		species.EvolutionChainURL = wire.EvolutionChain.URL
	}

	for _, v := range wire.Varieties {
		if name := v.Pokemon.name(); name != "" {
			species.Varieties = append(species.Varieties, dex.Variety{Name: name, IsDefault: v.IsDefault})
		}
	}
	for _, g := range wire.EggGroups {
		species.EggGroups = append(species.EggGroups, g.Name)
	}
	for _, p := range wire.PokedexNumbers {
		species.PokedexNumbers = append(species.PokedexNumbers, dex.PokedexNumber{
			Pokedex: p.Pokedex.name(),
			Number:  p.EntryNumber,
		})
	}
	for _, g := range wire.Genera {
		if g.Language.name() == english {
			species.Genus = g.Genus
			break
		}
	}
	for _, f := range wire.FlavorTextEntries {
		if f.Language.name() == english {
			species.FlavorText = cleanFlavorText(f.FlavorText)
			break
		}
	}
	return species
}

// cleanFlavorText collapses the form feeds and hard line breaks the catalog
// copies from game text.
func cleanFlavorText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func convertChain(ctx context.Context, wire *evolutionChainResponse) *dex.EvolutionChain {
	type frame struct {
		link  *chainLink
		node  *dex.EvolutionNode
		depth int
	}

	root := &dex.EvolutionNode{
		Species: wire.Chain.Species.name(),
		IsBaby:  wire.Chain.IsBaby,
	}
	stack := []frame{{link: wire.Chain, node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth >= MaxChainDepth {
			if len(top.link.EvolvesTo) > 0 {
				slog.WarnContext(ctx, "Evolution chain truncated",
					"chain_id", wire.ID,
					"species", top.node.Species,
					"max_depth", MaxChainDepth)
			}
			continue
		}

		for _, next := range top.link.EvolvesTo {
			if next == nil || next.Species.name() == "" {
				continue
			}
			child := &dex.EvolutionNode{
				Species:    next.Species.name(),
				IsBaby:     next.IsBaby,
				Conditions: convertConditions(next.EvolutionDetails),
			}
			top.node.Children = append(top.node.Children, child)
			stack = append(stack, frame{link: next, node: child, depth: top.depth + 1})
		}
	}

	return &dex.EvolutionChain{ID: wire.ID, Root: root}
}

func convertConditions(details []evolutionDetail) []dex.EvolutionCondition {
	if len(details) == 0 {
		return nil
	}

	conditions := make([]dex.EvolutionCondition, 0, len(details))
	for _, d := range details {
		conditions = append(conditions, dex.EvolutionCondition{
			Trigger:               d.Trigger.name(),
			MinLevel:              d.MinLevel,
			Item:                  d.Item.name(),
			HeldItem:              d.HeldItem.name(),
			KnownMove:             d.KnownMove.name(),
			KnownMoveType:         d.KnownMoveType.name(),
			Location:              d.Location.name(),
			TimeOfDay:             d.TimeOfDay,
			Gender:                d.Gender,
			MinHappiness:          d.MinHappiness,
			MinBeauty:             d.MinBeauty,
			MinAffection:          d.MinAffection,
			RelativePhysicalStats: d.RelativePhysicalStats,
			TradeSpecies:          d.TradeSpecies.name(),
			PartySpecies:          d.PartySpecies.name(),
			PartyType:             d.PartyType.name(),
			NeedsOverworldRain:    d.NeedsOverworldRain,
			TurnUpsideDown:        d.TurnUpsideDown,
		})
	}
	return conditions
}

func convertTypeRelation(slug string, wire *typeResponse) *dex.TypeRelation {
	relation := &dex.TypeRelation{Type: wire.Name}
	if relation.Type == "" {
		relation.Type = slug
	}
	relation.DoubleDamageFrom = names(wire.DamageRelations.DoubleDamageFrom)
	relation.HalfDamageFrom = names(wire.DamageRelations.HalfDamageFrom)
	relation.NoDamageFrom = names(wire.DamageRelations.NoDamageFrom)
	return relation
}

func convertMove(wire *moveResponse) *dex.Move {
	return &dex.Move{
		ID:               wire.ID,
		Name:             wire.Name,
		Type:             wire.Type.name(),
		DamageClass:      wire.DamageClass.name(),
		Power:            wire.Power,
		PP:               wire.PP,
		Accuracy:         wire.Accuracy,
		Effect:           englishEffect(wire.EffectEntries),
		LearnedByPokemon: names(wire.LearnedByPokemon),
	}
}

func convertAbility(wire *abilityResponse) *dex.Ability {
	ability := &dex.Ability{
		ID:     wire.ID,
		Name:   wire.Name,
		Effect: englishEffect(wire.EffectEntries),
	}
	for _, p := range wire.Pokemon {
		if name := p.Pokemon.name(); name != "" {
			ability.Pokemon = append(ability.Pokemon, name)
		}
	}
	return ability
}

func convertItem(wire *itemResponse) *dex.Item {
	return &dex.Item{
		ID:       wire.ID,
		Name:     wire.Name,
		Cost:     wire.Cost,
		Category: wire.Category.name(),
		Effect:   englishEffect(wire.EffectEntries),
		Sprite:   deref(wire.Sprites.Default),
	}
}

func convertResourceList(wire *resourceListResponse) *dex.ResourceList {
	list := &dex.ResourceList{Count: wire.Count}
	for _, r := range wire.Results {
		list.Results = append(list.Results, dex.NamedResource{Name: r.Name, URL: r.URL})
	}
	return list
}

// englishEffect prefers the short effect text of the English entry
func englishEffect(entries []effectEntry) string {
	for _, e := range entries {
		if e.Language.name() != english {
			continue
		}
		if e.ShortEffect != "" {
			return cleanFlavorText(e.ShortEffect)
		}
		return cleanFlavorText(e.Effect)
	}
	return ""
}

func names(resources []namedResource) []string {
	if len(resources) == 0 {
		return nil
	}
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		if r.Name != "" {
			out = append(out, r.Name)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
