package builders

import (
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
)

// SpeciesBuilder builds species documents
type SpeciesBuilder struct {
	species *dex.Species
}

// NewSpeciesBuilder creates a species with a single default variety of the same name
func NewSpeciesBuilder(name string) *SpeciesBuilder {
	return &SpeciesBuilder{
		species: &dex.Species{
			ID:                1,
			Name:              name,
			Varieties:         []dex.Variety{{Name: name, IsDefault: true}},
			EvolutionChainURL: "https://pokeapi.co/api/v2/evolution-chain/1/",
			Generation:        "generation-i",
		},
	}
}

// WithID sets the species id
func (b *SpeciesBuilder) WithID(id int) *SpeciesBuilder {
	b.species.ID = id
	return b
}

// WithVarieties replaces the variety list; the first entry is the default
func (b *SpeciesBuilder) WithVarieties(names ...string) *SpeciesBuilder {
	b.species.Varieties = nil
	for i, name := range names {
		b.species.Varieties = append(b.species.Varieties, dex.Variety{Name: name, IsDefault: i == 0})
	}
	return b
}

// WithChainURL sets the evolution chain url
func (b *SpeciesBuilder) WithChainURL(url string) *SpeciesBuilder {
	b.species.EvolutionChainURL = url
	return b
}

// WithGeneration sets the generation
func (b *SpeciesBuilder) WithGeneration(generation string) *SpeciesBuilder {
	b.species.Generation = generation
	return b
}

// WithPokedex adds a pokedex entry
func (b *SpeciesBuilder) WithPokedex(pokedex string, number int) *SpeciesBuilder {
	b.species.PokedexNumbers = append(b.species.PokedexNumbers, dex.PokedexNumber{Pokedex: pokedex, Number: number})
	return b
}

// WithGenus sets the genus and flavor text
func (b *SpeciesBuilder) WithGenus(genus, flavorText string) *SpeciesBuilder {
	b.species.Genus = genus
	b.species.FlavorText = flavorText
	return b
}

// Build returns the species
func (b *SpeciesBuilder) Build() *dex.Species {
	return b.species
}

// RecordBuilder builds concrete species records
type RecordBuilder struct {
	record *dex.SpeciesRecord
}

// NewRecordBuilder creates a record whose species shares its name
func NewRecordBuilder(name string) *RecordBuilder {
	return &RecordBuilder{
		record: &dex.SpeciesRecord{
			ID:          1,
			Name:        name,
			SpeciesName: name,
			Types:       []string{"normal"},
		},
	}
}

// WithID sets the numeric id
func (b *RecordBuilder) WithID(id int) *RecordBuilder {
	b.record.ID = id
	return b
}

// WithSpecies sets the species slug, for varieties
func (b *RecordBuilder) WithSpecies(species string) *RecordBuilder {
	b.record.SpeciesName = species
	return b
}

// WithTypes sets the record types in slot order
func (b *RecordBuilder) WithTypes(types ...string) *RecordBuilder {
	b.record.Types = types
	return b
}

// WithSprites sets the sprite urls
func (b *RecordBuilder) WithSprites(sprites dex.Sprites) *RecordBuilder {
	b.record.Sprites = sprites
	return b
}

// WithGameVersions sets the games the record appears in
func (b *RecordBuilder) WithGameVersions(versions ...string) *RecordBuilder {
	b.record.GameVersions = versions
	return b
}

// WithAbilities sets the record abilities; the last one is hidden
func (b *RecordBuilder) WithAbilities(names ...string) *RecordBuilder {
	b.record.Abilities = nil
	for i, name := range names {
		b.record.Abilities = append(b.record.Abilities, dex.AbilitySlot{
			Name:   name,
			Slot:   i + 1,
			Hidden: len(names) > 1 && i == len(names)-1,
		})
	}
	return b
}

// WithMoves sets the learnable moves
func (b *RecordBuilder) WithMoves(moves ...dex.MoveLearn) *RecordBuilder {
	b.record.Moves = moves
	return b
}

// Build returns the record
func (b *RecordBuilder) Build() *dex.SpeciesRecord {
	return b.record
}
