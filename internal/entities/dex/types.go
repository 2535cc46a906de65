// Package dex holds the typed catalog records that the rest of dex-api works
// with. Catalog responses are parsed into these once, at the network boundary.
package dex

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Namespace partitions the cache by entity category
type Namespace string

// Cache namespaces
const (
	NamespaceSpecies Namespace = "species"
	NamespaceMove    Namespace = "move"
	NamespaceAbility Namespace = "ability"
	NamespaceItem    Namespace = "item"
	NamespaceType    Namespace = "type"
	NamespaceImage   Namespace = "image"
)

// DocumentNamespaces returns the namespaces held by the document cache, in
// the order they are written to disk. Images live in the blob cache.
func DocumentNamespaces() []Namespace {
	return []Namespace{
		NamespaceSpecies,
		NamespaceMove,
		NamespaceAbility,
		NamespaceItem,
		NamespaceType,
	}
}

// IsDocument reports whether n is one of the document cache namespaces
func (n Namespace) IsDocument() bool {
	for _, ns := range DocumentNamespaces() {
		if ns == n {
			return true
		}
	}
	return false
}

// NamedResource is the catalog's {name, url} reference shape
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SpeciesRecord is one concrete creature record (a default form or a variety)
type SpeciesRecord struct {
	ID             int
	Name           string
	SpeciesName    string
	Types          []string // ordered by slot, 1-2 entries
	Stats          []Stat
	Abilities      []AbilitySlot
	Moves          []MoveLearn
	Sprites        Sprites
	Height         int // decimetres
	Weight         int // hectograms
	BaseExperience int
	GameVersions   []string
}

// GetID returns the record slug
func (r *SpeciesRecord) GetID() string {
	return r.Name
}

// GetType returns the entity type for rpg-toolkit
func (r *SpeciesRecord) GetType() string {
	return "species"
}

// NumericID returns the catalog id as a string, used to address sprite images
func (r *SpeciesRecord) NumericID() string {
	return strconv.Itoa(r.ID)
}

var (
	_ core.Entity = (*SpeciesRecord)(nil)
	_ core.Entity = (*Move)(nil)
	_ core.Entity = (*Ability)(nil)
	_ core.Entity = (*Item)(nil)
)

// Stat is a base stat value
type Stat struct {
	Name   string
	Base   int
	Effort int
}

// AbilitySlot is an ability a record can have
type AbilitySlot struct {
	Name   string
	Slot   int
	Hidden bool
}

// MoveLearn is a learnable move and every way it is learned
type MoveLearn struct {
	Name    string
	Methods []LearnMethod
}

// LearnMethod describes how a move is learned in one version group
type LearnMethod struct {
	Method       string
	Level        int
	VersionGroup string
}

// Sprites holds sprite image URLs; any of them may be empty
type Sprites struct {
	FrontDefault     string
	FrontShiny       string
	FrontFemale      string
	FrontShinyFemale string
	Artwork          string
}

// Species is the species-level document: the shared lineage of all varieties
type Species struct {
	ID                int
	Name              string
	Varieties         []Variety
	EvolutionChainURL string
	EggGroups         []string
	Generation        string
	PokedexNumbers    []PokedexNumber
	Genus             string
	FlavorText        string
	CaptureRate       int
	BaseHappiness     *int
	GrowthRate        string
	IsLegendary       bool
	IsMythical        bool
}

// HasVariants reports whether more than one concrete record shares this species
func (s *Species) HasVariants() bool {
	return len(s.Varieties) > 1
}

// Variety is one concrete record belonging to a species
type Variety struct {
	Name      string
	IsDefault bool
}

// PokedexNumber is an entry in a regional or national pokedex
type PokedexNumber struct {
	Pokedex string
	Number  int
}

// TypeRelation lists attacking types by damage multiplier against one
// defending type
type TypeRelation struct {
	Type             string
	DoubleDamageFrom []string
	HalfDamageFrom   []string
	NoDamageFrom     []string
}

// Move is a move document
type Move struct {
	ID               int
	Name             string
	Type             string
	DamageClass      string
	Power            *int
	PP               *int
	Accuracy         *int
	Effect           string
	LearnedByPokemon []string
}

// Ability is an ability document
type Ability struct {
	ID      int
	Name    string
	Effect  string
	Pokemon []string
}

// Item is an item document
type Item struct {
	ID       int
	Name     string
	Cost     int
	Category string
	Effect   string
	Sprite   string
}

// ResourceList is a page of catalog references
type ResourceList struct {
	Count   int
	Results []NamedResource
}

// GetID returns the move slug
func (m *Move) GetID() string { return m.Name }

// GetType returns the move namespace
func (m *Move) GetType() string { return string(NamespaceMove) }

// GetID returns the ability slug
func (a *Ability) GetID() string { return a.Name }

// GetType returns the ability namespace
func (a *Ability) GetType() string { return string(NamespaceAbility) }

// GetID returns the item slug
func (i *Item) GetID() string { return i.Name }

// GetType returns the item namespace
func (i *Item) GetType() string { return string(NamespaceItem) }
