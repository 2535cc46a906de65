package lookup

import (
	"time"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/services/evolution"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

// LookupInput contains the species lookup request
type LookupInput struct {
	Name string `json:"name"`
}

// LookupOutput is everything shown for one species
type LookupOutput struct {
	RequestID     string                   `json:"request_id"`
	FetchedAt     time.Time                `json:"fetched_at"`
	Record        *dex.SpeciesRecord       `json:"record"`
	Species       *dex.Species             `json:"species"`
	DisplayName   string                   `json:"display_name"`
	Forms         []Form                   `json:"forms"`
	Evolution     *EvolutionSummary        `json:"evolution"`
	Effectiveness *typechart.Effectiveness `json:"effectiveness"`
	Region        RegionInfo               `json:"region"`
	Sprites       []SpriteView             `json:"sprites"`
	Moves         []MoveView               `json:"moves"`
	Links         []CommunityLink          `json:"links"`
}

// MoveView is a learnable move with each distinct way it is learned, e.g.
// "Level: 26" or "Machine"
type MoveView struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Methods []string `json:"methods"`
}

// CommunityLink points at a fan reference site page for the species
type CommunityLink struct {
	Site string `json:"site"`
	URL  string `json:"url"`
}

// Form is one variety of the looked up species
type Form struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	IsDefault bool   `json:"is_default"`
}

// EvolutionSummary is a resolved evolution step with its rendered text
type EvolutionSummary struct {
	Resolution *evolution.Resolution `json:"-"`
	Current    string                `json:"current"`
	FellBack   bool                  `json:"fell_back"`
	Branches   []BranchView          `json:"branches"`
	Text       string                `json:"text"`
}

// BranchView is one rendered evolution option
type BranchView struct {
	Target    string `json:"target"`
	Label     string `json:"label"`
	Condition string `json:"condition"`
}

// RegionInfo lists where the species appears
type RegionInfo struct {
	Games      []string `json:"games"`
	Generation string   `json:"generation"`
	Pokedexes  []string `json:"pokedexes"`
}

// SpriteView is one sprite slot; URL is empty when the catalog has none
type SpriteView struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// GetEvolutionInput contains the evolution request
type GetEvolutionInput struct {
	Name string `json:"name"`
}

// GetEvolutionOutput contains the resolved evolution step
type GetEvolutionOutput struct {
	Record    *dex.SpeciesRecord `json:"record"`
	Evolution *EvolutionSummary  `json:"evolution"`
}

// GetTypeEffectivenessInput contains one or two defending types
type GetTypeEffectivenessInput struct {
	Types []string `json:"types"`
}

// GetTypeEffectivenessOutput contains the classified attackers
type GetTypeEffectivenessOutput struct {
	Effectiveness *typechart.Effectiveness `json:"effectiveness"`
}

// GetMoveInput contains the move request
type GetMoveInput struct {
	Name string `json:"name"`
}

// GetMoveOutput contains a move with its optional numbers rendered
type GetMoveOutput struct {
	Move     *dex.Move `json:"move"`
	Power    string    `json:"power"`
	PP       string    `json:"pp"`
	Accuracy string    `json:"accuracy"`
	Effect   string    `json:"effect"`
	Learners []string  `json:"learners"`
}

// GetAbilityInput contains the ability request
type GetAbilityInput struct {
	Name string `json:"name"`
}

// GetAbilityOutput contains an ability and the species that can have it
type GetAbilityOutput struct {
	Ability *dex.Ability `json:"ability"`
	Effect  string       `json:"effect"`
	Holders []string     `json:"holders"`
}

// GetItemInput contains the item request
type GetItemInput struct {
	Name string `json:"name"`
}

// GetItemOutput contains an item
type GetItemOutput struct {
	Item     *dex.Item `json:"item"`
	Category string    `json:"category"`
	Effect   string    `json:"effect"`
}

// ListResourcesInput selects the namespace to list
type ListResourcesInput struct {
	Namespace dex.Namespace `json:"namespace"`
}

// ListResourcesOutput contains every name in the namespace
type ListResourcesOutput struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// DeliverFunc receives the result of an asynchronous lookup
type DeliverFunc func(*LookupOutput, error)
