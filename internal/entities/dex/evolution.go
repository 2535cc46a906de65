package dex

// Evolution triggers as named by the catalog
const (
	TriggerLevelUp = "level-up"
	TriggerTrade   = "trade"
	TriggerUseItem = "use-item"
)

// EvolutionChain is a rooted evolution tree
type EvolutionChain struct {
	ID   int
	Root *EvolutionNode
}

// EvolutionNode is one species in an evolution chain. Conditions describe how
// the parent evolves into this node; the root has none.
type EvolutionNode struct {
	Species    string
	Conditions []EvolutionCondition
	Children   []*EvolutionNode
	IsBaby     bool

	// VariantGroup is set when several concrete records share this slot,
	// e.g. regional forms of the same species.
	VariantGroup string
}

// EvolutionCondition is one way of satisfying an evolution. Every populated
// field must hold at the same time.
type EvolutionCondition struct {
	Trigger               string
	MinLevel              *int
	Item                  string
	HeldItem              string
	KnownMove             string
	KnownMoveType         string
	Location              string
	TimeOfDay             string
	Gender                *int // 1 female, 2 male
	MinHappiness          *int
	MinBeauty             *int
	MinAffection          *int
	RelativePhysicalStats *int // 1 attack > defense, -1 attack < defense, 0 equal
	TradeSpecies          string
	PartySpecies          string
	PartyType             string
	NeedsOverworldRain    bool
	TurnUpsideDown        bool
}

// IsEmpty reports whether no field beyond a plain level-up trigger is set
func (c EvolutionCondition) IsEmpty() bool {
	return (c.Trigger == "" || c.Trigger == TriggerLevelUp) &&
		c.MinLevel == nil &&
		c.Item == "" &&
		c.HeldItem == "" &&
		c.KnownMove == "" &&
		c.KnownMoveType == "" &&
		c.Location == "" &&
		c.TimeOfDay == "" &&
		c.Gender == nil &&
		c.MinHappiness == nil &&
		c.MinBeauty == nil &&
		c.MinAffection == nil &&
		c.RelativePhysicalStats == nil &&
		c.TradeSpecies == "" &&
		c.PartySpecies == "" &&
		c.PartyType == "" &&
		!c.NeedsOverworldRain &&
		!c.TurnUpsideDown
}
