package catalog

// Wire shapes of catalog responses. Nullable fields are pointers; anything
// the catalog may omit decodes to its zero value.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r *namedResource) name() string {
	if r == nil {
		return ""
	}
	return r.Name
}

type pokemonResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience *int   `json:"base_experience"`
	Types          []struct {
		Slot int            `json:"slot"`
		Type *namedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int            `json:"base_stat"`
		Effort   int            `json:"effort"`
		Stat     *namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  *namedResource `json:"ability"`
		IsHidden bool           `json:"is_hidden"`
		Slot     int            `json:"slot"`
	} `json:"abilities"`
	Moves []struct {
		Move                *namedResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int            `json:"level_learned_at"`
			MoveLearnMethod *namedResource `json:"move_learn_method"`
			VersionGroup    *namedResource `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
	Sprites struct {
		FrontDefault     *string `json:"front_default"`
		FrontShiny       *string `json:"front_shiny"`
		FrontFemale      *string `json:"front_female"`
		FrontShinyFemale *string `json:"front_shiny_female"`
		Other            struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Species     *namedResource `json:"species"`
	GameIndices []struct {
		Version *namedResource `json:"version"`
	} `json:"game_indices"`
}

type speciesResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Varieties []struct {
		IsDefault bool           `json:"is_default"`
		Pokemon   *namedResource `json:"pokemon"`
	} `json:"varieties"`
	EvolutionChain *struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	EggGroups      []namedResource `json:"egg_groups"`
	Generation     *namedResource  `json:"generation"`
	PokedexNumbers []struct {
		EntryNumber int            `json:"entry_number"`
		Pokedex     *namedResource `json:"pokedex"`
	} `json:"pokedex_numbers"`
	Genera []struct {
		Genus    string         `json:"genus"`
		Language *namedResource `json:"language"`
	} `json:"genera"`
	FlavorTextEntries []struct {
		FlavorText string         `json:"flavor_text"`
		Language   *namedResource `json:"language"`
	} `json:"flavor_text_entries"`
	CaptureRate   int            `json:"capture_rate"`
	BaseHappiness *int           `json:"base_happiness"`
	GrowthRate    *namedResource `json:"growth_rate"`
	IsLegendary   bool           `json:"is_legendary"`
	IsMythical    bool           `json:"is_mythical"`
}

type evolutionChainResponse struct {
	ID    int        `json:"id"`
	Chain *chainLink `json:"chain"`
}

type chainLink struct {
	IsBaby           bool              `json:"is_baby"`
	Species          *namedResource    `json:"species"`
	EvolutionDetails []evolutionDetail `json:"evolution_details"`
	EvolvesTo        []*chainLink      `json:"evolves_to"`
}

type evolutionDetail struct {
	Trigger               *namedResource `json:"trigger"`
	MinLevel              *int           `json:"min_level"`
	Item                  *namedResource `json:"item"`
	HeldItem              *namedResource `json:"held_item"`
	KnownMove             *namedResource `json:"known_move"`
	KnownMoveType         *namedResource `json:"known_move_type"`
	Location              *namedResource `json:"location"`
	TimeOfDay             string         `json:"time_of_day"`
	Gender                *int           `json:"gender"`
	MinHappiness          *int           `json:"min_happiness"`
	MinBeauty             *int           `json:"min_beauty"`
	MinAffection          *int           `json:"min_affection"`
	RelativePhysicalStats *int           `json:"relative_physical_stats"`
	TradeSpecies          *namedResource `json:"trade_species"`
	PartySpecies          *namedResource `json:"party_species"`
	PartyType             *namedResource `json:"party_type"`
	NeedsOverworldRain    bool           `json:"needs_overworld_rain"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
}

type typeResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DamageRelations struct {
		DoubleDamageFrom []namedResource `json:"double_damage_from"`
		HalfDamageFrom   []namedResource `json:"half_damage_from"`
		NoDamageFrom     []namedResource `json:"no_damage_from"`
	} `json:"damage_relations"`
}

type effectEntry struct {
	Effect      string         `json:"effect"`
	ShortEffect string         `json:"short_effect"`
	Language    *namedResource `json:"language"`
}

type moveResponse struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Power            *int            `json:"power"`
	PP               *int            `json:"pp"`
	Accuracy         *int            `json:"accuracy"`
	Type             *namedResource  `json:"type"`
	DamageClass      *namedResource  `json:"damage_class"`
	EffectEntries    []effectEntry   `json:"effect_entries"`
	LearnedByPokemon []namedResource `json:"learned_by_pokemon"`
}

type abilityResponse struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	EffectEntries []effectEntry `json:"effect_entries"`
	Pokemon       []struct {
		Pokemon *namedResource `json:"pokemon"`
	} `json:"pokemon"`
}

type itemResponse struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Cost          int            `json:"cost"`
	Category      *namedResource `json:"category"`
	EffectEntries []effectEntry  `json:"effect_entries"`
	Sprites       struct {
		Default *string `json:"default"`
	} `json:"sprites"`
}

type resourceListResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}
