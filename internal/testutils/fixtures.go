package testutils

// Catalog response fixtures, trimmed to the fields dex-api reads
const (
	PikachuRecordJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "base_experience": 112,
  "species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"},
  "types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
  "stats": [
    {"base_stat": 35, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 90, "effort": 2, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"ability": {"name": "static"}, "is_hidden": false, "slot": 1},
    {"ability": {"name": "lightning-rod"}, "is_hidden": true, "slot": 3}
  ],
  "moves": [
    {"move": {"name": "thunder-shock"}, "version_group_details": [
      {"level_learned_at": 1, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "red-blue"}}
    ]}
  ],
  "sprites": {
    "front_default": "https://example.test/sprites/25.png",
    "front_shiny": null,
    "front_female": null,
    "front_shiny_female": null,
    "other": {"official-artwork": {"front_default": "https://example.test/artwork/25.png"}}
  },
  "game_indices": [{"version": {"name": "red"}}, {"version": {"name": "blue"}}]
}`

	PikachuSpeciesJSON = `{
  "id": 25,
  "name": "pikachu",
  "varieties": [{"is_default": true, "pokemon": {"name": "pikachu"}}],
  "evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/10/"},
  "egg_groups": [{"name": "ground"}, {"name": "fairy"}],
  "generation": {"name": "generation-i"},
  "pokedex_numbers": [{"entry_number": 25, "pokedex": {"name": "national"}}],
  "genera": [{"genus": "Maus-Pokémon", "language": {"name": "de"}}, {"genus": "Mouse Pokémon", "language": {"name": "en"}}],
  "flavor_text_entries": [{"flavor_text": "When several of\nthese POKéMON\fgather, their\nelectricity could\nbuild and cause\nlightning storms.", "language": {"name": "en"}}],
  "capture_rate": 190,
  "base_happiness": 50,
  "growth_rate": {"name": "medium"},
  "is_legendary": false,
  "is_mythical": false
}`

	// RaichuSpeciesJSON has a regional variety
	RaichuSpeciesJSON = `{
  "id": 26,
  "name": "raichu",
  "varieties": [
    {"is_default": true, "pokemon": {"name": "raichu"}},
    {"is_default": false, "pokemon": {"name": "raichu-alola"}}
  ],
  "evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/10/"},
  "generation": {"name": "generation-i"},
  "base_happiness": null
}`

	// DeoxysSpeciesJSON lists only named forms; there is no bare "deoxys" record
	DeoxysSpeciesJSON = `{
  "id": 386,
  "name": "deoxys",
  "varieties": [
    {"is_default": true, "pokemon": {"name": "deoxys-normal"}},
    {"is_default": false, "pokemon": {"name": "deoxys-attack"}}
  ]
}`

	DeoxysAttackRecordJSON = `{
  "id": 10001,
  "name": "deoxys-attack",
  "species": {"name": "deoxys"},
  "types": [{"slot": 1, "type": {"name": "psychic"}}]
}`

	// PikachuChainJSON is pichu -> pikachu -> raichu
	PikachuChainJSON = `{
  "id": 10,
  "chain": {
    "is_baby": true,
    "species": {"name": "pichu"},
    "evolution_details": [],
    "evolves_to": [{
      "is_baby": false,
      "species": {"name": "pikachu"},
      "evolution_details": [{"trigger": {"name": "level-up"}, "min_happiness": 220}],
      "evolves_to": [{
        "is_baby": false,
        "species": {"name": "raichu"},
        "evolution_details": [{"trigger": {"name": "use-item"}, "item": {"name": "thunder-stone"}}],
        "evolves_to": []
      }]
    }]
  }
}`

	ElectricTypeJSON = `{
  "id": 13,
  "name": "electric",
  "damage_relations": {
    "double_damage_from": [{"name": "ground"}],
    "half_damage_from": [{"name": "flying"}, {"name": "steel"}, {"name": "electric"}],
    "no_damage_from": []
  }
}`

	ThunderboltMoveJSON = `{
  "id": 85,
  "name": "thunderbolt",
  "power": 90,
  "pp": 15,
  "accuracy": 100,
  "type": {"name": "electric"},
  "damage_class": {"name": "special"},
  "effect_entries": [{"effect": "Has a $effect_chance% chance to paralyze the target.", "short_effect": "Has a $effect_chance% chance to paralyze the target.", "language": {"name": "en"}}],
  "learned_by_pokemon": [{"name": "pikachu"}, {"name": "raichu"}]
}`
)
