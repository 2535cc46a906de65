package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dex-api/internal/config"
	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

func TestRenderLookup(t *testing.T) {
	out := &lookup.LookupOutput{
		Record: &dex.SpeciesRecord{
			ID:        25,
			Name:      "pikachu",
			Types:     []string{"electric"},
			Height:    4,
			Weight:    60,
			Abilities: []dex.AbilitySlot{{Name: "static", Slot: 1}, {Name: "lightning-rod", Slot: 3, Hidden: true}},
		},
		Species:     &dex.Species{Name: "pikachu", Genus: "Mouse Pokémon"},
		DisplayName: "Pikachu",
		Forms:       []lookup.Form{{Name: "pikachu", Label: "Pikachu", IsDefault: true}},
		Evolution:   &lookup.EvolutionSummary{Current: "pikachu", Text: "Raichu (Thunder Stone)"},
		Effectiveness: &typechart.Effectiveness{
			Weak:        []string{"ground"},
			Strong:      []string{"steel"},
			Multipliers: map[string]float64{"ground": 2, "steel": 0.5},
		},
		Region: lookup.RegionInfo{Generation: "Generation I"},
		Moves: []lookup.MoveView{
			{Name: "thunder-shock", Label: "Thunder Shock", Methods: []string{"Level: 1", "Level: 5"}},
			{Name: "surf", Label: "Surf", Methods: []string{}},
		},
		Links: []lookup.CommunityLink{
			{Site: "Serebii", URL: "https://www.serebii.net/pokedex-swsh/pikachu/"},
			{Site: "Smogon", URL: "https://www.smogon.com/dex/ss/pokemon/pikachu/"},
		},
	}

	var buf bytes.Buffer
	renderLookup(&buf, out)
	text := buf.String()

	assert.Contains(t, text, "#25 Pikachu\n")
	assert.Contains(t, text, "Height:     0.4 m")
	assert.Contains(t, text, "Weight:     6.0 kg")
	assert.Contains(t, text, "Abilities:  Static, Lightning Rod (hidden)")
	assert.Contains(t, text, "Evolution:  Raichu (Thunder Stone)")
	assert.Contains(t, text, "Weak to:    Ground x2")
	assert.Contains(t, text, "Resists:    Steel x0.5")
	assert.Contains(t, text, "Immune to:  -")
	assert.Contains(t, text, "Games:      -")
	assert.NotContains(t, text, "Forms:")
	assert.Contains(t, text, "  Thunder Shock        Level: 1 / Level: 5\n")
	assert.Contains(t, text, "  Surf                 -\n")
	assert.Contains(t, text, "Links:      Serebii: https://www.serebii.net/pokedex-swsh/pikachu/ | Smogon: https://www.smogon.com/dex/ss/pokemon/pikachu/")
}

func TestRenderEvolutionFallback(t *testing.T) {
	var buf bytes.Buffer
	renderEvolution(&buf, &lookup.EvolutionSummary{
		Current:  "eevee",
		FellBack: true,
		Branches: []lookup.BranchView{{Target: "vaporeon", Label: "Vaporeon", Condition: "Water Stone"}},
		Text:     "Vaporeon (Water Stone)",
	})

	assert.Contains(t, buf.String(), "Not found in its chain, showing Eevee")
	assert.Contains(t, buf.String(), "Eevee -> Vaporeon (Water Stone)")
	assert.Contains(t, buf.String(), "Water Stone")
}

func TestApplyOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&cacheBackend, "cache-backend", "", "")
	cmd.Flags().StringVar(&cacheFile, "cache-file", "", "")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--cache-backend", "redis", "--log-level", "debug"}))

	c := &config.Config{CacheBackend: config.BackendFile, CacheFile: "dex_cache.json", LogLevel: "info"}
	applyOverrides(cmd, c)

	assert.Equal(t, config.BackendRedis, c.CacheBackend)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "dex_cache.json", c.CacheFile)
}
