package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/orchestrators/lookup"
	"github.com/KirkDiggler/dex-api/internal/services/typechart"
)

func renderLookup(w io.Writer, out *lookup.LookupOutput) {
	record := out.Record
	fmt.Fprintf(w, "#%d %s\n", record.ID, out.DisplayName)
	if out.Species.Genus != "" {
		fmt.Fprintf(w, "  %s\n", out.Species.Genus)
	}
	fmt.Fprintf(w, "Types:      %s\n", joinDisplay(record.Types))
	fmt.Fprintf(w, "Height:     %s m\n", tenths(record.Height))
	fmt.Fprintf(w, "Weight:     %s kg\n", tenths(record.Weight))

	abilities := make([]string, 0, len(record.Abilities))
	for _, a := range record.Abilities {
		name := dex.DisplayName(a.Name)
		if a.Hidden {
			name += " (hidden)"
		}
		abilities = append(abilities, name)
	}
	fmt.Fprintf(w, "Abilities:  %s\n", orDash(strings.Join(abilities, ", ")))
	for _, st := range record.Stats {
		fmt.Fprintf(w, "  %-16s %3d\n", dex.DisplayName(st.Name), st.Base)
	}

	if len(out.Forms) > 1 {
		labels := make([]string, 0, len(out.Forms))
		for _, f := range out.Forms {
			labels = append(labels, f.Label)
		}
		fmt.Fprintf(w, "Forms:      %s\n", strings.Join(labels, ", "))
	}

	fmt.Fprintf(w, "Evolution:  %s\n", out.Evolution.Text)
	renderEffectiveness(w, out.Effectiveness)

	fmt.Fprintf(w, "Generation: %s\n", out.Region.Generation)
	fmt.Fprintf(w, "Games:      %s\n", orDash(strings.Join(out.Region.Games, ", ")))

	if len(out.Moves) > 0 {
		fmt.Fprintln(w, "Moves:")
		for _, m := range out.Moves {
			fmt.Fprintf(w, "  %-20s %s\n", m.Label, orDash(strings.Join(m.Methods, " / ")))
		}
	}
	if len(out.Links) > 0 {
		links := make([]string, 0, len(out.Links))
		for _, l := range out.Links {
			links = append(links, l.Site+": "+l.URL)
		}
		fmt.Fprintf(w, "Links:      %s\n", strings.Join(links, " | "))
	}

	if out.Species.FlavorText != "" {
		fmt.Fprintf(w, "\n%s\n", out.Species.FlavorText)
	}
}

func renderEvolution(w io.Writer, summary *lookup.EvolutionSummary) {
	if summary.FellBack {
		fmt.Fprintf(w, "Not found in its chain, showing %s\n", dex.DisplayName(summary.Current))
	}
	fmt.Fprintf(w, "%s -> %s\n", dex.DisplayName(summary.Current), summary.Text)
	for _, b := range summary.Branches {
		fmt.Fprintf(w, "  %-24s %s\n", b.Label, b.Condition)
	}
}

func renderEffectiveness(w io.Writer, e *typechart.Effectiveness) {
	fmt.Fprintf(w, "Weak to:    %s\n", withMultipliers(e.Weak, e.Multipliers))
	fmt.Fprintf(w, "Resists:    %s\n", withMultipliers(e.Strong, e.Multipliers))
	fmt.Fprintf(w, "Immune to:  %s\n", orDash(joinDisplay(e.Immune)))
}

func renderMove(w io.Writer, out *lookup.GetMoveOutput) {
	move := out.Move
	fmt.Fprintf(w, "%s (%s, %s)\n", dex.DisplayName(move.Name), dex.DisplayName(move.Type), dex.DisplayName(move.DamageClass))
	fmt.Fprintf(w, "Power: %s  PP: %s  Accuracy: %s\n", out.Power, out.PP, out.Accuracy)
	fmt.Fprintf(w, "%s\n", out.Effect)
	fmt.Fprintf(w, "Learned by %d species\n", len(out.Learners))
}

func withMultipliers(types []string, multipliers map[string]float64) string {
	if len(types) == 0 {
		return dex.Placeholder
	}
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s x%s", dex.DisplayName(t),
			strconv.FormatFloat(multipliers[t], 'g', -1, 64)))
	}
	return strings.Join(parts, ", ")
}

func joinDisplay(slugs []string) string {
	names := make([]string, 0, len(slugs))
	for _, s := range slugs {
		names = append(names, dex.DisplayName(s))
	}
	return strings.Join(names, ", ")
}

// tenths renders decimetres as metres and hectograms as kilograms
func tenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', 1, 64)
}

func orDash(s string) string {
	if s == "" {
		return dex.Placeholder
	}
	return s
}
