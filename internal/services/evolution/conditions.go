package evolution

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
)

const (
	// DefaultConditionText describes an evolution with no recorded requirement
	DefaultConditionText = "Level up"

	fragmentDelimiter    = ", "
	alternativeDelimiter = " or "
)

// ConditionText renders a condition list. Fields of one condition are joined
// with ", " and alternative conditions with " or ".
func ConditionText(conditions []dex.EvolutionCondition) string {
	if len(conditions) == 0 {
		return DefaultConditionText
	}

	alternatives := make([]string, 0, len(conditions))
	seen := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		text := strings.Join(fragments(c), fragmentDelimiter)
		if text == "" {
			text = DefaultConditionText
		}
		if seen[text] {
			continue
		}
		seen[text] = true
		alternatives = append(alternatives, text)
	}
	return strings.Join(alternatives, alternativeDelimiter)
}

func fragments(c dex.EvolutionCondition) []string {
	var out []string
	add := func(s string) { out = append(out, s) }

	switch c.Trigger {
	case "", dex.TriggerLevelUp:
	case dex.TriggerUseItem:
		if c.Item == "" {
			add("Use item")
		}
	case dex.TriggerTrade:
		if c.TradeSpecies != "" {
			add("Trade for " + dex.DisplayName(c.TradeSpecies))
		} else {
			add("Trade")
		}
	default:
		add(dex.DisplayName(c.Trigger))
	}

	if c.MinLevel != nil {
		add("Level: " + strconv.Itoa(*c.MinLevel))
	}
	if c.Item != "" {
		add(dex.DisplayName(c.Item))
	}
	if c.HeldItem != "" {
		add("Held: " + dex.DisplayName(c.HeldItem))
	}
	if c.KnownMove != "" {
		add("Knows " + dex.DisplayName(c.KnownMove))
	}
	if c.KnownMoveType != "" {
		add("Knows a " + dex.DisplayName(c.KnownMoveType) + " move")
	}
	if c.Location != "" {
		add("At " + dex.DisplayName(c.Location))
	}
	if c.TimeOfDay != "" {
		add(dex.DisplayName(c.TimeOfDay))
	}
	if c.Gender != nil {
		add(genderText(*c.Gender))
	}
	if c.MinHappiness != nil {
		add("Happiness: " + strconv.Itoa(*c.MinHappiness))
	}
	if c.MinBeauty != nil {
		add("Beauty: " + strconv.Itoa(*c.MinBeauty))
	}
	if c.MinAffection != nil {
		add("Affection: " + strconv.Itoa(*c.MinAffection))
	}
	if c.RelativePhysicalStats != nil {
		add(relativeStatsText(*c.RelativePhysicalStats))
	}
	if c.PartySpecies != "" {
		add("With " + dex.DisplayName(c.PartySpecies) + " in party")
	}
	if c.PartyType != "" {
		add("With a " + dex.DisplayName(c.PartyType) + " type in party")
	}
	if c.NeedsOverworldRain {
		add("Raining")
	}
	if c.TurnUpsideDown {
		add("Turn upside down")
	}
	return out
}

func genderText(gender int) string {
	switch gender {
	case 1:
		return "Female"
	case 2:
		return "Male"
	default:
		return "Gender: " + strconv.Itoa(gender)
	}
}

func relativeStatsText(v int) string {
	switch {
	case v > 0:
		return "Attack > Defense"
	case v < 0:
		return "Attack < Defense"
	default:
		return "Attack = Defense"
	}
}
