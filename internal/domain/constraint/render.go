package constraint

import (
	"fmt"
	"strings"
)

// RenderHard renders the hard constraints as an enumerated never-include
// list with zero ambiguity, suitable for direct inclusion in a prompt.
func (s Set) RenderHard() string {
	if len(s.Hard) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("CRITICAL DIETARY REQUIREMENTS (MUST BE FOLLOWED):\n")
	for _, h := range s.Hard {
		switch h.Kind {
		case HardKindAllergen:
			fmt.Fprintf(&b, "- ALLERGEN %q: absolutely never include %s, in any form or trace\n",
				h.Tag, strings.Join(h.Forbidden, ", "))
		case HardKindReligious:
			fmt.Fprintf(&b, "- RELIGIOUS RESTRICTION %q: never include %s\n",
				h.Tag, strings.Join(h.Forbidden, ", "))
		default:
			fmt.Fprintf(&b, "- DIETARY RESTRICTION %q: never include %s\n",
				h.Tag, strings.Join(h.Forbidden, ", "))
		}
		if h.Guidance != "" {
			fmt.Fprintf(&b, "  Substitution: %s\n", h.Guidance)
		}
	}
	b.WriteString("Check all ingredients and sub-ingredients against this list. Failure to follow these restrictions could cause serious harm.")
	return b.String()
}

// RenderSoft renders the soft constraints as advisory preference text
func (s Set) RenderSoft() string {
	if len(s.Soft) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Preferences (honor when possible):\n")
	for _, soft := range s.Soft {
		switch soft.Kind {
		case SoftKindSpice:
			fmt.Fprintf(&b, "- Spice level: %s\n", soft.Description)
		case SoftKindCuisine:
			fmt.Fprintf(&b, "- Cuisine: %s\n", soft.Description)
		case SoftKindPantry:
			fmt.Fprintf(&b, "- Pantry: %s\n", soft.Description)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
