// Package constraint converts an aggregated household snapshot into
// structured hard and soft constraints. Hard constraints must never be
// violated in output; soft constraints are advisory and never used to
// reject a recipe.
package constraint

import "strings"

// HardKind discriminates the hard constraint variants
type HardKind string

const (
	HardKindAllergen  HardKind = "allergen"
	HardKindReligious HardKind = "religious"
	HardKindDietary   HardKind = "dietary"
)

// Hard is a restriction that must never appear in generated output.
// Forbidden holds the expanded keyword list matched against ingredient
// text; Guidance carries the substitution hint surfaced on refusals.
type Hard struct {
	Kind      HardKind
	Tag       string
	Forbidden []string
	Guidance  string
}

// SoftKind discriminates the soft constraint variants
type SoftKind string

const (
	SoftKindSpice   SoftKind = "spice"
	SoftKindCuisine SoftKind = "cuisine"
	SoftKindPantry  SoftKind = "pantry"
)

// Soft is an advisory preference. It shapes the prompt but is never
// grounds for rejecting a candidate.
type Soft struct {
	Kind        SoftKind
	Description string
	Values      []string
}

// Set is the full constraint group handed to prompt construction,
// the gate and the validator.
type Set struct {
	Hard []Hard
	Soft []Soft
}

// Match is a successful hard-constraint hit against a piece of text
type Match struct {
	Constraint Hard
	Keyword    string
}

// MatchText scans free text against every hard-forbidden keyword using
// case-insensitive substring matching. Any substring hit counts: false
// positives are preferred over false negatives for hard constraints.
func (s Set) MatchText(text string) (Match, bool) {
	lower := strings.ToLower(text)
	for _, h := range s.Hard {
		for _, kw := range h.Forbidden {
			if strings.Contains(lower, kw) {
				return Match{Constraint: h, Keyword: kw}, true
			}
		}
	}
	return Match{}, false
}

// MatchAll returns every distinct hard-constraint hit in the text
func (s Set) MatchAll(text string) []Match {
	lower := strings.ToLower(text)
	var matches []Match
	for _, h := range s.Hard {
		for _, kw := range h.Forbidden {
			if strings.Contains(lower, kw) {
				matches = append(matches, Match{Constraint: h, Keyword: kw})
				break
			}
		}
	}
	return matches
}
