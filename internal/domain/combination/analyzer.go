// Package combination scores how well a set of ingredients works
// together before any recipe is generated. It is pure computation over
// fixed tables so the same input always yields the same scores.
package combination

import (
	"sort"
	"strings"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/validation"
)

// CuisineMatch is one entry in the ranked cuisine fit list.
type CuisineMatch struct {
	Cuisine string  `json:"cuisine"`
	Score   float64 `json:"score"`
}

// Result carries every score and suggestion for one ingredient set.
// SafetyIssues, when non-empty, dominates: the set is not viable for
// this household regardless of how well the ingredients pair.
type Result struct {
	BalanceScore       float64        `json:"balance_score"`
	SynergyScore       float64        `json:"synergy_score"`
	CuisineMatches     []CuisineMatch `json:"cuisine_matches"`
	MissingCategories  []string       `json:"missing_categories,omitempty"`
	SuggestedAdditions []string       `json:"suggested_additions,omitempty"`
	SafetyIssues       []string       `json:"safety_issues,omitempty"`
	IsViable           bool           `json:"is_viable"`
}

// Analyze evaluates the ingredient list against the household's hard
// constraints and the pairing tables. Safety runs first and
// short-circuits the verdict. A non-empty cuisineHint biases the
// cuisine ranking toward the caller's preference.
func Analyze(ingredients []string, cons constraint.Set, cuisineHint string) Result {
	res := Result{}

	violations := validation.ScanIngredients(ingredients, cons)
	for _, v := range violations {
		res.SafetyIssues = append(res.SafetyIssues, v.String())
	}

	stems := categorize(ingredients)

	res.BalanceScore, res.MissingCategories = balance(stems)
	res.SynergyScore = synergy(stems)
	res.CuisineMatches = rankCuisines(stems, strings.ToLower(strings.TrimSpace(cuisineHint)))
	res.SuggestedAdditions = suggest(res.MissingCategories, cons)

	res.IsViable = len(res.SafetyIssues) == 0 && res.BalanceScore >= 0.3

	return res
}

// stemInfo is one recognized ingredient with its matched stem.
type stemInfo struct {
	stem     string
	category Category
}

func categorize(ingredients []string) []stemInfo {
	var out []stemInfo
	for _, ing := range ingredients {
		lower := strings.ToLower(strings.TrimSpace(ing))
		if lower == "" {
			continue
		}
		matched := false
		for _, stem := range categoryStems {
			if strings.Contains(lower, stem) {
				out = append(out, stemInfo{stem: stem, category: ingredientCategories[stem]})
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, stemInfo{stem: lower})
		}
	}
	return out
}

// balance maps how many core categories (protein, vegetable, starch)
// are present onto a score. A single category reads as monotonous.
func balance(stems []stemInfo) (float64, []string) {
	present := map[Category]bool{}
	for _, s := range stems {
		if s.category != "" {
			present[s.category] = true
		}
	}

	coreCount := 0
	var missing []string
	for _, c := range coreCategories {
		if present[c] {
			coreCount++
		} else {
			missing = append(missing, string(c))
		}
	}

	score := map[int]float64{0: 0.15, 1: 0.35, 2: 0.65, 3: 0.9}[coreCount]
	for _, extra := range []Category{CategoryDairy, CategoryFruit, CategoryHerb} {
		if present[extra] {
			score += 0.05
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score, missing
}

// synergy starts from a neutral baseline and rewards every known
// traditional pairing in the set. Unknown combinations stay neutral
// rather than being penalized.
func synergy(stems []stemInfo) float64 {
	score := 0.5
	for i := 0; i < len(stems); i++ {
		for j := i + 1; j < len(stems); j++ {
			a, b := stems[i].stem, stems[j].stem
			if a > b {
				a, b = b, a
			}
			if bonus, ok := pairings[a+"|"+b]; ok {
				score += bonus
			}
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// rankCuisines scores each cuisine by staple coverage. The hint, when
// it names a cuisine that matched at all, gets a bonus and wins ties
// so the caller's preference surfaces first.
func rankCuisines(stems []stemInfo, hint string) []CuisineMatch {
	var matches []CuisineMatch
	for cuisine, staples := range cuisineStaples {
		hits := 0
		for _, s := range stems {
			for _, staple := range staples {
				if s.stem == staple {
					hits++
					break
				}
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(stems))
		if cuisine == hint {
			score += 0.25
			if score > 1.0 {
				score = 1.0
			}
		}
		matches = append(matches, CuisineMatch{
			Cuisine: cuisine,
			Score:   score,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if hinted := matches[i].Cuisine == hint; hinted != (matches[j].Cuisine == hint) {
			return hinted
		}
		return matches[i].Cuisine < matches[j].Cuisine
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}
	return matches
}

// suggest proposes up to two additions per missing core category,
// dropping anything the household's hard constraints forbid.
func suggest(missing []string, cons constraint.Set) []string {
	var out []string
	for _, m := range missing {
		added := 0
		for _, candidate := range categorySuggestions[Category(m)] {
			if _, hit := cons.MatchText(candidate); hit {
				continue
			}
			out = append(out, candidate)
			added++
			if added == 2 {
				break
			}
		}
	}
	return out
}
