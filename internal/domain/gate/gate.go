// Package gate holds the safety check that runs before any recipe
// generation. The gate never guesses about ingredient availability or
// undeclared allergens. Its decision depends only on its inputs, so
// the same request against the same profile always resolves the same
// way.
package gate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/domain/profile"
)

// Outcome is the gate's verdict for one request.
type Outcome string

const (
	OutcomeProceed Outcome = "proceed"
	OutcomeAsk     Outcome = "ask"
	OutcomeRefuse  Outcome = "refuse"
)

// Decision carries the verdict plus whatever the caller needs to relay
// to the user. Questions is set only for OutcomeAsk, Reason and
// Alternative only for OutcomeRefuse.
type Decision struct {
	Outcome     Outcome
	Reason      string
	Questions   []string
	Alternative string
}

// Evaluate runs the gate rules in order. Undeclared allergen or
// dietary-restriction status blocks everything else: an absent
// declaration is unknown, not empty. A request that names a forbidden
// ingredient is refused outright with a substitution hint when one
// exists. A request naming a never-assume item the caller has not
// confirmed turns into a clarifying question.
func Evaluate(snap profile.ConstraintSnapshot, cons constraint.Set, requestText string, confirmed map[string]bool) Decision {
	var declarationQuestions []string
	if !snap.AllergensDeclared {
		declarationQuestions = append(declarationQuestions,
			"Does anyone in your household have food allergies? Please list them, or confirm there are none.")
	}
	if !snap.RestrictionsDeclared {
		declarationQuestions = append(declarationQuestions,
			"Does anyone in your household follow dietary restrictions, such as vegetarian, vegan, halal, kosher or jain? Please list them, or confirm there are none.")
	}
	if len(declarationQuestions) > 0 {
		return Decision{Outcome: OutcomeAsk, Questions: declarationQuestions}
	}

	if match, hit := cons.MatchText(requestText); hit {
		reason := fmt.Sprintf("the request involves %q, which conflicts with the household's %s restriction (%s)",
			match.Keyword, match.Constraint.Kind, match.Constraint.Tag)
		return Decision{
			Outcome:     OutcomeRefuse,
			Reason:      reason,
			Alternative: match.Constraint.Guidance,
		}
	}

	lower := strings.ToLower(requestText)
	var unconfirmed []string
	for item := range constraint.NeverAssumeItems() {
		if strings.Contains(lower, item) && !confirmed[item] {
			unconfirmed = append(unconfirmed, item)
		}
	}
	sort.Strings(unconfirmed)
	var questions []string
	for _, item := range unconfirmed {
		questions = append(questions,
			fmt.Sprintf("Do you have %s available? It is needed for this request and we will not assume it.", item))
	}
	if len(questions) > 0 {
		return Decision{Outcome: OutcomeAsk, Questions: questions}
	}

	return Decision{Outcome: OutcomeProceed}
}
