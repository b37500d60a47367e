package engine

import (
	"fmt"
	"strings"

	"github.com/platemind/v1/internal/domain/constraint"
	"github.com/platemind/v1/internal/ports/outbound"
)

// buildPayload assembles the generation request for one attempt. Hard
// constraints are rendered verbatim on every attempt; retries append
// the violations from the previous attempt so the generator knows
// exactly what to avoid.
func buildPayload(query, cuisineHint string, cons constraint.Set, attempt int, priorViolations []string) outbound.PromptPayload {
	return outbound.PromptPayload{
		Query:           query,
		CuisineHint:     cuisineHint,
		HardConstraints: cons.RenderHard(),
		SoftConstraints: cons.RenderSoft(),
		Attempt:         attempt,
		PriorViolations: priorViolations,
	}
}

// RenderPrompt flattens a payload into the text sent to a chat model.
// Adapters that speak structured APIs may ignore it and use the fields
// directly.
func RenderPrompt(p outbound.PromptPayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a recipe for: %s\n", p.Query)
	if p.CuisineHint != "" {
		fmt.Fprintf(&b, "Preferred cuisine: %s\n", p.CuisineHint)
	}
	b.WriteString("\n")
	b.WriteString(p.HardConstraints)
	b.WriteString("\n")
	if p.SoftConstraints != "" {
		b.WriteString(p.SoftConstraints)
		b.WriteString("\n")
	}

	if len(p.PriorViolations) > 0 {
		b.WriteString("\nYour previous attempt was rejected for the following violations:\n")
		for _, v := range p.PriorViolations {
			fmt.Fprintf(&b, "- %s\n", v)
		}
		b.WriteString("Produce a corrected recipe that avoids every ingredient listed above.\n")
	}

	return b.String()
}
