package deepseek

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/platemind/v1/internal/domain/recipe"
)

// responseFormat is appended to every prompt. Pipe-separated lists and
// line-prefixed fields survive model formatting drift better than JSON.
const responseFormat = `Respond in EXACTLY this format, one field per line:
NAME: <recipe name>
DESCRIPTION: <one sentence>
CUISINE: <cuisine>
SERVINGS: <number>
PREP_TIME: <e.g. 15 minutes>
COOK_TIME: <e.g. 30 minutes>
SPICE_LEVEL: <none|mild|medium|high|very high>
INGREDIENTS: <ingredient 1> | <ingredient 2> | <ingredient 3>
INSTRUCTIONS: <step 1> | <step 2> | <step 3>`

// ParseCandidate extracts a candidate recipe from the model's
// structured reply. Unknown lines are skipped so leading chatter does
// not break parsing.
func ParseCandidate(content string) (*recipe.Candidate, error) {
	c := &recipe.Candidate{}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "NAME":
			c.Name = value
		case "DESCRIPTION":
			c.Description = value
		case "CUISINE":
			c.Cuisine = recipe.NormalizeCuisine(value)
		case "SERVINGS":
			if n, err := strconv.Atoi(strings.Fields(value + " 0")[0]); err == nil && n > 0 {
				c.Servings = n
			}
		case "PREP_TIME":
			c.PrepTime = value
		case "COOK_TIME":
			c.CookTime = value
		case "SPICE_LEVEL":
			c.SpiceLevel = strings.ToLower(value)
		case "INGREDIENTS":
			c.Ingredients = splitPipeList(value)
		case "INSTRUCTIONS":
			c.Instructions = splitPipeList(value)
		}
	}

	if c.Servings == 0 {
		c.Servings = 4
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("incomplete model reply: %w", err)
	}
	return c, nil
}

func splitPipeList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
