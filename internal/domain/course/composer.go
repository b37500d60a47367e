// Package course plans multi-course meals. The composer fixes the
// course structure for a style, phrases a generation request per
// course, and scores how coherently the courses hang together. Every
// per-course request inherits the household's full constraint set, so
// a violation in any single course fails the whole plan upstream.
package course

import (
	"fmt"
	"sort"
	"strings"
)

// Course is one planned slot with the request text the generator will
// receive for it.
type Course struct {
	Type      Type      `json:"type"`
	Intensity Intensity `json:"intensity"`
	Portion   string    `json:"portion"`
	Cuisine   string    `json:"cuisine"`
	Request   string    `json:"request"`
}

// Plan is a complete composed meal before any course is generated.
type Plan struct {
	Style          Style    `json:"style"`
	Cuisine        string   `json:"cuisine"`
	Courses        []Course `json:"courses"`
	CoherenceScore float64  `json:"coherence_score"`
	PrepOrder      []int    `json:"prep_order"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Compose builds the course plan for a style and cuisine. Available
// ingredients, when given, are folded into the main course request so
// the generator favors what the household already has.
func Compose(style Style, cuisine string, available []string) (Plan, error) {
	skeleton, ok := skeletons[style]
	if !ok {
		return Plan{}, fmt.Errorf("unknown meal style %q", style)
	}

	cuisine = strings.ToLower(strings.TrimSpace(cuisine))
	if fixed, ok := styleCuisine[style]; ok {
		cuisine = fixed
	}
	if cuisine == "" {
		return Plan{}, fmt.Errorf("meal style %q requires a cuisine", style)
	}

	plan := Plan{Style: style, Cuisine: cuisine}
	for _, s := range skeleton {
		plan.Courses = append(plan.Courses, Course{
			Type:      s.Type,
			Intensity: s.Intensity,
			Portion:   s.Portion,
			Cuisine:   cuisine,
			Request:   courseRequest(s, cuisine, available),
		})
	}

	plan.CoherenceScore = coherence(plan.Courses)
	if plan.CoherenceScore < 0.4 {
		plan.Warnings = append(plan.Warnings,
			"courses span cuisines that rarely share a menu")
	}
	plan.PrepOrder = prepOrder(plan.Courses)

	return plan, nil
}

// OverrideCourseCuisine swaps the cuisine for a single course and
// rescores coherence. It reports an error when the index is out of
// range so callers cannot silently drop the override.
func (p *Plan) OverrideCourseCuisine(index int, cuisine string) error {
	if index < 0 || index >= len(p.Courses) {
		return fmt.Errorf("course index %d out of range", index)
	}
	cuisine = strings.ToLower(strings.TrimSpace(cuisine))
	c := &p.Courses[index]
	c.Cuisine = cuisine
	c.Request = courseRequest(slot{c.Type, c.Intensity, c.Portion}, cuisine, nil)

	p.Warnings = nil
	p.CoherenceScore = coherence(p.Courses)
	if p.CoherenceScore < 0.4 {
		p.Warnings = append(p.Warnings,
			"courses span cuisines that rarely share a menu")
	}
	return nil
}

func courseRequest(s slot, cuisine string, available []string) string {
	var b strings.Builder
	if cuisine != "" {
		fmt.Fprintf(&b, "A %s %s %s course, %s.", string(s.Intensity), cuisine, string(s.Type), s.Portion)
	} else {
		fmt.Fprintf(&b, "A %s %s course, %s.", string(s.Intensity), string(s.Type), s.Portion)
	}
	if s.Type == TypeMain && len(available) > 0 {
		fmt.Fprintf(&b, " Prefer these available ingredients: %s.", strings.Join(available, ", "))
	}
	return b.String()
}

// coherence averages the cuisine affinity of adjacent courses.
func coherence(courses []Course) float64 {
	if len(courses) < 2 {
		return 1.0
	}
	var sum float64
	for i := 1; i < len(courses); i++ {
		sum += affinity(courses[i-1].Cuisine, courses[i].Cuisine)
	}
	return sum / float64(len(courses)-1)
}

// prepOrder returns course indexes in suggested cooking order.
func prepOrder(courses []Course) []int {
	order := make([]int, len(courses))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return prepRank[courses[order[a]].Type] < prepRank[courses[order[b]].Type]
	})
	return order
}
