package course

// Style selects the course skeleton for a composed meal.
type Style string

const (
	StyleCasual   Style = "casual"
	StyleStandard Style = "standard"
	StyleFormal   Style = "formal"

	// Named cultural styles carry their own skeleton and a default
	// cuisine.
	StyleItalianFeast Style = "italian-feast"
	StyleIndianThali  Style = "indian-thali"
)

// Type identifies one course slot within a meal.
type Type string

const (
	TypeAppetizer Type = "appetizer"
	TypeSoup      Type = "soup"
	TypePasta     Type = "pasta"
	TypeMain      Type = "main"
	TypeSide      Type = "side"
	TypeBread     Type = "bread"
	TypeDessert   Type = "dessert"
)

// Intensity describes how heavy a course should read on the palate.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityRich   Intensity = "rich"
)

// slot is one position in a style skeleton.
type slot struct {
	Type      Type
	Intensity Intensity
	Portion   string
}

// skeletons fixes the course count and intensity arc per style. The
// arc builds toward the main and settles with a light dessert.
var skeletons = map[Style][]slot{
	StyleCasual: {
		{TypeMain, IntensityRich, "full plate"},
		{TypeDessert, IntensityLight, "small portion"},
	},
	StyleStandard: {
		{TypeAppetizer, IntensityLight, "small plate"},
		{TypeMain, IntensityRich, "full plate"},
		{TypeDessert, IntensityLight, "small portion"},
	},
	StyleFormal: {
		{TypeAppetizer, IntensityLight, "small plate"},
		{TypeSoup, IntensityLight, "small bowl"},
		{TypeMain, IntensityRich, "full plate"},
		{TypeSide, IntensityMedium, "shared dish"},
		{TypeDessert, IntensityLight, "small portion"},
	},
	StyleItalianFeast: {
		{TypeAppetizer, IntensityLight, "antipasto board"},
		{TypePasta, IntensityMedium, "small pasta course"},
		{TypeMain, IntensityRich, "full plate"},
		{TypeSide, IntensityLight, "shared vegetable dish"},
		{TypeDessert, IntensityLight, "small portion"},
	},
	StyleIndianThali: {
		{TypeMain, IntensityRich, "small bowl"},
		{TypeSide, IntensityMedium, "small bowl"},
		{TypeSide, IntensityLight, "small bowl"},
		{TypeBread, IntensityMedium, "two pieces"},
		{TypeDessert, IntensityLight, "small portion"},
	},
}

// styleCuisine fixes the cuisine for named cultural styles. Standard
// styles take the caller's cuisine instead.
var styleCuisine = map[Style]string{
	StyleItalianFeast: "italian",
	StyleIndianThali:  "indian",
}

// prepRank orders courses for cooking. Desserts and cold starters can
// be made ahead, the main is cooked last so it is served hot.
var prepRank = map[Type]int{
	TypeDessert:   0,
	TypeAppetizer: 1,
	TypeSoup:      2,
	TypeSide:      3,
	TypeBread:     4,
	TypePasta:     5,
	TypeMain:      6,
}

// cuisineAffinity scores how well two cuisines sit in one meal. Same
// cuisine is always 1.0. Unlisted pairs default to 0.5.
var cuisineAffinity = map[string]float64{
	"italian|mediterranean": 0.8,
	"french|italian":        0.7,
	"french|mediterranean":  0.7,
	"indian|thai":           0.6,
	"chinese|japanese":      0.6,
	"chinese|thai":          0.6,
	"japanese|thai":         0.6,
	"american|mexican":      0.6,
	"american|italian":      0.6,
	"indian|mediterranean":  0.5,
	"indian|italian":        0.2,
	"japanese|mexican":      0.2,
	"french|thai":           0.3,
	"indian|japanese":       0.3,
}

func affinity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a > b {
		a, b = b, a
	}
	if v, ok := cuisineAffinity[a+"|"+b]; ok {
		return v
	}
	return 0.5
}
