package constraint

// Keyword expansion tables. Matching is case-insensitive substring, so
// entries are lowercase stems ("anchov" catches anchovy and anchovies).

// allergenKeywords expands a declared allergen into the ingredient
// keywords that imply its presence.
var allergenKeywords = map[string][]string{
	"peanuts":   {"peanut"},
	"peanut":    {"peanut"},
	"tree nuts": {"almond", "cashew", "walnut", "pecan", "hazelnut", "pistachio", "macadamia"},
	"shellfish": {"shellfish", "shrimp", "prawn", "crab", "lobster", "oyster", "mussel", "clam", "scallop"},
	"fish":      {"fish", "salmon", "tuna", "cod", "anchov", "sardine", "trout", "mackerel"},
	"dairy":     {"milk", "cheese", "butter", "cream", "yogurt", "paneer", "ghee", "whey", "curd"},
	"milk":      {"milk", "cheese", "butter", "cream", "yogurt", "paneer", "ghee", "whey", "curd"},
	"eggs":      {"egg"},
	"egg":       {"egg"},
	"gluten":    {"wheat", "barley", "rye", "flour", "bread", "pasta", "couscous", "semolina", "seitan"},
	"wheat":     {"wheat", "flour", "bread", "pasta", "couscous", "semolina", "seitan"},
	"soy":       {"soy", "tofu", "edamame", "tempeh", "miso"},
	"sesame":    {"sesame", "tahini"},
}

var meatKeywords = []string{
	"chicken", "beef", "pork", "lamb", "mutton", "turkey", "duck",
	"bacon", "ham", "sausage", "meat", "veal", "gelatin",
}

var seafoodKeywords = []string{
	"fish", "salmon", "tuna", "cod", "anchov", "sardine",
	"shrimp", "prawn", "crab", "lobster", "oyster", "mussel", "clam", "scallop",
}

var dairyEggKeywords = []string{
	"milk", "cheese", "butter", "cream", "yogurt", "paneer", "ghee",
	"whey", "curd", "egg", "honey", "mayonnaise",
}

var porkKeywords = []string{
	"pork", "bacon", "ham", "prosciutto", "chorizo", "pancetta",
	"lard", "salami", "pepperoni",
}

var alcoholKeywords = []string{
	"wine", "beer", "rum", "vodka", "whiskey", "brandy", "sake",
	"mirin", "liqueur", "bourbon", "sherry", "alcohol",
}

var rootVegetableKeywords = []string{
	"onion", "garlic", "potato", "carrot", "beet", "radish",
	"ginger", "turnip", "leek", "shallot",
}

// restrictionKeywords expands a dietary or religious restriction tag
var restrictionKeywords = map[string][]string{
	"vegetarian": concat(meatKeywords, seafoodKeywords),
	"vegan":      concat(meatKeywords, seafoodKeywords, dairyEggKeywords),
	"no-beef":    {"beef", "steak", "brisket", "oxtail", "veal"},
	"no-pork":    porkKeywords,
	"no-alcohol": alcoholKeywords,
	"jain":       concat(meatKeywords, seafoodKeywords, rootVegetableKeywords, []string{"egg", "honey"}),
	"halal":      concat(porkKeywords, alcoholKeywords, []string{"gelatin"}),
	"kosher":     concat(porkKeywords, []string{"shellfish", "shrimp", "prawn", "crab", "lobster", "oyster", "mussel", "clam", "scallop"}),
}

// religiousTags marks restriction tags carried as the religious variant
var religiousTags = map[string]bool{
	"jain":   true,
	"halal":  true,
	"kosher": true,
}

// substitutionGuidance is the per-tag hint surfaced on refusals and
// rendered alongside the never-include list.
var substitutionGuidance = map[string]string{
	"vegetarian": "use plant proteins such as beans, lentils, paneer or tofu",
	"vegan":      "use plant proteins and plant-based dairy substitutes such as tofu, coconut milk or nutritional yeast",
	"no-beef":    "substitute chicken, lamb or a plant protein",
	"no-pork":    "substitute chicken, turkey or beef cuts",
	"no-alcohol": "deglaze with stock, verjuice or citrus juice instead",
	"jain":       "season with asafoetida (hing) and cumin instead of onion and garlic",
	"halal":      "use halal-certified meat and alcohol-free flavorings",
	"kosher":     "use kosher-certified meat and do not combine meat with dairy",
}

// NeverAssumeCategory classifies ingredients that must be explicitly
// confirmed available before generation proceeds.
type NeverAssumeCategory string

const (
	NeverAssumeAllergenRisk NeverAssumeCategory = "allergen-risk"
	NeverAssumeSpiceBlend   NeverAssumeCategory = "spice-blend"
	NeverAssumeAlcohol      NeverAssumeCategory = "alcohol"
	NeverAssumeReligious    NeverAssumeCategory = "religiously-sensitive"
)

// neverAssumeItems are ingredients the engine will never silently assume
// a household has or accepts. Spice blends are listed because their
// composition is unknown.
var neverAssumeItems = map[string]NeverAssumeCategory{
	"peanut butter": NeverAssumeAllergenRisk,
	"fish sauce":    NeverAssumeAllergenRisk,
	"oyster sauce":  NeverAssumeAllergenRisk,
	"tahini":        NeverAssumeAllergenRisk,
	"garam masala":  NeverAssumeSpiceBlend,
	"curry powder":  NeverAssumeSpiceBlend,
	"five spice":    NeverAssumeSpiceBlend,
	"spice blend":   NeverAssumeSpiceBlend,
	"wine":          NeverAssumeAlcohol,
	"beer":          NeverAssumeAlcohol,
	"rum":           NeverAssumeAlcohol,
	"brandy":        NeverAssumeAlcohol,
	"mirin":         NeverAssumeAlcohol,
	"sake":          NeverAssumeAlcohol,
	"gelatin":       NeverAssumeReligious,
	"lard":          NeverAssumeReligious,
	"rennet":        NeverAssumeReligious,
}

// NeverAssumeItems returns the confirm-before-use ingredient table
func NeverAssumeItems() map[string]NeverAssumeCategory {
	return neverAssumeItems
}

// spiceBands maps an ordinal tolerance to the qualitative band rendered
// into the prompt.
var spiceBands = map[int]string{
	1: "no chili or hot spices at all",
	2: "very gentle heat only, a pinch at most",
	3: "moderate, family-friendly heat",
	4: "generous heat is welcome",
	5: "bold, fiery heat is encouraged",
}

func concat(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, kw := range list {
			if !seen[kw] {
				seen[kw] = true
				out = append(out, kw)
			}
		}
	}
	return out
}
