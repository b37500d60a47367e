package combination

import "sort"

// Category buckets used by the balance score
type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryStarch    Category = "starch"
	CategoryDairy     Category = "dairy"
	CategoryFruit     Category = "fruit"
	CategoryHerb      Category = "herb"
)

// coreCategories are the ones whose presence drives the balance score
var coreCategories = []Category{CategoryProtein, CategoryVegetable, CategoryStarch}

// ingredientCategories assigns common ingredients to a category. Lookup
// is by case-insensitive substring so "chicken breast" lands on protein.
var ingredientCategories = map[string]Category{
	"chicken": CategoryProtein, "beef": CategoryProtein, "pork": CategoryProtein,
	"lamb": CategoryProtein, "turkey": CategoryProtein, "duck": CategoryProtein,
	"fish": CategoryProtein, "salmon": CategoryProtein, "tuna": CategoryProtein,
	"shrimp": CategoryProtein, "prawn": CategoryProtein, "egg": CategoryProtein,
	"tofu": CategoryProtein, "paneer": CategoryProtein, "lentil": CategoryProtein,
	"chickpea": CategoryProtein, "bean": CategoryProtein, "tempeh": CategoryProtein,

	"tomato": CategoryVegetable, "onion": CategoryVegetable, "garlic": CategoryVegetable,
	"spinach": CategoryVegetable, "broccoli": CategoryVegetable, "pepper": CategoryVegetable,
	"zucchini": CategoryVegetable, "carrot": CategoryVegetable, "mushroom": CategoryVegetable,
	"cauliflower": CategoryVegetable, "kale": CategoryVegetable, "cabbage": CategoryVegetable,
	"eggplant": CategoryVegetable, "cucumber": CategoryVegetable, "peas": CategoryVegetable,

	"rice": CategoryStarch, "pasta": CategoryStarch, "potato": CategoryStarch,
	"bread": CategoryStarch, "noodle": CategoryStarch, "quinoa": CategoryStarch,
	"couscous": CategoryStarch, "tortilla": CategoryStarch, "polenta": CategoryStarch,
	"flour": CategoryStarch, "oat": CategoryStarch,

	"milk": CategoryDairy, "cheese": CategoryDairy, "butter": CategoryDairy,
	"cream": CategoryDairy, "yogurt": CategoryDairy, "mozzarella": CategoryDairy,
	"parmesan": CategoryDairy, "feta": CategoryDairy, "ghee": CategoryDairy,

	"lemon": CategoryFruit, "lime": CategoryFruit, "apple": CategoryFruit,
	"mango": CategoryFruit, "orange": CategoryFruit, "avocado": CategoryFruit,

	"basil": CategoryHerb, "cilantro": CategoryHerb, "parsley": CategoryHerb,
	"thyme": CategoryHerb, "rosemary": CategoryHerb, "oregano": CategoryHerb,
	"mint": CategoryHerb, "dill": CategoryHerb, "ginger": CategoryHerb,
	"cumin": CategoryHerb, "turmeric": CategoryHerb, "chili": CategoryHerb,
}

// categoryStems fixes the stem lookup order. An ingredient matching
// several stems ("egg noodles") must land in the same category on
// every call, so stems are scanned alphabetically.
var categoryStems = func() []string {
	stems := make([]string, 0, len(ingredientCategories))
	for s := range ingredientCategories {
		stems = append(stems, s)
	}
	sort.Strings(stems)
	return stems
}()

// categorySuggestions feed the missing-category additions
var categorySuggestions = map[Category][]string{
	CategoryProtein:   {"chicken", "tofu", "lentils", "chickpeas", "fish"},
	CategoryVegetable: {"spinach", "broccoli", "bell pepper", "zucchini", "tomato"},
	CategoryStarch:    {"rice", "pasta", "potato", "quinoa", "bread"},
}

// pairings is the fixed table of known traditional pairings. Keys are
// the two ingredient stems joined in sorted order.
var pairings = map[string]float64{
	"basil|tomato":          0.15,
	"mozzarella|tomato":     0.15,
	"basil|mozzarella":      0.15,
	"garlic|tomato":         0.12,
	"basil|garlic":          0.10,
	"lemon|salmon":          0.15,
	"dill|salmon":           0.12,
	"chicken|rosemary":      0.12,
	"chicken|thyme":         0.10,
	"chicken|lemon":         0.10,
	"beef|mushroom":         0.12,
	"beef|onion":            0.10,
	"cumin|lentil":          0.12,
	"ginger|tofu":           0.10,
	"cilantro|lime":         0.12,
	"chili|lime":            0.10,
	"paneer|spinach":        0.15,
	"ginger|turmeric":       0.10,
	"apple|cinnamon":        0.15,
	"mint|peas":             0.10,
	"egg|potato":            0.10,
	"cheese|pasta":          0.12,
	"butter|garlic":         0.10,
	"avocado|lime":          0.12,
	"mushroom|thyme":        0.10,
	"mozzarella|oregano":    0.08,
	"chickpea|cumin":        0.12,
	"cauliflower|turmeric":  0.10,
	"broccoli|garlic":       0.08,
	"parmesan|pasta":        0.12,
}

// cuisineStaples are per-cuisine staple ingredient stems used for the
// ranked cuisine-match list.
var cuisineStaples = map[string][]string{
	"italian":       {"tomato", "basil", "mozzarella", "parmesan", "pasta", "oregano", "olive", "garlic"},
	"indian":        {"cumin", "turmeric", "ginger", "paneer", "lentil", "chickpea", "rice", "cilantro", "chili"},
	"mexican":       {"tortilla", "bean", "lime", "cilantro", "chili", "avocado", "corn", "tomato"},
	"thai":          {"lime", "chili", "cilantro", "coconut", "noodle", "ginger", "rice"},
	"japanese":      {"rice", "soy", "ginger", "noodle", "tofu", "fish", "salmon"},
	"chinese":       {"soy", "ginger", "garlic", "rice", "noodle", "tofu", "pork"},
	"french":        {"butter", "cream", "thyme", "mushroom", "wine", "shallot"},
	"mediterranean": {"olive", "feta", "cucumber", "tomato", "lemon", "chickpea", "mint"},
	"american":      {"beef", "potato", "cheese", "bread", "corn"},
}
