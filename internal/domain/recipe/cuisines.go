package recipe

import "strings"

// CuisineType represents different cuisine types
type CuisineType string

const (
	CuisineTypeItalian       CuisineType = "italian"
	CuisineTypeFrench        CuisineType = "french"
	CuisineTypeChinese       CuisineType = "chinese"
	CuisineTypeJapanese      CuisineType = "japanese"
	CuisineTypeIndian        CuisineType = "indian"
	CuisineTypeMexican       CuisineType = "mexican"
	CuisineTypeAmerican      CuisineType = "american"
	CuisineTypeMediterranean CuisineType = "mediterranean"
	CuisineTypeThai          CuisineType = "thai"
	CuisineTypeOther         CuisineType = "other"
)

// cuisineAliases folds regional labels the model likes to emit onto
// the canonical cuisine set.
var cuisineAliases = map[string]CuisineType{
	"tuscan":         CuisineTypeItalian,
	"sicilian":       CuisineTypeItalian,
	"provencal":      CuisineTypeFrench,
	"sichuan":        CuisineTypeChinese,
	"szechuan":       CuisineTypeChinese,
	"cantonese":      CuisineTypeChinese,
	"punjabi":        CuisineTypeIndian,
	"south indian":   CuisineTypeIndian,
	"north indian":   CuisineTypeIndian,
	"tex-mex":        CuisineTypeMexican,
	"greek":          CuisineTypeMediterranean,
	"middle eastern": CuisineTypeMediterranean,
	"southern":       CuisineTypeAmerican,
}

// NormalizeCuisine lowercases a model-supplied cuisine label and folds
// known regional aliases onto the canonical set. Unrecognized labels
// are kept verbatim so matching against household preferences still
// works for cuisines outside the canonical list.
func NormalizeCuisine(s string) string {
	label := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := cuisineAliases[label]; ok {
		return string(canonical)
	}
	return label
}
