package model

import "fmt"

// Category classifies accounts on the balance sheet. The set is fixed;
// users add accounts, never categories.
type Category string

const (
	CategoryCurrentAssets        Category = "CURRENT_ASSETS"
	CategoryNoncurrentAssets     Category = "NONCURRENT_ASSETS"
	CategoryLongTermLiabilities  Category = "LONGTERM_LIABILITIES"
	CategoryShortTermLiabilities Category = "SHORTTERM_LIABILITIES"
	CategoryEquity               Category = "EQUITY"
)

var AllCategories = []Category{
	CategoryCurrentAssets,
	CategoryNoncurrentAssets,
	CategoryLongTermLiabilities,
	CategoryShortTermLiabilities,
	CategoryEquity,
}

// ParseCategory converts a category tag into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// ValidCategory checks if a category is one of the five fixed tags.
func ValidCategory(cat Category) bool {
	for _, c := range AllCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display heading for a category as it appears
// on the printed balance sheet.
func CategoryLabel(cat Category) string {
	switch cat {
	case CategoryCurrentAssets:
		return "ACTIVO CIRCULANTE"
	case CategoryNoncurrentAssets:
		return "ACTIVO NO CIRCULANTE"
	case CategoryLongTermLiabilities:
		return "PASIVO LARGO PLAZO"
	case CategoryShortTermLiabilities:
		return "PASIVO CORTO PLAZO"
	case CategoryEquity:
		return "CAPITAL"
	default:
		return string(cat)
	}
}

// IsAsset reports whether a category sums into total assets; the other
// three sum into total liabilities + equity.
func (c Category) IsAsset() bool {
	return c == CategoryCurrentAssets || c == CategoryNoncurrentAssets
}
