package profile

import "sort"

// genericCategories are category ids too broad to say anything about taste.
// This is the single exclusion set; every algorithm that filters categories
// (diversity, cluster summary, recommender) must use it through IsGeneric or
// GenericCategoryList so the filtering stays identical everywhere.
// Singular/plural near-duplicates are both listed because the source data
// is inconsistent about them.
var genericCategories = map[string]struct{}{
	"Restaurants":               {},
	"Food":                      {},
	"Nightlife":                 {},
	"Bars":                      {},
	"Diner":                     {},
	"Diners":                    {},
	"Cafe":                      {},
	"Cafes":                     {},
	"Bakery":                    {},
	"Bakeries":                  {},
	"Grocery":                   {},
	"Event Planning & Services": {},
}

// IsGeneric reports whether a category id is excluded from taste scoring.
func IsGeneric(category string) bool {
	_, ok := genericCategories[category]
	return ok
}

// GenericCategoryList returns the exclusion set as a sorted slice, for use
// as a query parameter.
func GenericCategoryList() []string {
	list := make([]string, 0, len(genericCategories))
	for category := range genericCategories {
		list = append(list, category)
	}
	sort.Strings(list)
	return list
}
