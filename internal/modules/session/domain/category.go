package domain

import "fmt"

// Category is the investigation domain a session belongs to.
type Category string

const (
	CategoryGhostHunt      Category = "ghost_hunt"
	CategoryUFOWatch       Category = "ufo_watch"
	CategoryCryptidSearch  Category = "cryptid_search"
	CategoryEVPSession     Category = "evp_session"
	CategoryPoltergeist    Category = "poltergeist"
	CategoryPsychicReading Category = "psychic_reading"
	CategoryOther          Category = "other"
)

var categories = map[Category]struct{}{
	CategoryGhostHunt:      {},
	CategoryUFOWatch:       {},
	CategoryCryptidSearch:  {},
	CategoryEVPSession:     {},
	CategoryPoltergeist:    {},
	CategoryPsychicReading: {},
	CategoryOther:          {},
}

// ParseCategory maps free text onto the closed category set. Unknown
// values fall back to CategoryOther - creation paths accept anything
// and bucket the leftovers.
func ParseCategory(raw string) Category {
	if _, ok := categories[Category(raw)]; ok {
		return Category(raw)
	}

	return CategoryOther
}

// ParseCategoryStrict rejects values outside the closed set. Used by
// the by-category listing where a typo must not silently turn into an
// "other" search.
func ParseCategoryStrict(raw string) (Category, error) {
	if _, ok := categories[Category(raw)]; ok {
		return Category(raw), nil
	}

	return "", fmt.Errorf("unknown session category - '%s'", raw)
}
