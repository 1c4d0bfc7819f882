package domain

import "strings"

// The extraction stage asks the model for occasion/style/season values
// drawn from these pinned enumerations. Anything outside them is dropped
// at the boundary so downstream filters never see free-form tags.
var (
	KnownOccasions = []string{
		"party", "work", "wedding", "casual", "date", "gym",
		"beach", "night_out", "clubbing", "travel", "home",
	}
	KnownStyles = []string{
		"casual", "formal", "sporty", "elegant", "trendy",
		"classic", "modern", "vintage", "streetwear",
	}
	KnownSeasons = []string{
		"summer", "winter", "spring", "fall", "all_season",
	}
)

var (
	occasionSet = toSet(KnownOccasions)
	styleSet    = toSet(KnownStyles)
	seasonSet   = toSet(KnownSeasons)
)

// IsKnownOccasion reports whether v is in the pinned occasion vocabulary.
func IsKnownOccasion(v string) bool { return occasionSet[canonicalTag(v)] }

// IsKnownStyle reports whether v is in the pinned style vocabulary.
func IsKnownStyle(v string) bool { return styleSet[canonicalTag(v)] }

// IsKnownSeason reports whether v is in the pinned season vocabulary.
func IsKnownSeason(v string) bool { return seasonSet[canonicalTag(v)] }

// canonicalTag lower-cases and normalizes separators so "Night Out",
// "night-out" and "night_out" all compare equal.
func canonicalTag(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.ReplaceAll(v, "-", "_")
	v = strings.ReplaceAll(v, " ", "_")
	return v
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
