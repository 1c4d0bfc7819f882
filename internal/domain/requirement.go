package domain

// RequirementFilter is the structured representation of a shopper's
// extracted intent. Every field is optional; an empty filter means
// "broad search" and must never be treated as an error.
type RequirementFilter struct {
	Occasions []string `json:"occasion"`
	Styles    []string `json:"style"`
	Seasons   []string `json:"season"`
	Colors    []string `json:"colors,omitempty"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
}

// IsEmpty reports whether no requirement was extracted at all.
func (f RequirementFilter) IsEmpty() bool {
	return len(f.Occasions) == 0 &&
		len(f.Styles) == 0 &&
		len(f.Seasons) == 0 &&
		len(f.Colors) == 0 &&
		f.PriceMin == nil &&
		f.PriceMax == nil
}

// Normalize canonicalizes tag casing, drops out-of-vocabulary
// occasion/style/season values and discards an unusable price range.
// Colors stay free-form; the catalog's color tags are not enumerated.
func (f RequirementFilter) Normalize() RequirementFilter {
	out := RequirementFilter{
		Occasions: filterKnown(f.Occasions, IsKnownOccasion),
		Styles:    filterKnown(f.Styles, IsKnownStyle),
		Seasons:   filterKnown(f.Seasons, IsKnownSeason),
	}

	for _, c := range f.Colors {
		if v := canonicalTag(c); v != "" {
			out.Colors = append(out.Colors, v)
		}
	}

	min, max := f.PriceMin, f.PriceMax
	if min != nil && *min < 0 {
		min = nil
	}
	if max != nil && *max <= 0 {
		max = nil
	}
	if min != nil && max != nil && *min > *max {
		// An inverted range is model noise, not a user constraint.
		min, max = nil, nil
	}
	out.PriceMin = min
	out.PriceMax = max

	return out
}

func filterKnown(values []string, known func(string) bool) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range values {
		c := canonicalTag(v)
		if c == "" || seen[c] || !known(c) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
