package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Market identifies the tenant a product (or a request) belongs to.
type Market string

const (
	Market_KG Market = "KG"
	Market_US Market = "US"
	// Market_ALL marks a product as available in every market. Such
	// products are indexed under the shared ALL namespace.
	Market_ALL Market = "ALL"
)

// Audience is the target audience of a product or the audience hint of a request.
type Audience string

const (
	Audience_Men    Audience = "M"
	Audience_Women  Audience = "W"
	Audience_Kids   Audience = "K"
	Audience_Unisex Audience = "U"
)

// Product is the catalog item consumed by the recommendation core.
// The surrounding CRUD system owns the full product record; this is the
// projection the pipeline and the sync service need.
type Product struct {
	ID          uuid.UUID
	Name        string
	Brand       string
	Description string
	ImageURL    string
	Slug        string
	Market      Market
	Audience    Audience
	Price       float64
	Rating      float64
	InStock     bool
	Active      bool

	OccasionTags []string
	StyleTags    []string
	SeasonTags   []string
	ColorTags    []string
	MaterialTags []string
	ActivityTags []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants required before a product can be ingested.
func (p Product) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationErr("product id cannot be empty")
	}
	if len(p.Name) < 2 || len(p.Name) > 200 {
		return NewValidationErr("name must be between 2 and 200 characters")
	}
	if !p.Market.Valid() {
		return NewValidationErr(fmt.Sprintf("unknown market: %s", p.Market))
	}
	if !p.Audience.Valid() {
		return NewValidationErr(fmt.Sprintf("unknown audience: %s", p.Audience))
	}
	if p.Price < 0 {
		return NewValidationErr("price cannot be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewValidationErr("rating must be between 0 and 5")
	}
	return nil
}

// Valid reports whether the market is one of the known tenants.
func (m Market) Valid() bool {
	switch m {
	case Market_KG, Market_US, Market_ALL:
		return true
	}
	return false
}

// Valid reports whether the audience is one of the known values.
func (a Audience) Valid() bool {
	switch a {
	case Audience_Men, Audience_Women, Audience_Kids, Audience_Unisex:
		return true
	}
	return false
}

// EmbeddingText builds the normalized text blob that the semantic
// encoder turns into a vector. Indexing and querying must agree on this
// format, so it lives on the entity rather than in an adapter.
func (p Product) EmbeddingText() string {
	parts := []string{
		"Product: " + p.Name,
		"Brand: " + p.Brand,
		"Description: " + p.Description,
		"Audience: " + string(p.Audience),
	}

	tagSets := []struct {
		label string
		tags  []string
	}{
		{"Styles", p.StyleTags},
		{"Occasions", p.OccasionTags},
		{"Seasons", p.SeasonTags},
		{"Colors", p.ColorTags},
		{"Materials", p.MaterialTags},
		{"Activities", p.ActivityTags},
	}
	for _, set := range tagSets {
		if len(set.tags) > 0 {
			parts = append(parts, set.label+": "+strings.Join(set.tags, ", "))
		}
	}

	return strings.TrimSpace(strings.Join(parts, " | "))
}

// HasEmbeddingText reports whether the product carries enough text to
// produce a meaningful vector. Bulk resync skips products without it.
func (p Product) HasEmbeddingText() bool {
	return strings.TrimSpace(p.Name) != "" || strings.TrimSpace(p.Description) != ""
}
