package domain

import (
	"context"

	"github.com/google/uuid"
)

// AttributeQuery describes an attribute-based catalog search. It is the
// relational counterpart of a vector query, used when the vector index
// cannot serve requests.
type AttributeQuery struct {
	Market    Market
	Audiences []Audience
	Occasions []string
	Styles    []string
	Seasons   []string
	PriceMin  *float64
	PriceMax  *float64
	InStock   bool
	Limit     int
}

// CatalogRepository defines the interface for managing catalog products.
type CatalogRepository interface {
	// SaveProduct inserts or updates a product by ID.
	SaveProduct(ctx context.Context, product Product) error
	// GetProduct retrieves a product by ID. Returns NotFoundErr when absent.
	GetProduct(ctx context.Context, id uuid.UUID) (Product, error)
	// GetProductsByIDs retrieves the products for the given IDs, preserving
	// only those that exist.
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	// DeactivateProduct marks a product as no longer for sale.
	DeactivateProduct(ctx context.Context, id uuid.UUID) error
	// ListActiveProducts pages through active products using keyset
	// pagination. An empty market means every market; pass uuid.Nil as
	// afterID for the first page.
	ListActiveProducts(ctx context.Context, market Market, afterID uuid.UUID, limit int) ([]Product, error)
	// SearchByAttributes finds in-stock products matching the attribute
	// query, ordered by rating then recency.
	SearchByAttributes(ctx context.Context, query AttributeQuery) ([]Product, error)
	// ListPopularProducts returns the highest rated in-stock products for a
	// market and audience set.
	ListPopularProducts(ctx context.Context, market Market, audiences []Audience, limit int) ([]Product, error)
	// CountActiveProducts returns the number of active products.
	CountActiveProducts(ctx context.Context) (int, error)
}
