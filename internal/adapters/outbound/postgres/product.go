package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/marqueshop/recommender/internal/domain"
	"github.com/marqueshop/recommender/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	productFields = []string{
		"id",
		"name",
		"brand",
		"description",
		"image_url",
		"slug",
		"market",
		"audience",
		"price",
		"rating",
		"in_stock",
		"active",
		"occasion_tags",
		"style_tags",
		"season_tags",
		"color_tags",
		"material_tags",
		"activity_tags",
		"created_at",
		"updated_at",
	}
)

// ProductRepository implements the domain.CatalogRepository interface using PostgreSQL as the storage backend.
type ProductRepository struct {
	sb squirrel.StatementBuilderType
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(br squirrel.BaseRunner) ProductRepository {
	return ProductRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// productUpsertSet lists the columns refreshed when a product is saved again.
const productUpsertSet = "name = EXCLUDED.name, brand = EXCLUDED.brand, " +
	"description = EXCLUDED.description, image_url = EXCLUDED.image_url, " +
	"slug = EXCLUDED.slug, market = EXCLUDED.market, audience = EXCLUDED.audience, " +
	"price = EXCLUDED.price, rating = EXCLUDED.rating, in_stock = EXCLUDED.in_stock, " +
	"active = EXCLUDED.active, occasion_tags = EXCLUDED.occasion_tags, " +
	"style_tags = EXCLUDED.style_tags, season_tags = EXCLUDED.season_tags, " +
	"color_tags = EXCLUDED.color_tags, material_tags = EXCLUDED.material_tags, " +
	"activity_tags = EXCLUDED.activity_tags, updated_at = EXCLUDED.updated_at"

// SaveProduct inserts or updates a product by ID.
func (pr ProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := pr.sb.
		Insert("products").
		Columns(productFields...).
		Values(
			product.ID,
			product.Name,
			product.Brand,
			product.Description,
			product.ImageURL,
			product.Slug,
			product.Market,
			product.Audience,
			product.Price,
			product.Rating,
			product.InStock,
			product.Active,
			pq.Array(product.OccasionTags),
			pq.Array(product.StyleTags),
			pq.Array(product.SeasonTags),
			pq.Array(product.ColorTags),
			pq.Array(product.MaterialTags),
			pq.Array(product.ActivityTags),
			product.CreatedAt,
			product.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + productUpsertSet).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetProduct retrieves a product by its ID.
func (pr ProductRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row := pr.sb.
		Select(productFields...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx)

	product, err := scanProduct(row)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Product{}, domain.NewNotFoundErr(fmt.Sprintf("product %s not found", id))
		}
		return domain.Product{}, err
	}

	return product, nil
}

// GetProductsByIDs retrieves the products for the given IDs.
func (pr ProductRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("ids", len(ids)),
	))
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := pr.sb.
		Select(productFields...).
		From("products").
		Where(squirrel.Eq{"id": ids}).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return collectProducts(span, rows)
}

// DeactivateProduct marks a product as no longer for sale.
func (pr ProductRepository) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := pr.sb.
		Update("products").
		Set("active", false).
		Set("in_stock", false).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("product %s not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// ListActiveProducts pages through active products using keyset pagination.
func (pr ProductRepository) ListActiveProducts(ctx context.Context, market domain.Market, afterID uuid.UUID, limit int) ([]domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("market", string(market)),
		attribute.Int("limit", limit),
	))
	defer span.End()

	if limit <= 0 {
		return nil, domain.NewValidationErr("limit must be greater than 0")
	}

	qry := pr.sb.
		Select(productFields...).
		From("products").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		Limit(uint64(limit))

	if market != "" {
		qry = qry.Where(squirrel.Eq{"market": market})
	}
	if afterID != uuid.Nil {
		qry = qry.Where(squirrel.Gt{"id": afterID})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return collectProducts(span, rows)
}

// SearchByAttributes finds in-stock products matching the attribute query,
// ordered by rating then recency.
func (pr ProductRepository) SearchByAttributes(ctx context.Context, query domain.AttributeQuery) ([]domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("market", string(query.Market)),
	))
	defer span.End()

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	qry := pr.sb.
		Select(productFields...).
		From("products").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Eq{"market": marketSet(query.Market)}).
		OrderBy("rating DESC", "created_at DESC").
		Limit(uint64(limit))

	if query.InStock {
		qry = qry.Where(squirrel.Eq{"in_stock": true})
	}
	if len(query.Audiences) > 0 {
		qry = qry.Where(squirrel.Eq{"audience": query.Audiences})
	}
	if len(query.Occasions) > 0 {
		qry = qry.Where(squirrel.Expr("occasion_tags && ?", pq.Array(query.Occasions)))
	}
	if len(query.Styles) > 0 {
		qry = qry.Where(squirrel.Expr("style_tags && ?", pq.Array(query.Styles)))
	}
	if len(query.Seasons) > 0 {
		qry = qry.Where(squirrel.Expr("season_tags && ?", pq.Array(query.Seasons)))
	}
	if query.PriceMin != nil {
		qry = qry.Where(squirrel.GtOrEq{"price": *query.PriceMin})
	}
	if query.PriceMax != nil {
		qry = qry.Where(squirrel.LtOrEq{"price": *query.PriceMax})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return collectProducts(span, rows)
}

// ListPopularProducts returns the highest rated in-stock products for a market.
func (pr ProductRepository) ListPopularProducts(ctx context.Context, market domain.Market, audiences []domain.Audience, limit int) ([]domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("market", string(market)),
	))
	defer span.End()

	if limit <= 0 {
		limit = 20
	}

	qry := pr.sb.
		Select(productFields...).
		From("products").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Eq{"in_stock": true}).
		Where(squirrel.Eq{"market": marketSet(market)}).
		OrderBy("rating DESC", "created_at DESC").
		Limit(uint64(limit))

	if len(audiences) > 0 {
		qry = qry.Where(squirrel.Eq{"audience": audiences})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return collectProducts(span, rows)
}

// CountActiveProducts returns the number of active products.
func (pr ProductRepository) CountActiveProducts(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := pr.sb.
		Select("COUNT(*)").
		From("products").
		Where(squirrel.Eq{"active": true}).
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// marketSet expands a market into the set of markets visible to it.
// Products flagged ALL are sold in every market.
func marketSet(market domain.Market) []domain.Market {
	if market == domain.Market_ALL {
		return []domain.Market{domain.Market_ALL}
	}
	return []domain.Market{market, domain.Market_ALL}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Description,
		&product.ImageURL,
		&product.Slug,
		&product.Market,
		&product.Audience,
		&product.Price,
		&product.Rating,
		&product.InStock,
		&product.Active,
		pq.Array(&product.OccasionTags),
		pq.Array(&product.StyleTags),
		pq.Array(&product.SeasonTags),
		pq.Array(&product.ColorTags),
		pq.Array(&product.MaterialTags),
		pq.Array(&product.ActivityTags),
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	return product, err
}

func collectProducts(span trace.Span, rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return products, nil
}

// InitProductRepository is a Symbiont initializer for ProductRepository.
type InitProductRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ProductRepository in the dependency container.
func (pr InitProductRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CatalogRepository](NewProductRepository(pr.DB))
	return ctx, nil
}
