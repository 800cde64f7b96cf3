package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/storefront-labs/checkout-svc/internal/service/models/product"
)

// ProductDal represents product data access layer model. Price travels as
// text to avoid lossy float conversions of the NUMERIC column.
type ProductDal struct {
	Id        string    `db:"id"`
	StoreId   string    `db:"store_id"`
	Name      string    `db:"name"`
	Price     string    `db:"price"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToModel converts ProductDal to service layer Product model.
func (p *ProductDal) ToModel() (*product.Product, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product price: %w", err)
	}

	return &product.Product{
		ID:        p.Id,
		StoreID:   p.StoreId,
		Name:      p.Name,
		Price:     price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresProductRepository represents a Postgres product repository.
type PostgresProductRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProductRepository creates a new Postgres product repository.
func NewPostgresProductRepository(conn GenericConn) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Query retrieves products based on filter criteria. Result order is not
// guaranteed to match the order of requested ids, and missing ids are
// silently absent from the result.
func (r *PostgresProductRepository) Query(
	ctx context.Context,
	filter *product.QueryProductsModel,
) ([]product.Product, error) {
	query := r.sb.
		Select(
			"id",
			"store_id",
			"name",
			"price::text",
			"created_at",
			"updated_at",
		).
		From("products")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.StoreIds) > 0 {
		query = query.Where(sq.Eq{"store_id": filter.StoreIds})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		var dal ProductDal
		var createdAt, updatedAt pgtype.Timestamptz

		err := rows.Scan(
			&dal.Id,
			&dal.StoreId,
			&dal.Name,
			&dal.Price,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		dal.CreatedAt = createdAt.Time
		dal.UpdatedAt = updatedAt.Time

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert product dal to model: %w", err)
		}

		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
