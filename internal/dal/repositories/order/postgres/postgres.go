package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	"github.com/storefront-labs/checkout-svc/internal/service/models/orderitem"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id        uuid.UUID `db:"id"`
	UserId    string    `db:"user_id"`
	AddressId string    `db:"address_id"`
	StoreId   string    `db:"store_id"`
	IsPaid    bool      `db:"is_paid"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:         o.Id,
		UserID:     o.UserId,
		AddressID:  o.AddressId,
		StoreID:    o.StoreId,
		IsPaid:     o.IsPaid,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		OrderItems: []orderitem.OrderItem{}, // Will be populated separately
	}
}

// OrderDalFromModel converts service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		Id:        o.ID,
		UserId:    o.UserID,
		AddressId: o.AddressID,
		StoreId:   o.StoreID,
		IsPaid:    o.IsPaid,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert creates one order row and returns it with the generated id.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	dal := OrderDalFromModel(&o)

	sql, args, err := r.sb.
		Insert("orders").
		Columns(
			"user_id",
			"address_id",
			"store_id",
			"is_paid",
			"created_at",
			"updated_at",
		).
		Values(
			dal.UserId,
			dal.AddressId,
			dal.StoreId,
			dal.IsPaid,
			pgtype.Timestamptz{Time: dal.CreatedAt, Valid: true},
			pgtype.Timestamptz{Time: dal.UpdatedAt, Valid: true},
		).
		Suffix("RETURNING id, user_id, address_id, store_id, is_paid, created_at, updated_at").
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var inserted OrderDal
	var createdAt, updatedAt pgtype.Timestamptz

	row := r.conn.QueryRow(ctx, sql, args...)
	if err := row.Scan(
		&inserted.Id,
		&inserted.UserId,
		&inserted.AddressId,
		&inserted.StoreId,
		&inserted.IsPaid,
		&createdAt,
		&updatedAt,
	); err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	inserted.CreatedAt = createdAt.Time
	inserted.UpdatedAt = updatedAt.Time

	model := inserted.ToModel()
	model.OrderItems = append(model.OrderItems, o.OrderItems...)

	return *model, nil
}

// Query retrieves orders based on filter criteria.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select(
			"id",
			"user_id",
			"address_id",
			"store_id",
			"is_paid",
			"created_at",
			"updated_at",
		).
		From("orders")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.UserIds) > 0 {
		query = query.Where(sq.Eq{"user_id": filter.UserIds})
	}

	if len(filter.StoreIds) > 0 {
		query = query.Where(sq.Eq{"store_id": filter.StoreIds})
	}

	query = query.OrderBy("created_at DESC")

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
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		var createdAt, updatedAt pgtype.Timestamptz

		err := rows.Scan(
			&dal.Id,
			&dal.UserId,
			&dal.AddressId,
			&dal.StoreId,
			&dal.IsPaid,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		dal.CreatedAt = createdAt.Time
		dal.UpdatedAt = updatedAt.Time

		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Delete removes an order row. Order items are removed by the cascade.
// Used as the compensating step when payment session creation fails.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.
		Delete("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
