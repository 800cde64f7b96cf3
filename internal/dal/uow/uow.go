package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iproductrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/postgres"
	orderrepo "github.com/storefront-labs/checkout-svc/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/storefront-labs/checkout-svc/internal/dal/repositories/orderitem/postgres"
	productrepo "github.com/storefront-labs/checkout-svc/internal/dal/repositories/product/postgres"
)

type unitOfWork struct {
	pool          *pgxpool.Pool
	tx            pgx.Tx
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	productRepo   iproductrepo.IProductRepository
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) ProductRepository() iproductrepo.IProductRepository {
	return u.productRepo
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	pool := client.Pool()

	return &unitOfWork{
		pool:          pool,
		orderRepo:     orderrepo.NewPostgresOrderRepository(pool),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(pool),
		productRepo:   productrepo.NewPostgresProductRepository(pool),
	}
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	// Rebind repositories to the transaction
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.productRepo = productrepo.NewPostgresProductRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
