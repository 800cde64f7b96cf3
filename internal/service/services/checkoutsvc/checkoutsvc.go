package checkoutsvc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderitemrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iorderrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/iproductrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/postgres"
	"github.com/storefront-labs/checkout-svc/internal/dal/uow"
	"github.com/storefront-labs/checkout-svc/internal/service/models/checkout"
	"github.com/storefront-labs/checkout-svc/internal/service/models/currency"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	"github.com/storefront-labs/checkout-svc/internal/service/models/orderitem"
	"github.com/storefront-labs/checkout-svc/internal/service/models/payment"
	"github.com/storefront-labs/checkout-svc/internal/service/models/product"
)

// CheckoutService orchestrates a single checkout attempt: product pricing,
// order persistence and payment session creation.
type CheckoutService struct {
	pgClient    *postgres.Client
	payment     paymentProvider
	audit       auditLogger
	newUOW      func() unitOfWork
	frontendURL string
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	ProductRepository() iproductrepo.IProductRepository
}

type paymentProvider interface {
	CreateCheckoutSession(ctx context.Context, params payment.CreateSessionParams) (payment.Session, error)
}

type auditLogger interface {
	LogOrdersCreated(ctx context.Context, orders []order.Order) error
}

// option is a function that configures the CheckoutService.
type option func(*CheckoutService)

// MustNewCheckoutService creates a new CheckoutService.
func MustNewCheckoutService(opts ...option) *CheckoutService {
	s := &CheckoutService{
		frontendURL: os.Getenv("FRONTEND_STORE_URL"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		panic("checkout service requires a postgres client or a unit of work factory")
	}
	if s.payment == nil {
		panic("checkout service requires a payment provider")
	}

	return s
}

// WithPostgresClient sets the Postgres client for the CheckoutService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *CheckoutService) {
		s.pgClient = pgClient
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(pgClient)
		}
	}
}

// WithUnitOfWorkFactory overrides the unit of work construction, letting
// tests substitute fakes for the repositories.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *CheckoutService) {
		s.newUOW = factory
	}
}

// WithPaymentProvider sets the hosted payment provider for the CheckoutService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPaymentProvider(provider paymentProvider) option {
	return func(s *CheckoutService) {
		s.payment = provider
	}
}

// WithAuditLogger sets the audit event publisher for the CheckoutService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithAuditLogger(audit auditLogger) option {
	return func(s *CheckoutService) {
		s.audit = audit
	}
}

// WithFrontendURL overrides the storefront base URL used for redirect targets.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithFrontendURL(url string) option {
	return func(s *CheckoutService) {
		s.frontendURL = url
	}
}

// Checkout runs the full checkout sequence and returns the session URL the
// buyer is redirected to. The persisted order mirrors the caller's product
// selections exactly, including selections whose product no longer exists;
// only line items for resolvable products are priced into the session.
func (s *CheckoutService) Checkout(
	ctx context.Context,
	model checkout.Checkout,
) (checkout.Result, error) {
	productIds := lo.Map(model.Selections, func(sel checkout.ProductSelection, _ int) string {
		return sel.ProductID
	})

	products, err := s.newUOW().ProductRepository().Query(ctx, &product.QueryProductsModel{
		Ids: productIds,
	})
	if err != nil {
		return checkout.Result{}, fmt.Errorf("failed to query products: %w", err)
	}

	lineItems := s.buildLineItems(model.Selections, products)

	inserted, err := s.persistOrder(ctx, model)
	if err != nil {
		return checkout.Result{}, err
	}

	session, err := s.payment.CreateCheckoutSession(ctx, payment.CreateSessionParams{
		LineItems:  lineItems,
		SuccessURL: s.frontendURL + "/cart?success=1",
		CancelURL:  s.frontendURL + "/cart?canceled=1",
		Metadata: map[string]string{
			"orderId": inserted.ID.String(),
		},
	})
	if err != nil {
		// The order only makes sense with a session attached to it.
		if delErr := s.newUOW().OrderRepository().Delete(ctx, inserted.ID); delErr != nil {
			slog.Error("Failed to delete order after session creation failure",
				"order_id", inserted.ID,
				"error", delErr,
			)
		}

		return checkout.Result{}, fmt.Errorf("failed to create payment session: %w", err)
	}

	if s.audit != nil {
		if err := s.audit.LogOrdersCreated(ctx, []order.Order{inserted}); err != nil {
			slog.Error("Failed to log order creation", "order_id", inserted.ID, "error", err)
		}
	}

	return checkout.Result{
		OrderID:    inserted.ID,
		SessionURL: session.URL,
	}, nil
}

// buildLineItems pairs each selection with its product by product id.
// Selections whose product was not found are skipped.
func (s *CheckoutService) buildLineItems(
	selections []checkout.ProductSelection,
	products []product.Product,
) []payment.LineItem {
	productsByID := lo.KeyBy(products, func(p product.Product) string {
		return p.ID
	})

	lineItems := make([]payment.LineItem, 0, len(selections))
	for _, sel := range selections {
		p, ok := productsByID[sel.ProductID]
		if !ok {
			continue
		}

		lineItems = append(lineItems, payment.LineItem{
			Name:       p.Name,
			Currency:   currency.CurrencyINR,
			UnitAmount: p.UnitAmountMinor(),
			Quantity:   int64(sel.Quantity),
		})
	}

	return lineItems
}

// persistOrder creates the order and its items in one transaction.
func (s *CheckoutService) persistOrder(
	ctx context.Context,
	model checkout.Checkout,
) (order.Order, error) {
	now := time.Now()

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return order.Order{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Failed to roll back checkout transaction", "error", err)
		}
	}()

	inserted, err := work.OrderRepository().Insert(ctx, order.Order{
		UserID:    model.UserID,
		AddressID: model.AddressID,
		StoreID:   model.StoreID,
		IsPaid:    false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	items := make([]orderitem.OrderItem, len(model.Selections))
	for i, sel := range model.Selections {
		items[i] = orderitem.OrderItem{
			OrderID:   inserted.ID,
			ProductID: sel.ProductID,
			Quantity:  sel.Quantity,
		}
	}

	items, err = work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order items: %w", err)
	}

	if err := work.Commit(ctx); err != nil {
		return order.Order{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	inserted.OrderItems = items

	return inserted, nil
}
