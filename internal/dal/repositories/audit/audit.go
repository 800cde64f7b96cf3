package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/storefront-labs/checkout-svc/internal/dal/interfaces/ioutboxrepo"
	"github.com/storefront-labs/checkout-svc/internal/dal/rabbitmq"
	"github.com/storefront-labs/checkout-svc/internal/service/models/order"
	"github.com/storefront-labs/checkout-svc/internal/service/models/outbox"
	"golang.org/x/sync/errgroup"
)

const orderCreatedQueue = "checkout.order.created"

// AuditRabbitMQRepository publishes order-created audit events. Events that
// fail to publish are parked in the outbox for the retry worker.
type AuditRabbitMQRepository struct {
	client     *rabbitmq.Client
	outboxRepo ioutboxrepo.IOutboxRepository
	queueName  string
}

func NewAuditRabbitMQRepository(
	client *rabbitmq.Client,
	outboxRepo ioutboxrepo.IOutboxRepository,
) *AuditRabbitMQRepository {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       orderCreatedQueue,
		Durable:    false,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		panic(err)
	}

	return &AuditRabbitMQRepository{
		client:     client,
		outboxRepo: outboxRepo,
		queueName:  queue.Name,
	}
}

// LogOrdersCreated publishes one audit event per created order.
func (r *AuditRabbitMQRepository) LogOrdersCreated(ctx context.Context, orders []order.Order) error {
	auditCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	g, auditCtx := errgroup.WithContext(auditCtx)
	g.SetLimit(3)

	for _, ord := range orders {
		g.Go(func() error {
			orderData, err := json.Marshal(ord)
			if err != nil {
				return err
			}

			if err := r.client.Publish("", r.queueName, "application/json", orderData); err != nil {
				slog.Warn("Failed to publish audit event, parking in outbox",
					"order_id", ord.ID,
					"error", err,
				)

				return r.parkInOutbox(auditCtx, orderData)
			}

			return nil
		})
	}

	return g.Wait()
}

func (r *AuditRabbitMQRepository) parkInOutbox(ctx context.Context, payload []byte) error {
	now := time.Now()

	return r.outboxRepo.Insert(ctx, outbox.OutboxMessage{
		QueueName:   r.queueName,
		RoutingKey:  r.queueName,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  5,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
}
