package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	outboxmodel "github.com/storefront-labs/checkout-svc/internal/service/models/outbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutboxRepo struct {
	pending      []outboxmodel.OutboxMessage
	deleted      []int64
	retryUpdates map[int64]int
}

func (f *fakeOutboxRepo) Insert(_ context.Context, _ outboxmodel.OutboxMessage) error {
	return nil
}

func (f *fakeOutboxRepo) GetPendingMessages(_ context.Context, _ int) ([]outboxmodel.OutboxMessage, error) {
	return f.pending, nil
}

func (f *fakeOutboxRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeOutboxRepo) UpdateRetry(
	_ context.Context,
	id int64,
	retryCount int,
	_ string,
	_ time.Time,
) error {
	if f.retryUpdates == nil {
		f.retryUpdates = map[int64]int{}
	}
	f.retryUpdates[id] = retryCount
	return nil
}

type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) Publish(_, routingKey, _ string, _ []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, routingKey)
	return nil
}

func TestProcessMessages_DeletesAfterPublish(t *testing.T) {
	repo := &fakeOutboxRepo{
		pending: []outboxmodel.OutboxMessage{
			{ID: 1, RoutingKey: "checkout.order.created", Payload: []byte(`{}`)},
			{ID: 2, RoutingKey: "checkout.order.created", Payload: []byte(`{}`)},
		},
	}
	pub := &fakePublisher{}

	w := NewWorker(repo, pub)
	w.processMessages(context.Background())

	require.Len(t, pub.published, 2)
	assert.Equal(t, []int64{1, 2}, repo.deleted)
	assert.Empty(t, repo.retryUpdates)
}

func TestProcessMessages_SchedulesRetryOnFailure(t *testing.T) {
	repo := &fakeOutboxRepo{
		pending: []outboxmodel.OutboxMessage{
			{ID: 7, RoutingKey: "checkout.order.created", RetryCount: 1},
		},
	}
	pub := &fakePublisher{err: errors.New("broker unavailable")}

	w := NewWorker(repo, pub)
	w.processMessages(context.Background())

	assert.Empty(t, repo.deleted)
	assert.Equal(t, 2, repo.retryUpdates[7])
}
