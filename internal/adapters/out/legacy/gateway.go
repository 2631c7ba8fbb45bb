// Package legacy provides the HTTP gateway to the legacy store management
// system. Store changes are mirrored there after the local transaction
// commits; pushes that fail are queued on the gateway and retried by the
// sync job, so an outage of the legacy system never blocks store commands.
package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fulfilment/internal/core/domain/model/store"

	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

// storePayload is the wire representation the legacy system accepts.
type storePayload struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	QuantityProductsInStock int       `json:"quantityProductsInStock"`
}

type operation string

const (
	opCreate operation = "create"
	opUpdate operation = "update"
)

type pendingNotification struct {
	op      operation
	payload storePayload
}

// Gateway mirrors store changes to the legacy store management system over
// HTTP. Failed notifications are kept in an in-memory queue, newest last,
// and retried through RetryPending.
type Gateway struct {
	baseURL string
	client  *http.Client

	mu      sync.Mutex
	pending []pendingNotification
}

// NewGateway creates a gateway for the legacy store management system
// reachable at baseURL.
func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// NotifyStoreCreated pushes a newly created store to the legacy system.
// On failure the notification is queued for the sync job and the error is
// returned so the caller can log it.
func (g *Gateway) NotifyStoreCreated(ctx context.Context, aggregate *store.Store) error {
	return g.notify(ctx, pendingNotification{op: opCreate, payload: toPayload(aggregate)})
}

// NotifyStoreUpdated pushes an updated store to the legacy system.
func (g *Gateway) NotifyStoreUpdated(ctx context.Context, aggregate *store.Store) error {
	return g.notify(ctx, pendingNotification{op: opUpdate, payload: toPayload(aggregate)})
}

// RetryPending replays queued notifications in arrival order. Notifications
// that fail again stay queued; the first failure stops the pass so ordering
// per store is preserved.
func (g *Gateway) RetryPending(ctx context.Context) error {
	g.mu.Lock()
	queued := g.pending
	g.pending = nil
	g.mu.Unlock()

	for i, notification := range queued {
		if err := g.push(ctx, notification); err != nil {
			g.mu.Lock()
			g.pending = append(queued[i:], g.pending...)
			g.mu.Unlock()
			return err
		}

		slog.Info("replayed store notification to legacy store manager",
			"storeId", notification.payload.ID,
			"operation", string(notification.op))
	}

	return nil
}

// PendingCount reports how many notifications await retry.
func (g *Gateway) PendingCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *Gateway) notify(ctx context.Context, notification pendingNotification) error {
	if err := g.push(ctx, notification); err != nil {
		g.mu.Lock()
		g.pending = append(g.pending, notification)
		g.mu.Unlock()
		return err
	}

	return nil
}

func (g *Gateway) push(ctx context.Context, notification pendingNotification) error {
	body, err := json.Marshal(notification.payload)
	if err != nil {
		return err
	}

	method := http.MethodPost
	url := g.baseURL + "/stores"
	if notification.op == opUpdate {
		method = http.MethodPut
		url = fmt.Sprintf("%s/stores/%s", g.baseURL, notification.payload.ID)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("legacy store manager returned status %d", resp.StatusCode)
	}

	return nil
}

func toPayload(aggregate *store.Store) storePayload {
	return storePayload{
		ID:                      aggregate.ID(),
		Name:                    aggregate.Name(),
		QuantityProductsInStock: aggregate.QuantityProductsInStock(),
	}
}
