package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// reconcileTTL is deliberately short: it only needs to collapse the burst of
// reconcile passes triggered by rapid successive assignments of one client.
const reconcileTTL = 2 * time.Second

// ReconcileDedup suppresses redundant reconcile passes backed by Redis.
// Key format: reconcile:<client_id>
type ReconcileDedup struct {
	client *redis.Client
}

// NewReconcileDedup creates a ReconcileDedup wrapping the given Redis client.
func NewReconcileDedup(client *redis.Client) *ReconcileDedup {
	return &ReconcileDedup{client: client}
}

// IsRecent reports whether a reconcile pass for this client ran within the TTL.
func (d *ReconcileDedup) IsRecent(ctx context.Context, clientID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(clientID)).Result()
	if err != nil {
		return false, fmt.Errorf("reconcile dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a reconcile pass for this client ran (expires after reconcileTTL).
func (d *ReconcileDedup) Mark(ctx context.Context, clientID string) error {
	return d.client.Set(ctx, d.key(clientID), "1", reconcileTTL).Err()
}

func (d *ReconcileDedup) key(clientID string) string {
	return "reconcile:" + clientID
}
