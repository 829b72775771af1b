package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/infilects/client-admin/internal/api/metrics"
	"github.com/infilects/client-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dedup suppresses redundant reconcile passes (Redis-backed in production).
type Dedup interface {
	IsRecent(ctx context.Context, clientID string) (bool, error)
	Mark(ctx context.Context, clientID string) error
}

// Reconciler routes assignment-repair tasks to a fixed set of workers using
// consistent hashing on the client id, guaranteeing per-client ordering of
// reconcile passes. It is the compensating action for the sequential
// dual-write performed by the assignment service.
type Reconciler struct {
	workers []chan string
	service ports.AssignmentReconciler
	dedup   Dedup
	log     zerolog.Logger
}

// NewReconciler creates a Reconciler with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewReconciler(numWorkers int, service ports.AssignmentReconciler, dedup Dedup, log zerolog.Logger) *Reconciler {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Reconciler{
		workers: make([]chan string, numWorkers),
		service: service,
		dedup:   dedup,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan string, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *Reconciler) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules a reconcile pass for the client. Non-blocking up to
// channelBuffer capacity.
func (r *Reconciler) Enqueue(clientID string) {
	r.workers[r.shardIndex(clientID)] <- clientID
}

// shardIndex maps a client id deterministically to a worker index.
func (r *Reconciler) shardIndex(clientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Reconciler) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case clientID, ok := <-ch:
			if !ok {
				return
			}
			r.process(ctx, id, clientID)
		}
	}
}

func (r *Reconciler) process(ctx context.Context, workerID int, clientID string) {
	if r.dedup != nil {
		recent, err := r.dedup.IsRecent(ctx, clientID)
		if err != nil {
			r.log.Warn().Err(err).Str("client_id", clientID).Msg("reconcile dedup check failed, processing anyway")
		} else if recent {
			metrics.ReconcileTotal.WithLabelValues("skipped").Inc()
			return
		}
		if err := r.dedup.Mark(ctx, clientID); err != nil {
			r.log.Warn().Err(err).Str("client_id", clientID).Msg("failed to set reconcile dedup key")
		}
	}

	released, err := r.service.Reconcile(ctx, clientID)
	if err != nil {
		metrics.ReconcileTotal.WithLabelValues("error").Inc()
		r.log.Error().Err(err).
			Str("client_id", clientID).
			Int("worker_id", workerID).
			Msg("reconcile pass failed")
		return
	}

	if released > 0 {
		metrics.ReconcileTotal.WithLabelValues("repaired").Inc()
		metrics.ReconcileRepairsTotal.Add(float64(released))
	} else {
		metrics.ReconcileTotal.WithLabelValues("clean").Inc()
	}
}
