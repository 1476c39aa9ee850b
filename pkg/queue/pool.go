package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skiftkoll/skiftkoll/ent"
	"github.com/skiftkoll/skiftkoll/ent/capturesession"
	"github.com/skiftkoll/skiftkoll/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the orphan scanner.
type WorkerPool struct {
	workerID        string
	client          *ent.Client
	config          config.QueueConfig
	states          config.StateLabels
	sessionExecutor SessionExecutor
	workers         []*Worker
	stopCh          chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup
	started         bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. workerID is this process's
// identity; individual workers derive their lease ids from it.
func NewWorkerPool(workerID string, client *ent.Client, cfg config.QueueConfig, states config.StateLabels, executor SessionExecutor) *WorkerPool {
	return &WorkerPool{
		workerID:        workerID,
		client:          client,
		config:          cfg,
		states:          states,
		sessionExecutor: executor,
		workers:         make([]*Worker, 0, cfg.WorkerCount),
		stopCh:          make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "worker_id", p.workerID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_id", p.workerID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		leaseID := fmt.Sprintf("%s-worker-%d", p.workerID, i)
		worker := NewWorker(leaseID, p.client, p.config, p.states, p.sessionExecutor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current sessions before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.CaptureSession.Query().
		Where(capturesession.StateEQ(p.states.Open)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"worker_id", p.workerID, "error", errQ)
	}

	var waitingForIdle int
	var errW error
	if len(p.workers) > 0 {
		waitingForIdle, errW = p.workers[0].countWaitingForIdle(ctx)
		if errW != nil {
			slog.Error("Failed to query idle-waiting sessions for health check",
				"worker_id", p.workerID, "error", errW)
		}
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errW == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errW != nil {
		dbError = fmt.Sprintf("idle-waiting query failed: %v", errW)
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		WorkerID:         p.workerID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		WaitingForIdle:   waitingForIdle,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}
