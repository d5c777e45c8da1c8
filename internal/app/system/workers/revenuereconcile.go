// internal/app/system/workers/revenuereconcile.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.uber.org/zap"
)

// RevenueReconciler is a background worker that re-derives the revenue
// snapshots of recent daily reports. Saves only log a failed snapshot
// write, so this loop is what eventually repairs it.
type RevenueReconciler struct {
	reports  repository.DailyReportRepository
	addOns   repository.AddOnRepository
	revenues repository.RevenueRepository
	price    float64
	log      *zap.Logger
	interval time.Duration
	lookback int
	now      func() time.Time
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewRevenueReconciler creates a reconciler that, every interval, rewrites
// the snapshots of the last lookbackDays days (all organizations).
func NewRevenueReconciler(
	reports repository.DailyReportRepository,
	addOns repository.AddOnRepository,
	revenues repository.RevenueRepository,
	hourlyUnitPrice float64,
	logger *zap.Logger,
	interval time.Duration,
	lookbackDays int,
	now func() time.Time,
) *RevenueReconciler {
	if lookbackDays < 1 {
		lookbackDays = 1
	}
	if now == nil {
		now = time.Now
	}
	return &RevenueReconciler{
		reports:  reports,
		addOns:   addOns,
		revenues: revenues,
		price:    hourlyUnitPrice,
		log:      logger,
		interval: interval,
		lookback: lookbackDays,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background loop.
func (w *RevenueReconciler) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("revenue reconcile worker started",
		zap.Duration("interval", w.interval),
		zap.Int("lookback_days", w.lookback))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *RevenueReconciler) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("revenue reconcile worker stopped")
}

func (w *RevenueReconciler) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := w.RunOnce(ctx)
			cancel()
			if err != nil {
				w.log.Error("revenue reconcile failed", zap.Int("written", n), zap.Error(err))
			} else if n > 0 {
				w.log.Debug("revenue snapshots reconciled", zap.Int("count", n))
			}
		}
	}
}

// RunOnce rewrites the snapshot of every report in the lookback window and
// returns how many were written. It stops at the first write error.
func (w *RevenueReconciler) RunOnce(ctx context.Context) (int, error) {
	from, to := kpi.Window(w.lookback).Range(w.now())
	reports, err := w.reports.ListByOrgRange(ctx, "", from, to)
	if err != nil {
		return 0, err
	}
	if len(reports) == 0 {
		return 0, nil
	}
	addOns, err := w.addOns.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, r := range reports {
		if err := w.revenues.Upsert(ctx, kpi.DaySnapshot(r, addOns, w.price)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

