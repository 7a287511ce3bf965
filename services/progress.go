package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTickInterval matches the dashboard's simulated-progress cadence.
const DefaultTickInterval = 3 * time.Second

// ProgressSource supplies the next progress value for an order. The timer
// simulation uses StepSource; a real fulfillment signal can be plugged in
// without touching the order lifecycle.
type ProgressSource interface {
	Next(current int) int
}

// StepSource advances progress by a fixed step per tick.
type StepSource struct {
	Step int
}

// Next returns the progress after one tick.
func (s StepSource) Next(current int) int {
	return current + s.Step
}

// Simulator drives simulated elapsed-time progress for orders: one goroutine
// per watched order, ticking AdvanceProgress until the order is ready or the
// watch is stopped. Every ticker is cancellable so an abandoned screen never
// leaks a running timer.
type Simulator struct {
	orders   *OrderService
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	watches map[string]*watch
	wg      sync.WaitGroup
}

// watch is one ticker registration. The pointer identifies the run that owns
// the map entry, so a stopped goroutine never tears down a replacement
// started under the same order id.
type watch struct {
	cancel context.CancelFunc
}

// NewSimulator creates a Simulator ticking at the given interval.
func NewSimulator(orders *OrderService, interval time.Duration, log *zap.Logger) *Simulator {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Simulator{
		orders:   orders,
		interval: interval,
		log:      log,
		watches:  make(map[string]*watch),
	}
}

// Start launches a progress ticker for the order. It reports false when a
// ticker for this order is already running.
func (s *Simulator) Start(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, running := s.watches[orderID]; running {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watch{cancel: cancel}
	s.watches[orderID] = w

	s.wg.Add(1)
	go s.run(ctx, orderID, w)
	return true
}

// Stop cancels the order's ticker. It reports false when none was running.
func (s *Simulator) Stop(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, running := s.watches[orderID]
	if !running {
		return false
	}
	w.cancel()
	delete(s.watches, orderID)
	return true
}

// StopAll cancels every running ticker and waits for them to exit.
func (s *Simulator) StopAll() {
	s.mu.Lock()
	for id, w := range s.watches {
		w.cancel()
		delete(s.watches, id)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Running reports whether a ticker is active for the order.
func (s *Simulator) Running(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, running := s.watches[orderID]
	return running
}

// unregister drops the order's map entry only if this run still owns it.
func (s *Simulator) unregister(orderID string, own *watch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watches[orderID] == own {
		own.cancel()
		delete(s.watches, orderID)
	}
}

func (s *Simulator) run(ctx context.Context, orderID string, w *watch) {
	defer s.wg.Done()
	defer s.unregister(orderID, w)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			progress, err := s.orders.AdvanceProgress(ctx, orderID)
			if errors.Is(err, ErrOrderNotFound) {
				s.log.Warn("stopping progress ticker for missing order", zap.String("orderId", orderID))
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warn("progress tick failed", zap.String("orderId", orderID), zap.Error(err))
				continue
			}
			if progress >= 100 {
				return
			}
		}
	}
}
