package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go-laundry/metrics"
	"go-laundry/models"

	"go.uber.org/zap"
)

// ErrOrderNotFound is returned by write operations that need an existing order.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the persistence gateway for laundry orders.
type OrderStore interface {
	Insert(ctx context.Context, order *models.LaundryOrder) (string, error)
	Get(ctx context.Context, id string) (*models.LaundryOrder, error)
	ListByUser(ctx context.Context, userID string) ([]models.LaundryOrder, error)
	ListAll(ctx context.Context) ([]models.LaundryOrder, error)
	Update(ctx context.Context, id string, upd models.OrderUpdate) error
	Delete(ctx context.Context, id string) error
}

// OrderService owns the order lifecycle: status/progress correlation,
// completion stamping and the active-order query. Read operations fail soft:
// a backend failure is logged and surfaced as an empty result, never as an
// error. Write operations propagate failures to the caller.
type OrderService struct {
	store   OrderStore
	source  ProgressSource
	onReady func(models.LaundryOrder)
	log     *zap.Logger
	now     func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(store OrderStore, log *zap.Logger) *OrderService {
	return &OrderService{
		store:  store,
		source: StepSource{Step: 1},
		log:    log,
		now:    time.Now,
	}
}

// SetProgressSource replaces the default +1-per-tick progress source.
func (s *OrderService) SetProgressSource(src ProgressSource) {
	s.source = src
}

// SetReadyHook registers a callback fired once an order's progress reaches
// 100 through AdvanceProgress (e.g. the laundry-ready notification).
func (s *OrderService) SetReadyHook(hook func(models.LaundryOrder)) {
	s.onReady = hook
}

// Create persists a new order with the caller-chosen status and returns its
// identifier. The breakdown sum is not validated against the item count; a
// mismatch is only logged.
func (s *OrderService) Create(ctx context.Context, order *models.LaundryOrder) (string, error) {
	now := s.now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	if order.ClothItems != nil && order.ClothItems.Total() != order.Items {
		s.log.Warn("cloth item breakdown does not match item count",
			zap.Int("items", order.Items),
			zap.Int("breakdown", order.ClothItems.Total()))
	}

	id, err := s.store.Insert(ctx, order)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_create").Inc()
		return "", err
	}
	metrics.OrdersCreatedTotal.Inc()
	return id, nil
}

// Get returns the order, or nil when it is missing or the backend failed.
func (s *OrderService) Get(ctx context.Context, id string) *models.LaundryOrder {
	order, err := s.store.Get(ctx, id)
	if err != nil {
		s.log.Warn("failed to get order", zap.String("orderId", id), zap.Error(err))
		return nil
	}
	return order
}

// ListForUser returns the user's orders, newest first. The store query has no
// ordering guarantee, so the sort happens in memory.
func (s *OrderService) ListForUser(ctx context.Context, userID string) []models.LaundryOrder {
	orders, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn("failed to list user orders", zap.String("userId", userID), zap.Error(err))
		return nil
	}
	sortOrdersDesc(orders)
	return orders
}

// ListAll returns every order across all users, newest first (admin view).
func (s *OrderService) ListAll(ctx context.Context) []models.LaundryOrder {
	orders, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Warn("failed to list orders", zap.Error(err))
		return nil
	}
	sortOrdersDesc(orders)
	return orders
}

// GetCurrentActive returns the user's most recently created order whose
// status is pending, processing or ready, or nil when there is none.
func (s *OrderService) GetCurrentActive(ctx context.Context, userID string) *models.LaundryOrder {
	orders := s.ListForUser(ctx, userID)

	for i := range orders {
		if models.ActiveOrderStatus(orders[i].Status) {
			return &orders[i]
		}
	}
	return nil
}

// Update merges the supplied fields into the order and refreshes the update
// timestamp. A transition to "completed" without an explicit completion
// timestamp stamps one; an explicit timestamp is preserved as given.
// Progress/status correlation is not re-validated here.
func (s *OrderService) Update(ctx context.Context, id string, upd models.OrderUpdate) error {
	now := s.now().UTC()
	upd.UpdatedAt = &now

	if upd.Status != nil && *upd.Status == models.OrderStatusCompleted && upd.CompletedAt == nil {
		upd.CompletedAt = &now
	}

	if err := s.store.Update(ctx, id, upd); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_update").Inc()
		return err
	}
	return nil
}

// UpdateProgress sets the order's progress, clamped to [0, 100]. Reaching 100
// forces the status to "ready"; completion stays an explicit staff step.
func (s *OrderService) UpdateProgress(ctx context.Context, id string, progress int) error {
	if progress < 0 {
		progress = 0
	}

	now := s.now().UTC()
	upd := models.OrderUpdate{UpdatedAt: &now}

	if progress >= 100 {
		progress = 100
		ready := models.OrderStatusReady
		upd.Status = &ready
	}
	upd.Progress = &progress

	if err := s.store.Update(ctx, id, upd); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_progress").Inc()
		return err
	}
	metrics.ProgressTicksTotal.Inc()
	return nil
}

// AdvanceProgress performs one simulated-progress tick: it asks the progress
// source for the next value and stores it. It returns the new progress.
// Completed orders and orders already at 100 are left untouched.
func (s *OrderService) AdvanceProgress(ctx context.Context, id string) (int, error) {
	order, err := s.store.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, ErrOrderNotFound
	}
	if !models.ActiveOrderStatus(order.Status) || order.Progress >= 100 {
		return order.Progress, nil
	}

	next := s.source.Next(order.Progress)
	if err := s.UpdateProgress(ctx, id, next); err != nil {
		return order.Progress, err
	}

	if next >= 100 {
		next = 100
		if s.onReady != nil {
			ready := *order
			ready.Progress = 100
			ready.Status = models.OrderStatusReady
			s.onReady(ready)
		}
	}
	return next, nil
}

// Delete removes the order. Deleting a missing order is not an error.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("order_delete").Inc()
		return err
	}
	return nil
}

func sortOrdersDesc(orders []models.LaundryOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
