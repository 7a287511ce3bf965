package services

import (
	"context"
	"testing"
	"time"

	"go-laundry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStepSource(t *testing.T) {
	src := StepSource{Step: 1}
	assert.Equal(t, 1, src.Next(0))
	assert.Equal(t, 100, src.Next(99))
}

func TestSimulator_RunsOrderToReady(t *testing.T) {
	ctx := context.Background()

	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	id, err := svc.Create(ctx, &models.LaundryOrder{
		UserID: "user-1", Items: 1, Status: models.OrderStatusProcessing, Progress: 95,
	})
	require.NoError(t, err)

	sim := NewSimulator(svc, 2*time.Millisecond, zap.NewNop())
	require.True(t, sim.Start(id))

	assert.Eventually(t, func() bool {
		order := svc.Get(ctx, id)
		return order != nil && order.Status == models.OrderStatusReady && order.Progress == 100
	}, 2*time.Second, 5*time.Millisecond)

	// The ticker unregisters itself once the order is ready.
	assert.Eventually(t, func() bool { return !sim.Running(id) }, 2*time.Second, 5*time.Millisecond)
}

func TestSimulator_StartAndStop(t *testing.T) {
	ctx := context.Background()

	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	id, err := svc.Create(ctx, &models.LaundryOrder{
		UserID: "user-1", Items: 1, Status: models.OrderStatusPending,
	})
	require.NoError(t, err)

	sim := NewSimulator(svc, time.Hour, zap.NewNop())

	t.Run("double start is rejected", func(t *testing.T) {
		require.True(t, sim.Start(id))
		assert.False(t, sim.Start(id))
		assert.True(t, sim.Running(id))
	})

	t.Run("stop cancels the ticker", func(t *testing.T) {
		assert.True(t, sim.Stop(id))
		assert.False(t, sim.Running(id))
	})

	t.Run("stop without a ticker reports false", func(t *testing.T) {
		assert.False(t, sim.Stop(id))
	})
}

func TestSimulator_StopAllWaitsForTickers(t *testing.T) {
	ctx := context.Background()

	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := svc.Create(ctx, &models.LaundryOrder{
			UserID: "user-1", Items: 1, Status: models.OrderStatusProcessing,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	sim := NewSimulator(svc, time.Millisecond, zap.NewNop())
	for _, id := range ids {
		require.True(t, sim.Start(id))
	}

	sim.StopAll()

	for _, id := range ids {
		assert.False(t, sim.Running(id))
	}
}

// slowGetStore delays point-gets so a tick can be caught in flight.
type slowGetStore struct {
	*fakeOrderStore
	delay time.Duration
}

func (s *slowGetStore) Get(ctx context.Context, id string) (*models.LaundryOrder, error) {
	time.Sleep(s.delay)
	return s.fakeOrderStore.Get(ctx, id)
}

func TestSimulator_RestartSurvivesInFlightTick(t *testing.T) {
	ctx := context.Background()

	store := &slowGetStore{fakeOrderStore: newFakeOrderStore(), delay: 30 * time.Millisecond}
	svc := NewOrderService(store, zap.NewNop())

	id, err := svc.Create(ctx, &models.LaundryOrder{
		UserID: "user-1", Items: 1, Status: models.OrderStatusProcessing,
	})
	require.NoError(t, err)

	sim := NewSimulator(svc, 2*time.Millisecond, zap.NewNop())
	require.True(t, sim.Start(id))

	// Let the first tick enter the slow store read, then stop and restart
	// while it is still in flight.
	time.Sleep(10 * time.Millisecond)
	require.True(t, sim.Stop(id))
	require.True(t, sim.Start(id))

	// The stopped goroutine wakes up after its read returns; it must not
	// take the restarted ticker's registration down with it.
	time.Sleep(100 * time.Millisecond)
	assert.True(t, sim.Running(id))

	sim.StopAll()
	assert.False(t, sim.Running(id))
}

func TestSimulator_StopsForMissingOrder(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	sim := NewSimulator(svc, time.Millisecond, zap.NewNop())
	require.True(t, sim.Start("ffffffffffffffffffffffff"))

	assert.Eventually(t, func() bool {
		return !sim.Running("ffffffffffffffffffffffff")
	}, 2*time.Second, 5*time.Millisecond)
}
