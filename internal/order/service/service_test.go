package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository"
)

// fakeOrderRepo — stateful in-memory хранилище заказов
type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[string]repository.Order
	nextID     int
	failCreate error // если задано, Create возвращает эту ошибку
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]repository.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order repository.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return "", f.failCreate
	}
	f.nextID++
	order.ID = fmt.Sprintf("order-%d", f.nextID)
	f.orders[order.ID] = order
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, orderID string) (repository.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return repository.Order{}, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) GetByUserID(_ context.Context, userID string) ([]repository.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []repository.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.Status = status
	f.orders[orderID] = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[orderID]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(f.orders, orderID)
	return nil
}

func (f *fakeOrderRepo) status(t *testing.T, orderID string) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[orderID]
	require.True(t, ok, "order %s not found", orderID)
	return o.Status
}

// fakeCheckoutStore записывает снятия корзин и возвраты остатков
type fakeCheckoutStore struct {
	mu          sync.Mutex
	droppedFor  []string
	restocked   [][]repository.OrderItem
	failDrop    error
	failRestock error
}

func (f *fakeCheckoutStore) DropCart(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDrop != nil {
		return f.failDrop
	}
	f.droppedFor = append(f.droppedFor, userID)
	return nil
}

func (f *fakeCheckoutStore) RestockItems(_ context.Context, items []repository.OrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRestock != nil {
		return f.failRestock
	}
	f.restocked = append(f.restocked, items)
	return nil
}

// fakeCartReader отдаёт фиксированную корзину
type fakeCartReader struct {
	items     []repository.OrderItem
	total     float64
	failItems error
	failTotal error
}

func (f *fakeCartReader) GetCartItems(_ context.Context, _ string) ([]repository.OrderItem, error) {
	if f.failItems != nil {
		return nil, f.failItems
	}
	return f.items, nil
}

func (f *fakeCartReader) CalculateTotal(_ context.Context, _ string) (float64, error) {
	if f.failTotal != nil {
		return 0, f.failTotal
	}
	return f.total, nil
}

// recordingPublisher записывает опубликованные события
type recordingPublisher struct {
	mu      sync.Mutex
	events  []OrderCreatedEvent
	failAll error
}

func (p *recordingPublisher) PublishOrderCreated(_ context.Context, event OrderCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failAll != nil {
		return p.failAll
	}
	p.events = append(p.events, event)
	return nil
}

func newTestService(orders *fakeOrderRepo, checkout *fakeCheckoutStore, cart *fakeCartReader, publisher *recordingPublisher) *Service {
	return NewService(zap.NewNop(), orders, checkout, cart, publisher)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{}
	cart := &fakeCartReader{
		items: []repository.OrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		total: 34.97,
	}
	publisher := &recordingPublisher{}
	svc := newTestService(orders, checkout, cart, publisher)

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	order, err := orders.GetByID(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, "user-1", order.UserID)
	require.Equal(t, repository.StatusPlaced, order.Status)
	require.Equal(t, 34.97, order.TotalPrice)
	require.Len(t, order.Items, 2)

	// Корзина снята без возврата остатков — резерв перешёл к заказу
	require.Equal(t, []string{"user-1"}, checkout.droppedFor)
	require.Empty(t, checkout.restocked)

	// Событие опубликовано
	require.Len(t, publisher.events, 1)
	require.Equal(t, orderID, publisher.events[0].OrderID)
	require.Equal(t, "user-1", publisher.events[0].UserID)
	require.Equal(t, 34.97, publisher.events[0].TotalPrice)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{}
	cart := &fakeCartReader{items: nil}
	publisher := &recordingPublisher{}
	svc := newTestService(orders, checkout, cart, publisher)

	_, err := svc.CreateOrder(ctx, "user-1")
	require.ErrorIs(t, err, ErrEmptyCart)

	require.Empty(t, orders.orders)
	require.Empty(t, checkout.droppedFor)
	require.Empty(t, publisher.events)
}

func TestCreateOrder_EmptyUserID(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), &fakeCheckoutStore{}, &fakeCartReader{}, &recordingPublisher{})

	_, err := svc.CreateOrder(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrder_CartUnavailable(t *testing.T) {
	orders := newFakeOrderRepo()
	cart := &fakeCartReader{failItems: errors.New("connection refused")}
	svc := newTestService(orders, &fakeCheckoutStore{}, cart, &recordingPublisher{})

	_, err := svc.CreateOrder(context.Background(), "user-1")
	require.Error(t, err)
	require.Empty(t, orders.orders)
}

func TestCreateOrder_DropCartFailureDoesNotFailOrder(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{failDrop: errors.New("mongo down")}
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 9.99,
	}
	publisher := &recordingPublisher{}
	svc := newTestService(orders, checkout, cart, publisher)

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)

	// Заказ действителен несмотря на устаревшую корзину
	_, err = orders.GetByID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, publisher.events, 1)
}

func TestCreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{}
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 5.0,
	}
	publisher := &recordingPublisher{failAll: errors.New("kafka unavailable")}
	svc := newTestService(orders, checkout, cart, publisher)

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)
	require.Equal(t, []string{"user-1"}, checkout.droppedFor)
}

func TestCancelOrder_RestocksItems(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{}
	cart := &fakeCartReader{
		items: []repository.OrderItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 1},
		},
		total: 50,
	}
	svc := newTestService(orders, checkout, cart, &recordingPublisher{})

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)

	err = svc.CancelOrder(ctx, orderID)
	require.NoError(t, err)

	require.Equal(t, repository.StatusCancelled, orders.status(t, orderID))

	// Резерв вернулся в каталог
	require.Len(t, checkout.restocked, 1)
	require.Equal(t, cart.items, checkout.restocked[0])
}

func TestCancelOrder_OnlyFromPlaced(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{}
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 10,
	}
	svc := newTestService(orders, checkout, cart, &recordingPublisher{})

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, orderID, repository.StatusShipped))

	err = svc.CancelOrder(ctx, orderID)
	require.ErrorIs(t, err, ErrNotCancellable)

	// Статус и остатки не тронуты
	require.Equal(t, repository.StatusShipped, orders.status(t, orderID))
	require.Empty(t, checkout.restocked)
}

func TestCancelOrder_NotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), &fakeCheckoutStore{}, &fakeCartReader{}, &recordingPublisher{})

	err := svc.CancelOrder(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestCancelOrder_RestockFailureDoesNotFailCancel(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	checkout := &fakeCheckoutStore{failRestock: errors.New("mongo down")}
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 10,
	}
	svc := newTestService(orders, checkout, cart, &recordingPublisher{})

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)

	err = svc.CancelOrder(ctx, orderID)
	require.NoError(t, err)
	require.Equal(t, repository.StatusCancelled, orders.status(t, orderID))
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 10,
	}
	svc := newTestService(orders, &fakeCheckoutStore{}, cart, &recordingPublisher{})

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, orderID, repository.StatusShipped))
	require.Equal(t, repository.StatusShipped, orders.status(t, orderID))

	require.NoError(t, svc.UpdateStatus(ctx, orderID, repository.StatusDelivered))
	require.Equal(t, repository.StatusDelivered, orders.status(t, orderID))
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), &fakeCheckoutStore{}, &fakeCartReader{}, &recordingPublisher{})

	err := svc.UpdateStatus(context.Background(), "order-1", "returned")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), &fakeCheckoutStore{}, &fakeCartReader{}, &recordingPublisher{})

	err := svc.UpdateStatus(context.Background(), "missing", repository.StatusShipped)
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestGetOrdersByUser(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 10,
	}
	svc := newTestService(orders, &fakeCheckoutStore{}, cart, &recordingPublisher{})

	_, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, "user-2")
	require.NoError(t, err)

	list, err := svc.GetOrdersByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = svc.GetOrdersByUser(ctx, "user-3")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()

	orders := newFakeOrderRepo()
	cart := &fakeCartReader{
		items: []repository.OrderItem{{ProductID: "p1", Quantity: 1}},
		total: 10,
	}
	svc := newTestService(orders, &fakeCheckoutStore{}, cart, &recordingPublisher{})

	orderID, err := svc.CreateOrder(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, orderID))

	_, err = svc.GetOrder(ctx, orderID)
	require.ErrorIs(t, err, repository.ErrOrderNotFound)

	err = svc.DeleteOrder(ctx, orderID)
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}
