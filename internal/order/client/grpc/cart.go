package grpcclient

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	cartpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/v1"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository"
)

// CartClient определяет интерфейс для чтения корзины из Cart Service
type CartClient interface {
	// GetCartItems возвращает позиции корзины пользователя
	GetCartItems(ctx context.Context, userID string) ([]repository.OrderItem, error)

	// CalculateTotal возвращает сумму корзины пользователя
	CalculateTotal(ctx context.Context, userID string) (float64, error)
}

// CartClientAdapter адаптирует gRPC клиент к интерфейсу CartClient
type CartClientAdapter struct {
	client cartpb.CartServiceClient
	logger *zap.Logger
}

// NewCartClientAdapter создаёт новый адаптер для Cart клиента
func NewCartClientAdapter(client cartpb.CartServiceClient, logger *zap.Logger) CartClient {
	return &CartClientAdapter{
		client: client,
		logger: logger,
	}
}

// GetCartItems реализует CartClient интерфейс
func (a *CartClientAdapter) GetCartItems(ctx context.Context, userID string) ([]repository.OrderItem, error) {
	resp, err := a.client.GetCartItems(ctx, &cartpb.GetCartItemsRequest{UserId: userID})
	if err != nil {
		return nil, err
	}

	items := make([]repository.OrderItem, 0, len(resp.GetItems()))
	for _, it := range resp.GetItems() {
		items = append(items, repository.OrderItem{
			ProductID: it.GetProductId(),
			Quantity:  it.GetQuantity(),
		})
	}
	return items, nil
}

// CalculateTotal реализует CartClient интерфейс
func (a *CartClientAdapter) CalculateTotal(ctx context.Context, userID string) (float64, error) {
	resp, err := a.client.CalculateTotalPrice(ctx, &cartpb.CalculateTotalPriceRequest{UserId: userID})
	if err != nil {
		return 0, err
	}
	return resp.GetTotalPrice(), nil
}

// NewCartGRPCClient создаёт новый gRPC клиент для Cart Service
func NewCartGRPCClient(addr string, logger *zap.Logger) (cartpb.CartServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}

	client := cartpb.NewCartServiceClient(conn)
	return client, conn, nil
}
