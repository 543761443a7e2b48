package grpcapi

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/service"
	orderpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/v1"
)

// Handler содержит gRPC-обработчики для Order Service
type Handler struct {
	orderpb.UnimplementedOrderServiceServer
	orderService *service.Service
	logger       *zap.Logger
}

// NewHandler создаёт новый gRPC handler
func NewHandler(orderService *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		orderService: orderService,
		logger:       logger,
	}
}

func toProto(o repository.Order) *orderpb.Order {
	items := make([]*orderpb.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &orderpb.OrderItem{
			ProductId: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return &orderpb.Order{
		OrderId:    o.ID,
		UserId:     o.UserID,
		Items:      items,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateOrder обрабатывает gRPC запрос CreateOrder
func (h *Handler) CreateOrder(ctx context.Context, req *orderpb.CreateOrderRequest) (*orderpb.CreateOrderResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	orderID, err := h.orderService.CreateOrder(ctx, req.GetUserId())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return nil, status.Error(codes.FailedPrecondition, "cart is empty")
		}
		h.logger.Error("failed to create order", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &orderpb.CreateOrderResponse{
		Message: "Order placed successfully",
		OrderId: orderID,
	}, nil
}

// GetOrderById обрабатывает gRPC запрос GetOrderById
func (h *Handler) GetOrderById(ctx context.Context, req *orderpb.GetOrderByIdRequest) (*orderpb.Order, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := h.orderService.GetOrder(ctx, req.GetOrderId())
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, status.Error(codes.NotFound, "order not found")
		}
		h.logger.Error("failed to get order", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return toProto(order), nil
}

// GetOrdersByUserId обрабатывает gRPC запрос GetOrdersByUserId
func (h *Handler) GetOrdersByUserId(ctx context.Context, req *orderpb.GetOrdersByUserIdRequest) (*orderpb.OrderList, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	orders, err := h.orderService.GetOrdersByUser(ctx, req.GetUserId())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	list := make([]*orderpb.Order, 0, len(orders))
	for _, o := range orders {
		list = append(list, toProto(o))
	}
	return &orderpb.OrderList{Orders: list}, nil
}

// CancelOrder обрабатывает gRPC запрос CancelOrder
func (h *Handler) CancelOrder(ctx context.Context, req *orderpb.CancelOrderRequest) (*orderpb.GenericResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	if err := h.orderService.CancelOrder(ctx, req.GetOrderId()); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, status.Error(codes.NotFound, "order not found")
		}
		if errors.Is(err, service.ErrNotCancellable) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		h.logger.Error("failed to cancel order", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &orderpb.GenericResponse{Message: "Order cancelled successfully"}, nil
}

// UpdateOrderStatus обрабатывает gRPC запрос UpdateOrderStatus
func (h *Handler) UpdateOrderStatus(ctx context.Context, req *orderpb.UpdateOrderStatusRequest) (*orderpb.GenericResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if req.GetStatus() == "" {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	if err := h.orderService.UpdateStatus(ctx, req.GetOrderId(), req.GetStatus()); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, status.Error(codes.NotFound, "order not found")
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to update order status", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &orderpb.GenericResponse{Message: "Order status updated successfully"}, nil
}

// DeleteOrder обрабатывает gRPC запрос DeleteOrder
func (h *Handler) DeleteOrder(ctx context.Context, req *orderpb.DeleteOrderRequest) (*orderpb.GenericResponse, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	if err := h.orderService.DeleteOrder(ctx, req.GetOrderId()); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, status.Error(codes.NotFound, "order not found")
		}
		h.logger.Error("failed to delete order", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &orderpb.GenericResponse{Message: "Order deleted successfully"}, nil
}
