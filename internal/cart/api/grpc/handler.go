package grpcapi

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/service"
	cartpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/v1"
)

// Handler содержит gRPC-обработчики для Cart Service
// Тонкий слой: валидация аргументов, вызов service, маппинг исходов
// в закрытый набор кодов ответа. Бизнес-отказы не становятся gRPC ошибками.
type Handler struct {
	cartpb.UnimplementedCartServiceServer
	cartService *service.CartService
	logger      *zap.Logger
}

// NewHandler создаёт новый gRPC handler
func NewHandler(cartService *service.CartService, logger *zap.Logger) *Handler {
	return &Handler{
		cartService: cartService,
		logger:      logger,
	}
}

// AddToCart обрабатывает gRPC запрос AddToCart
func (h *Handler) AddToCart(ctx context.Context, req *cartpb.AddToCartRequest) (*cartpb.CartResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetProductId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	if req.GetQuantity() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}

	err := h.cartService.AddItem(ctx, req.GetUserId(), req.GetProductId(), req.GetQuantity())
	if err != nil {
		return h.cartFailure(err, "add to cart")
	}

	return &cartpb.CartResponse{
		Success: true,
		Message: "Product added to cart",
		Code:    cartpb.ResponseCode_RESPONSE_CODE_OK,
	}, nil
}

// RemoveFromCart обрабатывает gRPC запрос RemoveFromCart
func (h *Handler) RemoveFromCart(ctx context.Context, req *cartpb.RemoveFromCartRequest) (*cartpb.CartResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetProductId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	err := h.cartService.RemoveItem(ctx, req.GetUserId(), req.GetProductId())
	if err != nil {
		return h.cartFailure(err, "remove from cart")
	}

	return &cartpb.CartResponse{
		Success: true,
		Message: "Product removed from cart",
		Code:    cartpb.ResponseCode_RESPONSE_CODE_OK,
	}, nil
}

// UpdateCartItem обрабатывает gRPC запрос UpdateCartItem
func (h *Handler) UpdateCartItem(ctx context.Context, req *cartpb.UpdateCartItemRequest) (*cartpb.CartResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetProductId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	if req.GetQuantity() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be positive")
	}

	err := h.cartService.UpdateItem(ctx, req.GetUserId(), req.GetProductId(), req.GetQuantity())
	if err != nil {
		return h.cartFailure(err, "update cart item")
	}

	return &cartpb.CartResponse{
		Success: true,
		Message: "Cart updated successfully",
		Code:    cartpb.ResponseCode_RESPONSE_CODE_OK,
	}, nil
}

// GetCartItems обрабатывает gRPC запрос GetCartItems
// Отсутствие корзины — не ошибка, возвращается пустой список
func (h *Handler) GetCartItems(ctx context.Context, req *cartpb.GetCartItemsRequest) (*cartpb.GetCartItemsResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	items, err := h.cartService.GetItems(ctx, req.GetUserId())
	if err != nil {
		h.logger.Error("failed to get cart items", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	pbItems := make([]*cartpb.CartItem, 0, len(items))
	for _, it := range items {
		pbItems = append(pbItems, &cartpb.CartItem{
			ProductId: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return &cartpb.GetCartItemsResponse{Items: pbItems}, nil
}

// ClearCart обрабатывает gRPC запрос ClearCart
func (h *Handler) ClearCart(ctx context.Context, req *cartpb.ClearCartRequest) (*cartpb.CartResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	err := h.cartService.ClearCart(ctx, req.GetUserId())
	if err != nil {
		return h.cartFailure(err, "clear cart")
	}

	return &cartpb.CartResponse{
		Success: true,
		Message: "Cart cleared successfully",
		Code:    cartpb.ResponseCode_RESPONSE_CODE_OK,
	}, nil
}

// CalculateTotalPrice обрабатывает gRPC запрос CalculateTotalPrice
// Отсутствие корзины — не ошибка, total 0
func (h *Handler) CalculateTotalPrice(ctx context.Context, req *cartpb.CalculateTotalPriceRequest) (*cartpb.TotalPriceResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	total, err := h.cartService.CalculateTotal(ctx, req.GetUserId())
	if err != nil {
		h.logger.Error("failed to calculate total price", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &cartpb.TotalPriceResponse{TotalPrice: total}, nil
}

// cartFailure маппит ошибку service слоя в ответ.
// Бизнес-отказы — success=false с кодом из закрытого набора и gRPC status OK.
// Всё остальное — codes.Internal; детали остаются только в логах.
func (h *Handler) cartFailure(err error, op string) (*cartpb.CartResponse, error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, repository.ErrProductNotFound):
		return &cartpb.CartResponse{
			Success: false,
			Message: "Product not found",
			Code:    cartpb.ResponseCode_RESPONSE_CODE_PRODUCT_NOT_FOUND,
		}, nil
	case errors.Is(err, repository.ErrCartNotFound):
		return &cartpb.CartResponse{
			Success: false,
			Message: "Cart not found",
			Code:    cartpb.ResponseCode_RESPONSE_CODE_CART_NOT_FOUND,
		}, nil
	case errors.Is(err, repository.ErrItemNotFound):
		return &cartpb.CartResponse{
			Success: false,
			Message: "Product not in cart",
			Code:    cartpb.ResponseCode_RESPONSE_CODE_ITEM_NOT_FOUND,
		}, nil
	case errors.Is(err, repository.ErrInsufficientStock):
		return &cartpb.CartResponse{
			Success: false,
			Message: "Not enough stock available",
			Code:    cartpb.ResponseCode_RESPONSE_CODE_INSUFFICIENT_STOCK,
		}, nil
	default:
		h.logger.Error("cart operation failed",
			zap.Error(err),
			zap.String("op", op),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}
}
