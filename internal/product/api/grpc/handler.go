package grpcapi

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/repository"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/service"
	productpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/v1"
)

// Handler содержит gRPC-обработчики для Product Service
type Handler struct {
	productpb.UnimplementedProductServiceServer
	productService *service.Service
	logger         *zap.Logger
}

// NewHandler создаёт новый gRPC handler
func NewHandler(productService *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		productService: productService,
		logger:         logger,
	}
}

func toProto(p repository.Product) *productpb.Product {
	return &productpb.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		Stock:       p.Stock,
		Attributes:  p.Attributes,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateProduct обрабатывает gRPC запрос CreateProduct
func (h *Handler) CreateProduct(ctx context.Context, req *productpb.CreateProductRequest) (*productpb.ProductResponse, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	product, err := h.productService.Create(ctx, service.CreateInput{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		Price:       req.GetPrice(),
		Category:    req.GetCategory(),
		Brand:       req.GetBrand(),
		Stock:       req.GetStock(),
		Attributes:  req.GetAttributes(),
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to create product", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &productpb.ProductResponse{
		Success: true,
		Message: "Product created successfully",
		Product: toProto(product),
	}, nil
}

// GetProduct обрабатывает gRPC запрос GetProduct
func (h *Handler) GetProduct(ctx context.Context, req *productpb.GetProductRequest) (*productpb.ProductResponse, error) {
	if req.GetProductId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	product, err := h.productService.Get(ctx, req.GetProductId())
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, status.Error(codes.NotFound, "product not found")
		}
		h.logger.Error("failed to get product", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &productpb.ProductResponse{
		Success: true,
		Message: "OK",
		Product: toProto(product),
	}, nil
}

// ListProducts обрабатывает gRPC запрос ListProducts (server streaming)
// Отдаёт по одному товару на сообщение
func (h *Handler) ListProducts(req *productpb.ListProductsRequest, stream productpb.ProductService_ListProductsServer) error {
	products, err := h.productService.List(stream.Context(), repository.ListFilter{
		Category: req.GetCategory(),
		Brand:    req.GetBrand(),
		MinPrice: req.GetMinPrice(),
		MaxPrice: req.GetMaxPrice(),
		Page:     req.GetPage(),
		Limit:    req.GetLimit(),
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to list products", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}

	for _, product := range products {
		if err := stream.Send(&productpb.ProductResponse{
			Success: true,
			Message: "OK",
			Product: toProto(product),
		}); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProduct обрабатывает gRPC запрос UpdateProduct
func (h *Handler) UpdateProduct(ctx context.Context, req *productpb.UpdateProductRequest) (*productpb.ProductResponse, error) {
	if req.GetProductId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	product, err := h.productService.Update(ctx, service.UpdateInput{
		ProductID:   req.GetProductId(),
		Name:        req.GetName(),
		Description: req.GetDescription(),
		Price:       req.GetPrice(),
		Category:    req.GetCategory(),
		Brand:       req.GetBrand(),
		Stock:       req.GetStock(),
		Attributes:  req.GetAttributes(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, status.Error(codes.NotFound, "product not found")
		}
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to update product", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &productpb.ProductResponse{
		Success: true,
		Message: "Product updated successfully",
		Product: toProto(product),
	}, nil
}

// DeleteProduct обрабатывает gRPC запрос DeleteProduct
func (h *Handler) DeleteProduct(ctx context.Context, req *productpb.DeleteProductRequest) (*productpb.DeleteProductResponse, error) {
	if req.GetProductId() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	if err := h.productService.Delete(ctx, req.GetProductId()); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, status.Error(codes.NotFound, "product not found")
		}
		h.logger.Error("failed to delete product", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &productpb.DeleteProductResponse{
		Success: true,
		Message: "Product deleted successfully",
	}, nil
}
