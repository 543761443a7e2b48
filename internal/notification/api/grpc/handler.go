package grpcapi

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/repository"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/service"
	notificationpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/v1"
)

// Handler содержит gRPC-обработчики для Notification Service
type Handler struct {
	notificationpb.UnimplementedNotificationServiceServer
	notificationService *service.NotificationService
	logger              *zap.Logger
}

// NewHandler создаёт новый gRPC handler
func NewHandler(notificationService *service.NotificationService, logger *zap.Logger) *Handler {
	return &Handler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// SendNotification обрабатывает gRPC запрос SendNotification
func (h *Handler) SendNotification(ctx context.Context, req *notificationpb.SendNotificationRequest) (*notificationpb.NotificationResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if req.GetMessage() == "" {
		return nil, status.Error(codes.InvalidArgument, "message is required")
	}

	err := h.notificationService.SendNotification(ctx, req.GetUserId(), req.GetMessage())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		if errors.Is(err, repository.ErrNoPhoneNumber) {
			return nil, status.Error(codes.FailedPrecondition, "user has no phone number")
		}
		h.logger.Error("failed to send notification", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &notificationpb.NotificationResponse{Status: "sent"}, nil
}
