package grpcapi

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/repository"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/service"
	userpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/v1"
)

// Handler содержит gRPC-обработчики для User Service
// Зависит от service слоя, но не знает о деталях реализации (repository, БД и т.д.)
type Handler struct {
	userpb.UnimplementedUserServiceServer
	userService *service.Service
	logger      *zap.Logger
}

// NewHandler создаёт новый gRPC handler
func NewHandler(userService *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterUser обрабатывает gRPC запрос RegisterUser
func (h *Handler) RegisterUser(ctx context.Context, req *userpb.RegisterUserRequest) (*userpb.UserResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "password is required")
	}

	userID, err := h.userService.Register(ctx, service.RegisterInput{
		FullName:    req.GetFullName(),
		Email:       req.GetEmail(),
		Password:    req.GetPassword(),
		Address:     req.GetAddress(),
		PhoneNumber: req.GetPhoneNumber(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to register user", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &userpb.UserResponse{
		Message: "User registered successfully",
		UserId:  userID,
	}, nil
}

// LoginUser обрабатывает gRPC запрос LoginUser
func (h *Handler) LoginUser(ctx context.Context, req *userpb.LoginUserRequest) (*userpb.LoginResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "password is required")
	}

	result, err := h.userService.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		h.logger.Error("failed to login user", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &userpb.LoginResponse{
		Message:   "Login successful",
		UserId:    result.UserID,
		SessionId: result.SessionID,
	}, nil
}

// Logout обрабатывает gRPC запрос Logout
func (h *Handler) Logout(ctx context.Context, req *userpb.LogoutRequest) (*userpb.UserResponse, error) {
	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	if err := h.userService.Logout(ctx, req.GetSessionId()); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to logout", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &userpb.UserResponse{
		Message: "Logged out successfully",
	}, nil
}

// GetUserProfile обрабатывает gRPC запрос GetUserProfile
func (h *Handler) GetUserProfile(ctx context.Context, req *userpb.GetUserProfileRequest) (*userpb.UserProfileResponse, error) {
	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	profile, err := h.userService.GetProfile(ctx, req.GetUserId())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		h.logger.Error("failed to get profile", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &userpb.UserProfileResponse{
		FullName:    profile.FullName,
		Email:       profile.Email,
		Address:     profile.Address,
		PhoneNumber: profile.PhoneNumber,
	}, nil
}

// UpdateUserProfile обрабатывает gRPC запрос UpdateUserProfile
func (h *Handler) UpdateUserProfile(ctx context.Context, req *userpb.UpdateUserProfileRequest) (*userpb.UserResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	err := h.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		Email:       req.GetEmail(),
		FullName:    req.GetFullName(),
		Address:     req.GetAddress(),
		PhoneNumber: req.GetPhoneNumber(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, service.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to update profile", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &userpb.UserResponse{
		Message: "Profile updated successfully",
	}, nil
}

// ValidateSession обрабатывает gRPC запрос ValidateSession
// Используется auth interceptor-ами других сервисов
func (h *Handler) ValidateSession(ctx context.Context, req *userpb.ValidateSessionRequest) (*userpb.ValidateSessionResponse, error) {
	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	userID, err := h.userService.ValidateSession(ctx, req.GetSessionId())
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFoundOrExpired) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		h.logger.Error("failed to validate session", zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &userpb.ValidateSessionResponse{
		UserId: userID,
	}, nil
}
