package grpcclient

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	userpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/v1"
)

// UserClient определяет интерфейс для работы с User Service
type UserClient interface {
	// ValidateSession проверяет валидность сессии и возвращает user_id
	ValidateSession(ctx context.Context, sessionID string) (userID string, err error)
}

// UserClientAdapter адаптирует gRPC клиент к интерфейсу UserClient
type UserClientAdapter struct {
	client userpb.UserServiceClient
	logger *zap.Logger
}

// NewUserClientAdapter создаёт новый адаптер для User клиента
func NewUserClientAdapter(client userpb.UserServiceClient, logger *zap.Logger) UserClient {
	return &UserClientAdapter{
		client: client,
		logger: logger,
	}
}

// ValidateSession реализует UserClient интерфейс
func (a *UserClientAdapter) ValidateSession(ctx context.Context, sessionID string) (string, error) {
	req := &userpb.ValidateSessionRequest{
		SessionId: sessionID,
	}

	resp, err := a.client.ValidateSession(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.GetUserId(), nil
}

// NewUserGRPCClient создаёт новый gRPC клиент для User Service
func NewUserGRPCClient(addr string, logger *zap.Logger) (userpb.UserServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}

	client := userpb.NewUserServiceClient(conn)
	return client, conn, nil
}
