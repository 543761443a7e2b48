package repository

import (
	"context"
	"errors"
	"time"
)

// User представляет доменную модель пользователя
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Address      string
	PhoneNumber  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ErrUserNotFound возвращается, когда пользователь не найден
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken возвращается при попытке регистрации с занятым email
var ErrEmailTaken = errors.New("email already registered")

// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
var ErrSessionNotFound = errors.New("session not found")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserRepository --dir=. --output=./mocks --outpkg=mocks

// UserRepository определяет интерфейс для работы с хранилищем пользователей
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID
	// Возвращает ErrEmailTaken, если email уже занят
	CreateUser(ctx context.Context, user User) (string, error)

	// GetByEmail получает пользователя по email
	// Возвращает ErrUserNotFound, если пользователь не найден
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID получает пользователя по ID
	// Возвращает ErrUserNotFound, если пользователь не найден
	GetByID(ctx context.Context, userID string) (User, error)

	// UpdateByEmail обновляет профиль пользователя, найденного по email
	// Возвращает ErrUserNotFound, если пользователь не найден
	UpdateByEmail(ctx context.Context, user User) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SessionRepository --dir=. --output=./mocks --outpkg=mocks

// SessionRepository определяет интерфейс для работы с хранилищем сессий
type SessionRepository interface {
	// CreateSession создаёт новую сессию для пользователя и возвращает session_id
	CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error)

	// GetUserIDBySession получает user_id по session_id
	// Возвращает ErrSessionNotFound, если сессии нет или она истекла
	GetUserIDBySession(ctx context.Context, sessionID string) (string, error)

	// RefreshSession продлевает TTL сессии (sliding window)
	// Возвращает ErrSessionNotFound, если сессии нет
	RefreshSession(ctx context.Context, sessionID string, ttl time.Duration) error

	// DeleteSession удаляет сессию
	DeleteSession(ctx context.Context, sessionID string) error
}
