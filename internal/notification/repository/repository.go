package repository

import (
	"context"
	"errors"
)

// ErrUserNotFound возвращается, когда пользователь не найден
var ErrUserNotFound = errors.New("user not found")

// ErrNoPhoneNumber возвращается, когда у пользователя не указан телефон
var ErrNoPhoneNumber = errors.New("user has no phone number")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PhoneDirectory --dir=. --output=./mocks --outpkg=mocks

// PhoneDirectory определяет чтение номеров телефона из общего документного store
type PhoneDirectory interface {
	// GetPhoneNumber возвращает номер телефона пользователя.
	// Возвращает ErrUserNotFound, если пользователя нет,
	// и ErrNoPhoneNumber, если телефон не указан в профиле
	GetPhoneNumber(ctx context.Context, userID string) (string, error)
}
