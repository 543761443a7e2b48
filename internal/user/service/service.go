package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/repository"
)

// ErrInvalidCredentials возвращается при неверном email или пароле
// (handler маппит в codes.Unauthenticated, не раскрывая что именно неверно)
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrSessionNotFoundOrExpired возвращается при невалидной/истёкшей сессии
var ErrSessionNotFoundOrExpired = errors.New("session not found or expired")

// ErrValidation оборачивает ошибки валидации входных данных
var ErrValidation = errors.New("validation failed")

// Service содержит бизнес-логику работы с пользователями и сессиями
type Service struct {
	logger     *zap.Logger
	users      repository.UserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
}

// NewService создаёт новый экземпляр Service
func NewService(logger *zap.Logger, users repository.UserRepository, sessions repository.SessionRepository, sessionTTL time.Duration) *Service {
	return &Service{
		logger:     logger,
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// RegisterInput содержит входные данные для регистрации пользователя
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	Address     string
	PhoneNumber string
}

// Register регистрирует нового пользователя
// Возвращает repository.ErrEmailTaken, если email уже занят
func (s *Service) Register(ctx context.Context, input RegisterInput) (string, error) {
	if input.FullName == "" {
		return "", fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return "", fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(input.Password) < 6 {
		return "", fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	// Хэшируем пароль через bcrypt
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.users.CreateUser(ctx, repository.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return "", err
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", userID),
		zap.String("email", input.Email),
	)

	return userID, nil
}

// LoginOutput содержит результат входа пользователя
type LoginOutput struct {
	UserID    string
	SessionID string
}

// Login аутентифицирует пользователя и создаёт сессию
// Возвращает ErrInvalidCredentials при неверном email или пароле
func (s *Service) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Одинаковый ответ для неизвестного email и неверного пароля
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("invalid password attempt", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	sessionID, err := s.sessions.CreateSession(ctx, user.ID, s.sessionTTL)
	if err != nil {
		s.logger.Error("failed to create session",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("email", email),
	)

	return &LoginOutput{
		UserID:    user.ID,
		SessionID: sessionID,
	}, nil
}

// Logout завершает сессию пользователя.
// Идемпотентен: logout несуществующей сессии не является ошибкой
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session_id is required", ErrValidation)
	}

	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		s.logger.Error("failed to delete session",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Profile содержит публичные поля профиля пользователя
type Profile struct {
	FullName    string
	Email       string
	Address     string
	PhoneNumber string
}

// GetProfile возвращает профиль пользователя по ID
// Возвращает repository.ErrUserNotFound, если пользователя нет
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get user by id", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &Profile{
		FullName:    user.FullName,
		Email:       user.Email,
		Address:     user.Address,
		PhoneNumber: user.PhoneNumber,
	}, nil
}

// UpdateProfileInput содержит входные данные для обновления профиля.
// Пользователь идентифицируется по email
type UpdateProfileInput struct {
	Email       string
	FullName    string
	Address     string
	PhoneNumber string
}

// UpdateProfile обновляет профиль пользователя
// Возвращает repository.ErrUserNotFound, если пользователя нет
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) error {
	if input.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if input.FullName == "" {
		return fmt.Errorf("%w: full_name is required", ErrValidation)
	}

	if err := s.users.UpdateByEmail(ctx, repository.User{
		Email:       input.Email,
		FullName:    input.FullName,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	}); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return err
		}
		s.logger.Error("failed to update profile", zap.Error(err))
		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated", zap.String("email", input.Email))
	return nil
}

// ValidateSession проверяет валидность сессии и возвращает user_id.
// При успехе продлевает TTL (sliding window)
func (s *Service) ValidateSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("%w: session_id is required", ErrValidation)
	}

	userID, err := s.sessions.GetUserIDBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", ErrSessionNotFoundOrExpired
		}
		s.logger.Error("failed to validate session", zap.Error(err))
		return "", fmt.Errorf("failed to validate session: %w", err)
	}

	if err := s.sessions.RefreshSession(ctx, sessionID, s.sessionTTL); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", ErrSessionNotFoundOrExpired
		}
		s.logger.Error("failed to refresh session", zap.Error(err))
		return "", fmt.Errorf("failed to refresh session: %w", err)
	}

	return userID, nil
}
