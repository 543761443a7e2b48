package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/repository"
)

// fakeUserRepo — stateful in-memory хранилище пользователей
// с уникальностью email, как у MongoDB реализации
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]repository.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]repository.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user repository.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[user.Email]; ok {
		return "", repository.ErrEmailTaken
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byEmail[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (repository.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byEmail[email]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (repository.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byEmail {
		if user.ID == userID {
			return user, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateByEmail(_ context.Context, user repository.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byEmail[user.Email]
	if !ok {
		return repository.ErrUserNotFound
	}
	existing.FullName = user.FullName
	existing.Address = user.Address
	existing.PhoneNumber = user.PhoneNumber
	f.byEmail[user.Email] = existing
	return nil
}

// fakeSessionRepo — stateful in-memory хранилище сессий
type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[string]string // session_id -> user_id
	nextID    int
	refreshes int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]string)}
}

func (f *fakeSessionRepo) CreateSession(_ context.Context, userID string, _ time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	sessionID := fmt.Sprintf("session-%d", f.nextID)
	f.sessions[sessionID] = userID
	return sessionID, nil
}

func (f *fakeSessionRepo) GetUserIDBySession(_ context.Context, sessionID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	userID, ok := f.sessions[sessionID]
	if !ok {
		return "", repository.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeSessionRepo) RefreshSession(_ context.Context, sessionID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[sessionID]; !ok {
		return repository.ErrSessionNotFound
	}
	f.refreshes++
	return nil
}

func (f *fakeSessionRepo) DeleteSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return NewService(zap.NewNop(), users, sessions, time.Hour), users, sessions
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestService()

	userID, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret123",
		Address:  "1 Main St",
	})
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	// Пароль сохранён в виде bcrypt хэша, не открытым текстом
	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"empty full_name", RegisterInput{Email: "a@b.com", Password: "secret123"}},
		{"invalid email", RegisterInput{FullName: "A", Email: "not-an-email", Password: "secret123"}},
		{"short password", RegisterInput{FullName: "A", Email: "a@b.com", Password: "123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	input := RegisterInput{FullName: "Alice", Email: "alice@example.com", Password: "secret123"}
	_, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, err = svc.Register(ctx, input)
	require.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	userID, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, userID, out.UserID)
	require.NotEmpty(t, out.SessionID)

	// Сессия валидна сразу после входа
	gotUserID, err := svc.ValidateSession(ctx, out.SessionID)
	require.NoError(t, err)
	require.Equal(t, userID, gotUserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// Неизвестный email и неверный пароль дают одинаковую ошибку
	_, err = svc.Login(ctx, "bob@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, out.SessionID))

	_, err = svc.ValidateSession(ctx, out.SessionID)
	require.ErrorIs(t, err, ErrSessionNotFoundOrExpired)

	// Logout идемпотентен
	require.NoError(t, svc.Logout(ctx, out.SessionID))
}

func TestValidateSession_SlidingTTL(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestService()

	_, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	out, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.ValidateSession(ctx, out.SessionID)
	require.NoError(t, err)
	_, err = svc.ValidateSession(ctx, out.SessionID)
	require.NoError(t, err)

	// Каждая успешная проверка продлевает TTL
	require.Equal(t, 2, sessions.refreshes)
}

func TestValidateSession_Unknown(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.ValidateSession(ctx, "no-such-session")
	require.ErrorIs(t, err, ErrSessionNotFoundOrExpired)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	userID, err := svc.Register(ctx, RegisterInput{
		FullName:    "Alice Smith",
		Email:       "alice@example.com",
		Password:    "secret123",
		Address:     "1 Main St",
		PhoneNumber: "+15550001111",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", profile.FullName)
	require.Equal(t, "alice@example.com", profile.Email)
	require.Equal(t, "1 Main St", profile.Address)
	require.Equal(t, "+15550001111", profile.PhoneNumber)

	_, err = svc.GetProfile(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	userID, err := svc.Register(ctx, RegisterInput{
		FullName: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, UpdateProfileInput{
		Email:       "alice@example.com",
		FullName:    "Alice Cooper",
		Address:     "2 Side St",
		PhoneNumber: "+15550002222",
	}))

	profile, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", profile.FullName)
	require.Equal(t, "2 Side St", profile.Address)

	err = svc.UpdateProfile(ctx, UpdateProfileInput{
		Email:    "nobody@example.com",
		FullName: "Nobody",
	})
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}
