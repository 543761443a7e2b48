package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/repository"
)

// fakePhoneDirectory отдаёт номера из карты
type fakePhoneDirectory struct {
	phones   map[string]string
	failWith error
}

func (f *fakePhoneDirectory) GetPhoneNumber(_ context.Context, userID string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	phone, ok := f.phones[userID]
	if !ok {
		return "", repository.ErrUserNotFound
	}
	if phone == "" {
		return "", repository.ErrNoPhoneNumber
	}
	return phone, nil
}

// recordingSender записывает отправленные сообщения
type recordingSender struct {
	mu      sync.Mutex
	sent    []sentMessage
	failAll error
}

type sentMessage struct {
	phone string
	text  string
}

func (s *recordingSender) Send(_ context.Context, phoneNumber, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	s.sent = append(s.sent, sentMessage{phone: phoneNumber, text: text})
	return nil
}

func TestSendNotification(t *testing.T) {
	phones := &fakePhoneDirectory{phones: map[string]string{"user-1": "+15550001111"}}
	sender := &recordingSender{}
	svc := NewNotificationService(zap.NewNop(), phones, sender)

	err := svc.SendNotification(context.Background(), "user-1", "hello")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Equal(t, "+15550001111", sender.sent[0].phone)
	require.Equal(t, "hello", sender.sent[0].text)
}

func TestSendNotification_Validation(t *testing.T) {
	svc := NewNotificationService(zap.NewNop(), &fakePhoneDirectory{}, &recordingSender{})

	err := svc.SendNotification(context.Background(), "", "hello")
	require.ErrorIs(t, err, ErrValidation)

	err = svc.SendNotification(context.Background(), "user-1", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestSendNotification_UserNotFound(t *testing.T) {
	phones := &fakePhoneDirectory{phones: map[string]string{}}
	sender := &recordingSender{}
	svc := NewNotificationService(zap.NewNop(), phones, sender)

	err := svc.SendNotification(context.Background(), "missing", "hello")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	require.Empty(t, sender.sent)
}

func TestSendNotification_NoPhoneNumber(t *testing.T) {
	phones := &fakePhoneDirectory{phones: map[string]string{"user-1": ""}}
	sender := &recordingSender{}
	svc := NewNotificationService(zap.NewNop(), phones, sender)

	err := svc.SendNotification(context.Background(), "user-1", "hello")
	require.ErrorIs(t, err, repository.ErrNoPhoneNumber)
	require.Empty(t, sender.sent)
}

func TestSendNotification_SenderFailure(t *testing.T) {
	phones := &fakePhoneDirectory{phones: map[string]string{"user-1": "+15550001111"}}
	sender := &recordingSender{failAll: errors.New("twilio unavailable")}
	svc := NewNotificationService(zap.NewNop(), phones, sender)

	err := svc.SendNotification(context.Background(), "user-1", "hello")
	require.Error(t, err)
}

func TestHandleOrderCreated(t *testing.T) {
	phones := &fakePhoneDirectory{phones: map[string]string{"user-1": "+15550001111"}}
	sender := &recordingSender{}
	svc := NewNotificationService(zap.NewNop(), phones, sender)

	err := svc.HandleOrderCreated(context.Background(), OrderCreatedEvent{
		EventID:    "evt-1",
		EventType:  "order.created",
		OrderID:    "order-42",
		UserID:     "user-1",
		TotalPrice: 34.97,
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	require.Equal(t, "+15550001111", sender.sent[0].phone)
	require.Equal(t, "Your order order-42 has been placed. Total: $34.97", sender.sent[0].text)
}

func TestHandleOrderCreated_UserWithoutPhone(t *testing.T) {
	phones := &fakePhoneDirectory{phones: map[string]string{"user-1": ""}}
	sender := &recordingSender{}
	svc := NewNotificationService(zap.NewNop(), phones, sender)

	err := svc.HandleOrderCreated(context.Background(), OrderCreatedEvent{
		OrderID: "order-42",
		UserID:  "user-1",
	})
	require.ErrorIs(t, err, repository.ErrNoPhoneNumber)
	require.Empty(t, sender.sent)
}
