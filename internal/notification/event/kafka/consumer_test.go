package kafka

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/service"
)

// fakeReader имитирует kafka reader: выдаёт подготовленные сообщения,
// затем возвращает заданную ошибку
type fakeReader struct {
	mu         sync.Mutex
	messages   []kafka.Message
	fetchErr   error
	fetchCalls int
	committed  []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchCalls++
	if len(r.messages) > 0 {
		m := r.messages[0]
		r.messages = r.messages[1:]
		return m, nil
	}
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{}, r.fetchErr
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Config() kafka.ReaderConfig {
	return kafka.ReaderConfig{Topic: "order.created", GroupID: "notification"}
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) calls(t *testing.T) int {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetchCalls
}

type fakePhoneDirectory struct{}

func (d *fakePhoneDirectory) GetPhoneNumber(_ context.Context, _ string) (string, error) {
	return "+15550101", nil
}

type recordingSender struct {
	mu    sync.Mutex
	texts []string
}

func (s *recordingSender) Send(_ context.Context, _, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return nil
}

func newTestConsumer(r messageReader, fetchBackoff time.Duration) (*OrderCreatedConsumer, *recordingSender) {
	sender := &recordingSender{}
	svc := service.NewNotificationService(zap.NewNop(), &fakePhoneDirectory{}, sender)
	return &OrderCreatedConsumer{
		logger:       zap.NewNop(),
		reader:       r,
		service:      svc,
		maxAttempts:  3,
		backoffBase:  time.Millisecond,
		fetchBackoff: fetchBackoff,
	}, sender
}

func TestConsumer_ReaderClosedStops(t *testing.T) {
	reader := &fakeReader{fetchErr: io.EOF}
	consumer, _ := newTestConsumer(reader, time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- consumer.Start(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after reader was closed")
	}
	require.Equal(t, 1, reader.calls(t))
}

func TestConsumer_FetchErrorBackoff(t *testing.T) {
	reader := &fakeReader{fetchErr: errors.New("broker unavailable")}
	consumer, _ := newTestConsumer(reader, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after context cancel")
	}

	// Без паузы между попытками за 100ms накрутились бы тысячи вызовов
	require.LessOrEqual(t, reader.calls(t), 10)
}

func TestConsumer_ProcessesAndCommitsMessage(t *testing.T) {
	reader := &fakeReader{
		messages: []kafka.Message{{
			Topic: "order.created",
			Value: []byte(`{"event_id":"evt-1","event_type":"order.created","order_id":"order-1","user_id":"user-1","total_price":49.99}`),
		}},
		fetchErr: io.EOF,
	}
	consumer, sender := newTestConsumer(reader, time.Millisecond)

	require.NoError(t, consumer.Start(context.Background()))

	require.Len(t, reader.committed, 1)
	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Len(t, sender.texts, 1)
	require.Contains(t, sender.texts[0], "order-1")
}
