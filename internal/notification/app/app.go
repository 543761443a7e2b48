package app

import (
	"context"
	"net"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcapi "github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/api/grpc"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/config"
	eventkafka "github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/event/kafka"
	mongorepo "github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/repository/mongo"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/service"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/sms"
	notificationpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/v1"
	platformhealth "github.com/Sarveshdongare2705/ecommerce-grpc/platform/health/grpc"
	platformlogging "github.com/Sarveshdongare2705/ecommerce-grpc/platform/logging"
	platformshutdown "github.com/Sarveshdongare2705/ecommerce-grpc/platform/shutdown"
)

// App содержит все зависимости для запуска и корректного shutdown Notification Service
type App struct {
	logger      *zap.Logger
	grpcServer  *grpc.Server
	listener    net.Listener
	health      *platformhealth.Health
	consumer    *eventkafka.OrderCreatedConsumer
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Notification Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	// Создаём logger
	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "notification",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Notification service", zap.String("grpc_addr", cfg.GRPCAddr))

	// Создаём health check с начальным статусом NOT_SERVING
	health := platformhealth.New(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	// Подключаемся к MongoDB
	logger.Info("Connecting to MongoDB")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	// Проверяем подключение к MongoDB
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	logger.Info("MongoDB connection established")

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	shutdownMgr.Add("mongodb", platformshutdown.DisconnectMongo(client))

	// Выбираем SMS sender: Twilio или no-op для окружений без смс
	var sender sms.Sender
	if cfg.SMSEnabled {
		sender = sms.NewTwilioSender(logger, cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		logger.Info("Twilio SMS sender configured", zap.String("from", cfg.TwilioFromNumber))
	} else {
		sender = sms.NewNoOpSender(logger)
		logger.Info("SMS disabled, using no-op sender")
	}

	// После успешного ping устанавливаем readiness в SERVING
	health.SetServing("")
	logger.Info("Readiness status set to SERVING")

	// Создаём справочник телефонов поверх общей коллекции users
	phones := mongorepo.NewPhoneDirectory(client, cfg.DatabaseName)

	// Создаём service слой
	notificationService := service.NewNotificationService(logger, phones, sender)

	// Создаём Kafka consumer для событий order.created
	consumer := eventkafka.NewOrderCreatedConsumer(
		logger,
		cfg.Kafka.Brokers,
		cfg.Kafka.GroupID,
		cfg.Kafka.Topic,
		notificationService,
		cfg.KafkaRetryMaxAttempts,
		cfg.KafkaRetryBackoffBase,
	)

	// Создаём gRPC handler
	grpcHandler := grpcapi.NewHandler(notificationService, logger)

	// Слушаем на указанном адресе
	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	grpcServer := grpc.NewServer()

	// Включаем reflection, если указано в конфиге
	if cfg.EnableGRPCReflection {
		reflection.Register(grpcServer)
		logger.Info("gRPC reflection enabled")
	}

	// Регистрируем gRPC health service
	health.Register(grpcServer)

	// Регистрируем gRPC handler
	notificationpb.RegisterNotificationServiceServer(grpcServer, grpcHandler)

	logger.Info("Notification gRPC server configured", zap.String("addr", cfg.GRPCAddr))

	// Регистрируем shutdown функции в обратном порядке выполнения
	shutdownMgr.Add("kafka_consumer", func(ctx context.Context) error {
		return consumer.Close()
	})
	shutdownMgr.Add("grpc_server", platformshutdown.ShutdownGRPCServer(grpcServer))
	shutdownMgr.Add("health_readiness", platformshutdown.SetHealthNotServing(health))

	return &App{
		logger:      logger,
		grpcServer:  grpcServer,
		listener:    listener,
		health:      health,
		consumer:    consumer,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Notification service", zap.String("addr", a.listener.Addr().String()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.grpcServer.Serve(a.listener); err != nil {
			a.logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Запускаем Kafka consumer в отдельной горутине
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.consumer.Start(ctx); err != nil {
			a.logger.Error("kafka consumer error", zap.Error(err))
		}
	}()

	// Ожидаем сигнал и выполняем shutdown
	a.shutdownMgr.Wait()

	// Останавливаем consumer loop до ожидания горутин
	cancel()

	a.wg.Wait()
	a.logger.Info("Notification service stopped")
	return nil
}
