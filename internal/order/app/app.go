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

	grpcapi "github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/api/grpc"
	cartclient "github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/client/grpc"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/config"
	orderkafka "github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/event/kafka"
	mongorepo "github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository/mongo"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/service"
	orderpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/v1"
	platformhealth "github.com/Sarveshdongare2705/ecommerce-grpc/platform/health/grpc"
	platformlogging "github.com/Sarveshdongare2705/ecommerce-grpc/platform/logging"
	platformshutdown "github.com/Sarveshdongare2705/ecommerce-grpc/platform/shutdown"
)

// App содержит все зависимости для запуска и корректного shutdown Order Service
type App struct {
	logger      *zap.Logger
	grpcServer  *grpc.Server
	listener    net.Listener
	health      *platformhealth.Health
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Order Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	// Создаём logger
	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "order",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Order service", zap.String("grpc_addr", cfg.GRPCAddr))

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

	// Подключаемся к Cart Service: без него заказ оформить нельзя
	logger.Info("Connecting to Cart service", zap.String("addr", cfg.CartGRPCAddr))
	cartGRPCClient, cartConn, err := cartclient.NewCartGRPCClient(cfg.CartGRPCAddr, logger)
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	shutdownMgr.Add("cart_conn", platformshutdown.CloseCloser(cartConn))

	cartReader := cartclient.NewCartClientAdapter(cartGRPCClient, logger)

	// Создаём Kafka publisher для событий order.created
	publisher := orderkafka.NewOrderEventPublisher(logger, cfg.Kafka.Brokers, cfg.Kafka.Topic)
	shutdownMgr.Add("kafka_writer", platformshutdown.CloseCloser(publisher))
	logger.Info("Kafka publisher configured",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
	)

	// После успешного ping устанавливаем readiness в SERVING
	health.SetServing("")
	logger.Info("Readiness status set to SERVING")

	// Создаём MongoDB репозитории
	orderRepo := mongorepo.NewOrderRepository(client, cfg.DatabaseName)
	checkoutStore := mongorepo.NewCheckoutStore(client, cfg.DatabaseName)

	// Создаём service слой
	orderService := service.NewService(logger, orderRepo, checkoutStore, cartReader, publisher)

	// Создаём gRPC handler
	grpcHandler := grpcapi.NewHandler(orderService, logger)

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
	orderpb.RegisterOrderServiceServer(grpcServer, grpcHandler)

	logger.Info("Order gRPC server configured", zap.String("addr", cfg.GRPCAddr))

	// Регистрируем shutdown функции в обратном порядке выполнения
	shutdownMgr.Add("grpc_server", platformshutdown.ShutdownGRPCServer(grpcServer))
	shutdownMgr.Add("health_readiness", platformshutdown.SetHealthNotServing(health))

	return &App{
		logger:      logger,
		grpcServer:  grpcServer,
		listener:    listener,
		health:      health,
		shutdownMgr: shutdownMgr,
	}, nil
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Order service", zap.String("addr", a.listener.Addr().String()))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.grpcServer.Serve(a.listener); err != nil {
			a.logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Ожидаем сигнал и выполняем shutdown
	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Order service stopped")
	return nil
}
