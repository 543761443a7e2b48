package app

import (
	"context"
	"net"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	rediscache "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache/redis"
	grpcapi "github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/api/grpc"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/config"
	mongorepo "github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/repository/mongo"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/service"
	productpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/v1"
	platformhealth "github.com/Sarveshdongare2705/ecommerce-grpc/platform/health/grpc"
	platformlogging "github.com/Sarveshdongare2705/ecommerce-grpc/platform/logging"
	platformshutdown "github.com/Sarveshdongare2705/ecommerce-grpc/platform/shutdown"
)

// App содержит все зависимости для запуска и корректного shutdown Product Service
type App struct {
	logger      *zap.Logger
	grpcServer  *grpc.Server
	listener    net.Listener
	health      *platformhealth.Health
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Product Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "product",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Product service", zap.String("grpc_addr", cfg.GRPCAddr))

	health := platformhealth.New(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	// Подключаемся к MongoDB
	logger.Info("Connecting to MongoDB")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	logger.Info("MongoDB connection established")

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	shutdownMgr.Add("mongodb", platformshutdown.DisconnectMongo(client))

	// Redis нужен только для инвалидации product-ключей общего кэша;
	// его недоступность не блокирует старт
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis ping failed, cache invalidation will be best-effort",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
	} else {
		logger.Info("Redis connection established", zap.String("addr", cfg.RedisAddr))
	}
	shutdownMgr.Add("redis", platformshutdown.CloseCloser(redisClient))

	health.SetServing("")
	logger.Info("Readiness status set to SERVING")

	productRepo := mongorepo.NewProductRepository(client, cfg.DatabaseName)
	productService := service.NewService(logger, productRepo, rediscache.New(redisClient))
	grpcHandler := grpcapi.NewHandler(productService, logger)

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		redisClient.Close()
		client.Disconnect(ctx)
		return nil, err
	}

	grpcServer := grpc.NewServer()

	if cfg.EnableGRPCReflection {
		reflection.Register(grpcServer)
		logger.Info("gRPC reflection enabled")
	}

	health.Register(grpcServer)
	productpb.RegisterProductServiceServer(grpcServer, grpcHandler)

	logger.Info("Product gRPC server configured", zap.String("addr", cfg.GRPCAddr))

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

	a.logger.Info("Starting Product service", zap.String("addr", a.listener.Addr().String()))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.grpcServer.Serve(a.listener); err != nil {
			a.logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	a.shutdownMgr.Wait()

	a.wg.Wait()
	a.logger.Info("Product service stopped")
	return nil
}
