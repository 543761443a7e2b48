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

	grpcapi "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/api/grpc"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache"
	memorycache "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache/memory"
	rediscache "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache/redis"
	userclient "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/client/grpc"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/config"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/interceptor"
	mongorepo "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository/mongo"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/service"
	cartpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/v1"
	platformhealth "github.com/Sarveshdongare2705/ecommerce-grpc/platform/health/grpc"
	platformlogging "github.com/Sarveshdongare2705/ecommerce-grpc/platform/logging"
	platformshutdown "github.com/Sarveshdongare2705/ecommerce-grpc/platform/shutdown"
)

// App содержит все зависимости для запуска и корректного shutdown Cart Service
type App struct {
	logger      *zap.Logger
	grpcServer  *grpc.Server
	listener    net.Listener
	health      *platformhealth.Health
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Cart Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	// Создаём logger
	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "cart",
		Env:         string(cfg.AppEnv),
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      os.Getenv("LOG_FORMAT"),
	})
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("op", op))
	logger.Info("Building Cart service", zap.String("grpc_addr", cfg.GRPCAddr))

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

	// Создаём кэш: Redis в обычном режиме, in-memory как fallback для
	// локальной разработки без Redis
	var cartCache cache.Cache
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// Кэш best-effort: недоступный Redis не мешает старту,
			// сервис деградирует до прямых чтений из MongoDB
			logger.Warn("Redis ping failed, cache will degrade to store reads",
				zap.String("addr", cfg.RedisAddr),
				zap.Error(err),
			)
		} else {
			logger.Info("Redis connection established", zap.String("addr", cfg.RedisAddr))
		}
		shutdownMgr.Add("redis", platformshutdown.CloseCloser(redisClient))
		cartCache = rediscache.New(redisClient)
	case config.CacheBackendMemory:
		memCache := memorycache.New()
		shutdownMgr.Add("memory_cache", platformshutdown.CloseCloser(memCache))
		cartCache = memCache
		logger.Info("Using in-memory cache backend")
	}

	// После успешного ping устанавливаем readiness в SERVING
	health.SetServing("")
	logger.Info("Readiness status set to SERVING")

	// Создаём MongoDB репозитории
	productRepo := mongorepo.NewProductRepository(client, cfg.DatabaseName)
	cartRepo := mongorepo.NewCartRepository(client, cfg.DatabaseName)

	// Создаём service слой
	cartService := service.NewCartService(logger, productRepo, cartRepo, cartCache, cfg.CacheTTL)

	// Создаём gRPC handler
	grpcHandler := grpcapi.NewHandler(cartService, logger)

	// Опции gRPC сервера: auth interceptor включается конфигом
	var serverOpts []grpc.ServerOption
	if cfg.AuthEnabled {
		logger.Info("Connecting to User service", zap.String("addr", cfg.UserGRPCAddr))
		userGRPCClient, userConn, err := userclient.NewUserGRPCClient(cfg.UserGRPCAddr, logger)
		if err != nil {
			client.Disconnect(ctx)
			return nil, err
		}
		shutdownMgr.Add("user_conn", platformshutdown.CloseCloser(userConn))

		userClientAdapter := userclient.NewUserClientAdapter(userGRPCClient, logger)
		authInterceptor := interceptor.NewAuthInterceptor(userClientAdapter, logger)
		serverOpts = append(serverOpts, grpc.UnaryInterceptor(authInterceptor.Unary()))
	}

	// Слушаем на указанном адресе
	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	grpcServer := grpc.NewServer(serverOpts...)

	// Включаем reflection, если указано в конфиге
	if cfg.EnableGRPCReflection {
		reflection.Register(grpcServer)
		logger.Info("gRPC reflection enabled")
	}

	// Регистрируем gRPC health service
	health.Register(grpcServer)

	// Регистрируем gRPC handler
	cartpb.RegisterCartServiceServer(grpcServer, grpcHandler)

	logger.Info("Cart gRPC server configured", zap.String("addr", cfg.GRPCAddr))

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

	a.logger.Info("Starting Cart service", zap.String("addr", a.listener.Addr().String()))

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
	a.logger.Info("Cart service stopped")
	return nil
}
