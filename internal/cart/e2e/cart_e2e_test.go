//go:build e2e

package e2e

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.uber.org/zap"

	grpcapi "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/api/grpc"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository"
	mongorepo "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository/mongo"
	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/service"
	cartpb "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/v1"
	memorycache "github.com/Sarveshdongare2705/ecommerce-grpc/internal/cache/memory"
)

func TestCart_E2E_AddToCart(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// 1) Поднимаем MongoDB контейнер
	mongoC, err := mongodb.RunContainer(ctx,
		tc.WithImage("mongo:6"),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, mongoC.Terminate(ctx)) }()

	mongoURI, err := mongoC.ConnectionString(ctx)
	require.NoError(t, err)

	// 2) Подключаемся к Mongo как клиент и готовим коллекцию
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(ctx) }()

	// Ждём готовности MongoDB (ping с retry)
	var pingErr error
	for i := 0; i < 20; i++ {
		pingErr = client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		if pingErr == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	require.NoError(t, pingErr, "MongoDB did not become ready in time")

	dbName := "ecommerce_e2e"
	db := client.Database(dbName)
	products := db.Collection("products")
	carts := db.Collection("carts")

	_, _ = products.DeleteMany(ctx, bson.M{})
	_, _ = carts.DeleteMany(ctx, bson.M{})

	res, err := products.InsertOne(ctx, bson.M{
		"name":       "Keyboard",
		"price":      49.99,
		"stock":      int64(10),
		"updated_at": time.Now(),
	})
	require.NoError(t, err)
	productID := res.InsertedID.(primitive.ObjectID).Hex()

	// 3) Поднимаем Cart gRPC сервер внутри теста (реальные repo+service+handler)
	logger := zap.NewNop()
	productRepo := mongorepo.NewProductRepository(client, dbName)
	cartRepo := mongorepo.NewCartRepository(client, dbName)
	cartCache := memorycache.New()
	defer func() { _ = cartCache.Close() }()
	svc := service.NewCartService(logger, productRepo, cartRepo, cartCache, time.Minute)
	h := grpcapi.NewHandler(svc, logger)

	grpcSrv := grpc.NewServer()
	cartpb.RegisterCartServiceServer(grpcSrv, h)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	go grpcSrv.Serve(lis)
	defer grpcSrv.Stop()

	// 4) gRPC клиент
	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	c := cartpb.NewCartServiceClient(conn)

	// 5) success кейс: 10 - 3 = 7
	addResp, err := c.AddToCart(ctx, &cartpb.AddToCartRequest{
		UserId:    "user-1",
		ProductId: productID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.True(t, addResp.GetSuccess())

	var doc struct {
		Stock int64 `bson:"stock"`
	}
	err = products.FindOne(ctx, bson.M{"name": "Keyboard"}).Decode(&doc)
	require.NoError(t, err)
	require.Equal(t, int64(7), doc.Stock)

	// Корзина содержит позицию
	itemsResp, err := c.GetCartItems(ctx, &cartpb.GetCartItemsRequest{UserId: "user-1"})
	require.NoError(t, err)
	require.Len(t, itemsResp.GetItems(), 1)
	require.Equal(t, productID, itemsResp.GetItems()[0].GetProductId())
	require.Equal(t, int32(3), itemsResp.GetItems()[0].GetQuantity())

	// 6) fail кейс: запрос 1000 не должен уменьшить stock
	failResp, err := c.AddToCart(ctx, &cartpb.AddToCartRequest{
		UserId:    "user-1",
		ProductId: productID,
		Quantity:  1000,
	})
	require.NoError(t, err)
	require.False(t, failResp.GetSuccess())
	require.Equal(t, cartpb.ResponseCode_RESPONSE_CODE_INSUFFICIENT_STOCK, failResp.GetCode())

	err = products.FindOne(ctx, bson.M{"name": "Keyboard"}).Decode(&doc)
	require.NoError(t, err)
	require.Equal(t, int64(7), doc.Stock)

	// 7) сумма корзины: 3 * 49.99
	totalResp, err := c.CalculateTotalPrice(ctx, &cartpb.CalculateTotalPriceRequest{UserId: "user-1"})
	require.NoError(t, err)
	require.InDelta(t, 149.97, totalResp.GetTotalPrice(), 0.001)

	// 8) очистка корзины возвращает остаток: 7 + 3 = 10
	clearResp, err := c.ClearCart(ctx, &cartpb.ClearCartRequest{UserId: "user-1"})
	require.NoError(t, err)
	require.True(t, clearResp.GetSuccess())

	err = products.FindOne(ctx, bson.M{"name": "Keyboard"}).Decode(&doc)
	require.NoError(t, err)
	require.Equal(t, int64(10), doc.Stock)
}

// Контракт RemoveItem на реальной MongoDB: удаление отсутствующей позиции
// обязано вернуть ErrItemNotFound, а не nil. Повторное удаление той же
// позиции — тот же контракт: иначе сервис дважды вернёт товар на склад.
func TestCart_E2E_RemoveItemContract(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := mongodb.RunContainer(ctx,
		tc.WithImage("mongo:6"),
	)
	require.NoError(t, err)
	defer func() { require.NoError(t, mongoC.Terminate(ctx)) }()

	mongoURI, err := mongoC.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(ctx) }()

	var pingErr error
	for i := 0; i < 20; i++ {
		pingErr = client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		if pingErr == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	require.NoError(t, pingErr, "MongoDB did not become ready in time")

	dbName := "ecommerce_e2e"
	carts := client.Database(dbName).Collection("carts")
	_, _ = carts.DeleteMany(ctx, bson.M{})

	cartRepo := mongorepo.NewCartRepository(client, dbName)

	err = cartRepo.UpsertAppendItem(ctx, "user-1", repository.CartItem{
		ProductID: "prod-1",
		Quantity:  2,
	})
	require.NoError(t, err)

	// Корзины нет вовсе
	err = cartRepo.RemoveItem(ctx, "ghost-user", "prod-1")
	require.ErrorIs(t, err, repository.ErrCartNotFound)

	// Корзина есть, позиции нет
	err = cartRepo.RemoveItem(ctx, "user-1", "prod-2")
	require.ErrorIs(t, err, repository.ErrItemNotFound)

	// Существующая позиция удаляется
	err = cartRepo.RemoveItem(ctx, "user-1", "prod-1")
	require.NoError(t, err)

	// Повторное удаление — позиции уже нет, корзина (пустой документ) осталась
	err = cartRepo.RemoveItem(ctx, "user-1", "prod-1")
	require.ErrorIs(t, err, repository.ErrItemNotFound)

	cart, err := cartRepo.FindCart(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}
