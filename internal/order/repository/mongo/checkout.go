package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository"
)

// CheckoutStore реализует repository.CheckoutStore поверх общего
// документного store (коллекции carts и products)
type CheckoutStore struct {
	carts    *mongo.Collection
	products *mongo.Collection
}

// NewCheckoutStore создаёт новый CheckoutStore
func NewCheckoutStore(client *mongo.Client, dbName string) *CheckoutStore {
	db := client.Database(dbName)
	return &CheckoutStore{
		carts:    db.Collection("carts"),
		products: db.Collection("products"),
	}
}

// DropCart удаляет документ корзины пользователя без возврата остатков:
// зарезервированное количество принадлежит оформленному заказу
func (s *CheckoutStore) DropCart(ctx context.Context, userID string) error {
	_, err := s.carts.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}

// RestockItems возвращает количества позиций в остатки каталога.
// Позиции с неизвестным товаром пропускаются: возвращать остаток некуда
func (s *CheckoutStore) RestockItems(ctx context.Context, items []repository.OrderItem) error {
	for _, it := range items {
		oid, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			continue
		}
		if _, err := s.products.UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$inc": bson.M{"stock": int64(it.Quantity)}},
		); err != nil {
			return err
		}
	}
	return nil
}
