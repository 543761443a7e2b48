package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository"
)

// productDocument представляет документ коллекции products
// (полная модель принадлежит product service, здесь только нужные корзине поля)
type productDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
	Stock int64              `bson:"stock"`
}

// ProductRepository реализует repository.ProductRepository поверх MongoDB.
// Работает с той же коллекцией products, которой владеет product service.
type ProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository создаёт новый MongoDB репозиторий каталога для корзины
func NewProductRepository(client *mongo.Client, dbName string) *ProductRepository {
	return &ProductRepository{
		col: client.Database(dbName).Collection("products"),
	}
}

// FindProduct получает снимок товара по ID
// Невалидный hex ID трактуется как отсутствующий товар, а не как internal ошибка
func (r *ProductRepository) FindProduct(ctx context.Context, productID string) (repository.Product, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return repository.Product{}, repository.ErrProductNotFound
	}

	var doc productDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.Product{}, repository.ErrProductNotFound
		}
		return repository.Product{}, err
	}

	return repository.Product{
		ID:    doc.ID.Hex(),
		Name:  doc.Name,
		Price: doc.Price,
		Stock: doc.Stock,
	}, nil
}

// AdjustStock атомарно изменяет остаток товара на delta.
// Для отрицательной delta фильтр требует stock >= -delta, поэтому проверка
// и декремент выполняются одной операцией FindOneAndUpdate — остаток
// не может уйти ниже нуля при конкурентных запросах.
func (r *ProductRepository) AdjustStock(ctx context.Context, productID string, delta int64) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return repository.ErrProductNotFound
	}

	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}

	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	err = r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	// Документ не подошёл под фильтр: либо товара нет, либо не хватило остатка
	if delta >= 0 {
		return repository.ErrProductNotFound
	}
	if findErr := r.col.FindOne(ctx, bson.M{"_id": oid}).Err(); findErr != nil {
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return repository.ErrProductNotFound
		}
		return findErr
	}
	return repository.ErrInsufficientStock
}
