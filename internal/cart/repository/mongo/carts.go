package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/cart/repository"
)

// cartItemDocument представляет позицию корзины внутри документа
type cartItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int32  `bson:"quantity"`
}

// cartDocument представляет документ коллекции carts (одна корзина на пользователя)
type cartDocument struct {
	UserID    string             `bson:"user_id"`
	Items     []cartItemDocument `bson:"items"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CartRepository реализует repository.CartRepository используя MongoDB
type CartRepository struct {
	col *mongo.Collection
}

// NewCartRepository создаёт новый MongoDB репозиторий корзин
// Создаёт уникальный индекс на user_id при инициализации
func NewCartRepository(client *mongo.Client, dbName string) *CartRepository {
	col := client.Database(dbName).Collection("carts")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Если индекс уже существует — игнорируем ошибку
	_, _ = col.Indexes().CreateOne(ctx, indexModel)

	return &CartRepository{col: col}
}

// FindCart получает корзину пользователя
func (r *CartRepository) FindCart(ctx context.Context, userID string) (repository.Cart, error) {
	var doc cartDocument
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.Cart{}, repository.ErrCartNotFound
		}
		return repository.Cart{}, err
	}

	items := make([]repository.CartItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, repository.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return repository.Cart{
		UserID: doc.UserID,
		Items:  items,
	}, nil
}

// UpsertAppendItem добавляет позицию в корзину пользователя через $push,
// создавая документ корзины при отсутствии (upsert)
func (r *CartRepository) UpsertAppendItem(ctx context.Context, userID string, item repository.CartItem) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$push": bson.M{"items": cartItemDocument{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			}},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// RemoveItem удаляет из корзины все позиции с указанным товаром через $pull.
// Фильтр включает items.product_id: $set на updated_at всегда модифицирует
// документ, поэтому отличить "позиции нет" можно только по MatchedCount.
// Пустая корзина остаётся существующим документом — это сознательная политика
// (см. DESIGN.md), GetItems для неё возвращает пустой список.
func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.product_id": productID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product_id": productID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Либо корзины нет вовсе, либо в ней нет этой позиции
		findErr := r.col.FindOne(ctx, bson.M{"user_id": userID}).Err()
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return repository.ErrCartNotFound
		}
		if findErr != nil {
			return findErr
		}
		return repository.ErrItemNotFound
	}
	return nil
}

// SetItemQuantity устанавливает количество для первой позиции с указанным
// товаром (позиционный оператор $)
func (r *CartRepository) SetItemQuantity(ctx context.Context, userID, productID string, quantity int32) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.product_id": productID},
		bson.M{
			"$set": bson.M{
				"items.$.quantity": quantity,
				"updated_at":       time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrItemNotFound
	}
	return nil
}

// DeleteCart удаляет документ корзины целиком
func (r *CartRepository) DeleteCart(ctx context.Context, userID string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrCartNotFound
	}
	return nil
}
