package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/order/repository"
)

// orderItemDocument представляет позицию заказа внутри документа
type orderItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int32  `bson:"quantity"`
}

// orderDocument представляет документ коллекции orders
type orderDocument struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	UserID     string              `bson:"user_id"`
	Items      []orderItemDocument `bson:"items"`
	TotalPrice float64             `bson:"total_price"`
	Status     string              `bson:"status"`
	CreatedAt  time.Time           `bson:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at"`
}

func (d orderDocument) toDomain() repository.Order {
	items := make([]repository.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, repository.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return repository.Order{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		Items:      items,
		TotalPrice: d.TotalPrice,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// OrderRepository реализует repository.OrderRepository используя MongoDB
type OrderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository создаёт новый MongoDB репозиторий заказов
// Создаёт индекс на user_id при инициализации
func NewOrderRepository(client *mongo.Client, dbName string) *OrderRepository {
	col := client.Database(dbName).Collection("orders")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Если индекс уже существует — игнорируем ошибку
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})

	return &OrderRepository{col: col}
}

// Create сохраняет новый заказ и возвращает его ID
func (r *OrderRepository) Create(ctx context.Context, order repository.Order) (string, error) {
	now := time.Now().UTC()
	items := make([]orderItemDocument, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, orderItemDocument{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	doc := orderDocument{
		UserID:     order.UserID,
		Items:      items,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// GetByID получает заказ по ID
func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (repository.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return repository.Order{}, repository.ErrOrderNotFound
	}

	var doc orderDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.Order{}, repository.ErrOrderNotFound
		}
		return repository.Order{}, err
	}
	return doc.toDomain(), nil
}

// GetByUserID возвращает все заказы пользователя, новые первыми
func (r *OrderRepository) GetByUserID(ctx context.Context, userID string) ([]repository.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]repository.Order, 0)
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus устанавливает новый статус заказа
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return repository.ErrOrderNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}
	return nil
}

// Delete удаляет заказ
func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return repository.ErrOrderNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrOrderNotFound
	}
	return nil
}
