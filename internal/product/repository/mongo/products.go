package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/product/repository"
)

// productDocument представляет документ коллекции products.
// Поля name/price/stock читает также cart service, их имена — контракт
type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Brand       string             `bson:"brand"`
	Stock       int64              `bson:"stock"`
	Attributes  map[string]string  `bson:"attributes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d productDocument) toDomain() repository.Product {
	return repository.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Brand:       d.Brand,
		Stock:       d.Stock,
		Attributes:  d.Attributes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ProductRepository реализует repository.ProductRepository используя MongoDB
type ProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository создаёт новый MongoDB репозиторий каталога
// Создаёт индексы для фильтров листинга при инициализации
func NewProductRepository(client *mongo.Client, dbName string) *ProductRepository {
	col := client.Database(dbName).Collection("products")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Если индексы уже существуют — игнорируем ошибку
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})

	return &ProductRepository{col: col}
}

// Create сохраняет новый товар и возвращает его ID
func (r *ProductRepository) Create(ctx context.Context, product repository.Product) (string, error) {
	now := time.Now().UTC()
	doc := productDocument{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Brand:       product.Brand,
		Stock:       product.Stock,
		Attributes:  product.Attributes,
		CreatedAt:   now,
		UpdatedAt:   now,
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

// GetByID получает товар по ID
func (r *ProductRepository) GetByID(ctx context.Context, productID string) (repository.Product, error) {
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
	return doc.toDomain(), nil
}

// List возвращает страницу товаров по фильтру, отсортированную по дате создания
func (r *ProductRepository) List(ctx context.Context, filter repository.ListFilter) ([]repository.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]repository.Product, 0)
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		products = append(products, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// Update заменяет изменяемые поля товара
func (r *ProductRepository) Update(ctx context.Context, product repository.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return repository.ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.Category,
		"brand":       product.Brand,
		"stock":       product.Stock,
		"attributes":  product.Attributes,
		"updated_at":  time.Now().UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}

// Delete удаляет товар
func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return repository.ErrProductNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}
