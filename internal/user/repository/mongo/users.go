package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/user/repository"
)

// userDocument представляет документ коллекции users
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Address      string             `bson:"address"`
	PhoneNumber  string             `bson:"phone_number"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d userDocument) toDomain() repository.User {
	return repository.User{
		ID:           d.ID.Hex(),
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Address:      d.Address,
		PhoneNumber:  d.PhoneNumber,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserRepository реализует repository.UserRepository используя MongoDB
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository создаёт новый MongoDB репозиторий пользователей
// Создаёт уникальный индекс на email при инициализации
func NewUserRepository(client *mongo.Client, dbName string) *UserRepository {
	col := client.Database(dbName).Collection("users")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Если индекс уже существует — игнорируем ошибку
	_, _ = col.Indexes().CreateOne(ctx, indexModel)

	return &UserRepository{col: col}
}

// CreateUser сохраняет нового пользователя и возвращает его ID
func (r *UserRepository) CreateUser(ctx context.Context, user repository.User) (string, error) {
	now := time.Now().UTC()
	doc := userDocument{
		FullName:     user.FullName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Address:      user.Address,
		PhoneNumber:  user.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		// Уникальный индекс на email превращает гонку регистраций
		// в duplicate key ошибку
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrEmailTaken
		}
		return "", err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// GetByEmail получает пользователя по email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (repository.User, error) {
	var doc userDocument
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.User{}, repository.ErrUserNotFound
		}
		return repository.User{}, err
	}
	return doc.toDomain(), nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (repository.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// Невалидный hex не может существовать в коллекции
		return repository.User{}, repository.ErrUserNotFound
	}

	var doc userDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.User{}, repository.ErrUserNotFound
		}
		return repository.User{}, err
	}
	return doc.toDomain(), nil
}

// UpdateByEmail обновляет профиль пользователя, найденного по email
func (r *UserRepository) UpdateByEmail(ctx context.Context, user repository.User) error {
	update := bson.M{"$set": bson.M{
		"full_name":    user.FullName,
		"address":      user.Address,
		"phone_number": user.PhoneNumber,
		"updated_at":   time.Now().UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"email": user.Email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}
