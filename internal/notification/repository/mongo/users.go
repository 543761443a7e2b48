package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sarveshdongare2705/ecommerce-grpc/internal/notification/repository"
)

const usersCollection = "users"

// PhoneDirectory реализует repository.PhoneDirectory поверх коллекции users.
// Notification Service читает профили напрямую из общего store,
// не обращаясь к User Service
type PhoneDirectory struct {
	collection *mongo.Collection
}

// NewPhoneDirectory создаёт новый справочник телефонов
func NewPhoneDirectory(client *mongo.Client, dbName string) *PhoneDirectory {
	return &PhoneDirectory{
		collection: client.Database(dbName).Collection(usersCollection),
	}
}

// GetPhoneNumber возвращает номер телефона пользователя
func (d *PhoneDirectory) GetPhoneNumber(ctx context.Context, userID string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", repository.ErrUserNotFound
	}

	var doc struct {
		PhoneNumber string `bson:"phone_number"`
	}
	err = d.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", repository.ErrUserNotFound
		}
		return "", err
	}

	if doc.PhoneNumber == "" {
		return "", repository.ErrNoPhoneNumber
	}
	return doc.PhoneNumber, nil
}
