package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoRepository guarda las cuentas en la colección "users" de MongoDB.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository crea el repositorio sobre la colección indicada.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("buscando cuenta: %w", err)
	}
	return &account, nil
}

func (r *MongoRepository) Insert(ctx context.Context, account *Account) error {
	res, err := r.col.InsertOne(ctx, account)
	if err != nil {
		return fmt.Errorf("insertando cuenta: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		account.ID = id
	}
	return nil
}
