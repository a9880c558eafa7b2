package usuarios

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoRepository guarda los registros en la colección "usuarios".
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository crea el repositorio sobre la colección indicada.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, record *UserRecord) error {
	res, err := r.col.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("insertando usuario: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		record.ID = id
	}
	return nil
}

func (r *MongoRepository) All(ctx context.Context) ([]UserRecord, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listando usuarios: %w", err)
	}

	records := make([]UserRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("leyendo usuarios: %w", err)
	}
	return records, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*UserRecord, error) {
	var record UserRecord
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	return &record, nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id bson.ObjectID, patch map[string]any) (*UserRecord, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return nil, fmt.Errorf("actualizando usuario: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("eliminando usuario: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
