package repository

import (
	"context"
	"fmt"
	"stayhub/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RefsRepository resolves host references against the shared Users
// collection.
type RefsRepository interface {
	HostExists(ctx context.Context, id string) (bool, error)
}

type mongoRefsRepository struct {
	users *mongo.Collection
}

func NewRefsRepository(cfg *config.Config) RefsRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRefsRepository{
		users: db.Collection("Users"),
	}
}

func (r *mongoRefsRepository) HostExists(ctx context.Context, id string) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check host existence: %w", err)
	}
	return count > 0, nil
}
