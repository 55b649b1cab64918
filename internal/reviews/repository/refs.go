package repository

import (
	"context"
	"errors"
	"fmt"
	reviewserrors "stayhub/internal/reviews/errors"
	"stayhub/pkg/config"
	"stayhub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RefsRepository resolves listing and user references against the
// shared database.
type RefsRepository interface {
	FindListing(ctx context.Context, id string) (*model.Listing, error)
	UserExists(ctx context.Context, id string) (bool, error)
}

type mongoRefsRepository struct {
	listings *mongo.Collection
	users    *mongo.Collection
}

func NewRefsRepository(cfg *config.Config) RefsRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRefsRepository{
		listings: db.Collection("Listings"),
		users:    db.Collection("Users"),
	}
}

func (r *mongoRefsRepository) FindListing(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	err := r.listings.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reviewserrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}
	return &listing, nil
}

func (r *mongoRefsRepository) UserExists(ctx context.Context, id string) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}
