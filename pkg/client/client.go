package client

import (
	"context"
	"stayhub/pkg/logger"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Client struct {
	Mongo *mongo.Client

	ListingClient *ListingClient
	BookingClient *BookingClient
	ReviewClient  *ReviewClient
	UserClient    *UserClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB",
			"error", err,
			"uri", mongoURI,
		)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB", "error", err)
	}

	log.Info("Successfully connected to MongoDB")
	c.Mongo = client
}

// SetServices configures the typed HTTP clients used by the gateway to
// reach the domain services.
func (c *Client) SetServices(listingsURL, bookingsURL, reviewsURL, usersURL string) {
	c.ListingClient = NewListingClient(listingsURL)
	c.BookingClient = NewBookingClient(bookingsURL)
	c.ReviewClient = NewReviewClient(reviewsURL)
	c.UserClient = NewUserClient(usersURL)
}

func (c *Client) GracefulShutdown() {
	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = c.Mongo.Disconnect(ctx)
	}
}
