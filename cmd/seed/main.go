package main

import (
	"context"
	"log"
	"os"
	"time"

	"stayhub/internal/seed"
	"stayhub/pkg/config"

	"github.com/urfave/cli/v2"
)

const JobName = "seed"

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "populate the database with generated users, listings, bookings and reviews",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "users", Value: 20, Usage: "number of users to create"},
			&cli.IntFlag{Name: "listings", Value: 15, Usage: "number of listings to create"},
			&cli.IntFlag{Name: "bookings", Value: 40, Usage: "number of bookings to create"},
			&cli.IntFlag{Name: "reviews", Value: 30, Usage: "number of reviews to create"},
			&cli.Int64Flag{Name: "rng-seed", Value: time.Now().UnixNano(), Usage: "random source seed, fixed value gives reproducible data"},
			&cli.DurationFlag{Name: "timeout", Value: 5 * time.Minute, Usage: "overall job timeout"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

func run(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	counts := seed.Counts{
		Users:    c.Int("users"),
		Listings: c.Int("listings"),
		Bookings: c.Int("bookings"),
		Reviews:  c.Int("reviews"),
	}
	cfg.Log.Info("Starting seed job",
		"users", counts.Users,
		"listings", counts.Listings,
		"bookings", counts.Bookings,
		"reviews", counts.Reviews,
	)

	seeder := seed.NewSeeder(cfg, c.Int64("rng-seed"))
	if err := seeder.Run(ctx, counts); err != nil {
		return err
	}

	cfg.Log.Info("Seed completed")
	return nil
}
