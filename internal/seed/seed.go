package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	bookingrepo "stayhub/internal/bookings/repository"
	bookingservice "stayhub/internal/bookings/service"
	bookingvalidator "stayhub/internal/bookings/validator"
	listingrepo "stayhub/internal/listings/repository"
	listingservice "stayhub/internal/listings/service"
	listingvalidator "stayhub/internal/listings/validator"
	reviewrepo "stayhub/internal/reviews/repository"
	reviewservice "stayhub/internal/reviews/service"
	reviewvalidator "stayhub/internal/reviews/validator"
	userrepo "stayhub/internal/users/repository"
	userservice "stayhub/internal/users/service"
	uservalidator "stayhub/internal/users/validator"
	"stayhub/pkg/config"
	"stayhub/pkg/model"

	"github.com/shopspring/decimal"
)

var nowFunc = time.Now

// Counts controls how many documents of each kind the seeder creates.
type Counts struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

// Seeder populates the database through the domain services so that
// every generated document passes the same validation, pricing and
// conflict checks as a real API request.
type Seeder struct {
	cfg      *config.Config
	users    userservice.UserService
	listings listingservice.ListingService
	bookings bookingservice.BookingService
	reviews  reviewservice.ReviewService
	rng      *rand.Rand

	seededUsers    []*model.User
	seededListings []*model.Listing

	// next available check-in per property, keeps generated stays
	// from colliding with each other
	cursor map[string]model.Date
}

func NewSeeder(cfg *config.Config, rngSeed int64) *Seeder {
	return &Seeder{
		cfg: cfg,
		users: userservice.NewUserService(
			userrepo.NewMongoUserRepository(cfg),
			uservalidator.NewUserValidator(cfg.Log),
			cfg,
		),
		listings: listingservice.NewListingService(
			listingrepo.NewMongoListingRepository(cfg),
			listingrepo.NewRefsRepository(cfg),
			listingvalidator.NewListingValidator(cfg.Log),
			nil,
			cfg,
		),
		bookings: bookingservice.NewBookingService(
			bookingrepo.NewMongoBookingRepository(cfg),
			bookingrepo.NewBookingLockRepository(cfg),
			bookingrepo.NewRefsRepository(cfg),
			bookingvalidator.NewBookingValidator(cfg.Log),
			nil,
			cfg,
		),
		reviews: reviewservice.NewReviewService(
			reviewrepo.NewMongoReviewRepository(cfg),
			reviewrepo.NewRefsRepository(cfg),
			reviewvalidator.NewReviewValidator(cfg.Log),
			cfg,
		),
		rng:    rand.New(rand.NewSource(rngSeed)),
		cursor: make(map[string]model.Date),
	}
}

func (s *Seeder) Run(ctx context.Context, counts Counts) error {
	if err := s.seedUsers(ctx, counts.Users); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	if err := s.seedListings(ctx, counts.Listings); err != nil {
		return fmt.Errorf("seeding listings: %w", err)
	}
	if err := s.seedBookings(ctx, counts.Bookings); err != nil {
		return fmt.Errorf("seeding bookings: %w", err)
	}
	if err := s.seedReviews(ctx, counts.Reviews); err != nil {
		return fmt.Errorf("seeding reviews: %w", err)
	}
	return nil
}

var (
	firstNames = []string{"Noa", "Amir", "Dana", "Omer", "Tamar", "Eli", "Maya", "Yoav", "Shira", "Ben"}
	lastNames  = []string{"Levi", "Cohen", "Mizrahi", "Peretz", "Biton", "Avraham", "Friedman", "Katz"}

	listingNames = []string{
		"Sunny loft near the beach",
		"Quiet garden studio",
		"Rooftop apartment with a view",
		"Cozy cabin by the lake",
		"Downtown two bedroom flat",
		"Renovated stone house",
		"Seaside penthouse",
		"Artist studio in the old city",
	}

	locations = []string{
		"Tel Aviv, Israel",
		"Haifa, Israel",
		"Jerusalem, Israel",
		"London, UK",
		"Manchester, UK",
		"New York, NY",
		"Austin, TX",
	}

	reviewComments = []string{
		"Great location, would stay again.",
		"Clean and exactly as described.",
		"Host was responsive and helpful.",
		"A bit noisy at night but otherwise lovely.",
		"Perfect for a weekend getaway.",
		"The photos do not do this place justice.",
	}
)

func (s *Seeder) seedUsers(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]
		user := &model.User{
			Username:  fmt.Sprintf("%s_%s_%03d", first, last, i),
			Email:     fmt.Sprintf("%s.%s.%03d@example.com", first, last, i),
			FirstName: first,
			LastName:  last,
			Phone:     fmt.Sprintf("+1415555%04d", s.rng.Intn(10000)),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		s.seededUsers = append(s.seededUsers, user)
	}
	s.cfg.Log.Info("Seeded users", "count", n)
	return nil
}

func (s *Seeder) seedListings(ctx context.Context, n int) error {
	if len(s.seededUsers) == 0 && n > 0 {
		return fmt.Errorf("cannot seed listings without users")
	}
	for i := 0; i < n; i++ {
		host := s.seededUsers[s.rng.Intn(len(s.seededUsers))]
		price := decimal.NewFromInt(int64(60 + s.rng.Intn(340))).
			Add(decimal.New(int64(s.rng.Intn(100)), -2))
		listing := &model.Listing{
			HostID:        host.ID,
			Name:          listingNames[s.rng.Intn(len(listingNames))],
			Description:   fmt.Sprintf("Seeded listing %d, hosted by %s.", i, host.FirstName),
			Location:      locations[s.rng.Intn(len(locations))],
			PricePerNight: model.NewPrice(price),
		}
		if err := s.listings.Create(ctx, listing); err != nil {
			return err
		}
		s.seededListings = append(s.seededListings, listing)
	}
	s.cfg.Log.Info("Seeded listings", "count", n)
	return nil
}

func (s *Seeder) seedBookings(ctx context.Context, n int) error {
	if len(s.seededListings) == 0 && n > 0 {
		return fmt.Errorf("cannot seed bookings without listings")
	}
	created := 0
	for attempts := 0; created < n && attempts < n*4; attempts++ {
		listing := s.seededListings[s.rng.Intn(len(s.seededListings))]
		guest := s.pickGuest(listing.HostID)
		if guest == nil {
			continue
		}

		start, end := s.nextSlot(listing.ID)
		booking := &model.Booking{
			PropertyID: listing.ID,
			UserID:     guest.ID,
			StartDate:  start,
			EndDate:    end,
		}
		if err := s.bookings.Create(ctx, booking); err != nil {
			return err
		}
		created++
	}
	s.cfg.Log.Info("Seeded bookings", "count", created)
	return nil
}

func (s *Seeder) seedReviews(ctx context.Context, n int) error {
	if len(s.seededListings) == 0 && n > 0 {
		return fmt.Errorf("cannot seed reviews without listings")
	}
	reviewed := make(map[string]bool)
	created := 0
	for attempts := 0; created < n && attempts < n*4; attempts++ {
		listing := s.seededListings[s.rng.Intn(len(s.seededListings))]
		guest := s.pickGuest(listing.HostID)
		if guest == nil {
			continue
		}
		pair := listing.ID + "/" + guest.ID
		if reviewed[pair] {
			continue
		}

		review := &model.Review{
			PropertyID: listing.ID,
			UserID:     guest.ID,
			Rating:     1 + s.rng.Intn(5),
			Comment:    reviewComments[s.rng.Intn(len(reviewComments))],
		}
		if err := s.reviews.Create(ctx, review); err != nil {
			return err
		}
		reviewed[pair] = true
		created++
	}
	s.cfg.Log.Info("Seeded reviews", "count", created)
	return nil
}

// pickGuest returns a seeded user other than the host, or nil when no
// such user exists.
func (s *Seeder) pickGuest(hostID string) *model.User {
	for i := 0; i < 10; i++ {
		candidate := s.seededUsers[s.rng.Intn(len(s.seededUsers))]
		if candidate.ID != hostID {
			return candidate
		}
	}
	return nil
}

// nextSlot hands out consecutive non-overlapping stays per property,
// separated by a small random gap.
func (s *Seeder) nextSlot(propertyID string) (model.Date, model.Date) {
	start, ok := s.cursor[propertyID]
	if !ok {
		start = model.Date{Time: model.DateOf(nowFunc()).Time.AddDate(0, 0, 1)}
	}
	nights := 2 + s.rng.Intn(6)
	end := model.Date{Time: start.Time.AddDate(0, 0, nights)}

	gap := s.rng.Intn(4)
	s.cursor[propertyID] = model.Date{Time: end.Time.AddDate(0, 0, gap)}
	return start, end
}
