package service

import (
	"context"
	"errors"
	listingserrors "stayhub/internal/listings/errors"
	"stayhub/internal/listings/repository"
	"stayhub/internal/listings/validator"
	"stayhub/pkg/config"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/kafka"
	"stayhub/pkg/model"
	"stayhub/pkg/sanitizer"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const eventSource = "listings-service"

// EventPublisher is the slice of the Kafka producer the service needs.
// A nil publisher disables event publishing.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type ListingService interface {
	Create(ctx context.Context, listing *model.Listing) error
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Listing, int64, error)
	Update(ctx context.Context, id string, updates *model.ListingUpdate) error
	Delete(ctx context.Context, id string) error
	SearchByLocation(ctx context.Context, location string, limit int, offset int64) ([]*model.Listing, int64, error)
}

type listingService struct {
	repo      repository.ListingRepository
	refs      repository.RefsRepository
	validator *validator.ListingValidator
	events    EventPublisher
	cfg       *config.Config
}

func NewListingService(
	repo repository.ListingRepository,
	refs repository.RefsRepository,
	validator *validator.ListingValidator,
	events EventPublisher,
	cfg *config.Config,
) ListingService {
	return &listingService{
		repo:      repo,
		refs:      refs,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *listingService) Create(ctx context.Context, listing *model.Listing) error {
	s.sanitize(listing)
	if err := s.validate(listing); err != nil {
		return err
	}

	if err := s.verifyHost(ctx, listing.HostID); err != nil {
		return err
	}

	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		s.cfg.Log.Error("Failed to create listing", "error", err)
		return apperrors.Internal("Failed to create listing", err)
	}

	s.cfg.Log.Info("Listing created successfully",
		"id", listing.ID,
		"host_id", listing.HostID,
		"location_slug", listing.LocationSlug,
	)
	return nil
}

func (s *listingService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Listing ID cannot be empty")
	}

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Listing", id)
		}
		if errors.Is(err, listingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid listing ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve listing", err)
	}

	return listing, nil
}

func (s *listingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Listing, int64, error) {
	var count int64
	var listings []*model.Listing
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count listings", "error", errCount)
			errCount = apperrors.Internal("Failed to count listings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		listings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list listings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve listings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return listings, count, nil
}

func (s *listingService) Update(ctx context.Context, id string, updates *model.ListingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Listing ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Listing", id)
		}
		if errors.Is(err, listingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid listing ID format")
		}
		return apperrors.Internal("Failed to check listing existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Listing update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	// A price change applies to future bookings only; totals already
	// computed keep the price in force when they were created.
	merged := s.mergeListingUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, listingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Listing", id)
		}
		s.cfg.Log.Error("Failed to update listing", "id", id, "error", err)
		return apperrors.Internal("Failed to update listing", err)
	}

	s.cfg.Log.Info("Listing updated successfully", "id", id)
	return nil
}

// Delete removes the listing and cascades to its bookings and reviews
// in a single transaction.
func (s *listingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Listing ID cannot be empty")
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Delete(sessCtx, id); err != nil {
			if errors.Is(err, listingserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Listing", id)
			}
			if errors.Is(err, listingserrors.ErrInvalidID) {
				return apperrors.InvalidInput("Invalid listing ID format")
			}
			return apperrors.Internal("Failed to delete listing", err)
		}
		if err := s.repo.DeleteDependents(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete listing dependents", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cfg.Log.Info("Listing deleted successfully", "id", id)
	s.publishDeleted(ctx, id)
	return nil
}

func (s *listingService) SearchByLocation(ctx context.Context, location string, limit int, offset int64) ([]*model.Listing, int64, error) {
	if location == "" {
		return nil, 0, apperrors.InvalidInput("Location is required")
	}

	slug := sanitizer.SanitizeLocationSlug(location)

	var count int64
	var listings []*model.Listing
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByLocation(ctx, slug)
		if err != nil {
			s.cfg.Log.Error("Failed to count listings by location", "location_slug", slug, "error", err)
			errCount = apperrors.Internal("Failed to count listings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		listings, err = s.repo.SearchByLocation(ctx, slug, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to search listings", "location_slug", slug, "error", err)
			errFind = apperrors.Internal("Failed to search listings", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	s.cfg.Log.Debug("Listing search completed",
		"location_slug", slug,
		"count", len(listings),
		"total_count", count,
	)
	return listings, count, nil
}

// --- Helpers ---

func (s *listingService) sanitize(l *model.Listing) {
	l.Name = sanitizer.TrimAndNormalize(l.Name)
	l.Description = sanitizer.TrimAndNormalize(l.Description)
	l.Location = sanitizer.TrimAndNormalize(l.Location)
	l.LocationSlug = sanitizer.SanitizeLocationSlug(l.Location)
}

func (s *listingService) validate(listing *model.Listing) error {
	if err := s.validator.Validate(listing); err != nil {
		s.cfg.Log.Warn("Listing validation failed", "error", err)
		return apperrors.Validation("Listing validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *listingService) verifyHost(ctx context.Context, hostID string) error {
	exists, err := s.refs.HostExists(ctx, hostID)
	if err != nil {
		return apperrors.Internal("Failed to resolve host", err)
	}
	if !exists {
		return apperrors.NotFoundWithID("User", hostID)
	}
	return nil
}

func (s *listingService) mergeListingUpdates(existing *model.Listing, updates *model.ListingUpdate) *model.Listing {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Description != "" {
		merged.Description = updates.Description
	}
	if updates.Location != "" {
		merged.Location = updates.Location
	}
	if updates.PricePerNight != nil {
		merged.PricePerNight = *updates.PricePerNight
	}

	return &merged
}

func (s *listingService) publishDeleted(ctx context.Context, listingID string) {
	if s.events == nil {
		return
	}

	msg, err := kafka.NewMessage(eventSource).
		WithKey(listingID).
		WithEventType(kafka.EventListingDeleted).
		WithJSONPayload(map[string]string{"listing_id": listingID}).
		Build()
	if err != nil {
		s.cfg.Log.Warn("Failed to build listing event", "error", err)
		return
	}

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish listing event",
			"event_type", kafka.EventListingDeleted,
			"listing_id", listingID,
			"error", err,
		)
	}
}
