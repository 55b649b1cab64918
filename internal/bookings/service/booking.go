package service

import (
	"context"
	"errors"
	"fmt"
	bookingserrors "stayhub/internal/bookings/errors"
	"stayhub/internal/bookings/repository"
	"stayhub/internal/bookings/validator"
	"stayhub/pkg/config"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/kafka"
	"stayhub/pkg/model"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const eventSource = "bookings-service"

// EventPublisher is the slice of the Kafka producer the service needs.
// A nil publisher disables event publishing.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	Update(ctx context.Context, id string, updates *model.BookingUpdate) error
	Delete(ctx context.Context, id string) error
	SearchByProperty(ctx context.Context, propertyID string, start, end *model.Date, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	refs      repository.RefsRepository
	validator *validator.BookingValidator
	events    EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	refs repository.RefsRepository,
	validator *validator.BookingValidator,
	events EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		refs:      refs,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.validate(booking); err != nil {
		return err
	}
	if err := validateRange(booking.StartDate, booking.EndDate); err != nil {
		return err
	}

	listing, err := s.resolveListing(ctx, booking.PropertyID)
	if err != nil {
		return err
	}
	if err := s.verifyUser(ctx, booking.UserID); err != nil {
		return err
	}
	if booking.UserID == listing.HostID {
		return apperrors.SelfReferential("Hosts cannot book their own listing")
	}

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.TotalPrice = model.PriceForNights(listing.PricePerNight, booking.Nights())

	// Acquire advisory lock to prevent race conditions
	lockID, err := s.acquirePropertyLock(ctx, booking.PropertyID)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releasePropertyLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyAvailability(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			if errors.Is(err, bookingserrors.ErrDuplicateSlot) {
				return apperrors.ConflictingBooking("A booking with these exact dates already exists for this property")
			}
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"property_id", booking.PropertyID,
		"user_id", booking.UserID,
		"start_date", booking.StartDate,
		"end_date", booking.EndDate,
		"total_price", booking.TotalPrice,
	)
	s.publishEvent(ctx, kafka.EventBookingCreated, booking)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to check booking existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeBookingUpdates(existing, updates)
	if err := validateRange(merged.StartDate, merged.EndDate); err != nil {
		return err
	}

	// New dates change the number of nights, so the total is recomputed
	// from the listing's current nightly price.
	listing, err := s.resolveListing(ctx, merged.PropertyID)
	if err != nil {
		return err
	}
	merged.TotalPrice = model.PriceForNights(listing.PricePerNight, merged.Nights())

	lockID, err := s.acquirePropertyLock(ctx, merged.PropertyID)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releasePropertyLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyAvailability(sessCtx, merged); err != nil {
			return err
		}
		if err := s.repo.Update(sessCtx, id, merged); err != nil {
			if errors.Is(err, bookingserrors.ErrDuplicateSlot) {
				return apperrors.ConflictingBooking("A booking with these exact dates already exists for this property")
			}
			return apperrors.Internal("Failed to update booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return err
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	s.publishEvent(ctx, kafka.EventBookingUpdated, merged)
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to check booking existence", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	s.publishEvent(ctx, kafka.EventBookingCancelled, existing)
	return nil
}

func (s *bookingService) SearchByProperty(ctx context.Context, propertyID string, start, end *model.Date, limit int, offset int64) ([]*model.Booking, int64, error) {
	if propertyID == "" {
		return nil, 0, apperrors.InvalidInput("Property ID is required")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByProperty(ctx, propertyID, start, end)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings by search",
				"property_id", propertyID,
				"error", err,
			)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		bookings, err = s.repo.FindByProperty(ctx, propertyID, start, end, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to search bookings",
				"property_id", propertyID,
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to search bookings", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	s.cfg.Log.Debug("Booking search completed",
		"property_id", propertyID,
		"count", len(bookings),
		"total_count", count,
	)
	return bookings, count, nil
}

// --- Helpers ---

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func validateRange(start, end model.Date) error {
	if !start.Time.Before(end.Time) {
		return apperrors.InvalidRange(fmt.Sprintf(
			"start_date (%s) must be before end_date (%s)", start, end,
		))
	}
	return nil
}

func (s *bookingService) resolveListing(ctx context.Context, propertyID string) (*model.Listing, error) {
	listing, err := s.refs.FindListing(ctx, propertyID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrPropertyNotFound) {
			return nil, apperrors.NotFoundWithID("Listing", propertyID)
		}
		return nil, apperrors.Internal("Failed to resolve listing", err)
	}
	return listing, nil
}

func (s *bookingService) verifyUser(ctx context.Context, userID string) error {
	exists, err := s.refs.UserExists(ctx, userID)
	if err != nil {
		return apperrors.Internal("Failed to resolve user", err)
	}
	if !exists {
		return apperrors.NotFoundWithID("User", userID)
	}
	return nil
}

func (s *bookingService) mergeBookingUpdates(existing *model.Booking, updates *model.BookingUpdate) *model.Booking {
	merged := *existing

	if updates.StartDate != nil {
		merged.StartDate = *updates.StartDate
	}
	if updates.EndDate != nil {
		merged.EndDate = *updates.EndDate
	}

	return &merged
}

// verifyAvailability re-checks overlap inside the transaction. Ranges
// are half-open, so a stay ending the day another starts is allowed.
func (s *bookingService) verifyAvailability(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindOverlapping(ctx, booking.PropertyID, booking.StartDate, booking.EndDate, s.cfg.MaxOverlapFetch)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if b.ID == booking.ID {
			continue
		}
		if model.Overlaps(b.StartDate, b.EndDate, booking.StartDate, booking.EndDate) {
			return apperrors.ConflictingBooking(fmt.Sprintf(
				"Booking dates overlap with an existing booking (%s - %s)",
				b.StartDate, b.EndDate,
			))
		}
	}
	return nil
}

// acquirePropertyLock creates an advisory lock so that only one
// check-and-insert runs per property at a time.
func (s *bookingService) acquirePropertyLock(ctx context.Context, propertyID string) (string, error) {
	lockID := fmt.Sprintf("booking_lock_%s", propertyID)

	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.BookingLockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This property is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releasePropertyLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *model.Booking) {
	if s.events == nil {
		return
	}

	msg, err := kafka.NewMessage(eventSource).
		WithKey(booking.PropertyID).
		WithEventType(eventType).
		WithJSONPayload(booking).
		Build()
	if err != nil {
		s.cfg.Log.Warn("Failed to build booking event", "event_type", eventType, "error", err)
		return
	}

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
