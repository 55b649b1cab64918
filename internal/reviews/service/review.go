package service

import (
	"context"
	"errors"
	reviewserrors "stayhub/internal/reviews/errors"
	"stayhub/internal/reviews/repository"
	"stayhub/internal/reviews/validator"
	"stayhub/pkg/config"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/model"
	"stayhub/pkg/sanitizer"
	"sync"

	"github.com/google/uuid"
)

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Review, int64, error)
	Update(ctx context.Context, id string, updates *model.ReviewUpdate) error
	Delete(ctx context.Context, id string) error
	GetByProperty(ctx context.Context, propertyID string, limit int, offset int64) ([]*model.Review, int64, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	refs      repository.RefsRepository
	validator *validator.ReviewValidator
	cfg       *config.Config
}

func NewReviewService(
	repo repository.ReviewRepository,
	refs repository.RefsRepository,
	validator *validator.ReviewValidator,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		repo:      repo,
		refs:      refs,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) error {
	s.sanitize(review)
	if err := s.validate(review); err != nil {
		return err
	}

	listing, err := s.resolveListing(ctx, review.PropertyID)
	if err != nil {
		return err
	}
	if err := s.verifyUser(ctx, review.UserID); err != nil {
		return err
	}
	if review.UserID == listing.HostID {
		return apperrors.SelfReferential("Hosts cannot review their own listing")
	}

	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, reviewserrors.ErrDuplicatePair) {
			return apperrors.DuplicateReview(review.PropertyID, review.UserID)
		}
		s.cfg.Log.Error("Failed to create review", "error", err)
		return apperrors.Internal("Failed to create review", err)
	}

	s.cfg.Log.Info("Review created successfully",
		"id", review.ID,
		"property_id", review.PropertyID,
		"user_id", review.UserID,
		"rating", review.Rating,
	)
	return nil
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*model.Review, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Review ID cannot be empty")
	}

	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Review", id)
		}
		if errors.Is(err, reviewserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid review ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve review", err)
	}

	return review, nil
}

func (s *reviewService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Review, int64, error) {
	var count int64
	var reviews []*model.Review
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count reviews", "error", errCount)
			errCount = apperrors.Internal("Failed to count reviews", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		reviews, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list reviews", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve reviews", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return reviews, count, nil
}

// Update edits rating or comment in place. The (property, user) pair is
// immutable, so an update can never trip the duplicate constraint.
func (s *reviewService) Update(ctx context.Context, id string, updates *model.ReviewUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Review ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Review", id)
		}
		if errors.Is(err, reviewserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid review ID format")
		}
		return apperrors.Internal("Failed to check review existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Review update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeReviewUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Review", id)
		}
		s.cfg.Log.Error("Failed to update review", "id", id, "error", err)
		return apperrors.Internal("Failed to update review", err)
	}

	s.cfg.Log.Info("Review updated successfully", "id", id)
	return nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Review ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Review", id)
		}
		if errors.Is(err, reviewserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid review ID format")
		}
		return apperrors.Internal("Failed to delete review", err)
	}

	s.cfg.Log.Info("Review deleted successfully", "id", id)
	return nil
}

func (s *reviewService) GetByProperty(ctx context.Context, propertyID string, limit int, offset int64) ([]*model.Review, int64, error) {
	if propertyID == "" {
		return nil, 0, apperrors.InvalidInput("Property ID is required")
	}

	var count int64
	var reviews []*model.Review
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByProperty(ctx, propertyID)
		if err != nil {
			s.cfg.Log.Error("Failed to count reviews by property", "property_id", propertyID, "error", err)
			errCount = apperrors.Internal("Failed to count reviews", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		reviews, err = s.repo.FindByProperty(ctx, propertyID, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to find reviews by property", "property_id", propertyID, "error", err)
			errFind = apperrors.Internal("Failed to retrieve reviews", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return reviews, count, nil
}

// --- Helpers ---

func (s *reviewService) sanitize(r *model.Review) {
	r.Comment = sanitizer.TrimAndNormalize(r.Comment)
}

func (s *reviewService) validate(review *model.Review) error {
	if err := s.validator.Validate(review); err != nil {
		s.cfg.Log.Warn("Review validation failed", "error", err)
		return apperrors.Validation("Review validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *reviewService) resolveListing(ctx context.Context, propertyID string) (*model.Listing, error) {
	listing, err := s.refs.FindListing(ctx, propertyID)
	if err != nil {
		if errors.Is(err, reviewserrors.ErrPropertyNotFound) {
			return nil, apperrors.NotFoundWithID("Listing", propertyID)
		}
		return nil, apperrors.Internal("Failed to resolve listing", err)
	}
	return listing, nil
}

func (s *reviewService) verifyUser(ctx context.Context, userID string) error {
	exists, err := s.refs.UserExists(ctx, userID)
	if err != nil {
		return apperrors.Internal("Failed to resolve user", err)
	}
	if !exists {
		return apperrors.NotFoundWithID("User", userID)
	}
	return nil
}

func (s *reviewService) mergeReviewUpdates(existing *model.Review, updates *model.ReviewUpdate) *model.Review {
	merged := *existing

	if updates.Rating != nil {
		merged.Rating = *updates.Rating
	}
	if updates.Comment != "" {
		merged.Comment = updates.Comment
	}

	return &merged
}
