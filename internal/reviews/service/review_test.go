package service

import (
	"context"
	"testing"

	reviewserrors "stayhub/internal/reviews/errors"
	"stayhub/internal/reviews/validator"
	"stayhub/pkg/config"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/logger"
	"stayhub/pkg/model"
)

const (
	testPropertyID = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5c9a111"
	testHostID     = "2c5f39cb-3fb2-4e4c-b4f6-ef19d5c9a222"
	testGuestID    = "3d6a4adc-4ac3-4f5d-85a7-ef19d5c9a333"
	testReviewID   = "4e7b5bed-5bd4-4a6e-96b8-ef19d5c9a444"
)

type mockReviewRepository struct {
	createFunc   func(ctx context.Context, review *model.Review) error
	findByIDFunc func(ctx context.Context, id string) (*model.Review, error)
	updateFunc   func(ctx context.Context, id string, review *model.Review) error
}

func (m *mockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, reviewserrors.ErrNotFound
}

func (m *mockReviewRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Review, error) {
	return []*model.Review{}, nil
}

func (m *mockReviewRepository) Update(ctx context.Context, id string, review *model.Review) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, review)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockReviewRepository) FindByProperty(ctx context.Context, propertyID string, limit int, offset int64) ([]*model.Review, error) {
	return []*model.Review{}, nil
}

func (m *mockReviewRepository) CountByProperty(ctx context.Context, propertyID string) (int64, error) {
	return 0, nil
}

func (m *mockReviewRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockRefsRepository struct {
	findListingFunc func(ctx context.Context, id string) (*model.Listing, error)
	userExistsFunc  func(ctx context.Context, id string) (bool, error)
}

func (m *mockRefsRepository) FindListing(ctx context.Context, id string) (*model.Listing, error) {
	if m.findListingFunc != nil {
		return m.findListingFunc(ctx, id)
	}
	price, _ := model.ParsePrice("100.00")
	return &model.Listing{
		ID:            testPropertyID,
		HostID:        testHostID,
		Name:          "Seaside flat",
		Description:   "Two rooms near the promenade",
		Location:      "Tel Aviv",
		PricePerNight: price,
	}, nil
}

func (m *mockRefsRepository) UserExists(ctx context.Context, id string) (bool, error) {
	if m.userExistsFunc != nil {
		return m.userExistsFunc(ctx, id)
	}
	return true, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "info",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
	}
}

func newTestService(repo *mockReviewRepository, refs *mockRefsRepository, cfg *config.Config) *reviewService {
	return &reviewService{
		repo:      repo,
		refs:      refs,
		validator: validator.NewReviewValidator(cfg.Log),
		cfg:       cfg,
	}
}

func validReview(rating int) *model.Review {
	return &model.Review{
		PropertyID: testPropertyID,
		UserID:     testGuestID,
		Rating:     rating,
		Comment:    "Great place, spotless and quiet.",
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, appErr.Code, appErr)
	}
}

func TestCreate_ValidReview(t *testing.T) {
	var created *model.Review
	repo := &mockReviewRepository{
		createFunc: func(ctx context.Context, review *model.Review) error {
			created = review
			return nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	if err := svc.Create(context.Background(), validReview(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected review to be persisted")
	}
	if created.ID == "" {
		t.Error("expected review ID to be assigned")
	}
}

func TestCreate_RejectsOutOfRangeRating(t *testing.T) {
	svc := newTestService(&mockReviewRepository{}, &mockRefsRepository{}, testConfig(t))

	for _, rating := range []int{-1, 0, 6, 100} {
		err := svc.Create(context.Background(), validReview(rating))
		assertAppErrorCode(t, err, apperrors.CodeValidation)
	}
}

func TestCreate_RejectsDuplicateReview(t *testing.T) {
	repo := &mockReviewRepository{
		createFunc: func(ctx context.Context, review *model.Review) error {
			return reviewserrors.ErrDuplicatePair
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	err := svc.Create(context.Background(), validReview(4))
	assertAppErrorCode(t, err, apperrors.CodeDuplicateReview)
}

func TestCreate_RejectsSelfReview(t *testing.T) {
	svc := newTestService(&mockReviewRepository{}, &mockRefsRepository{}, testConfig(t))

	review := validReview(4)
	review.UserID = testHostID
	err := svc.Create(context.Background(), review)
	assertAppErrorCode(t, err, apperrors.CodeSelfReferential)
}

func TestCreate_UnknownProperty(t *testing.T) {
	refs := &mockRefsRepository{
		findListingFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return nil, reviewserrors.ErrPropertyNotFound
		},
	}
	svc := newTestService(&mockReviewRepository{}, refs, testConfig(t))

	err := svc.Create(context.Background(), validReview(4))
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestUpdate_EditsRatingInPlace(t *testing.T) {
	existing := validReview(2)
	existing.ID = testReviewID

	var updated *model.Review
	repo := &mockReviewRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Review, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, id string, review *model.Review) error {
			updated = review
			return nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	newRating := 5
	err := svc.Update(context.Background(), testReviewID, &model.ReviewUpdate{Rating: &newRating})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil || updated.Rating != 5 {
		t.Fatalf("expected rating updated to 5, got %+v", updated)
	}
	if updated.UserID != testGuestID || updated.PropertyID != testPropertyID {
		t.Error("review identity must not change on update")
	}
}

func TestUpdate_RejectsOutOfRangeRating(t *testing.T) {
	existing := validReview(3)
	existing.ID = testReviewID
	repo := &mockReviewRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Review, error) {
			return existing, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	newRating := 6
	err := svc.Update(context.Background(), testReviewID, &model.ReviewUpdate{Rating: &newRating})
	assertAppErrorCode(t, err, apperrors.CodeValidation)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&mockReviewRepository{}, &mockRefsRepository{}, testConfig(t))

	_, err := svc.GetByID(context.Background(), testReviewID)
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}
