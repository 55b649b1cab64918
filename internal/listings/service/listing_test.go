package service

import (
	"context"
	"testing"

	listingserrors "stayhub/internal/listings/errors"
	"stayhub/internal/listings/validator"
	"stayhub/pkg/config"
	mongotx "stayhub/pkg/db/mongo"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/logger"
	"stayhub/pkg/model"
)

const (
	testListingID = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5c9a111"
	testHostID    = "2c5f39cb-3fb2-4e4c-b4f6-ef19d5c9a222"
)

type mockListingRepository struct {
	createFunc           func(ctx context.Context, listing *model.Listing) error
	findByIDFunc         func(ctx context.Context, id string) (*model.Listing, error)
	deleteFunc           func(ctx context.Context, id string) error
	deleteDependentsFunc func(ctx context.Context, listingID string) error
	searchFunc           func(ctx context.Context, locationSlug string, limit int, offset int64) ([]*model.Listing, error)
}

func (m *mockListingRepository) Create(ctx context.Context, listing *model.Listing) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, listing)
	}
	return nil
}

func (m *mockListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, listingserrors.ErrNotFound
}

func (m *mockListingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Listing, error) {
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) Update(ctx context.Context, id string, listing *model.Listing) error {
	return nil
}

func (m *mockListingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockListingRepository) DeleteDependents(ctx context.Context, listingID string) error {
	if m.deleteDependentsFunc != nil {
		return m.deleteDependentsFunc(ctx, listingID)
	}
	return nil
}

func (m *mockListingRepository) SearchByLocation(ctx context.Context, locationSlug string, limit int, offset int64) ([]*model.Listing, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, locationSlug, limit, offset)
	}
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) CountByLocation(ctx context.Context, locationSlug string) (int64, error) {
	return 0, nil
}

func (m *mockListingRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockListingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockRefsRepository struct {
	hostExistsFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockRefsRepository) HostExists(ctx context.Context, id string) (bool, error) {
	if m.hostExistsFunc != nil {
		return m.hostExistsFunc(ctx, id)
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

func newTestService(repo *mockListingRepository, refs *mockRefsRepository, cfg *config.Config) *listingService {
	return &listingService{
		repo:      repo,
		refs:      refs,
		validator: validator.NewListingValidator(cfg.Log),
		cfg:       cfg,
	}
}

func validListing(t *testing.T, pricePerNight string) *model.Listing {
	t.Helper()
	price, err := model.ParsePrice(pricePerNight)
	if err != nil {
		t.Fatal(err)
	}
	return &model.Listing{
		HostID:        testHostID,
		Name:          "Seaside flat",
		Description:   "Two rooms near the promenade",
		Location:      "Tel Aviv, Israel",
		PricePerNight: price,
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

func TestCreate_GeneratesLocationSlug(t *testing.T) {
	cfg := testConfig(t)
	var created *model.Listing
	repo := &mockListingRepository{
		createFunc: func(ctx context.Context, listing *model.Listing) error {
			created = listing
			return nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	if err := svc.Create(context.Background(), validListing(t, "100.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected listing to be persisted")
	}
	if created.LocationSlug != "tel_aviv_israel" {
		t.Errorf("expected slug tel_aviv_israel, got %q", created.LocationSlug)
	}
	if created.ID == "" {
		t.Error("expected listing ID to be assigned")
	}
}

func TestCreate_RejectsZeroPrice(t *testing.T) {
	svc := newTestService(&mockListingRepository{}, &mockRefsRepository{}, testConfig(t))

	err := svc.Create(context.Background(), validListing(t, "0"))
	assertAppErrorCode(t, err, apperrors.CodeValidation)
}

func TestCreate_RejectsNegativePrice(t *testing.T) {
	svc := newTestService(&mockListingRepository{}, &mockRefsRepository{}, testConfig(t))

	err := svc.Create(context.Background(), validListing(t, "-10.50"))
	assertAppErrorCode(t, err, apperrors.CodeValidation)
}

func TestCreate_UnknownHost(t *testing.T) {
	refs := &mockRefsRepository{
		hostExistsFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}
	svc := newTestService(&mockListingRepository{}, refs, testConfig(t))

	err := svc.Create(context.Background(), validListing(t, "100.00"))
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestDelete_CascadesToDependents(t *testing.T) {
	cfg := testConfig(t)
	var dependentsDeleted bool
	repo := &mockListingRepository{
		deleteDependentsFunc: func(ctx context.Context, listingID string) error {
			dependentsDeleted = true
			if listingID != testListingID {
				t.Errorf("expected cascade for %s, got %s", testListingID, listingID)
			}
			return nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	if err := svc.Delete(context.Background(), testListingID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dependentsDeleted {
		t.Error("expected bookings and reviews to be deleted with the listing")
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockListingRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return listingserrors.ErrNotFound
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	err := svc.Delete(context.Background(), testListingID)
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestSearchByLocation_SanitizesInput(t *testing.T) {
	cfg := testConfig(t)
	var capturedSlug string
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, locationSlug string, limit int, offset int64) ([]*model.Listing, error) {
			capturedSlug = locationSlug
			return []*model.Listing{}, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	_, _, err := svc.SearchByLocation(context.Background(), "  Tel Aviv, Israel ", 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedSlug != "tel_aviv_israel" {
		t.Errorf("expected sanitized slug, got %q", capturedSlug)
	}
}

func TestUpdate_RejectsNonPositivePrice(t *testing.T) {
	existing := validListing(t, "100.00")
	existing.ID = testListingID
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return existing, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	bad, _ := model.ParsePrice("0")
	err := svc.Update(context.Background(), testListingID, &model.ListingUpdate{PricePerNight: &bad})
	assertAppErrorCode(t, err, apperrors.CodeValidation)
}
