package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "stayhub/internal/bookings/errors"
	"stayhub/internal/bookings/validator"
	"stayhub/pkg/config"
	mongotx "stayhub/pkg/db/mongo"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/logger"
	"stayhub/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}
}

const (
	testPropertyID = "1b4e28ba-2fa1-4d3b-a3f5-ef19d5c9a111"
	testHostID     = "2c5f39cb-3fb2-4e4c-b4f6-ef19d5c9a222"
	testGuestID    = "3d6a4adc-4ac3-4f5d-85a7-ef19d5c9a333"
	testBookingID  = "4e7b5bed-5bd4-4a6e-96b8-ef19d5c9a444"
)

// Mock repositories for testing

type mockBookingRepository struct {
	createFunc          func(ctx context.Context, booking *model.Booking) error
	findByIDFunc        func(ctx context.Context, id string) (*model.Booking, error)
	findAllFunc         func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	updateFunc          func(ctx context.Context, id string, booking *model.Booking) error
	deleteFunc          func(ctx context.Context, id string) error
	findOverlappingFunc func(ctx context.Context, propertyID string, start, end model.Date, limit int) ([]*model.Booking, error)
	countFunc           func(ctx context.Context) (int64, error)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Update(ctx context.Context, id string, booking *model.Booking) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, booking)
	}
	return nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockBookingRepository) FindOverlapping(ctx context.Context, propertyID string, start, end model.Date, limit int) ([]*model.Booking, error) {
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, propertyID, start, end, limit)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByProperty(ctx context.Context, propertyID string, start, end *model.Date, limit int, offset int64) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) CountByProperty(ctx context.Context, propertyID string, start, end *model.Date) (int64, error) {
	return 0, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockLockRepository struct {
	createFunc func(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error)
	deleteFunc func(ctx context.Context, lockID string) error
}

func (m *mockLockRepository) Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, lock)
	}
	return lock, nil
}

func (m *mockLockRepository) Delete(ctx context.Context, lockID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, lockID)
	}
	return nil
}

type mockRefsRepository struct {
	findListingFunc func(ctx context.Context, id string) (*model.Listing, error)
	userExistsFunc  func(ctx context.Context, id string) (bool, error)
}

func (m *mockRefsRepository) FindListing(ctx context.Context, id string) (*model.Listing, error) {
	if m.findListingFunc != nil {
		return m.findListingFunc(ctx, id)
	}
	return testListing("100.00"), nil
}

func (m *mockRefsRepository) UserExists(ctx context.Context, id string) (bool, error) {
	if m.userExistsFunc != nil {
		return m.userExistsFunc(ctx, id)
	}
	return true, nil
}

// Helpers

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:     "info",
			Format:    logger.JSON,
			AddSource: false,
			Service:   "test",
		}),
		BookingLockTTL:  10 * time.Second,
		MaxOverlapFetch: 30,
	}
}

func testListing(pricePerNight string) *model.Listing {
	price, _ := model.ParsePrice(pricePerNight)
	return &model.Listing{
		ID:            testPropertyID,
		HostID:        testHostID,
		Name:          "Seaside flat",
		Description:   "Two rooms near the promenade",
		Location:      "Tel Aviv",
		PricePerNight: price,
	}
}

func newTestService(repo *mockBookingRepository, refs *mockRefsRepository, cfg *config.Config) *bookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  &mockLockRepository{},
		refs:      refs,
		validator: validator.NewBookingValidator(cfg.Log),
		cfg:       cfg,
	}
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func newBooking(t *testing.T, start, end string) *model.Booking {
	t.Helper()
	return &model.Booking{
		PropertyID: testPropertyID,
		UserID:     testGuestID,
		StartDate:  mustDate(t, start),
		EndDate:    mustDate(t, end),
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

// Tests

func TestCreate_ComputesExactTotalPrice(t *testing.T) {
	cfg := testConfig(t)
	var created *model.Booking
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			created = booking
			return nil
		},
	}
	refs := &mockRefsRepository{
		findListingFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return testListing("100.10"), nil
		},
	}
	svc := newTestService(repo, refs, cfg)

	booking := newBooking(t, "2026-09-10", "2026-09-13")
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected booking to be persisted")
	}
	want, _ := model.ParsePrice("300.30")
	if !created.TotalPrice.Equal(want) {
		t.Errorf("expected total price 300.30, got %s", created.TotalPrice)
	}
	if created.ID == "" {
		t.Error("expected booking ID to be assigned")
	}
}

func TestCreate_RejectsOverlappingBooking(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockBookingRepository{
		findOverlappingFunc: func(ctx context.Context, propertyID string, start, end model.Date, limit int) ([]*model.Booking, error) {
			return []*model.Booking{
				{
					ID:         testBookingID,
					PropertyID: propertyID,
					StartDate:  mustDate(t, "2026-09-10"),
					EndDate:    mustDate(t, "2026-09-12"),
				},
			}, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	err := svc.Create(context.Background(), newBooking(t, "2026-09-11", "2026-09-13"))
	assertAppErrorCode(t, err, apperrors.CodeConflictingBooking)
}

func TestCreate_AllowsBackToBackStay(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockBookingRepository{
		findOverlappingFunc: func(ctx context.Context, propertyID string, start, end model.Date, limit int) ([]*model.Booking, error) {
			// Even if the repository filter returns a neighbour, the
			// half-open check must not treat touching endpoints as a
			// conflict.
			return []*model.Booking{
				{
					ID:         testBookingID,
					PropertyID: propertyID,
					StartDate:  mustDate(t, "2026-09-10"),
					EndDate:    mustDate(t, "2026-09-12"),
				},
			}, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	if err := svc.Create(context.Background(), newBooking(t, "2026-09-12", "2026-09-14")); err != nil {
		t.Fatalf("back-to-back booking should be allowed, got: %v", err)
	}
}

func TestCreate_RejectsEqualDates(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRefsRepository{}, testConfig(t))

	err := svc.Create(context.Background(), newBooking(t, "2026-09-10", "2026-09-10"))
	assertAppErrorCode(t, err, apperrors.CodeInvalidRange)
}

func TestCreate_RejectsInvertedDates(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRefsRepository{}, testConfig(t))

	err := svc.Create(context.Background(), newBooking(t, "2026-09-13", "2026-09-10"))
	assertAppErrorCode(t, err, apperrors.CodeInvalidRange)
}

func TestCreate_RejectsSelfBooking(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRefsRepository{}, testConfig(t))

	booking := newBooking(t, "2026-09-10", "2026-09-12")
	booking.UserID = testHostID
	err := svc.Create(context.Background(), booking)
	assertAppErrorCode(t, err, apperrors.CodeSelfReferential)
}

func TestCreate_UnknownProperty(t *testing.T) {
	refs := &mockRefsRepository{
		findListingFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return nil, bookingserrors.ErrPropertyNotFound
		},
	}
	svc := newTestService(&mockBookingRepository{}, refs, testConfig(t))

	err := svc.Create(context.Background(), newBooking(t, "2026-09-10", "2026-09-12"))
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestCreate_UnknownUser(t *testing.T) {
	refs := &mockRefsRepository{
		userExistsFunc: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}
	svc := newTestService(&mockBookingRepository{}, refs, testConfig(t))

	err := svc.Create(context.Background(), newBooking(t, "2026-09-10", "2026-09-12"))
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestCreate_MapsDuplicateSlotToConflict(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return bookingserrors.ErrDuplicateSlot
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	err := svc.Create(context.Background(), newBooking(t, "2026-09-10", "2026-09-12"))
	assertAppErrorCode(t, err, apperrors.CodeConflictingBooking)
}

func TestCreate_LockContention(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(&mockBookingRepository{}, &mockRefsRepository{}, cfg)
	svc.lockRepo = &mockLockRepository{
		createFunc: func(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
			return nil, duplicateKeyError()
		},
	}

	err := svc.Create(context.Background(), newBooking(t, "2026-09-10", "2026-09-12"))
	assertAppErrorCode(t, err, apperrors.CodeConflict)
}

func TestUpdate_RecomputesTotalPrice(t *testing.T) {
	cfg := testConfig(t)
	existing := newBooking(t, "2026-09-10", "2026-09-12")
	existing.ID = testBookingID
	existing.TotalPrice, _ = model.ParsePrice("200.00")

	var updated *model.Booking
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, id string, booking *model.Booking) error {
			updated = booking
			return nil
		},
	}
	refs := &mockRefsRepository{
		findListingFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return testListing("100.00"), nil
		},
	}
	svc := newTestService(repo, refs, cfg)

	newEnd := mustDate(t, "2026-09-14")
	err := svc.Update(context.Background(), testBookingID, &model.BookingUpdate{EndDate: &newEnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated == nil {
		t.Fatal("expected booking to be updated")
	}
	want, _ := model.ParsePrice("400.00")
	if !updated.TotalPrice.Equal(want) {
		t.Errorf("expected recomputed total 400.00, got %s", updated.TotalPrice)
	}
}

func TestUpdate_SkipsOwnBookingInOverlapCheck(t *testing.T) {
	cfg := testConfig(t)
	existing := newBooking(t, "2026-09-10", "2026-09-12")
	existing.ID = testBookingID

	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return existing, nil
		},
		findOverlappingFunc: func(ctx context.Context, propertyID string, start, end model.Date, limit int) ([]*model.Booking, error) {
			return []*model.Booking{existing}, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	newEnd := mustDate(t, "2026-09-13")
	err := svc.Update(context.Background(), testBookingID, &model.BookingUpdate{EndDate: &newEnd})
	if err != nil {
		t.Fatalf("extending a booking should not conflict with itself, got: %v", err)
	}
}

func TestUpdate_EmptyPayloadRejected(t *testing.T) {
	existing := newBooking(t, "2026-09-10", "2026-09-12")
	existing.ID = testBookingID
	repo := &mockBookingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return existing, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, testConfig(t))

	err := svc.Update(context.Background(), testBookingID, &model.BookingUpdate{})
	assertAppErrorCode(t, err, apperrors.CodeValidation)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&mockBookingRepository{}, &mockRefsRepository{}, testConfig(t))

	err := svc.Delete(context.Background(), testBookingID)
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}

func TestGetAll_Pagination(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockBookingRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
			return []*model.Booking{newBooking(t, "2026-09-10", "2026-09-12")}, nil
		},
	}
	svc := newTestService(repo, &mockRefsRepository{}, cfg)

	bookings, count, err := svc.GetAll(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Errorf("expected count 42, got %d", count)
	}
	if len(bookings) != 1 {
		t.Errorf("expected 1 booking, got %d", len(bookings))
	}
}
