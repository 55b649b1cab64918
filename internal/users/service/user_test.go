package service

import (
	"context"
	"testing"

	userserrors "stayhub/internal/users/errors"
	"stayhub/internal/users/validator"
	"stayhub/pkg/config"
	mongotx "stayhub/pkg/db/mongo"
	apperrors "stayhub/pkg/errors"
	"stayhub/pkg/logger"
	"stayhub/pkg/model"
)

const testUserID = "3d6a4adc-4ac3-4f5d-85a7-ef19d5c9a333"

type mockUserRepository struct {
	createFunc           func(ctx context.Context, user *model.User) error
	findByIDFunc         func(ctx context.Context, id string) (*model.User, error)
	deleteFunc           func(ctx context.Context, id string) error
	deleteDependentsFunc func(ctx context.Context, userID string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, userserrors.ErrNotFound
}

func (m *mockUserRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.User, error) {
	return []*model.User{}, nil
}

func (m *mockUserRepository) Update(ctx context.Context, id string, user *model.User) error {
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) DeleteDependents(ctx context.Context, userID string) error {
	if m.deleteDependentsFunc != nil {
		return m.deleteDependentsFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockUserRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
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

func newTestService(repo *mockUserRepository, cfg *config.Config) *userService {
	return &userService{
		repo:      repo,
		validator: validator.NewUserValidator(cfg.Log),
		cfg:       cfg,
	}
}

func validUser() *model.User {
	return &model.User{
		Username:  "Traveler42",
		Email:     "Traveler42@Example.com",
		FirstName: "Dana",
		LastName:  "Levi",
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

func TestCreate_NormalizesUsernameAndEmail(t *testing.T) {
	var created *model.User
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			created = user
			return nil
		},
	}
	svc := newTestService(repo, testConfig(t))

	if err := svc.Create(context.Background(), validUser()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected user to be persisted")
	}
	if created.Username != "traveler42" {
		t.Errorf("expected lowercased username, got %q", created.Username)
	}
	if created.Email != "traveler42@example.com" {
		t.Errorf("expected lowercased email, got %q", created.Email)
	}
	if created.ID == "" {
		t.Error("expected user ID to be assigned")
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			return userserrors.ErrDuplicate
		},
	}
	svc := newTestService(repo, testConfig(t))

	err := svc.Create(context.Background(), validUser())
	assertAppErrorCode(t, err, apperrors.CodeUniqueConstraint)
}

func TestCreate_RejectsBadEmail(t *testing.T) {
	svc := newTestService(&mockUserRepository{}, testConfig(t))

	user := validUser()
	user.Email = "not-an-email"
	err := svc.Create(context.Background(), user)
	assertAppErrorCode(t, err, apperrors.CodeValidation)
}

func TestDelete_CascadesToDependents(t *testing.T) {
	var dependentsDeleted bool
	repo := &mockUserRepository{
		deleteDependentsFunc: func(ctx context.Context, userID string) error {
			dependentsDeleted = true
			return nil
		},
	}
	svc := newTestService(repo, testConfig(t))

	if err := svc.Delete(context.Background(), testUserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dependentsDeleted {
		t.Error("expected user's listings, bookings and reviews to be deleted")
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return userserrors.ErrNotFound
		},
	}
	svc := newTestService(repo, testConfig(t))

	err := svc.Delete(context.Background(), testUserID)
	assertAppErrorCode(t, err, apperrors.CodeNotFound)
}
