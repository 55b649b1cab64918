package validator

import (
	"testing"

	"stayhub/pkg/logger"
	"stayhub/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func validListing(t *testing.T) *model.Listing {
	t.Helper()
	price, err := model.ParsePrice("120.50")
	if err != nil {
		t.Fatal(err)
	}
	return &model.Listing{
		HostID:        "2c5f39cb-3fb2-4e4c-b4a6-ef19d5c9a222",
		Name:          "Sunny loft near the beach",
		Description:   "Two rooms, five minute walk to the water.",
		Location:      "Tel Aviv, Israel",
		PricePerNight: price,
	}
}

func TestValidate_ValidListing(t *testing.T) {
	v := NewListingValidator(testLogger())
	if err := v.Validate(validListing(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingHostID(t *testing.T) {
	v := NewListingValidator(testLogger())
	listing := validListing(t)
	listing.HostID = ""
	if err := v.Validate(listing); err == nil {
		t.Fatal("expected error for missing host_id")
	}
}

func TestValidate_NameTooShort(t *testing.T) {
	v := NewListingValidator(testLogger())
	listing := validListing(t)
	listing.Name = "x"
	if err := v.Validate(listing); err == nil {
		t.Fatal("expected error for one character name")
	}
}

func TestValidate_NonPositivePrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "zero", price: "0"},
		{name: "negative", price: "-10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewListingValidator(testLogger())
			listing := validListing(t)
			price, err := model.ParsePrice(tt.price)
			if err != nil {
				t.Fatal(err)
			}
			listing.PricePerNight = price
			if err := v.Validate(listing); err == nil {
				t.Fatalf("expected error for price %s", tt.price)
			}
		})
	}
}

func TestValidateUpdate_NonPositivePrice(t *testing.T) {
	v := NewListingValidator(testLogger())
	price, err := model.ParsePrice("0")
	if err != nil {
		t.Fatal(err)
	}
	update := &model.ListingUpdate{PricePerNight: &price}
	if err := v.ValidateUpdate(update); err == nil {
		t.Fatal("expected error for zero price update")
	}
}

func TestValidateUpdate_PartialFieldsAllowed(t *testing.T) {
	v := NewListingValidator(testLogger())
	update := &model.ListingUpdate{Name: "Renamed loft"}
	if err := v.ValidateUpdate(update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
