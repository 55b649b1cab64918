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

func validBooking(t *testing.T) *model.Booking {
	t.Helper()
	start, err := model.ParseDate("2026-09-10")
	if err != nil {
		t.Fatal(err)
	}
	end, err := model.ParseDate("2026-09-12")
	if err != nil {
		t.Fatal(err)
	}
	return &model.Booking{
		PropertyID: "1b4e28ba-2fa1-4d3b-a3f5-ef19d5c9a111",
		UserID:     "3d6a4adc-4ac3-4f5d-85a7-ef19d5c9a333",
		StartDate:  start,
		EndDate:    end,
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := NewBookingValidator(testLogger())
	if err := v.Validate(validBooking(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingPropertyID(t *testing.T) {
	v := NewBookingValidator(testLogger())
	booking := validBooking(t)
	booking.PropertyID = ""
	if err := v.Validate(booking); err == nil {
		t.Fatal("expected error for missing property_id")
	}
}

func TestValidate_MalformedUserID(t *testing.T) {
	v := NewBookingValidator(testLogger())
	booking := validBooking(t)
	booking.UserID = "not-a-uuid"
	if err := v.Validate(booking); err == nil {
		t.Fatal("expected error for malformed user_id")
	}
}

func TestValidate_MissingDates(t *testing.T) {
	v := NewBookingValidator(testLogger())
	booking := validBooking(t)
	booking.StartDate = model.Date{}
	if err := v.Validate(booking); err == nil {
		t.Fatal("expected error for missing start_date")
	}

	booking = validBooking(t)
	booking.EndDate = model.Date{}
	if err := v.Validate(booking); err == nil {
		t.Fatal("expected error for missing end_date")
	}
}

func TestValidateUpdate_RequiresAField(t *testing.T) {
	v := NewBookingValidator(testLogger())
	if err := v.ValidateUpdate(&model.BookingUpdate{}); err == nil {
		t.Fatal("expected error for empty update")
	}

	start, _ := model.ParseDate("2026-09-10")
	if err := v.ValidateUpdate(&model.BookingUpdate{StartDate: &start}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
