package flows

import (
	"stayhub/internal/gateway/core"
	"stayhub/pkg/model"
)

const (
	USER_ID    = "user_id"
	START_DATE = "start_date"
	END_DATE   = "end_date"
)

// CreateBooking forwards a booking request to the bookings service and
// returns the created booking, total price included. Validation,
// locking and overlap checks all happen service-side.
func CreateBooking(ctx *core.FlowContext) error {
	propertyID := ctx.ExtractString(PROPERTY_ID)
	if core.IsMissing(propertyID) {
		return core.MissingParamErr(PROPERTY_ID)
	}
	userID := ctx.ExtractString(USER_ID)
	if core.IsMissing(userID) {
		return core.MissingParamErr(USER_ID)
	}
	startStr := ctx.ExtractString(START_DATE)
	if core.IsMissing(startStr) {
		return core.MissingParamErr(START_DATE)
	}
	endStr := ctx.ExtractString(END_DATE)
	if core.IsMissing(endStr) {
		return core.MissingParamErr(END_DATE)
	}

	start, err := model.ParseDate(startStr)
	if err != nil {
		return err
	}
	end, err := model.ParseDate(endStr)
	if err != nil {
		return err
	}

	resp, err := ctx.Client.BookingClient.Create(&model.Booking{
		PropertyID: propertyID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return err
	}
	booking, err := ctx.Client.BookingClient.DecodeBooking(resp)
	if err != nil {
		return err
	}

	ctx.Output["booking"] = booking
	return nil
}
