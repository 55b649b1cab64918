package flows

import (
	"sync"
	"time"

	"stayhub/internal/gateway/core"
	"stayhub/pkg/model"
)

const (
	PROPERTY_ID = "property_id"

	MaxReviewsPerOverview  = 20
	MaxBookingsPerOverview = 30
)

// PropertyOverview combines a listing with its reviews and upcoming
// bookings in one response. Reviews and bookings are fetched in
// parallel once the listing resolves.
func PropertyOverview(ctx *core.FlowContext) error {
	propertyID := ctx.ExtractString(PROPERTY_ID)
	if core.IsMissing(propertyID) {
		return core.MissingParamErr(PROPERTY_ID)
	}

	resp, err := ctx.Client.ListingClient.GetByID(propertyID)
	if err != nil {
		return err
	}
	listing, err := ctx.Client.ListingClient.DecodeListing(resp)
	if err != nil {
		return err
	}

	var (
		reviews     []*model.Review
		reviewTotal int64
		bookings    []*model.Booking
		errReviews  error
		errBookings error
		wg          sync.WaitGroup
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		core.RunWithRateLimitedConcurrency(func() {
			resp, err := ctx.Client.ReviewClient.ListByProperty(propertyID, MaxReviewsPerOverview, 0)
			if err != nil {
				errReviews = err
				return
			}
			reviews, reviewTotal, errReviews = ctx.Client.ReviewClient.DecodeReviews(resp)
		})
	}()

	go func() {
		defer wg.Done()
		core.RunWithRateLimitedConcurrency(func() {
			today := model.DateOf(time.Now()).String()
			resp, err := ctx.Client.BookingClient.Search(propertyID, today, "", MaxBookingsPerOverview, 0)
			if err != nil {
				errBookings = err
				return
			}
			bookings, _, errBookings = ctx.Client.BookingClient.DecodeBookings(resp)
		})
	}()

	wg.Wait()
	if errReviews != nil {
		return errReviews
	}
	if errBookings != nil {
		return errBookings
	}

	ctx.Output["listing"] = listing
	ctx.Output["reviews"] = reviews
	ctx.Output["review_count"] = reviewTotal
	ctx.Output["upcoming_bookings"] = bookings
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		ctx.Output["average_rating"] = float64(sum) / float64(len(reviews))
	}
	return nil
}
