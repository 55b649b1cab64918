package flows

import (
	"stayhub/internal/gateway/core"
)

const (
	LOCATION = "location"
	LIMIT    = "limit"
	OFFSET   = "offset"

	DefaultFlowPageSize = 20
)

// SearchListings finds listings by location and decorates each with
// its review count.
func SearchListings(ctx *core.FlowContext) error {
	location := ctx.ExtractString(LOCATION)
	if core.IsMissing(location) {
		return core.MissingParamErr(LOCATION)
	}
	limit := ctx.ExtractInt(LIMIT, DefaultFlowPageSize)
	offset := int64(ctx.ExtractInt(OFFSET, 0))

	resp, err := ctx.Client.ListingClient.Search(location, limit, offset)
	if err != nil {
		return err
	}
	listings, total, err := ctx.Client.ListingClient.DecodeListings(resp)
	if err != nil {
		return err
	}

	reviewCounts := make(map[string]int64, len(listings))
	for _, listing := range listings {
		resp, err := ctx.Client.ReviewClient.ListByProperty(listing.ID, 1, 0)
		if err != nil {
			return err
		}
		_, count, err := ctx.Client.ReviewClient.DecodeReviews(resp)
		if err != nil {
			return err
		}
		reviewCounts[listing.ID] = count
	}

	ctx.Output["listings"] = listings
	ctx.Output["total_count"] = total
	ctx.Output["review_counts"] = reviewCounts
	return nil
}
