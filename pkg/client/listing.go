package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"stayhub/pkg/model"
)

type ListingClient struct {
	httpClient *HttpClient
}

func NewListingClient(baseURL string) *ListingClient {
	return &ListingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ListingClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/listings", body)
}

func (c *ListingClient) GetAll(limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/listings?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *ListingClient) GetByID(id string) (*Response, error) {
	path := "/api/v1/listings/id/" + url.PathEscape(id)
	return c.httpClient.GET(path)
}

func (c *ListingClient) Search(location string, limit int, offset int64) (*Response, error) {
	q := url.Values{}
	q.Set("location", location)
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("offset", fmt.Sprintf("%d", offset))
	return c.httpClient.GET("/api/v1/listings/search?" + q.Encode())
}

func (c *ListingClient) Update(id string, body any) (*Response, error) {
	path := "/api/v1/listings/id/" + url.PathEscape(id)
	return c.httpClient.PATCH(path, body)
}

func (c *ListingClient) Delete(id string) (*Response, error) {
	path := "/api/v1/listings/id/" + url.PathEscape(id)
	return c.httpClient.DELETE(path)
}

func (c *ListingClient) DecodeListing(resp *Response) (*model.Listing, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode listing wrapper: %s: %w", resp.ToString(), err)
	}

	var listing model.Listing
	if err := json.Unmarshal(wrapper.Data, &listing); err != nil {
		return nil, fmt.Errorf("could not decode listing: %w", err)
	}
	return &listing, nil
}

func (c *ListingClient) DecodeListings(resp *Response) ([]*model.Listing, int64, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, 0, fmt.Errorf("could not decode listings wrapper: %s: %w", resp.ToString(), err)
	}

	var listings []*model.Listing
	if err := json.Unmarshal(wrapper.Data, &listings); err != nil {
		return nil, 0, fmt.Errorf("could not decode listings: %w", err)
	}
	return listings, wrapper.TotalCount, nil
}
