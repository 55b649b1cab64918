package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"stayhub/pkg/model"
)

type ReviewClient struct {
	httpClient *HttpClient
}

func NewReviewClient(baseURL string) *ReviewClient {
	return &ReviewClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ReviewClient) Create(body any) (*Response, error) {
	return c.httpClient.POST("/api/v1/reviews", body)
}

func (c *ReviewClient) GetAll(limit int, offset int64) (*Response, error) {
	path := fmt.Sprintf("/api/v1/reviews?limit=%d&offset=%d", limit, offset)
	return c.httpClient.GET(path)
}

func (c *ReviewClient) GetByID(id string) (*Response, error) {
	path := "/api/v1/reviews/id/" + url.PathEscape(id)
	return c.httpClient.GET(path)
}

func (c *ReviewClient) ListByProperty(propertyID string, limit int, offset int64) (*Response, error) {
	q := url.Values{}
	q.Set("property_id", propertyID)
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("offset", fmt.Sprintf("%d", offset))
	return c.httpClient.GET("/api/v1/reviews/search?" + q.Encode())
}

func (c *ReviewClient) Update(id string, body any) (*Response, error) {
	path := "/api/v1/reviews/id/" + url.PathEscape(id)
	return c.httpClient.PATCH(path, body)
}

func (c *ReviewClient) Delete(id string) (*Response, error) {
	path := "/api/v1/reviews/id/" + url.PathEscape(id)
	return c.httpClient.DELETE(path)
}

func (c *ReviewClient) DecodeReview(resp *Response) (*model.Review, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode review wrapper: %s: %w", resp.ToString(), err)
	}

	var review model.Review
	if err := json.Unmarshal(wrapper.Data, &review); err != nil {
		return nil, fmt.Errorf("could not decode review: %w", err)
	}
	return &review, nil
}

func (c *ReviewClient) DecodeReviews(resp *Response) ([]*model.Review, int64, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int64           `json:"total_count"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, 0, fmt.Errorf("could not decode reviews wrapper: %s: %w", resp.ToString(), err)
	}

	var reviews []*model.Review
	if err := json.Unmarshal(wrapper.Data, &reviews); err != nil {
		return nil, 0, fmt.Errorf("could not decode reviews: %w", err)
	}
	return reviews, wrapper.TotalCount, nil
}
