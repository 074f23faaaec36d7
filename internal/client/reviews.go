package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"parquea/internal/entities"
)

// The backend exposes reviews under three endpoint shapes that appeared in
// different API generations. All three are kept because deployments differ
// in which ones they serve; the reviews service tries them in order.

// ReviewsByParking fetches the backend's own aggregate for a lot.
func (c *Client) ReviewsByParking(ctx context.Context, parkingID int) (*entities.ReviewAggregate, error) {
	var agg entities.ReviewAggregate
	path := fmt.Sprintf("/api/parkings/%d/reviews", parkingID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// ReviewsByParkingAlt fetches the same aggregate from the older path.
func (c *Client) ReviewsByParkingAlt(ctx context.Context, parkingID int) (*entities.ReviewAggregate, error) {
	var agg entities.ReviewAggregate
	path := fmt.Sprintf("/api/reviews/parking/%d", parkingID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// QueryReviews fetches the bare review list via query parameter. This shape
// carries no statistics, so the caller recomputes them from the list.
func (c *Client) QueryReviews(ctx context.Context, parkingID int) ([]entities.Review, error) {
	query := url.Values{"parking_id": {strconv.Itoa(parkingID)}}
	var reviews []entities.Review
	if err := c.doJSON(ctx, http.MethodGet, "/api/reviews", query, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
