// Package reviews is the best-effort read path for parking-lot reviews.
// It layers the fetch cascade over the three review endpoint shapes and
// synthesizes placeholder reviews when every backend read fails, so the
// screen always has something to render.
package reviews

import (
	"context"

	"parquea/internal/entities"
	"parquea/internal/fetch"
)

// ReviewAPI is the slice of the backend client this service needs.
type ReviewAPI interface {
	ReviewsByParking(ctx context.Context, parkingID int) (*entities.ReviewAggregate, error)
	ReviewsByParkingAlt(ctx context.Context, parkingID int) (*entities.ReviewAggregate, error)
	QueryReviews(ctx context.Context, parkingID int) ([]entities.Review, error)
}

type Service struct {
	api ReviewAPI
}

func NewService(api ReviewAPI) *Service {
	return &Service{api: api}
}

// ForParking returns the review aggregate for a lot. The strategy order is
// fixed: the per-lot path is authoritative, the older alternate path comes
// second, the query-parameter shape third with the average recomputed
// locally, and synthesized examples close the cascade. It never fails.
func (s *Service) ForParking(ctx context.Context, parkingID int) *entities.ReviewAggregate {
	cascade := fetch.Cascade[entities.ReviewAggregate]{
		Strategies: []fetch.Strategy[entities.ReviewAggregate]{
			{
				Name: "reviews-by-parking",
				Fetch: func(ctx context.Context) (*entities.ReviewAggregate, error) {
					return nonEmpty(s.api.ReviewsByParking(ctx, parkingID))
				},
			},
			{
				Name: "reviews-by-parking-alt",
				Fetch: func(ctx context.Context) (*entities.ReviewAggregate, error) {
					return nonEmpty(s.api.ReviewsByParkingAlt(ctx, parkingID))
				},
			},
			{
				Name: "reviews-query",
				Fetch: func(ctx context.Context) (*entities.ReviewAggregate, error) {
					list, err := s.api.QueryReviews(ctx, parkingID)
					if err != nil {
						return nil, err
					}
					return nonEmpty(entities.AggregateReviews(parkingID, list), nil)
				},
			},
		},
		Fallback: func() *entities.ReviewAggregate {
			return synthesized(parkingID)
		},
	}
	return cascade.FirstSuccessful(ctx)
}

// nonEmpty turns an aggregate with no reviews into a miss so the cascade
// moves on.
func nonEmpty(agg *entities.ReviewAggregate, err error) (*entities.ReviewAggregate, error) {
	if err != nil {
		return nil, err
	}
	if agg == nil || len(agg.Reviews) == 0 {
		return nil, nil
	}
	return agg, nil
}

// synthesized builds the placeholder aggregate served when the backend has
// nothing. It is tagged so callers can disclose provisional data.
func synthesized(parkingID int) *entities.ReviewAggregate {
	samples := []struct {
		author  string
		rating  float64
		comment string
	}{
		{"Marco", 4.5, "Easy to find a spot, well lit at night."},
		{"Lucía", 4.0, "Entrance is a bit tight but the price is fair."},
		{"Giulia", 5.0, "Booked from the app and the gate opened right away."},
		{"Andrés", 3.5, "Good location, could use clearer signage."},
	}

	reviews := make([]entities.Review, 0, len(samples))
	for i, sample := range samples {
		reviews = append(reviews, entities.Review{
			ID:        -(i + 1), // negative ids cannot collide with backend ones
			ParkingID: parkingID,
			Author:    sample.author,
			Rating:    sample.rating,
			Comment:   sample.comment,
		})
	}

	agg := entities.AggregateReviews(parkingID, reviews)
	agg.Synthesized = true
	return agg
}
