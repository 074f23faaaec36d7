package entities

import "time"

type Review struct {
	ID        int       `json:"id"`
	ParkingID int       `json:"parking_id"`
	Author    string    `json:"author"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewAggregate is a review list plus its derived statistics for one
// parking lot. Synthesized marks placeholder data produced locally when
// every backend read failed.
type ReviewAggregate struct {
	ParkingID     int      `json:"parking_id"`
	Reviews       []Review `json:"reviews"`
	Count         int      `json:"count"`
	AverageRating float64  `json:"average_rating"`
	Synthesized   bool     `json:"synthesized,omitempty"`
}

// AggregateReviews recomputes count and average from the list instead of
// trusting a partial response.
func AggregateReviews(parkingID int, reviews []Review) *ReviewAggregate {
	agg := &ReviewAggregate{ParkingID: parkingID, Reviews: reviews, Count: len(reviews)}
	if len(reviews) == 0 {
		return agg
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	agg.AverageRating = sum / float64(len(reviews))
	return agg
}
