package domain

const (
	MinRating = 1
	MaxRating = 5
)

type NewReview struct {
	RentalID   int64   `json:"rental_id"`
	RevieweeID int64   `json:"reviewee_id"`
	Rating     int     `json:"rating"`
	Comment    *string `json:"comment,omitempty"`
}

func (n *NewReview) Validate() error {
	if n.RentalID <= 0 {
		return invalid("rental_id", "is required")
	}
	if n.RevieweeID <= 0 {
		return invalid("reviewee_id", "is required")
	}
	if n.Rating < MinRating || n.Rating > MaxRating {
		return invalid("rating", "must be between 1 and 5")
	}
	return nil
}
