package domain

type Transaction struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
}

// EarningsSummary is the /dashboard/earnings response
type EarningsSummary struct {
	TotalEarnings   float64       `json:"total_earnings"`
	MonthlyEarnings float64       `json:"monthly_earnings"`
	PendingEarnings float64       `json:"pending_earnings"`
	ActiveRentals   int           `json:"active_rentals"`
	TotalItems      int           `json:"total_items"`
	Transactions    []Transaction `json:"transactions"`
}
