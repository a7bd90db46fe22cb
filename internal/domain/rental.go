package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusApproved  RentalStatus = "approved"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// RentalStatuses lists the known statuses in lifecycle order
var RentalStatuses = []RentalStatus{
	RentalStatusPending,
	RentalStatusApproved,
	RentalStatusActive,
	RentalStatusCompleted,
	RentalStatusCancelled,
}

func (s RentalStatus) Known() bool {
	for _, k := range RentalStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// ItemRef is the trimmed item embedded in rental listings
type ItemRef struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

type Rental struct {
	ID            int64        `json:"id"`
	ItemID        int64        `json:"item_id,omitempty"`
	Item          *ItemRef     `json:"item,omitempty"`
	RenterID      int64        `json:"renter_id,omitempty"`
	Renter        *User        `json:"renter,omitempty"`
	OwnerID       int64        `json:"owner_id,omitempty"`
	Owner         *User        `json:"owner,omitempty"`
	StartDate     Timestamp    `json:"start_date"`
	EndDate       Timestamp    `json:"end_date"`
	TotalCost     float64      `json:"total_cost"`
	DepositAmount float64      `json:"deposit_amount"`
	PlatformFee   float64      `json:"platform_fee"`
	OwnerEarnings float64      `json:"owner_earnings"`
	Status        RentalStatus `json:"status"`
	PickupQR      *string      `json:"pickup_qr,omitempty"`
	ReturnQR      *string      `json:"return_qr,omitempty"`
	CreatedAt     Timestamp    `json:"created_at"`
}

// Transition availability; the backend performs and validates the change.

func (r *Rental) CanApprove() bool {
	return r.Status == RentalStatusPending
}

func (r *Rental) CanVerifyPickup() bool {
	return r.Status == RentalStatusApproved
}

func (r *Rental) CanVerifyReturn() bool {
	return r.Status == RentalStatusActive
}

func (r *Rental) ItemTitle() string {
	if r.Item != nil {
		return r.Item.Title
	}
	return ""
}

// MyRentals is the /rentals/my-rentals response
type MyRentals struct {
	AsRenter []Rental `json:"as_renter"`
	AsOwner  []Rental `json:"as_owner"`
}

type NewRental struct {
	ItemID    int64     `json:"item_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Message   string    `json:"message,omitempty"`
}

// Created is the acknowledgement body of create endpoints
type Created struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
