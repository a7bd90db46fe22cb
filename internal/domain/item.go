package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair:
		return true
	}
	return false
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

type Location struct {
	Name      string  `json:"location_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Item struct {
	ID             int64      `json:"id"`
	OwnerID        int64      `json:"owner_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DailyRate      float64    `json:"daily_rate"`
	WeeklyRate     *float64   `json:"weekly_rate,omitempty"`
	Deposit        float64    `json:"deposit"`
	Condition      Condition  `json:"condition"`
	Available      bool       `json:"available"`
	InsuranceValue float64    `json:"insurance_value"`
	Images         []string   `json:"images"`
	Categories     []Category `json:"categories"`
	Owner          *User      `json:"owner,omitempty"`
	Distance       *float64   `json:"distance,omitempty"` // Only set when searching by location
	CreatedAt      Timestamp  `json:"created_at"`
	Location
}

// OwnedBy reports whether userID listed this item
func (i *Item) OwnedBy(userID int64) bool {
	if i.OwnerID != 0 {
		return i.OwnerID == userID
	}
	return i.Owner != nil && i.Owner.ID == userID
}

// ItemFilter holds marketplace search parameters; zero values are omitted
type ItemFilter struct {
	Search     string
	CategoryID int64
	MinPrice   float64
	MaxPrice   float64
	// Near enables the geo filter; Latitude and Longitude are sent only then
	Near        bool
	Latitude    float64
	Longitude   float64
	MaxDistance float64
}

type NewItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DailyRate   float64   `json:"daily_rate"`
	WeeklyRate  *float64  `json:"weekly_rate"`
	Deposit     float64   `json:"deposit"`
	CategoryIDs []int64   `json:"category_ids"`
	Condition   Condition `json:"condition"`
	Images      []string  `json:"images,omitempty"`
	Location
}

var ErrValidation = errors.New("validation failed")

// ValidationError names the form field that blocked a submission
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (n *NewItem) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return invalid("title", "is required")
	}
	if strings.TrimSpace(n.Description) == "" {
		return invalid("description", "is required")
	}
	if n.DailyRate <= 0 {
		return invalid("daily_rate", "must be positive")
	}
	if n.WeeklyRate != nil && *n.WeeklyRate <= 0 {
		return invalid("weekly_rate", "must be positive when set")
	}
	if n.Deposit < 0 {
		return invalid("deposit", "must not be negative")
	}
	if len(n.CategoryIDs) == 0 {
		return invalid("category_ids", "needs at least one category")
	}
	if !n.Condition.Valid() {
		return invalid("condition", "must be Excellent, Good or Fair")
	}
	if strings.TrimSpace(n.Location.Name) == "" {
		return invalid("location_name", "is required")
	}
	return nil
}
