package domain

import "strings"

type Message struct {
	ID         int64     `json:"id"`
	RentalID   int64     `json:"rental_id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	Sender     *User     `json:"sender,omitempty"`
	CreatedAt  Timestamp `json:"created_at"`
}

type NewMessage struct {
	RentalID int64  `json:"rental_id"`
	Content  string `json:"content"`
}

func (n *NewMessage) Validate() error {
	if n.RentalID <= 0 {
		return invalid("rental_id", "is required")
	}
	if strings.TrimSpace(n.Content) == "" {
		return invalid("content", "must not be blank")
	}
	return nil
}
