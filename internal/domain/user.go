package domain

import "strings"

type User struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email,omitempty"`
	FullName     string  `json:"full_name"`
	Phone        *string `json:"phone,omitempty"`
	Verified     bool    `json:"verified"`
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`
	Bio          *string `json:"bio,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
}

// AuthResult is the login/register response body
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Validate mirrors the campus-only sign-up rule so an obviously ineligible
// address never reaches the backend.
func (r *Registration) Validate() error {
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		return invalid("email", "is required")
	}
	if !strings.HasSuffix(email, ".edu") {
		return invalid("email", "must be a .edu address")
	}
	if r.Password == "" {
		return invalid("password", "is required")
	}
	if strings.TrimSpace(r.FullName) == "" {
		return invalid("full_name", "is required")
	}
	return nil
}
