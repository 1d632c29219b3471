// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/courtside/auth-api/internal/user"
)

type RegisterRequest struct {
	FirstName      string `json:"firstName"                validate:"required,min=2,max=100"`
	LastName       string `json:"lastName"                 validate:"required,min=2,max=100"`
	Email          string `json:"email"                    validate:"required,email,max=255"`
	ProfilePicture string `json:"profilePicture,omitempty" validate:"omitempty,max=512"`
	Birthdate      string `json:"birthdate"                validate:"required,isodate"`
	PhoneNumber    string `json:"phoneNumber"              validate:"required,phone"`
	Password       string `json:"password"                 validate:"required,min=8,max=128,has_upper,has_lower,has_digit"`
	Platform       string `json:"platform,omitempty"       validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email"              validate:"required,email,max=255"`
	Password string `json:"password"           validate:"required"`
	Platform string `json:"platform,omitempty" validate:"omitempty,max=50"`
}

type LogoutRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// Session pairs the public user view with its freshly signed access token.
// It only ever lives in the response body; nothing about it is stored
// server-side.
type Session struct {
	User        user.PublicView `json:"user"`
	AccessToken string          `json:"accessToken"`
}
