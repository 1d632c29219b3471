// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

// PublicView is the subset of a User safe to expose externally. The password
// hash never appears here on any code path.
type PublicView struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Birthdate      time.Time `json:"birthdate"`
	PhoneNumber    string    `json:"phoneNumber"`
	Role           string    `json:"role"`
	Permissions    []int     `json:"permissions"`
	IsVerified     bool      `json:"isVerified"`
}

func ToPublicView(u *User) PublicView {
	permissions := []int(u.Permissions)
	if permissions == nil {
		permissions = []int{}
	}

	return PublicView{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Name:           u.FullName(),
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Birthdate:      u.Birthdate,
		PhoneNumber:    u.PhoneNumber,
		Role:           u.Role,
		Permissions:    permissions,
		IsVerified:     u.IsVerified,
	}
}
