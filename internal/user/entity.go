// AngelaMos | 2026
// entity.go

package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Permissions is an ordered list of authorization flags. Insertion order is
// significant, so it is persisted as a jsonb array rather than a set.
type Permissions []int

func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		p = Permissions{}
	}
	return json.Marshal(p)
}

func (p *Permissions) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Permissions{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("scan permissions: unsupported type %T", src)
	}
}

type User struct {
	ID             string      `db:"id"`
	Email          string      `db:"email"`
	PasswordHash   string      `db:"password_hash"`
	FirstName      string      `db:"first_name"`
	LastName       string      `db:"last_name"`
	ProfilePicture string      `db:"profile_picture"`
	Birthdate      time.Time   `db:"birthdate"`
	PhoneNumber    string      `db:"phone_number"`
	Role           string      `db:"role"`
	Permissions    Permissions `db:"permissions"`
	IsVerified     bool        `db:"is_verified"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

const RolePlayer = "player"
