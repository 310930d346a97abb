package domain

import "time"

// Role is the authorization level stored on an account.
type Role string

const (
	RoleUser      Role = "User"
	RoleModerator Role = "Moderator"
	RoleAdmin     Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Account models a marketplace user keyed by email.
type Account struct {
	ID           string    `json:"_id" bson:"_id,omitempty"`
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Photo        string    `json:"photo,omitempty" bson:"photo,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	Subscribed   bool      `json:"subscribed" bson:"subscribed"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
