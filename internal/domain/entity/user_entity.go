package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID        int64
	Email     string
	Username  string
	Name      string
	Password  string
	CreatedAt time.Time
}

// PublicUser is the projection of a user that is safe to return to clients.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the password hash from a user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
