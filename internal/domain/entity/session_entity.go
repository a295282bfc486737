package entity

import "time"

// Session is a bookkeeping record of an issued sign-in token.
// It is never consulted to authorize requests; sign-out deletes all
// active rows for a user in one sweep.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	Active    bool
	CreatedAt time.Time
}
