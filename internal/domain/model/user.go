package model

import "time"

// User represents a registered catalog client.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
