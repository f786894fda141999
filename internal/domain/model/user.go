package model

import "time"

// User represents a registered account owning kick records.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
}
