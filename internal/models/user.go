package models

import "time"

// User is the persisted user document.
type User struct {
	UserID       string    `bson:"user_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}
