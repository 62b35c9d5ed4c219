package models

import "time"

// Session is an opaque server-side session issued at login. The session ID
// doubles as the bearer token presented by clients.
type Session struct {
	SessionID string    `bson:"session_id"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}
