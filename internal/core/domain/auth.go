package domain

import "time"

const SessionTTL = 24 * time.Hour

// Session is an issued bearer credential.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenClaims is what a verified bearer credential asserts.
type TokenClaims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}
