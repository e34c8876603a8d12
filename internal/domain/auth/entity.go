package auth

import "time"

// User is a console user as known to the gym API.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session identifies the signed-in console user and carries the bearer token
// used to call the gym API on their behalf. Services receive it explicitly.
type Session struct {
	UserID   string
	Name     string
	Email    string
	APIToken string
	// APITokenExpiresAt is zero when the gym API did not disclose an expiry.
	APITokenExpiresAt time.Time
	// TokenID is the jti of the console access token.
	TokenID   string
	ExpiresAt time.Time
}

func (s Session) User() User {
	return User{ID: s.UserID, Name: s.Name, Email: s.Email}
}

// Expired reports whether the upstream bearer token is known to be expired at now.
func (s Session) Expired(now time.Time) bool {
	return !s.APITokenExpiresAt.IsZero() && !now.Before(s.APITokenExpiresAt)
}

// Credentials are what the gym API returns on a successful login.
type Credentials struct {
	User              User
	APIToken          string
	APITokenExpiresAt time.Time
}
