package auth

import "time"

// Account is an entry in the account directory. The auth core reads accounts
// but never mutates them; updates go through the directory itself.
type Account struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is a live refresh-token record. Its presence in the registry is the
// session state: a signed refresh token whose id has no matching Session is
// not honored regardless of signature and expiry.
type Session struct {
	TokenID    string
	OwnerEmail string
	ExpiresAt  time.Time
}

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}
