// Package models defines the domain entities of the Maré Viva client and the
// result values its services return to the presentation layer.
package models

// User is a registered account. The email is stored lowercased and is unique
// case-insensitively across all users. Only the bcrypt hash of the password
// is persisted; it never leaves the storage layer through JSON.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// RecoveryCode is a short-lived numeric secret proving control of an email
// address. One code per email; a new request overwrites the previous one.
// ExpiresAt is epoch milliseconds; the code is valid while now <= ExpiresAt.
type RecoveryCode struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expiresAt"`
}
