package models

// UserProfile holds the editable profile fields for a user, kept separately
// from the User identity record. It is created lazily on first access,
// mirroring the user's name/email at that moment; later edits to either side
// are not propagated to the other.
type UserProfile struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
