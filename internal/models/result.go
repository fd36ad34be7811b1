package models

// Result is the outcome of a mutating service operation. Message is a
// human-readable text meant to be shown to the end user on both success and
// failure paths, not a status code. Services return failed Results instead of
// errors; storage failures surface as a generic failure message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResult carries the authenticated user on success.
type LoginResult struct {
	Result
	User *User `json:"user,omitempty"`
}

// RecoveryResult carries the generated recovery code inline. Returning the
// code to the caller stands in for out-of-band email delivery.
type RecoveryResult struct {
	Result
	Code string `json:"code,omitempty"`
}

// ProductResult carries the created or updated listing on success.
type ProductResult struct {
	Result
	Product *Product `json:"product,omitempty"`
}

// MessageResult carries the stored message on success.
type MessageResult struct {
	Result
	Data *Message `json:"messageData,omitempty"`
}

// Failure builds a failed Result with the given user-facing message.
func Failure(message string) Result {
	return Result{Success: false, Message: message}
}

// OK builds a successful Result with the given user-facing message.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}
