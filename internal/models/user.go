package models

// User is an operator account allowed to drive the API.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt, never serialized
}
