package model

// User rows are read-only at runtime; there is no signup flow. Password
// holds a bcrypt hash, never the plaintext.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
