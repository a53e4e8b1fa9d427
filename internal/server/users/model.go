package users

import "time"

// DefaultRole is assigned to every account created through sign-up.
const DefaultRole = "user"

// User is one registered account. PasswordHash always holds a bcrypt product,
// never the plaintext. Birthday is stored as the client supplied it.
type User struct {
	ID           string
	FullName     string
	Birthday     string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
