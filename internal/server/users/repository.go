package users

import (
	"context"
)

// Repository is the account store consumed by the service. Create must
// reject duplicate usernames with common.ErrorAlreadyExists; GetByUsername
// reports an absent account as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
