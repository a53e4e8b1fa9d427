package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cctv-platform/authd/internal/common"
	"github.com/cctv-platform/authd/internal/cryptox"
	"github.com/cctv-platform/authd/internal/server/auth"
	"github.com/cctv-platform/authd/internal/server/config"
)

// storeTimeout bounds every account-store call so a stuck database cannot
// pin request goroutines.
const storeTimeout = 3 * time.Second

// Service orchestrates the three authentication operations: sign-up, sign-in,
// refresh. It holds no mutable state; every request runs independently.
type Service struct {
	repo                         Repository
	refreshSecret                []byte
	accessSecret                 []byte
	refreshTokenValidityDuration time.Duration
	accessTokenValidityDuration  time.Duration
	bcryptCost                   int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		refreshSecret:                []byte(cfg.RefreshSecret),
		accessSecret:                 []byte(cfg.AccessSecret),
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
	}
}

// SignUp creates an account with a bcrypt-hashed password and the default
// role. A duplicate username comes back as common.ErrorAlreadyExists.
func (s *Service) SignUp(ctx context.Context, fullName, birthday, email, username, password string) (*User, error) {
	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		FullName:     fullName,
		Birthday:     birthday,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         DefaultRole,
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// SignIn verifies the password for username and, on success, returns the user
// together with a freshly minted refresh token. An absent account and a wrong
// password both come back as common.ErrorNotFound so a caller cannot tell the
// two apart.
func (s *Service) SignIn(ctx context.Context, username, password string) (*User, string, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err := s.repo.GetByUsername(lookupCtx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", common.ErrorInternal
	}

	if !cryptox.CheckPassword(password, user.PasswordHash) {
		return nil, "", common.ErrorNotFound
	}

	token, err := auth.GenerateRefreshToken(user.Username, s.refreshSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Refresh exchanges a valid refresh token for an access token bound to the
// user's current profile. Expired, malformed, and wrongly signed tokens, and
// tokens naming an account that no longer exists, all come back as
// common.ErrorUnauthorized.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*User, string, error) {
	claims, err := auth.ParseRefreshToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, "", common.ErrorUnauthorized
	}

	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err := s.repo.GetByUsername(lookupCtx, claims.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	token, err := auth.GenerateAccessToken(user.ID, user.FullName, user.Username, user.Role, s.accessSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}
