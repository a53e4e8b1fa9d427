// Package auth issues and verifies the two credential classes of the service:
// long-lived refresh tokens minted at sign-in and short-lived access tokens
// minted at refresh. The classes are signed with disjoint secrets, so a token
// of one class can never validate as the other.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cctv-platform/authd/internal/common"
)

// signingMethod identifies the HMAC scheme in every token header.
var signingMethod = jwt.SigningMethodHS512

// RefreshClaims is the payload of a refresh-class token. It carries only the
// username; the rest of the profile is re-read from the store on refresh.
type RefreshClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// AccessClaims is the payload of an access-class token.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	FullName string `json:"fullname"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// GenerateRefreshToken mints a refresh-class token for username, expiring
// after validityDuration.
func GenerateRefreshToken(username string, secret []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(signingMethod, &RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Username: username,
	})
	return token.SignedString(secret)
}

// GenerateAccessToken mints an access-class token carrying the user's
// identity fields, expiring after validityDuration.
func GenerateAccessToken(userID, fullName, username, role string, secret []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(signingMethod, &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:   userID,
		FullName: fullName,
		Username: username,
		Role:     role,
	})
	return token.SignedString(secret)
}

// ParseRefreshToken verifies tokenString against the refresh secret and
// returns its claims. Signature mismatch, malformed structure, and a missing
// username all come back as ErrInvalidToken; a stale token as ErrTokenExpired.
func ParseRefreshToken(tokenString string, secret []byte) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := parseInto(tokenString, claims, secret); err != nil {
		return nil, err
	}
	if claims.Username == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// ParseAccessToken verifies tokenString against the access secret and returns
// its claims, failing closed on any schema mismatch.
func ParseAccessToken(tokenString string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parseInto(tokenString, claims, secret); err != nil {
		return nil, err
	}
	if claims.UserID == "" || claims.Username == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

func parseInto(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}
	if !token.Valid {
		return common.ErrInvalidToken
	}

	// The parser already rejects stale tokens; re-check here so an expired
	// token can never slip through a parser configuration change.
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || exp.Before(time.Now()) {
		return common.ErrTokenExpired
	}

	return nil
}
