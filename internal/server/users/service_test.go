package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cctv-platform/authd/internal/common"
	"github.com/cctv-platform/authd/internal/cryptox"
	"github.com/cctv-platform/authd/internal/server/auth"
	"github.com/cctv-platform/authd/internal/server/config"
)

// --- helpers ---

type fakeRepo struct {
	createOut *User
	createErr error

	getOut *User
	getErr error

	lastGetUsername string
}

func (f *fakeRepo) Create(ctx context.Context, u *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "generated-id"
	return u, nil
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	f.lastGetUsername = username
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func newService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cfg := &config.Config{
		RefreshSecret:                "rk",
		AccessSecret:                 "ak",
		RefreshTokenValidityDuration: time.Hour,
		AccessTokenValidityDuration:  time.Hour,
		BcryptCost:                   4, // minimum cost keeps the tests fast
	}
	return NewService(repo, cfg)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := cryptox.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return h
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// --- SignUp ---

func TestSignUp_Success(t *testing.T) {
	repo := &fakeRepo{}
	s := newService(t, repo)

	user, err := s.SignUp(context.Background(), "Alice A.", "2000-01-01", "a@example.com", "alice", "pw1")
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected assigned user ID")
	}
	if user.Role != DefaultRole {
		t.Fatalf("expected role %q, got %q", DefaultRole, user.Role)
	}
	if user.PasswordHash == "pw1" || user.PasswordHash == "" {
		t.Fatalf("password must be stored as a hash, got %q", user.PasswordHash)
	}
	if !cryptox.CheckPassword("pw1", user.PasswordHash) {
		t.Fatal("stored hash must verify against the original password")
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	repo := &fakeRepo{createErr: common.ErrorAlreadyExists}
	s := newService(t, repo)

	_, err := s.SignUp(context.Background(), "Alice A.", "", "", "alice", "pw1")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestSignUp_RepoError(t *testing.T) {
	repo := &fakeRepo{createErr: errBoom{}}
	s := newService(t, repo)

	_, err := s.SignUp(context.Background(), "Alice A.", "", "", "alice", "pw1")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("unexpected ErrorAlreadyExists for generic repo failure: %v", err)
	}
}

// --- SignIn ---

func TestSignIn_Success(t *testing.T) {
	repo := &fakeRepo{getOut: &User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: mustHash(t, "pw1"),
		Role:         DefaultRole,
	}}
	s := newService(t, repo)

	user, token, err := s.SignIn(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if user.ID != "u1" || token == "" {
		t.Fatalf("unexpected result: user=%+v token=%q", user, token)
	}

	claims, err := auth.ParseRefreshToken(token, []byte("rk"))
	if err != nil {
		t.Fatalf("issued token must verify against the refresh secret: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("token username mismatch: %q", claims.Username)
	}
}

// An unknown username and a wrong password must be indistinguishable.
func TestSignIn_UnknownUserAndWrongPasswordCollapse(t *testing.T) {
	unknown := &fakeRepo{getErr: common.ErrorNotFound}
	s := newService(t, unknown)
	_, _, errUnknown := s.SignIn(context.Background(), "ghost", "pw1")

	known := &fakeRepo{getOut: &User{Username: "alice", PasswordHash: mustHash(t, "pw1")}}
	s = newService(t, known)
	_, _, errWrongPw := s.SignIn(context.Background(), "alice", "wrong")

	if !errors.Is(errUnknown, common.ErrorNotFound) {
		t.Fatalf("unknown user: want ErrorNotFound, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, common.ErrorNotFound) {
		t.Fatalf("wrong password: want ErrorNotFound, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure modes must be identical: %v vs %v", errUnknown, errWrongPw)
	}
}

func TestSignIn_RepoError(t *testing.T) {
	repo := &fakeRepo{getErr: errBoom{}}
	s := newService(t, repo)

	_, _, err := s.SignIn(context.Background(), "alice", "pw1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}

// --- Refresh ---

func TestRefresh_Success(t *testing.T) {
	repo := &fakeRepo{getOut: &User{
		ID:       "u1",
		FullName: "Alice A.",
		Username: "alice",
		Role:     DefaultRole,
	}}
	s := newService(t, repo)

	refreshToken, err := auth.GenerateRefreshToken("alice", []byte("rk"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	user, accessToken, err := s.Refresh(context.Background(), refreshToken)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if repo.lastGetUsername != "alice" {
		t.Fatalf("lookup must use the username from the token claims, got %q", repo.lastGetUsername)
	}
	if accessToken == refreshToken {
		t.Fatal("access token must differ from the refresh token")
	}

	claims, err := auth.ParseAccessToken(accessToken, []byte("ak"))
	if err != nil {
		t.Fatalf("issued token must verify against the access secret: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "alice" || claims.Role != DefaultRole {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	s := newService(t, &fakeRepo{})

	_, _, err := s.Refresh(context.Background(), "garbage")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestRefresh_ExpiredToken(t *testing.T) {
	s := newService(t, &fakeRepo{})

	refreshToken, err := auth.GenerateRefreshToken("alice", []byte("rk"), -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	_, _, err = s.Refresh(context.Background(), refreshToken)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	s := newService(t, &fakeRepo{getOut: &User{ID: "u1", Username: "alice"}})

	// An access-class token must not pass as a refresh credential.
	accessToken, err := auth.GenerateAccessToken("u1", "Alice A.", "alice", "user", []byte("ak"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, _, err = s.Refresh(context.Background(), accessToken)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestRefresh_UserGone(t *testing.T) {
	s := newService(t, &fakeRepo{getErr: common.ErrorNotFound})

	refreshToken, err := auth.GenerateRefreshToken("alice", []byte("rk"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	_, _, err = s.Refresh(context.Background(), refreshToken)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestRefresh_RepoError(t *testing.T) {
	s := newService(t, &fakeRepo{getErr: errBoom{}})

	refreshToken, err := auth.GenerateRefreshToken("alice", []byte("rk"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	_, _, err = s.Refresh(context.Background(), refreshToken)
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
}
