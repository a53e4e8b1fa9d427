// Package httpapi exposes the authentication operations over HTTP.
package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cctv-platform/authd/internal/common"
	"github.com/cctv-platform/authd/internal/logging"
	"github.com/cctv-platform/authd/internal/server/users"
)

// unauthorizedMessage is the single body used for every refresh failure:
// missing header, malformed token, wrong secret, expired token, vanished
// account. One shape, nothing for a prober to learn from.
const unauthorizedMessage = "You are not authorized to access this route"

// tokenCookieName names the cookie carrying the freshly minted access token.
const tokenCookieName = "token"

type Handler struct {
	users        *users.Service
	cookieDomain string
	log          logging.Logger
}

func NewHandler(users *users.Service, cookieDomain string, log logging.Logger) *Handler {
	return &Handler{users: users, cookieDomain: cookieDomain, log: log}
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupRequest struct {
	FullName string `json:"fullname"`
	Birthday string `json:"birthday"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignIn handles POST /signin. An unknown username and a wrong password
// produce byte-identical 404 responses.
func (h *Handler) SignIn(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, token, err := h.users.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("user %q not found", req.Username)})
			return
		}
		h.log.Error(c.Request.Context(), "signin failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":   user.ID,
		"username": user.Username,
		"token":    token,
	})
}

// SignUp handles POST /signup.
func (h *Handler) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), req.FullName, req.Birthday, req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
			return
		}
		h.log.Error(c.Request.Context(), "signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User created",
		"userId":   user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Refresh handles POST /refresh. It expects "Authorization: Bearer <refresh
// token>" and answers with the full profile, a new access token, and a
// domain-scoped session cookie carrying that token.
func (h *Handler) Refresh(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": unauthorizedMessage})
		return
	}

	user, accessToken, err := h.users.Refresh(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": unauthorizedMessage})
			return
		}
		h.log.Error(c.Request.Context(), "refresh failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	// Session-scoped: no Max-Age, replaced on every successful refresh.
	c.SetCookie(tokenCookieName, accessToken, 0, "/", h.cookieDomain, false, false)

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"fullname": user.FullName,
		"birthday": user.Birthday,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"token":    accessToken,
	})
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
