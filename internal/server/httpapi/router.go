package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/cctv-platform/authd/internal/logging"
)

// NewRouter builds the gin engine with the three authentication routes.
func NewRouter(h *Handler, log logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), CORS())

	r.POST("/signin", h.SignIn)
	r.POST("/signup", h.SignUp)
	r.POST("/refresh", h.Refresh)

	return r
}
