// Package router wires the HTTP routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/transport/handler"
	intakehandler "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/transport/handler"
	"github.com/blackcobradev90/waterLillyDemo/internal/platform/http/handler"
	jwtmw "github.com/blackcobradev90/waterLillyDemo/internal/platform/jwt"
	"github.com/blackcobradev90/waterLillyDemo/internal/shared/ratelimiter"
)

// NewRouter builds the gin engine with CORS, the public signup/login and
// submission routes, and the token-protected review routes.
func NewRouter(allowOrigins []string, authH *authhandler.AuthHandler,
	intakeH *intakehandler.IntakeHandler, authLimiter *ratelimiter.Limiter) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware(allowOrigins))

	r.GET("/healthz", handler.Health)

	// Credential endpoints carry a per-client rate limit against brute force.
	auth := r.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
	}

	// Submission is anonymous; the schema endpoint feeds wizard clients.
	r.POST("/userform", intakeH.Create)
	r.GET("/userform/schema", intakeH.Schema)

	// Review routes require a valid bearer token.
	review := r.Group("/userforms")
	review.Use(jwtmw.AuthRequired())
	{
		review.GET("", intakeH.List)
		review.GET("/:id", intakeH.Get)
	}

	return r
}

func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cors.New(cfg)
}
