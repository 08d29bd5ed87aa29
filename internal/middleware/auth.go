package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/easyscheduler/admin-backend/internal/auth"
	"github.com/easyscheduler/admin-backend/internal/config"
)

const ContextIdentity = "identity"

// Session resolves the request's identity from a bearer token, when one is
// present and valid, and stores it in the gin context. It never aborts:
// anonymous and invalid-token requests proceed with a zero Identity, and the
// privilege gate decides what they may reach.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextIdentity, parseIdentity(c, cfg))
		c.Next()
	}
}

// IdentityFrom returns the identity the Session middleware resolved, or a
// zero Identity when the middleware did not run.
func IdentityFrom(c *gin.Context) auth.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(auth.Identity); ok {
			return id
		}
	}
	return auth.Identity{}
}

func parseIdentity(c *gin.Context, cfg *config.Config) auth.Identity {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return auth.Identity{}
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return auth.Identity{}
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return auth.Identity{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Identity{}
	}

	userID, ok := claims["sub"].(float64)
	if !ok {
		return auth.Identity{}
	}
	roleSlug, _ := claims["role_slug"].(string)
	email, _ := claims["user_email"].(string)

	return auth.Identity{
		UserID:   uint(userID),
		RoleSlug: roleSlug,
		Email:    email,
	}
}
