package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserKey     = "user"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var (
	errMissingToken       = errs.New("access token required")
	errInvalidToken       = errs.New("invalid or expired token")
	errInsufficientRole   = errs.New("insufficient permissions")
	errMissingAuthContext = errs.New("authentication context missing")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		recipient, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), "Invalid or expired token", nil)
			return
		}

		setUser(c, recipient)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		recipient, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setUser(c, recipient)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setUser(c *gin.Context, u user.Recipient) {
	c.Set(ctxUserKey, u)
	c.Set(ctxUserIDKey, u.ID)
	c.Set(ctxUserRoleKey, u.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": u.ID.String(),
		"role":    string(u.Role),
	})
}

func GetUser(c *gin.Context) (user.Recipient, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return user.Recipient{}, false
	}
	u, ok := v.(user.Recipient)
	return u, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
