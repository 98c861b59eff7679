package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"product-catalog/internal/domain"
)

const userContextKey = "authUser"

// authRequired resolves the bearer token to a stored user before any handler
// runs. Missing header, invalid token and deleted backing user all fail closed
// with the same 401 body.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			unauthorized(c)
			return
		}

		identity, err := h.tokens.Validate(strings.TrimPrefix(header, prefix))
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), identity.UserID)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// authedUser returns the user resolved by authRequired. Routes registered
// behind the middleware always have one.
func authedUser(c *gin.Context) *domain.User {
	value, _ := c.Get(userContextKey)
	user, _ := value.(*domain.User)
	return user
}
