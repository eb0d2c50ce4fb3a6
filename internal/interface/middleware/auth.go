package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
	"github.com/aditrahmn/contact-management-api/pkg/response"
)

const CtxUserKey = "authUser"

// Auth resolves the caller from the raw Authorization header by exact match
// against the stored session token. No match means no downstream handler runs.
func Auth(users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			response.AbortErrors(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		u, err := users.GetByToken(c.Request.Context(), token)
		if err != nil || u == nil {
			response.AbortErrors(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by Auth.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
