package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devasif/smart-task-management/pkg/helpers"
)

// CtxUserEmailKey is where the verified identity lands in the Gin context.
const CtxUserEmailKey = "userEmail"

// Auth gates protected routes on the Authorization header. The request
// either continues with the verified email attached or is rejected here;
// no handler or store access happens on the rejection path.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(c)
			return
		}
		email, err := jwt.Verify(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(CtxUserEmailKey, email)
		c.Next()
	}
}

// unauthorized short-circuits with a bare 401 body, before the response
// envelope is constructed.
func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}
