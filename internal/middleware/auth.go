package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mdd-dev/mdd/internal/auth"
	"github.com/mdd-dev/mdd/internal/types"
)

// AuthMiddleware verifies the bearer token and stores its subject email in
// the request context. It deliberately does not load the user row: flows
// resolve the account themselves, so a deleted account surfaces as a
// business not-found instead of a 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Message: types.MsgAuthRequired})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Message: types.MsgAuthRequired})
			return
		}

		token, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Message: types.MsgAuthRequired})
			return
		}

		email, err := auth.SubjectFromToken(token)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Message: types.MsgAuthRequired})
			return
		}

		ctx.Set(types.ContextUserEmailKey, email)
		ctx.Next()
	}
}
