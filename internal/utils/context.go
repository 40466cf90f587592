package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mdd-dev/mdd/internal/types"
)

// CurrentUserEmail returns the token subject stored by the auth middleware.
func CurrentUserEmail(ctx *gin.Context) (string, error) {
	value, exists := ctx.Get(types.ContextUserEmailKey)

	if !exists {
		return "", fmt.Errorf("User not authenticated")
	}

	email, ok := value.(string)

	if !ok || email == "" {
		return "", fmt.Errorf("Invalid user identity in context")
	}

	return email, nil
}
