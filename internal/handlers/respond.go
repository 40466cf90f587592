package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/types"
)

// respondError maps a business error kind to an HTTP status exactly once,
// at the boundary. Every error body has the same {message} shape.
func respondError(ctx *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict, apperr.KindInvalidCredentials:
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Message: err.Error()})
	case apperr.KindUnauthenticated:
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: err.Error()})
	case apperr.KindForbidden:
		ctx.JSON(http.StatusForbidden, types.ErrorResponse{Message: err.Error()})
	case apperr.KindNotFound:
		ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: err.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Internal server error"})
	}
}
