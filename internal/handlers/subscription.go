package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/services"
	"github.com/mdd-dev/mdd/internal/types"
	"github.com/mdd-dev/mdd/internal/utils"
)

func topicIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		return 0, apperr.Validation("Invalid topic id")
	}

	return uint(id), nil
}

func Subscribe(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	topicID, err := topicIDParam(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := services.Subscribe(email, topicID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Subscription completed !")
}

func Unsubscribe(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	topicID, err := topicIDParam(ctx)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := services.Unsubscribe(email, topicID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Unsubscription completed !")
}
