package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/services"
	"github.com/mdd-dev/mdd/internal/types"
	"github.com/mdd-dev/mdd/internal/utils"
)

type CreateTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CreateTopicRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 2000)),
	)
}

func CreateTopic(ctx *gin.Context) {
	var req CreateTopicRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validation("Invalid request"))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(ctx, apperr.Validation(err.Error()))
		return
	}

	if err := services.CreateTopic(req.Title, req.Description); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Topic created !")
}

func ListTopics(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	topics, err := services.ListTopics(email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, topics)
}
