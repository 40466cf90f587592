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

type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  uint   `json:"postId"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 1000)),
		validation.Field(&r.PostID, validation.Required),
	)
}

func CreateComment(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	var req CreateCommentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validation("Invalid request"))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(ctx, apperr.Validation(err.Error()))
		return
	}

	if err := services.CreateComment(email, req.Content, req.PostID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Comment created !")
}

func ListComments(ctx *gin.Context) {
	comments, err := services.ListComments()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}
