package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/services"
	"github.com/mdd-dev/mdd/internal/types"
	"github.com/mdd-dev/mdd/internal/utils"
)

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	TopicID uint   `json:"topicId"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Content, validation.Required, validation.Length(1, 2500)),
		validation.Field(&r.TopicID, validation.Required),
	)
}

func CreatePost(ctx *gin.Context) {
	email, err := utils.CurrentUserEmail(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated(types.MsgAuthRequired))
		return
	}

	var req CreatePostRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperr.Validation("Invalid request"))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(ctx, apperr.Validation(err.Error()))
		return
	}

	if err := services.CreatePost(email, req.Title, req.Content, req.TopicID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Post created !")
}

func ListPosts(ctx *gin.Context) {
	posts, err := services.ListPosts()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

func GetPost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		respondError(ctx, apperr.Validation("Invalid post id"))
		return
	}

	post, err := services.GetPost(uint(id))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}
