package services

import (
	"errors"
	"time"

	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/models"
	"github.com/mdd-dev/mdd/internal/types"
	"gorm.io/gorm"
)

func CreateComment(callerEmail, content string, postID uint) error {
	user, err := GetUserByEmail(callerEmail)

	if err != nil {
		return err
	}

	var post models.Post

	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(types.MsgPostNotFound)
		}
		return err
	}

	comment := models.Comment{
		Date:     time.Now(),
		Content:  content,
		AuthorID: user.ID,
		PostID:   post.ID,
	}

	return db.DB.Create(&comment).Error
}

// ListComments returns every comment across all posts, newest first.
func ListComments() (types.CommentsResponse, error) {
	var comments []models.Comment

	err := db.DB.
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error

	if err != nil {
		return types.CommentsResponse{}, err
	}

	dtos := make([]types.CommentDto, 0, len(comments))
	for _, comment := range comments {
		dtos = append(dtos, commentToDto(comment))
	}

	return types.CommentsResponse{Comments: dtos}, nil
}

func commentToDto(comment models.Comment) types.CommentDto {
	return types.CommentDto{
		ID:       comment.ID,
		Date:     comment.Date,
		Content:  comment.Content,
		UserName: comment.Author.Name,
	}
}
