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

func CreatePost(callerEmail, title, content string, topicID uint) error {
	user, err := GetUserByEmail(callerEmail)

	if err != nil {
		return err
	}

	topic, err := GetTopicByID(topicID)

	if err != nil {
		return err
	}

	post := models.Post{
		Date:     time.Now(),
		Title:    title,
		Content:  content,
		AuthorID: user.ID,
		TopicID:  topic.ID,
	}

	return db.DB.Create(&post).Error
}

// ListPosts returns every post enriched with its author name, topic title
// and nested comments. Unpaginated and in natural storage order.
func ListPosts() (types.PostsResponse, error) {
	var posts []models.Post

	err := db.DB.
		Preload("Author").
		Preload("Topic").
		Preload("Comments.Author").
		Find(&posts).Error

	if err != nil {
		return types.PostsResponse{}, err
	}

	dtos := make([]types.PostDto, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, postToDto(post))
	}

	return types.PostsResponse{Posts: dtos}, nil
}

func GetPost(id uint) (types.PostDto, error) {
	var post models.Post

	err := db.DB.
		Preload("Author").
		Preload("Topic").
		Preload("Comments.Author").
		First(&post, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.PostDto{}, apperr.NotFound(types.MsgPostNotFound)
		}
		return types.PostDto{}, err
	}

	return postToDto(post), nil
}

func postToDto(post models.Post) types.PostDto {
	comments := make([]types.CommentDto, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, commentToDto(comment))
	}

	return types.PostDto{
		ID:         post.ID,
		Date:       post.Date,
		Title:      post.Title,
		Content:    post.Content,
		AuthorName: post.Author.Name,
		TopicTitle: post.Topic.Title,
		Comments:   comments,
	}
}
