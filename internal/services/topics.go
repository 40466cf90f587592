package services

import (
	"errors"

	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/models"
	"github.com/mdd-dev/mdd/internal/types"
	"gorm.io/gorm"
)

func CreateTopic(title, description string) error {
	topic := models.Topic{
		Title:       title,
		Description: description,
	}

	return db.DB.Create(&topic).Error
}

// ListTopics returns every topic, flagged with whether the caller
// subscribes to it.
func ListTopics(callerEmail string) (types.TopicsResponse, error) {
	user, err := GetUserByEmail(callerEmail)

	if err != nil {
		return types.TopicsResponse{}, err
	}

	var topics []models.Topic

	if err := db.DB.Preload("Subscriptions").Find(&topics).Error; err != nil {
		return types.TopicsResponse{}, err
	}

	return types.TopicsResponse{Topics: topicDtosFor(topics, user.ID)}, nil
}

func GetTopicByID(id uint) (models.Topic, error) {
	var topic models.Topic

	if err := db.DB.First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Topic{}, apperr.NotFound(types.MsgTopicNotFound)
		}
		return models.Topic{}, err
	}

	return topic, nil
}

// topicDtosFor maps topics to DTOs, deriving the subscription flag from each
// topic's preloaded subscription rows.
func topicDtosFor(topics []models.Topic, userID uint) []types.TopicDto {
	dtos := make([]types.TopicDto, 0, len(topics))

	for _, topic := range topics {
		subscribed := false
		for _, sub := range topic.Subscriptions {
			if sub.UserID == userID {
				subscribed = true
				break
			}
		}

		dtos = append(dtos, types.TopicDto{
			ID:           topic.ID,
			Title:        topic.Title,
			Description:  topic.Description,
			Subscription: subscribed,
		})
	}

	return dtos
}
