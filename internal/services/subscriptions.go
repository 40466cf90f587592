package services

import (
	"errors"

	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/models"
	"gorm.io/gorm"
)

// Subscribe is idempotent: subscribing to a topic the caller already
// follows is a silent no-op. idx_user_topic backs this up under concurrent
// identical requests, so a lost race degrades to the same no-op.
func Subscribe(callerEmail string, topicID uint) error {
	user, err := GetUserByEmail(callerEmail)

	if err != nil {
		return err
	}

	var count int64

	if err := db.DB.Model(&models.Subscription{}).
		Where("user_id = ? AND topic_id = ?", user.ID, topicID).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	topic, err := GetTopicByID(topicID)

	if err != nil {
		return err
	}

	subscription := models.Subscription{
		UserID:  user.ID,
		TopicID: topic.ID,
	}

	if err := db.DB.Create(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	return nil
}

// Unsubscribe deletes the (user, topic) pair; removing a subscription that
// does not exist affects zero rows and is not an error.
func Unsubscribe(callerEmail string, topicID uint) error {
	user, err := GetUserByEmail(callerEmail)

	if err != nil {
		return err
	}

	return db.DB.Where("user_id = ? AND topic_id = ?", user.ID, topicID).
		Delete(&models.Subscription{}).Error
}
