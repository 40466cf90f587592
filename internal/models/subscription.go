package models

import "time"

// Subscription links one user to one topic. It does not embed gorm.Model:
// unsubscribing must delete the row for real, otherwise a soft-deleted
// tombstone would collide with idx_user_topic on resubscribe.
type Subscription struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID  uint `gorm:"not null;uniqueIndex:idx_user_topic"`
	TopicID uint `gorm:"not null;uniqueIndex:idx_user_topic"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Topic Topic `gorm:"foreignKey:TopicID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
