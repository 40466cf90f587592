package models

import "gorm.io/gorm"

type Topic struct {
	gorm.Model

	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"size:2000;not null"`

	// Relationships
	Posts         []Post         `gorm:"foreignKey:TopicID"`
	Subscriptions []Subscription `gorm:"foreignKey:TopicID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
