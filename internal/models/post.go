package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	gorm.Model

	Date     time.Time `gorm:"not null"`
	Title    string    `gorm:"size:100;not null"`
	Content  string    `gorm:"size:2500;not null"`
	AuthorID uint      `gorm:"not null;index"`
	TopicID  uint      `gorm:"not null;index"`

	// Relationships
	Author   User      `gorm:"foreignKey:AuthorID"`
	Topic    Topic     `gorm:"foreignKey:TopicID"`
	Comments []Comment `gorm:"foreignKey:PostID"`
}
