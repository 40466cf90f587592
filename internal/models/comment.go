package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model

	Date     time.Time `gorm:"not null"`
	Content  string    `gorm:"size:1000;not null"`
	AuthorID uint      `gorm:"not null;index"`
	PostID   uint      `gorm:"not null;index"`

	// Relationships
	Author User `gorm:"foreignKey:AuthorID"`
	Post   Post `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
