package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name     string `gorm:"size:50;uniqueIndex;not null"`
	Email    string `gorm:"size:255;uniqueIndex;not null"`
	Password string `gorm:"not null"`

	// Relationships
	Posts         []Post         `gorm:"foreignKey:AuthorID"`
	Comments      []Comment      `gorm:"foreignKey:AuthorID"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
