package entities

import "github.com/google/uuid"

type Tag struct {
	ID     uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Ingredient struct {
	ID     uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
