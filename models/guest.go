package models

import "time"

type Guest struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" binding:"omitempty,uuid"`
	Name       string    `json:"name" gorm:"not null" binding:"required"`
	KanaName   string    `json:"kanaName" gorm:"not null" binding:"required"`
	Gender     string    `json:"gender" binding:"required"`
	Age        int       `json:"age" binding:"gte=0"`
	Region     string    `json:"region" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	Phone      string    `json:"phone" gorm:"type:varchar(11);not null;index" binding:"required,phone"`
	Deleted    bool      `json:"deleted" gorm:"not null;default:false"`
	OperatorID string    `json:"-" gorm:"type:varchar(64);not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
}
