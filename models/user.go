package models

import "time"

// User là tài khoản lễ tân (operator), mọi dữ liệu khác đều thuộc về một operator
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
