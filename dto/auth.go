package dto

import "time"

// RegisterInput đăng ký tài khoản lễ tân mới
type RegisterInput struct {
	ID       string `json:"id" form:"id" binding:"required,max=64"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
}

// LoginInput được gửi dưới dạng form (id, password)
type LoginInput struct {
	ID       string `form:"id" json:"id" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginResponse struct {
	Message     string    `json:"message"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
