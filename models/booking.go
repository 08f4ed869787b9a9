package models

import "github.com/shopspring/decimal"

func init() {
	// giá tiền trả về dạng số trong JSON, không bọc trong chuỗi
	decimal.MarshalJSONWithoutQuotes = true
}

// Booking là một gói lưu trú (plan) mà khách có thể đặt
type Booking struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" binding:"omitempty,uuid"`
	Name        string          `json:"name" gorm:"not null" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null" binding:"gte=0"`
	OperatorID  string          `json:"-" gorm:"type:varchar(64);not null;index"`
}
