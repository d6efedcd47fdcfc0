package model

import "time"

type TokenAccount struct {
	UserID    string    `gorm:"type:varchar(255);primaryKey" json:"user_id"`
	Balance   int       `gorm:"not null;default:0;check:balance >= 0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TokenAccount) TableName() string {
	return "token_accounts"
}
