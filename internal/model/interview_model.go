package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Interview struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(255);index" json:"user_id"`
	Role        string    `gorm:"type:varchar(255)" json:"role"`
	Type        string    `gorm:"type:varchar(100)" json:"type"`
	Level       string    `gorm:"type:varchar(100)" json:"level"`
	Techstack   []string  `gorm:"type:jsonb;serializer:json" json:"techstack"`
	Description string    `gorm:"type:text" json:"description"`
	Finalized   bool      `gorm:"index" json:"finalized"`
	Score       *int      `json:"score,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Interview) TableName() string {
	return "interviews"
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
