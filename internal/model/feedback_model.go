package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Feedback is produced by the evaluation pipeline and only read here.
type Feedback struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID         uuid.UUID       `gorm:"type:uuid;index" json:"interview_id"`
	UserID              string          `gorm:"type:varchar(255);index" json:"user_id"`
	TotalScore          int             `json:"total_score"`
	FinalAssessment     string          `gorm:"type:text" json:"final_assessment"`
	CategoryScores      []CategoryScore `gorm:"type:jsonb;serializer:json" json:"category_scores"`
	Strengths           []string        `gorm:"type:jsonb;serializer:json" json:"strengths"`
	AreasForImprovement []string        `gorm:"type:jsonb;serializer:json" json:"areas_for_improvement"`
	CreatedAt           time.Time       `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
