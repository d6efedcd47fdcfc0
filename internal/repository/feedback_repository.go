package repository

import (
	"context"

	"github.com/fadilmartias/mock-interview/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// FindByInterviewAndUser returns the newest feedback for the interview and user.
func (r *FeedbackRepository) FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.WithContext(ctx).
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		Order("created_at DESC").
		First(&feedback).Error
	return &feedback, err
}
