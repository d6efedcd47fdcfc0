package repository

import (
	"context"

	"github.com/fadilmartias/mock-interview/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) CreateInterview(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *InterviewRepository) FindInterviewByID(ctx context.Context, id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.WithContext(ctx).First(&interview, "id = ?", id).Error
	return &interview, err
}

// FindInterviewsByUserID returns one page of the user's interviews, newest
// first, together with the total count.
func (r *InterviewRepository) FindInterviewsByUserID(ctx context.Context, userID string, offset, limit int) ([]model.Interview, int64, error) {
	var (
		interviews []model.Interview
		total      int64
	)
	byUser := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Interview{}).Where("user_id = ?", userID)
	}
	if err := byUser().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := byUser().Order("created_at DESC").Offset(offset).Limit(limit).Find(&interviews).Error
	return interviews, total, err
}

// FindLatestInterviews lists finalized interviews created by other users.
func (r *InterviewRepository) FindLatestInterviews(ctx context.Context, userID string, limit int) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.WithContext(ctx).
		Where("finalized = ? AND user_id <> ?", true, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interviews).Error
	return interviews, err
}
