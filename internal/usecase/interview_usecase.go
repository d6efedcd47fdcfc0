package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/fadilmartias/mock-interview/internal/presenter"
	"github.com/fadilmartias/mock-interview/internal/response"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const DefaultLatestLimit = 20

type InterviewStore interface {
	FindInterviewByID(ctx context.Context, id string) (*model.Interview, error)
	FindInterviewsByUserID(ctx context.Context, userID string, offset, limit int) ([]model.Interview, int64, error)
	FindLatestInterviews(ctx context.Context, userID string, limit int) ([]model.Interview, error)
}

type FeedbackStore interface {
	FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*model.Feedback, error)
}

type FeedbackPage struct {
	InterviewID string                 `json:"interview_id"`
	Role        string                 `json:"role"`
	Feedback    presenter.FeedbackView `json:"feedback"`
	RetakeLink  string                 `json:"retake_link"`
}

type Dashboard struct {
	PastInterviews     []presenter.InterviewCard `json:"past_interviews"`
	UpcomingInterviews []presenter.InterviewCard `json:"upcoming_interviews"`
}

type InterviewUsecase struct {
	interviews InterviewStore
	feedbacks  FeedbackStore
}

func NewInterviewUsecase(interviews InterviewStore, feedbacks FeedbackStore) *InterviewUsecase {
	return &InterviewUsecase{interviews: interviews, feedbacks: feedbacks}
}

// GetFeedbackView loads an interview and renders its feedback. A missing
// interview aborts with ErrNotFound; missing feedback renders defaults.
func (uc *InterviewUsecase) GetFeedbackView(ctx context.Context, interviewID, userID string) (*FeedbackPage, error) {
	if _, err := uuid.Parse(interviewID); err != nil {
		return nil, fmt.Errorf("%w: interview %s", ErrNotFound, interviewID)
	}
	interview, err := uc.interviews.FindInterviewByID(ctx, interviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: interview %s", ErrNotFound, interviewID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load interview: %v", ErrUpstream, err)
	}

	var feedback *model.Feedback
	if userID != "" {
		feedback, err = uc.feedbacks.FindByInterviewAndUser(ctx, interviewID, userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			feedback = nil
		case err != nil:
			log.Printf("Warning: load feedback for interview %s failed: %v", interviewID, err)
			feedback = nil
		}
	}

	return &FeedbackPage{
		InterviewID: interview.ID.String(),
		Role:        interview.Role,
		Feedback:    presenter.Present(feedback),
		RetakeLink:  fmt.Sprintf("/interview/%s", interview.ID),
	}, nil
}

func (uc *InterviewUsecase) ListUserInterviews(ctx context.Context, userID string, page, pageSize int) ([]presenter.InterviewCard, *response.Pagination, error) {
	if err := validateUserID(userID); err != nil {
		return nil, nil, err
	}
	page, pageSize, offset := response.NormalizePage(page, pageSize)
	interviews, total, err := uc.interviews.FindInterviewsByUserID(ctx, userID, offset, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: list interviews: %v", ErrUpstream, err)
	}
	cards := presenter.PresentInterviewCards(interviews, true)
	return cards, response.NewPagination(page, pageSize, total, len(cards)), nil
}

func (uc *InterviewUsecase) ListLatestInterviews(ctx context.Context, userID string, limit int) ([]presenter.InterviewCard, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > response.MaxPageSize {
		limit = DefaultLatestLimit
	}
	interviews, err := uc.interviews.FindLatestInterviews(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list latest interviews: %v", ErrUpstream, err)
	}
	return presenter.PresentInterviewCards(interviews, false), nil
}

// Dashboard fetches both interview lists concurrently. A list that fails to
// load is logged and shown empty.
func (uc *InterviewUsecase) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	dashboard := &Dashboard{
		PastInterviews:     []presenter.InterviewCard{},
		UpcomingInterviews: []presenter.InterviewCard{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cards, _, err := uc.ListUserInterviews(gctx, userID, 1, response.MaxPageSize)
		if err != nil {
			log.Printf("Warning: dashboard past interviews for %s: %v", userID, err)
			return nil
		}
		dashboard.PastInterviews = cards
		return nil
	})
	g.Go(func() error {
		cards, err := uc.ListLatestInterviews(gctx, userID, DefaultLatestLimit)
		if err != nil {
			log.Printf("Warning: dashboard latest interviews for %s: %v", userID, err)
			return nil
		}
		dashboard.UpcomingInterviews = cards
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dashboard, nil
}
