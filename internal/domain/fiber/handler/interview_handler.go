package handler

import (
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/mock-interview/internal/middleware"
	"github.com/fadilmartias/mock-interview/internal/presenter"
	"github.com/fadilmartias/mock-interview/internal/usecase"
	"github.com/fadilmartias/mock-interview/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc         *usecase.InterviewUsecase
	tokens     *usecase.TokenUsecase
	authSecret string
}

func NewInterviewHandler(uc *usecase.InterviewUsecase, tokens *usecase.TokenUsecase, authSecret string) *InterviewHandler {
	return &InterviewHandler{uc: uc, tokens: tokens, authSecret: authSecret}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	auth := middleware.Authenticate(h.authSecret)
	interviews := app.Group("/api/interviews", auth, middleware.RateLimiter(60, time.Minute))
	interviews.Get("/mine", h.Mine)
	interviews.Get("/latest", h.Latest)
	interviews.Get("/:id/feedback", h.Feedback)
	app.Get("/api/dashboard", auth, h.Dashboard)
}

// Feedback renders the feedback summary of one interview. A missing
// interview tells the client to go back to the dashboard.
func (h *InterviewHandler) Feedback(c *fiber.Ctx) error {
	page, err := h.uc.GetFeedbackView(c.UserContext(), c.Params("id"), middleware.CurrentUserID(c))
	if errors.Is(err, usecase.ErrNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "interview not found",
			Details: fiber.Map{"redirect": "/"},
		}, err)
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load interview",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview feedback",
		Data:    page,
	})
}

func (h *InterviewHandler) Mine(c *fiber.Ctx) error {
	cards, pagination, err := h.uc.ListUserInterviews(
		c.UserContext(),
		middleware.CurrentUserID(c),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", 0),
	)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list interviews",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list interviews",
		Data:       cards,
		Pagination: pagination,
	})
}

func (h *InterviewHandler) Latest(c *fiber.Ctx) error {
	cards, err := h.uc.ListLatestInterviews(c.UserContext(), middleware.CurrentUserID(c), c.QueryInt("limit", 0))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list latest interviews",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success list latest interviews",
		Data:    cards,
	})
}

// Dashboard bundles both interview lists with the token balance. The balance
// is best effort and shows as zero if the ledger cannot be read.
func (h *InterviewHandler) Dashboard(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)
	dashboard, err := h.uc.Dashboard(c.UserContext(), userID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load dashboard",
		}, err)
	}

	balance, err := h.tokens.GetCount(c.UserContext(), userID)
	if err != nil {
		log.Printf("Warning: token balance for %s unavailable: %v", userID, err)
		balance = 0
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get dashboard",
		Data: fiber.Map{
			"tokens":              presenter.PresentTokenBalance(balance),
			"past_interviews":     dashboard.PastInterviews,
			"upcoming_interviews": dashboard.UpcomingInterviews,
		},
	})
}
