package handler

import (
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/mock-interview/internal/dto"
	"github.com/fadilmartias/mock-interview/internal/middleware"
	"github.com/fadilmartias/mock-interview/internal/usecase"
	"github.com/fadilmartias/mock-interview/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	msgUserIDRequired = "User ID is required"
	msgServerError    = "Server error"
	msgOutOfTokens    = "Out of tokens! Please upgrade."
	msgTokenUsed      = "Token used successfully"
	msgCountRetrieved = "Token count retrieved successfully"
	msgInitialized    = "Tokens initialized successfully"
	msgNotAllowed     = "Method not allowed"
	msgUnknownAction  = "unknown action"
)

type TokenHandler struct {
	uc            *usecase.TokenUsecase
	exposeMetrics bool
}

// NewTokenHandler builds the token routes. The metrics snapshot is only
// served when exposeMetrics is set.
func NewTokenHandler(uc *usecase.TokenUsecase, exposeMetrics bool) *TokenHandler {
	return &TokenHandler{uc: uc, exposeMetrics: exposeMetrics}
}

func (h *TokenHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/tokens/start-call", middleware.RateLimiter(10, 1*time.Minute), h.StartCall)
	app.All("/api/tokens/start-call", h.MethodNotAllowed)
	app.Post("/api/tokens/count", h.Count)
	app.All("/api/tokens/count", h.MethodNotAllowed)
	app.Post("/functions/manage-tokens", h.ManageTokens)
	app.All("/functions/manage-tokens", h.MethodNotAllowed)
	if h.exposeMetrics {
		app.Get("/metrics", h.Metrics)
	}
}

func (h *TokenHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.TokenResponse{Message: msgNotAllowed})
}

// StartCall spends one token before an interview session starts.
func (h *TokenHandler) StartCall(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return consumeRejected(c, msgUserIDRequired)
	}
	if err := req.Validate(); err != nil {
		return consumeRejected(c, msgUserIDRequired)
	}
	return h.consume(c, req.UID)
}

func (h *TokenHandler) Count(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return countRejected(c, msgUserIDRequired)
	}
	if err := req.Validate(); err != nil {
		return countRejected(c, msgUserIDRequired)
	}
	return h.count(c, req.UID)
}

// ManageTokens serves the action-dispatched token function.
func (h *TokenHandler) ManageTokens(c *fiber.Ctx) error {
	var req dto.ManageTokensRequest
	if err := c.BodyParser(&req); err != nil {
		return consumeRejected(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return consumeRejected(c, validationMessage(err))
	}

	switch req.Action {
	case dto.ActionGetCount:
		return h.count(c, req.UID)
	case dto.ActionUseToken:
		return h.consume(c, req.UID)
	case dto.ActionInitialize:
		return h.initialize(c, req.UID)
	default:
		return consumeRejected(c, msgUnknownAction)
	}
}

func (h *TokenHandler) initialize(c *fiber.Ctx, uid string) error {
	n, err := h.uc.Initialize(c.UserContext(), uid)
	if errors.Is(err, usecase.ErrInvalidInput) {
		return consumeRejected(c, msgUserIDRequired)
	}
	if err != nil {
		log.Printf("Error in manage-tokens initialize: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TokenResponse{
			Allowed: dto.Bool(false),
			Message: msgServerError,
		})
	}
	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		Allowed:         dto.Bool(true),
		TokensAvailable: dto.Int(n),
		Message:         msgInitialized,
	})
}

func (h *TokenHandler) Metrics(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get ledger metrics",
		Data:    h.uc.Metrics(),
	})
}

func (h *TokenHandler) consume(c *fiber.Ctx, uid string) error {
	res, err := h.uc.ConsumeToken(c.UserContext(), uid)
	if errors.Is(err, usecase.ErrInvalidInput) {
		return consumeRejected(c, msgUserIDRequired)
	}
	if err != nil {
		log.Printf("Error in start-call handler: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TokenResponse{
			Allowed: dto.Bool(false),
			Message: msgServerError,
		})
	}
	if !res.Allowed {
		return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
			Allowed:         dto.Bool(false),
			TokensAvailable: dto.Int(0),
			Message:         msgOutOfTokens,
		})
	}
	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		Allowed:         dto.Bool(true),
		TokensAvailable: dto.Int(res.Remaining),
		Message:         msgTokenUsed,
	})
}

func (h *TokenHandler) count(c *fiber.Ctx, uid string) error {
	n, err := h.uc.GetCount(c.UserContext(), uid)
	if errors.Is(err, usecase.ErrInvalidInput) {
		return countRejected(c, msgUserIDRequired)
	}
	if err != nil {
		log.Printf("Error in token-count handler: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TokenResponse{
			TokensAvailable: dto.Int(0),
			Message:         msgServerError,
		})
	}
	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{
		TokensAvailable: dto.Int(n),
		Message:         msgCountRetrieved,
	})
}

func consumeRejected(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.TokenResponse{
		Allowed: dto.Bool(false),
		Message: message,
	})
}

func countRejected(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.TokenResponse{
		TokensAvailable: dto.Int(0),
		Message:         message,
	})
}

// validationMessage prefers the uid error so clients see the same message
// as the dedicated endpoints.
func validationMessage(err error) string {
	details := util.ValidationDetails(err)
	if msg, ok := details["uid"]; ok {
		return msg
	}
	if msg, ok := details["action"]; ok {
		return msg
	}
	return err.Error()
}
