package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/mock-interview/internal/config"
	"github.com/fadilmartias/mock-interview/internal/dto"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type TokenBackendServiceInterface interface {
	CheckAndUseToken(ctx context.Context, uid string) dto.TokenResponse
	GetTokenCount(ctx context.Context, uid string) int
	InitializeUserTokens(ctx context.Context, uid string) dto.TokenResponse
}

// TokenBackendService calls a deployed manage-tokens function.
type TokenBackendService struct {
	client *resty.Client
	url    string
}

func NewTokenBackendService(cfg *config.TokenBackendConfig) *TokenBackendService {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("apikey", cfg.APIKey).
			SetAuthToken(cfg.APIKey)
	}
	return &TokenBackendService{client: client, url: cfg.FunctionURL}
}

// CheckAndUseToken spends one token. Failures come back as a denial carrying
// the error text.
func (s *TokenBackendService) CheckAndUseToken(ctx context.Context, uid string) dto.TokenResponse {
	body, err := s.call(ctx, dto.ActionUseToken, uid)
	if err != nil {
		log.Printf("Error checking tokens: %v", err)
		return dto.TokenResponse{Allowed: dto.Bool(false), Message: err.Error()}
	}
	return parseTokenResponse(body)
}

// GetTokenCount reports the balance, or zero when the backend is unreachable.
func (s *TokenBackendService) GetTokenCount(ctx context.Context, uid string) int {
	body, err := s.call(ctx, dto.ActionGetCount, uid)
	if err != nil {
		log.Printf("Warning: error getting token count: %v", err)
		return 0
	}
	return int(gjson.Get(body, "tokensAvailable").Int())
}

func (s *TokenBackendService) InitializeUserTokens(ctx context.Context, uid string) dto.TokenResponse {
	body, err := s.call(ctx, dto.ActionInitialize, uid)
	if err != nil {
		log.Printf("Error initializing tokens: %v", err)
		return dto.TokenResponse{Allowed: dto.Bool(false), Message: err.Error()}
	}
	return parseTokenResponse(body)
}

func (s *TokenBackendService) call(ctx context.Context, action, uid string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(dto.ManageTokensRequest{Action: action, UID: uid}).
		Post(s.url)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", action, err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("%s failed with status %d: %s", action, resp.StatusCode(), msg)
	}
	if !gjson.Valid(resp.String()) {
		return "", fmt.Errorf("%s returned invalid JSON", action)
	}
	return resp.String(), nil
}

func parseTokenResponse(body string) dto.TokenResponse {
	var out dto.TokenResponse
	if v := gjson.Get(body, "allowed"); v.Exists() {
		out.Allowed = dto.Bool(v.Bool())
	}
	if v := gjson.Get(body, "tokensAvailable"); v.Exists() {
		out.TokensAvailable = dto.Int(int(v.Int()))
	}
	out.Message = gjson.Get(body, "message").String()
	return out
}
