package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	ActionGetCount   = "get_count"
	ActionUseToken   = "use_token"
	ActionInitialize = "initialize"
)

type TokenRequest struct {
	UID string `json:"uid"`
}

func (r *TokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UID, validation.Required.Error("User ID is required")),
	)
}

// ManageTokensRequest is the body of the action-dispatched token function.
type ManageTokensRequest struct {
	Action string `json:"action"`
	UID    string `json:"uid"`
}

func (r *ManageTokensRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Action,
			validation.Required.Error("action is required"),
			validation.In(ActionGetCount, ActionUseToken, ActionInitialize).Error("unknown action"),
		),
		validation.Field(&r.UID, validation.Required.Error("User ID is required")),
	)
}

// TokenResponse is the flat body shared by every token endpoint.
type TokenResponse struct {
	Allowed         *bool  `json:"allowed,omitempty"`
	TokensAvailable *int   `json:"tokensAvailable,omitempty"`
	Message         string `json:"message,omitempty"`
}

func Bool(b bool) *bool { return &b }

func Int(n int) *int { return &n }
