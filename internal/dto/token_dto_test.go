package dto

import "testing"

func TestTokenRequestValidate(t *testing.T) {
	if err := (&TokenRequest{UID: "u1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (&TokenRequest{}).Validate(); err == nil {
		t.Fatalf("expected error for missing uid")
	}
}

func TestManageTokensRequestValidate(t *testing.T) {
	for _, action := range []string{ActionGetCount, ActionUseToken, ActionInitialize} {
		if err := (&ManageTokensRequest{Action: action, UID: "u1"}).Validate(); err != nil {
			t.Fatalf("action %s: unexpected error: %v", action, err)
		}
	}
	if err := (&ManageTokensRequest{Action: "refund", UID: "u1"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if err := (&ManageTokensRequest{Action: ActionGetCount}).Validate(); err == nil {
		t.Fatalf("expected error for missing uid")
	}
}
