package presenter

// lowBalanceThreshold is the balance at or below which users are nudged to upgrade.
const lowBalanceThreshold = 3

const (
	StartLabel     = "Start Interview"
	ExhaustedLabel = "Out of tokens! Please upgrade."
)

type TokenBalanceView struct {
	TokensAvailable int    `json:"tokens_available"`
	Exhausted       bool   `json:"exhausted"`
	Low             bool   `json:"low"`
	ActionLabel     string `json:"action_label"`
}

func PresentTokenBalance(balance int) TokenBalanceView {
	if balance <= 0 {
		return TokenBalanceView{Exhausted: true, ActionLabel: ExhaustedLabel}
	}
	return TokenBalanceView{
		TokensAvailable: balance,
		Low:             balance <= lowBalanceThreshold,
		ActionLabel:     StartLabel,
	}
}
