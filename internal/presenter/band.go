// Package presenter turns stored interview data into view models for the
// client. Functions here are pure and never mutate their input.
package presenter

type Band string

const (
	BandHigh Band = "high"
	BandMid  Band = "mid"
	BandLow  Band = "low"
)

const (
	highThreshold = 80
	midThreshold  = 60
)

// Style holds the fixed style tokens the client uses for a band.
type Style struct {
	Text     string `json:"text"`
	Progress string `json:"progress"`
}

var bandStyles = map[Band]Style{
	BandHigh: {Text: "text-success-100", Progress: "bg-success-100"},
	BandMid:  {Text: "text-primary-200", Progress: "bg-primary-200"},
	BandLow:  {Text: "text-destructive-100", Progress: "bg-destructive-100"},
}

// ClassifyScore is the only place score thresholds live.
func ClassifyScore(score int) Band {
	switch {
	case score >= highThreshold:
		return BandHigh
	case score >= midThreshold:
		return BandMid
	default:
		return BandLow
	}
}

func (b Band) Style() Style {
	return bandStyles[b]
}

// progressWidth clamps a score to a valid progress bar percentage.
func progressWidth(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
