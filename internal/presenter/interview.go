package presenter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/mock-interview/internal/model"
)

const cardDateLayout = "Jan 2, 2006"

type InterviewCard struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Initial     string   `json:"initial"`
	Date        string   `json:"date,omitempty"`
	Score       *int     `json:"score,omitempty"`
	Techstack   []string `json:"techstack,omitempty"`
	Description string   `json:"description"`
	ActionLabel string   `json:"action_label"`
	Link        string   `json:"link"`
}

func PresentInterviewCard(interview model.Interview, isPast bool) InterviewCard {
	name := firstNonEmpty(interview.Type, interview.Role, "Interview")
	r, _ := utf8.DecodeRuneInString(name)

	card := InterviewCard{
		ID:          interview.ID.String(),
		DisplayName: name,
		Initial:     strings.ToUpper(string(r)),
		Techstack:   interview.Techstack,
		Description: describe(interview),
		ActionLabel: "Start Interview",
		Link:        fmt.Sprintf("/interview/%s", interview.ID),
	}
	if isPast {
		card.ActionLabel = "View Details"
		if !interview.CreatedAt.IsZero() {
			card.Date = interview.CreatedAt.Format(cardDateLayout)
		}
		// Zero means "not scored yet" and is hidden like a missing score.
		if interview.Score != nil && *interview.Score > 0 {
			score := *interview.Score
			card.Score = &score
		}
	}
	return card
}

func PresentInterviewCards(interviews []model.Interview, isPast bool) []InterviewCard {
	cards := make([]InterviewCard, 0, len(interviews))
	for _, i := range interviews {
		cards = append(cards, PresentInterviewCard(i, isPast))
	}
	return cards
}

func describe(interview model.Interview) string {
	if interview.Description != "" {
		return interview.Description
	}
	if len(interview.Techstack) > 0 {
		return "Interview focusing on " + strings.Join(interview.Techstack, ", ")
	}
	return "Practice interview session"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
