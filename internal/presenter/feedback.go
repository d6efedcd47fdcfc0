package presenter

import (
	"time"

	"github.com/fadilmartias/mock-interview/internal/model"
)

const (
	NoAssessment       = "No assessment available"
	NoStrengths        = "No strengths recorded"
	NoImprovementAreas = "No areas for improvement recorded"
	NoDate             = "N/A"

	feedbackDateLayout = "Jan 2, 2006 3:04 PM"
)

type ScoreView struct {
	Score    int   `json:"score"`
	Band     Band  `json:"band"`
	Style    Style `json:"style"`
	Progress int   `json:"progress"`
}

type CategoryView struct {
	Name string `json:"name"`
	ScoreView
	Comment string `json:"comment"`
}

// ListView is a list section that either has items or shows its empty marker.
type ListView struct {
	Recorded bool     `json:"recorded"`
	Items    []string `json:"items"`
	Empty    string   `json:"empty,omitempty"`
}

type FeedbackView struct {
	Overall             ScoreView      `json:"overall"`
	InterviewDate       string         `json:"interview_date"`
	FinalAssessment     string         `json:"final_assessment"`
	Categories          []CategoryView `json:"categories"`
	Strengths           ListView       `json:"strengths"`
	AreasForImprovement ListView       `json:"areas_for_improvement"`
}

// Present builds the feedback summary. A nil feedback renders every section
// with its default.
func Present(feedback *model.Feedback) FeedbackView {
	view := FeedbackView{
		Overall:             scoreView(0),
		InterviewDate:       NoDate,
		FinalAssessment:     NoAssessment,
		Categories:          []CategoryView{},
		Strengths:           listView(nil, NoStrengths),
		AreasForImprovement: listView(nil, NoImprovementAreas),
	}
	if feedback == nil {
		return view
	}

	view.Overall = scoreView(feedback.TotalScore)
	view.InterviewDate = formatDate(feedback.CreatedAt)
	if feedback.FinalAssessment != "" {
		view.FinalAssessment = feedback.FinalAssessment
	}

	categories := make([]CategoryView, 0, len(feedback.CategoryScores))
	for _, c := range feedback.CategoryScores {
		categories = append(categories, CategoryView{
			Name:      c.Name,
			ScoreView: scoreView(c.Score),
			Comment:   c.Comment,
		})
	}
	view.Categories = categories
	view.Strengths = listView(feedback.Strengths, NoStrengths)
	view.AreasForImprovement = listView(feedback.AreasForImprovement, NoImprovementAreas)
	return view
}

func scoreView(score int) ScoreView {
	band := ClassifyScore(score)
	return ScoreView{
		Score:    score,
		Band:     band,
		Style:    band.Style(),
		Progress: progressWidth(score),
	}
}

func listView(items []string, empty string) ListView {
	if len(items) == 0 {
		return ListView{Items: []string{}, Empty: empty}
	}
	out := make([]string, len(items))
	copy(out, items)
	return ListView{Recorded: true, Items: out}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return NoDate
	}
	return t.Format(feedbackDateLayout)
}
