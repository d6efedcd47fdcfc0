package presenter

import (
	"testing"
	"time"

	"github.com/fadilmartias/mock-interview/internal/model"
)

func TestPresentNilFeedback(t *testing.T) {
	view := Present(nil)
	if view.Overall.Score != 0 || view.Overall.Band != BandLow {
		t.Fatalf("unexpected overall: %+v", view.Overall)
	}
	if view.FinalAssessment != NoAssessment {
		t.Fatalf("expected default assessment, got %q", view.FinalAssessment)
	}
	if view.InterviewDate != NoDate {
		t.Fatalf("expected %q, got %q", NoDate, view.InterviewDate)
	}
	if view.Strengths.Recorded || view.Strengths.Empty != NoStrengths || len(view.Strengths.Items) != 0 {
		t.Fatalf("unexpected strengths: %+v", view.Strengths)
	}
	if view.AreasForImprovement.Recorded || view.AreasForImprovement.Empty != NoImprovementAreas {
		t.Fatalf("unexpected improvements: %+v", view.AreasForImprovement)
	}
	if view.Categories == nil || len(view.Categories) != 0 {
		t.Fatalf("expected empty categories, got %+v", view.Categories)
	}
}

func TestPresentFeedback(t *testing.T) {
	created := time.Date(2025, 3, 7, 15, 4, 0, 0, time.UTC)
	feedback := &model.Feedback{
		TotalScore:      82,
		FinalAssessment: "Solid overall.",
		CategoryScores: []model.CategoryScore{
			{Name: "Communication Skills", Score: 79, Comment: "Clear."},
			{Name: "Technical Knowledge", Score: 59, Comment: "Gaps in Go."},
			{Name: "Problem Solving", Score: 120, Comment: "Out of range."},
		},
		Strengths: []string{"Structured answers"},
		CreatedAt: created,
	}

	view := Present(feedback)
	if view.Overall.Score != 82 || view.Overall.Band != BandHigh {
		t.Fatalf("unexpected overall: %+v", view.Overall)
	}
	if view.InterviewDate != "Mar 7, 2025 3:04 PM" {
		t.Fatalf("unexpected date: %q", view.InterviewDate)
	}
	if view.FinalAssessment != "Solid overall." {
		t.Fatalf("unexpected assessment: %q", view.FinalAssessment)
	}
	if len(view.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(view.Categories))
	}
	if view.Categories[0].Name != "Communication Skills" || view.Categories[0].Band != BandMid {
		t.Fatalf("unexpected first category: %+v", view.Categories[0])
	}
	if view.Categories[1].Band != BandLow || view.Categories[1].Style.Progress != "bg-destructive-100" {
		t.Fatalf("unexpected second category: %+v", view.Categories[1])
	}
	if view.Categories[2].Progress != 100 || view.Categories[2].Score != 120 {
		t.Fatalf("expected clamped progress, got %+v", view.Categories[2])
	}
	if !view.Strengths.Recorded || len(view.Strengths.Items) != 1 || view.Strengths.Empty != "" {
		t.Fatalf("unexpected strengths: %+v", view.Strengths)
	}
	if view.AreasForImprovement.Recorded || view.AreasForImprovement.Empty != NoImprovementAreas {
		t.Fatalf("unexpected improvements: %+v", view.AreasForImprovement)
	}
}

func TestPresentDoesNotAliasInput(t *testing.T) {
	feedback := &model.Feedback{Strengths: []string{"a", "b"}}
	view := Present(feedback)
	view.Strengths.Items[0] = "changed"
	if feedback.Strengths[0] != "a" {
		t.Fatalf("input mutated through view: %v", feedback.Strengths)
	}
}
