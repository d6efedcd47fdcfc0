package presenter

import "testing"

func TestClassifyScoreBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Band
	}{
		{100, BandHigh},
		{80, BandHigh},
		{79, BandMid},
		{60, BandMid},
		{59, BandLow},
		{0, BandLow},
		{-5, BandLow},
	}
	for _, tc := range cases {
		if got := ClassifyScore(tc.score); got != tc.want {
			t.Fatalf("ClassifyScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestBandStyle(t *testing.T) {
	if s := BandHigh.Style(); s.Text != "text-success-100" || s.Progress != "bg-success-100" {
		t.Fatalf("unexpected high style: %+v", s)
	}
	if s := BandMid.Style(); s.Text != "text-primary-200" || s.Progress != "bg-primary-200" {
		t.Fatalf("unexpected mid style: %+v", s)
	}
	if s := BandLow.Style(); s.Text != "text-destructive-100" || s.Progress != "bg-destructive-100" {
		t.Fatalf("unexpected low style: %+v", s)
	}
}
