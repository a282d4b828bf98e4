package heuristic_test

import (
	"testing"

	"github.com/Nether404/theWebKnot-sub006/domain/heuristic"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// cleanSelection triggers none of the compatibility rules.
func cleanSelection() wizard.Selection {
	return wizard.Selection{
		ProjectType:    wizard.TypePortfolio,
		DesignStyle:    wizard.StyleMinimalist,
		ColorTheme:     wizard.ThemeMonochrome,
		ComponentCount: 5,
		AnimationLevel: wizard.AnimationSubtle,
		Functionality:  []string{"gallery", "contact-form"},
	}
}

func TestCheckHarmony_CleanSelectionScoresExactly100(t *testing.T) {
	t.Parallel()

	report := heuristic.CheckHarmony(cleanSelection())

	if len(report.Issues) != 0 || len(report.Warnings) != 0 {
		t.Fatalf("issues = %v, warnings = %v, want none", report.Issues, report.Warnings)
	}
	if report.Score != 100 {
		t.Errorf("Score = %d, want exactly 100", report.Score)
	}
	if report.Band != heuristic.BandExcellent {
		t.Errorf("Band = %q, want %q", report.Band, heuristic.BandExcellent)
	}
	if report.Reasoning == "" {
		t.Error("Reasoning must not be empty")
	}
}

func TestCheckHarmony_ScoreNeverExceeds100(t *testing.T) {
	t.Parallel()

	// The ceiling clamp is what keeps the "excellent" band meaningful.
	report := heuristic.CheckHarmony(cleanSelection())
	if report.Score > 100 {
		t.Errorf("Score = %d, must never exceed 100", report.Score)
	}
}

func TestCheckHarmony_PenaltiesPerSeverity(t *testing.T) {
	t.Parallel()

	// minimalist + 9 components is a high issue: 100 - 20 = 80.
	sel := cleanSelection()
	sel.ComponentCount = 9

	report := heuristic.CheckHarmony(sel)
	if len(report.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(report.Issues))
	}
	if report.Issues[0].Severity != heuristic.SeverityHigh {
		t.Errorf("Severity = %q, want high", report.Issues[0].Severity)
	}
	if report.Score != 80 {
		t.Errorf("Score = %d, want 80 (100 - 20 for one high issue)", report.Score)
	}
	if report.Band != heuristic.BandGood {
		t.Errorf("Band = %q, want %q", report.Band, heuristic.BandGood)
	}
}

func TestCheckHarmony_MonotoneNonIncreasing(t *testing.T) {
	t.Parallel()

	// Add conflicts one at a time; the score must never go back up.
	sel := cleanSelection()
	prev := heuristic.CheckHarmony(sel).Score

	sel.ComponentCount = 9 // high issue
	s := heuristic.CheckHarmony(sel).Score
	if s > prev {
		t.Errorf("score rose from %d to %d after adding an issue", prev, s)
	}
	prev = s

	sel.ProjectType = wizard.TypeEcommerce // medium issue: no payments
	s = heuristic.CheckHarmony(sel).Score
	if s > prev {
		t.Errorf("score rose from %d to %d after adding an issue", prev, s)
	}
	prev = s

	sel.Functionality = make([]string, 11) // medium warning: too many tags
	s = heuristic.CheckHarmony(sel).Score
	if s > prev {
		t.Errorf("score rose from %d to %d after adding a warning", prev, s)
	}
}

func TestCheckHarmony_FloorClampAtZero(t *testing.T) {
	t.Parallel()

	// Stack every rule the selection can trigger at once.
	sel := wizard.Selection{
		ProjectType:    wizard.TypeEcommerce,
		DesignStyle:    wizard.StyleMinimalist,
		ColorTheme:     wizard.ThemeNeon,
		ComponentCount: 12,
		AnimationLevel: wizard.AnimationRich,
		Functionality:  make([]string, 11),
	}

	report := heuristic.CheckHarmony(sel)
	if report.Score < 0 {
		t.Errorf("Score = %d, must be clamped at 0", report.Score)
	}
	if report.Score > 100 {
		t.Errorf("Score = %d, must not exceed 100", report.Score)
	}
}

func TestCheckHarmony_IssueCarriesFieldsAndSuggestion(t *testing.T) {
	t.Parallel()

	sel := cleanSelection()
	sel.DesignStyle = wizard.StyleCorporate
	sel.AnimationLevel = wizard.AnimationRich

	report := heuristic.CheckHarmony(sel)
	if len(report.Issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(report.Issues))
	}
	issue := report.Issues[0]
	if len(issue.Fields) == 0 {
		t.Error("issue should name the affected fields")
	}
	if !issue.AutoFixable || issue.Suggestion == "" {
		t.Errorf("issue = %+v, want an auto-fixable suggestion", issue)
	}
}

func TestCheckHarmony_Bands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sel  wizard.Selection
		band string
	}{
		{"clean is excellent", cleanSelection(), heuristic.BandExcellent},
		{
			"one high issue is good",
			func() wizard.Selection { s := cleanSelection(); s.ComponentCount = 9; return s }(),
			heuristic.BandGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := heuristic.CheckHarmony(tt.sel)
			if report.Band != tt.band {
				t.Errorf("Band = %q (score %d), want %q", report.Band, report.Score, tt.band)
			}
		})
	}
}

func TestCheckHarmony_ZeroValueSelection(t *testing.T) {
	t.Parallel()

	// Malformed/empty input must produce a report, never a panic.
	report := heuristic.CheckHarmony(wizard.Selection{})
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("Score = %d, want within [0,100]", report.Score)
	}
	if report.Reasoning == "" {
		t.Error("Reasoning must not be empty")
	}
}
