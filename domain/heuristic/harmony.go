package heuristic

import (
	"fmt"

	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// Severity grades an issue or warning.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Issue describes one failed compatibility check.
type Issue struct {
	// Severity grades the issue.
	Severity Severity `json:"severity"`

	// Explanation says what clashes and why it matters.
	Explanation string `json:"explanation"`

	// Fields lists the affected selection fields.
	Fields []string `json:"fields"`

	// Suggestion is an optional auto-fix description.
	Suggestion string `json:"suggestion,omitempty"`

	// AutoFixable reports whether the suggestion can be applied directly.
	AutoFixable bool `json:"autoFixable,omitempty"`
}

// Harmony bands derived from the score.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

// HarmonyReport is the compatibility scorer output.
type HarmonyReport struct {
	// Score is the 0-100 harmony score.
	Score int `json:"score"`

	// Band is the four-tier qualitative label.
	Band string `json:"band"`

	// Issues are hard conflicts.
	Issues []Issue `json:"issues"`

	// Warnings are softer concerns (medium or low severity only).
	Warnings []Issue `json:"warnings"`

	// Confidence is the engine's confidence in the assessment.
	Confidence float64 `json:"confidence"`

	// Reasoning summarizes the assessment.
	Reasoning string `json:"reasoning"`
}

// Per-severity penalties for issues and warnings.
var (
	issuePenalty   = map[Severity]int{SeverityHigh: 20, SeverityMedium: 15, SeverityLow: 10}
	warningPenalty = map[Severity]int{SeverityMedium: 10, SeverityLow: 5}
)

// harmonyConfidence is fixed: the rule set is deterministic, so the
// engine's confidence does not vary with the input.
const harmonyConfidence = 0.8

// CheckHarmony runs the ordered, independent compatibility rules over the
// selection. The score starts at 100 and is reduced by a fixed penalty
// per issue and warning, clamped to [0,100]. The ceiling clamp matters:
// the score may never exceed 100, keeping the "excellent" band honest.
func CheckHarmony(sel wizard.Selection) HarmonyReport {
	var issues, warnings []Issue

	for _, rule := range harmonyRules {
		if issue, warning, ok := rule(sel); ok {
			if warning {
				warnings = append(warnings, issue)
			} else {
				issues = append(issues, issue)
			}
		}
	}

	score := 100
	for _, i := range issues {
		score -= issuePenalty[i.Severity]
	}
	for _, w := range warnings {
		score -= warningPenalty[w.Severity]
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return HarmonyReport{
		Score:      score,
		Band:       harmonyBand(score),
		Issues:     issues,
		Warnings:   warnings,
		Confidence: harmonyConfidence,
		Reasoning: fmt.Sprintf("%d issue(s) and %d warning(s) across the selection; harmony %d/100 (%s)",
			len(issues), len(warnings), score, harmonyBand(score)),
	}
}

// harmonyBand maps a score to its qualitative label.
func harmonyBand(score int) string {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 75:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

// harmonyRule checks one rule. The bool pair is (matched as warning,
// rule fired).
type harmonyRule func(wizard.Selection) (Issue, bool, bool)

// harmonyRules is the ordered rule set. Each rule is independent and
// produces at most one issue or warning.
var harmonyRules = []harmonyRule{
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.DesignStyle == wizard.StyleMinimalist && s.ComponentCount > 7 {
			return Issue{
				Severity:    SeverityHigh,
				Explanation: "a minimalist style loses its clarity beyond 7 components",
				Fields:      []string{"designStyle", "componentCount"},
				Suggestion:  "reduce the component count to 7 or fewer",
				AutoFixable: true,
			}, false, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.DesignStyle == wizard.StyleCorporate && s.AnimationLevel == wizard.AnimationRich {
			return Issue{
				Severity:    SeverityMedium,
				Explanation: "rich animation undercuts the restraint expected of a corporate style",
				Fields:      []string{"designStyle", "animationLevel"},
				Suggestion:  "drop the animation level to subtle",
				AutoFixable: true,
			}, false, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.DesignStyle == wizard.StyleElegant && s.ColorTheme == wizard.ThemeNeon {
			return Issue{
				Severity:    SeverityMedium,
				Explanation: "a neon palette clashes with an elegant style",
				Fields:      []string{"designStyle", "colorTheme"},
				Suggestion:  "switch to the monochrome or pastel theme",
				AutoFixable: false,
			}, false, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.ProjectType == wizard.TypeEcommerce && !s.HasFunctionality("payments") {
			return Issue{
				Severity:    SeverityMedium,
				Explanation: "an e-commerce project without payment functionality cannot sell",
				Fields:      []string{"projectType", "functionality"},
				Suggestion:  "add the payments functionality",
				AutoFixable: true,
			}, false, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.DesignStyle == wizard.StylePlayful && s.ColorTheme == wizard.ThemeMidnight {
			return Issue{
				Severity:    SeverityLow,
				Explanation: "a playful style reads muted on the midnight theme",
				Fields:      []string{"designStyle", "colorTheme"},
			}, true, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.ComponentCount == 0 {
			return Issue{
				Severity:    SeverityLow,
				Explanation: "no components selected yet; the page will render empty",
				Fields:      []string{"componentCount"},
			}, true, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if s.ProjectType == wizard.TypeBlog && !s.HasFunctionality("comments") {
			return Issue{
				Severity:    SeverityLow,
				Explanation: "blogs usually want a comments section for engagement",
				Fields:      []string{"projectType", "functionality"},
			}, true, true
		}
		return Issue{}, false, false
	},
	func(s wizard.Selection) (Issue, bool, bool) {
		if len(s.Functionality) > 10 {
			return Issue{
				Severity:    SeverityMedium,
				Explanation: "more than 10 functionality tags dilutes the project focus",
				Fields:      []string{"functionality"},
			}, true, true
		}
		return Issue{}, false, false
	},
}
