package heuristic

import (
	"fmt"
	"strings"

	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// Suggestion is one improvement the prompt analyzer proposes.
type Suggestion struct {
	// Severity grades how much the gap costs.
	Severity Severity `json:"severity"`

	// Text describes the suggestion.
	Text string `json:"text"`

	// AutoFixable reports whether Replacement can be applied directly.
	AutoFixable bool `json:"autoFixable,omitempty"`

	// Replacement is the text fragment inserted by ApplyFixes.
	Replacement string `json:"replacement,omitempty"`
}

// PromptAnalysis is the prompt-quality analyzer output.
type PromptAnalysis struct {
	// Score is the quality score. Unlike the harmony score it has no
	// ceiling clamp: the strength bonus can push it past 100. The
	// asymmetry with CheckHarmony is deliberate and covered by tests.
	Score int `json:"score"`

	// Strengths lists recognized good practices in the prompt.
	Strengths []string `json:"strengths"`

	// Weaknesses lists flagged problems.
	Weaknesses []string `json:"weaknesses"`

	// Suggestions lists proposed improvements.
	Suggestions []Suggestion `json:"suggestions"`

	// Confidence is the engine's confidence in the assessment.
	Confidence float64 `json:"confidence"`

	// Reasoning summarizes the assessment.
	Reasoning string `json:"reasoning"`
}

// Scoring constants for the analyzer.
const (
	weaknessPenalty  = 5
	strengthBonus    = 3
	strengthBonusCap = 20
	promptConfidence = 0.7
)

var suggestionPenalty = map[Severity]int{SeverityHigh: 15, SeverityMedium: 10, SeverityLow: 5}

// strengthChecks are the recognized strength keywords in check order.
var strengthChecks = []struct {
	name     string
	keywords []string
}{
	{"responsive", []string{"responsive", "mobile-friendly", "adapts to screen"}},
	{"accessible", []string{"accessib", "wcag", "screen reader"}},
	{"performant", []string{"performan", "fast load", "page speed", "optimized"}},
	{"secure", []string{"secur", "encrypt", "https"}},
	{"tested", []string{"test", "quality assurance", "qa "}},
}

// vagueWords trigger the vague-wording weakness.
var vagueWords = []string{"nice", "cool", "awesome", "stuff", "things"}

// AnalyzePrompt runs the ordered, independent prompt checks over the free
// text, optionally informed by the selection snapshot. Score starts at
// 100, loses 5 per weakness and a per-severity penalty per suggestion,
// and gains 3 per strength up to +20; the floor is clamped at 0.
func AnalyzePrompt(prompt string, sel *wizard.Selection) PromptAnalysis {
	text := strings.ToLower(prompt)

	var strengths, weaknesses []string
	var suggestions []Suggestion

	for _, check := range strengthChecks {
		if containsAny(text, check.keywords) {
			strengths = append(strengths, check.name)
		}
	}

	if len(strings.TrimSpace(prompt)) < 40 {
		weaknesses = append(weaknesses, "the prompt is very short and lacks detail")
	}
	if containsAny(text, vagueWords) {
		weaknesses = append(weaknesses, "vague wording (\"nice\", \"cool\", ...) gives the model little to work with")
	}
	if !containsAny(text, []string{"audience", "customer", "visitor", "user"}) {
		weaknesses = append(weaknesses, "no target audience is named")
	}

	if !containsAny(text, []string{"responsive", "mobile"}) {
		suggestions = append(suggestions, Suggestion{
			Severity:    SeverityHigh,
			Text:        "state that the layout must be responsive",
			AutoFixable: true,
			Replacement: "- The layout must adapt responsively across mobile, tablet, and desktop.",
		})
	}
	if !containsAny(text, []string{"accessib", "wcag"}) {
		suggestions = append(suggestions, Suggestion{
			Severity:    SeverityMedium,
			Text:        "ask for accessibility compliance",
			AutoFixable: true,
			Replacement: "- Follow WCAG accessibility guidelines for contrast, focus states, and semantic markup.",
		})
	}
	if mentionsAuth(text, sel) && !containsAny(text, []string{"secur", "encrypt"}) {
		suggestions = append(suggestions, Suggestion{
			Severity:    SeverityHigh,
			Text:        "authentication is involved but security is never mentioned",
			AutoFixable: true,
			Replacement: "- Handle authentication securely: hashed credentials, HTTPS only, and session expiry.",
		})
	}
	if !containsAny(text, []string{"performan", "fast", "speed"}) {
		suggestions = append(suggestions, Suggestion{
			Severity:    SeverityLow,
			Text:        "mention performance expectations",
			AutoFixable: true,
			Replacement: "- Keep page loads fast; optimize images and defer non-critical scripts.",
		})
	}
	if !containsAny(text, []string{"color", "colour", "font", "typograph", "style"}) {
		suggestions = append(suggestions, Suggestion{
			Severity: SeverityMedium,
			Text:     "describe the visual direction (colors, typography, style)",
		})
	}

	score := 100
	score -= weaknessPenalty * len(weaknesses)
	for _, s := range suggestions {
		score -= suggestionPenalty[s.Severity]
	}
	bonus := strengthBonus * len(strengths)
	if bonus > strengthBonusCap {
		bonus = strengthBonusCap
	}
	score += bonus
	if score < 0 {
		score = 0
	}
	// No ceiling clamp here: see the PromptAnalysis.Score doc.

	return PromptAnalysis{
		Score:       score,
		Strengths:   strengths,
		Weaknesses:  weaknesses,
		Suggestions: suggestions,
		Confidence:  promptConfidence,
		Reasoning: fmt.Sprintf("%d strength(s), %d weakness(es), %d suggestion(s); score %d",
			len(strengths), len(weaknesses), len(suggestions), score),
	}
}

// requirementsHeaders are the recognized section headers ApplyFixes
// inserts under, checked case-insensitively against trimmed lines.
var requirementsHeaders = []string{"requirements:", "## requirements", "# requirements"}

// ApplyFixes applies only the auto-fixable suggestions to produce an
// optimized variant of the prompt. Fragments are inserted under an
// existing requirements header if one is present, otherwise a new
// "Requirements:" section is appended.
func ApplyFixes(prompt string, analysis PromptAnalysis) string {
	var fragments []string
	for _, s := range analysis.Suggestions {
		if s.AutoFixable && s.Replacement != "" {
			fragments = append(fragments, s.Replacement)
		}
	}
	if len(fragments) == 0 {
		return prompt
	}

	lines := strings.Split(prompt, "\n")
	for i, line := range lines {
		if isRequirementsHeader(line) {
			out := append([]string{}, lines[:i+1]...)
			out = append(out, fragments...)
			out = append(out, lines[i+1:]...)
			return strings.Join(out, "\n")
		}
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(prompt, "\n"))
	b.WriteString("\n\nRequirements:\n")
	b.WriteString(strings.Join(fragments, "\n"))
	return b.String()
}

func isRequirementsHeader(line string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	for _, h := range requirementsHeaders {
		if trimmed == h {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func mentionsAuth(text string, sel *wizard.Selection) bool {
	if containsAny(text, []string{"auth", "login", "log in", "sign in", "account"}) {
		return true
	}
	return sel != nil && sel.HasFunctionality("auth")
}
