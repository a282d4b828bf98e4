package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Nether404/theWebKnot-sub006/domain/heuristic"
	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
	"github.com/Nether404/theWebKnot-sub006/infrastructure/logging"
)

// safeCall runs a pure engine function and recovers any panic into the
// neutral output. The engines are deterministic and should never panic,
// but a degraded result beats a crashed process when they do.
func safeCall[I, O any](name string, fn func(I) O, neutral O, in I) (out O) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn().
				Add(logging.Str("engine", name)).
				Add(logging.Str("panic", fmt.Sprint(r))).
				Msg("fallback engine panicked, returning neutral result")
			out = neutral
		}
	}()
	return fn(in)
}

// neutralHarmony is the degraded harmony report: a middling score with no
// findings and zero confidence.
func neutralHarmony() heuristic.HarmonyReport {
	return heuristic.HarmonyReport{
		Score:      75,
		Band:       heuristic.BandGood,
		Issues:     []heuristic.Issue{},
		Warnings:   []heuristic.Issue{},
		Confidence: 0,
		Reasoning:  "compatibility check unavailable",
	}
}

func neutralDefaults() heuristic.DefaultsResult {
	return heuristic.DefaultsResult{
		Applied:    false,
		Confidence: 0,
		Reasoning:  "classification unavailable",
	}
}

func neutralAnalysis() heuristic.PromptAnalysis {
	return heuristic.PromptAnalysis{
		Score:       75,
		Strengths:   []string{},
		Weaknesses:  []string{},
		Suggestions: []heuristic.Suggestion{},
		Confidence:  0,
		Reasoning:   "prompt analysis unavailable",
	}
}

// Enhancement is the fallback payload for the enhancement operation: the
// rewritten prompt plus the analysis that produced it.
type Enhancement struct {
	Enhanced string                   `json:"enhanced"`
	Analysis heuristic.PromptAnalysis `json:"analysis"`
}

// ChatReply is the fallback payload for the chat operation.
type ChatReply struct {
	Reply      string  `json:"reply"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// fallbackRouter maps each operation to its deterministic engine.
type fallbackRouter struct{}

// Resolve produces a fallback result for the request. The returned error
// is nil unless encoding the engine output fails, which would indicate a
// bug rather than a runtime condition.
func (fallbackRouter) Resolve(req request.Request) (json.RawMessage, *request.Error) {
	var payload any

	switch req.Operation {
	case request.OpAnalysis:
		var sel wizard.Selection
		if req.Selection != nil {
			sel = *req.Selection
		}
		payload = safeCall("classifier", heuristic.ClassifyDefaults, neutralDefaults(), heuristic.DefaultsInput{
			Description: req.Description(),
			Category:    sel.ProjectType,
			Current:     sel,
		})

	case request.OpSuggestions:
		var sel wizard.Selection
		if req.Selection != nil {
			sel = *req.Selection
		}
		payload = safeCall("harmony", heuristic.CheckHarmony, neutralHarmony(), sel)

	case request.OpEnhancement:
		analysis := analyzeSafely(req)
		payload = Enhancement{
			Enhanced: safeCall("applyfixes", func(p string) string {
				return heuristic.ApplyFixes(p, analysis)
			}, req.Prompt, req.Prompt),
			Analysis: analysis,
		}

	case request.OpChat:
		payload = composeChatReply(req)

	default:
		return nil, request.NewError(request.ErrInvalidInput, "no fallback engine for operation %q", string(req.Operation))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, request.NewError(request.ErrInvalidResponse, "fallback payload encoding failed: %v", err)
	}
	return raw, nil
}

func analyzeSafely(req request.Request) heuristic.PromptAnalysis {
	return safeCall("prompt", func(p string) heuristic.PromptAnalysis {
		return heuristic.AnalyzePrompt(p, req.Selection)
	}, neutralAnalysis(), req.Prompt)
}

// composeChatReply builds a deterministic assistant reply from the prompt
// analyzer's findings. There is no dedicated chat engine; the reply
// surfaces what the analyzer can say about the user's text.
func composeChatReply(req request.Request) ChatReply {
	analysis := analyzeSafely(req)

	var b strings.Builder
	b.WriteString("The AI assistant is currently unavailable, so here is an offline review of your request.")

	if len(analysis.Strengths) > 0 {
		b.WriteString(" Your description already covers: ")
		b.WriteString(strings.Join(analysis.Strengths, ", "))
		b.WriteString(".")
	}
	if len(analysis.Weaknesses) > 0 {
		b.WriteString(" Worth tightening: ")
		b.WriteString(strings.Join(analysis.Weaknesses, "; "))
		b.WriteString(".")
	}
	for _, s := range analysis.Suggestions {
		b.WriteString(" Suggestion: ")
		b.WriteString(s.Text)
	}
	if len(analysis.Strengths) == 0 && len(analysis.Weaknesses) == 0 && len(analysis.Suggestions) == 0 {
		b.WriteString(" Your request looks clear; please try again once the assistant is back.")
	}

	return ChatReply{
		Reply:      b.String(),
		Confidence: analysis.Confidence,
		Reasoning:  "deterministic reply composed from offline prompt analysis",
	}
}
