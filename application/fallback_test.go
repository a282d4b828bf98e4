package application

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Nether404/theWebKnot-sub006/domain/heuristic"
	"github.com/Nether404/theWebKnot-sub006/domain/request"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

func TestFallbackRouter_Analysis(t *testing.T) {
	t.Parallel()

	var r fallbackRouter
	raw, ferr := r.Resolve(request.Request{
		Operation: request.OpAnalysis,
		Selection: &wizard.Selection{Description: "a blog for my travel writing"},
	})
	if ferr != nil {
		t.Fatalf("Resolve() error = %v", ferr)
	}

	var got heuristic.DefaultsResult
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Applied {
		t.Error("Applied = false, want keyword match on blog")
	}
	if got.Defaults.ProjectType != wizard.TypeBlog {
		t.Errorf("ProjectType = %q, want %q", got.Defaults.ProjectType, wizard.TypeBlog)
	}
}

func TestFallbackRouter_Suggestions(t *testing.T) {
	t.Parallel()

	var r fallbackRouter
	raw, ferr := r.Resolve(request.Request{
		Operation: request.OpSuggestions,
		Selection: &wizard.Selection{
			ProjectType:    wizard.TypePortfolio,
			DesignStyle:    wizard.StyleMinimalist,
			ColorTheme:     wizard.ThemeMonochrome,
			ComponentCount: 5,
			AnimationLevel: wizard.AnimationSubtle,
		},
	})
	if ferr != nil {
		t.Fatalf("Resolve() error = %v", ferr)
	}

	var got heuristic.HarmonyReport
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Score < 0 || got.Score > 100 {
		t.Errorf("Score = %d, want within [0,100]", got.Score)
	}
	if got.Band == "" {
		t.Error("Band should be set")
	}
}

func TestFallbackRouter_Enhancement(t *testing.T) {
	t.Parallel()

	var r fallbackRouter
	raw, ferr := r.Resolve(request.Request{
		Operation: request.OpEnhancement,
		Prompt:    "make me a website",
	})
	if ferr != nil {
		t.Fatalf("Resolve() error = %v", ferr)
	}

	var got Enhancement
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Enhanced == "" {
		t.Error("Enhanced should carry the rewritten prompt")
	}
	if !strings.Contains(got.Enhanced, "make me a website") {
		t.Errorf("Enhanced %q should retain the original text", got.Enhanced)
	}
}

func TestFallbackRouter_Chat(t *testing.T) {
	t.Parallel()

	var r fallbackRouter
	raw, ferr := r.Resolve(request.Request{
		Operation: request.OpChat,
		Prompt:    "what should my site look like",
	})
	if ferr != nil {
		t.Fatalf("Resolve() error = %v", ferr)
	}

	var got ChatReply
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(got.Reply, "offline") {
		t.Errorf("Reply %q should say the assistant is offline", got.Reply)
	}
	if got.Reasoning == "" {
		t.Error("Reasoning should be set")
	}
}

func TestFallbackRouter_UnknownOperation(t *testing.T) {
	t.Parallel()

	var r fallbackRouter
	_, ferr := r.Resolve(request.Request{Operation: "translate"})
	if ferr == nil {
		t.Fatal("Resolve() should reject unknown operations")
	}
	if ferr.Kind != request.ErrInvalidInput {
		t.Errorf("Kind = %v, want INVALID_INPUT", ferr.Kind)
	}
}

func TestSafeCall_RecoversPanic(t *testing.T) {
	t.Parallel()

	got := safeCall("boom", func(string) int {
		panic("engine bug")
	}, 42, "input")
	if got != 42 {
		t.Errorf("safeCall() = %d, want the neutral value 42", got)
	}
}

func TestSafeCall_PassesThroughResult(t *testing.T) {
	t.Parallel()

	got := safeCall("len", func(s string) int { return len(s) }, 0, "four")
	if got != 4 {
		t.Errorf("safeCall() = %d, want 4", got)
	}
}
