package heuristic_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Nether404/theWebKnot-sub006/domain/heuristic"
	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

func TestClassifyDefaults_KnownCategory(t *testing.T) {
	t.Parallel()

	result := heuristic.ClassifyDefaults(heuristic.DefaultsInput{
		Description: "I want to build a portfolio to showcase my design work",
		Category:    wizard.TypePortfolio,
	})

	if !result.Applied {
		t.Fatal("Applied = false, want true for a known category")
	}
	if result.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85", result.Confidence)
	}
	if result.Defaults.ProjectType != wizard.TypePortfolio {
		t.Errorf("ProjectType = %q, want %q", result.Defaults.ProjectType, wizard.TypePortfolio)
	}
	if result.Defaults.DesignStyle != wizard.StyleMinimalist {
		t.Errorf("DesignStyle = %q, want %q", result.Defaults.DesignStyle, wizard.StyleMinimalist)
	}
	if !strings.Contains(result.Reasoning, "Portfolio") || !strings.Contains(result.Reasoning, "minimalist") {
		t.Errorf("Reasoning = %q, want it to mention Portfolio and minimalist", result.Reasoning)
	}
}

func TestClassifyDefaults_UnknownCategory(t *testing.T) {
	t.Parallel()

	result := heuristic.ClassifyDefaults(heuristic.DefaultsInput{
		Description: "something entirely unclassifiable",
		Category:    "Spaceship",
	})

	if result.Applied {
		t.Error("Applied = true, want false for an unknown category")
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
	if !reflect.DeepEqual(result.Defaults, wizard.Selection{}) {
		t.Errorf("Defaults = %+v, want empty bundle", result.Defaults)
	}
	if result.Reasoning == "" {
		t.Error("Reasoning must never be empty, even at confidence 0")
	}
}

func TestClassifyDefaults_KeywordMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		description string
		want        string
	}{
		{"an online shop where I sell ceramics", wizard.TypeEcommerce},
		{"a blog about hiking in the alps", wizard.TypeBlog},
		{"landing page for our product launch", wizard.TypeLanding},
		{"a restaurant site with our menu", wizard.TypeRestaurant},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			result := heuristic.ClassifyDefaults(heuristic.DefaultsInput{Description: tt.description})
			if !result.Applied {
				t.Fatalf("Applied = false for %q", tt.description)
			}
			if result.Defaults.ProjectType != tt.want {
				t.Errorf("ProjectType = %q, want %q", result.Defaults.ProjectType, tt.want)
			}
		})
	}
}

func TestClassifyDefaults_NeverOverwritesSetFields(t *testing.T) {
	t.Parallel()

	result := heuristic.ClassifyDefaults(heuristic.DefaultsInput{
		Category: wizard.TypePortfolio,
		Current: wizard.Selection{
			DesignStyle: wizard.StyleBold,
			ColorTheme:  wizard.ThemeNeon,
		},
	})

	if !result.Applied {
		t.Fatal("Applied = false, want true")
	}
	if result.Defaults.DesignStyle != "" {
		t.Errorf("DesignStyle = %q, want empty: caller already set it", result.Defaults.DesignStyle)
	}
	if result.Defaults.ColorTheme != "" {
		t.Errorf("ColorTheme = %q, want empty: caller already set it", result.Defaults.ColorTheme)
	}
	if result.Defaults.ComponentCount == 0 {
		t.Error("ComponentCount should be filled: caller left it unset")
	}
}

func TestClassifyDefaults_AllFieldsAlreadySet(t *testing.T) {
	t.Parallel()

	result := heuristic.ClassifyDefaults(heuristic.DefaultsInput{
		Category: wizard.TypeBlog,
		Current: wizard.Selection{
			ProjectType:    wizard.TypeBlog,
			DesignStyle:    wizard.StyleElegant,
			ColorTheme:     wizard.ThemePastel,
			ComponentCount: 4,
			AnimationLevel: wizard.AnimationSubtle,
			Functionality:  []string{"comments"},
		},
	})

	if !result.Applied {
		t.Fatal("Applied = false, want true: category is known")
	}
	if result.Defaults.ProjectType != "" || result.Defaults.DesignStyle != "" {
		t.Errorf("Defaults = %+v, want empty bundle when everything is set", result.Defaults)
	}
}

func TestClassifyDefaults_EmptyInput(t *testing.T) {
	t.Parallel()

	result := heuristic.ClassifyDefaults(heuristic.DefaultsInput{})
	if result.Applied {
		t.Error("Applied = true, want false for empty input")
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", result.Confidence)
	}
}
