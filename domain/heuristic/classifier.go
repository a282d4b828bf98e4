// Package heuristic implements the deterministic fallback engines: the
// smart-defaults classifier, the design-compatibility scorer, and the
// prompt-quality analyzer. All engines are pure, deterministic, and
// side-effect-free, and every result carries a confidence in [0,1] plus a
// human-readable reasoning string.
package heuristic

import (
	"fmt"
	"strings"

	"github.com/Nether404/theWebKnot-sub006/domain/wizard"
)

// knownCategoryConfidence is the fixed confidence for any category found
// in the defaults table. Unrecognized categories score 0.
const knownCategoryConfidence = 0.85

// DefaultsInput feeds the smart-defaults classifier.
type DefaultsInput struct {
	// Description is the free-text project description.
	Description string `json:"description"`

	// Category is the declared project category, may be empty.
	Category string `json:"category,omitempty"`

	// Current is the selection state as it stands. Fields already set
	// here are never overwritten by the classifier.
	Current wizard.Selection `json:"current,omitempty"`
}

// DefaultsResult is the classifier output: the subset of fields that are
// currently unset, filled from the category defaults.
type DefaultsResult struct {
	// Defaults holds only the recommended values for unset fields.
	Defaults wizard.Selection `json:"defaults"`

	// Applied reports whether a known category matched. When false the
	// defaults bundle is empty.
	Applied bool `json:"applied"`

	// Confidence is fixed per known category, 0 otherwise.
	Confidence float64 `json:"confidence"`

	// Reasoning explains the classification in plain language.
	Reasoning string `json:"reasoning"`
}

// categoryDefaults is the fixed table of category defaults.
type categoryDefaults struct {
	style         string
	theme         string
	components    int
	animation     string
	functionality []string
	keywords      []string
}

var defaultsTable = map[string]categoryDefaults{
	wizard.TypePortfolio: {
		style:         wizard.StyleMinimalist,
		theme:         wizard.ThemeMonochrome,
		components:    5,
		animation:     wizard.AnimationSubtle,
		functionality: []string{"gallery", "contact-form"},
		keywords:      []string{"portfolio", "showcase", "my work", "resume", "cv"},
	},
	wizard.TypeEcommerce: {
		style:         wizard.StyleModern,
		theme:         wizard.ThemeOcean,
		components:    8,
		animation:     wizard.AnimationModerate,
		functionality: []string{"cart", "payments", "product-catalog"},
		keywords:      []string{"shop", "store", "sell", "ecommerce", "e-commerce", "products"},
	},
	wizard.TypeBlog: {
		style:         wizard.StyleElegant,
		theme:         wizard.ThemePastel,
		components:    4,
		animation:     wizard.AnimationSubtle,
		functionality: []string{"comments", "search", "rss"},
		keywords:      []string{"blog", "articles", "writing", "posts"},
	},
	wizard.TypeLanding: {
		style:         wizard.StyleBold,
		theme:         wizard.ThemeSunset,
		components:    3,
		animation:     wizard.AnimationModerate,
		functionality: []string{"newsletter", "cta"},
		keywords:      []string{"landing", "launch", "waitlist", "signup page"},
	},
	wizard.TypeSaaS: {
		style:         wizard.StyleModern,
		theme:         wizard.ThemeMidnight,
		components:    7,
		animation:     wizard.AnimationSubtle,
		functionality: []string{"auth", "dashboard", "billing"},
		keywords:      []string{"saas", "dashboard", "subscription", "app", "platform"},
	},
	wizard.TypeRestaurant: {
		style:         wizard.StylePlayful,
		theme:         wizard.ThemeForest,
		components:    5,
		animation:     wizard.AnimationSubtle,
		functionality: []string{"menu", "reservations", "map"},
		keywords:      []string{"restaurant", "menu", "cafe", "food", "dining"},
	},
	wizard.TypeNonprofit: {
		style:         wizard.StyleCorporate,
		theme:         wizard.ThemeForest,
		components:    6,
		animation:     wizard.AnimationNone,
		functionality: []string{"donations", "volunteer-form", "newsletter"},
		keywords:      []string{"nonprofit", "charity", "donate", "volunteer", "cause"},
	},
}

// ClassifyDefaults maps a description plus a declared category to a
// bundle of recommended design attributes. When neither the category nor
// the description keywords match a known category, it returns an empty
// bundle with Applied=false and confidence 0 rather than guessing.
func ClassifyDefaults(in DefaultsInput) DefaultsResult {
	category, defaults, ok := matchCategory(in.Category, in.Description)
	if !ok {
		return DefaultsResult{
			Applied:   false,
			Reasoning: fmt.Sprintf("no defaults known for category %q; nothing applied", in.Category),
		}
	}

	out := wizard.Selection{}
	filled := []string{}
	if in.Current.ProjectType == "" {
		out.ProjectType = category
		filled = append(filled, "projectType")
	}
	if in.Current.DesignStyle == "" {
		out.DesignStyle = defaults.style
		filled = append(filled, "designStyle")
	}
	if in.Current.ColorTheme == "" {
		out.ColorTheme = defaults.theme
		filled = append(filled, "colorTheme")
	}
	if in.Current.ComponentCount == 0 {
		out.ComponentCount = defaults.components
		filled = append(filled, "componentCount")
	}
	if in.Current.AnimationLevel == "" {
		out.AnimationLevel = defaults.animation
		filled = append(filled, "animationLevel")
	}
	if len(in.Current.Functionality) == 0 {
		out.Functionality = append([]string(nil), defaults.functionality...)
		filled = append(filled, "functionality")
	}

	reasoning := fmt.Sprintf(
		"%s projects typically pair a %s style with the %s theme; applied defaults for %s",
		category, defaults.style, defaults.theme, strings.Join(filled, ", "))
	if len(filled) == 0 {
		reasoning = fmt.Sprintf("%s recognized, but every field is already set; nothing applied", category)
	}

	return DefaultsResult{
		Defaults:   out,
		Applied:    true,
		Confidence: knownCategoryConfidence,
		Reasoning:  reasoning,
	}
}

// matchCategory resolves the declared category first, then falls back to
// keyword matching over the description.
func matchCategory(category, description string) (string, categoryDefaults, bool) {
	if d, ok := defaultsTable[category]; ok {
		return category, d, true
	}
	// Declared categories are matched case-insensitively.
	for name, d := range defaultsTable {
		if strings.EqualFold(name, category) {
			return name, d, true
		}
	}

	desc := strings.ToLower(description)
	if desc == "" {
		return "", categoryDefaults{}, false
	}
	// Keyword order follows the fixed table's iteration independence:
	// scan categories in a stable order so ties resolve deterministically.
	for _, name := range []string{
		wizard.TypePortfolio, wizard.TypeEcommerce, wizard.TypeBlog,
		wizard.TypeLanding, wizard.TypeSaaS, wizard.TypeRestaurant,
		wizard.TypeNonprofit,
	} {
		d := defaultsTable[name]
		for _, kw := range d.keywords {
			if strings.Contains(desc, kw) {
				return name, d, true
			}
		}
	}
	return "", categoryDefaults{}, false
}
