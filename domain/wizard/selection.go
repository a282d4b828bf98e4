// Package wizard defines the project selection snapshot the wizard
// accumulates and the fixed vocabularies it draws from.
package wizard

// Selection is the current state of a user's project configuration.
// Zero values mean "not chosen yet"; the classifier must never overwrite
// a field that is already set.
type Selection struct {
	// ProjectType is the declared category (e.g. "Portfolio").
	ProjectType string `json:"projectType,omitempty"`

	// Description is the free-text project description.
	Description string `json:"description,omitempty"`

	// DesignStyle is the visual style (e.g. "minimalist").
	DesignStyle string `json:"designStyle,omitempty"`

	// ColorTheme is the chosen palette (e.g. "monochrome").
	ColorTheme string `json:"colorTheme,omitempty"`

	// ComponentCount is the number of page components selected.
	ComponentCount int `json:"componentCount,omitempty"`

	// AnimationLevel is one of "none", "subtle", "moderate", "rich".
	AnimationLevel string `json:"animationLevel,omitempty"`

	// Functionality lists feature tags (e.g. "contact-form", "payments").
	Functionality []string `json:"functionality,omitempty"`
}

// HasFunctionality reports whether the selection carries the given tag.
func (s Selection) HasFunctionality(tag string) bool {
	for _, f := range s.Functionality {
		if f == tag {
			return true
		}
	}
	return false
}

// Known project categories.
const (
	TypePortfolio  = "Portfolio"
	TypeEcommerce  = "E-commerce"
	TypeBlog       = "Blog"
	TypeLanding    = "Landing Page"
	TypeSaaS       = "SaaS"
	TypeRestaurant = "Restaurant"
	TypeNonprofit  = "Nonprofit"
)

// Known design styles.
const (
	StyleMinimalist = "minimalist"
	StyleModern     = "modern"
	StylePlayful    = "playful"
	StyleCorporate  = "corporate"
	StyleBold       = "bold"
	StyleElegant    = "elegant"
)

// Known color themes.
const (
	ThemeMonochrome = "monochrome"
	ThemeOcean      = "ocean"
	ThemeSunset     = "sunset"
	ThemeForest     = "forest"
	ThemeMidnight   = "midnight"
	ThemeNeon       = "neon"
	ThemePastel     = "pastel"
)

// Animation levels.
const (
	AnimationNone     = "none"
	AnimationSubtle   = "subtle"
	AnimationModerate = "moderate"
	AnimationRich     = "rich"
)
