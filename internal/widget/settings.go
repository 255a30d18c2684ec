package widget

// Render-time defaults. These mirror the defaults the dashboard seeds new
// widgets with, so a widget saved before a settings field existed still
// renders the same as a freshly created one.
const (
	DefaultBackgroundColor  = "#ffffff"
	DefaultTextColor        = "#1f2937"
	DefaultAccentColor      = "#3b82f6"
	DefaultBorderRadius     = 8
	DefaultFontFamily       = "system-ui, -apple-system, sans-serif"
	DefaultMaxTestimonials  = 10
	DefaultAutoplayInterval = 5000
)

// Settings is the wire form of a widget's settings bundle. Every field is
// optional; pointers distinguish "absent" from an explicit zero value.
type Settings struct {
	BackgroundColor  string `json:"backgroundColor,omitempty"`
	TextColor        string `json:"textColor,omitempty"`
	AccentColor      string `json:"accentColor,omitempty"`
	BorderRadius     *int   `json:"borderRadius,omitempty"`
	ShowAvatar       *bool  `json:"showAvatar,omitempty"`
	ShowRating       *bool  `json:"showRating,omitempty"`
	ShowDate         *bool  `json:"showDate,omitempty"`
	ShowCompany      *bool  `json:"showCompany,omitempty"`
	FontFamily       string `json:"fontFamily,omitempty"`
	MaxTestimonials  *int   `json:"maxTestimonials,omitempty"`
	Autoplay         *bool  `json:"autoplay,omitempty"`
	AutoplayInterval *int   `json:"autoplayInterval,omitempty"`
	ShowBranding     *bool  `json:"showBranding,omitempty"`
}

// Resolved is a settings bundle with every default applied. Renderers and the
// style generator only ever see this form.
type Resolved struct {
	BackgroundColor  string
	TextColor        string
	AccentColor      string
	BorderRadius     int
	ShowAvatar       bool
	ShowRating       bool
	ShowDate         bool
	ShowCompany      bool
	FontFamily       string
	MaxTestimonials  int
	Autoplay         bool
	AutoplayInterval int
	ShowBranding     bool
}

// Resolve applies render-time defaults to every absent field. Missing or
// malformed settings never surface as errors.
func (s Settings) Resolve() Resolved {
	return Resolved{
		BackgroundColor:  stringOr(s.BackgroundColor, DefaultBackgroundColor),
		TextColor:        stringOr(s.TextColor, DefaultTextColor),
		AccentColor:      stringOr(s.AccentColor, DefaultAccentColor),
		BorderRadius:     intOr(s.BorderRadius, DefaultBorderRadius),
		ShowAvatar:       boolOr(s.ShowAvatar, true),
		ShowRating:       boolOr(s.ShowRating, true),
		ShowDate:         boolOr(s.ShowDate, false),
		ShowCompany:      boolOr(s.ShowCompany, true),
		FontFamily:       stringOr(s.FontFamily, DefaultFontFamily),
		MaxTestimonials:  intOr(s.MaxTestimonials, DefaultMaxTestimonials),
		Autoplay:         boolOr(s.Autoplay, true),
		AutoplayInterval: intOr(s.AutoplayInterval, DefaultAutoplayInterval),
		ShowBranding:     boolOr(s.ShowBranding, true),
	}
}

func stringOr(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func intOr(v *int, d int) int {
	if v == nil || *v <= 0 {
		return d
	}
	return *v
}

func boolOr(v *bool, d bool) bool {
	if v == nil {
		return d
	}
	return *v
}
