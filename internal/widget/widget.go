package widget

// Layout is the closed set of widget layout variants. Unknown wire values fold
// into LayoutGrid at parse time, so renderers can dispatch exhaustively.
type Layout int

const (
	LayoutGrid Layout = iota
	LayoutCarousel
	LayoutSpotlight
	LayoutWall
	LayoutBadge
)

// ParseLayout maps a wire layout name to a Layout. Anything unrecognized,
// including the empty string, is treated as the grid layout.
func ParseLayout(s string) Layout {
	switch s {
	case "carousel":
		return LayoutCarousel
	case "spotlight":
		return LayoutSpotlight
	case "wall":
		return LayoutWall
	case "badge":
		return LayoutBadge
	default:
		return LayoutGrid
	}
}

// String returns the wire name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutCarousel:
		return "carousel"
	case LayoutSpotlight:
		return "spotlight"
	case LayoutWall:
		return "wall"
	case LayoutBadge:
		return "badge"
	default:
		return "grid"
	}
}

// Config is a widget configuration as delivered by the render endpoint.
type Config struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Layout   string   `json:"layout"`
	Settings Settings `json:"settings"`
}

// Testimonial is a single approved testimonial record. Only approved records
// are ever delivered by the backend; this package does not re-validate status.
type Testimonial struct {
	ID              string `json:"id,omitempty"`
	AuthorName      string `json:"author_name"`
	AuthorTitle     string `json:"author_title,omitempty"`
	AuthorCompany   string `json:"author_company,omitempty"`
	AuthorAvatarURL string `json:"author_avatar_url,omitempty"`
	Content         string `json:"content"`
	Rating          int    `json:"rating,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// RenderPayload is the render endpoint's response body. Widget is nil when the
// backend knows no active widget for the requested id.
type RenderPayload struct {
	Widget       *Config       `json:"widget"`
	Testimonials []Testimonial `json:"testimonials"`
}
