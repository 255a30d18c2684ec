package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jaykalam/testimonialstack/internal/widget"
)

// card renders the testimonial card shared by grid, carousel and spotlight.
// large switches the carousel/spotlight sizing.
func card(t widget.Testimonial, s widget.Resolved, large bool) string {
	sizeClass := ""
	if large {
		sizeClass = "-large"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="testimonialstack-card%s" style="border-color: %s; background-color: %s">`,
		sizeClass, s.AccentColor, s.BackgroundColor)

	if s.ShowAvatar {
		sizeStyle := "width: 40px; height: 40px; font-size: 14px;"
		if large {
			sizeStyle = "width: 48px; height: 48px; font-size: 20px;"
		}
		fmt.Fprintf(&b, `<div class="testimonialstack-avatar" style="%s background-color: %s;">%s</div>`,
			sizeStyle, s.AccentColor, initial(t.AuthorName))

		b.WriteString(`<div class="testimonialstack-author-info">`)
		fmt.Fprintf(&b, `<p class="testimonialstack-author-name">%s</p>`, escapeHTML(t.AuthorName))
		if s.ShowCompany && t.AuthorCompany != "" {
			fmt.Fprintf(&b, `<p class="testimonialstack-author-company">%s</p>`, escapeHTML(t.AuthorCompany))
		}
		b.WriteString(`</div>`)
	}

	if s.ShowRating && t.Rating != 0 {
		fmt.Fprintf(&b, `<div class="testimonialstack-rating">%s</div>`, stars(t.Rating, s.AccentColor))
	}

	fmt.Fprintf(&b, `<p class="testimonialstack-content">%s</p>`, escapeHTML(t.Content))

	if s.ShowDate && t.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
			fmt.Fprintf(&b, `<p class="testimonialstack-date">%s</p>`, ts.Format("Jan 2, 2006"))
		}
	}

	b.WriteString(`</div>`)
	return b.String()
}

// stars renders the five-symbol rating row: clamp(rating, 0, 5) filled in the
// accent color, the rest muted.
func stars(rating int, accent string) string {
	filled := rating
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		color := "#ccc"
		if i <= filled {
			color = accent
		}
		fmt.Fprintf(&b, `<span style="color: %s; margin-right: 2px;">★</span>`, color)
	}
	return b.String()
}

// initial returns the upper-cased first letter of the author name for the
// avatar circle.
func initial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}
