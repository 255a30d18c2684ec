// Package render turns a widget configuration and its approved testimonials
// into a self-contained HTML fragment. Rendering is pure string construction:
// deterministic for identical inputs, no mutation, no I/O.
package render

import (
	"fmt"
	"strings"

	"github.com/jaykalam/testimonialstack/internal/widget"
)

// WidgetClass is the structural class every embed fragment carries. The
// per-widget scope class is WidgetClass + "--" + widget id.
const WidgetClass = "testimonialstack-widget"

const brandingHTML = `<div class="testimonialstack-branding">Powered by TestimonialStack</div>`

// Widget renders the complete embed fragment for one widget: the scoped style
// block followed by the layout markup, wrapped in the scoping container.
func Widget(cfg widget.Config, items []widget.Testimonial) string {
	s := cfg.Settings.Resolve()
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s %s--%s">`, WidgetClass, WidgetClass, cfg.ID)
	b.WriteString(Styles(cfg.ID, s))
	b.WriteString(layoutHTML(widget.ParseLayout(cfg.Layout), items, s))
	b.WriteString(`</div>`)
	return b.String()
}

// Layout renders just the layout markup for a widget, without the scoping
// container or style block.
func Layout(cfg widget.Config, items []widget.Testimonial) string {
	return layoutHTML(widget.ParseLayout(cfg.Layout), items, cfg.Settings.Resolve())
}

func layoutHTML(l widget.Layout, items []widget.Testimonial, s widget.Resolved) string {
	switch l {
	case widget.LayoutGrid:
		return grid(items, s)
	case widget.LayoutCarousel:
		return carousel(items, s)
	case widget.LayoutSpotlight:
		return spotlight(items, s)
	case widget.LayoutWall:
		return wall(items, s)
	case widget.LayoutBadge:
		return badge(items, s)
	}
	return grid(items, s)
}

// grid lays out up to MaxTestimonials cards in input order.
func grid(items []widget.Testimonial, s widget.Resolved) string {
	var b strings.Builder
	b.WriteString(`<div class="testimonialstack-grid">`)
	for _, t := range clip(items, s.MaxTestimonials) {
		b.WriteString(card(t, s, false))
	}
	b.WriteString(`</div>`)
	if s.ShowBranding {
		b.WriteString(brandingHTML)
	}
	return b.String()
}

// carousel shows the first testimonial at card-large size with a count
// indicator when more are available.
func carousel(items []widget.Testimonial, s widget.Resolved) string {
	if len(items) == 0 {
		return `<p>No testimonials available</p>`
	}
	var b strings.Builder
	b.WriteString(`<div class="testimonialstack-carousel">`)
	b.WriteString(card(items[0], s, true))
	if len(items) > 1 {
		fmt.Fprintf(&b, `<p class="testimonialstack-carousel-indicator">%d testimonials available</p>`, len(items))
	}
	b.WriteString(`</div>`)
	if s.ShowBranding {
		b.WriteString(brandingHTML)
	}
	return b.String()
}

// spotlight features the first testimonial alone.
func spotlight(items []widget.Testimonial, s widget.Resolved) string {
	if len(items) == 0 {
		return `<p>No testimonials available</p>`
	}
	var b strings.Builder
	b.WriteString(`<div class="testimonialstack-spotlight">`)
	b.WriteString(card(items[0], s, true))
	b.WriteString(`</div>`)
	if s.ShowBranding {
		b.WriteString(brandingHTML)
	}
	return b.String()
}

// wall lays out compact tinted items, author plus content clipped to 100
// characters.
func wall(items []widget.Testimonial, s widget.Resolved) string {
	tint := hexToRGBA(s.AccentColor, 0.1)
	var b strings.Builder
	b.WriteString(`<div class="testimonialstack-wall">`)
	for _, t := range clip(items, s.MaxTestimonials) {
		fmt.Fprintf(&b, `<div class="testimonialstack-wall-item" style="background-color: %s; border-left: 3px solid %s;">`, tint, s.AccentColor)
		fmt.Fprintf(&b, `<p class="testimonialstack-wall-author">%s</p>`, escapeHTML(t.AuthorName))
		fmt.Fprintf(&b, `<p class="testimonialstack-wall-content">%s</p>`, escapeHTML(truncate(t.Content, 100)))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	if s.ShowBranding {
		b.WriteString(brandingHTML)
	}
	return b.String()
}

// badge is the smallest variant: one testimonial, content clipped to 80
// characters, empty output for an empty list.
func badge(items []widget.Testimonial, s widget.Resolved) string {
	if len(items) == 0 {
		return ""
	}
	t := items[0]
	var b strings.Builder
	b.WriteString(`<div class="testimonialstack-badge">`)
	if s.ShowAvatar {
		fmt.Fprintf(&b, `<div class="testimonialstack-badge-avatar" style="background-color: %s;">%s</div>`, s.AccentColor, initial(t.AuthorName))
	}
	b.WriteString(`<div class="testimonialstack-badge-content">`)
	fmt.Fprintf(&b, `<p class="testimonialstack-badge-author">%s</p>`, escapeHTML(t.AuthorName))
	if s.ShowRating && t.Rating != 0 {
		fmt.Fprintf(&b, `<div class="testimonialstack-rating">%s</div>`, stars(t.Rating, s.AccentColor))
	}
	fmt.Fprintf(&b, `<p class="testimonialstack-badge-text">%s</p>`, escapeHTML(truncate(t.Content, 80)))
	b.WriteString(`</div></div>`)
	return b.String()
}

func clip(items []widget.Testimonial, max int) []widget.Testimonial {
	if len(items) > max {
		return items[:max]
	}
	return items
}
