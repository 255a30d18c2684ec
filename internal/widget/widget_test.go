package widget

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Layout
	}{
		{name: "grid", in: "grid", want: LayoutGrid},
		{name: "carousel", in: "carousel", want: LayoutCarousel},
		{name: "spotlight", in: "spotlight", want: LayoutSpotlight},
		{name: "wall", in: "wall", want: LayoutWall},
		{name: "badge", in: "badge", want: LayoutBadge},
		{name: "unknown falls back to grid", in: "zigzag", want: LayoutGrid},
		{name: "empty falls back to grid", in: "", want: LayoutGrid},
		{name: "case sensitive", in: "Badge", want: LayoutGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLayout(tt.in))
		})
	}
}

func TestLayoutString(t *testing.T) {
	for _, l := range []Layout{LayoutGrid, LayoutCarousel, LayoutSpotlight, LayoutWall, LayoutBadge} {
		assert.Equal(t, l, ParseLayout(l.String()))
	}
}

func TestResolveDefaults(t *testing.T) {
	r := Settings{}.Resolve()

	assert.Equal(t, DefaultBackgroundColor, r.BackgroundColor)
	assert.Equal(t, DefaultTextColor, r.TextColor)
	assert.Equal(t, DefaultAccentColor, r.AccentColor)
	assert.Equal(t, DefaultBorderRadius, r.BorderRadius)
	assert.Equal(t, DefaultFontFamily, r.FontFamily)
	assert.Equal(t, DefaultMaxTestimonials, r.MaxTestimonials)
	assert.Equal(t, DefaultAutoplayInterval, r.AutoplayInterval)
	assert.True(t, r.ShowAvatar)
	assert.True(t, r.ShowRating)
	assert.False(t, r.ShowDate)
	assert.True(t, r.ShowCompany)
	assert.True(t, r.Autoplay)
	assert.True(t, r.ShowBranding)
}

func TestResolveExplicitValuesWin(t *testing.T) {
	f := false
	n := 3
	r := Settings{
		AccentColor:     "#ff0000",
		ShowAvatar:      &f,
		ShowBranding:    &f,
		MaxTestimonials: &n,
	}.Resolve()

	assert.Equal(t, "#ff0000", r.AccentColor)
	assert.False(t, r.ShowAvatar)
	assert.False(t, r.ShowBranding)
	assert.Equal(t, 3, r.MaxTestimonials)
	// untouched fields still get defaults
	assert.Equal(t, DefaultTextColor, r.TextColor)
	assert.True(t, r.ShowRating)
}

func TestResolveRejectsNonPositiveCounts(t *testing.T) {
	zero := 0
	neg := -2
	assert.Equal(t, DefaultMaxTestimonials, Settings{MaxTestimonials: &zero}.Resolve().MaxTestimonials)
	assert.Equal(t, DefaultMaxTestimonials, Settings{MaxTestimonials: &neg}.Resolve().MaxTestimonials)
}

func TestRenderPayloadDecode(t *testing.T) {
	body := `{
		"widget": {
			"id": "w-1",
			"name": "Homepage",
			"layout": "badge",
			"settings": {"accentColor": "#ff0000", "showAvatar": true}
		},
		"testimonials": [
			{"author_name": "Ada", "content": "Great tool!", "rating": 5, "created_at": "2026-01-15T12:00:00Z"}
		]
	}`
	var p RenderPayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.NotNil(t, p.Widget)
	assert.Equal(t, "w-1", p.Widget.ID)
	assert.Equal(t, LayoutBadge, ParseLayout(p.Widget.Layout))
	require.NotNil(t, p.Widget.Settings.ShowAvatar)
	assert.True(t, *p.Widget.Settings.ShowAvatar)
	require.Len(t, p.Testimonials, 1)
	assert.Equal(t, "Ada", p.Testimonials[0].AuthorName)
	assert.Equal(t, 5, p.Testimonials[0].Rating)
}

func TestRenderPayloadDecodeNullWidget(t *testing.T) {
	var p RenderPayload
	require.NoError(t, json.Unmarshal([]byte(`{"widget":null,"testimonials":[]}`), &p))
	assert.Nil(t, p.Widget)
	assert.Empty(t, p.Testimonials)
}
