package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaykalam/testimonialstack/internal/widget"
)

// User-supplied text is interpolated into markup, so every field must pass
// through escapeHTML first. Skipping it anywhere is an XSS defect.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func escapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// truncate clips s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// hexToRGBA converts a #rrggbb color to an rgba() value with the given alpha.
// Malformed colors fall back to the default accent.
func hexToRGBA(hex string, alpha float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		h = strings.TrimPrefix(widget.DefaultAccentColor, "#")
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		v, _ = strconv.ParseUint(strings.TrimPrefix(widget.DefaultAccentColor, "#"), 16, 32)
	}
	r := v >> 16 & 0xff
	g := v >> 8 & 0xff
	b := v & 0xff
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}
