package render

import (
	"fmt"

	"github.com/jaykalam/testimonialstack/internal/widget"
)

// Styles produces the style block for one widget, scoped under the widget's
// id class so that several independently configured widgets can share a host
// page without bleeding colors or fonts into each other.
func Styles(widgetID string, s widget.Resolved) string {
	scope := "." + WidgetClass + "--" + widgetID
	return fmt.Sprintf(stylesTemplate,
		scope,
		s.FontFamily,
		s.TextColor,
		s.AccentColor,
		s.BorderRadius,
		s.BackgroundColor,
	)
}

// One rule per structural class the renderers emit. %[1]s is the scope
// selector; every rule must stay under it.
const stylesTemplate = `<style>
%[1]s {
  font-family: %[2]s;
  color: %[3]s;
}
%[1]s .testimonialstack-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
  gap: 16px;
  width: 100%%;
}
%[1]s .testimonialstack-card {
  border: 1px solid %[4]s;
  border-radius: %[5]dpx;
  padding: 16px;
  background-color: %[6]s;
}
%[1]s .testimonialstack-card-large {
  border: 1px solid %[4]s;
  border-radius: %[5]dpx;
  padding: 24px;
  background-color: %[6]s;
}
%[1]s .testimonialstack-avatar {
  border-radius: 50%%;
  display: flex;
  align-items: center;
  justify-content: center;
  color: white;
  flex-shrink: 0;
  margin-right: 12px;
}
%[1]s .testimonialstack-author-info {
  min-width: 0;
}
%[1]s .testimonialstack-author-name {
  font-weight: 600;
  font-size: 14px;
  margin: 0;
  line-height: 1.4;
}
%[1]s .testimonialstack-author-company {
  font-size: 12px;
  opacity: 0.7;
  margin: 0;
  line-height: 1.4;
}
%[1]s .testimonialstack-content {
  font-size: 14px;
  line-height: 1.6;
  margin: 12px 0 0;
}
%[1]s .testimonialstack-date {
  font-size: 12px;
  opacity: 0.5;
  margin: 8px 0 0;
}
%[1]s .testimonialstack-rating {
  margin: 8px 0;
  font-size: 14px;
}
%[1]s .testimonialstack-carousel {
  max-width: 600px;
  margin: 0 auto;
}
%[1]s .testimonialstack-carousel-indicator {
  text-align: center;
  font-size: 12px;
  opacity: 0.7;
  margin-top: 12px;
}
%[1]s .testimonialstack-spotlight {
  max-width: 600px;
  margin: 0 auto;
}
%[1]s .testimonialstack-wall {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(150px, 1fr));
  gap: 8px;
}
%[1]s .testimonialstack-wall-item {
  padding: 12px;
  border-radius: 4px;
  font-size: 12px;
}
%[1]s .testimonialstack-wall-author {
  font-weight: 600;
  margin: 0 0 4px;
  font-size: 12px;
}
%[1]s .testimonialstack-wall-content {
  margin: 0;
  font-size: 11px;
  opacity: 0.8;
  line-height: 1.4;
}
%[1]s .testimonialstack-badge {
  border: 1px solid %[4]s;
  border-radius: %[5]dpx;
  padding: 12px;
  background-color: %[6]s;
  display: inline-block;
  max-width: 300px;
}
%[1]s .testimonialstack-badge-avatar {
  width: 32px;
  height: 32px;
  border-radius: 50%%;
  display: flex;
  align-items: center;
  justify-content: center;
  color: white;
  font-weight: 600;
  margin-bottom: 8px;
}
%[1]s .testimonialstack-badge-content {
  font-size: 12px;
}
%[1]s .testimonialstack-badge-author {
  font-weight: 600;
  margin: 0 0 4px;
}
%[1]s .testimonialstack-badge-text {
  margin: 4px 0 0;
  line-height: 1.4;
}
%[1]s .testimonialstack-branding {
  text-align: center;
  font-size: 11px;
  opacity: 0.5;
  border-top: 1px solid rgba(0, 0, 0, 0.1);
  padding-top: 8px;
  margin-top: 8px;
}
</style>`
