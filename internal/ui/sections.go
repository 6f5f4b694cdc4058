package ui

import (
	"fmt"
	"strings"
)

// Section is one entry of the browser: a tab title and the body shown below the strip.
type Section struct {
	Title string
	Body  string
}

// RenderTab renders a section as a strip item.
func RenderTab(s Section, _ int) string {
	return Styles.Tab.Render(s.Title)
}

var builtinBodies = map[string]string{
	"overview": `The strip above is a row of selectable items with an indicator that follows the
active item. Click a tab, press 1-9, or use left/right (h/l) to move between sections.
home/end (g/G) jump to the first and last one.`,
	"layout": `Fill style gives every item its natural width plus item padding. Fit style divides
the available width evenly between max_visible items; when there are more items than
that, the row scrolls horizontally.

SPC c s switches between the two.`,
	"indicator": `Three indicator shapes are available: a bar flush against the top or bottom of the
item, a box outline (square or rounded corners) and a capsule with fully rounded ends.
Bars are measured in eighths of a row, so thin bars use partial block glyphs.

SPC c i cycles the shape, SPC c e flips the bar edge and SPC c w toggles between
content bounds and full container bounds.`,
	"selection": `The active index lives outside the strip behind a binding. Writing the binding from
elsewhere moves the indicator on the next update, and the selection callback fires
once per change, never for a repeated value.

SPC r resets the selection to the first section through the binding.`,
	"scrolling": `A tap schedules a scroll request shortly after the selection changes, centering the
tapped item. Requests are applied in the order they arrive, so the last tap wins.
Resize the terminal or switch to fit style to see it.`,
	"telemetry": `When OTEL_EXPORTER_OTLP_ENDPOINT is set, every selection change is exported as a
strip.select span carrying the index, label and source of the change.`,
}

// NewSections builds sections for the given titles. Well-known titles get a builtin body.
func NewSections(titles []string) []Section {
	out := make([]Section, 0, len(titles))
	for i, t := range titles {
		body, ok := builtinBodies[strings.ToLower(strings.TrimSpace(t))]
		if !ok {
			body = fmt.Sprintf("Section %d of %d.", i+1, len(titles))
		}
		out = append(out, Section{Title: t, Body: body})
	}
	return out
}
