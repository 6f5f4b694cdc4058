// Package textutil provides unicode- and ANSI-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string, ignoring ANSI escape codes.
// For multi-line strings this is the width of the widest line.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate truncates a plain string to fit within maxWidth visual columns,
// appending … when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// TruncateStyled is Truncate for strings that may carry ANSI styling.
// Escape sequences are preserved and do not count towards the width.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadLeftVisual pads a string to the left to reach targetWidth visual columns.
// If the string is already wider than targetWidth, it's truncated.
func PadLeftVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillLeft("", targetWidth-currentWidth) + s
}

// PadRightStyled pads a styled string with spaces up to targetWidth columns.
// Wider strings are returned unchanged.
func PadRightStyled(s string, targetWidth int) string {
	w := ansi.StringWidth(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// Overlay writes s over base starting at column x, keeping the styling of the
// untouched parts of base. base is padded with spaces when it is too short.
// Columns of s left of 0 are clipped.
func Overlay(base string, x int, s string) string {
	if x < 0 {
		s = ansi.TruncateLeft(s, -x, "")
		x = 0
	}
	sw := ansi.StringWidth(s)
	if sw == 0 {
		return base
	}
	base = PadRightStyled(base, x+sw)
	return ansi.Truncate(base, x, "") + s + ansi.TruncateLeft(base, x+sw, "")
}

// Cut returns columns [left, right) of a styled string.
func Cut(s string, left, right int) string {
	if right <= left {
		return ""
	}
	return ansi.Cut(s, left, right)
}
