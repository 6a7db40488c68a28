// Package badge renders coverage percentages as shields.io badge
// references. Construction is pure string building; nothing here performs
// a network call.
package badge

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Color is a shields.io color tier.
type Color string

const (
	ColorBrightGreen Color = "brightgreen"
	ColorGreen       Color = "green"
	ColorYellowGreen Color = "yellowgreen"
	ColorOrange      Color = "orange"
	ColorRed         Color = "red"
)

// Spec is a fully derived badge: label, formatted value, and color tier.
type Spec struct {
	Label string
	Value string
	Color Color
}

// ColorFor maps a percentage to its color tier. Boundaries are inclusive
// on the lower side and evaluated top-down.
func ColorFor(percent float64) Color {
	switch {
	case percent >= 95.0:
		return ColorBrightGreen
	case percent >= 85.0:
		return ColorGreen
	case percent >= 70.0:
		return ColorYellowGreen
	case percent >= 50.0:
		return ColorOrange
	default:
		return ColorRed
	}
}

// FormatPercent renders a percentage, collapsing near-integer values
// (within 0.005) to a plain integer and everything else to two decimals.
func FormatPercent(value float64) string {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < 0.005 {
		return strconv.Itoa(int(rounded)) + "%"
	}
	return fmt.Sprintf("%.2f%%", value)
}

// For derives the badge spec for a labeled percentage.
func For(label string, percent float64) Spec {
	return Spec{
		Label: label,
		Value: FormatPercent(percent),
		Color: ColorFor(percent),
	}
}

// URL builds the shields.io image URL for the badge.
func (s Spec) URL() string {
	return fmt.Sprintf("https://img.shields.io/badge/%s-%s-%s",
		url.PathEscape(s.Label), url.PathEscape(s.Value), s.Color)
}

// Markdown renders the badge as a markdown image line with the given alt
// text.
func (s Spec) Markdown(alt string) string {
	return fmt.Sprintf("![%s](%s)", alt, s.URL())
}
