// Package colorfilter maps the seven highlight colors to CSS filter
// expressions that recolor a black illustration to that color.
package colorfilter

import "fmt"

// Default is returned for any color outside the known set. It renders the
// illustration as plain black with no tint.
const Default = "brightness(0) saturate(100%)"

// Color is one of the seven highlight colors used by the home page.
type Color uint8

// Known highlight colors. The zero value is not a valid color.
const (
	Yellow Color = iota + 1
	Blue
	Green
	Pink
	Red
	Purple
	Orange
)

// Colors returns every known color in home page order.
func Colors() []Color {
	return []Color{Yellow, Blue, Green, Pink, Red, Purple, Orange}
}

// Hex returns the lowercase hex value for the color, or "" if unknown.
func (c Color) Hex() string {
	switch c {
	case Yellow:
		return "#facc15"
	case Blue:
		return "#3b82f6"
	case Green:
		return "#22c55e"
	case Pink:
		return "#ec4899"
	case Red:
		return "#ef4444"
	case Purple:
		return "#a855f7"
	case Orange:
		return "#f97316"
	default:
		return ""
	}
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Pink:
		return "pink"
	case Red:
		return "red"
	case Purple:
		return "purple"
	case Orange:
		return "orange"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Filter returns the pre-authored filter expression for the color.
func (c Color) Filter() string {
	switch c {
	case Yellow:
		return "brightness(0) saturate(100%) invert(85%) sepia(81%) saturate(303%) " +
			"hue-rotate(359deg) brightness(101%) contrast(102%)"
	case Blue:
		return "brightness(0) saturate(100%) invert(38%) sepia(77%) saturate(2476%) " +
			"hue-rotate(217deg) brightness(101%) contrast(94%)"
	case Green:
		return "brightness(0) saturate(100%) invert(64%) sepia(88%) saturate(1553%) " +
			"hue-rotate(87deg) brightness(119%) contrast(119%)"
	case Pink:
		return "brightness(0) saturate(100%) invert(50%) sepia(93%) saturate(1352%) " +
			"hue-rotate(297deg) brightness(104%) contrast(106%)"
	case Red:
		return "brightness(0) saturate(100%) invert(27%) sepia(51%) saturate(2878%) " +
			"hue-rotate(346deg) brightness(104%) contrast(97%)"
	case Purple:
		return "brightness(0) saturate(100%) invert(39%) sepia(57%) saturate(3012%) " +
			"hue-rotate(267deg) brightness(99%) contrast(97%)"
	case Orange:
		return "brightness(0) saturate(100%) invert(55%) sepia(95%) saturate(1575%) " +
			"hue-rotate(359deg) brightness(102%) contrast(101%)"
	default:
		return Default
	}
}

// ParseHex looks up a color by its exact hex value. Matching is
// case-sensitive and does not normalize whitespace.
func ParseHex(hex string) (Color, bool) {
	for _, c := range Colors() {
		if c.Hex() == hex {
			return c, true
		}
	}

	return 0, false
}

// Resolve returns the filter expression for a hex color, or Default when the
// color is not one of the known seven.
func Resolve(hex string) string {
	c, ok := ParseHex(hex)
	if !ok {
		return Default
	}

	return c.Filter()
}

// IllustrationStyle is the full filter applied to a group's illustration:
// the recoloring expression followed by a two-layer glow in the same color.
func IllustrationStyle(hex string) string {
	return fmt.Sprintf("%s drop-shadow(0 0 20px %s) drop-shadow(0 0 40px %s40)",
		Resolve(hex), hex, hex)
}

// NavGlow is the drop shadow drawn around a selected navigation button.
func NavGlow(hex string) string {
	return fmt.Sprintf("drop-shadow(0 0 10px %s)", hex)
}
