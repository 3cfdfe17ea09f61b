package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for strings that are neither hex nor a CSS
// colour name.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts "#rrggbb", "#rgb", "transparent" or a CSS/SVG colour
// name such as "black".
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return nil, fmt.Errorf("%w: empty", ErrUnknownColor)
	}
	if v == "transparent" {
		return color.Transparent, nil
	}
	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
