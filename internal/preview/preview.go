// Package preview draws a StepSlider as coloured terminal text, one column
// per slice of the control's width.
package preview

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/edward-ap/stepslider/internal/geometry"
	"github.com/edward-ap/stepslider/internal/ui"
)

const (
	trackRune = "─"
	tailRune  = "━"
	trackHex  = "#b3b3b3"
)

// Render returns the label, captions, option row and bar of the slider
// scaled to columns cells. Rows that would be empty are omitted.
func Render(p ui.Resolved, value, columns int) string {
	if columns <= 0 {
		return ""
	}
	g := geometry.Compute(p.GeometryConfig(), value)
	optionsW := g.OptionWidth * float64(len(p.Options))
	total := math.Max(optionsW, g.TrackWidth)
	if total <= 0 {
		return ""
	}
	scale := float64(columns) / total
	text := lipgloss.NewStyle().Foreground(hexOf(p.TextColor))

	var rows []string
	if p.Label != "" {
		rows = append(rows, text.Bold(true).Width(columns).MaxWidth(columns).Align(lipgloss.Center).Render(p.Label))
	}

	trackX := (total - g.TrackWidth) / 2
	if p.HasCaptions() {
		start := cell(trackX, scale)
		span := cell(trackX+g.TrackWidth, scale) - start
		half := span / 2
		caps := text.Width(half).MaxWidth(half).Align(lipgloss.Left).Render(p.MinText) +
			text.Width(span-half).MaxWidth(span-half).Align(lipgloss.Right).Render(p.MaxText)
		rows = append(rows, strings.Repeat(" ", start)+caps)
	}

	if len(p.Options) > 0 {
		optionsX := (total - optionsW) / 2
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", cell(optionsX, scale)))
		for i, opt := range p.Options {
			start := cell(optionsX+g.OptionWidth*float64(i), scale)
			end := cell(optionsX+g.OptionWidth*float64(i+1), scale)
			if end <= start {
				continue
			}
			b.WriteString(text.Width(end - start).MaxWidth(end - start).Align(lipgloss.Center).Render(opt))
		}
		rows = append(rows, b.String())
	}

	rows = append(rows, bar(g, trackX, scale, columns, hexOf(p.TailColor)))
	return strings.Join(rows, "\n")
}

// bar samples each column's centre against the tail and track spans.
func bar(g geometry.Geometry, trackX, scale float64, columns int, tail lipgloss.Color) string {
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(trackHex))
	tailStyle := lipgloss.NewStyle().Foreground(tail)

	trackFrom := trackX + g.TrackOffset()
	trackTo := trackFrom + g.TrackDrawWidth()
	tailFrom := trackX + g.TailOffset
	tailTo := tailFrom + g.TailDrawWidth()

	var b strings.Builder
	for c := 0; c < columns; c++ {
		x := (float64(c) + 0.5) / scale
		switch {
		case x >= tailFrom && x < tailTo:
			b.WriteString(tailStyle.Render(tailRune))
		case x >= trackFrom && x < trackTo:
			b.WriteString(trackStyle.Render(trackRune))
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func cell(x, scale float64) int { return int(math.Round(x * scale)) }

func hexOf(c color.Color) lipgloss.Color {
	if c == nil {
		return lipgloss.Color("")
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return lipgloss.Color("")
	}
	cc, _ := colorful.MakeColor(c)
	return lipgloss.Color(cc.Hex())
}
