package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/edward-ap/stepslider/internal/geometry"
)

const (
	// DefaultTextColor is used for labels, captions and option text.
	DefaultTextColor = "#9B9B9B"
	// DefaultTailColor fills the tail bar.
	DefaultTailColor = "#47708E"
	// DefaultAnchor is the anchor used when Props.Anchor is empty.
	DefaultAnchor = "left"
)

var (
	// ErrNoOptions reports a nil option list. An empty, non-nil list is valid.
	ErrNoOptions = errors.New("options are required")
	// ErrNoChangeHandler reports a missing OnValueChange callback.
	ErrNoChangeHandler = errors.New("value change handler is required")
)

// Props is the caller-facing configuration of a StepSlider. String fields
// use the same notation the config file does; Resolve turns them into typed
// values.
type Props struct {
	Options       []string
	Value         int
	Label         string
	MinText       string
	MaxText       string
	Anchor        string
	TextColor     string
	TailColor     string
	Width         float64
	OnValueChange func(int)
}

// Resolved is a validated Props with defaults applied.
type Resolved struct {
	Options       []string
	Value         int
	Label         string
	MinText       string
	MaxText       string
	Anchor        geometry.Anchor
	TextColor     color.Color
	TailColor     color.Color
	Width         float64
	OnValueChange func(int)
}

// Validate checks the props once, at the widget boundary. All problems are
// reported together.
func (p Props) Validate() error {
	_, err := p.Resolve()
	return err
}

// Resolve validates p and returns the typed form used for rendering.
func (p Props) Resolve() (Resolved, error) {
	var errs []error
	if p.Options == nil {
		errs = append(errs, ErrNoOptions)
	}
	if p.OnValueChange == nil {
		errs = append(errs, ErrNoChangeHandler)
	}

	anchor, err := geometry.ParseAnchor(p.Anchor)
	if err != nil {
		errs = append(errs, err)
	}
	textColor, err := ParseColor(orDefault(p.TextColor, DefaultTextColor))
	if err != nil {
		errs = append(errs, fmt.Errorf("text color: %w", err))
	}
	tailColor, err := ParseColor(orDefault(p.TailColor, DefaultTailColor))
	if err != nil {
		errs = append(errs, fmt.Errorf("tail color: %w", err))
	}
	if len(errs) > 0 {
		return Resolved{}, errors.Join(errs...)
	}

	width := p.Width
	if width == 0 {
		width = geometry.DefaultTotalWidth
	}
	opts := make([]string, len(p.Options))
	copy(opts, p.Options)
	return Resolved{
		Options:       opts,
		Value:         p.Value,
		Label:         p.Label,
		MinText:       p.MinText,
		MaxText:       p.MaxText,
		Anchor:        anchor,
		TextColor:     textColor,
		TailColor:     tailColor,
		Width:         width,
		OnValueChange: p.OnValueChange,
	}, nil
}

// GeometryConfig is the layout engine input for these props.
func (r Resolved) GeometryConfig() geometry.Config {
	return geometry.Config{
		OptionCount: len(r.Options),
		TotalWidth:  r.Width,
		Anchor:      r.Anchor,
	}
}

// HasCaptions reports whether the min/max caption row is shown. Both texts
// must be present.
func (r Resolved) HasCaptions() bool { return r.MinText != "" && r.MaxText != "" }

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
