// Package geometry computes the track and tail layout of a stepped slider.
// Everything here is pure arithmetic on value types, so results can be shared
// across goroutines and recomputed on every render.
package geometry

import "math"

const (
	// Inset is the left margin of the base track and tail; the same amount is
	// taken off their right side.
	Inset = 5.0
	// DefaultTotalWidth is the width used when the caller supplies none, and
	// the tap-target fallback when there are no options to divide it by.
	DefaultTotalWidth = 600.0
)

// Config describes one slider for a single computation.
type Config struct {
	OptionCount int
	TotalWidth  float64
	Anchor      Anchor
}

// Geometry is the layout of one slider at one value.
type Geometry struct {
	StepCount   int
	TrackWidth  float64
	OptionWidth float64
	TailWidth   float64
	TailOffset  float64
}

// Compute returns the layout for value under cfg. The value is not clamped:
// values outside [0, StepCount] produce tails outside the track.
func Compute(cfg Config, value int) Geometry {
	stepCount := cfg.OptionCount - 1
	g := Geometry{
		StepCount:   stepCount,
		OptionWidth: optionWidth(cfg.TotalWidth, cfg.OptionCount),
	}

	step := 0.0
	if stepCount > 0 {
		step = 1 / float64(stepCount)
	}
	g.TrackWidth = cfg.TotalWidth - (cfg.TotalWidth/2)*step

	unit := g.Unit()
	v := float64(value)

	switch cfg.Anchor {
	case AnchorCenter:
		mid := float64(stepCount) / 2
		g.TailWidth = unit * math.Abs(mid-v)
		if v < mid {
			g.TailOffset = g.TrackWidth/2 - g.TailWidth + Inset
		} else {
			g.TailOffset = g.TrackWidth / 2
		}
	default:
		g.TailWidth = unit * v
		g.TailOffset = Inset
	}
	return g
}

func optionWidth(total float64, count int) float64 {
	if count <= 0 {
		return DefaultTotalWidth
	}
	return total / float64(count)
}

// TrackOffset is the left margin of the base track.
func (g Geometry) TrackOffset() float64 { return Inset }

// TrackDrawWidth is the drawn width of the base track. It goes negative for
// very small totals; callers draw it as given.
func (g Geometry) TrackDrawWidth() float64 { return g.TrackWidth - 2*Inset }

// TailDrawWidth is the drawn width of the tail, reduced by the same inset as
// the base track so it never overhangs it.
func (g Geometry) TailDrawWidth() float64 { return g.TailWidth - 2*Inset }

// Unit is the width of one step along the track.
func (g Geometry) Unit() float64 {
	if g.StepCount <= 0 {
		return 0
	}
	return g.TrackWidth / float64(g.StepCount)
}

// IndexAt maps a pointer x position, relative to the left edge of the track
// row, to the nearest step index. Unlike Compute it clamps, because pointer
// positions routinely fall outside the track.
func IndexAt(g Geometry, x float64) int {
	if g.StepCount <= 0 {
		return 0
	}
	unit := g.Unit()
	if unit <= 0 {
		return 0
	}
	idx := int(math.Round((x - Inset) / unit))
	if idx < 0 {
		return 0
	}
	if idx > g.StepCount {
		return g.StepCount
	}
	return idx
}
