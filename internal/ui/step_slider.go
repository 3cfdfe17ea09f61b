package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/stepslider/internal/geometry"
)

const (
	labelTextSize  float32 = 24
	optionsTopGap  float32 = 20
	trackRowHeight float32 = 40
	trackTop       float32 = 17
	barHeight      float32 = 5
)

var trackColor = color.NRGBA{0xb3, 0xb3, 0xb3, 0xFF}

// StepSlider is a horizontal slider over a fixed list of labelled stops. The
// tail bar is laid out by the geometry package from either the left edge or
// the centre of the track.
type StepSlider struct {
	widget.BaseWidget

	props Resolved
	state State
}

// NewStepSlider validates p and builds the widget.
func NewStepSlider(p Props) (*StepSlider, error) {
	r, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	s := &StepSlider{props: r, state: State{Value: r.Value}}
	s.ExtendBaseWidget(s)
	return s, nil
}

// SetProps replaces the configuration. The selection is reset to p.Value.
func (s *StepSlider) SetProps(p Props) error {
	r, err := p.Resolve()
	if err != nil {
		return err
	}
	s.props = r
	s.state, _ = Reduce(s.state, Sync{Value: r.Value})
	s.Refresh()
	return nil
}

// Value returns the committed selection.
func (s *StepSlider) Value() int { return s.state.Value }

// SetValue moves the selection without notifying OnValueChange. It is meant
// for hosts that own the value.
func (s *StepSlider) SetValue(v int) { s.dispatch(Sync{Value: v}) }

// Geometry is the layout for what is currently displayed.
func (s *StepSlider) Geometry() geometry.Geometry {
	return geometry.Compute(s.props.GeometryConfig(), s.state.Displayed())
}

func (s *StepSlider) dispatch(a Action) {
	next, commit := Reduce(s.state, a)
	s.state = next
	s.Refresh()
	if commit && s.props.OnValueChange != nil {
		s.props.OnValueChange(next.Value)
	}
}

func (s *StepSlider) selectOption(i int) { s.dispatch(Tap{Index: i}) }

// Dragged moves the provisional selection to the stop nearest the pointer.
func (s *StepSlider) Dragged(e *fyne.DragEvent) {
	g := s.Geometry()
	x := e.Position.X - trackRowX(s.Size().Width, g)
	s.dispatch(DragMove{Index: geometry.IndexAt(g, float64(x))})
}

// DragEnd commits the stop reached by the drag.
func (s *StepSlider) DragEnd() { s.dispatch(DragRelease{}) }

// Scrolled moves one stop per wheel notch.
func (s *StepSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil {
		return
	}
	g := s.Geometry()
	if g.StepCount <= 0 {
		return
	}
	switch {
	case ev.Scrolled.DY > 0:
		s.dispatch(Tap{Index: clampInt(s.state.Value+1, 0, g.StepCount)})
	case ev.Scrolled.DY < 0:
		s.dispatch(Tap{Index: clampInt(s.state.Value-1, 0, g.StepCount)})
	}
}

func (s *StepSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &stepSliderRenderer{
		s:       s,
		label:   canvas.NewText("", color.Transparent),
		minText: canvas.NewText("", color.Transparent),
		maxText: canvas.NewText("", color.Transparent),
		track:   canvas.NewRectangle(trackColor),
		tail:    canvas.NewRectangle(color.Transparent),
	}
	r.label.TextSize = labelTextSize
	r.label.TextStyle = fyne.TextStyle{Bold: true}
	r.maxText.Alignment = fyne.TextAlignTrailing
	r.sync()
	return r
}

// trackRowX is the left edge of the track row. Rows are centred in the
// widget like the option row above them.
func trackRowX(width float32, g geometry.Geometry) float32 {
	return (width - float32(g.TrackWidth)) / 2
}

type stepSliderRenderer struct {
	s       *StepSlider
	label   *canvas.Text
	minText *canvas.Text
	maxText *canvas.Text
	options []*optionTarget
	track   *canvas.Rectangle
	tail    *canvas.Rectangle
	objs    []fyne.CanvasObject
}

// sync copies props into the canvas objects, rebuilding option targets when
// the option count changes.
func (r *stepSliderRenderer) sync() {
	p := r.s.props
	r.label.Text = p.Label
	r.label.Color = p.TextColor
	r.label.Hidden = p.Label == ""
	r.minText.Text = p.MinText
	r.minText.Color = p.TextColor
	r.maxText.Text = p.MaxText
	r.maxText.Color = p.TextColor
	r.minText.Hidden = !p.HasCaptions()
	r.maxText.Hidden = !p.HasCaptions()
	r.tail.FillColor = p.TailColor

	if len(r.options) != len(p.Options) {
		r.options = make([]*optionTarget, len(p.Options))
		for i := range p.Options {
			r.options[i] = newOptionTarget(i, r.s.selectOption)
		}
	}
	for i, o := range r.options {
		o.setText(p.Options[i], p.TextColor)
	}

	objs := make([]fyne.CanvasObject, 0, len(r.options)+5)
	objs = append(objs, r.label, r.minText, r.maxText)
	for _, o := range r.options {
		objs = append(objs, o)
	}
	objs = append(objs, r.track, r.tail)
	r.objs = objs
}

func (r *stepSliderRenderer) rowHeights() (label, captions, options float32) {
	p := r.s.props
	if p.Label != "" {
		label = r.label.MinSize().Height
	}
	if p.HasCaptions() {
		captions = r.minText.MinSize().Height
	} else {
		captions = optionsTopGap
	}
	for _, o := range r.options {
		if h := o.MinSize().Height; h > options {
			options = h
		}
	}
	if options == 0 {
		options = theme.TextSize()
	}
	return label, captions, options
}

func (r *stepSliderRenderer) Layout(sz fyne.Size) {
	g := r.s.Geometry()
	labelH, captionsH, optionsH := r.rowHeights()
	y := float32(0)

	if labelH > 0 {
		w := r.label.MinSize().Width
		r.label.Move(fyne.NewPos((sz.Width-w)/2, y))
		r.label.Resize(fyne.NewSize(w, labelH))
		y += labelH
	}

	trackX := trackRowX(sz.Width, g)
	trackW := float32(g.TrackWidth)
	if r.s.props.HasCaptions() {
		r.minText.Move(fyne.NewPos(trackX, y))
		r.minText.Resize(fyne.NewSize(trackW/2, captionsH))
		r.maxText.Move(fyne.NewPos(trackX+trackW/2, y))
		r.maxText.Resize(fyne.NewSize(trackW/2, captionsH))
	}
	y += captionsH

	optW := float32(g.OptionWidth)
	rowX := (sz.Width - optW*float32(len(r.options))) / 2
	for i, o := range r.options {
		o.Move(fyne.NewPos(rowX+optW*float32(i), y))
		o.Resize(fyne.NewSize(optW, optionsH))
	}
	y += optionsH

	// fyne cannot draw negative extents; the geometry keeps the raw values
	r.track.Move(fyne.NewPos(trackX+float32(g.TrackOffset()), y+trackTop))
	r.track.Resize(fyne.NewSize(nonNegative(g.TrackDrawWidth()), barHeight))
	r.tail.Move(fyne.NewPos(trackX+float32(g.TailOffset), y+trackTop))
	r.tail.Resize(fyne.NewSize(nonNegative(g.TailDrawWidth()), barHeight))
}

func (r *stepSliderRenderer) MinSize() fyne.Size {
	g := r.s.Geometry()
	labelH, captionsH, optionsH := r.rowHeights()
	w := float32(g.OptionWidth) * float32(len(r.options))
	if tw := float32(g.TrackWidth); tw > w {
		w = tw
	}
	if lw := r.label.MinSize().Width; labelH > 0 && lw > w {
		w = lw
	}
	return fyne.NewSize(w, labelH+captionsH+optionsH+trackRowHeight)
}

func (r *stepSliderRenderer) Refresh() {
	r.sync()
	r.Layout(r.s.Size())
	for _, o := range r.objs {
		canvas.Refresh(o)
	}
}

func (r *stepSliderRenderer) Destroy() {}

func (r *stepSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }

func nonNegative(v float64) float32 {
	if v < 0 {
		return 0
	}
	return float32(v)
}
