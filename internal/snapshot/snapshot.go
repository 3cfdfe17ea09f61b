// Package snapshot rasterises a StepSlider into an image without a window,
// using the same geometry and colours the widget draws with.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/edward-ap/stepslider/internal/geometry"
	"github.com/edward-ap/stepslider/internal/ui"
)

const (
	padding        = 10.0
	labelPt        = 24.0
	textPt         = 14.0
	optionsTopGap  = 20.0
	trackRowHeight = 40.0
	trackTop       = 17.0
	barHeight      = 5.0
)

// MaxSide is the largest width or height, in pixels, Render will allocate.
const MaxSide = 16384

var trackColor = color.NRGBA{0xb3, 0xb3, 0xb3, 0xFF}

// ErrImageSize is returned when the scaled slider does not fit in
// [1, MaxSide] pixels on either side.
var ErrImageSize = errors.New("image size out of range")

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	scale      float64
	background color.Color
}

// WithScale multiplies every dimension, e.g. 2 for a high-density image.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithBackground sets the fill behind the slider. The default is white.
func WithBackground(c color.Color) Option {
	return func(r *renderer) { r.background = c }
}

// frame is the computed placement of every row, in unscaled units.
type frame struct {
	width, height float64
	labelY        float64
	captionsY     float64
	optionsY      float64
	optionsX      float64
	trackX        float64
	trackY        float64
	geom          geometry.Geometry
}

// Render draws the slider described by p at value.
func Render(p ui.Resolved, value int, opts ...Option) (*image.RGBA, error) {
	r := renderer{scale: 1, background: color.White}
	for _, opt := range opts {
		opt(&r)
	}

	labelFace := pickFace(labelPt * r.scale)
	textFace := pickFace(textPt * r.scale)
	defer closeFace(labelFace)
	defer closeFace(textFace)

	f := layout(p, value, faceHeight(labelFace)/r.scale, faceHeight(textFace)/r.scale)
	w, h := f.width*r.scale, f.height*r.scale
	if !fits(w) || !fits(h) {
		return nil, fmt.Errorf("%w: %gx%g exceeds %d", ErrImageSize, w, h, MaxSide)
	}
	img := image.NewRGBA(image.Rect(0, 0, px(f.width, r.scale), px(f.height, r.scale)))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	if p.Label != "" {
		drawText(img, labelFace, p.Label, p.TextColor, 0, f.width*r.scale, f.labelY*r.scale, alignCenter)
	}
	if p.HasCaptions() {
		left := f.trackX * r.scale
		right := (f.trackX + f.geom.TrackWidth) * r.scale
		drawText(img, textFace, p.MinText, p.TextColor, left, right, f.captionsY*r.scale, alignLeft)
		drawText(img, textFace, p.MaxText, p.TextColor, left, right, f.captionsY*r.scale, alignRight)
	}
	for i, opt := range p.Options {
		x0 := (f.optionsX + f.geom.OptionWidth*float64(i)) * r.scale
		drawText(img, textFace, opt, p.TextColor, x0, x0+f.geom.OptionWidth*r.scale, f.optionsY*r.scale, alignCenter)
	}

	barY := f.trackY + trackTop
	fillRect(img, f.trackX+f.geom.TrackOffset(), barY, f.geom.TrackDrawWidth(), barHeight, r.scale, trackColor)
	fillRect(img, f.trackX+f.geom.TailOffset, barY, f.geom.TailDrawWidth(), barHeight, r.scale, p.TailColor)
	return img, nil
}

// WritePNG renders the slider and encodes it as PNG.
func WritePNG(w io.Writer, p ui.Resolved, value int, opts ...Option) error {
	img, err := Render(p, value, opts...)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// fits reports whether v rounds to a side length in [1, MaxSide]. NaN fails.
func fits(v float64) bool {
	return v >= 0.5 && v < MaxSide+0.5
}

func layout(p ui.Resolved, value int, labelH, textH float64) frame {
	g := geometry.Compute(p.GeometryConfig(), value)
	optionsW := g.OptionWidth * float64(len(p.Options))
	content := math.Max(optionsW, g.TrackWidth)

	f := frame{geom: g, width: content + 2*padding}
	y := padding
	if p.Label != "" {
		f.labelY = y
		y += labelH
	}
	if p.HasCaptions() {
		f.captionsY = y
		y += textH
	} else {
		y += optionsTopGap
	}
	f.optionsY = y
	f.optionsX = (f.width - optionsW) / 2
	if len(p.Options) > 0 {
		y += textH
	}
	f.trackX = (f.width - g.TrackWidth) / 2
	f.trackY = y
	f.height = y + trackRowHeight + padding
	return f
}

// fillRect paints a bar in unscaled units. Non-positive widths paint nothing.
func fillRect(img *image.RGBA, x, y, w, h, scale float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rect := image.Rect(
		px(x, scale), px(y, scale),
		px(x+w, scale), px(y+h, scale),
	).Intersect(img.Bounds())
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// drawText writes s in the horizontal span [x0, x1] with its top at y.
func drawText(img *image.RGBA, face font.Face, s string, c color.Color, x0, x1, y float64, a alignment) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	w := float64(d.MeasureString(s)) / 64
	x := x0
	switch a {
	case alignCenter:
		x = x0 + (x1-x0-w)/2
	case alignRight:
		x = x1 - w
	}
	ascent := float64(face.Metrics().Ascent) / 64
	d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6((y + ascent) * 64)}
	d.DrawString(s)
}

// pickFace loads the fyne theme font at size points and falls back to a
// bitmap face when it is unavailable.
func pickFace(size float64) font.Face {
	res := theme.DefaultTextFont()
	if res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}

func closeFace(f font.Face) {
	if closer, ok := f.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

func faceHeight(f font.Face) float64 {
	m := f.Metrics()
	return float64(m.Ascent+m.Descent) / 64
}

func px(v, scale float64) int { return int(math.Round(v * scale)) }
