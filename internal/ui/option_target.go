package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// optionTarget is the tappable label above one stop of a StepSlider.
type optionTarget struct {
	widget.BaseWidget
	index int
	text  *canvas.Text
	onTap func(int)
}

func newOptionTarget(index int, onTap func(int)) *optionTarget {
	t := canvas.NewText("", color.Transparent)
	t.Alignment = fyne.TextAlignCenter
	o := &optionTarget{index: index, text: t, onTap: onTap}
	o.ExtendBaseWidget(o)
	return o
}

func (o *optionTarget) setText(s string, c color.Color) {
	if o.text.Text == s && o.text.Color == c {
		return
	}
	o.text.Text = s
	o.text.Color = c
	o.text.Refresh()
}

// Tapped selects this option.
func (o *optionTarget) Tapped(*fyne.PointEvent) {
	if o.onTap != nil {
		o.onTap(o.index)
	}
}

func (o *optionTarget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(o.text)
}
