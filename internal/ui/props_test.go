package ui

import (
	"errors"
	"image/color"
	"testing"

	"github.com/edward-ap/stepslider/internal/geometry"
)

func noop(int) {}

func TestPropsValidateRequiredFields(t *testing.T) {
	err := Props{}.Validate()
	if !errors.Is(err, ErrNoOptions) {
		t.Errorf("want ErrNoOptions in %v", err)
	}
	if !errors.Is(err, ErrNoChangeHandler) {
		t.Errorf("want ErrNoChangeHandler in %v", err)
	}

	if err := (Props{Options: []string{}, OnValueChange: noop}).Validate(); err != nil {
		t.Fatalf("empty option list should be valid, got %v", err)
	}
}

func TestPropsValidateParsedFields(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  error
	}{
		{name: "bad anchor", props: Props{Options: []string{"a"}, OnValueChange: noop, Anchor: "right"}, want: geometry.ErrUnknownAnchor},
		{name: "bad text color", props: Props{Options: []string{"a"}, OnValueChange: noop, TextColor: "#zz"}, want: ErrUnknownColor},
		{name: "bad tail color", props: Props{Options: []string{"a"}, OnValueChange: noop, TailColor: "blurple"}, want: ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.props.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPropsResolveDefaults(t *testing.T) {
	opts := []string{"a", "b"}
	r, err := Props{Options: opts, OnValueChange: noop}.Resolve()
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if r.Width != geometry.DefaultTotalWidth {
		t.Errorf("Width = %v, want %v", r.Width, geometry.DefaultTotalWidth)
	}
	if r.Anchor != geometry.AnchorLeft {
		t.Errorf("Anchor = %v, want left", r.Anchor)
	}
	if r.TextColor != (color.NRGBA{0x9B, 0x9B, 0x9B, 0xFF}) {
		t.Errorf("TextColor = %#v", r.TextColor)
	}
	if r.TailColor != (color.NRGBA{0x47, 0x70, 0x8E, 0xFF}) {
		t.Errorf("TailColor = %#v", r.TailColor)
	}
	opts[0] = "changed"
	if r.Options[0] != "a" {
		t.Error("Resolve should copy the option list")
	}
	if r.HasCaptions() {
		t.Error("captions should be hidden without min and max text")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "#47708E", want: color.NRGBA{0x47, 0x70, 0x8E, 0xFF}},
		{in: "#fff", want: color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{in: "black", want: color.RGBA{0, 0, 0, 0xFF}},
		{in: " White ", want: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{in: "transparent", want: color.Transparent},
		{in: "", wantErr: true},
		{in: "#1234", wantErr: true},
		{in: "not-a-color", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownColor) {
					t.Fatalf("want ErrUnknownColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseColor(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
