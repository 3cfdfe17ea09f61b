package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// Anchor is the point the tail grows from.
type Anchor int

const (
	// AnchorLeft grows the tail from the left edge of the track.
	AnchorLeft Anchor = iota
	// AnchorCenter grows the tail outwards from the middle of the track.
	AnchorCenter
)

// ErrUnknownAnchor is returned when an anchor name is neither "left" nor "center".
var ErrUnknownAnchor = errors.New("unknown anchor")

// ParseAnchor converts "left" or "center" to an Anchor. An empty string
// means left.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AnchorLeft, nil
	case "center":
		return AnchorCenter, nil
	}
	return AnchorLeft, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
}

func (a Anchor) String() string {
	switch a {
	case AnchorLeft:
		return "left"
	case AnchorCenter:
		return "center"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	switch a {
	case AnchorLeft, AnchorCenter:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAnchor, int(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
