//go:build !windows

// Package windowpos is a no-op off Windows; fyne exposes no window position
// there.
package windowpos

import "fyne.io/fyne/v2"

// Capture always fails off Windows.
func Capture(fyne.Window) (Placement, bool) { return Placement{}, false }

// Restore always fails off Windows.
func Restore(fyne.Window, Placement) bool { return false }
