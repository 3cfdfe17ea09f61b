// Package ui contains the StepSlider fyne widget together with its props,
// colour parsing and selection reducer.
package ui

// CallOnMain applies a UI update coming from a background goroutine, such
// as a timer callback. fyne 2.5 drivers expose no main-thread queue and
// their widgets lock their own state, so f runs inline.
func CallOnMain(f func()) {
	if f != nil {
		f()
	}
}

// clampInt constrains v to the [min, max] interval.
func clampInt(v, min, max int) int {
	if max <= min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
