//go:build !windows

package windowpos

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestStubsReportUnsupported(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("pos")
	defer w.Close()

	if _, ok := Capture(w); ok {
		t.Error("Capture should fail off Windows")
	}
	if Restore(w, Placement{X: 10, Y: 20}) {
		t.Error("Restore should fail off Windows")
	}
}
