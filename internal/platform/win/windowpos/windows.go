//go:build windows

// Package windowpos saves and restores the native window position on
// Windows, where fyne does not expose it.
package windowpos

import (
	"sync"
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

var (
	user32            = syscall.NewLazyDLL("user32.dll")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// Capture reads the window's current top-left corner.
func Capture(w fyne.Window) (Placement, bool) {
	var p Placement
	ok := onHWND(w, func(hwnd uintptr) bool {
		var r rect
		if ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
			logCallError("GetWindowRect", err)
			return false
		}
		p = Placement{X: int(r.Left), Y: int(r.Top)}
		return true
	})
	return p, ok
}

// Restore moves the window to p, keeping its size and Z-order.
func Restore(w fyne.Window, p Placement) bool {
	return onHWND(w, func(hwnd uintptr) bool {
		ret, _, err := procSetWindowPos.Call(hwnd, 0, uintptr(int32(p.X)), uintptr(int32(p.Y)), 0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
		if ret == 0 {
			logCallError("SetWindowPos", err)
			return false
		}
		return true
	})
}

func logCallError(name string, err error) {
	if err != syscall.Errno(0) {
		fyne.LogError(name+" failed", err)
	}
}

// onHWND runs fn with the native handle on the GUI thread and waits for it.
// Windows without a handle yet report false.
func onHWND(w fyne.Window, fn func(hwnd uintptr) bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}
	var (
		done bool
		wg   sync.WaitGroup
	)
	wg.Add(1)
	nw.RunNative(func(ctx any) {
		defer wg.Done()
		if wc, ok := ctx.(driver.WindowsWindowContext); ok && wc.HWND != 0 {
			done = fn(wc.HWND)
		}
	})
	wg.Wait()
	return done
}
