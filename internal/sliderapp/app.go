// Package sliderapp wires the StepSlider widget and the configuration layer
// into a small demo window.
package sliderapp

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	config "github.com/edward-ap/stepslider/internal/config"
	"github.com/edward-ap/stepslider/internal/geometry"
	"github.com/edward-ap/stepslider/internal/platform/win/windowpos"
	ui "github.com/edward-ap/stepslider/internal/ui"
)

// saveDelay debounces config writes while the user clicks through options.
const saveDelay = 400 * time.Millisecond

// Logger is the small logging interface the app reports through.
type Logger interface {
	Printf(format string, args ...any)
}

// App owns the fyne application, the window and the slider it hosts.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config
	// configPath is the file changes are written to; empty means the
	// default user config location.
	configPath string
	log        Logger

	slider *ui.StepSlider
	status *widget.Label
	anchor *widget.RadioGroup

	saveMu    sync.Mutex
	saveTimer *time.Timer
	saveGen   uint64

	writeMu    sync.Mutex
	writtenGen uint64
}

// NewApp builds the demo window for cfg. Changes are persisted to
// configPath, or to the user config directory when configPath is empty.
func NewApp(cfg *config.Config, configPath string, log Logger) (*App, error) {
	return newApp(app.NewWithID(config.AppID), cfg, configPath, log)
}

func newApp(fa fyne.App, cfg *config.Config, configPath string, log Logger) (*App, error) {
	a := &App{
		fa:         fa,
		config:     cfg,
		configPath: configPath,
		log:        log,
	}
	slider, err := ui.NewStepSlider(cfg.Props(a.onValueChange))
	if err != nil {
		return nil, fmt.Errorf("invalid slider config: %w", err)
	}
	a.slider = slider

	a.w = fa.NewWindow("StepSlider")
	a.w.SetContent(a.buildContent())
	a.w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))
	a.w.SetCloseIntercept(a.close)
	return a, nil
}

// Run shows the window and enters the fyne event loop.
func (a *App) Run() {
	a.w.Show()
	a.restoreWindowPlacement()
	a.fa.Run()
}

// restoreWindowPlacement moves the window back to its saved position. The
// native handle may not exist right after Show, so it retries briefly.
func (a *App) restoreWindowPlacement() {
	if !a.config.WindowPosValid {
		return
	}
	p := windowpos.Placement{X: a.config.WindowX, Y: a.config.WindowY}
	if windowpos.Restore(a.w, p) {
		return
	}
	go func() {
		const attempts = 10
		for i := 0; i < attempts; i++ {
			time.Sleep(150 * time.Millisecond)
			if windowpos.Restore(a.w, p) {
				return
			}
		}
	}()
}

// captureWindowPlacement records the window size, and its position where the
// platform reports one.
func (a *App) captureWindowPlacement() {
	sz := a.w.Canvas().Size()
	if sz.Width > 0 && sz.Height > 0 {
		a.config.WindowW = int(sz.Width)
		a.config.WindowH = int(sz.Height)
	}
	if p, ok := windowpos.Capture(a.w); ok {
		a.config.WindowX = p.X
		a.config.WindowY = p.Y
		a.config.WindowPosValid = true
	}
}

func (a *App) buildContent() fyne.CanvasObject {
	a.status = widget.NewLabel(a.statusText(a.config.Value))
	a.status.Alignment = fyne.TextAlignCenter

	a.anchor = widget.NewRadioGroup([]string{geometry.AnchorLeft.String(), geometry.AnchorCenter.String()}, nil)
	a.anchor.Horizontal = true
	a.anchor.SetSelected(a.config.Anchor.String())
	a.anchor.OnChanged = a.onAnchorChange

	controls := container.NewHBox(widget.NewLabel("Anchor"), a.anchor)
	return container.NewVBox(
		container.NewCenter(a.slider),
		a.status,
		container.NewCenter(controls),
	)
}

func (a *App) statusText(v int) string {
	if v >= 0 && v < len(a.config.Options) {
		return fmt.Sprintf("Selected: %s", a.config.Options[v])
	}
	return fmt.Sprintf("Selected: step %d", v)
}

func (a *App) onValueChange(v int) {
	a.log.Printf("value changed to %d", v)
	a.config.Value = v
	if a.status != nil {
		a.status.SetText(a.statusText(v))
	}
	a.scheduleSave()
}

func (a *App) onAnchorChange(s string) {
	anchor, err := geometry.ParseAnchor(s)
	if err != nil {
		a.log.Printf("anchor: %v", err)
		return
	}
	if anchor == a.config.Anchor {
		return
	}
	a.config.Anchor = anchor
	if err := a.slider.SetProps(a.config.Props(a.onValueChange)); err != nil {
		a.log.Printf("apply anchor: %v", err)
		return
	}
	a.log.Printf("anchor changed to %s", anchor)
	a.scheduleSave()
}

// scheduleSave snapshots the config now and writes the snapshot once the
// user stops changing things. Callers run on the UI goroutine.
func (a *App) scheduleSave() {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()
	if a.saveTimer != nil {
		a.saveTimer.Stop()
	}
	a.saveGen++
	snap, gen := a.config.Clone(), a.saveGen
	a.saveTimer = time.AfterFunc(saveDelay, func() { _ = a.write(snap, gen) })
}

// save writes the config immediately and cancels any pending write.
func (a *App) save() error {
	a.saveMu.Lock()
	if a.saveTimer != nil {
		a.saveTimer.Stop()
		a.saveTimer = nil
	}
	a.saveGen++
	snap, gen := a.config.Clone(), a.saveGen
	a.saveMu.Unlock()
	return a.write(snap, gen)
}

// write persists cfg unless a newer snapshot has already been written. A
// debounced write that started before Stop may still be running, so writes
// are serialised.
func (a *App) write(cfg *config.Config, gen uint64) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	if gen <= a.writtenGen {
		return nil
	}

	var err error
	if a.configPath == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveFile(a.configPath)
	}
	if err != nil {
		a.log.Printf("config save error: %v", err)
		ui.CallOnMain(func() {
			if a.status != nil {
				a.status.SetText("Could not save settings")
			}
		})
		return err
	}
	a.writtenGen = gen
	return nil
}

// close persists the window placement, saves the config and quits.
func (a *App) close() {
	a.captureWindowPlacement()
	_ = a.save()
	a.w.Close()
	a.fa.Quit()
}
