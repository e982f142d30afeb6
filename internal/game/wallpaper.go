package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/twilight-wallpaper/twilight/internal/sky"
)

// State is the redraw state of a Wallpaper.
type State int

const (
	StateIdle  State = iota // the current frame is up to date
	StateDirty              // a pass runs on the next Step
	StateQuit               // terminal
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirty:
		return "dirty"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Target is what a Wallpaper paints into.
type Target interface {
	sky.Raster

	// Flush publishes the finished pass.
	Flush()
	// Release frees the target once it is replaced or the wallpaper quits.
	Release()
}

// TargetFactory allocates a target for a viewport.
type TargetFactory func(vp sky.Viewport) Target

// Wallpaper drives redraws: it caches the viewport, owns the current target
// and runs a pass whenever it is dirty.
type Wallpaper struct {
	renderer  *sky.Renderer
	newTarget TargetFactory
	logger    *log.Logger

	state    State
	viewport sky.Viewport
	target   Target
	passes   int
}

// New creates a wallpaper that is dirty until its first pass.
func New(renderer *sky.Renderer, newTarget TargetFactory, logger *log.Logger) *Wallpaper {
	return &Wallpaper{
		renderer:  renderer,
		newTarget: newTarget,
		logger:    logger,
		state:     StateDirty,
	}
}

func (w *Wallpaper) State() State { return w.state }
func (w *Wallpaper) Viewport() sky.Viewport { return w.viewport }

// Passes returns how many redraw passes have completed.
func (w *Wallpaper) Passes() int { return w.passes }

// Target returns the current target, or nil before the first Resize.
func (w *Wallpaper) Target() Target { return w.target }

// Resize records the viewport. A new size replaces the target, clears it to
// twilight and marks the wallpaper dirty.
func (w *Wallpaper) Resize(vp sky.Viewport) {
	if w.state == StateQuit || vp == w.viewport {
		return
	}
	w.logger.Debug("viewport changed", "from", sizeOf(w.viewport), "to", sizeOf(vp))

	w.viewport = vp
	w.replaceTarget(nil)
	if !vp.Empty() {
		t := w.newTarget(vp)
		t.Clear(sky.Twilight)
		w.replaceTarget(t)
	}
	w.state = StateDirty
}

// Regenerate clears the target to twilight and schedules a new star field.
func (w *Wallpaper) Regenerate() {
	if w.state == StateQuit {
		return
	}
	w.logger.Debug("regenerate requested")
	if w.target != nil {
		w.target.Clear(sky.Twilight)
	}
	w.state = StateDirty
}

// Quit releases the target. The wallpaper ignores everything afterwards.
func (w *Wallpaper) Quit() {
	if w.state == StateQuit {
		return
	}
	w.replaceTarget(nil)
	w.state = StateQuit
	w.logger.Info("quitting", "passes", w.passes)
}

// Step runs a full pass if the wallpaper is dirty and a target exists. It
// reports whether a pass ran.
func (w *Wallpaper) Step() bool {
	if w.state != StateDirty || w.target == nil {
		return false
	}

	start := time.Now()
	field := w.renderer.Render(w.target, w.viewport)
	w.target.Flush()
	w.passes++
	w.state = StateIdle

	w.logger.Debug("redraw",
		"size", sizeOf(w.viewport),
		"stars", len(field.Small)+len(field.Big),
		"elapsed", time.Since(start).Round(time.Microsecond))
	return true
}

func (w *Wallpaper) replaceTarget(t Target) {
	if w.target != nil {
		w.target.Release()
	}
	w.target = t
}

func sizeOf(vp sky.Viewport) string {
	return fmt.Sprintf("%dx%d", vp.Width, vp.Height)
}
