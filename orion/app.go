package orion

import (
	"log/slog"

	"github.com/oliverbestmann/yawngf/glimpse"
	"github.com/oliverbestmann/yawngf/pulse"
)

// App owns a window and, optionally, the graphics context bound to it.
type App struct {
	window   glimpse.Window
	graphics *pulse.Context
}

func (a *App) Window() glimpse.Window {
	return a.window
}

// Graphics returns the graphics context, if the app was created with one.
func (a *App) Graphics() (*pulse.Context, bool) {
	return a.graphics, a.graphics != nil
}

// Run blocks until the window is closed or escape is pressed. The
// graphics context and the window are released before Run returns,
// the app must not be used afterwards.
func (a *App) Run() error {
	defer a.release()

	owned := a.window.ID()

	return a.window.Run(func(ev glimpse.Event) glimpse.ControlFlow {
		return ControlFlowFor(owned, ev)
	})
}

func (a *App) release() {
	// the surface must not outlive the window
	if a.graphics != nil {
		a.graphics.Release()
		a.graphics = nil
	}

	a.window.Terminate()
}

// ControlFlowFor decides if the event loop of the owned window should
// exit. It does on a close request, or when escape is pressed. Events
// for other windows are ignored.
func ControlFlowFor(owned glimpse.WindowID, ev glimpse.Event) glimpse.ControlFlow {
	if ev.WindowID != owned {
		slog.Debug("Ignoring event for foreign window", slog.Uint64("window", uint64(ev.WindowID)))
		return glimpse.ControlFlowContinue
	}

	switch ev.Kind {
	case glimpse.EventCloseRequested:
		return glimpse.ControlFlowExit

	case glimpse.EventKeyboardInput:
		if ev.State == glimpse.Pressed && ev.Key == glimpse.KeyEscape {
			return glimpse.ControlFlowExit
		}
	}

	return glimpse.ControlFlowContinue
}
