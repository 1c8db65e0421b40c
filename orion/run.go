package orion

import (
	"fmt"

	"github.com/oliverbestmann/yawngf/glimpse"
	"github.com/oliverbestmann/yawngf/pulse"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Graphics enables the webgpu context. Without it, the app only
	// owns a window.
	Graphics *pulse.Options
}

// New opens the window and, if requested, initializes the graphics
// context for it. If the graphics context can not be created, the
// window is terminated again.
func New(opts RunOptions) (*App, error) {
	return newApp(opts, glimpse.NewWindow, pulse.New)
}

type (
	newWindowFunc  func(width, height int, title string) (glimpse.Window, error)
	newContextFunc func(win pulse.Target, opts *pulse.Options) (*pulse.Context, error)
)

func newApp(opts RunOptions, newWindow newWindowFunc, newContext newContextFunc) (*App, error) {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "yawngf"
	}

	// create a new window (or canvas)
	win, err := newWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	app := &App{window: win}

	if opts.Graphics != nil {
		app.graphics, err = newContext(win, opts.Graphics)
		if err != nil {
			win.Terminate()
			return nil, fmt.Errorf("initializing wgpu: %w", err)
		}
	}

	return app, nil
}

// RunApp creates an app and runs it until the window is closed or
// escape is pressed.
func RunApp(opts RunOptions) error {
	app, err := New(opts)
	if err != nil {
		return err
	}

	return app.Run()
}
