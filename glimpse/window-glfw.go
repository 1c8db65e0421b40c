//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	id     WindowID
	win    *glfw.Window
	prof   interface{ Stop() }
	events eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// the surface is provided by webgpu, we do not want a gl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		id:  newWindowID(),
		win: window,
	}

	if os.Getenv("GLIMPSE_CPU_PROFILE") == "1" {
		w.prof = profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	}

	configureInput(w)

	slog.Info("Window created",
		slog.Uint64("id", uint64(w.id)),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return w, nil
}

func (g *glfwWindow) ID() WindowID {
	return g.id
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	// the framebuffer size is the inner size in pixels, which differs
	// from the window size on high dpi screens
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler Handler) error {
	for {
		glfw.WaitEvents()

		if g.events.drain(handler) {
			return nil
		}

		// the handler decided to keep running, do not let glfw
		// remember the close request
		g.win.SetShouldClose(false)
	}
}

func configureInput(w *glfwWindow) {
	w.win.SetCloseCallback(func(_win *glfw.Window) {
		w.events.push(CloseRequested(w.id))
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			w.events.push(KeyboardInput(w.id, key, Pressed))

		case glfw.Release:
			w.events.push(KeyboardInput(w.id, key, Released))
		}
	})
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Warn(
			"Unknown key code",
			slog.Int("code", int(glfwKey)),
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyTab:          KeyTab,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeySpace:        KeySpace,
	glfw.KeyLeft:         KeyLeft,
	glfw.KeyRight:        KeyRight,
	glfw.KeyUp:           KeyUp,
	glfw.KeyDown:         KeyDown,
	glfw.KeyLeftShift:    KeyLeftShift,
	glfw.KeyRightShift:   KeyRightShift,
	glfw.KeyLeftControl:  KeyLeftControl,
	glfw.KeyRightControl: KeyRightControl,
	glfw.KeyLeftAlt:      KeyLeftAlt,
	glfw.KeyRightAlt:     KeyRightAlt,
	glfw.KeyF1:           KeyF1,
	glfw.KeyF2:           KeyF2,
	glfw.KeyF3:           KeyF3,
	glfw.KeyF4:           KeyF4,
	glfw.KeyF5:           KeyF5,
	glfw.KeyF6:           KeyF6,
	glfw.KeyF7:           KeyF7,
	glfw.KeyF8:           KeyF8,
	glfw.KeyF9:           KeyF9,
	glfw.KeyF10:          KeyF10,
	glfw.KeyF11:          KeyF11,
	glfw.KeyF12:          KeyF12,
}

func init() {
	// glfw key codes for digits and letters are their ascii values
	for k := Key0; k <= Key9; k++ {
		glfwToKey[glfw.Key0+glfw.Key(k-Key0)] = k
	}

	for k := KeyA; k <= KeyZ; k++ {
		glfwToKey[glfw.KeyA+glfw.Key(k-KeyA)] = k
	}
}
