//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type jsWindow struct {
	id     WindowID
	canvas js.Value
	events chan Event

	// receives the dom event listeners, usually the global window
	target    js.Value
	listeners []jsListener
}

type jsListener struct {
	event string
	fn    js.Func
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{
		id:     newWindowID(),
		canvas: canvas,
		events: make(chan Event, 64),
		target: js.Global(),
	}

	resizeCanvas(canvas)

	win.listen("keydown", func(ev js.Value) {
		if ev.Get("repeat").Bool() {
			return
		}

		if key, ok := jsToKey[ev.Get("key").String()]; ok {
			win.send(KeyboardInput(win.id, key, Pressed))
		}
	})

	win.listen("keyup", func(ev js.Value) {
		if key, ok := jsToKey[ev.Get("key").String()]; ok {
			win.send(KeyboardInput(win.id, key, Released))
		}
	})

	win.listen("pagehide", func(ev js.Value) {
		win.send(CloseRequested(win.id))
	})

	return win, nil
}

func (g *jsWindow) listen(event string, fn func(ev js.Value)) {
	jsFn := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})

	g.listeners = append(g.listeners, jsListener{event: event, fn: jsFn})
	g.target.Call("addEventListener", event, jsFn)
}

func (g *jsWindow) send(ev Event) {
	// never block the browser's event dispatch
	select {
	case g.events <- ev:
	default:
	}
}

func (g *jsWindow) ID() WindowID {
	return g.id
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	return uint32(g.canvas.Get("width").Int()), uint32(g.canvas.Get("height").Int())
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Terminate() {
	// a released func must not be reachable from the dom anymore
	for _, l := range g.listeners {
		g.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}

	g.listeners = nil
}

func (g *jsWindow) Run(handler Handler) error {
	for ev := range g.events {
		if handler(ev) == ControlFlowExit {
			return nil
		}
	}

	return nil
}

func resizeCanvas(canvas js.Value) {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	canvas.Set("width", viewWidth*ratio)
	canvas.Set("height", viewHeight*ratio)
}

var jsToKey = map[string]Key{
	"Escape":     KeyEscape,
	"Enter":      KeyEnter,
	"Tab":        KeyTab,
	"Backspace":  KeyBackspace,
	" ":          KeySpace,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"ArrowUp":    KeyUp,
	"ArrowDown":  KeyDown,
}
