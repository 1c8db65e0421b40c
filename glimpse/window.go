package glimpse

import (
	"sync/atomic"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// WindowID identifies a window for the lifetime of the process.
type WindowID uint64

var nextWindowID atomic.Uint64

func newWindowID() WindowID {
	return WindowID(nextWindowID.Add(1))
}

// Handler receives every event delivered to a window and decides
// whether the event loop keeps running.
type Handler func(ev Event) ControlFlow

type Window interface {
	ID() WindowID

	// GetSize returns the inner size of the window in physical pixels
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run blocks and dispatches events to the handler until it
	// returns ControlFlowExit.
	Run(handler Handler) error

	Terminate()
}
