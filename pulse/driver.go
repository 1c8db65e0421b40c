package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// Driver is the graphics driver as seen by New. An instance of the
// driver is created per context and released once the context is fully
// initialized, or initialization failed.
type Driver interface {
	CreateSurface(desc *wgpu.SurfaceDescriptor) (Surface, error)

	// RequestAdapter returns false if no adapter matches the options.
	RequestAdapter(opts AdapterOptions) (Adapter, bool)

	Release()
}

type Surface interface {
	GetCapabilities(adapter Adapter) wgpu.SurfaceCapabilities
	// Configure has no failure path, a correctly matched adapter, device
	// and surface always accept the configuration.
	Configure(device Device, config *wgpu.SurfaceConfiguration)
	Release()
}

type Adapter interface {
	RequestDevice(desc *wgpu.DeviceDescriptor) (Device, error)
	Release()
}

type Device interface {
	GetQueue() Queue
	Release()
}

type Queue interface {
	Release()
}

// AdapterOptions describes the adapter to request. It only lives for the
// duration of the request.
type AdapterOptions struct {
	PowerPreference      PowerPreference
	ForceFallbackAdapter bool
	CompatibleSurface    Surface
}
