package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type wgpuDriver struct {
	instance *wgpu.Instance
}

// newWGPUDriver creates a webgpu instance. A nil descriptor enables
// all available backends.
func newWGPUDriver() Driver {
	return &wgpuDriver{instance: wgpu.CreateInstance(nil)}
}

func (d *wgpuDriver) CreateSurface(desc *wgpu.SurfaceDescriptor) (surface Surface, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create surface: %v", r)
		}
	}()

	raw := d.instance.CreateSurface(desc)
	if raw == nil {
		return nil, errors.New("instance returned no surface")
	}

	return &wgpuSurface{surface: raw}, nil
}

func (d *wgpuDriver) RequestAdapter(opts AdapterOptions) (Adapter, bool) {
	wgpuOpts := &wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference.wgpu(),
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	}

	if surface, ok := opts.CompatibleSurface.(*wgpuSurface); ok {
		wgpuOpts.CompatibleSurface = surface.surface
	}

	adapter, err := d.instance.RequestAdapter(wgpuOpts)
	if err != nil || adapter == nil {
		slog.Debug("No adapter returned",
			slog.String("powerPreference", opts.PowerPreference.String()),
			slog.Bool("forceFallback", opts.ForceFallbackAdapter),
			slog.Any("err", err),
		)

		return nil, false
	}

	return &wgpuAdapter{adapter: adapter}, true
}

func (d *wgpuDriver) Release() {
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}

type wgpuSurface struct {
	surface *wgpu.Surface
}

func (s *wgpuSurface) GetCapabilities(adapter Adapter) wgpu.SurfaceCapabilities {
	return s.surface.GetCapabilities(adapter.(*wgpuAdapter).adapter)
}

func (s *wgpuSurface) Configure(device Device, config *wgpu.SurfaceConfiguration) {
	s.surface.Configure(device.(*wgpuDevice).device, config)
}

func (s *wgpuSurface) Release() {
	s.surface.Release()
}

type wgpuAdapter struct {
	adapter *wgpu.Adapter
}

func (a *wgpuAdapter) RequestDevice(desc *wgpu.DeviceDescriptor) (Device, error) {
	device, err := a.adapter.RequestDevice(desc)
	if err != nil {
		return nil, err
	}

	return &wgpuDevice{device: device}, nil
}

func (a *wgpuAdapter) Release() {
	a.adapter.Release()
}

type wgpuDevice struct {
	device *wgpu.Device
}

func (d *wgpuDevice) GetQueue() Queue {
	return d.device.GetQueue()
}

func (d *wgpuDevice) Release() {
	d.device.Release()
}
