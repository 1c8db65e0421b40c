package pulse

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	width, height uint32
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	return w.width, w.height
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

type fakeDriver struct {
	surface    *fakeSurface
	surfaceErr error

	// nil if no adapter matches
	adapter *fakeAdapter

	requested []AdapterOptions
	released  bool
}

func (d *fakeDriver) CreateSurface(desc *wgpu.SurfaceDescriptor) (Surface, error) {
	if d.surfaceErr != nil {
		return nil, d.surfaceErr
	}

	return d.surface, nil
}

func (d *fakeDriver) RequestAdapter(opts AdapterOptions) (Adapter, bool) {
	d.requested = append(d.requested, opts)

	if d.adapter == nil {
		return nil, false
	}

	return d.adapter, true
}

func (d *fakeDriver) Release() {
	d.released = true
}

type fakeSurface struct {
	caps wgpu.SurfaceCapabilities

	configured []*wgpu.SurfaceConfiguration
	devices    []Device
	released   bool
}

func (s *fakeSurface) GetCapabilities(adapter Adapter) wgpu.SurfaceCapabilities {
	return s.caps
}

func (s *fakeSurface) Configure(device Device, config *wgpu.SurfaceConfiguration) {
	s.configured = append(s.configured, config)
	s.devices = append(s.devices, device)
}

func (s *fakeSurface) Release() {
	s.released = true
}

type fakeAdapter struct {
	deviceErr error

	descriptors []*wgpu.DeviceDescriptor
	device      *fakeDevice
	released    bool
}

func (a *fakeAdapter) RequestDevice(desc *wgpu.DeviceDescriptor) (Device, error) {
	a.descriptors = append(a.descriptors, desc)

	if a.deviceErr != nil {
		return nil, a.deviceErr
	}

	a.device = &fakeDevice{queue: &fakeQueue{}}
	return a.device, nil
}

func (a *fakeAdapter) Release() {
	a.released = true
}

type fakeDevice struct {
	queue    *fakeQueue
	released bool
}

func (d *fakeDevice) GetQueue() Queue {
	return d.queue
}

func (d *fakeDevice) Release() {
	d.released = true
}

type fakeQueue struct {
	released bool
}

func (q *fakeQueue) Release() {
	q.released = true
}

func defaultCaps() wgpu.SurfaceCapabilities {
	return wgpu.SurfaceCapabilities{
		Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
		PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo},
		AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
	}
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		surface: &fakeSurface{caps: defaultCaps()},
		adapter: &fakeAdapter{},
	}
}

func TestNewContextConfiguresSurface(t *testing.T) {
	driver := newFakeDriver()
	win := &fakeWindow{width: 800, height: 600}

	ctx, err := newContext(driver, win, Options{})
	require.NoError(t, err)
	require.NotNil(t, ctx)

	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, ctx.Config.Format)
	assert.Equal(t, wgpu.PresentModeFifo, ctx.Config.PresentMode)
	assert.Equal(t, wgpu.CompositeAlphaModeOpaque, ctx.Config.AlphaMode)
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, ctx.Config.Usage)
	assert.Equal(t, uint32(800), ctx.Config.Width)
	assert.Equal(t, uint32(600), ctx.Config.Height)
	assert.Empty(t, ctx.Config.ViewFormats)

	assert.Equal(t, uint32(800), ctx.Width)
	assert.Equal(t, uint32(600), ctx.Height)
	assert.Same(t, win, ctx.Window)

	require.Len(t, driver.surface.configured, 1)
	assert.Same(t, ctx.Config, driver.surface.configured[0])

	require.Len(t, driver.adapter.descriptors, 1)
	assert.Empty(t, driver.adapter.descriptors[0].RequiredFeatures)

	assert.Same(t, driver.adapter.device.queue, ctx.Queue)

	// the instance is not needed once the context exists
	assert.True(t, driver.released)
}

func TestNewContextPassesAdapterOptions(t *testing.T) {
	preferences := []PowerPreference{NoPreference, LowPower, HighPerformance}

	for _, pref := range preferences {
		for _, fallback := range []bool{false, true} {
			driver := newFakeDriver()
			win := &fakeWindow{width: 320, height: 240}

			ctx, err := newContext(driver, win, Options{PowerPreference: pref, ForceFallbackAdapter: fallback})
			require.NoError(t, err)

			require.Len(t, driver.requested, 1)
			assert.Equal(t, pref, driver.requested[0].PowerPreference)
			assert.Equal(t, fallback, driver.requested[0].ForceFallbackAdapter)
			assert.Same(t, driver.surface, driver.requested[0].CompatibleSurface)

			assert.Equal(t, uint32(320), ctx.Config.Width)
			assert.Equal(t, uint32(240), ctx.Config.Height)
		}
	}
}

func TestNewContextSurfaceCreationFails(t *testing.T) {
	cause := errors.New("unsupported window")

	driver := newFakeDriver()
	driver.surfaceErr = cause

	ctx, err := newContext(driver, &fakeWindow{width: 1, height: 1}, Options{})
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrSurfaceCreation)
	assert.ErrorIs(t, err, cause)

	assert.Empty(t, driver.requested)
	assert.True(t, driver.released)
}

func TestNewContextNoAdapter(t *testing.T) {
	driver := newFakeDriver()
	driver.adapter = nil

	ctx, err := newContext(driver, &fakeWindow{width: 1, height: 1}, Options{})
	assert.Nil(t, ctx)
	assert.Equal(t, ErrNoAdapter, err)

	assert.Empty(t, driver.surface.configured)
	assert.True(t, driver.surface.released)
}

func TestNewContextNoDevice(t *testing.T) {
	cause := errors.New("out of memory")

	driver := newFakeDriver()
	driver.adapter.deviceErr = cause

	ctx, err := newContext(driver, &fakeWindow{width: 1, height: 1}, Options{})
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrNoDevice)
	assert.ErrorIs(t, err, cause)

	assert.Empty(t, driver.surface.configured)
	assert.True(t, driver.adapter.released)
	assert.True(t, driver.surface.released)
}

func TestNewContextConfiguresOnceAgainstRequestedDevice(t *testing.T) {
	driver := newFakeDriver()

	ctx, err := newContext(driver, &fakeWindow{width: 1024, height: 768}, Options{})
	require.NoError(t, err)

	// configuring has no failure path, the context is usable right away
	require.Len(t, driver.surface.devices, 1)
	assert.Same(t, driver.adapter.device, driver.surface.devices[0])
	assert.Same(t, driver.adapter.device, ctx.Device)
	assert.False(t, driver.surface.released)
}

func TestContextRelease(t *testing.T) {
	driver := newFakeDriver()

	ctx, err := newContext(driver, &fakeWindow{width: 1, height: 1}, Options{})
	require.NoError(t, err)

	ctx.Release()

	assert.True(t, driver.adapter.device.queue.released)
	assert.True(t, driver.adapter.device.released)
	assert.True(t, driver.adapter.released)
	assert.True(t, driver.surface.released)
	assert.Nil(t, ctx.Surface)
	assert.Nil(t, ctx.Config)

	// releasing twice is fine
	ctx.Release()
}
