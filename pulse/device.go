package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func init() {
	// glfw and the webgpu surface must be used from the main thread
	runtime.LockOSThread()

	if level, ok := logLevelOf(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

// Target is a window a surface can be created for.
type Target interface {
	// GetSize returns the inner size of the window in pixels
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter.
//
// The Surface is bound to Window. The context keeps a reference to the
// window, and the window must not be terminated before Release was called.
type Context struct {
	Window  Target
	Surface Surface
	Adapter Adapter
	Device  Device
	Queue   Queue

	// Config is the configuration currently applied to the surface.
	// Width and Height match the window size at configuration time, the
	// surface is stale once the window is resized.
	Config *wgpu.SurfaceConfiguration

	Width, Height uint32
}

// New creates a context rendering to the given window. A nil opts reads
// the options from the environment, see OptionsFromEnv.
func New(win Target, opts *Options) (*Context, error) {
	if opts == nil {
		envOpts := OptionsFromEnv()
		opts = &envOpts
	}

	return newContext(newWGPUDriver(), win, *opts)
}

func newContext(driver Driver, win Target, opts Options) (st *Context, err error) {
	defer driver.Release()

	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	width, height := win.GetSize()

	st = &Context{Window: win, Width: width, Height: height}

	// create a Surface based on the window
	st.Surface, err = driver.CreateSurface(win.SurfaceDescriptor())
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}

	// create an adapter that can render to the Surface
	adapter, ok := driver.RequestAdapter(AdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if !ok {
		return st, ErrNoAdapter
	}

	st.Adapter = adapter

	st.Device, err = st.Adapter.RequestDevice(deviceDescriptor())
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	st.Queue = st.Device.GetQueue()

	caps := st.Surface.GetCapabilities(st.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	st.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      SelectSurfaceFormat(caps.Formats),
		Width:       width,
		Height:      height,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}

	st.Surface.Configure(st.Device, st.Config)

	slog.Info("Surface configured",
		slog.Any("format", st.Config.Format),
		slog.Any("presentMode", st.Config.PresentMode),
		slog.Any("alphaMode", st.Config.AlphaMode),
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	return st, nil
}

// Release releases the context in reverse order of creation. The window
// is not touched and can be terminated afterwards.
func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}

	d.Config = nil
}
