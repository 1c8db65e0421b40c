package pulse

import "errors"

var (
	// ErrSurfaceCreation wraps the driver error of a failed surface creation.
	ErrSurfaceCreation = errors.New("couldn't create a wgpu surface")

	// ErrNoAdapter is returned as is, there is no underlying cause.
	ErrNoAdapter = errors.New("no adapter found that matched preferred options")

	// ErrNoDevice wraps the driver error of a failed device request.
	ErrNoDevice = errors.New("requesting a device failed")
)
