//go:build !js

package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// deviceDescriptor requests a device with no extra features and the
// default limits of the platform.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	return &wgpu.DeviceDescriptor{Label: "yawngf"}
}
