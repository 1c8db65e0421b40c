//go:build js

package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// deviceDescriptor requests a device with no extra features. WebGL
// does not support all of webgpu, so the limits are lowered to what
// a webgl2 backend can provide.
func deviceDescriptor() *wgpu.DeviceDescriptor {
	return &wgpu.DeviceDescriptor{
		Label:          "yawngf",
		RequiredLimits: webgl2Limits(),
	}
}

// webgl2Limits mirrors wgpu's downlevel webgl2 defaults.
func webgl2Limits() *wgpu.Limits {
	limits := wgpu.DefaultLimits()

	limits.MaxTextureDimension1D = 2048
	limits.MaxTextureDimension2D = 2048
	limits.MaxTextureDimension3D = 256
	limits.MaxTextureArrayLayers = 256
	limits.MaxBindGroups = 4
	limits.MaxUniformBuffersPerShaderStage = 11
	limits.MaxStorageBuffersPerShaderStage = 0
	limits.MaxStorageTexturesPerShaderStage = 0
	limits.MaxDynamicStorageBuffersPerPipelineLayout = 0
	limits.MaxStorageBufferBindingSize = 0
	limits.MaxUniformBufferBindingSize = 16 << 10
	limits.MaxBufferSize = 1 << 28
	limits.MaxVertexBuffers = 8
	limits.MaxVertexAttributes = 16
	limits.MaxVertexBufferArrayStride = 255
	limits.MaxInterStageShaderVariables = 16
	limits.MaxComputeWorkgroupStorageSize = 0
	limits.MaxComputeInvocationsPerWorkgroup = 0
	limits.MaxComputeWorkgroupSizeX = 0
	limits.MaxComputeWorkgroupSizeY = 0
	limits.MaxComputeWorkgroupSizeZ = 0
	limits.MaxComputeWorkgroupsPerDimension = 0

	return &limits
}
