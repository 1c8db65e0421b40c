//go:build js

package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceDescriptorUsesWebgl2Limits(t *testing.T) {
	desc := deviceDescriptor()
	require.NotNil(t, desc.RequiredLimits)
	assert.Empty(t, desc.RequiredFeatures)

	limits := desc.RequiredLimits
	assert.EqualValues(t, 2048, limits.MaxTextureDimension2D)
	assert.EqualValues(t, 256, limits.MaxTextureDimension3D)
	assert.EqualValues(t, 4, limits.MaxBindGroups)
	assert.EqualValues(t, 11, limits.MaxUniformBuffersPerShaderStage)
	assert.EqualValues(t, 0, limits.MaxStorageBuffersPerShaderStage)
	assert.EqualValues(t, 16<<10, limits.MaxUniformBufferBindingSize)
	assert.EqualValues(t, 1<<28, limits.MaxBufferSize)
	assert.EqualValues(t, 255, limits.MaxVertexBufferArrayStride)
	assert.EqualValues(t, 16, limits.MaxInterStageShaderVariables)
	assert.EqualValues(t, 0, limits.MaxComputeInvocationsPerWorkgroup)
}
