package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
)

func TestVulkanResultString(t *testing.T) {
	assert.Equal(t, "VK_SUCCESS", VulkanResultString(vk.Success, false))
	assert.Equal(t, "VK_SUCCESS Command successfully completed", VulkanResultString(vk.Success, true))
	assert.Equal(t, "VK_ERROR_DEVICE_LOST", VulkanResultString(vk.ErrorDeviceLost, false))
	assert.Equal(t, "VkResult(12345)", VulkanResultString(vk.Result(12345), false))
}

func TestVulkanResultIsSuccess(t *testing.T) {
	assert.True(t, VulkanResultIsSuccess(vk.Success))
	assert.True(t, VulkanResultIsSuccess(vk.Suboptimal))
	assert.False(t, VulkanResultIsSuccess(vk.ErrorOutOfDeviceMemory))
	assert.False(t, VulkanResultIsSuccess(vk.Result(12345)))
}
