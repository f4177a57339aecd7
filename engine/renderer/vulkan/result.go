package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

type resultInfo struct {
	code    vk.Result
	name    string
	detail  string
	success bool
}

// From: https://www.khronos.org/registry/vulkan/specs/1.3-extensions/man/html/VkResult.html
var resultTable = []resultInfo{
	{vk.Success, "VK_SUCCESS", "Command successfully completed", true},
	{vk.NotReady, "VK_NOT_READY", "A fence or query has not yet completed", true},
	{vk.Timeout, "VK_TIMEOUT", "A wait operation has not completed in the specified time", true},
	{vk.EventSet, "VK_EVENT_SET", "An event is signaled", true},
	{vk.EventReset, "VK_EVENT_RESET", "An event is unsignaled", true},
	{vk.Incomplete, "VK_INCOMPLETE", "A return array was too small for the result", true},
	{vk.Suboptimal, "VK_SUBOPTIMAL_KHR", "A swapchain no longer matches the surface properties exactly, but can still be used to present to the surface successfully.", true},
	{vk.ThreadIdle, "VK_THREAD_IDLE_KHR", "A deferred operation is not complete but there is currently no work for this thread to do at the time of this call.", true},
	{vk.ThreadDone, "VK_THREAD_DONE_KHR", "A deferred operation is not complete but there is no work remaining to assign to additional threads.", true},
	{vk.OperationDeferred, "VK_OPERATION_DEFERRED_KHR", "A deferred operation was requested and at least some of the work was deferred.", true},
	{vk.OperationNotDeferred, "VK_OPERATION_NOT_DEFERRED_KHR", "A deferred operation was requested and no operations were deferred.", true},
	{vk.PipelineCompileRequired, "VK_PIPELINE_COMPILE_REQUIRED_EXT", "A requested pipeline creation would have required compilation, but the application requested compilation to not be performed.", true},
	{vk.ErrorOutOfHostMemory, "VK_ERROR_OUT_OF_HOST_MEMORY", "A host memory allocation has failed.", false},
	{vk.ErrorOutOfDeviceMemory, "VK_ERROR_OUT_OF_DEVICE_MEMORY", "A device memory allocation has failed.", false},
	{vk.ErrorInitializationFailed, "VK_ERROR_INITIALIZATION_FAILED", "Initialization of an object could not be completed for implementation-specific reasons.", false},
	{vk.ErrorDeviceLost, "VK_ERROR_DEVICE_LOST", "The logical or physical device has been lost. See Lost Device", false},
	{vk.ErrorMemoryMapFailed, "VK_ERROR_MEMORY_MAP_FAILED", "Mapping of a memory object has failed.", false},
	{vk.ErrorLayerNotPresent, "VK_ERROR_LAYER_NOT_PRESENT", "A requested layer is not present or could not be loaded.", false},
	{vk.ErrorExtensionNotPresent, "VK_ERROR_EXTENSION_NOT_PRESENT", "A requested extension is not supported.", false},
	{vk.ErrorFeatureNotPresent, "VK_ERROR_FEATURE_NOT_PRESENT", "A requested feature is not supported.", false},
	{vk.ErrorIncompatibleDriver, "VK_ERROR_INCOMPATIBLE_DRIVER", "The requested version of Vulkan is not supported by the driver or is otherwise incompatible for implementation-specific reasons.", false},
	{vk.ErrorTooManyObjects, "VK_ERROR_TOO_MANY_OBJECTS", "Too many objects of the type have already been created.", false},
	{vk.ErrorFormatNotSupported, "VK_ERROR_FORMAT_NOT_SUPPORTED", "A requested format is not supported on this device.", false},
	{vk.ErrorFragmentedPool, "VK_ERROR_FRAGMENTED_POOL", "A pool allocation has failed due to fragmentation of the pool’s memory. This must only be returned if no attempt to allocate host or device memory was made to accommodate the new allocation. This should be returned in preference to VK_ERROR_OUT_OF_POOL_MEMORY, but only if the implementation is certain that the pool allocation failure was due to fragmentation.", false},
	{vk.ErrorSurfaceLost, "VK_ERROR_SURFACE_LOST_KHR", "A surface is no longer available.", false},
	{vk.ErrorNativeWindowInUse, "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR", "The requested window is already in use by Vulkan or another API in a manner which prevents it from being used again.", false},
	{vk.ErrorOutOfDate, "VK_ERROR_OUT_OF_DATE_KHR", "A surface has changed in such a way that it is no longer compatible with the swapchain, and further presentation requests using the swapchain will fail. Applications must query the new surface properties and recreate their swapchain if they wish to continue presenting to the surface.", false},
	{vk.ErrorIncompatibleDisplay, "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR", "The display used by a swapchain does not use the same presentable image layout, or is incompatible in a way that prevents sharing an image.", false},
	{vk.ErrorInvalidShaderNv, "VK_ERROR_INVALID_SHADER_NV", "One or more shaders failed to compile or link. More details are reported back to the application via VK_EXT_debug_report if enabled.", false},
	{vk.ErrorOutOfPoolMemory, "VK_ERROR_OUT_OF_POOL_MEMORY", "A pool memory allocation has failed. This must only be returned if no attempt to allocate host or device memory was made to accommodate the new allocation. If the failure was definitely due to fragmentation of the pool, VK_ERROR_FRAGMENTED_POOL should be returned instead.", false},
	{vk.ErrorInvalidExternalHandle, "VK_ERROR_INVALID_EXTERNAL_HANDLE", "An external handle is not a valid handle of the specified type.", false},
	{vk.ErrorFragmentation, "VK_ERROR_FRAGMENTATION", "A descriptor pool creation has failed due to fragmentation.", false},
	{vk.ErrorInvalidDeviceAddress, "VK_ERROR_INVALID_DEVICE_ADDRESS_EXT", "A buffer creation failed because the requested address is not available.", false},
	{vk.ErrorFullScreenExclusiveModeLost, "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT", "An operation on a swapchain created with VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT failed as it did not have exlusive full-screen access. This may occur due to implementation-dependent reasons, outside of the application’s control.", false},
	{vk.ErrorUnknown, "VK_ERROR_UNKNOWN", "An unknown error has occurred; either the application has provided invalid input, or an implementation failure has occurred.", false},
}

var results = func() map[vk.Result]resultInfo {
	m := make(map[vk.Result]resultInfo, len(resultTable))
	for _, r := range resultTable {
		m[r.code] = r
	}
	return m
}()

// VulkanResultString names a driver result, with the reference description
// appended when extended is set.
func VulkanResultString(result vk.Result, extended bool) string {
	r, ok := results[result]
	if !ok {
		return fmt.Sprintf("VkResult(%d)", int32(result))
	}
	if extended {
		return r.name + " " + r.detail
	}
	return r.name
}

// VulkanResultIsSuccess reports whether result is one of the success codes.
// Unknown codes are treated as failures.
func VulkanResultIsSuccess(result vk.Result) bool {
	r, ok := results[result]
	return ok && r.success
}
