package format

// formatTable describes every non-YUV format. Component bits are listed in
// layout order; block-compressed formats report no component bits.
var formatTable = []descriptor{
	{FormatR4G4UnormPack8, "VK_FORMAT_R4G4_UNORM_PACK8", LayoutRG, [4]uint8{4, 4, 0, 0}, TypeUnorm, true},
	{FormatR4G4B4A4UnormPack16, "VK_FORMAT_R4G4B4A4_UNORM_PACK16", LayoutRGBA, [4]uint8{4, 4, 4, 4}, TypeUnorm, true},
	{FormatB4G4R4A4UnormPack16, "VK_FORMAT_B4G4R4A4_UNORM_PACK16", LayoutBGRA, [4]uint8{4, 4, 4, 4}, TypeUnorm, true},
	{FormatR5G6B5UnormPack16, "VK_FORMAT_R5G6B5_UNORM_PACK16", LayoutRGB, [4]uint8{5, 6, 5, 0}, TypeUnorm, true},
	{FormatB5G6R5UnormPack16, "VK_FORMAT_B5G6R5_UNORM_PACK16", LayoutBGR, [4]uint8{5, 6, 5, 0}, TypeUnorm, true},
	{FormatR5G5B5A1UnormPack16, "VK_FORMAT_R5G5B5A1_UNORM_PACK16", LayoutRGBA, [4]uint8{5, 5, 5, 1}, TypeUnorm, true},
	{FormatB5G5R5A1UnormPack16, "VK_FORMAT_B5G5R5A1_UNORM_PACK16", LayoutBGRA, [4]uint8{5, 5, 5, 1}, TypeUnorm, true},
	{FormatA1R5G5B5UnormPack16, "VK_FORMAT_A1R5G5B5_UNORM_PACK16", LayoutARGB, [4]uint8{1, 5, 5, 5}, TypeUnorm, true},
	{FormatR8Unorm, "VK_FORMAT_R8_UNORM", LayoutR, [4]uint8{8, 0, 0, 0}, TypeUnorm, false},
	{FormatR8Snorm, "VK_FORMAT_R8_SNORM", LayoutR, [4]uint8{8, 0, 0, 0}, TypeSnorm, false},
	{FormatR8Uscaled, "VK_FORMAT_R8_USCALED", LayoutR, [4]uint8{8, 0, 0, 0}, TypeUscaled, false},
	{FormatR8Sscaled, "VK_FORMAT_R8_SSCALED", LayoutR, [4]uint8{8, 0, 0, 0}, TypeSscaled, false},
	{FormatR8Uint, "VK_FORMAT_R8_UINT", LayoutR, [4]uint8{8, 0, 0, 0}, TypeUint, false},
	{FormatR8Sint, "VK_FORMAT_R8_SINT", LayoutR, [4]uint8{8, 0, 0, 0}, TypeSint, false},
	{FormatR8Srgb, "VK_FORMAT_R8_SRGB", LayoutR, [4]uint8{8, 0, 0, 0}, TypeSrgb, false},
	{FormatR8G8Unorm, "VK_FORMAT_R8G8_UNORM", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeUnorm, false},
	{FormatR8G8Snorm, "VK_FORMAT_R8G8_SNORM", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeSnorm, false},
	{FormatR8G8Uscaled, "VK_FORMAT_R8G8_USCALED", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeUscaled, false},
	{FormatR8G8Sscaled, "VK_FORMAT_R8G8_SSCALED", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeSscaled, false},
	{FormatR8G8Uint, "VK_FORMAT_R8G8_UINT", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeUint, false},
	{FormatR8G8Sint, "VK_FORMAT_R8G8_SINT", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeSint, false},
	{FormatR8G8Srgb, "VK_FORMAT_R8G8_SRGB", LayoutRG, [4]uint8{8, 8, 0, 0}, TypeSrgb, false},
	{FormatR8G8B8Unorm, "VK_FORMAT_R8G8B8_UNORM", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeUnorm, false},
	{FormatR8G8B8Snorm, "VK_FORMAT_R8G8B8_SNORM", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeSnorm, false},
	{FormatR8G8B8Uscaled, "VK_FORMAT_R8G8B8_USCALED", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeUscaled, false},
	{FormatR8G8B8Sscaled, "VK_FORMAT_R8G8B8_SSCALED", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeSscaled, false},
	{FormatR8G8B8Uint, "VK_FORMAT_R8G8B8_UINT", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeUint, false},
	{FormatR8G8B8Sint, "VK_FORMAT_R8G8B8_SINT", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeSint, false},
	{FormatR8G8B8Srgb, "VK_FORMAT_R8G8B8_SRGB", LayoutRGB, [4]uint8{8, 8, 8, 0}, TypeSrgb, false},
	{FormatB8G8R8Unorm, "VK_FORMAT_B8G8R8_UNORM", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeUnorm, false},
	{FormatB8G8R8Snorm, "VK_FORMAT_B8G8R8_SNORM", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeSnorm, false},
	{FormatB8G8R8Uscaled, "VK_FORMAT_B8G8R8_USCALED", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeUscaled, false},
	{FormatB8G8R8Sscaled, "VK_FORMAT_B8G8R8_SSCALED", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeSscaled, false},
	{FormatB8G8R8Uint, "VK_FORMAT_B8G8R8_UINT", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeUint, false},
	{FormatB8G8R8Sint, "VK_FORMAT_B8G8R8_SINT", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeSint, false},
	{FormatB8G8R8Srgb, "VK_FORMAT_B8G8R8_SRGB", LayoutBGR, [4]uint8{8, 8, 8, 0}, TypeSrgb, false},
	{FormatR8G8B8A8Unorm, "VK_FORMAT_R8G8B8A8_UNORM", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeUnorm, false},
	{FormatR8G8B8A8Snorm, "VK_FORMAT_R8G8B8A8_SNORM", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeSnorm, false},
	{FormatR8G8B8A8Uscaled, "VK_FORMAT_R8G8B8A8_USCALED", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeUscaled, false},
	{FormatR8G8B8A8Sscaled, "VK_FORMAT_R8G8B8A8_SSCALED", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeSscaled, false},
	{FormatR8G8B8A8Uint, "VK_FORMAT_R8G8B8A8_UINT", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeUint, false},
	{FormatR8G8B8A8Sint, "VK_FORMAT_R8G8B8A8_SINT", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeSint, false},
	{FormatR8G8B8A8Srgb, "VK_FORMAT_R8G8B8A8_SRGB", LayoutRGBA, [4]uint8{8, 8, 8, 8}, TypeSrgb, false},
	{FormatB8G8R8A8Unorm, "VK_FORMAT_B8G8R8A8_UNORM", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeUnorm, false},
	{FormatB8G8R8A8Snorm, "VK_FORMAT_B8G8R8A8_SNORM", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeSnorm, false},
	{FormatB8G8R8A8Uscaled, "VK_FORMAT_B8G8R8A8_USCALED", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeUscaled, false},
	{FormatB8G8R8A8Sscaled, "VK_FORMAT_B8G8R8A8_SSCALED", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeSscaled, false},
	{FormatB8G8R8A8Uint, "VK_FORMAT_B8G8R8A8_UINT", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeUint, false},
	{FormatB8G8R8A8Sint, "VK_FORMAT_B8G8R8A8_SINT", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeSint, false},
	{FormatB8G8R8A8Srgb, "VK_FORMAT_B8G8R8A8_SRGB", LayoutBGRA, [4]uint8{8, 8, 8, 8}, TypeSrgb, false},
	{FormatA8B8G8R8UnormPack32, "VK_FORMAT_A8B8G8R8_UNORM_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeUnorm, true},
	{FormatA8B8G8R8SnormPack32, "VK_FORMAT_A8B8G8R8_SNORM_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeSnorm, true},
	{FormatA8B8G8R8UscaledPack32, "VK_FORMAT_A8B8G8R8_USCALED_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeUscaled, true},
	{FormatA8B8G8R8SscaledPack32, "VK_FORMAT_A8B8G8R8_SSCALED_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeSscaled, true},
	{FormatA8B8G8R8UintPack32, "VK_FORMAT_A8B8G8R8_UINT_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeUint, true},
	{FormatA8B8G8R8SintPack32, "VK_FORMAT_A8B8G8R8_SINT_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeSint, true},
	{FormatA8B8G8R8SrgbPack32, "VK_FORMAT_A8B8G8R8_SRGB_PACK32", LayoutABGR, [4]uint8{8, 8, 8, 8}, TypeSrgb, true},
	{FormatA2R10G10B10UnormPack32, "VK_FORMAT_A2R10G10B10_UNORM_PACK32", LayoutARGB, [4]uint8{2, 10, 10, 10}, TypeUnorm, true},
	{FormatA2R10G10B10SnormPack32, "VK_FORMAT_A2R10G10B10_SNORM_PACK32", LayoutARGB, [4]uint8{2, 10, 10, 10}, TypeSnorm, true},
	{FormatA2R10G10B10UscaledPack32, "VK_FORMAT_A2R10G10B10_USCALED_PACK32", LayoutARGB, [4]uint8{2, 10, 10, 10}, TypeUscaled, true},
	{FormatA2R10G10B10SscaledPack32, "VK_FORMAT_A2R10G10B10_SSCALED_PACK32", LayoutARGB, [4]uint8{2, 10, 10, 10}, TypeSscaled, true},
	{FormatA2R10G10B10UintPack32, "VK_FORMAT_A2R10G10B10_UINT_PACK32", LayoutARGB, [4]uint8{2, 10, 10, 10}, TypeUint, true},
	{FormatA2R10G10B10SintPack32, "VK_FORMAT_A2R10G10B10_SINT_PACK32", LayoutARGB, [4]uint8{2, 10, 10, 10}, TypeSint, true},
	{FormatA2B10G10R10UnormPack32, "VK_FORMAT_A2B10G10R10_UNORM_PACK32", LayoutABGR, [4]uint8{2, 10, 10, 10}, TypeUnorm, true},
	{FormatA2B10G10R10SnormPack32, "VK_FORMAT_A2B10G10R10_SNORM_PACK32", LayoutABGR, [4]uint8{2, 10, 10, 10}, TypeSnorm, true},
	{FormatA2B10G10R10UscaledPack32, "VK_FORMAT_A2B10G10R10_USCALED_PACK32", LayoutABGR, [4]uint8{2, 10, 10, 10}, TypeUscaled, true},
	{FormatA2B10G10R10SscaledPack32, "VK_FORMAT_A2B10G10R10_SSCALED_PACK32", LayoutABGR, [4]uint8{2, 10, 10, 10}, TypeSscaled, true},
	{FormatA2B10G10R10UintPack32, "VK_FORMAT_A2B10G10R10_UINT_PACK32", LayoutABGR, [4]uint8{2, 10, 10, 10}, TypeUint, true},
	{FormatA2B10G10R10SintPack32, "VK_FORMAT_A2B10G10R10_SINT_PACK32", LayoutABGR, [4]uint8{2, 10, 10, 10}, TypeSint, true},
	{FormatR16Unorm, "VK_FORMAT_R16_UNORM", LayoutR, [4]uint8{16, 0, 0, 0}, TypeUnorm, false},
	{FormatR16Snorm, "VK_FORMAT_R16_SNORM", LayoutR, [4]uint8{16, 0, 0, 0}, TypeSnorm, false},
	{FormatR16Uscaled, "VK_FORMAT_R16_USCALED", LayoutR, [4]uint8{16, 0, 0, 0}, TypeUscaled, false},
	{FormatR16Sscaled, "VK_FORMAT_R16_SSCALED", LayoutR, [4]uint8{16, 0, 0, 0}, TypeSscaled, false},
	{FormatR16Uint, "VK_FORMAT_R16_UINT", LayoutR, [4]uint8{16, 0, 0, 0}, TypeUint, false},
	{FormatR16Sint, "VK_FORMAT_R16_SINT", LayoutR, [4]uint8{16, 0, 0, 0}, TypeSint, false},
	{FormatR16Sfloat, "VK_FORMAT_R16_SFLOAT", LayoutR, [4]uint8{16, 0, 0, 0}, TypeSfloat, false},
	{FormatR16G16Unorm, "VK_FORMAT_R16G16_UNORM", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeUnorm, false},
	{FormatR16G16Snorm, "VK_FORMAT_R16G16_SNORM", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeSnorm, false},
	{FormatR16G16Uscaled, "VK_FORMAT_R16G16_USCALED", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeUscaled, false},
	{FormatR16G16Sscaled, "VK_FORMAT_R16G16_SSCALED", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeSscaled, false},
	{FormatR16G16Uint, "VK_FORMAT_R16G16_UINT", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeUint, false},
	{FormatR16G16Sint, "VK_FORMAT_R16G16_SINT", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeSint, false},
	{FormatR16G16Sfloat, "VK_FORMAT_R16G16_SFLOAT", LayoutRG, [4]uint8{16, 16, 0, 0}, TypeSfloat, false},
	{FormatR16G16B16Unorm, "VK_FORMAT_R16G16B16_UNORM", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeUnorm, false},
	{FormatR16G16B16Snorm, "VK_FORMAT_R16G16B16_SNORM", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeSnorm, false},
	{FormatR16G16B16Uscaled, "VK_FORMAT_R16G16B16_USCALED", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeUscaled, false},
	{FormatR16G16B16Sscaled, "VK_FORMAT_R16G16B16_SSCALED", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeSscaled, false},
	{FormatR16G16B16Uint, "VK_FORMAT_R16G16B16_UINT", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeUint, false},
	{FormatR16G16B16Sint, "VK_FORMAT_R16G16B16_SINT", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeSint, false},
	{FormatR16G16B16Sfloat, "VK_FORMAT_R16G16B16_SFLOAT", LayoutRGB, [4]uint8{16, 16, 16, 0}, TypeSfloat, false},
	{FormatR16G16B16A16Unorm, "VK_FORMAT_R16G16B16A16_UNORM", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeUnorm, false},
	{FormatR16G16B16A16Snorm, "VK_FORMAT_R16G16B16A16_SNORM", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeSnorm, false},
	{FormatR16G16B16A16Uscaled, "VK_FORMAT_R16G16B16A16_USCALED", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeUscaled, false},
	{FormatR16G16B16A16Sscaled, "VK_FORMAT_R16G16B16A16_SSCALED", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeSscaled, false},
	{FormatR16G16B16A16Uint, "VK_FORMAT_R16G16B16A16_UINT", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeUint, false},
	{FormatR16G16B16A16Sint, "VK_FORMAT_R16G16B16A16_SINT", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeSint, false},
	{FormatR16G16B16A16Sfloat, "VK_FORMAT_R16G16B16A16_SFLOAT", LayoutRGBA, [4]uint8{16, 16, 16, 16}, TypeSfloat, false},
	{FormatR32Uint, "VK_FORMAT_R32_UINT", LayoutR, [4]uint8{32, 0, 0, 0}, TypeUint, false},
	{FormatR32Sint, "VK_FORMAT_R32_SINT", LayoutR, [4]uint8{32, 0, 0, 0}, TypeSint, false},
	{FormatR32Sfloat, "VK_FORMAT_R32_SFLOAT", LayoutR, [4]uint8{32, 0, 0, 0}, TypeSfloat, false},
	{FormatR32G32Uint, "VK_FORMAT_R32G32_UINT", LayoutRG, [4]uint8{32, 32, 0, 0}, TypeUint, false},
	{FormatR32G32Sint, "VK_FORMAT_R32G32_SINT", LayoutRG, [4]uint8{32, 32, 0, 0}, TypeSint, false},
	{FormatR32G32Sfloat, "VK_FORMAT_R32G32_SFLOAT", LayoutRG, [4]uint8{32, 32, 0, 0}, TypeSfloat, false},
	{FormatR32G32B32Uint, "VK_FORMAT_R32G32B32_UINT", LayoutRGB, [4]uint8{32, 32, 32, 0}, TypeUint, false},
	{FormatR32G32B32Sint, "VK_FORMAT_R32G32B32_SINT", LayoutRGB, [4]uint8{32, 32, 32, 0}, TypeSint, false},
	{FormatR32G32B32Sfloat, "VK_FORMAT_R32G32B32_SFLOAT", LayoutRGB, [4]uint8{32, 32, 32, 0}, TypeSfloat, false},
	{FormatR32G32B32A32Uint, "VK_FORMAT_R32G32B32A32_UINT", LayoutRGBA, [4]uint8{32, 32, 32, 32}, TypeUint, false},
	{FormatR32G32B32A32Sint, "VK_FORMAT_R32G32B32A32_SINT", LayoutRGBA, [4]uint8{32, 32, 32, 32}, TypeSint, false},
	{FormatR32G32B32A32Sfloat, "VK_FORMAT_R32G32B32A32_SFLOAT", LayoutRGBA, [4]uint8{32, 32, 32, 32}, TypeSfloat, false},
	{FormatR64Uint, "VK_FORMAT_R64_UINT", LayoutR, [4]uint8{64, 0, 0, 0}, TypeUint, false},
	{FormatR64Sint, "VK_FORMAT_R64_SINT", LayoutR, [4]uint8{64, 0, 0, 0}, TypeSint, false},
	{FormatR64Sfloat, "VK_FORMAT_R64_SFLOAT", LayoutR, [4]uint8{64, 0, 0, 0}, TypeSfloat, false},
	{FormatR64G64Uint, "VK_FORMAT_R64G64_UINT", LayoutRG, [4]uint8{64, 64, 0, 0}, TypeUint, false},
	{FormatR64G64Sint, "VK_FORMAT_R64G64_SINT", LayoutRG, [4]uint8{64, 64, 0, 0}, TypeSint, false},
	{FormatR64G64Sfloat, "VK_FORMAT_R64G64_SFLOAT", LayoutRG, [4]uint8{64, 64, 0, 0}, TypeSfloat, false},
	{FormatR64G64B64Uint, "VK_FORMAT_R64G64B64_UINT", LayoutRGB, [4]uint8{64, 64, 64, 0}, TypeUint, false},
	{FormatR64G64B64Sint, "VK_FORMAT_R64G64B64_SINT", LayoutRGB, [4]uint8{64, 64, 64, 0}, TypeSint, false},
	{FormatR64G64B64Sfloat, "VK_FORMAT_R64G64B64_SFLOAT", LayoutRGB, [4]uint8{64, 64, 64, 0}, TypeSfloat, false},
	{FormatR64G64B64A64Uint, "VK_FORMAT_R64G64B64A64_UINT", LayoutRGBA, [4]uint8{64, 64, 64, 64}, TypeUint, false},
	{FormatR64G64B64A64Sint, "VK_FORMAT_R64G64B64A64_SINT", LayoutRGBA, [4]uint8{64, 64, 64, 64}, TypeSint, false},
	{FormatR64G64B64A64Sfloat, "VK_FORMAT_R64G64B64A64_SFLOAT", LayoutRGBA, [4]uint8{64, 64, 64, 64}, TypeSfloat, false},
	{FormatB10G11R11UfloatPack32, "VK_FORMAT_B10G11R11_UFLOAT_PACK32", LayoutBGR, [4]uint8{10, 11, 11, 0}, TypeUfloat, true},
	{FormatE5B9G9R9UfloatPack32, "VK_FORMAT_E5B9G9R9_UFLOAT_PACK32", LayoutEBGR, [4]uint8{5, 9, 9, 9}, TypeUfloat, true},
	{FormatD16Unorm, "VK_FORMAT_D16_UNORM", LayoutD, [4]uint8{16, 0, 0, 0}, TypeUnorm, false},
	{FormatX8D24UnormPack32, "VK_FORMAT_X8_D24_UNORM_PACK32", LayoutXD, [4]uint8{8, 24, 0, 0}, TypeUnorm, true},
	{FormatD32Sfloat, "VK_FORMAT_D32_SFLOAT", LayoutD, [4]uint8{32, 0, 0, 0}, TypeSfloat, false},
	{FormatS8Uint, "VK_FORMAT_S8_UINT", LayoutS, [4]uint8{8, 0, 0, 0}, TypeUint, false},
	{FormatD16UnormS8Uint, "VK_FORMAT_D16_UNORM_S8_UINT", LayoutDS, [4]uint8{16, 8, 0, 0}, TypeUnormUint, false},
	{FormatD24UnormS8Uint, "VK_FORMAT_D24_UNORM_S8_UINT", LayoutDS, [4]uint8{24, 8, 0, 0}, TypeUnormUint, false},
	{FormatD32SfloatS8Uint, "VK_FORMAT_D32_SFLOAT_S8_UINT", LayoutDS, [4]uint8{32, 8, 0, 0}, TypeSfloatUint, false},
	{FormatBC1RGBUnormBlock, "VK_FORMAT_BC1_RGB_UNORM_BLOCK", LayoutRGB, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC1RGBSrgbBlock, "VK_FORMAT_BC1_RGB_SRGB_BLOCK", LayoutRGB, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatBC1RGBAUnormBlock, "VK_FORMAT_BC1_RGBA_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC1RGBASrgbBlock, "VK_FORMAT_BC1_RGBA_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatBC2UnormBlock, "VK_FORMAT_BC2_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC2SrgbBlock, "VK_FORMAT_BC2_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatBC3UnormBlock, "VK_FORMAT_BC3_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC3SrgbBlock, "VK_FORMAT_BC3_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatBC4UnormBlock, "VK_FORMAT_BC4_UNORM_BLOCK", LayoutR, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC4SnormBlock, "VK_FORMAT_BC4_SNORM_BLOCK", LayoutR, [4]uint8{0, 0, 0, 0}, TypeSnorm, false},
	{FormatBC5UnormBlock, "VK_FORMAT_BC5_UNORM_BLOCK", LayoutRG, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC5SnormBlock, "VK_FORMAT_BC5_SNORM_BLOCK", LayoutRG, [4]uint8{0, 0, 0, 0}, TypeSnorm, false},
	{FormatBC6HUfloatBlock, "VK_FORMAT_BC6H_UFLOAT_BLOCK", LayoutRGB, [4]uint8{0, 0, 0, 0}, TypeUfloat, false},
	{FormatBC6HSfloatBlock, "VK_FORMAT_BC6H_SFLOAT_BLOCK", LayoutRGB, [4]uint8{0, 0, 0, 0}, TypeSfloat, false},
	{FormatBC7UnormBlock, "VK_FORMAT_BC7_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatBC7SrgbBlock, "VK_FORMAT_BC7_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatETC2R8G8B8UnormBlock, "VK_FORMAT_ETC2_R8G8B8_UNORM_BLOCK", LayoutRGB, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatETC2R8G8B8SrgbBlock, "VK_FORMAT_ETC2_R8G8B8_SRGB_BLOCK", LayoutRGB, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatETC2R8G8B8A1UnormBlock, "VK_FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatETC2R8G8B8A1SrgbBlock, "VK_FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatETC2R8G8B8A8UnormBlock, "VK_FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatETC2R8G8B8A8SrgbBlock, "VK_FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatEACR11UnormBlock, "VK_FORMAT_EAC_R11_UNORM_BLOCK", LayoutR, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatEACR11SnormBlock, "VK_FORMAT_EAC_R11_SNORM_BLOCK", LayoutR, [4]uint8{0, 0, 0, 0}, TypeSnorm, false},
	{FormatEACR11G11UnormBlock, "VK_FORMAT_EAC_R11G11_UNORM_BLOCK", LayoutRG, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatEACR11G11SnormBlock, "VK_FORMAT_EAC_R11G11_SNORM_BLOCK", LayoutRG, [4]uint8{0, 0, 0, 0}, TypeSnorm, false},
	{FormatASTC4x4UnormBlock, "VK_FORMAT_ASTC_4x4_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC4x4SrgbBlock, "VK_FORMAT_ASTC_4x4_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC5x4UnormBlock, "VK_FORMAT_ASTC_5x4_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC5x4SrgbBlock, "VK_FORMAT_ASTC_5x4_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC5x5UnormBlock, "VK_FORMAT_ASTC_5x5_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC5x5SrgbBlock, "VK_FORMAT_ASTC_5x5_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC6x5UnormBlock, "VK_FORMAT_ASTC_6x5_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC6x5SrgbBlock, "VK_FORMAT_ASTC_6x5_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC6x6UnormBlock, "VK_FORMAT_ASTC_6x6_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC6x6SrgbBlock, "VK_FORMAT_ASTC_6x6_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC8x5UnormBlock, "VK_FORMAT_ASTC_8x5_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC8x5SrgbBlock, "VK_FORMAT_ASTC_8x5_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC8x6UnormBlock, "VK_FORMAT_ASTC_8x6_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC8x6SrgbBlock, "VK_FORMAT_ASTC_8x6_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC8x8UnormBlock, "VK_FORMAT_ASTC_8x8_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC8x8SrgbBlock, "VK_FORMAT_ASTC_8x8_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC10x5UnormBlock, "VK_FORMAT_ASTC_10x5_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC10x5SrgbBlock, "VK_FORMAT_ASTC_10x5_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC10x6UnormBlock, "VK_FORMAT_ASTC_10x6_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC10x6SrgbBlock, "VK_FORMAT_ASTC_10x6_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC10x8UnormBlock, "VK_FORMAT_ASTC_10x8_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC10x8SrgbBlock, "VK_FORMAT_ASTC_10x8_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC10x10UnormBlock, "VK_FORMAT_ASTC_10x10_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC10x10SrgbBlock, "VK_FORMAT_ASTC_10x10_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC12x10UnormBlock, "VK_FORMAT_ASTC_12x10_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC12x10SrgbBlock, "VK_FORMAT_ASTC_12x10_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
	{FormatASTC12x12UnormBlock, "VK_FORMAT_ASTC_12x12_UNORM_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeUnorm, false},
	{FormatASTC12x12SrgbBlock, "VK_FORMAT_ASTC_12x12_SRGB_BLOCK", LayoutRGBA, [4]uint8{0, 0, 0, 0}, TypeSrgb, false},
}

// yuvTable describes every YUV format. Each plane names the non-YUV format
// its bits are sampled as.
var yuvTable = []yuvDescriptor{
	{
		format: FormatG8B8G8R8422Unorm,
		name:   "VK_FORMAT_G8B8G8R8_422_UNORM",
		planes: []planeDescriptor{
			{FormatR8G8B8A8Unorm, LayoutGBGR, [4]uint8{8, 8, 8, 8}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      false,
	},
	{
		format: FormatB8G8R8G8422Unorm,
		name:   "VK_FORMAT_B8G8R8G8_422_UNORM",
		planes: []planeDescriptor{
			{FormatR8G8B8A8Unorm, LayoutBGRG, [4]uint8{8, 8, 8, 8}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      false,
	},
	{
		format: FormatG8B8R83Plane420Unorm,
		name:   "VK_FORMAT_G8_B8_R8_3PLANE_420_UNORM",
		planes: []planeDescriptor{
			{FormatR8Unorm, LayoutG, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8Unorm, LayoutB, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8Unorm, LayoutR, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG8B8R82Plane420Unorm,
		name:   "VK_FORMAT_G8_B8R8_2PLANE_420_UNORM",
		planes: []planeDescriptor{
			{FormatR8Unorm, LayoutG, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8G8Unorm, LayoutBR, [4]uint8{8, 8, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG8B8R83Plane422Unorm,
		name:   "VK_FORMAT_G8_B8_R8_3PLANE_422_UNORM",
		planes: []planeDescriptor{
			{FormatR8Unorm, LayoutG, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8Unorm, LayoutB, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8Unorm, LayoutR, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG8B8R82Plane422Unorm,
		name:   "VK_FORMAT_G8_B8R8_2PLANE_422_UNORM",
		planes: []planeDescriptor{
			{FormatR8Unorm, LayoutG, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8G8Unorm, LayoutBR, [4]uint8{8, 8, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG8B8R83Plane444Unorm,
		name:   "VK_FORMAT_G8_B8_R8_3PLANE_444_UNORM",
		planes: []planeDescriptor{
			{FormatR8Unorm, LayoutG, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8Unorm, LayoutB, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR8Unorm, LayoutR, [4]uint8{8, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatR10X6UnormPack16,
		name:   "VK_FORMAT_R10X6_UNORM_PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutRX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatR10X6G10X6Unorm2Pack16,
		name:   "VK_FORMAT_R10X6G10X6_UNORM_2PACK16",
		planes: []planeDescriptor{
			{FormatR16G16Unorm, LayoutRXGX, [4]uint8{10, 10, 0, 0}, [4]uint8{6, 6, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatR10X6G10X6B10X6A10X6Unorm4Pack16,
		name:   "VK_FORMAT_R10X6G10X6B10X6A10X6_UNORM_4PACK16",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutRXGXBXAX, [4]uint8{10, 10, 10, 10}, [4]uint8{6, 6, 6, 6}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatG10X6B10X6G10X6R10X6422Unorm4Pack16,
		name:   "VK_FORMAT_G10X6B10X6G10X6R10X6_422_UNORM_4PACK16",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutGXBXGXRX, [4]uint8{10, 10, 10, 10}, [4]uint8{6, 6, 6, 6}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatB10X6G10X6R10X6G10X6422Unorm4Pack16,
		name:   "VK_FORMAT_B10X6G10X6R10X6G10X6_422_UNORM_4PACK16",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutBXGXRXGX, [4]uint8{10, 10, 10, 10}, [4]uint8{6, 6, 6, 6}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatG10X6B10X6R10X63Plane420Unorm3Pack16,
		name:   "VK_FORMAT_G10X6_B10X6_R10X6_3PLANE_420_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16Unorm, LayoutBX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16Unorm, LayoutRX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG10X6B10X6R10X62Plane420Unorm3Pack16,
		name:   "VK_FORMAT_G10X6_B10X6R10X6_2PLANE_420_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16G16Unorm, LayoutBXRX, [4]uint8{10, 10, 0, 0}, [4]uint8{6, 6, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG10X6B10X6R10X63Plane422Unorm3Pack16,
		name:   "VK_FORMAT_G10X6_B10X6_R10X6_3PLANE_422_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16Unorm, LayoutBX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16Unorm, LayoutRX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG10X6B10X6R10X62Plane422Unorm3Pack16,
		name:   "VK_FORMAT_G10X6_B10X6R10X6_2PLANE_422_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16G16Unorm, LayoutBXRX, [4]uint8{10, 10, 0, 0}, [4]uint8{6, 6, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG10X6B10X6R10X63Plane444Unorm3Pack16,
		name:   "VK_FORMAT_G10X6_B10X6_R10X6_3PLANE_444_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16Unorm, LayoutBX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
			{FormatR16Unorm, LayoutRX, [4]uint8{10, 0, 0, 0}, [4]uint8{6, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatR12X4UnormPack16,
		name:   "VK_FORMAT_R12X4_UNORM_PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutRX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatR12X4G12X4Unorm2Pack16,
		name:   "VK_FORMAT_R12X4G12X4_UNORM_2PACK16",
		planes: []planeDescriptor{
			{FormatR16G16Unorm, LayoutRXGX, [4]uint8{12, 12, 0, 0}, [4]uint8{4, 4, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatR12X4G12X4B12X4A12X4Unorm4Pack16,
		name:   "VK_FORMAT_R12X4G12X4B12X4A12X4_UNORM_4PACK16",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutRXGXBXAX, [4]uint8{12, 12, 12, 12}, [4]uint8{4, 4, 4, 4}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatG12X4B12X4G12X4R12X4422Unorm4Pack16,
		name:   "VK_FORMAT_G12X4B12X4G12X4R12X4_422_UNORM_4PACK16",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutGXBXGXRX, [4]uint8{12, 12, 12, 12}, [4]uint8{4, 4, 4, 4}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatB12X4G12X4R12X4G12X4422Unorm4Pack16,
		name:   "VK_FORMAT_B12X4G12X4R12X4G12X4_422_UNORM_4PACK16",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutBXGXRXGX, [4]uint8{12, 12, 12, 12}, [4]uint8{4, 4, 4, 4}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      true,
	},
	{
		format: FormatG12X4B12X4R12X43Plane420Unorm3Pack16,
		name:   "VK_FORMAT_G12X4_B12X4_R12X4_3PLANE_420_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16Unorm, LayoutBX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16Unorm, LayoutRX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG12X4B12X4R12X42Plane420Unorm3Pack16,
		name:   "VK_FORMAT_G12X4_B12X4R12X4_2PLANE_420_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16G16Unorm, LayoutBXRX, [4]uint8{12, 12, 0, 0}, [4]uint8{4, 4, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG12X4B12X4R12X43Plane422Unorm3Pack16,
		name:   "VK_FORMAT_G12X4_B12X4_R12X4_3PLANE_422_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16Unorm, LayoutBX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16Unorm, LayoutRX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG12X4B12X4R12X42Plane422Unorm3Pack16,
		name:   "VK_FORMAT_G12X4_B12X4R12X4_2PLANE_422_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16G16Unorm, LayoutBXRX, [4]uint8{12, 12, 0, 0}, [4]uint8{4, 4, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG12X4B12X4R12X43Plane444Unorm3Pack16,
		name:   "VK_FORMAT_G12X4_B12X4_R12X4_3PLANE_444_UNORM_3PACK16",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutGX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16Unorm, LayoutBX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
			{FormatR16Unorm, LayoutRX, [4]uint8{12, 0, 0, 0}, [4]uint8{4, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      true,
	},
	{
		format: FormatG16B16G16R16422Unorm,
		name:   "VK_FORMAT_G16B16G16R16_422_UNORM",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutGBGR, [4]uint8{16, 16, 16, 16}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      false,
	},
	{
		format: FormatB16G16R16G16422Unorm,
		name:   "VK_FORMAT_B16G16R16G16_422_UNORM",
		planes: []planeDescriptor{
			{FormatR16G16B16A16Unorm, LayoutBGRG, [4]uint8{16, 16, 16, 16}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: false,
		packed:      false,
	},
	{
		format: FormatG16B16R163Plane420Unorm,
		name:   "VK_FORMAT_G16_B16_R16_3PLANE_420_UNORM",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutG, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16Unorm, LayoutB, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16Unorm, LayoutR, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG16B16R162Plane420Unorm,
		name:   "VK_FORMAT_G16_B16R16_2PLANE_420_UNORM",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutG, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16G16Unorm, LayoutBR, [4]uint8{16, 16, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG16B16R163Plane422Unorm,
		name:   "VK_FORMAT_G16_B16_R16_3PLANE_422_UNORM",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutG, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16Unorm, LayoutB, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16Unorm, LayoutR, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG16B16R162Plane422Unorm,
		name:   "VK_FORMAT_G16_B16R16_2PLANE_422_UNORM",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutG, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16G16Unorm, LayoutBR, [4]uint8{16, 16, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
	{
		format: FormatG16B16R163Plane444Unorm,
		name:   "VK_FORMAT_G16_B16_R16_3PLANE_444_UNORM",
		planes: []planeDescriptor{
			{FormatR16Unorm, LayoutG, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16Unorm, LayoutB, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
			{FormatR16Unorm, LayoutR, [4]uint8{16, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		},
		typ:         TypeUnorm,
		multiPlanar: true,
		packed:      false,
	},
}

// blockTable holds the encoding unit of every compressed format.
var blockTable = []blockDescriptor{
	{FormatBC1RGBUnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatBC1RGBSrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatBC1RGBAUnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatBC1RGBASrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatBC2UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC2SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC3UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC3SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC4UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatBC4SnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatBC5UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC5SnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC6HUfloatBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC6HSfloatBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC7UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatBC7SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatETC2R8G8B8UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatETC2R8G8B8SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatETC2R8G8B8A1UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatETC2R8G8B8A1SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatETC2R8G8B8A8UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatETC2R8G8B8A8SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatEACR11UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatEACR11SnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 8}},
	{FormatEACR11G11UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatEACR11G11SnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatASTC4x4UnormBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatASTC4x4SrgbBlock, BlockGeometry{Width: 4, Height: 4, Bytes: 16}},
	{FormatASTC5x4UnormBlock, BlockGeometry{Width: 5, Height: 4, Bytes: 16}},
	{FormatASTC5x4SrgbBlock, BlockGeometry{Width: 5, Height: 4, Bytes: 16}},
	{FormatASTC5x5UnormBlock, BlockGeometry{Width: 5, Height: 5, Bytes: 16}},
	{FormatASTC5x5SrgbBlock, BlockGeometry{Width: 5, Height: 5, Bytes: 16}},
	{FormatASTC6x5UnormBlock, BlockGeometry{Width: 6, Height: 5, Bytes: 16}},
	{FormatASTC6x5SrgbBlock, BlockGeometry{Width: 6, Height: 5, Bytes: 16}},
	{FormatASTC6x6UnormBlock, BlockGeometry{Width: 6, Height: 6, Bytes: 16}},
	{FormatASTC6x6SrgbBlock, BlockGeometry{Width: 6, Height: 6, Bytes: 16}},
	{FormatASTC8x5UnormBlock, BlockGeometry{Width: 8, Height: 5, Bytes: 16}},
	{FormatASTC8x5SrgbBlock, BlockGeometry{Width: 8, Height: 5, Bytes: 16}},
	{FormatASTC8x6UnormBlock, BlockGeometry{Width: 8, Height: 6, Bytes: 16}},
	{FormatASTC8x6SrgbBlock, BlockGeometry{Width: 8, Height: 6, Bytes: 16}},
	{FormatASTC8x8UnormBlock, BlockGeometry{Width: 8, Height: 8, Bytes: 16}},
	{FormatASTC8x8SrgbBlock, BlockGeometry{Width: 8, Height: 8, Bytes: 16}},
	{FormatASTC10x5UnormBlock, BlockGeometry{Width: 10, Height: 5, Bytes: 16}},
	{FormatASTC10x5SrgbBlock, BlockGeometry{Width: 10, Height: 5, Bytes: 16}},
	{FormatASTC10x6UnormBlock, BlockGeometry{Width: 10, Height: 6, Bytes: 16}},
	{FormatASTC10x6SrgbBlock, BlockGeometry{Width: 10, Height: 6, Bytes: 16}},
	{FormatASTC10x8UnormBlock, BlockGeometry{Width: 10, Height: 8, Bytes: 16}},
	{FormatASTC10x8SrgbBlock, BlockGeometry{Width: 10, Height: 8, Bytes: 16}},
	{FormatASTC10x10UnormBlock, BlockGeometry{Width: 10, Height: 10, Bytes: 16}},
	{FormatASTC10x10SrgbBlock, BlockGeometry{Width: 10, Height: 10, Bytes: 16}},
	{FormatASTC12x10UnormBlock, BlockGeometry{Width: 12, Height: 10, Bytes: 16}},
	{FormatASTC12x10SrgbBlock, BlockGeometry{Width: 12, Height: 10, Bytes: 16}},
	{FormatASTC12x12UnormBlock, BlockGeometry{Width: 12, Height: 12, Bytes: 16}},
	{FormatASTC12x12SrgbBlock, BlockGeometry{Width: 12, Height: 12, Bytes: 16}},
	{FormatG8B8G8R8422Unorm, BlockGeometry{Width: 2, Height: 1, Bytes: 4}},
	{FormatB8G8R8G8422Unorm, BlockGeometry{Width: 2, Height: 1, Bytes: 4}},
	{FormatG10X6B10X6G10X6R10X6422Unorm4Pack16, BlockGeometry{Width: 2, Height: 1, Bytes: 8}},
	{FormatB10X6G10X6R10X6G10X6422Unorm4Pack16, BlockGeometry{Width: 2, Height: 1, Bytes: 8}},
	{FormatG12X4B12X4G12X4R12X4422Unorm4Pack16, BlockGeometry{Width: 2, Height: 1, Bytes: 8}},
	{FormatB12X4G12X4R12X4G12X4422Unorm4Pack16, BlockGeometry{Width: 2, Height: 1, Bytes: 8}},
	{FormatG16B16G16R16422Unorm, BlockGeometry{Width: 2, Height: 1, Bytes: 8}},
	{FormatB16G16R16G16422Unorm, BlockGeometry{Width: 2, Height: 1, Bytes: 8}},
}

// compatibilityClasses partitions the format universe. Bits is the texel
// size, or the block size for compressed classes; multi-planar classes have
// no single texel size and report 0.
var compatibilityClasses = []compatibilityClass{
	{
		name:    "8-bit",
		bits:    8,
		formats: []Format{
			FormatR4G4UnormPack8,
			FormatR8Unorm,
			FormatR8Snorm,
			FormatR8Uscaled,
			FormatR8Sscaled,
			FormatR8Uint,
			FormatR8Sint,
			FormatR8Srgb,
		},
	},
	{
		name:    "16-bit",
		bits:    16,
		formats: []Format{
			FormatR4G4B4A4UnormPack16,
			FormatB4G4R4A4UnormPack16,
			FormatR5G6B5UnormPack16,
			FormatB5G6R5UnormPack16,
			FormatR5G5B5A1UnormPack16,
			FormatB5G5R5A1UnormPack16,
			FormatA1R5G5B5UnormPack16,
			FormatR8G8Unorm,
			FormatR8G8Snorm,
			FormatR8G8Uscaled,
			FormatR8G8Sscaled,
			FormatR8G8Uint,
			FormatR8G8Sint,
			FormatR8G8Srgb,
			FormatR16Unorm,
			FormatR16Snorm,
			FormatR16Uscaled,
			FormatR16Sscaled,
			FormatR16Uint,
			FormatR16Sint,
			FormatR16Sfloat,
			FormatR10X6UnormPack16,
			FormatR12X4UnormPack16,
		},
	},
	{
		name:    "24-bit",
		bits:    24,
		formats: []Format{
			FormatR8G8B8Unorm,
			FormatR8G8B8Snorm,
			FormatR8G8B8Uscaled,
			FormatR8G8B8Sscaled,
			FormatR8G8B8Uint,
			FormatR8G8B8Sint,
			FormatR8G8B8Srgb,
			FormatB8G8R8Unorm,
			FormatB8G8R8Snorm,
			FormatB8G8R8Uscaled,
			FormatB8G8R8Sscaled,
			FormatB8G8R8Uint,
			FormatB8G8R8Sint,
			FormatB8G8R8Srgb,
		},
	},
	{
		name:    "32-bit",
		bits:    32,
		formats: []Format{
			FormatR8G8B8A8Unorm,
			FormatR8G8B8A8Snorm,
			FormatR8G8B8A8Uscaled,
			FormatR8G8B8A8Sscaled,
			FormatR8G8B8A8Uint,
			FormatR8G8B8A8Sint,
			FormatR8G8B8A8Srgb,
			FormatB8G8R8A8Unorm,
			FormatB8G8R8A8Snorm,
			FormatB8G8R8A8Uscaled,
			FormatB8G8R8A8Sscaled,
			FormatB8G8R8A8Uint,
			FormatB8G8R8A8Sint,
			FormatB8G8R8A8Srgb,
			FormatA8B8G8R8UnormPack32,
			FormatA8B8G8R8SnormPack32,
			FormatA8B8G8R8UscaledPack32,
			FormatA8B8G8R8SscaledPack32,
			FormatA8B8G8R8UintPack32,
			FormatA8B8G8R8SintPack32,
			FormatA8B8G8R8SrgbPack32,
			FormatA2R10G10B10UnormPack32,
			FormatA2R10G10B10SnormPack32,
			FormatA2R10G10B10UscaledPack32,
			FormatA2R10G10B10SscaledPack32,
			FormatA2R10G10B10UintPack32,
			FormatA2R10G10B10SintPack32,
			FormatA2B10G10R10UnormPack32,
			FormatA2B10G10R10SnormPack32,
			FormatA2B10G10R10UscaledPack32,
			FormatA2B10G10R10SscaledPack32,
			FormatA2B10G10R10UintPack32,
			FormatA2B10G10R10SintPack32,
			FormatR16G16Unorm,
			FormatR16G16Snorm,
			FormatR16G16Uscaled,
			FormatR16G16Sscaled,
			FormatR16G16Uint,
			FormatR16G16Sint,
			FormatR16G16Sfloat,
			FormatR32Uint,
			FormatR32Sint,
			FormatR32Sfloat,
			FormatB10G11R11UfloatPack32,
			FormatE5B9G9R9UfloatPack32,
			FormatR10X6G10X6Unorm2Pack16,
			FormatR12X4G12X4Unorm2Pack16,
		},
	},
	{
		name:    "48-bit",
		bits:    48,
		formats: []Format{
			FormatR16G16B16Unorm,
			FormatR16G16B16Snorm,
			FormatR16G16B16Uscaled,
			FormatR16G16B16Sscaled,
			FormatR16G16B16Uint,
			FormatR16G16B16Sint,
			FormatR16G16B16Sfloat,
		},
	},
	{
		name:    "64-bit",
		bits:    64,
		formats: []Format{
			FormatR16G16B16A16Unorm,
			FormatR16G16B16A16Snorm,
			FormatR16G16B16A16Uscaled,
			FormatR16G16B16A16Sscaled,
			FormatR16G16B16A16Uint,
			FormatR16G16B16A16Sint,
			FormatR16G16B16A16Sfloat,
			FormatR32G32Uint,
			FormatR32G32Sint,
			FormatR32G32Sfloat,
			FormatR64Uint,
			FormatR64Sint,
			FormatR64Sfloat,
			FormatR10X6G10X6B10X6A10X6Unorm4Pack16,
			FormatR12X4G12X4B12X4A12X4Unorm4Pack16,
		},
	},
	{
		name:    "96-bit",
		bits:    96,
		formats: []Format{
			FormatR32G32B32Uint,
			FormatR32G32B32Sint,
			FormatR32G32B32Sfloat,
		},
	},
	{
		name:    "128-bit",
		bits:    128,
		formats: []Format{
			FormatR32G32B32A32Uint,
			FormatR32G32B32A32Sint,
			FormatR32G32B32A32Sfloat,
			FormatR64G64Uint,
			FormatR64G64Sint,
			FormatR64G64Sfloat,
		},
	},
	{
		name:    "192-bit",
		bits:    192,
		formats: []Format{
			FormatR64G64B64Uint,
			FormatR64G64B64Sint,
			FormatR64G64B64Sfloat,
		},
	},
	{
		name:    "256-bit",
		bits:    256,
		formats: []Format{
			FormatR64G64B64A64Uint,
			FormatR64G64B64A64Sint,
			FormatR64G64B64A64Sfloat,
		},
	},
	{
		name:    "D16",
		bits:    16,
		formats: []Format{
			FormatD16Unorm,
		},
	},
	{
		name:    "D24",
		bits:    32,
		formats: []Format{
			FormatX8D24UnormPack32,
		},
	},
	{
		name:    "D32",
		bits:    32,
		formats: []Format{
			FormatD32Sfloat,
		},
	},
	{
		name:    "S8",
		bits:    8,
		formats: []Format{
			FormatS8Uint,
		},
	},
	{
		name:    "D16S8",
		bits:    24,
		formats: []Format{
			FormatD16UnormS8Uint,
		},
	},
	{
		name:    "D24S8",
		bits:    32,
		formats: []Format{
			FormatD24UnormS8Uint,
		},
	},
	{
		name:    "D32S8",
		bits:    40,
		formats: []Format{
			FormatD32SfloatS8Uint,
		},
	},
	{
		name:    "BC1_RGB",
		bits:    64,
		formats: []Format{
			FormatBC1RGBUnormBlock,
			FormatBC1RGBSrgbBlock,
		},
	},
	{
		name:    "BC1_RGBA",
		bits:    64,
		formats: []Format{
			FormatBC1RGBAUnormBlock,
			FormatBC1RGBASrgbBlock,
		},
	},
	{
		name:    "BC2",
		bits:    128,
		formats: []Format{
			FormatBC2UnormBlock,
			FormatBC2SrgbBlock,
		},
	},
	{
		name:    "BC3",
		bits:    128,
		formats: []Format{
			FormatBC3UnormBlock,
			FormatBC3SrgbBlock,
		},
	},
	{
		name:    "BC4",
		bits:    64,
		formats: []Format{
			FormatBC4UnormBlock,
			FormatBC4SnormBlock,
		},
	},
	{
		name:    "BC5",
		bits:    128,
		formats: []Format{
			FormatBC5UnormBlock,
			FormatBC5SnormBlock,
		},
	},
	{
		name:    "BC6H",
		bits:    128,
		formats: []Format{
			FormatBC6HUfloatBlock,
			FormatBC6HSfloatBlock,
		},
	},
	{
		name:    "BC7",
		bits:    128,
		formats: []Format{
			FormatBC7UnormBlock,
			FormatBC7SrgbBlock,
		},
	},
	{
		name:    "ETC2_RGB",
		bits:    64,
		formats: []Format{
			FormatETC2R8G8B8UnormBlock,
			FormatETC2R8G8B8SrgbBlock,
		},
	},
	{
		name:    "ETC2_RGBA1",
		bits:    64,
		formats: []Format{
			FormatETC2R8G8B8A1UnormBlock,
			FormatETC2R8G8B8A1SrgbBlock,
		},
	},
	{
		name:    "ETC2_RGBA",
		bits:    128,
		formats: []Format{
			FormatETC2R8G8B8A8UnormBlock,
			FormatETC2R8G8B8A8SrgbBlock,
		},
	},
	{
		name:    "EAC_R",
		bits:    64,
		formats: []Format{
			FormatEACR11UnormBlock,
			FormatEACR11SnormBlock,
		},
	},
	{
		name:    "EAC_RG",
		bits:    128,
		formats: []Format{
			FormatEACR11G11UnormBlock,
			FormatEACR11G11SnormBlock,
		},
	},
	{
		name:    "ASTC_4x4",
		bits:    128,
		formats: []Format{
			FormatASTC4x4UnormBlock,
			FormatASTC4x4SrgbBlock,
		},
	},
	{
		name:    "ASTC_5x4",
		bits:    128,
		formats: []Format{
			FormatASTC5x4UnormBlock,
			FormatASTC5x4SrgbBlock,
		},
	},
	{
		name:    "ASTC_5x5",
		bits:    128,
		formats: []Format{
			FormatASTC5x5UnormBlock,
			FormatASTC5x5SrgbBlock,
		},
	},
	{
		name:    "ASTC_6x5",
		bits:    128,
		formats: []Format{
			FormatASTC6x5UnormBlock,
			FormatASTC6x5SrgbBlock,
		},
	},
	{
		name:    "ASTC_6x6",
		bits:    128,
		formats: []Format{
			FormatASTC6x6UnormBlock,
			FormatASTC6x6SrgbBlock,
		},
	},
	{
		name:    "ASTC_8x5",
		bits:    128,
		formats: []Format{
			FormatASTC8x5UnormBlock,
			FormatASTC8x5SrgbBlock,
		},
	},
	{
		name:    "ASTC_8x6",
		bits:    128,
		formats: []Format{
			FormatASTC8x6UnormBlock,
			FormatASTC8x6SrgbBlock,
		},
	},
	{
		name:    "ASTC_8x8",
		bits:    128,
		formats: []Format{
			FormatASTC8x8UnormBlock,
			FormatASTC8x8SrgbBlock,
		},
	},
	{
		name:    "ASTC_10x5",
		bits:    128,
		formats: []Format{
			FormatASTC10x5UnormBlock,
			FormatASTC10x5SrgbBlock,
		},
	},
	{
		name:    "ASTC_10x6",
		bits:    128,
		formats: []Format{
			FormatASTC10x6UnormBlock,
			FormatASTC10x6SrgbBlock,
		},
	},
	{
		name:    "ASTC_10x8",
		bits:    128,
		formats: []Format{
			FormatASTC10x8UnormBlock,
			FormatASTC10x8SrgbBlock,
		},
	},
	{
		name:    "ASTC_10x10",
		bits:    128,
		formats: []Format{
			FormatASTC10x10UnormBlock,
			FormatASTC10x10SrgbBlock,
		},
	},
	{
		name:    "ASTC_12x10",
		bits:    128,
		formats: []Format{
			FormatASTC12x10UnormBlock,
			FormatASTC12x10SrgbBlock,
		},
	},
	{
		name:    "ASTC_12x12",
		bits:    128,
		formats: []Format{
			FormatASTC12x12UnormBlock,
			FormatASTC12x12SrgbBlock,
		},
	},
	{
		name:    "G8B8G8R8_422_UNORM",
		bits:    32,
		formats: []Format{
			FormatG8B8G8R8422Unorm,
		},
	},
	{
		name:    "B8G8R8G8_422_UNORM",
		bits:    32,
		formats: []Format{
			FormatB8G8R8G8422Unorm,
		},
	},
	{
		name:    "G8_B8_R8_3PLANE_420_UNORM",
		bits:    0,
		formats: []Format{
			FormatG8B8R83Plane420Unorm,
		},
	},
	{
		name:    "G8_B8R8_2PLANE_420_UNORM",
		bits:    0,
		formats: []Format{
			FormatG8B8R82Plane420Unorm,
		},
	},
	{
		name:    "G8_B8_R8_3PLANE_422_UNORM",
		bits:    0,
		formats: []Format{
			FormatG8B8R83Plane422Unorm,
		},
	},
	{
		name:    "G8_B8R8_2PLANE_422_UNORM",
		bits:    0,
		formats: []Format{
			FormatG8B8R82Plane422Unorm,
		},
	},
	{
		name:    "G8_B8_R8_3PLANE_444_UNORM",
		bits:    0,
		formats: []Format{
			FormatG8B8R83Plane444Unorm,
		},
	},
	{
		name:    "G10X6B10X6G10X6R10X6_422_UNORM_4PACK16",
		bits:    64,
		formats: []Format{
			FormatG10X6B10X6G10X6R10X6422Unorm4Pack16,
		},
	},
	{
		name:    "B10X6G10X6R10X6G10X6_422_UNORM_4PACK16",
		bits:    64,
		formats: []Format{
			FormatB10X6G10X6R10X6G10X6422Unorm4Pack16,
		},
	},
	{
		name:    "G10X6_B10X6_R10X6_3PLANE_420_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG10X6B10X6R10X63Plane420Unorm3Pack16,
		},
	},
	{
		name:    "G10X6_B10X6R10X6_2PLANE_420_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG10X6B10X6R10X62Plane420Unorm3Pack16,
		},
	},
	{
		name:    "G10X6_B10X6_R10X6_3PLANE_422_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG10X6B10X6R10X63Plane422Unorm3Pack16,
		},
	},
	{
		name:    "G10X6_B10X6R10X6_2PLANE_422_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG10X6B10X6R10X62Plane422Unorm3Pack16,
		},
	},
	{
		name:    "G10X6_B10X6_R10X6_3PLANE_444_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG10X6B10X6R10X63Plane444Unorm3Pack16,
		},
	},
	{
		name:    "G12X4B12X4G12X4R12X4_422_UNORM_4PACK16",
		bits:    64,
		formats: []Format{
			FormatG12X4B12X4G12X4R12X4422Unorm4Pack16,
		},
	},
	{
		name:    "B12X4G12X4R12X4G12X4_422_UNORM_4PACK16",
		bits:    64,
		formats: []Format{
			FormatB12X4G12X4R12X4G12X4422Unorm4Pack16,
		},
	},
	{
		name:    "G12X4_B12X4_R12X4_3PLANE_420_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG12X4B12X4R12X43Plane420Unorm3Pack16,
		},
	},
	{
		name:    "G12X4_B12X4R12X4_2PLANE_420_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG12X4B12X4R12X42Plane420Unorm3Pack16,
		},
	},
	{
		name:    "G12X4_B12X4_R12X4_3PLANE_422_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG12X4B12X4R12X43Plane422Unorm3Pack16,
		},
	},
	{
		name:    "G12X4_B12X4R12X4_2PLANE_422_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG12X4B12X4R12X42Plane422Unorm3Pack16,
		},
	},
	{
		name:    "G12X4_B12X4_R12X4_3PLANE_444_UNORM_3PACK16",
		bits:    0,
		formats: []Format{
			FormatG12X4B12X4R12X43Plane444Unorm3Pack16,
		},
	},
	{
		name:    "G16B16G16R16_422_UNORM",
		bits:    64,
		formats: []Format{
			FormatG16B16G16R16422Unorm,
		},
	},
	{
		name:    "B16G16R16G16_422_UNORM",
		bits:    64,
		formats: []Format{
			FormatB16G16R16G16422Unorm,
		},
	},
	{
		name:    "G16_B16_R16_3PLANE_420_UNORM",
		bits:    0,
		formats: []Format{
			FormatG16B16R163Plane420Unorm,
		},
	},
	{
		name:    "G16_B16R16_2PLANE_420_UNORM",
		bits:    0,
		formats: []Format{
			FormatG16B16R162Plane420Unorm,
		},
	},
	{
		name:    "G16_B16_R16_3PLANE_422_UNORM",
		bits:    0,
		formats: []Format{
			FormatG16B16R163Plane422Unorm,
		},
	},
	{
		name:    "G16_B16R16_2PLANE_422_UNORM",
		bits:    0,
		formats: []Format{
			FormatG16B16R162Plane422Unorm,
		},
	},
	{
		name:    "G16_B16_R16_3PLANE_444_UNORM",
		bits:    0,
		formats: []Format{
			FormatG16B16R163Plane444Unorm,
		},
	},
}
