package format

// Format identifies a pixel format. Values are the native API's format
// enumerants, so a Format converts to vk.Format without a lookup.
type Format int32

const (
	// FormatUndefined is the UNKNOWN sentinel.
	FormatUndefined Format = 0

	FormatR4G4UnormPack8           Format = 1
	FormatR4G4B4A4UnormPack16      Format = 2
	FormatB4G4R4A4UnormPack16      Format = 3
	FormatR5G6B5UnormPack16        Format = 4
	FormatB5G6R5UnormPack16        Format = 5
	FormatR5G5B5A1UnormPack16      Format = 6
	FormatB5G5R5A1UnormPack16      Format = 7
	FormatA1R5G5B5UnormPack16      Format = 8
	FormatR8Unorm                  Format = 9
	FormatR8Snorm                  Format = 10
	FormatR8Uscaled                Format = 11
	FormatR8Sscaled                Format = 12
	FormatR8Uint                   Format = 13
	FormatR8Sint                   Format = 14
	FormatR8Srgb                   Format = 15
	FormatR8G8Unorm                Format = 16
	FormatR8G8Snorm                Format = 17
	FormatR8G8Uscaled              Format = 18
	FormatR8G8Sscaled              Format = 19
	FormatR8G8Uint                 Format = 20
	FormatR8G8Sint                 Format = 21
	FormatR8G8Srgb                 Format = 22
	FormatR8G8B8Unorm              Format = 23
	FormatR8G8B8Snorm              Format = 24
	FormatR8G8B8Uscaled            Format = 25
	FormatR8G8B8Sscaled            Format = 26
	FormatR8G8B8Uint               Format = 27
	FormatR8G8B8Sint               Format = 28
	FormatR8G8B8Srgb               Format = 29
	FormatB8G8R8Unorm              Format = 30
	FormatB8G8R8Snorm              Format = 31
	FormatB8G8R8Uscaled            Format = 32
	FormatB8G8R8Sscaled            Format = 33
	FormatB8G8R8Uint               Format = 34
	FormatB8G8R8Sint               Format = 35
	FormatB8G8R8Srgb               Format = 36
	FormatR8G8B8A8Unorm            Format = 37
	FormatR8G8B8A8Snorm            Format = 38
	FormatR8G8B8A8Uscaled          Format = 39
	FormatR8G8B8A8Sscaled          Format = 40
	FormatR8G8B8A8Uint             Format = 41
	FormatR8G8B8A8Sint             Format = 42
	FormatR8G8B8A8Srgb             Format = 43
	FormatB8G8R8A8Unorm            Format = 44
	FormatB8G8R8A8Snorm            Format = 45
	FormatB8G8R8A8Uscaled          Format = 46
	FormatB8G8R8A8Sscaled          Format = 47
	FormatB8G8R8A8Uint             Format = 48
	FormatB8G8R8A8Sint             Format = 49
	FormatB8G8R8A8Srgb             Format = 50
	FormatA8B8G8R8UnormPack32      Format = 51
	FormatA8B8G8R8SnormPack32      Format = 52
	FormatA8B8G8R8UscaledPack32    Format = 53
	FormatA8B8G8R8SscaledPack32    Format = 54
	FormatA8B8G8R8UintPack32       Format = 55
	FormatA8B8G8R8SintPack32       Format = 56
	FormatA8B8G8R8SrgbPack32       Format = 57
	FormatA2R10G10B10UnormPack32   Format = 58
	FormatA2R10G10B10SnormPack32   Format = 59
	FormatA2R10G10B10UscaledPack32 Format = 60
	FormatA2R10G10B10SscaledPack32 Format = 61
	FormatA2R10G10B10UintPack32    Format = 62
	FormatA2R10G10B10SintPack32    Format = 63
	FormatA2B10G10R10UnormPack32   Format = 64
	FormatA2B10G10R10SnormPack32   Format = 65
	FormatA2B10G10R10UscaledPack32 Format = 66
	FormatA2B10G10R10SscaledPack32 Format = 67
	FormatA2B10G10R10UintPack32    Format = 68
	FormatA2B10G10R10SintPack32    Format = 69
	FormatR16Unorm                 Format = 70
	FormatR16Snorm                 Format = 71
	FormatR16Uscaled               Format = 72
	FormatR16Sscaled               Format = 73
	FormatR16Uint                  Format = 74
	FormatR16Sint                  Format = 75
	FormatR16Sfloat                Format = 76
	FormatR16G16Unorm              Format = 77
	FormatR16G16Snorm              Format = 78
	FormatR16G16Uscaled            Format = 79
	FormatR16G16Sscaled            Format = 80
	FormatR16G16Uint               Format = 81
	FormatR16G16Sint               Format = 82
	FormatR16G16Sfloat             Format = 83
	FormatR16G16B16Unorm           Format = 84
	FormatR16G16B16Snorm           Format = 85
	FormatR16G16B16Uscaled         Format = 86
	FormatR16G16B16Sscaled         Format = 87
	FormatR16G16B16Uint            Format = 88
	FormatR16G16B16Sint            Format = 89
	FormatR16G16B16Sfloat          Format = 90
	FormatR16G16B16A16Unorm        Format = 91
	FormatR16G16B16A16Snorm        Format = 92
	FormatR16G16B16A16Uscaled      Format = 93
	FormatR16G16B16A16Sscaled      Format = 94
	FormatR16G16B16A16Uint         Format = 95
	FormatR16G16B16A16Sint         Format = 96
	FormatR16G16B16A16Sfloat       Format = 97
	FormatR32Uint                  Format = 98
	FormatR32Sint                  Format = 99
	FormatR32Sfloat                Format = 100
	FormatR32G32Uint               Format = 101
	FormatR32G32Sint               Format = 102
	FormatR32G32Sfloat             Format = 103
	FormatR32G32B32Uint            Format = 104
	FormatR32G32B32Sint            Format = 105
	FormatR32G32B32Sfloat          Format = 106
	FormatR32G32B32A32Uint         Format = 107
	FormatR32G32B32A32Sint         Format = 108
	FormatR32G32B32A32Sfloat       Format = 109
	FormatR64Uint                  Format = 110
	FormatR64Sint                  Format = 111
	FormatR64Sfloat                Format = 112
	FormatR64G64Uint               Format = 113
	FormatR64G64Sint               Format = 114
	FormatR64G64Sfloat             Format = 115
	FormatR64G64B64Uint            Format = 116
	FormatR64G64B64Sint            Format = 117
	FormatR64G64B64Sfloat          Format = 118
	FormatR64G64B64A64Uint         Format = 119
	FormatR64G64B64A64Sint         Format = 120
	FormatR64G64B64A64Sfloat       Format = 121
	FormatB10G11R11UfloatPack32    Format = 122
	FormatE5B9G9R9UfloatPack32     Format = 123
	FormatD16Unorm                 Format = 124
	FormatX8D24UnormPack32         Format = 125
	FormatD32Sfloat                Format = 126
	FormatS8Uint                   Format = 127
	FormatD16UnormS8Uint           Format = 128
	FormatD24UnormS8Uint           Format = 129
	FormatD32SfloatS8Uint          Format = 130
	FormatBC1RGBUnormBlock         Format = 131
	FormatBC1RGBSrgbBlock          Format = 132
	FormatBC1RGBAUnormBlock        Format = 133
	FormatBC1RGBASrgbBlock         Format = 134
	FormatBC2UnormBlock            Format = 135
	FormatBC2SrgbBlock             Format = 136
	FormatBC3UnormBlock            Format = 137
	FormatBC3SrgbBlock             Format = 138
	FormatBC4UnormBlock            Format = 139
	FormatBC4SnormBlock            Format = 140
	FormatBC5UnormBlock            Format = 141
	FormatBC5SnormBlock            Format = 142
	FormatBC6HUfloatBlock          Format = 143
	FormatBC6HSfloatBlock          Format = 144
	FormatBC7UnormBlock            Format = 145
	FormatBC7SrgbBlock             Format = 146
	FormatETC2R8G8B8UnormBlock     Format = 147
	FormatETC2R8G8B8SrgbBlock      Format = 148
	FormatETC2R8G8B8A1UnormBlock   Format = 149
	FormatETC2R8G8B8A1SrgbBlock    Format = 150
	FormatETC2R8G8B8A8UnormBlock   Format = 151
	FormatETC2R8G8B8A8SrgbBlock    Format = 152
	FormatEACR11UnormBlock         Format = 153
	FormatEACR11SnormBlock         Format = 154
	FormatEACR11G11UnormBlock      Format = 155
	FormatEACR11G11SnormBlock      Format = 156
	FormatASTC4x4UnormBlock        Format = 157
	FormatASTC4x4SrgbBlock         Format = 158
	FormatASTC5x4UnormBlock        Format = 159
	FormatASTC5x4SrgbBlock         Format = 160
	FormatASTC5x5UnormBlock        Format = 161
	FormatASTC5x5SrgbBlock         Format = 162
	FormatASTC6x5UnormBlock        Format = 163
	FormatASTC6x5SrgbBlock         Format = 164
	FormatASTC6x6UnormBlock        Format = 165
	FormatASTC6x6SrgbBlock         Format = 166
	FormatASTC8x5UnormBlock        Format = 167
	FormatASTC8x5SrgbBlock         Format = 168
	FormatASTC8x6UnormBlock        Format = 169
	FormatASTC8x6SrgbBlock         Format = 170
	FormatASTC8x8UnormBlock        Format = 171
	FormatASTC8x8SrgbBlock         Format = 172
	FormatASTC10x5UnormBlock       Format = 173
	FormatASTC10x5SrgbBlock        Format = 174
	FormatASTC10x6UnormBlock       Format = 175
	FormatASTC10x6SrgbBlock        Format = 176
	FormatASTC10x8UnormBlock       Format = 177
	FormatASTC10x8SrgbBlock        Format = 178
	FormatASTC10x10UnormBlock      Format = 179
	FormatASTC10x10SrgbBlock       Format = 180
	FormatASTC12x10UnormBlock      Format = 181
	FormatASTC12x10SrgbBlock       Format = 182
	FormatASTC12x12UnormBlock      Format = 183
	FormatASTC12x12SrgbBlock       Format = 184

	FormatG8B8G8R8422Unorm                     Format = 1000156000
	FormatB8G8R8G8422Unorm                     Format = 1000156001
	FormatG8B8R83Plane420Unorm                 Format = 1000156002
	FormatG8B8R82Plane420Unorm                 Format = 1000156003
	FormatG8B8R83Plane422Unorm                 Format = 1000156004
	FormatG8B8R82Plane422Unorm                 Format = 1000156005
	FormatG8B8R83Plane444Unorm                 Format = 1000156006
	FormatR10X6UnormPack16                     Format = 1000156007
	FormatR10X6G10X6Unorm2Pack16               Format = 1000156008
	FormatR10X6G10X6B10X6A10X6Unorm4Pack16     Format = 1000156009
	FormatG10X6B10X6G10X6R10X6422Unorm4Pack16  Format = 1000156010
	FormatB10X6G10X6R10X6G10X6422Unorm4Pack16  Format = 1000156011
	FormatG10X6B10X6R10X63Plane420Unorm3Pack16 Format = 1000156012
	FormatG10X6B10X6R10X62Plane420Unorm3Pack16 Format = 1000156013
	FormatG10X6B10X6R10X63Plane422Unorm3Pack16 Format = 1000156014
	FormatG10X6B10X6R10X62Plane422Unorm3Pack16 Format = 1000156015
	FormatG10X6B10X6R10X63Plane444Unorm3Pack16 Format = 1000156016
	FormatR12X4UnormPack16                     Format = 1000156017
	FormatR12X4G12X4Unorm2Pack16               Format = 1000156018
	FormatR12X4G12X4B12X4A12X4Unorm4Pack16     Format = 1000156019
	FormatG12X4B12X4G12X4R12X4422Unorm4Pack16  Format = 1000156020
	FormatB12X4G12X4R12X4G12X4422Unorm4Pack16  Format = 1000156021
	FormatG12X4B12X4R12X43Plane420Unorm3Pack16 Format = 1000156022
	FormatG12X4B12X4R12X42Plane420Unorm3Pack16 Format = 1000156023
	FormatG12X4B12X4R12X43Plane422Unorm3Pack16 Format = 1000156024
	FormatG12X4B12X4R12X42Plane422Unorm3Pack16 Format = 1000156025
	FormatG12X4B12X4R12X43Plane444Unorm3Pack16 Format = 1000156026
	FormatG16B16G16R16422Unorm                 Format = 1000156027
	FormatB16G16R16G16422Unorm                 Format = 1000156028
	FormatG16B16R163Plane420Unorm              Format = 1000156029
	FormatG16B16R162Plane420Unorm              Format = 1000156030
	FormatG16B16R163Plane422Unorm              Format = 1000156031
	FormatG16B16R162Plane422Unorm              Format = 1000156032
	FormatG16B16R163Plane444Unorm              Format = 1000156033
)
