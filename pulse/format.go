package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// SelectSurfaceFormat returns the first sRGB format, or the first format
// if the list contains no sRGB format at all. Drawing code assumes an
// sRGB target; other targets make colors come out darker.
//
// The list must not be empty, drivers always report at least one format.
func SelectSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		if IsSrgb(format) {
			return format
		}
	}

	return formats[0]
}

// IsSrgb reports whether the format is sRGB encoded. Only formats a
// surface can present are considered.
func IsSrgb(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}
