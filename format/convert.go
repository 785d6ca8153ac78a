package format

import "github.com/gogpu/gputypes"

// TextureFormat returns the WebGPU format equivalent to f.
// Returns false for formats WebGPU cannot represent.
func (f Format) TextureFormat() (gputypes.TextureFormat, bool) {
	switch f {
	case FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm, true
	case FormatR8G8B8A8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatR8G8B8A8Srgb:
		return gputypes.TextureFormatRGBA8UnormSrgb, true
	case FormatB8G8R8A8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, true
	case FormatB8G8R8A8Srgb:
		return gputypes.TextureFormatBGRA8UnormSrgb, true
	case FormatR32Sfloat:
		return gputypes.TextureFormatR32Float, true
	case FormatR32G32Sfloat:
		return gputypes.TextureFormatRG32Float, true
	case FormatR32G32B32A32Sfloat:
		return gputypes.TextureFormatRGBA32Float, true
	case FormatD24UnormS8Uint:
		return gputypes.TextureFormatDepth24PlusStencil8, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

// FromTextureFormat returns the format equivalent to a WebGPU format.
// Returns false for WebGPU formats not in the table.
func FromTextureFormat(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return FormatR8Unorm, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatR8G8B8A8Unorm, true
	case gputypes.TextureFormatRGBA8UnormSrgb:
		return FormatR8G8B8A8Srgb, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatB8G8R8A8Unorm, true
	case gputypes.TextureFormatBGRA8UnormSrgb:
		return FormatB8G8R8A8Srgb, true
	case gputypes.TextureFormatR32Float:
		return FormatR32Sfloat, true
	case gputypes.TextureFormatRG32Float:
		return FormatR32G32Sfloat, true
	case gputypes.TextureFormatRGBA32Float:
		return FormatR32G32B32A32Sfloat, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24UnormS8Uint, true
	default:
		return FormatUndefined, false
	}
}
