// Package format describes GPU image formats: texel block layout, block size
// in bytes and the buffer element types a format can be copied to and from.
//
// Names follow the Vulkan format naming, e.g. [FormatR8G8B8A8Unorm] is
// "R8G8B8A8_UNORM" and [FormatBC1RGBUnormBlock] is "BC1_RGB_UNORM_BLOCK".
// Metadata comes from a static table; nothing is derived at runtime.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when a format name or value is not in the table.
var ErrUnknownFormat = errors.New("format: unknown format")

// Format identifies an image format.
type Format uint16

const (
	// FormatUndefined is the zero value and never a valid image format.
	FormatUndefined Format = iota

	// Packed formats.
	FormatR4G4UnormPack8
	FormatR4G4B4A4UnormPack16
	FormatB4G4R4A4UnormPack16
	FormatR5G6B5UnormPack16
	FormatB5G6R5UnormPack16
	FormatR5G5B5A1UnormPack16
	FormatB5G5R5A1UnormPack16
	FormatA1R5G5B5UnormPack16

	// 8-bit channel formats.
	FormatR8Unorm
	FormatR8Snorm
	FormatR8Uscaled
	FormatR8Sscaled
	FormatR8Uint
	FormatR8Sint
	FormatR8Srgb
	FormatR8G8Unorm
	FormatR8G8Snorm
	FormatR8G8Uscaled
	FormatR8G8Sscaled
	FormatR8G8Uint
	FormatR8G8Sint
	FormatR8G8Srgb
	FormatR8G8B8Unorm
	FormatR8G8B8Snorm
	FormatR8G8B8Uscaled
	FormatR8G8B8Sscaled
	FormatR8G8B8Uint
	FormatR8G8B8Sint
	FormatR8G8B8Srgb
	FormatB8G8R8Unorm
	FormatB8G8R8Snorm
	FormatB8G8R8Uscaled
	FormatB8G8R8Sscaled
	FormatB8G8R8Uint
	FormatB8G8R8Sint
	FormatB8G8R8Srgb
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8Snorm
	FormatR8G8B8A8Uscaled
	FormatR8G8B8A8Sscaled
	FormatR8G8B8A8Uint
	FormatR8G8B8A8Sint
	FormatR8G8B8A8Srgb
	FormatB8G8R8A8Unorm
	FormatB8G8R8A8Snorm
	FormatB8G8R8A8Uscaled
	FormatB8G8R8A8Sscaled
	FormatB8G8R8A8Uint
	FormatB8G8R8A8Sint
	FormatB8G8R8A8Srgb

	// Packed 32-bit formats.
	FormatA8B8G8R8UnormPack32
	FormatA8B8G8R8SnormPack32
	FormatA8B8G8R8UscaledPack32
	FormatA8B8G8R8SscaledPack32
	FormatA8B8G8R8UintPack32
	FormatA8B8G8R8SintPack32
	FormatA8B8G8R8SrgbPack32
	FormatA2R10G10B10UnormPack32
	FormatA2R10G10B10SnormPack32
	FormatA2R10G10B10UscaledPack32
	FormatA2R10G10B10SscaledPack32
	FormatA2R10G10B10UintPack32
	FormatA2R10G10B10SintPack32
	FormatA2B10G10R10UnormPack32
	FormatA2B10G10R10SnormPack32
	FormatA2B10G10R10UscaledPack32
	FormatA2B10G10R10SscaledPack32
	FormatA2B10G10R10UintPack32
	FormatA2B10G10R10SintPack32

	// 16-bit channel formats.
	FormatR16Unorm
	FormatR16Snorm
	FormatR16Uscaled
	FormatR16Sscaled
	FormatR16Uint
	FormatR16Sint
	FormatR16Sfloat
	FormatR16G16Unorm
	FormatR16G16Snorm
	FormatR16G16Uscaled
	FormatR16G16Sscaled
	FormatR16G16Uint
	FormatR16G16Sint
	FormatR16G16Sfloat
	FormatR16G16B16Unorm
	FormatR16G16B16Snorm
	FormatR16G16B16Uscaled
	FormatR16G16B16Sscaled
	FormatR16G16B16Uint
	FormatR16G16B16Sint
	FormatR16G16B16Sfloat
	FormatR16G16B16A16Unorm
	FormatR16G16B16A16Snorm
	FormatR16G16B16A16Uscaled
	FormatR16G16B16A16Sscaled
	FormatR16G16B16A16Uint
	FormatR16G16B16A16Sint
	FormatR16G16B16A16Sfloat

	// 32-bit channel formats.
	FormatR32Uint
	FormatR32Sint
	FormatR32Sfloat
	FormatR32G32Uint
	FormatR32G32Sint
	FormatR32G32Sfloat
	FormatR32G32B32Uint
	FormatR32G32B32Sint
	FormatR32G32B32Sfloat
	FormatR32G32B32A32Uint
	FormatR32G32B32A32Sint
	FormatR32G32B32A32Sfloat

	// 64-bit channel formats.
	FormatR64Uint
	FormatR64Sint
	FormatR64Sfloat
	FormatR64G64Uint
	FormatR64G64Sint
	FormatR64G64Sfloat
	FormatR64G64B64Uint
	FormatR64G64B64Sint
	FormatR64G64B64Sfloat
	FormatR64G64B64A64Uint
	FormatR64G64B64A64Sint
	FormatR64G64B64A64Sfloat

	// Packed float formats.
	FormatB10G11R11UfloatPack32
	FormatE5B9G9R9UfloatPack32

	// Depth and stencil formats.
	FormatD16Unorm
	FormatX8D24UnormPack32
	FormatD32Sfloat
	FormatS8Uint
	FormatD16UnormS8Uint
	FormatD24UnormS8Uint
	FormatD32SfloatS8Uint

	// BC compressed formats.
	FormatBC1RGBUnormBlock
	FormatBC1RGBSrgbBlock
	FormatBC1RGBAUnormBlock
	FormatBC1RGBASrgbBlock
	FormatBC2UnormBlock
	FormatBC2SrgbBlock
	FormatBC3UnormBlock
	FormatBC3SrgbBlock
	FormatBC4UnormBlock
	FormatBC4SnormBlock
	FormatBC5UnormBlock
	FormatBC5SnormBlock
	FormatBC6HUfloatBlock
	FormatBC6HSfloatBlock
	FormatBC7UnormBlock
	FormatBC7SrgbBlock

	// ETC2 and EAC compressed formats.
	FormatETC2R8G8B8UnormBlock
	FormatETC2R8G8B8SrgbBlock
	FormatETC2R8G8B8A1UnormBlock
	FormatETC2R8G8B8A1SrgbBlock
	FormatETC2R8G8B8A8UnormBlock
	FormatETC2R8G8B8A8SrgbBlock
	FormatEACR11UnormBlock
	FormatEACR11SnormBlock
	FormatEACR11G11UnormBlock
	FormatEACR11G11SnormBlock

	// ASTC compressed formats.
	FormatASTC4x4UnormBlock
	FormatASTC4x4SrgbBlock
	FormatASTC5x4UnormBlock
	FormatASTC5x4SrgbBlock
	FormatASTC5x5UnormBlock
	FormatASTC5x5SrgbBlock
	FormatASTC6x5UnormBlock
	FormatASTC6x5SrgbBlock
	FormatASTC6x6UnormBlock
	FormatASTC6x6SrgbBlock
	FormatASTC8x5UnormBlock
	FormatASTC8x5SrgbBlock
	FormatASTC8x6UnormBlock
	FormatASTC8x6SrgbBlock
	FormatASTC8x8UnormBlock
	FormatASTC8x8SrgbBlock
	FormatASTC10x5UnormBlock
	FormatASTC10x5SrgbBlock
	FormatASTC10x6UnormBlock
	FormatASTC10x6SrgbBlock
	FormatASTC10x8UnormBlock
	FormatASTC10x8SrgbBlock
	FormatASTC10x10UnormBlock
	FormatASTC10x10SrgbBlock
	FormatASTC12x10UnormBlock
	FormatASTC12x10SrgbBlock
	FormatASTC12x12UnormBlock
	FormatASTC12x12SrgbBlock

	formatCount
)

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]formatInfo{
	FormatR4G4UnormPack8:           packed("R4G4_UNORM_PACK8", 1),
	FormatR4G4B4A4UnormPack16:      packed("R4G4B4A4_UNORM_PACK16", 2),
	FormatB4G4R4A4UnormPack16:      packed("B4G4R4A4_UNORM_PACK16", 2),
	FormatR5G6B5UnormPack16:        packed("R5G6B5_UNORM_PACK16", 2),
	FormatB5G6R5UnormPack16:        packed("B5G6R5_UNORM_PACK16", 2),
	FormatR5G5B5A1UnormPack16:      packed("R5G5B5A1_UNORM_PACK16", 2),
	FormatB5G5R5A1UnormPack16:      packed("B5G5R5A1_UNORM_PACK16", 2),
	FormatA1R5G5B5UnormPack16:      packed("A1R5G5B5_UNORM_PACK16", 2),
	FormatR8Unorm:                  plain("R8_UNORM", ScalarU8, 1),
	FormatR8Snorm:                  plain("R8_SNORM", ScalarI8, 1),
	FormatR8Uscaled:                plain("R8_USCALED", ScalarU8, 1),
	FormatR8Sscaled:                plain("R8_SSCALED", ScalarI8, 1),
	FormatR8Uint:                   plain("R8_UINT", ScalarU8, 1),
	FormatR8Sint:                   plain("R8_SINT", ScalarI8, 1),
	FormatR8Srgb:                   plain("R8_SRGB", ScalarU8, 1).srgb(),
	FormatR8G8Unorm:                plain("R8G8_UNORM", ScalarU8, 2),
	FormatR8G8Snorm:                plain("R8G8_SNORM", ScalarI8, 2),
	FormatR8G8Uscaled:              plain("R8G8_USCALED", ScalarU8, 2),
	FormatR8G8Sscaled:              plain("R8G8_SSCALED", ScalarI8, 2),
	FormatR8G8Uint:                 plain("R8G8_UINT", ScalarU8, 2),
	FormatR8G8Sint:                 plain("R8G8_SINT", ScalarI8, 2),
	FormatR8G8Srgb:                 plain("R8G8_SRGB", ScalarU8, 2).srgb(),
	FormatR8G8B8Unorm:              plain("R8G8B8_UNORM", ScalarU8, 3),
	FormatR8G8B8Snorm:              plain("R8G8B8_SNORM", ScalarI8, 3),
	FormatR8G8B8Uscaled:            plain("R8G8B8_USCALED", ScalarU8, 3),
	FormatR8G8B8Sscaled:            plain("R8G8B8_SSCALED", ScalarI8, 3),
	FormatR8G8B8Uint:               plain("R8G8B8_UINT", ScalarU8, 3),
	FormatR8G8B8Sint:               plain("R8G8B8_SINT", ScalarI8, 3),
	FormatR8G8B8Srgb:               plain("R8G8B8_SRGB", ScalarU8, 3).srgb(),
	FormatB8G8R8Unorm:              plain("B8G8R8_UNORM", ScalarU8, 3),
	FormatB8G8R8Snorm:              plain("B8G8R8_SNORM", ScalarI8, 3),
	FormatB8G8R8Uscaled:            plain("B8G8R8_USCALED", ScalarU8, 3),
	FormatB8G8R8Sscaled:            plain("B8G8R8_SSCALED", ScalarI8, 3),
	FormatB8G8R8Uint:               plain("B8G8R8_UINT", ScalarU8, 3),
	FormatB8G8R8Sint:               plain("B8G8R8_SINT", ScalarI8, 3),
	FormatB8G8R8Srgb:               plain("B8G8R8_SRGB", ScalarU8, 3).srgb(),
	FormatR8G8B8A8Unorm:            plain("R8G8B8A8_UNORM", ScalarU8, 4),
	FormatR8G8B8A8Snorm:            plain("R8G8B8A8_SNORM", ScalarI8, 4),
	FormatR8G8B8A8Uscaled:          plain("R8G8B8A8_USCALED", ScalarU8, 4),
	FormatR8G8B8A8Sscaled:          plain("R8G8B8A8_SSCALED", ScalarI8, 4),
	FormatR8G8B8A8Uint:             plain("R8G8B8A8_UINT", ScalarU8, 4),
	FormatR8G8B8A8Sint:             plain("R8G8B8A8_SINT", ScalarI8, 4),
	FormatR8G8B8A8Srgb:             plain("R8G8B8A8_SRGB", ScalarU8, 4).srgb(),
	FormatB8G8R8A8Unorm:            plain("B8G8R8A8_UNORM", ScalarU8, 4),
	FormatB8G8R8A8Snorm:            plain("B8G8R8A8_SNORM", ScalarI8, 4),
	FormatB8G8R8A8Uscaled:          plain("B8G8R8A8_USCALED", ScalarU8, 4),
	FormatB8G8R8A8Sscaled:          plain("B8G8R8A8_SSCALED", ScalarI8, 4),
	FormatB8G8R8A8Uint:             plain("B8G8R8A8_UINT", ScalarU8, 4),
	FormatB8G8R8A8Sint:             plain("B8G8R8A8_SINT", ScalarI8, 4),
	FormatB8G8R8A8Srgb:             plain("B8G8R8A8_SRGB", ScalarU8, 4).srgb(),
	FormatA8B8G8R8UnormPack32:      packed("A8B8G8R8_UNORM_PACK32", 4),
	FormatA8B8G8R8SnormPack32:      packed("A8B8G8R8_SNORM_PACK32", 4),
	FormatA8B8G8R8UscaledPack32:    packed("A8B8G8R8_USCALED_PACK32", 4),
	FormatA8B8G8R8SscaledPack32:    packed("A8B8G8R8_SSCALED_PACK32", 4),
	FormatA8B8G8R8UintPack32:       packed("A8B8G8R8_UINT_PACK32", 4),
	FormatA8B8G8R8SintPack32:       packed("A8B8G8R8_SINT_PACK32", 4),
	FormatA8B8G8R8SrgbPack32:       packed("A8B8G8R8_SRGB_PACK32", 4).srgb(),
	FormatA2R10G10B10UnormPack32:   packed("A2R10G10B10_UNORM_PACK32", 4),
	FormatA2R10G10B10SnormPack32:   packed("A2R10G10B10_SNORM_PACK32", 4),
	FormatA2R10G10B10UscaledPack32: packed("A2R10G10B10_USCALED_PACK32", 4),
	FormatA2R10G10B10SscaledPack32: packed("A2R10G10B10_SSCALED_PACK32", 4),
	FormatA2R10G10B10UintPack32:    packed("A2R10G10B10_UINT_PACK32", 4),
	FormatA2R10G10B10SintPack32:    packed("A2R10G10B10_SINT_PACK32", 4),
	FormatA2B10G10R10UnormPack32:   packed("A2B10G10R10_UNORM_PACK32", 4),
	FormatA2B10G10R10SnormPack32:   packed("A2B10G10R10_SNORM_PACK32", 4),
	FormatA2B10G10R10UscaledPack32: packed("A2B10G10R10_USCALED_PACK32", 4),
	FormatA2B10G10R10SscaledPack32: packed("A2B10G10R10_SSCALED_PACK32", 4),
	FormatA2B10G10R10UintPack32:    packed("A2B10G10R10_UINT_PACK32", 4),
	FormatA2B10G10R10SintPack32:    packed("A2B10G10R10_SINT_PACK32", 4),
	FormatR16Unorm:                 plain("R16_UNORM", ScalarU16, 1),
	FormatR16Snorm:                 plain("R16_SNORM", ScalarI16, 1),
	FormatR16Uscaled:               plain("R16_USCALED", ScalarU16, 1),
	FormatR16Sscaled:               plain("R16_SSCALED", ScalarI16, 1),
	FormatR16Uint:                  plain("R16_UINT", ScalarU16, 1),
	FormatR16Sint:                  plain("R16_SINT", ScalarI16, 1),
	FormatR16Sfloat:                plain("R16_SFLOAT", ScalarF16, 1),
	FormatR16G16Unorm:              plain("R16G16_UNORM", ScalarU16, 2),
	FormatR16G16Snorm:              plain("R16G16_SNORM", ScalarI16, 2),
	FormatR16G16Uscaled:            plain("R16G16_USCALED", ScalarU16, 2),
	FormatR16G16Sscaled:            plain("R16G16_SSCALED", ScalarI16, 2),
	FormatR16G16Uint:               plain("R16G16_UINT", ScalarU16, 2),
	FormatR16G16Sint:               plain("R16G16_SINT", ScalarI16, 2),
	FormatR16G16Sfloat:             plain("R16G16_SFLOAT", ScalarF16, 2),
	FormatR16G16B16Unorm:           plain("R16G16B16_UNORM", ScalarU16, 3),
	FormatR16G16B16Snorm:           plain("R16G16B16_SNORM", ScalarI16, 3),
	FormatR16G16B16Uscaled:         plain("R16G16B16_USCALED", ScalarU16, 3),
	FormatR16G16B16Sscaled:         plain("R16G16B16_SSCALED", ScalarI16, 3),
	FormatR16G16B16Uint:            plain("R16G16B16_UINT", ScalarU16, 3),
	FormatR16G16B16Sint:            plain("R16G16B16_SINT", ScalarI16, 3),
	FormatR16G16B16Sfloat:          plain("R16G16B16_SFLOAT", ScalarF16, 3),
	FormatR16G16B16A16Unorm:        plain("R16G16B16A16_UNORM", ScalarU16, 4),
	FormatR16G16B16A16Snorm:        plain("R16G16B16A16_SNORM", ScalarI16, 4),
	FormatR16G16B16A16Uscaled:      plain("R16G16B16A16_USCALED", ScalarU16, 4),
	FormatR16G16B16A16Sscaled:      plain("R16G16B16A16_SSCALED", ScalarI16, 4),
	FormatR16G16B16A16Uint:         plain("R16G16B16A16_UINT", ScalarU16, 4),
	FormatR16G16B16A16Sint:         plain("R16G16B16A16_SINT", ScalarI16, 4),
	FormatR16G16B16A16Sfloat:       plain("R16G16B16A16_SFLOAT", ScalarF16, 4),
	FormatR32Uint:                  plain("R32_UINT", ScalarU32, 1),
	FormatR32Sint:                  plain("R32_SINT", ScalarI32, 1),
	FormatR32Sfloat:                plain("R32_SFLOAT", ScalarF32, 1),
	FormatR32G32Uint:               plain("R32G32_UINT", ScalarU32, 2),
	FormatR32G32Sint:               plain("R32G32_SINT", ScalarI32, 2),
	FormatR32G32Sfloat:             plain("R32G32_SFLOAT", ScalarF32, 2),
	FormatR32G32B32Uint:            plain("R32G32B32_UINT", ScalarU32, 3),
	FormatR32G32B32Sint:            plain("R32G32B32_SINT", ScalarI32, 3),
	FormatR32G32B32Sfloat:          plain("R32G32B32_SFLOAT", ScalarF32, 3),
	FormatR32G32B32A32Uint:         plain("R32G32B32A32_UINT", ScalarU32, 4),
	FormatR32G32B32A32Sint:         plain("R32G32B32A32_SINT", ScalarI32, 4),
	FormatR32G32B32A32Sfloat:       plain("R32G32B32A32_SFLOAT", ScalarF32, 4),
	FormatR64Uint:                  plain("R64_UINT", ScalarU64, 1),
	FormatR64Sint:                  plain("R64_SINT", ScalarI64, 1),
	FormatR64Sfloat:                plain("R64_SFLOAT", ScalarF64, 1),
	FormatR64G64Uint:               plain("R64G64_UINT", ScalarU64, 2),
	FormatR64G64Sint:               plain("R64G64_SINT", ScalarI64, 2),
	FormatR64G64Sfloat:             plain("R64G64_SFLOAT", ScalarF64, 2),
	FormatR64G64B64Uint:            plain("R64G64B64_UINT", ScalarU64, 3),
	FormatR64G64B64Sint:            plain("R64G64B64_SINT", ScalarI64, 3),
	FormatR64G64B64Sfloat:          plain("R64G64B64_SFLOAT", ScalarF64, 3),
	FormatR64G64B64A64Uint:         plain("R64G64B64A64_UINT", ScalarU64, 4),
	FormatR64G64B64A64Sint:         plain("R64G64B64A64_SINT", ScalarI64, 4),
	FormatR64G64B64A64Sfloat:       plain("R64G64B64A64_SFLOAT", ScalarF64, 4),
	FormatB10G11R11UfloatPack32:    packed("B10G11R11_UFLOAT_PACK32", 4),
	FormatE5B9G9R9UfloatPack32:     packed("E5B9G9R9_UFLOAT_PACK32", 4),
	FormatD16Unorm:                 depth("D16_UNORM", ScalarU16, 2, AspectDepth),
	FormatX8D24UnormPack32:         depth("X8_D24_UNORM_PACK32", ScalarU32, 4, AspectDepth),
	FormatD32Sfloat:                depth("D32_SFLOAT", ScalarF32, 4, AspectDepth),
	FormatS8Uint:                   depth("S8_UINT", ScalarU8, 1, AspectStencil),
	FormatD16UnormS8Uint:           depth("D16_UNORM_S8_UINT", ScalarNone, 3, AspectDepthStencil),
	FormatD24UnormS8Uint:           depth("D24_UNORM_S8_UINT", ScalarU32, 4, AspectDepthStencil),
	FormatD32SfloatS8Uint:          depth("D32_SFLOAT_S8_UINT", ScalarNone, 5, AspectDepthStencil),
	FormatBC1RGBUnormBlock:         block("BC1_RGB_UNORM_BLOCK", FamilyBC, 4, 4, 8),
	FormatBC1RGBSrgbBlock:          block("BC1_RGB_SRGB_BLOCK", FamilyBC, 4, 4, 8).srgb(),
	FormatBC1RGBAUnormBlock:        block("BC1_RGBA_UNORM_BLOCK", FamilyBC, 4, 4, 8),
	FormatBC1RGBASrgbBlock:         block("BC1_RGBA_SRGB_BLOCK", FamilyBC, 4, 4, 8).srgb(),
	FormatBC2UnormBlock:            block("BC2_UNORM_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC2SrgbBlock:             block("BC2_SRGB_BLOCK", FamilyBC, 4, 4, 16).srgb(),
	FormatBC3UnormBlock:            block("BC3_UNORM_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC3SrgbBlock:             block("BC3_SRGB_BLOCK", FamilyBC, 4, 4, 16).srgb(),
	FormatBC4UnormBlock:            block("BC4_UNORM_BLOCK", FamilyBC, 4, 4, 8),
	FormatBC4SnormBlock:            block("BC4_SNORM_BLOCK", FamilyBC, 4, 4, 8),
	FormatBC5UnormBlock:            block("BC5_UNORM_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC5SnormBlock:            block("BC5_SNORM_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC6HUfloatBlock:          block("BC6H_UFLOAT_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC6HSfloatBlock:          block("BC6H_SFLOAT_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC7UnormBlock:            block("BC7_UNORM_BLOCK", FamilyBC, 4, 4, 16),
	FormatBC7SrgbBlock:             block("BC7_SRGB_BLOCK", FamilyBC, 4, 4, 16).srgb(),
	FormatETC2R8G8B8UnormBlock:     block("ETC2_R8G8B8_UNORM_BLOCK", FamilyETC2, 4, 4, 8),
	FormatETC2R8G8B8SrgbBlock:      block("ETC2_R8G8B8_SRGB_BLOCK", FamilyETC2, 4, 4, 8).srgb(),
	FormatETC2R8G8B8A1UnormBlock:   block("ETC2_R8G8B8A1_UNORM_BLOCK", FamilyETC2, 4, 4, 8),
	FormatETC2R8G8B8A1SrgbBlock:    block("ETC2_R8G8B8A1_SRGB_BLOCK", FamilyETC2, 4, 4, 8).srgb(),
	FormatETC2R8G8B8A8UnormBlock:   block("ETC2_R8G8B8A8_UNORM_BLOCK", FamilyETC2, 4, 4, 16),
	FormatETC2R8G8B8A8SrgbBlock:    block("ETC2_R8G8B8A8_SRGB_BLOCK", FamilyETC2, 4, 4, 16).srgb(),
	FormatEACR11UnormBlock:         block("EAC_R11_UNORM_BLOCK", FamilyEAC, 4, 4, 8),
	FormatEACR11SnormBlock:         block("EAC_R11_SNORM_BLOCK", FamilyEAC, 4, 4, 8),
	FormatEACR11G11UnormBlock:      block("EAC_R11G11_UNORM_BLOCK", FamilyEAC, 4, 4, 16),
	FormatEACR11G11SnormBlock:      block("EAC_R11G11_SNORM_BLOCK", FamilyEAC, 4, 4, 16),
	FormatASTC4x4UnormBlock:        block("ASTC_4x4_UNORM_BLOCK", FamilyASTC, 4, 4, 16),
	FormatASTC4x4SrgbBlock:         block("ASTC_4x4_SRGB_BLOCK", FamilyASTC, 4, 4, 16).srgb(),
	FormatASTC5x4UnormBlock:        block("ASTC_5x4_UNORM_BLOCK", FamilyASTC, 5, 4, 16),
	FormatASTC5x4SrgbBlock:         block("ASTC_5x4_SRGB_BLOCK", FamilyASTC, 5, 4, 16).srgb(),
	FormatASTC5x5UnormBlock:        block("ASTC_5x5_UNORM_BLOCK", FamilyASTC, 5, 5, 16),
	FormatASTC5x5SrgbBlock:         block("ASTC_5x5_SRGB_BLOCK", FamilyASTC, 5, 5, 16).srgb(),
	FormatASTC6x5UnormBlock:        block("ASTC_6x5_UNORM_BLOCK", FamilyASTC, 6, 5, 16),
	FormatASTC6x5SrgbBlock:         block("ASTC_6x5_SRGB_BLOCK", FamilyASTC, 6, 5, 16).srgb(),
	FormatASTC6x6UnormBlock:        block("ASTC_6x6_UNORM_BLOCK", FamilyASTC, 6, 6, 16),
	FormatASTC6x6SrgbBlock:         block("ASTC_6x6_SRGB_BLOCK", FamilyASTC, 6, 6, 16).srgb(),
	FormatASTC8x5UnormBlock:        block("ASTC_8x5_UNORM_BLOCK", FamilyASTC, 8, 5, 16),
	FormatASTC8x5SrgbBlock:         block("ASTC_8x5_SRGB_BLOCK", FamilyASTC, 8, 5, 16).srgb(),
	FormatASTC8x6UnormBlock:        block("ASTC_8x6_UNORM_BLOCK", FamilyASTC, 8, 6, 16),
	FormatASTC8x6SrgbBlock:         block("ASTC_8x6_SRGB_BLOCK", FamilyASTC, 8, 6, 16).srgb(),
	FormatASTC8x8UnormBlock:        block("ASTC_8x8_UNORM_BLOCK", FamilyASTC, 8, 8, 16),
	FormatASTC8x8SrgbBlock:         block("ASTC_8x8_SRGB_BLOCK", FamilyASTC, 8, 8, 16).srgb(),
	FormatASTC10x5UnormBlock:       block("ASTC_10x5_UNORM_BLOCK", FamilyASTC, 10, 5, 16),
	FormatASTC10x5SrgbBlock:        block("ASTC_10x5_SRGB_BLOCK", FamilyASTC, 10, 5, 16).srgb(),
	FormatASTC10x6UnormBlock:       block("ASTC_10x6_UNORM_BLOCK", FamilyASTC, 10, 6, 16),
	FormatASTC10x6SrgbBlock:        block("ASTC_10x6_SRGB_BLOCK", FamilyASTC, 10, 6, 16).srgb(),
	FormatASTC10x8UnormBlock:       block("ASTC_10x8_UNORM_BLOCK", FamilyASTC, 10, 8, 16),
	FormatASTC10x8SrgbBlock:        block("ASTC_10x8_SRGB_BLOCK", FamilyASTC, 10, 8, 16).srgb(),
	FormatASTC10x10UnormBlock:      block("ASTC_10x10_UNORM_BLOCK", FamilyASTC, 10, 10, 16),
	FormatASTC10x10SrgbBlock:       block("ASTC_10x10_SRGB_BLOCK", FamilyASTC, 10, 10, 16).srgb(),
	FormatASTC12x10UnormBlock:      block("ASTC_12x10_UNORM_BLOCK", FamilyASTC, 12, 10, 16),
	FormatASTC12x10SrgbBlock:       block("ASTC_12x10_SRGB_BLOCK", FamilyASTC, 12, 10, 16).srgb(),
	FormatASTC12x12UnormBlock:      block("ASTC_12x12_UNORM_BLOCK", FamilyASTC, 12, 12, 16),
	FormatASTC12x12SrgbBlock:       block("ASTC_12x12_SRGB_BLOCK", FamilyASTC, 12, 12, 16).srgb(),
}

// Family groups formats by their block encoding.
type Family uint8

// Format families.
const (
	// FamilyUncompressed formats store one texel per block.
	FamilyUncompressed Family = iota
	FamilyBC
	FamilyETC2
	FamilyEAC
	FamilyASTC
)

// String returns the string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilyUncompressed:
		return "uncompressed"
	case FamilyBC:
		return "BC"
	case FamilyETC2:
		return "ETC2"
	case FamilyEAC:
		return "EAC"
	case FamilyASTC:
		return "ASTC"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Aspect is the kind of data a format stores.
type Aspect uint8

// Format aspects.
const (
	AspectColor Aspect = iota
	AspectDepth
	AspectStencil
	AspectDepthStencil
)

// String returns the string representation of the aspect.
func (a Aspect) String() string {
	switch a {
	case AspectColor:
		return "color"
	case AspectDepth:
		return "depth"
	case AspectStencil:
		return "stencil"
	case AspectDepthStencil:
		return "depth-stencil"
	default:
		return fmt.Sprintf("Aspect(%d)", uint8(a))
	}
}

// formatInfo is one row of the format table.
type formatInfo struct {
	name string

	blockWidth  uint32
	blockHeight uint32
	blockBytes  uint32

	// scalar and components describe the typed view of one block.
	// ScalarNone means the block can only be addressed as raw bytes.
	scalar     Scalar
	components uint32

	family Family
	aspect Aspect
	isSRGB bool
}

func plain(name string, s Scalar, components uint32) formatInfo {
	return formatInfo{
		name:        name,
		blockWidth:  1,
		blockHeight: 1,
		blockBytes:  s.Size() * components,
		scalar:      s,
		components:  components,
	}
}

// packed describes a format whose channels share a single 8, 16 or 32-bit word.
func packed(name string, bytes uint32) formatInfo {
	var s Scalar
	switch bytes {
	case 1:
		s = ScalarU8
	case 2:
		s = ScalarU16
	case 4:
		s = ScalarU32
	}
	return formatInfo{
		name:        name,
		blockWidth:  1,
		blockHeight: 1,
		blockBytes:  bytes,
		scalar:      s,
		components:  1,
	}
}

func depth(name string, s Scalar, bytes uint32, aspect Aspect) formatInfo {
	info := formatInfo{
		name:        name,
		blockWidth:  1,
		blockHeight: 1,
		blockBytes:  bytes,
		scalar:      s,
		aspect:      aspect,
	}
	if s != ScalarNone {
		info.components = 1
	}
	return info
}

func block(name string, family Family, width, height, bytes uint32) formatInfo {
	return formatInfo{
		name:        name,
		blockWidth:  width,
		blockHeight: height,
		blockBytes:  bytes,
		family:      family,
	}
}

func (i formatInfo) srgb() formatInfo {
	i.isSRGB = true
	return i
}

var formatsByName = func() map[string]Format {
	m := make(map[string]Format, formatCount)
	for f := FormatUndefined + 1; f < formatCount; f++ {
		m[strings.ToUpper(formatInfoTable[f].name)] = f
	}
	return m
}()

func (f Format) info() formatInfo {
	if !f.IsValid() {
		return formatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is a known format other than FormatUndefined.
func (f Format) IsValid() bool {
	return f > FormatUndefined && f < formatCount
}

// String returns the Vulkan style name of the format, e.g. "R8G8B8A8_UNORM".
func (f Format) String() string {
	if f == FormatUndefined {
		return "UNDEFINED"
	}
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint16(f))
	}
	return formatInfoTable[f].name
}

// BlockDimensions returns the width and height in texels of one block.
// Uncompressed formats have 1x1 blocks.
func (f Format) BlockDimensions() (width, height uint32) {
	info := f.info()
	return info.blockWidth, info.blockHeight
}

// BlockSize returns the size in bytes of one block.
func (f Format) BlockSize() uint32 {
	return f.info().blockBytes
}

// IsCompressed reports whether f is a block-compressed format.
func (f Format) IsCompressed() bool {
	return f.info().family != FamilyUncompressed
}

// Family returns the block encoding family of f.
func (f Format) Family() Family {
	return f.info().family
}

// Aspect returns whether f stores color, depth, stencil or depth and stencil.
func (f Format) Aspect() Aspect {
	return f.info().aspect
}

// IsSRGB reports whether f stores color in the sRGB transfer function.
func (f Format) IsSRGB() bool {
	return f.info().isSRGB
}

// Components returns the typed element type of one block, or a zero
// PixelType for formats that can only be addressed as raw bytes.
func (f Format) Components() PixelType {
	info := f.info()
	if info.scalar == ScalarNone {
		return PixelType{}
	}
	return PixelType{Scalar: info.scalar, Count: info.components}
}

// BytesPerRow returns the number of bytes in one row of blocks of an image
// region that is width texels wide.
func (f Format) BytesPerRow(width uint32) uint64 {
	info := f.info()
	if info.blockWidth == 0 {
		return 0
	}
	return uint64(ceilDiv(width, info.blockWidth)) * uint64(info.blockBytes)
}

// BlockRows returns the number of block rows in an image region that is
// height texels tall.
func (f Format) BlockRows(height uint32) uint32 {
	info := f.info()
	if info.blockHeight == 0 {
		return 0
	}
	return ceilDiv(height, info.blockHeight)
}

// ParseFormat looks up a format by its Vulkan style name. Matching is case
// insensitive and an optional "VK_FORMAT_" prefix is ignored.
func ParseFormat(name string) (Format, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "VK_FORMAT_")
	if f, ok := formatsByName[key]; ok {
		return f, nil
	}
	return FormatUndefined, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// All returns every valid format in table order.
func All() []Format {
	formats := make([]Format, 0, formatCount-1)
	for f := FormatUndefined + 1; f < formatCount; f++ {
		formats = append(formats, f)
	}
	return formats
}

func ceilDiv(a, b uint32) uint32 {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}
