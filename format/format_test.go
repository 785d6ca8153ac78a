package format

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormat_BlockDimensions(t *testing.T) {
	tests := []struct {
		format Format
		width  uint32
		height uint32
		bytes  uint32
	}{
		{FormatR8Unorm, 1, 1, 1},
		{FormatR8G8B8A8Unorm, 1, 1, 4},
		{FormatR8G8B8Uscaled, 1, 1, 3},
		{FormatR4G4UnormPack8, 1, 1, 1},
		{FormatR16G16B16A16Sfloat, 1, 1, 8},
		{FormatR32G32Uint, 1, 1, 8},
		{FormatR64G64B64A64Sfloat, 1, 1, 32},
		{FormatD32SfloatS8Uint, 1, 1, 5},
		{FormatBC1RGBUnormBlock, 4, 4, 8},
		{FormatBC7SrgbBlock, 4, 4, 16},
		{FormatETC2R8G8B8A8UnormBlock, 4, 4, 16},
		{FormatEACR11UnormBlock, 4, 4, 8},
		{FormatASTC4x4UnormBlock, 4, 4, 16},
		{FormatASTC10x6UnormBlock, 10, 6, 16},
		{FormatASTC12x12SrgbBlock, 12, 12, 16},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			w, h := tt.format.BlockDimensions()
			if w != tt.width || h != tt.height {
				t.Errorf("BlockDimensions() = %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}
			if got := tt.format.BlockSize(); got != tt.bytes {
				t.Errorf("BlockSize() = %d, want %d", got, tt.bytes)
			}
		})
	}
}

func TestFormat_Table(t *testing.T) {
	for _, f := range All() {
		info := formatInfoTable[f]
		if info.name == "" {
			t.Errorf("format %d has no table entry", uint16(f))
			continue
		}
		if info.blockWidth == 0 || info.blockHeight == 0 || info.blockBytes == 0 {
			t.Errorf("%v: incomplete block layout %+v", f, info)
		}
		if info.scalar != ScalarNone && info.components*info.scalar.Size() != info.blockBytes {
			t.Errorf("%v: %d x %v components do not fill a %d byte block", f, info.components, info.scalar, info.blockBytes)
		}
		if f.IsCompressed() != (info.blockWidth*info.blockHeight > 1) {
			t.Errorf("%v: IsCompressed() = %v with %dx%d blocks", f, f.IsCompressed(), info.blockWidth, info.blockHeight)
		}
		if got, err := ParseFormat(f.String()); err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
}

func TestFormat_Properties(t *testing.T) {
	if !FormatR8G8B8A8Srgb.IsSRGB() || FormatR8G8B8A8Unorm.IsSRGB() {
		t.Error("IsSRGB() mismatch for R8G8B8A8")
	}
	if !FormatASTC6x5SrgbBlock.IsSRGB() {
		t.Error("ASTC_6x5_SRGB_BLOCK should be sRGB")
	}
	if got := FormatBC5SnormBlock.Family(); got != FamilyBC {
		t.Errorf("Family() = %v, want BC", got)
	}
	if got := FormatD24UnormS8Uint.Aspect(); got != AspectDepthStencil {
		t.Errorf("Aspect() = %v, want depth-stencil", got)
	}
	if got := FormatS8Uint.Aspect(); got != AspectStencil {
		t.Errorf("Aspect() = %v, want stencil", got)
	}
	if got := FormatR32G32B32Sint.Components(); got != Array(ScalarI32, 3) {
		t.Errorf("Components() = %v, want [3]i32", got)
	}
	if got := FormatBC1RGBUnormBlock.Components(); !got.IsZero() {
		t.Errorf("Components() = %v, want zero for compressed formats", got)
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatUndefined, "UNDEFINED"},
		{FormatR8G8B8A8Unorm, "R8G8B8A8_UNORM"},
		{FormatBC1RGBUnormBlock, "BC1_RGB_UNORM_BLOCK"},
		{FormatASTC12x12SrgbBlock, "ASTC_12x12_SRGB_BLOCK"},
		{formatCount + 5, fmt.Sprintf("Format(%d)", uint16(formatCount+5))},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"R8G8B8A8_UNORM", FormatR8G8B8A8Unorm},
		{"r8g8b8a8_srgb", FormatR8G8B8A8Srgb},
		{"VK_FORMAT_BC7_UNORM_BLOCK", FormatBC7UnormBlock},
		{"  astc_8x8_unorm_block ", FormatASTC8x8UnormBlock},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "UNDEFINED", "RGBA8", "R8G8B8A8"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", bad, err)
		}
	}
}

func TestFormat_BytesPerRow(t *testing.T) {
	tests := []struct {
		format Format
		width  uint32
		height uint32
		row    uint64
		rows   uint32
	}{
		{FormatR8G8B8A8Unorm, 100, 30, 400, 30},
		{FormatBC1RGBUnormBlock, 10, 10, 24, 3},
		{FormatASTC12x12SrgbBlock, 512, 512, 43 * 16, 43},
		{FormatR8Unorm, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerRow(tt.width); got != tt.row {
				t.Errorf("BytesPerRow(%d) = %d, want %d", tt.width, got, tt.row)
			}
			if got := tt.format.BlockRows(tt.height); got != tt.rows {
				t.Errorf("BlockRows(%d) = %d, want %d", tt.height, got, tt.rows)
			}
		})
	}
}

func TestTextureFormat_RoundTrip(t *testing.T) {
	shared := []Format{
		FormatR8Unorm,
		FormatR8G8B8A8Unorm,
		FormatR8G8B8A8Srgb,
		FormatB8G8R8A8Unorm,
		FormatB8G8R8A8Srgb,
		FormatR32Sfloat,
		FormatR32G32Sfloat,
		FormatR32G32B32A32Sfloat,
		FormatD24UnormS8Uint,
	}
	for _, f := range shared {
		tf, ok := f.TextureFormat()
		if !ok {
			t.Errorf("%v.TextureFormat() not supported", f)
			continue
		}
		back, ok := FromTextureFormat(tf)
		if !ok || back != f {
			t.Errorf("FromTextureFormat(%v) = %v, %v; want %v", tf, back, ok, f)
		}
	}

	if _, ok := FormatBC1RGBUnormBlock.TextureFormat(); ok {
		t.Error("BC1_RGB_UNORM_BLOCK should have no WebGPU equivalent")
	}
	if _, ok := FromTextureFormat(gputypes.TextureFormatUndefined); ok {
		t.Error("FromTextureFormat(Undefined) should fail")
	}
}

