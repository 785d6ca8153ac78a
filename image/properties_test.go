package image

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestMipmapsCount_Resolve(t *testing.T) {
	dims := Dim2D(512, 512, 1)

	tests := []struct {
		name  string
		count MipmapsCount
		want  uint32
	}{
		{"zero value", MipmapsCount{}, 1},
		{"one", One(), 1},
		{"log2", Log2(), 10},
		{"specific", Specific(4), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.count.Resolve(dims); got != tt.want {
				t.Errorf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}

	if got := Log2().String(); got != "log2" {
		t.Errorf("Log2().String() = %q", got)
	}
	if got := Specific(3).String(); got != "3" {
		t.Errorf("Specific(3).String() = %q", got)
	}
}

func TestFormatProperties_Allows(t *testing.T) {
	props := FormatProperties{
		MaxExtent:       ExtentFrom3D(4096, 4096, 1),
		MaxMipLevels:    Log2(),
		MaxArrayLayers:  256,
		SampleCounts:    1 | 4,
		MaxResourceSize: 1 << 20,
	}

	tests := []struct {
		name    string
		dims    Dimensions
		mips    uint32
		samples uint32
		size    uint64
		wantErr error
	}{
		{"fits", Dim2D(1024, 1024, 6), 11, 1, 0, nil},
		{"msaa", Dim2D(1024, 1024, 1), 1, 4, 0, nil},
		{"too wide", Dim2D(8192, 16, 1), 1, 1, 0, ErrExtentTooLarge},
		{"too many mips", Dim2D(16, 16, 1), 6, 1, 0, ErrTooManyMipLevels},
		{"too many layers", Dim2D(16, 16, 512), 1, 1, 0, ErrTooManyLayers},
		{"unsupported samples", Dim2D(16, 16, 1), 1, 2, 0, ErrSampleCountUnsupported},
		{"non power of two samples", Dim2D(16, 16, 1), 1, 5, 0, ErrSampleCountUnsupported},
		{"zero samples", Dim2D(16, 16, 1), 1, 0, 0, ErrSampleCountUnsupported},
		{"size at limit", Dim2D(512, 512, 1), 1, 1, 1 << 20, nil},
		{"size over limit", Dim2D(512, 512, 1), 1, 1, 1<<20 + 1, ErrResourceTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := props.Allows(tt.dims, tt.mips, tt.samples, tt.size)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Allows() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Allows() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	unlimited := props
	unlimited.MaxResourceSize = 0
	if err := unlimited.Allows(Dim2D(16, 16, 1), 1, 1, 1<<40); err != nil {
		t.Errorf("Allows() with no size limit = %v, want nil", err)
	}
}

func TestCreateFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flags   CreateFlags
		dims    Dimensions
		wantErr bool
	}{
		{"none", CreateFlags{}, Dim1D(16, 1), false},
		{"sparse binding", CreateFlags{SparseBinding: true}, Dim2D(64, 64, 1), false},
		{"residency without binding", CreateFlags{SparseResidency: true}, Dim2D(64, 64, 1), true},
		{"aliased without binding", CreateFlags{SparseAliased: true}, Dim2D(64, 64, 1), true},
		{"all sparse", CreateFlags{SparseBinding: true, SparseResidency: true, SparseAliased: true}, Dim2D(64, 64, 1), false},
		{"cube", CreateFlags{CubeCompatible: true}, Dim2D(32, 32, 6), false},
		{"cube array", CreateFlags{CubeCompatible: true}, Dim2D(32, 32, 12), false},
		{"cube not square", CreateFlags{CubeCompatible: true}, Dim2D(32, 16, 6), true},
		{"cube too few layers", CreateFlags{CubeCompatible: true}, Dim2D(32, 32, 5), true},
		{"cube 3D", CreateFlags{CubeCompatible: true}, Dim3D(32, 32, 6), true},
		{"2D array compatible 3D", CreateFlags{Array2DCompatible: true}, Dim3D(32, 32, 8), false},
		{"2D array compatible 2D", CreateFlags{Array2DCompatible: true}, Dim2D(32, 32, 8), true},
		{"mutable format", CreateFlags{MutableFormat: true}, Dim1D(8, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.Validate(tt.dims)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCreateFlags) {
					t.Errorf("Validate() = %v, want ErrInvalidCreateFlags", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}

	if !(CreateFlags{SparseAliased: true}).Sparse() || (CreateFlags{CubeCompatible: true}).Sparse() {
		t.Error("Sparse() misreports sparse flags")
	}
}

func TestTiling_String(t *testing.T) {
	if got := TilingOptimal.String(); got != "optimal" {
		t.Errorf("TilingOptimal.String() = %q", got)
	}
	if got := TilingLinear.String(); got != "linear" {
		t.Errorf("TilingLinear.String() = %q", got)
	}
	if got := Tiling(9).String(); got != "Tiling(9)" {
		t.Errorf("Tiling(9).String() = %q", got)
	}
}

func TestExtent(t *testing.T) {
	e2 := Extent2D(640, 480)
	if got, ok := e2.As2D(); !ok || got != [2]uint32{640, 480} {
		t.Errorf("As2D() = %v, %v", got, ok)
	}
	if _, ok := e2.As3D(); ok {
		t.Error("As3D() on 2D extent should fail")
	}

	e3 := ExtentFrom3D(16, 8, 4)
	got, ok := e3.As3D()
	if !ok || got != (gputypes.Extent3D{Width: 16, Height: 8, DepthOrArrayLayers: 4}) {
		t.Errorf("As3D() = %+v, %v", got, ok)
	}

	if !Extent1D(128).Contains(Dim1D(128, 64)) {
		t.Error("1D extent should contain 1D image of equal width")
	}
	if Extent1D(128).Contains(Dim2D(128, 2, 1)) {
		t.Error("1D extent should not contain a 2D image with height 2")
	}
}

func TestDimensions_Extent3DRoundTrip(t *testing.T) {
	tests := []struct {
		dims Dimensions
		dim  gputypes.TextureDimension
		ext  gputypes.Extent3D
	}{
		{Dim1D(64, 4), gputypes.TextureDimension1D, gputypes.Extent3D{Width: 64, Height: 1, DepthOrArrayLayers: 4}},
		{Dim2D(64, 32, 6), gputypes.TextureDimension2D, gputypes.Extent3D{Width: 64, Height: 32, DepthOrArrayLayers: 6}},
		{Dim3D(8, 8, 8), gputypes.TextureDimension3D, gputypes.Extent3D{Width: 8, Height: 8, DepthOrArrayLayers: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.dims.String(), func(t *testing.T) {
			if got := tt.dims.Type().TextureDimension(); got != tt.dim {
				t.Errorf("TextureDimension() = %v, want %v", got, tt.dim)
			}
			if got := tt.dims.Extent3D(); got != tt.ext {
				t.Errorf("Extent3D() = %+v, want %+v", got, tt.ext)
			}
			back, err := FromExtent3D(tt.dim, tt.ext)
			if err != nil {
				t.Fatalf("FromExtent3D() error = %v", err)
			}
			if back != tt.dims {
				t.Errorf("FromExtent3D() = %v, want %v", back, tt.dims)
			}
		})
	}

	d, err := FromExtent3D(gputypes.TextureDimension2D, gputypes.Extent3D{Width: 4, Height: 4})
	if err != nil || d != Dim2D(4, 4, 1) {
		t.Errorf("FromExtent3D with zero layers = %v, %v; want 2D 4x4x1", d, err)
	}
	if _, err := FromExtent3D(gputypes.TextureDimension1D, gputypes.Extent3D{Width: 4, Height: 2}); err == nil {
		t.Error("FromExtent3D(1D, height 2) should fail")
	}
}

func TestUsage_TextureUsageRoundTrip(t *testing.T) {
	usages := []Usage{
		{},
		TransferUsage(),
		{TransferDestination: true, Sampled: true},
		{TransferSource: true, ColorAttachment: true, Storage: true},
	}
	for _, u := range usages {
		if got := UsageFromTexture(u.TextureUsage()); got != u {
			t.Errorf("round trip of %v = %v", u, got)
		}
	}

	u := UsageFromTexture(gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding)
	if u.TransferSource || !u.TransferDestination || !u.Sampled {
		t.Errorf("UsageFromTexture() = %+v", u)
	}
	if got := u.String(); got != "transfer_dst|sampled" {
		t.Errorf("String() = %q", got)
	}
	if got := (Usage{}).String(); got != "none" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestParseUsage(t *testing.T) {
	tests := []struct {
		names   []string
		want    Usage
		wantErr bool
	}{
		{names: nil, want: Usage{}},
		{names: []string{"none"}, want: Usage{}},
		{names: []string{"transfer_src|transfer_dst"}, want: TransferUsage()},
		{names: []string{"copy_dst", "Sampled"}, want: Usage{TransferDestination: true, Sampled: true}},
		{names: []string{"storage", " color_attachment "}, want: Usage{Storage: true, ColorAttachment: true}},
		{names: []string{"vertex"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseUsage(tt.names...)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownUsage) {
				t.Errorf("ParseUsage(%q) error = %v, want ErrUnknownUsage", tt.names, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseUsage(%q) = %v, %v, want %v", tt.names, got, err, tt.want)
		}
	}

	u := Usage{TransferSource: true, Sampled: true, Storage: true}
	if got, err := ParseUsage(u.String()); err != nil || got != u {
		t.Errorf("ParseUsage(%q) = %v, %v", u.String(), got, err)
	}
}
