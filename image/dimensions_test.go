package image

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDimensions_Accessors(t *testing.T) {
	tests := []struct {
		name   string
		dims   Dimensions
		typ    Type
		width  uint32
		height uint32
		depth  uint32
		layers uint32
	}{
		{"1D", Dim1D(64, 3), Type1D, 64, 1, 1, 3},
		{"2D", Dim2D(32, 16, 6), Type2D, 32, 16, 1, 6},
		{"3D", Dim3D(8, 4, 2), Type3D, 8, 4, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.dims
			if d.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", d.Type(), tt.typ)
			}
			if d.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", d.Width(), tt.width)
			}
			if d.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", d.Height(), tt.height)
			}
			if d.Depth() != tt.depth {
				t.Errorf("Depth() = %d, want %d", d.Depth(), tt.depth)
			}
			if d.ArrayLayers() != tt.layers {
				t.Errorf("ArrayLayers() = %d, want %d", d.ArrayLayers(), tt.layers)
			}
			if got := d.WidthHeightDepth(); got != [3]uint32{tt.width, tt.height, tt.depth} {
				t.Errorf("WidthHeightDepth() = %v", got)
			}
			if got := d.WidthHeight(); got != [2]uint32{tt.width, tt.height} {
				t.Errorf("WidthHeight() = %v", got)
			}
		})
	}
}

func TestDimensions_NumTexels(t *testing.T) {
	if got := Dim2D(512, 256, 6).NumTexels(); got != 512*256*6 {
		t.Errorf("NumTexels() = %d, want %d", got, 512*256*6)
	}
	if got := Dim3D(4, 4, 4).NumTexels(); got != 64 {
		t.Errorf("NumTexels() = %d, want 64", got)
	}

	// 2^32-1 squared times 2^32-1 layers does not fit in 64 bits.
	huge := Dim2D(math.MaxUint32, math.MaxUint32, math.MaxUint32)
	if got := huge.NumTexels(); got != math.MaxUint64 {
		t.Errorf("NumTexels() = %d, want saturation at MaxUint64", got)
	}

	// Still exact when it fits in 64 bits.
	wide := Dim2D(math.MaxUint32, math.MaxUint32, 1)
	want := uint64(math.MaxUint32) * uint64(math.MaxUint32)
	if got := wide.NumTexels(); got != want {
		t.Errorf("NumTexels() = %d, want %d", got, want)
	}
}

func TestDimensions_MaxMipmaps(t *testing.T) {
	tests := []struct {
		name string
		dims Dimensions
		want uint32
	}{
		{"2x1", Dim2D(2, 1, 1), 2},
		{"2x3", Dim2D(2, 3, 1), 2},
		{"512x512", Dim2D(512, 512, 1), 10},
		{"32x50", Dim2D(32, 50, 1), 6},
		{"1x1", Dim2D(1, 1, 1), 1},
		{"1D 1", Dim1D(1, 4), 1},
		{"1D 1024", Dim1D(1024, 1), 11},
		{"3D depth dominates", Dim3D(4, 4, 64), 7},
		{"layers ignored", Dim2D(8, 8, 1024), 4},
		{"max axis", Dim2D(math.MaxUint32, 1, 1), 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dims.MaxMipmaps(); got != tt.want {
				t.Errorf("MaxMipmaps() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDimensions_MipmapDimensions283x175(t *testing.T) {
	dims := Dim2D(283, 175, 1)

	if got, ok := dims.MipmapDimensions(0); !ok || got != dims {
		t.Fatalf("MipmapDimensions(0) = %v, %v; want %v, true", got, ok, dims)
	}

	want := [][2]uint32{
		1: {141, 87},
		2: {70, 43},
		3: {35, 21},
		4: {17, 10},
		5: {8, 5},
		6: {4, 2},
		7: {2, 1},
		8: {1, 1},
	}
	for level := uint32(1); level <= 8; level++ {
		got, ok := dims.MipmapDimensions(level)
		if !ok {
			t.Fatalf("MipmapDimensions(%d) reported missing level", level)
		}
		wantDims := Dim2D(want[level][0], want[level][1], 1)
		if got != wantDims {
			t.Errorf("MipmapDimensions(%d) = %v, want %v", level, got, wantDims)
		}
	}

	if got, ok := dims.MipmapDimensions(9); ok {
		t.Errorf("MipmapDimensions(9) = %v, want none", got)
	}
}

func TestDimensions_MipmapDimensions963x256(t *testing.T) {
	dims := Dim2D(963, 256, 1)

	tests := []struct {
		level uint32
		want  Dimensions
		ok    bool
	}{
		{0, dims, true},
		{1, Dim2D(481, 128, 1), true},
		{6, Dim2D(15, 4, 1), true},
		{9, Dim2D(1, 1, 1), true},
		{10, Dimensions{}, false},
		{11, Dimensions{}, false},
	}
	for _, tt := range tests {
		got, ok := dims.MipmapDimensions(tt.level)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MipmapDimensions(%d) = %v, %v; want %v, %v", tt.level, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDimensions_MipmapProperties(t *testing.T) {
	shapes := []Dimensions{
		Dim1D(1, 1),
		Dim1D(1000, 7),
		Dim2D(1, 1, 1),
		Dim2D(283, 175, 4),
		Dim2D(3, 1024, 2),
		Dim3D(17, 1, 300),
		Dim3D(64, 64, 64),
	}

	for _, d := range shapes {
		t.Run(d.String(), func(t *testing.T) {
			if got, ok := d.MipmapDimensions(0); !ok || got != d {
				t.Errorf("MipmapDimensions(0) = %v, %v; want identity", got, ok)
			}

			n := d.MaxMipmaps()
			if n < 1 {
				t.Fatalf("MaxMipmaps() = %d, want >= 1", n)
			}
			for level := uint32(1); level < n; level++ {
				m, ok := d.MipmapDimensions(level)
				if !ok {
					t.Fatalf("MipmapDimensions(%d) missing, MaxMipmaps = %d", level, n)
				}
				if m.Type() != d.Type() {
					t.Errorf("level %d type = %v, want %v", level, m.Type(), d.Type())
				}
				if m.Width() != max(1, d.Width()>>level) {
					t.Errorf("level %d width = %d", level, m.Width())
				}
				if m.Height() != max(1, d.Height()>>level) {
					t.Errorf("level %d height = %d", level, m.Height())
				}
				if m.Depth() != max(1, d.Depth()>>level) {
					t.Errorf("level %d depth = %d", level, m.Depth())
				}
				if m.ArrayLayers() != d.ArrayLayers() {
					t.Errorf("level %d layers = %d, want %d", level, m.ArrayLayers(), d.ArrayLayers())
				}
			}

			// The last level is always 1 on every axis.
			last, _ := d.MipmapDimensions(n - 1)
			if last.WidthHeightDepth() != [3]uint32{1, 1, 1} {
				t.Errorf("last level = %v, want 1x1x1", last)
			}

			for _, level := range []uint32{n, n + 1, 31, 32, math.MaxUint32} {
				if level < n {
					continue
				}
				if m, ok := d.MipmapDimensions(level); ok {
					t.Errorf("MipmapDimensions(%d) = %v, want none", level, m)
				}
			}
		})
	}
}

func TestDimensions_MipChain(t *testing.T) {
	chain := Dim2D(8, 2, 3).MipChain()
	want := []Dimensions{Dim2D(8, 2, 3), Dim2D(4, 1, 3), Dim2D(2, 1, 3), Dim2D(1, 1, 3)}
	if len(chain) != len(want) {
		t.Fatalf("len(MipChain()) = %d, want %d", len(chain), len(want))
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("MipChain()[%d] = %v, want %v", i, chain[i], want[i])
		}
	}
}

func TestDimensions_ZeroAxis(t *testing.T) {
	zero := []Dimensions{Dim1D(0, 1), Dim1D(4, 0), Dim2D(4, 0, 1), Dim3D(4, 4, 0)}
	for _, d := range zero {
		if err := d.Validate(); !errors.Is(err, ErrZeroExtent) {
			t.Errorf("%v.Validate() = %v, want ErrZeroExtent", d, err)
		}
		// Must not panic.
		_, _ = d.MipmapDimensions(1)
	}

	if err := Dim2D(1, 1, 1).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (Dimensions{}).Validate(); err == nil {
		t.Error("zero Dimensions Validate() = nil, want error")
	}
}

func TestType_String(t *testing.T) {
	tests := map[Type]string{Type1D: "1D", Type2D: "2D", Type3D: "3D", Type(9): "Type(9)"}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", uint8(typ), got, want)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{Type1D, Type2D, Type3D} {
		got, err := ParseType(strings.ToLower(typ.String()))
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v, want %v", typ.String(), got, err, typ)
		}
	}
	if _, err := ParseType("4d"); err == nil {
		t.Error("ParseType(4d) error = nil")
	}
}
