// Package image models the shape of GPU images: dimensionality, array layers,
// mipmap chains and the creation-time properties that go with them.
//
// The central type is [Dimensions], a closed set of three shapes (1D, 2D, 3D).
// Every accessor switches over all three shapes, so adding a shape means
// revisiting every accessor.
//
// All functions in this package are pure and safe for concurrent use.
package image

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/gogpu/texcopy/internal/checked"
)

// ErrZeroExtent is returned by [Dimensions.Validate] when an axis or the
// array layer count is zero.
var ErrZeroExtent = errors.New("image: zero extent")

// Type is the dimensionality of an image.
type Type uint8

// Image types.
const (
	// Type1D is a one-dimensional image, optionally arrayed.
	Type1D Type = iota + 1

	// Type2D is a two-dimensional image, optionally arrayed.
	Type2D

	// Type3D is a three-dimensional image. 3D images are never arrayed.
	Type3D
)

// String returns the string representation of the image type.
func (t Type) String() string {
	switch t {
	case Type1D:
		return "1D"
	case Type2D:
		return "2D"
	case Type3D:
		return "3D"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType parses "1d", "2d" or "3d" in either case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1d":
		return Type1D, nil
	case "2d":
		return Type2D, nil
	case "3d":
		return Type3D, nil
	default:
		return 0, fmt.Errorf("image: unknown image type %q", s)
	}
}

// Dimensions describes the extent of an image.
//
// The zero value is not a valid shape; use [Dim1D], [Dim2D] or [Dim3D].
// Axes not used by a shape are not stored: Height is 1 for 1D images,
// Depth is 1 for 1D and 2D images and ArrayLayers is 1 for 3D images.
// Dimensions values are comparable with ==.
type Dimensions struct {
	typ Type

	width  uint32
	height uint32
	// third holds the array layer count for 1D/2D and the depth for 3D.
	third uint32
}

// Dim1D returns the dimensions of a 1D image with the given array layers.
func Dim1D(width, arrayLayers uint32) Dimensions {
	return Dimensions{typ: Type1D, width: width, height: 1, third: arrayLayers}
}

// Dim2D returns the dimensions of a 2D image with the given array layers.
func Dim2D(width, height, arrayLayers uint32) Dimensions {
	return Dimensions{typ: Type2D, width: width, height: height, third: arrayLayers}
}

// Dim3D returns the dimensions of a 3D image.
func Dim3D(width, height, depth uint32) Dimensions {
	return Dimensions{typ: Type3D, width: width, height: height, third: depth}
}

// Type returns the dimensionality of the image.
func (d Dimensions) Type() Type {
	return d.typ
}

// Width returns the width of the image.
func (d Dimensions) Width() uint32 {
	switch d.typ {
	case Type1D, Type2D, Type3D:
		return d.width
	default:
		panic(unknownShape(d))
	}
}

// Height returns the height of the image, or 1 for 1D images.
func (d Dimensions) Height() uint32 {
	switch d.typ {
	case Type1D:
		return 1
	case Type2D, Type3D:
		return d.height
	default:
		panic(unknownShape(d))
	}
}

// Depth returns the depth of the image, or 1 for 1D and 2D images.
func (d Dimensions) Depth() uint32 {
	switch d.typ {
	case Type1D, Type2D:
		return 1
	case Type3D:
		return d.third
	default:
		panic(unknownShape(d))
	}
}

// ArrayLayers returns the number of array layers, or 1 for 3D images.
func (d Dimensions) ArrayLayers() uint32 {
	switch d.typ {
	case Type1D, Type2D:
		return d.third
	case Type3D:
		return 1
	default:
		panic(unknownShape(d))
	}
}

// WidthHeight returns the width and height of the image.
func (d Dimensions) WidthHeight() [2]uint32 {
	return [2]uint32{d.Width(), d.Height()}
}

// WidthHeightDepth returns the width, height and depth of the image.
func (d Dimensions) WidthHeightDepth() [3]uint32 {
	return [3]uint32{d.Width(), d.Height(), d.Depth()}
}

// NumTexels returns the total number of texels across all layers.
//
// The product is accumulated in 64 bits and saturates at math.MaxUint64,
// so extreme extents never wrap around.
func (d Dimensions) NumTexels() uint64 {
	return checked.MulSat(
		uint64(d.Width()),
		uint64(d.Height()),
		uint64(d.Depth()),
		uint64(d.ArrayLayers()),
	)
}

// MaxMipmaps returns the number of mip levels obtained by halving the largest
// axis until it reaches 1, including the base level.
//
// The result is floor(log2(max(width, height, depth))) + 1 and is at least 1
// for any image with non-zero axes.
func (d Dimensions) MaxMipmaps() uint32 {
	return 32 - uint32(bits.LeadingZeros32(d.Width()|d.Height()|d.Depth()))
}

// MipmapDimensions returns the dimensions of the given mip level.
//
// Level 0 returns d unchanged. Levels at or beyond [Dimensions.MaxMipmaps]
// do not exist and report false. For other levels every spatial axis is
// shifted right by level with a floor of 1; array layers never shrink.
//
// Axes must be non-zero (see [Dimensions.Validate]). For zero axes the
// result is unspecified but the call does not panic.
func (d Dimensions) MipmapDimensions(level uint32) (Dimensions, bool) {
	if level == 0 {
		return d, true
	}
	if level >= d.MaxMipmaps() {
		return Dimensions{}, false
	}

	switch d.typ {
	case Type1D:
		return Dim1D(mipAxis(d.width, level), d.third), true
	case Type2D:
		return Dim2D(mipAxis(d.width, level), mipAxis(d.height, level), d.third), true
	case Type3D:
		return Dim3D(mipAxis(d.width, level), mipAxis(d.height, level), mipAxis(d.third, level)), true
	default:
		panic(unknownShape(d))
	}
}

// MipChain returns the dimensions of every mip level, base level first.
func (d Dimensions) MipChain() []Dimensions {
	n := d.MaxMipmaps()
	chain := make([]Dimensions, 0, n)
	for level := range n {
		m, _ := d.MipmapDimensions(level)
		chain = append(chain, m)
	}
	return chain
}

// Validate reports whether every axis and the array layer count are non-zero.
// Creation layers call it before the mip functions are used.
func (d Dimensions) Validate() error {
	switch d.typ {
	case Type1D, Type2D, Type3D:
	default:
		return fmt.Errorf("image: invalid dimensions type %v", d.typ)
	}
	if d.Width() == 0 || d.Height() == 0 || d.Depth() == 0 || d.ArrayLayers() == 0 {
		return fmt.Errorf("%w: %v", ErrZeroExtent, d)
	}
	return nil
}

// String returns a compact representation such as "2D 512x512 [6 layers]".
func (d Dimensions) String() string {
	switch d.typ {
	case Type1D:
		return fmt.Sprintf("1D %d [%d layers]", d.width, d.third)
	case Type2D:
		return fmt.Sprintf("2D %dx%d [%d layers]", d.width, d.height, d.third)
	case Type3D:
		return fmt.Sprintf("3D %dx%dx%d", d.width, d.height, d.third)
	default:
		return "invalid dimensions"
	}
}

func mipAxis(axis, level uint32) uint32 {
	return max(1, axis>>level)
}

func unknownShape(d Dimensions) string {
	return fmt.Sprintf("image: dimensions with unknown type %v", d.typ)
}
