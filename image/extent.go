package image

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// TextureDimension returns the WebGPU texture dimension for t.
func (t Type) TextureDimension() gputypes.TextureDimension {
	switch t {
	case Type1D:
		return gputypes.TextureDimension1D
	case Type3D:
		return gputypes.TextureDimension3D
	default:
		return gputypes.TextureDimension2D
	}
}

// Extent3D returns the WebGPU extent for d.
// DepthOrArrayLayers carries the depth of 3D images and the array layer
// count of 1D and 2D images.
func (d Dimensions) Extent3D() gputypes.Extent3D {
	e := gputypes.Extent3D{
		Width:  d.Width(),
		Height: d.Height(),
	}
	if d.typ == Type3D {
		e.DepthOrArrayLayers = d.Depth()
	} else {
		e.DepthOrArrayLayers = d.ArrayLayers()
	}
	return e
}

// FromExtent3D builds Dimensions from a WebGPU texture dimension and extent.
// A DepthOrArrayLayers of 0 is treated as 1, matching WebGPU defaults.
func FromExtent3D(dim gputypes.TextureDimension, e gputypes.Extent3D) (Dimensions, error) {
	third := max(e.DepthOrArrayLayers, 1)
	switch dim {
	case gputypes.TextureDimension1D:
		if e.Height > 1 {
			return Dimensions{}, fmt.Errorf("image: 1D extent with height %d", e.Height)
		}
		return Dim1D(e.Width, third), nil
	case gputypes.TextureDimension2D:
		return Dim2D(e.Width, e.Height, third), nil
	case gputypes.TextureDimension3D:
		return Dim3D(e.Width, e.Height, third), nil
	default:
		return Dimensions{}, fmt.Errorf("image: unknown texture dimension %v", dim)
	}
}

// ExtentKind tags the shape held by an [Extent].
type ExtentKind uint8

// Extent kinds.
const (
	E1D ExtentKind = iota + 1
	E2D
	E3D
)

// Extent is a 1, 2 or 3 component size, used to describe implementation
// limits such as the maximum extent of an image format.
type Extent struct {
	Kind   ExtentKind
	Values [3]uint32
}

// Extent1D returns a one-component extent.
func Extent1D(width uint32) Extent {
	return Extent{Kind: E1D, Values: [3]uint32{width, 1, 1}}
}

// Extent2D returns a two-component extent.
func Extent2D(width, height uint32) Extent {
	return Extent{Kind: E2D, Values: [3]uint32{width, height, 1}}
}

// ExtentFrom3D returns a three-component extent.
func ExtentFrom3D(width, height, depth uint32) Extent {
	return Extent{Kind: E3D, Values: [3]uint32{width, height, depth}}
}

// As2D returns width and height if e is a two-component extent.
func (e Extent) As2D() ([2]uint32, bool) {
	if e.Kind != E2D {
		return [2]uint32{}, false
	}
	return [2]uint32{e.Values[0], e.Values[1]}, true
}

// As3D returns the WebGPU extent if e is a three-component extent.
func (e Extent) As3D() (gputypes.Extent3D, bool) {
	if e.Kind != E3D {
		return gputypes.Extent3D{}, false
	}
	return gputypes.Extent3D{
		Width:              e.Values[0],
		Height:             e.Values[1],
		DepthOrArrayLayers: e.Values[2],
	}, true
}

// Contains reports whether every spatial axis of d fits within e.
// Unused components of e are 1 and only constrain axes that d does not use.
func (e Extent) Contains(d Dimensions) bool {
	axes := d.WidthHeightDepth()
	for i, v := range axes {
		if v > e.Values[i] {
			return false
		}
	}
	return true
}
