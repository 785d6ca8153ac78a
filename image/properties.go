package image

import (
	"errors"
	"fmt"
	"math/bits"
)

// Property errors.
var (
	// ErrExtentTooLarge is returned when dimensions exceed a format's max extent.
	ErrExtentTooLarge = errors.New("image: extent exceeds format limits")

	// ErrTooManyMipLevels is returned when a mip count exceeds what the image or format allows.
	ErrTooManyMipLevels = errors.New("image: too many mip levels")

	// ErrTooManyLayers is returned when the array layer count exceeds format limits.
	ErrTooManyLayers = errors.New("image: too many array layers")

	// ErrSampleCountUnsupported is returned when a sample count is not supported.
	ErrSampleCountUnsupported = errors.New("image: sample count not supported")

	// ErrResourceTooLarge is returned when the image memory exceeds the format's
	// maximum resource size.
	ErrResourceTooLarge = errors.New("image: resource size exceeds format limits")

	// ErrInvalidCreateFlags is returned when creation flags do not fit the image.
	ErrInvalidCreateFlags = errors.New("image: invalid create flags")
)

// MipmapsMode selects how many mip levels are allocated for an image.
type MipmapsMode uint8

// Mipmap modes.
const (
	// MipmapsOne allocates only the base level. Always supported.
	MipmapsOne MipmapsMode = iota

	// MipmapsLog2 allocates the full chain down to 1x1.
	MipmapsLog2

	// MipmapsSpecific allocates an explicit number of levels.
	MipmapsSpecific
)

// MipmapsCount specifies how many mip levels must be allocated.
// At least one level is always allocated to store the base image.
// The zero value is equivalent to [One].
type MipmapsCount struct {
	Mode  MipmapsMode
	Count uint32
}

// One returns a count that allocates only the base level.
func One() MipmapsCount { return MipmapsCount{Mode: MipmapsOne} }

// Log2 returns a count that allocates the full mip chain.
func Log2() MipmapsCount { return MipmapsCount{Mode: MipmapsLog2} }

// Specific returns a count that allocates exactly n levels.
func Specific(n uint32) MipmapsCount { return MipmapsCount{Mode: MipmapsSpecific, Count: n} }

// Resolve returns the number of mip levels for an image of dimensions d.
// A specific count is returned as is; callers validate it against
// [Dimensions.MaxMipmaps].
func (m MipmapsCount) Resolve(d Dimensions) uint32 {
	switch m.Mode {
	case MipmapsLog2:
		return d.MaxMipmaps()
	case MipmapsSpecific:
		return m.Count
	default:
		return 1
	}
}

// String returns the string representation of the mip count.
func (m MipmapsCount) String() string {
	switch m.Mode {
	case MipmapsLog2:
		return "log2"
	case MipmapsSpecific:
		return fmt.Sprintf("%d", m.Count)
	default:
		return "one"
	}
}

// Tiling is the memory arrangement of image texels.
type Tiling uint8

// Tilings.
const (
	// TilingOptimal is the implementation-defined layout.
	TilingOptimal Tiling = iota
	// TilingLinear is row-major layout.
	TilingLinear
)

// String returns "optimal" or "linear".
func (t Tiling) String() string {
	switch t {
	case TilingOptimal:
		return "optimal"
	case TilingLinear:
		return "linear"
	default:
		return fmt.Sprintf("Tiling(%d)", uint8(t))
	}
}

// CreateFlags are optional image creation capabilities.
type CreateFlags struct {
	SparseBinding     bool
	SparseResidency   bool
	SparseAliased     bool
	MutableFormat     bool
	CubeCompatible    bool
	Array2DCompatible bool
}

// Sparse reports whether any sparse flag is set.
func (f CreateFlags) Sparse() bool {
	return f.SparseBinding || f.SparseResidency || f.SparseAliased
}

// Validate checks f against the shape of the image it is created with.
// Sparse residency and aliasing need sparse binding, cube compatibility needs
// a square 2D image with at least 6 layers, and 2D array compatibility needs
// a 3D image.
func (f CreateFlags) Validate(d Dimensions) error {
	if (f.SparseResidency || f.SparseAliased) && !f.SparseBinding {
		return fmt.Errorf("%w: sparse residency and aliasing require sparse binding", ErrInvalidCreateFlags)
	}
	if f.CubeCompatible {
		if d.Type() != Type2D || d.Width() != d.Height() || d.ArrayLayers() < 6 {
			return fmt.Errorf("%w: cube compatible image %v", ErrInvalidCreateFlags, d)
		}
	}
	if f.Array2DCompatible && d.Type() != Type3D {
		return fmt.Errorf("%w: 2D array compatible image %v", ErrInvalidCreateFlags, d)
	}
	return nil
}

// FormatProperties are the limits a device reports for a given combination
// of format, type, tiling and usage.
type FormatProperties struct {
	MaxExtent      Extent
	MaxMipLevels   MipmapsCount
	MaxArrayLayers uint32
	// SampleCounts is a bitmask; bit n set means 1<<n samples are supported.
	SampleCounts uint32
	// MaxResourceSize is the largest image in bytes, all levels, layers and
	// samples included. 0 means unlimited.
	MaxResourceSize uint64
}

// Allows reports whether an image with dimensions d, mipLevels levels, the
// given sample count and size bytes of memory fits within p. The first
// violated limit is returned.
func (p FormatProperties) Allows(d Dimensions, mipLevels, samples uint32, size uint64) error {
	if !p.MaxExtent.Contains(d) {
		return fmt.Errorf("%w: %v", ErrExtentTooLarge, d)
	}
	if maxLevels := p.MaxMipLevels.Resolve(d); mipLevels > maxLevels || mipLevels > d.MaxMipmaps() {
		return fmt.Errorf("%w: %d levels, limit %d", ErrTooManyMipLevels, mipLevels, min(maxLevels, d.MaxMipmaps()))
	}
	if d.ArrayLayers() > p.MaxArrayLayers {
		return fmt.Errorf("%w: %d layers, limit %d", ErrTooManyLayers, d.ArrayLayers(), p.MaxArrayLayers)
	}
	if samples == 0 || bits.OnesCount32(samples) != 1 || p.SampleCounts&samples == 0 {
		return fmt.Errorf("%w: %d", ErrSampleCountUnsupported, samples)
	}
	if p.MaxResourceSize != 0 && size > p.MaxResourceSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrResourceTooLarge, size, p.MaxResourceSize)
	}
	return nil
}
