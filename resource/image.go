package resource

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/texcopy"
	"github.com/gogpu/texcopy/format"
	"github.com/gogpu/texcopy/image"
	"github.com/gogpu/texcopy/internal/checked"
	"github.com/gogpu/texcopy/transfer"
	"github.com/gogpu/wgpu/hal"
)

// Image errors.
var (
	// ErrUnsupportedFormat is returned when a format has no WebGPU equivalent.
	ErrUnsupportedFormat = errors.New("resource: format not supported by the device")

	// ErrInvalidImageSize is returned when image dimensions are zero or exceed
	// device limits.
	ErrInvalidImageSize = errors.New("resource: invalid image size")

	// ErrInvalidSampleCount is returned when the sample count is not supported.
	ErrInvalidSampleCount = errors.New("resource: invalid sample count")

	// ErrInvalidMipLevels is returned when the mip level count is zero or
	// larger than the image allows.
	ErrInvalidMipLevels = errors.New("resource: invalid mip level count")

	// ErrUnsupportedTiling is returned for linear images that are not 2D.
	ErrUnsupportedTiling = errors.New("resource: tiling not supported for image type")

	// ErrUnsupportedCreateFlags is returned for sparse images, which the HAL
	// cannot back with partially bound memory.
	ErrUnsupportedCreateFlags = errors.New("resource: create flags not supported by the device")
)

// WebGPU default limits.
const (
	maxTextureDimension1D = 8192
	maxTextureDimension2D = 8192
	maxTextureDimension3D = 2048
	maxTextureArrayLayers = 256
	maxResourceSize       = 1 << 31
)

// FormatProperties returns the creation limits for images of type t with the
// given tiling. The limits are the WebGPU defaults every adapter guarantees.
// Linear images are limited to a single level, layer and sample.
func FormatProperties(t image.Type, tiling image.Tiling) image.FormatProperties {
	props := image.FormatProperties{
		MaxMipLevels:    image.Log2(),
		MaxArrayLayers:  maxTextureArrayLayers,
		SampleCounts:    1,
		MaxResourceSize: maxResourceSize,
	}
	if tiling == image.TilingLinear {
		props.MaxExtent = image.Extent2D(maxTextureDimension2D, maxTextureDimension2D)
		props.MaxMipLevels = image.One()
		props.MaxArrayLayers = 1
		return props
	}
	switch t {
	case image.Type1D:
		props.MaxExtent = image.Extent1D(maxTextureDimension1D)
	case image.Type3D:
		props.MaxExtent = image.ExtentFrom3D(maxTextureDimension3D, maxTextureDimension3D, maxTextureDimension3D)
		props.MaxArrayLayers = 1
	default:
		props.MaxExtent = image.Extent2D(maxTextureDimension2D, maxTextureDimension2D)
		props.SampleCounts |= 4
	}
	return props
}

// ImageDescriptor describes an image to create.
type ImageDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Dimensions is the shape of the base mip level.
	Dimensions image.Dimensions

	// Format is the texel format. It must have a WebGPU equivalent.
	Format format.Format

	// MipLevels selects how many mip levels are allocated.
	// The zero value allocates only the base level.
	MipLevels image.MipmapsCount

	// Samples is the number of samples per texel. 0 is treated as 1.
	Samples uint32

	// Usage specifies how the image will be used.
	Usage image.Usage

	// Tiling is the texel layout. Linear tiling needs a 2D image.
	Tiling image.Tiling

	// Flags are optional creation capabilities. Sparse flags are rejected.
	Flags image.CreateFlags
}

// Image is a GPU image.
//
// Image implements [transfer.Image].
type Image struct {
	mu        sync.RWMutex
	raw       hal.Texture
	owner     *Device
	desc      ImageDescriptor
	mipLevels uint32
	destroyed bool
}

var _ transfer.Image = (*Image)(nil)

// CreateImage creates an image on d.
func (d *Device) CreateImage(desc ImageDescriptor) (*Image, error) {
	if err := d.CheckAlive(); err != nil {
		return nil, err
	}

	if err := desc.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImageSize, err)
	}
	if desc.Samples == 0 {
		desc.Samples = 1
	}

	mips := desc.MipLevels.Resolve(desc.Dimensions)
	if mips == 0 {
		return nil, fmt.Errorf("%w: 0 levels", ErrInvalidMipLevels)
	}
	if desc.Samples > 1 && mips > 1 {
		return nil, fmt.Errorf("%w: multisampled images have a single mip level", ErrInvalidSampleCount)
	}

	if err := desc.Flags.Validate(desc.Dimensions); err != nil {
		return nil, err
	}
	if desc.Flags.Sparse() {
		return nil, fmt.Errorf("%w: sparse %v", ErrUnsupportedCreateFlags, desc.Dimensions)
	}
	if desc.Tiling == image.TilingLinear && desc.Dimensions.Type() != image.Type2D {
		return nil, fmt.Errorf("%w: %v %v", ErrUnsupportedTiling, desc.Tiling, desc.Dimensions.Type())
	}

	tf, ok := desc.Format.TextureFormat()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, desc.Format)
	}
	size, err := imageSize(desc.Dimensions, desc.Format, mips, desc.Samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	props := FormatProperties(desc.Dimensions.Type(), desc.Tiling)
	if err := props.Allows(desc.Dimensions, mips, desc.Samples, size); err != nil {
		switch {
		case errors.Is(err, image.ErrTooManyMipLevels):
			return nil, fmt.Errorf("%w: %w", ErrInvalidMipLevels, err)
		case errors.Is(err, image.ErrSampleCountUnsupported):
			return nil, fmt.Errorf("%w: %w", ErrInvalidSampleCount, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrInvalidImageSize, err)
		}
	}

	extent := desc.Dimensions.Extent3D()
	raw, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              extent.Width,
			Height:             extent.Height,
			DepthOrArrayLayers: extent.DepthOrArrayLayers,
		},
		MipLevelCount: mips,
		SampleCount:   desc.Samples,
		Dimension:     desc.Dimensions.Type().TextureDimension(),
		Format:        tf,
		Usage:         desc.Usage.TextureUsage(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	texcopy.Logger().Debug("resource: image created",
		"label", desc.Label,
		"dimensions", desc.Dimensions,
		"format", desc.Format,
		"mips", mips,
		"samples", desc.Samples,
		"bytes", size)

	return &Image{raw: raw, owner: d, desc: desc, mipLevels: mips}, nil
}

// imageSize returns the memory an image occupies in bytes, every allocated
// level, layer and sample included. The sum saturates.
func imageSize(d image.Dimensions, f format.Format, mips, samples uint32) (uint64, error) {
	raw := format.Elem(format.ScalarU8)
	var total uint64
	for level := range mips {
		m, ok := d.MipmapDimensions(level)
		if !ok {
			break
		}
		n, err := transfer.RequiredLenForFormat(f, raw, m.WidthHeightDepth(), m.ArrayLayers())
		if err != nil {
			return 0, err
		}
		total = checked.AddSat(total, n)
	}
	return checked.MulSat(total, uint64(samples)), nil
}

// Device returns the identity of the device that created the image.
func (i *Image) Device() transfer.DeviceID {
	return i.owner.id
}

// Owner returns the device that created the image.
func (i *Image) Owner() *Device {
	return i.owner
}

// Label returns the image's debug label.
func (i *Image) Label() string {
	return i.desc.Label
}

// Dimensions returns the shape of the base mip level.
func (i *Image) Dimensions() image.Dimensions {
	return i.desc.Dimensions
}

// Format returns the texel format.
func (i *Image) Format() format.Format {
	return i.desc.Format
}

// Samples returns the number of samples per texel.
func (i *Image) Samples() uint32 {
	return i.desc.Samples
}

// Usage returns the image usage.
func (i *Image) Usage() image.Usage {
	return i.desc.Usage
}

// Tiling returns the texel layout the image was created with.
func (i *Image) Tiling() image.Tiling {
	return i.desc.Tiling
}

// Flags returns the creation flags of the image.
func (i *Image) Flags() image.CreateFlags {
	return i.desc.Flags
}

// MipLevels returns the number of allocated mip levels.
func (i *Image) MipLevels() uint32 {
	return i.mipLevels
}

// IsDestroyed returns true if the image has been destroyed.
func (i *Image) IsDestroyed() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.destroyed
}

// Raw returns the underlying HAL texture, or nil after Destroy.
func (i *Image) Raw() hal.Texture {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.destroyed {
		return nil
	}
	return i.raw
}

// Destroy releases the HAL texture. Calling Destroy more than once is a no-op.
func (i *Image) Destroy() {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}
	i.destroyed = true
	raw := i.raw
	i.raw = nil
	i.mu.Unlock()

	if i.owner.IsDestroyed() {
		texcopy.Logger().Warn("resource: image destroyed after its device", "label", i.desc.Label)
		return
	}
	i.owner.device.DestroyTexture(raw)
}
