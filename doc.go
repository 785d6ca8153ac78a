// Package texcopy validates and records copies between GPU buffers and images.
//
// # Overview
//
// Copying texel data between a linear buffer and an image is one of the few
// GPU operations where a malformed request silently reads or writes out of
// bounds. texcopy checks every copy before it reaches the driver: usage flags,
// sample count, mip level and layer range, region bounds, buffer element type
// and buffer capacity.
//
// # Quick Start
//
//	dev, err := resource.OpenNoop()
//	if err != nil {
//		return err
//	}
//	defer dev.Destroy()
//
//	img, _ := dev.CreateImage(resource.ImageDescriptor{
//		Dimensions: image.Dim2D(256, 256, 1),
//		Format:     format.FormatR8G8B8A8Unorm,
//		MipLevels:  image.Log2(),
//		Usage:      image.TransferUsage(),
//	})
//	buf, _ := dev.CreateBuffer(resource.BufferDescriptor{
//		Size:    256 * 256 * 4,
//		Usage:   gputypes.BufferUsageCopySrc,
//		Element: format.Elem(format.ScalarU8),
//	})
//
//	enc, err := encoder.New(dev)
//	if err != nil {
//		return err
//	}
//	if err := enc.CopyBufferToImage(buf, img, encoder.FullRegion(img, 0)); err != nil {
//		return err // nothing was recorded
//	}
//	cb, err := enc.Finish()
//	if err != nil {
//		return err
//	}
//	return encoder.Submit(ctx, cb)
//
// # Architecture
//
// The library is organized into:
//   - image: image shapes, mip chains, creation properties
//   - format: format table, block layout, buffer element types
//   - transfer: the copy validator
//   - resource: buffers and images over a wgpu HAL device
//   - encoder: validated copy recording and submission
//
// The image, format and transfer packages are pure and safe for concurrent use.
package texcopy

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
