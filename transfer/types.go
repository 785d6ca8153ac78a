// Package transfer validates copies between buffers and images before they
// are recorded into a command buffer.
//
// [CheckCopyBufferImage] is the single entry point. It runs an ordered list
// of checks and returns the first failure as an error value; a nil result
// means the copy is safe to record. The validator reads buffers and images
// only through the [Buffer] and [Image] interfaces and keeps no state, so it
// is safe for concurrent use as long as those queries are.
package transfer

import (
	"fmt"

	"github.com/gogpu/texcopy/format"
	"github.com/gogpu/texcopy/image"
)

// DeviceID identifies the logical device that owns a resource.
type DeviceID uint64

// CopyType is the direction of a buffer-image copy.
type CopyType uint8

// Copy directions.
const (
	// BufferToImage reads from a buffer and writes to an image.
	BufferToImage CopyType = iota

	// ImageToBuffer reads from an image and writes to a buffer.
	ImageToBuffer
)

// String returns the string representation of the copy direction.
func (t CopyType) String() string {
	switch t {
	case BufferToImage:
		return "buffer-to-image"
	case ImageToBuffer:
		return "image-to-buffer"
	default:
		return fmt.Sprintf("CopyType(%d)", uint8(t))
	}
}

// ParseCopyType parses "buffer-to-image" or "image-to-buffer".
func ParseCopyType(s string) (CopyType, error) {
	switch s {
	case "buffer-to-image", "buffer_to_image":
		return BufferToImage, nil
	case "image-to-buffer", "image_to_buffer":
		return ImageToBuffer, nil
	default:
		return 0, fmt.Errorf("transfer: unknown copy type %q", s)
	}
}

// CopyRequest describes the image region touched by one copy.
//
// ImageOffset and ImageSize are in texels of the selected mip level and are
// ordered width, height, depth. Unused axes must be 0 for the offset and 1
// for the size.
type CopyRequest struct {
	Type        CopyType
	ImageOffset [3]uint32
	ImageSize   [3]uint32
	FirstLayer  uint32
	NumLayers   uint32
	Mipmap      uint32
}

// Buffer is the read-only view of a buffer the validator needs.
type Buffer interface {
	// Device returns the device that owns the buffer.
	Device() DeviceID

	// Len returns the buffer length in elements of Element.
	Len() uint64

	// Element returns the element type the buffer is viewed as.
	Element() format.PixelType

	UsageTransferSource() bool
	UsageTransferDestination() bool
}

// Image is the read-only view of an image the validator needs.
type Image interface {
	// Device returns the device that owns the image.
	Device() DeviceID

	Dimensions() image.Dimensions
	Format() format.Format
	Samples() uint32
	Usage() image.Usage
}
