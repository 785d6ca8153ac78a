package transfer

import (
	"fmt"

	"github.com/gogpu/texcopy"
	"github.com/gogpu/texcopy/format"
	"github.com/gogpu/texcopy/internal/checked"
)

// CheckCopyBufferImage checks that a copy between buf and img described by
// req is valid. Checks run in a fixed order and the first failure is returned:
//
//  1. buf and img belong to device (panics otherwise)
//  2. transfer usage of the source and destination
//  3. img is single-sampled
//  4. the mip level exists
//  5. the layer range fits the mip level
//  6. offset+size fits the mip level on each axis
//  7. the buffer element type can view the image format
//  8. the buffer is long enough
//
// Mixing resources from different devices is a programming error and panics.
//
// TODO: detect overlapping memory once resources can alias memory (sparse
// aliased images, see image.CreateFlags.SparseAliased) and return
// ErrOverlappingRanges.
func CheckCopyBufferImage(device DeviceID, buf Buffer, img Image, req CopyRequest) error {
	if buf.Device() != device || img.Device() != device {
		panic(fmt.Sprintf("transfer: resources belong to devices %d and %d, copy recorded on device %d",
			buf.Device(), img.Device(), device))
	}

	switch req.Type {
	case BufferToImage:
		if !buf.UsageTransferSource() {
			return ErrSourceMissingTransferUsage
		}
		if !img.Usage().TransferDestination {
			return ErrDestinationMissingTransferUsage
		}
	case ImageToBuffer:
		if !img.Usage().TransferSource {
			return ErrSourceMissingTransferUsage
		}
		if !buf.UsageTransferDestination() {
			return ErrDestinationMissingTransferUsage
		}
	default:
		return fmt.Errorf("transfer: unknown copy type %v", req.Type)
	}

	if samples := img.Samples(); samples != 1 {
		return fmt.Errorf("%w: %d samples", ErrUnexpectedMultisampled, samples)
	}

	dims, ok := img.Dimensions().MipmapDimensions(req.Mipmap)
	if !ok {
		return outOfRange("mip level %d, image has %d", req.Mipmap, img.Dimensions().MaxMipmaps())
	}

	if uint64(req.FirstLayer)+uint64(req.NumLayers) > uint64(dims.ArrayLayers()) {
		return outOfRange("layers %d..%d, image has %d",
			req.FirstLayer, uint64(req.FirstLayer)+uint64(req.NumLayers), dims.ArrayLayers())
	}

	extent := dims.WidthHeightDepth()
	for axis, name := range [3]string{"x", "y", "z"} {
		if uint64(req.ImageOffset[axis])+uint64(req.ImageSize[axis]) > uint64(extent[axis]) {
			return outOfRange("%s offset %d + size %d exceeds %d at mip level %d",
				name, req.ImageOffset[axis], req.ImageSize[axis], extent[axis], req.Mipmap)
		}
	}

	f := img.Format()
	elem := buf.Element()
	if err := f.EnsureAcceptsPixelType(elem); err != nil {
		return &WrongPixelTypeError{Err: err}
	}

	required, err := RequiredLenForFormat(f, elem, req.ImageSize, req.NumLayers)
	if err != nil {
		return &WrongPixelTypeError{Err: err}
	}
	if actual := buf.Len(); required > actual {
		return &BufferTooSmallError{RequiredLen: required, ActualLen: actual}
	}

	return nil
}

// RequiredLenForFormat returns the minimum buffer length, in elements of p,
// needed to hold a region of size texels and numLayers layers in format f.
//
// Width and height are rounded up to whole blocks; depth and layers are never
// block compressed. The product is computed in 64 bits and saturates at
// math.MaxUint64 rather than wrapping.
func RequiredLenForFormat(f format.Format, p format.PixelType, size [3]uint32, numLayers uint32) (uint64, error) {
	rate, err := f.Rate(p)
	if err != nil {
		return 0, err
	}

	blockWidth, blockHeight := f.BlockDimensions()
	return checked.MulSat(
		checked.CeilDiv(uint64(size[0]), uint64(blockWidth)),
		checked.CeilDiv(uint64(size[1]), uint64(blockHeight)),
		uint64(size[2]),
		uint64(numLayers),
		uint64(rate),
	), nil
}

// CheckCopyRequest is CheckCopyBufferImage with debug logging of rejected
// copies through the package logger.
func CheckCopyRequest(device DeviceID, buf Buffer, img Image, req CopyRequest) error {
	err := CheckCopyBufferImage(device, buf, img, req)
	if err != nil {
		texcopy.Logger().Debug("transfer: copy rejected",
			"type", req.Type,
			"format", img.Format(),
			"dimensions", img.Dimensions(),
			"mip", req.Mipmap,
			"error", err)
	}
	return err
}
