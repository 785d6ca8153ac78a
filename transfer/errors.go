package transfer

import (
	"errors"
	"fmt"
)

// Validation errors returned by CheckCopyBufferImage.
var (
	// ErrSourceMissingTransferUsage is returned when the copy source lacks
	// transfer source usage.
	ErrSourceMissingTransferUsage = errors.New("transfer: source is missing transfer source usage")

	// ErrDestinationMissingTransferUsage is returned when the copy destination
	// lacks transfer destination usage.
	ErrDestinationMissingTransferUsage = errors.New("transfer: destination is missing transfer destination usage")

	// ErrOverlappingRanges is reserved for copies whose source and destination
	// share memory. It is not returned yet.
	ErrOverlappingRanges = errors.New("transfer: source and destination memory ranges overlap")

	// ErrUnexpectedMultisampled is returned when the image has more than one sample.
	ErrUnexpectedMultisampled = errors.New("transfer: image is multisampled")

	// ErrImageCoordinatesOutOfRange is returned when the mip level, layer range
	// or region lies outside the image.
	ErrImageCoordinatesOutOfRange = errors.New("transfer: image coordinates out of range")

	// ErrWrongPixelType is matched by [WrongPixelTypeError].
	ErrWrongPixelType = errors.New("transfer: wrong pixel type")

	// ErrBufferTooSmall is matched by [BufferTooSmallError].
	ErrBufferTooSmall = errors.New("transfer: buffer too small")
)

// WrongPixelTypeError reports that the buffer element type cannot view the
// image format. Err is the cause reported by the format package.
type WrongPixelTypeError struct {
	Err error
}

func (e *WrongPixelTypeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrWrongPixelType, e.Err)
}

// Unwrap returns both ErrWrongPixelType and the format-level cause.
func (e *WrongPixelTypeError) Unwrap() []error {
	return []error{ErrWrongPixelType, e.Err}
}

// BufferTooSmallError reports the minimum buffer length a copy needs and the
// actual length, both in buffer elements.
type BufferTooSmallError struct {
	RequiredLen uint64
	ActualLen   uint64
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("%v: requires %d elements, has %d", ErrBufferTooSmall, e.RequiredLen, e.ActualLen)
}

// Is reports whether target is ErrBufferTooSmall.
func (e *BufferTooSmallError) Is(target error) bool {
	return target == ErrBufferTooSmall
}

// outOfRange wraps ErrImageCoordinatesOutOfRange with the failing coordinate.
func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrImageCoordinatesOutOfRange}, args...)...)
}
