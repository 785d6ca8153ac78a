// Package encoder records buffer-image copies into command buffers.
//
// Every copy is checked with transfer.CheckCopyBufferImage before it is
// recorded. A rejected copy returns the validator's error and leaves the
// encoder unchanged, so a finished command buffer only ever holds copies
// that passed validation.
//
// CommandEncoder follows the WebGPU command encoding pattern:
//  1. Create an encoder with New
//  2. Record copies with CopyBufferToImage and CopyImageToBuffer
//  3. Call Finish to get a CommandBuffer
//  4. Submit the CommandBuffer
//
// State machine:
//
//	Recording -> Finish() -> Finished
//	Finished  -> Submit() -> Consumed
package encoder

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/texcopy"
	"github.com/gogpu/texcopy/resource"
	"github.com/gogpu/texcopy/transfer"
)

// Command encoder errors.
var (
	// ErrEncoderNotRecording is returned when a copy is recorded on an encoder
	// that is not in the Recording state.
	ErrEncoderNotRecording = errors.New("encoder: encoder not in recording state")

	// ErrNilDevice is returned when creating an encoder without a device.
	ErrNilDevice = errors.New("encoder: device is nil")

	// ErrNilResource is returned when a copy references a nil buffer or image.
	ErrNilResource = errors.New("encoder: buffer or image is nil")

	// ErrInvalidBufferOffset is returned when a buffer offset is past the end
	// of the buffer or not a multiple of its element size.
	ErrInvalidBufferOffset = errors.New("encoder: invalid buffer offset")

	// ErrRowTooLarge is returned when one row of blocks exceeds 4 GiB.
	ErrRowTooLarge = errors.New("encoder: bytes per row overflow")
)

// State is the recording state of a CommandEncoder.
type State int

const (
	// StateRecording accepts copies.
	StateRecording State = iota
	// StateFinished has produced a CommandBuffer.
	StateFinished
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case StateRecording:
		return "Recording"
	case StateFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Region selects the part of a buffer and image a copy touches.
type Region struct {
	// BufferOffset is the byte offset of the first element in the buffer.
	BufferOffset uint64

	// ImageOffset and ImageSize are in texels of MipLevel, ordered width,
	// height, depth.
	ImageOffset [3]uint32
	ImageSize   [3]uint32

	FirstLayer uint32
	NumLayers  uint32
	MipLevel   uint32
}

// FullRegion returns a region covering every layer of one mip level of img.
// For a mip level the image does not have, the region is empty and copies
// using it are rejected.
func FullRegion(img *resource.Image, mip uint32) Region {
	dims, ok := img.Dimensions().MipmapDimensions(mip)
	if !ok {
		return Region{MipLevel: mip}
	}
	return Region{
		ImageSize: dims.WidthHeightDepth(),
		NumLayers: dims.ArrayLayers(),
		MipLevel:  mip,
	}
}

// Command is one recorded copy.
type Command struct {
	Type   transfer.CopyType
	Buffer *resource.Buffer
	Image  *resource.Image
	Region Region

	// BytesPerRow and RowsPerImage describe the buffer layout in blocks.
	BytesPerRow  uint32
	RowsPerImage uint32

	// RequiredLen is the number of buffer elements the copy touches.
	RequiredLen uint64
}

// CommandEncoder records validated copies for one device.
//
// CommandEncoder is NOT safe for concurrent recording. The mutex only
// protects state queries made from other goroutines.
type CommandEncoder struct {
	mu sync.Mutex

	device *resource.Device
	opts   options
	logger *slog.Logger

	state    State
	commands []Command
}

// New creates a command encoder in the Recording state. The device must not
// be destroyed.
func New(dev *resource.Device, opts ...Option) (*CommandEncoder, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if err := dev.CheckAlive(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &CommandEncoder{
		device: dev,
		opts:   o,
		logger: texcopy.LoggerOr(o.logger),
	}, nil
}

// Label returns the debug label of the encoder.
func (e *CommandEncoder) Label() string {
	return e.opts.label
}

// State returns the current state of the encoder.
func (e *CommandEncoder) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Commands returns a copy of the recorded commands.
func (e *CommandEncoder) Commands() []Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Command(nil), e.commands...)
}

// CopyBufferToImage records a copy from buf into img.
// Nothing is recorded if the copy fails validation.
func (e *CommandEncoder) CopyBufferToImage(buf *resource.Buffer, img *resource.Image, region Region) error {
	if err := e.record(transfer.BufferToImage, buf, img, region); err != nil {
		return fmt.Errorf("copy buffer to image: %w", err)
	}
	return nil
}

// CopyImageToBuffer records a copy from img into buf.
// Nothing is recorded if the copy fails validation.
func (e *CommandEncoder) CopyImageToBuffer(img *resource.Image, buf *resource.Buffer, region Region) error {
	if err := e.record(transfer.ImageToBuffer, buf, img, region); err != nil {
		return fmt.Errorf("copy image to buffer: %w", err)
	}
	return nil
}

func (e *CommandEncoder) record(typ transfer.CopyType, buf *resource.Buffer, img *resource.Image, region Region) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRecording {
		return fmt.Errorf("%w: state is %v", ErrEncoderNotRecording, e.state)
	}
	if err := e.device.CheckAlive(); err != nil {
		return err
	}
	if buf == nil || img == nil {
		return ErrNilResource
	}
	if buf.IsDestroyed() || img.IsDestroyed() {
		return resource.ErrDestroyed
	}

	view, err := newBufferView(buf, region.BufferOffset)
	if err != nil {
		return err
	}

	req := transfer.CopyRequest{
		Type:        typ,
		ImageOffset: region.ImageOffset,
		ImageSize:   region.ImageSize,
		FirstLayer:  region.FirstLayer,
		NumLayers:   region.NumLayers,
		Mipmap:      region.MipLevel,
	}
	if err := transfer.CheckCopyBufferImage(e.device.ID(), view, img, req); err != nil {
		e.logger.Debug("encoder: copy rejected",
			"label", e.opts.label, "type", typ, "image", img.Label(), "buffer", buf.Label(), "error", err)
		return err
	}
	if region.MipLevel >= img.MipLevels() {
		return fmt.Errorf("%w: mip level %d not allocated, image has %d levels",
			transfer.ErrImageCoordinatesOutOfRange, region.MipLevel, img.MipLevels())
	}

	f := img.Format()
	bytesPerRow := f.BytesPerRow(region.ImageSize[0])
	if bytesPerRow > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrRowTooLarge, bytesPerRow)
	}
	required, err := transfer.RequiredLenForFormat(f, buf.Element(), region.ImageSize, region.NumLayers)
	if err != nil {
		return err
	}

	cmd := Command{
		Type:         typ,
		Buffer:       buf,
		Image:        img,
		Region:       region,
		BytesPerRow:  uint32(bytesPerRow),
		RowsPerImage: f.BlockRows(region.ImageSize[1]),
		RequiredLen:  required,
	}
	e.commands = append(e.commands, cmd)

	e.logger.Debug("encoder: copy recorded",
		"label", e.opts.label,
		"type", typ,
		"mip", region.MipLevel,
		"size", region.ImageSize,
		"elements", required)
	return nil
}

// Finish ends recording and returns the command buffer.
// The encoder cannot record further copies.
func (e *CommandEncoder) Finish() (*CommandBuffer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRecording {
		return nil, fmt.Errorf("%w: state is %v", ErrEncoderNotRecording, e.state)
	}
	e.state = StateFinished

	cb := &CommandBuffer{
		device:   e.device,
		label:    e.opts.label,
		logger:   e.logger,
		timeout:  e.opts.submitTimeout,
		commands: e.commands,
	}
	e.commands = nil
	return cb, nil
}

// bufferView is a transfer.Buffer that starts offset bytes into a buffer.
type bufferView struct {
	*resource.Buffer
	skip uint64
}

func newBufferView(buf *resource.Buffer, offset uint64) (bufferView, error) {
	elemSize := uint64(buf.Element().Size())
	if offset > buf.Size() || offset%elemSize != 0 {
		return bufferView{}, fmt.Errorf("%w: %d in a %d byte buffer of %v",
			ErrInvalidBufferOffset, offset, buf.Size(), buf.Element())
	}
	return bufferView{Buffer: buf, skip: offset / elemSize}, nil
}

// Len returns the number of elements after the offset.
func (v bufferView) Len() uint64 {
	return v.Buffer.Len() - v.skip
}
