package resource

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texcopy"
	"github.com/gogpu/texcopy/format"
	"github.com/gogpu/texcopy/transfer"
	"github.com/gogpu/wgpu/hal"
)

// ErrInvalidBufferSize is returned when a buffer size is zero or not a
// multiple of its element size.
var ErrInvalidBufferSize = errors.New("resource: invalid buffer size")

// BufferDescriptor describes a buffer to create.
type BufferDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Size is the buffer size in bytes.
	Size uint64

	// Usage specifies how the buffer will be used.
	Usage gputypes.BufferUsage

	// Element is the type the buffer is viewed as in copies.
	// The zero value means u8.
	Element format.PixelType
}

// Buffer is a GPU buffer viewed as an array of Element values.
//
// Buffer implements [transfer.Buffer].
type Buffer struct {
	mu        sync.RWMutex
	raw       hal.Buffer
	owner     *Device
	desc      BufferDescriptor
	destroyed bool
}

var _ transfer.Buffer = (*Buffer)(nil)

// CreateBuffer creates a buffer on d.
func (d *Device) CreateBuffer(desc BufferDescriptor) (*Buffer, error) {
	if err := d.CheckAlive(); err != nil {
		return nil, err
	}

	if desc.Element.IsZero() {
		desc.Element = format.Elem(format.ScalarU8)
	}
	if err := desc.Element.Validate(); err != nil {
		return nil, err
	}
	elemSize := uint64(desc.Element.Size())
	if desc.Size == 0 || desc.Size%elemSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %v elements", ErrInvalidBufferSize, desc.Size, desc.Element)
	}

	raw, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: desc.Label,
		Size:  desc.Size,
		Usage: desc.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer: %w", err)
	}

	texcopy.Logger().Debug("resource: buffer created",
		"label", desc.Label, "size", desc.Size, "element", desc.Element)

	return &Buffer{raw: raw, owner: d, desc: desc}, nil
}

// Device returns the identity of the device that created the buffer.
func (b *Buffer) Device() transfer.DeviceID {
	return b.owner.id
}

// Owner returns the device that created the buffer.
func (b *Buffer) Owner() *Device {
	return b.owner
}

// Label returns the buffer's debug label.
func (b *Buffer) Label() string {
	return b.desc.Label
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 {
	return b.desc.Size
}

// Len returns the buffer length in elements.
func (b *Buffer) Len() uint64 {
	return b.desc.Size / uint64(b.desc.Element.Size())
}

// Element returns the element type of the buffer.
func (b *Buffer) Element() format.PixelType {
	return b.desc.Element
}

// Usage returns the buffer usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage {
	return b.desc.Usage
}

// UsageTransferSource reports whether the buffer can be a copy source.
func (b *Buffer) UsageTransferSource() bool {
	return b.desc.Usage&gputypes.BufferUsageCopySrc != 0
}

// UsageTransferDestination reports whether the buffer can be a copy destination.
func (b *Buffer) UsageTransferDestination() bool {
	return b.desc.Usage&gputypes.BufferUsageCopyDst != 0
}

// IsDestroyed returns true if the buffer has been destroyed.
func (b *Buffer) IsDestroyed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.destroyed
}

// Raw returns the underlying HAL buffer, or nil after Destroy.
func (b *Buffer) Raw() hal.Buffer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.destroyed {
		return nil
	}
	return b.raw
}

// Destroy releases the HAL buffer. Calling Destroy more than once is a no-op.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	if b.destroyed {
		b.mu.Unlock()
		return
	}
	b.destroyed = true
	raw := b.raw
	b.raw = nil
	b.mu.Unlock()

	if b.owner.IsDestroyed() {
		texcopy.Logger().Warn("resource: buffer destroyed after its device", "label", b.desc.Label)
		return
	}
	b.owner.device.DestroyBuffer(raw)
}
