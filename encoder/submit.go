package encoder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texcopy/image"
	"github.com/gogpu/texcopy/resource"
	"github.com/gogpu/texcopy/transfer"
	"github.com/gogpu/wgpu/hal"
)

// DefaultSubmitTimeout is how long Submit waits for the GPU when neither the
// context nor WithSubmitTimeout sets a limit.
const DefaultSubmitTimeout = 5 * time.Second

// submitPollInterval is how often Submit asks the queue for completed work.
const submitPollInterval = time.Millisecond

// Command buffer errors.
var (
	// ErrCommandBufferConsumed is returned when a command buffer is submitted twice.
	ErrCommandBufferConsumed = errors.New("encoder: command buffer already submitted")

	// ErrGPUTimeout is returned when the GPU does not complete a submission in time.
	ErrGPUTimeout = errors.New("encoder: timed out waiting for GPU")
)

// CommandBuffer holds validated copies ready for submission.
// A CommandBuffer can be submitted once.
type CommandBuffer struct {
	mu sync.Mutex

	device   *resource.Device
	label    string
	logger   *slog.Logger
	timeout  time.Duration
	commands []Command
	consumed bool
}

// Label returns the debug label inherited from the encoder.
func (cb *CommandBuffer) Label() string {
	return cb.label
}

// Commands returns a copy of the recorded commands.
func (cb *CommandBuffer) Commands() []Command {
	return append([]Command(nil), cb.commands...)
}

// IsConsumed reports whether the command buffer has been submitted.
func (cb *CommandBuffer) IsConsumed() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.consumed
}

// Encode records every command into a HAL encoder that is already recording.
func (cb *CommandBuffer) Encode(enc hal.CommandEncoder) error {
	for i := range cb.commands {
		cmd := &cb.commands[i]
		buf, tex := cmd.Buffer.Raw(), cmd.Image.Raw()
		if buf == nil || tex == nil {
			return fmt.Errorf("command %d: %w", i, resource.ErrDestroyed)
		}
		regions := []hal.BufferTextureCopy{cmd.halCopy(tex)}
		switch cmd.Type {
		case transfer.BufferToImage:
			enc.CopyBufferToTexture(buf, tex, regions)
		case transfer.ImageToBuffer:
			enc.CopyTextureToBuffer(tex, buf, regions)
		default:
			return fmt.Errorf("command %d: unknown copy type %v", i, cmd.Type)
		}
	}
	return nil
}

// halCopy converts the command into a HAL copy region. For 1D and 2D images
// the array layers map to the Z axis.
func (cmd *Command) halCopy(tex hal.Texture) hal.BufferTextureCopy {
	r := cmd.Region
	origin := hal.Origin3D{X: r.ImageOffset[0], Y: r.ImageOffset[1], Z: r.ImageOffset[2]}
	size := hal.Extent3D{Width: r.ImageSize[0], Height: r.ImageSize[1], DepthOrArrayLayers: r.ImageSize[2]}
	if cmd.Image.Dimensions().Type() != image.Type3D {
		origin.Z = r.FirstLayer
		size.DepthOrArrayLayers = r.NumLayers
	}
	return hal.BufferTextureCopy{
		BufferLayout: hal.ImageDataLayout{
			Offset:       r.BufferOffset,
			BytesPerRow:  cmd.BytesPerRow,
			RowsPerImage: cmd.RowsPerImage,
		},
		TextureBase: hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: r.MipLevel,
			Origin:   origin,
			Aspect:   gputypes.TextureAspectAll,
		},
		Size: size,
	}
}

// Submit encodes cb on its device, submits it to the queue and waits until
// the queue reports the submission complete. The wait is bounded by the
// context deadline if it has one, otherwise by the encoder's submit timeout.
func Submit(ctx context.Context, cb *CommandBuffer) error {
	if cb == nil {
		return errors.New("encoder: command buffer is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.consumed {
		return ErrCommandBufferConsumed
	}
	if err := cb.device.CheckAlive(); err != nil {
		return err
	}

	timeout := cb.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	device, queue := cb.device.HAL(), cb.device.Queue()

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: cb.label})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(cb.label); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	if err := cb.Encode(encoder); err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("encode %s: %w", cb.label, err)
	}
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}

	index, err := queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("submit: %w", err)
	}
	cb.consumed = true

	if err := waitSubmission(ctx, queue, index, timeout); err != nil {
		// The GPU may still read cmdBuf, so it is not returned to the pool.
		cb.logger.Warn("encoder: command buffer not freed",
			"label", cb.label, "submission", index, "err", err)
		return err
	}
	device.FreeCommandBuffer(cmdBuf)

	cb.logger.Info("encoder: command buffer submitted",
		"label", cb.label, "copies", len(cb.commands), "device", cb.device.ID())
	return nil
}

// waitSubmission polls queue until submission index has completed, the
// timeout elapses or ctx is done.
func waitSubmission(ctx context.Context, queue hal.Queue, index uint64, timeout time.Duration) error {
	if queue.PollCompleted() >= index {
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(submitPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if queue.PollCompleted() >= index {
				return nil
			}
			return fmt.Errorf("%w after %v", ErrGPUTimeout, timeout)
		case <-ticker.C:
			if queue.PollCompleted() >= index {
				return nil
			}
		}
	}
}
