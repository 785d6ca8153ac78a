package image

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// ErrUnknownUsage is returned by ParseUsage for an unrecognized flag name.
var ErrUnknownUsage = errors.New("image: unknown usage flag")

// Usage describes the ways an image may be used.
type Usage struct {
	// TransferSource allows the image to be the source of a copy.
	TransferSource bool
	// TransferDestination allows the image to be the destination of a copy.
	TransferDestination bool
	// Sampled allows the image to be bound as a sampled texture.
	Sampled bool
	// Storage allows the image to be bound as a storage texture.
	Storage bool
	// ColorAttachment allows the image to be used as a render target.
	ColorAttachment bool
}

// TransferUsage returns a usage with both transfer flags set.
func TransferUsage() Usage {
	return Usage{TransferSource: true, TransferDestination: true}
}

// TextureUsage converts u to WebGPU texture usage flags.
func (u Usage) TextureUsage() gputypes.TextureUsage {
	var result gputypes.TextureUsage

	if u.TransferSource {
		result |= gputypes.TextureUsageCopySrc
	}
	if u.TransferDestination {
		result |= gputypes.TextureUsageCopyDst
	}
	if u.Sampled {
		result |= gputypes.TextureUsageTextureBinding
	}
	if u.Storage {
		result |= gputypes.TextureUsageStorageBinding
	}
	if u.ColorAttachment {
		result |= gputypes.TextureUsageRenderAttachment
	}

	return result
}

// UsageFromTexture converts WebGPU texture usage flags to a Usage.
func UsageFromTexture(usage gputypes.TextureUsage) Usage {
	return Usage{
		TransferSource:      usage&gputypes.TextureUsageCopySrc != 0,
		TransferDestination: usage&gputypes.TextureUsageCopyDst != 0,
		Sampled:             usage&gputypes.TextureUsageTextureBinding != 0,
		Storage:             usage&gputypes.TextureUsageStorageBinding != 0,
		ColorAttachment:     usage&gputypes.TextureUsageRenderAttachment != 0,
	}
}

// String lists the set flags, e.g. "transfer_src|sampled".
func (u Usage) String() string {
	var parts []string
	if u.TransferSource {
		parts = append(parts, "transfer_src")
	}
	if u.TransferDestination {
		parts = append(parts, "transfer_dst")
	}
	if u.Sampled {
		parts = append(parts, "sampled")
	}
	if u.Storage {
		parts = append(parts, "storage")
	}
	if u.ColorAttachment {
		parts = append(parts, "color_attachment")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseUsage parses flag names as printed by String. Names may be separated
// by "|" or given as separate arguments; "none" and empty names are ignored.
func ParseUsage(names ...string) (Usage, error) {
	var u Usage
	for _, arg := range names {
		for _, name := range strings.Split(arg, "|") {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "", "none":
			case "transfer_src", "copy_src":
				u.TransferSource = true
			case "transfer_dst", "copy_dst":
				u.TransferDestination = true
			case "sampled":
				u.Sampled = true
			case "storage":
				u.Storage = true
			case "color_attachment":
				u.ColorAttachment = true
			default:
				return Usage{}, fmt.Errorf("%w: %q", ErrUnknownUsage, name)
			}
		}
	}
	return u, nil
}
