package plan

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texcopy/format"
	"github.com/gogpu/texcopy/image"
	"github.com/gogpu/texcopy/internal/checked"
	"github.com/gogpu/texcopy/transfer"
)

// planDevice is the device every plan resource belongs to.
const planDevice transfer.DeviceID = 1

// Result is the outcome of one copy.
type Result struct {
	Index int
	Name  string

	// RequiredLen is the buffer length the copy needs, in buffer elements,
	// and RequiredBytes the same length in bytes. Both are 0 when the element
	// type cannot view the image format.
	RequiredLen   uint64
	RequiredBytes uint64

	// Err is nil when the copy is valid.
	Err error
}

// OK reports whether the copy passed validation.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failed returns the number of results with an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Evaluate checks every copy in order and returns one result per copy.
// Resources are built once; a broken resource fails every copy using it.
func (p *Plan) Evaluate() []Result {
	images := make(map[string]imageView, len(p.Images))
	imageErrs := make(map[string]error)
	for name, spec := range p.Images {
		img, err := spec.view()
		if err != nil {
			imageErrs[name] = fmt.Errorf("%w: image %q: %w", ErrInvalidResource, name, err)
			continue
		}
		images[name] = img
	}

	buffers := make(map[string]bufferView, len(p.Buffers))
	bufferErrs := make(map[string]error)
	for name, spec := range p.Buffers {
		buf, err := spec.view()
		if err != nil {
			bufferErrs[name] = fmt.Errorf("%w: buffer %q: %w", ErrInvalidResource, name, err)
			continue
		}
		buffers[name] = buf
	}

	results := make([]Result, len(p.Copies))
	for i, c := range p.Copies {
		results[i] = Result{Index: i, Name: c.Label()}

		img, err := lookup(images, imageErrs, "image", c.Image)
		if err != nil {
			results[i].Err = err
			continue
		}
		buf, err := lookup(buffers, bufferErrs, "buffer", c.Buffer)
		if err != nil {
			results[i].Err = err
			continue
		}
		req, err := c.request(img.dims)
		if err != nil {
			results[i].Err = err
			continue
		}

		if n, err := transfer.RequiredLenForFormat(img.format, buf.elem, req.ImageSize, req.NumLayers); err == nil {
			results[i].RequiredLen = n
			results[i].RequiredBytes = checked.MulSat(n, uint64(buf.elem.Size()))
		}
		results[i].Err = transfer.CheckCopyRequest(planDevice, buf, img, req)
	}
	return results
}

func lookup[V any](views map[string]V, errs map[string]error, kind, name string) (V, error) {
	if v, ok := views[name]; ok {
		return v, nil
	}
	var zero V
	if err, ok := errs[name]; ok {
		return zero, err
	}
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownResource, kind, name)
}

// request resolves the copy against the image's base dimensions.
func (c CopySpec) request(dims image.Dimensions) (transfer.CopyRequest, error) {
	typ, err := transfer.ParseCopyType(c.Type)
	if err != nil {
		return transfer.CopyRequest{}, err
	}
	if len(c.Offset) > 3 || len(c.Size) > 3 {
		return transfer.CopyRequest{}, fmt.Errorf("plan: offset and size have at most 3 axes")
	}

	req := transfer.CopyRequest{
		Type:       typ,
		ImageSize:  [3]uint32{1, 1, 1},
		FirstLayer: c.FirstLayer,
		NumLayers:  1,
		Mipmap:     c.Mip,
	}
	if c.NumLayers != nil {
		req.NumLayers = *c.NumLayers
	}
	copy(req.ImageOffset[:], c.Offset)

	if len(c.Size) > 0 {
		copy(req.ImageSize[:], c.Size)
		return req, nil
	}
	// An empty size covers the rest of the mip level. Offsets past the edge
	// leave a zero size so the validator reports them.
	if level, ok := dims.MipmapDimensions(c.Mip); ok {
		extent := level.WidthHeightDepth()
		for axis := range extent {
			if req.ImageOffset[axis] <= extent[axis] {
				req.ImageSize[axis] = extent[axis] - req.ImageOffset[axis]
			} else {
				req.ImageSize[axis] = 0
			}
		}
	}
	return req, nil
}

// imageView is an image described by a plan.
type imageView struct {
	dims    image.Dimensions
	format  format.Format
	samples uint32
	usage   image.Usage
}

var _ transfer.Image = imageView{}

func (s ImageSpec) view() (imageView, error) {
	typ := image.Type2D
	if s.Type != "" {
		t, err := image.ParseType(s.Type)
		if err != nil {
			return imageView{}, err
		}
		typ = t
	}
	layers := max(s.Layers, 1)

	var dims image.Dimensions
	switch typ {
	case image.Type1D:
		dims = image.Dim1D(s.Width, layers)
	case image.Type3D:
		if s.Layers > 1 {
			return imageView{}, fmt.Errorf("3D images have a single layer, got %d", s.Layers)
		}
		dims = image.Dim3D(s.Width, s.Height, s.Depth)
	default:
		dims = image.Dim2D(s.Width, s.Height, layers)
	}
	if err := dims.Validate(); err != nil {
		return imageView{}, err
	}

	f, err := format.ParseFormat(s.Format)
	if err != nil {
		return imageView{}, err
	}
	usage, err := image.ParseUsage(s.Usage...)
	if err != nil {
		return imageView{}, err
	}
	return imageView{dims: dims, format: f, samples: max(s.Samples, 1), usage: usage}, nil
}

func (v imageView) Device() transfer.DeviceID    { return planDevice }
func (v imageView) Dimensions() image.Dimensions { return v.dims }
func (v imageView) Format() format.Format        { return v.format }
func (v imageView) Samples() uint32              { return v.samples }
func (v imageView) Usage() image.Usage           { return v.usage }

// bufferView is a buffer described by a plan.
type bufferView struct {
	len   uint64
	elem  format.PixelType
	usage gputypes.BufferUsage
}

var _ transfer.Buffer = bufferView{}

func (s BufferSpec) view() (bufferView, error) {
	elem := format.Elem(format.ScalarU8)
	if s.Element != "" {
		p, err := format.ParsePixelType(s.Element)
		if err != nil {
			return bufferView{}, err
		}
		elem = p
	}
	usage, err := parseBufferUsage(s.Usage)
	if err != nil {
		return bufferView{}, err
	}
	return bufferView{len: s.Len, elem: elem, usage: usage}, nil
}

func (v bufferView) Device() transfer.DeviceID { return planDevice }
func (v bufferView) Len() uint64               { return v.len }
func (v bufferView) Element() format.PixelType { return v.elem }

func (v bufferView) UsageTransferSource() bool {
	return v.usage&gputypes.BufferUsageCopySrc != 0
}

func (v bufferView) UsageTransferDestination() bool {
	return v.usage&gputypes.BufferUsageCopyDst != 0
}

var bufferUsageNames = map[string]gputypes.BufferUsage{
	"transfer_src": gputypes.BufferUsageCopySrc,
	"copy_src":     gputypes.BufferUsageCopySrc,
	"transfer_dst": gputypes.BufferUsageCopyDst,
	"copy_dst":     gputypes.BufferUsageCopyDst,
	"map_read":     gputypes.BufferUsageMapRead,
	"map_write":    gputypes.BufferUsageMapWrite,
	"storage":      gputypes.BufferUsageStorage,
	"uniform":      gputypes.BufferUsageUniform,
	"vertex":       gputypes.BufferUsageVertex,
}

func parseBufferUsage(names []string) (gputypes.BufferUsage, error) {
	var usage gputypes.BufferUsage
	for _, arg := range names {
		for _, name := range strings.Split(arg, "|") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" || name == "none" {
				continue
			}
			flag, ok := bufferUsageNames[name]
			if !ok {
				return 0, fmt.Errorf("unknown buffer usage %q", name)
			}
			usage |= flag
		}
	}
	return usage, nil
}
