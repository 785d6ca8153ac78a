// Package plan loads copy plans and checks them without a GPU.
//
// A plan names images and buffers by their shape and lists the copies to run
// between them. Plans are authored as YAML or as JSONC (JSON with comments
// and trailing commas):
//
//	images:
//	  atlas: {type: 2d, width: 1024, height: 1024, format: R8G8B8A8_UNORM, usage: [transfer_dst]}
//	buffers:
//	  staging: {len: 4194304, element: u8, usage: [transfer_src]}
//	copies:
//	  - {type: buffer-to-image, buffer: staging, image: atlas, mip: 0}
//
// Evaluate runs every copy through the transfer validator against in-memory
// views of the declared resources.
package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Plan errors.
var (
	// ErrUnsupportedExtension is returned for plan files that are neither YAML
	// nor JSON.
	ErrUnsupportedExtension = errors.New("plan: unsupported file extension")

	// ErrUnknownResource is returned when a copy names an undeclared buffer
	// or image.
	ErrUnknownResource = errors.New("plan: unknown resource")

	// ErrInvalidResource is returned when a declared buffer or image cannot
	// be built from its description.
	ErrInvalidResource = errors.New("plan: invalid resource")
)

// Plan is a set of named resources and the copies between them.
type Plan struct {
	Images  map[string]ImageSpec  `yaml:"images" json:"images"`
	Buffers map[string]BufferSpec `yaml:"buffers" json:"buffers"`
	Copies  []CopySpec            `yaml:"copies" json:"copies"`
}

// ImageSpec describes an image. Type is "1d", "2d" (the default) or "3d".
// Layers defaults to 1 and Depth is only read for 3D images.
type ImageSpec struct {
	Type    string   `yaml:"type" json:"type"`
	Width   uint32   `yaml:"width" json:"width"`
	Height  uint32   `yaml:"height" json:"height"`
	Depth   uint32   `yaml:"depth" json:"depth"`
	Layers  uint32   `yaml:"layers" json:"layers"`
	Format  string   `yaml:"format" json:"format"`
	Samples uint32   `yaml:"samples" json:"samples"`
	Usage   []string `yaml:"usage" json:"usage"`
}

// BufferSpec describes a buffer. Len counts elements of Element, which
// defaults to "u8".
type BufferSpec struct {
	Len     uint64   `yaml:"len" json:"len"`
	Element string   `yaml:"element" json:"element"`
	Usage   []string `yaml:"usage" json:"usage"`
}

// CopySpec describes one copy.
//
// Offset and Size list up to three axes; missing offset axes are 0 and
// missing size axes are 1. An empty Size covers the whole mip level from
// Offset. NumLayers defaults to 1.
type CopySpec struct {
	Name       string   `yaml:"name" json:"name"`
	Type       string   `yaml:"type" json:"type"`
	Buffer     string   `yaml:"buffer" json:"buffer"`
	Image      string   `yaml:"image" json:"image"`
	Offset     []uint32 `yaml:"offset" json:"offset"`
	Size       []uint32 `yaml:"size" json:"size"`
	FirstLayer uint32   `yaml:"first_layer" json:"first_layer"`
	NumLayers  *uint32  `yaml:"num_layers" json:"num_layers"`
	Mip        uint32   `yaml:"mip" json:"mip"`
}

// Label returns the copy name, or "buffer -> image" when it has none.
func (c CopySpec) Label() string {
	if c.Name != "" {
		return c.Name
	}
	if strings.HasPrefix(c.Type, "image") {
		return c.Image + " -> " + c.Buffer
	}
	return c.Buffer + " -> " + c.Image
}

// Decode parses a plan. ext selects the syntax: ".yaml" and ".yml" are YAML,
// ".json" and ".jsonc" are JSON with comments. Unknown fields are rejected.
func Decode(data []byte, ext string) (*Plan, error) {
	var p Plan
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing plan: %w", err)
		}
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("parsing plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return &p, nil
}

// Load reads and decodes the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
