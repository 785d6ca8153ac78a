package format

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Pixel type errors.
var (
	// ErrInvalidPixelType is returned when a pixel type cannot be parsed or
	// derived from a Go type.
	ErrInvalidPixelType = errors.New("format: invalid pixel type")

	// ErrIncompatiblePixelsType is matched by [IncompatiblePixelsTypeError].
	ErrIncompatiblePixelsType = errors.New("format: incompatible pixels type")
)

// Scalar is the primitive element of a buffer.
type Scalar uint8

// Scalars.
const (
	// ScalarNone marks formats that can only be addressed as raw bytes.
	ScalarNone Scalar = iota
	ScalarU8
	ScalarI8
	ScalarU16
	ScalarI16
	ScalarF16
	ScalarU32
	ScalarI32
	ScalarF32
	ScalarU64
	ScalarI64
	ScalarF64
)

var scalarNames = [...]string{
	ScalarNone: "none",
	ScalarU8:   "u8",
	ScalarI8:   "i8",
	ScalarU16:  "u16",
	ScalarI16:  "i16",
	ScalarF16:  "f16",
	ScalarU32:  "u32",
	ScalarI32:  "i32",
	ScalarF32:  "f32",
	ScalarU64:  "u64",
	ScalarI64:  "i64",
	ScalarF64:  "f64",
}

// Go spellings accepted by ParsePixelType in addition to the short names.
var scalarAliases = map[string]Scalar{
	"byte":    ScalarU8,
	"uint8":   ScalarU8,
	"int8":    ScalarI8,
	"uint16":  ScalarU16,
	"int16":   ScalarI16,
	"float16": ScalarF16,
	"uint32":  ScalarU32,
	"int32":   ScalarI32,
	"float32": ScalarF32,
	"uint64":  ScalarU64,
	"int64":   ScalarI64,
	"float64": ScalarF64,
}

// Size returns the size of the scalar in bytes.
func (s Scalar) Size() uint32 {
	switch s {
	case ScalarU8, ScalarI8:
		return 1
	case ScalarU16, ScalarI16, ScalarF16:
		return 2
	case ScalarU32, ScalarI32, ScalarF32:
		return 4
	case ScalarU64, ScalarI64, ScalarF64:
		return 8
	default:
		return 0
	}
}

// String returns the short name of the scalar, e.g. "u32".
func (s Scalar) String() string {
	if int(s) < len(scalarNames) {
		return scalarNames[s]
	}
	return fmt.Sprintf("Scalar(%d)", uint8(s))
}

// PixelType is the element type of a buffer taking part in an image copy:
// Count scalars laid out contiguously, such as u8, u32 or [2]u32.
type PixelType struct {
	Scalar Scalar
	Count  uint32
}

// Elem returns a single scalar pixel type.
func Elem(s Scalar) PixelType {
	return PixelType{Scalar: s, Count: 1}
}

// Array returns a pixel type of n consecutive scalars.
func Array(s Scalar, n uint32) PixelType {
	return PixelType{Scalar: s, Count: n}
}

// Size returns the size of one element in bytes. The result is only
// meaningful for pixel types that pass [PixelType.Validate].
func (p PixelType) Size() uint32 {
	return p.Scalar.Size() * p.Count
}

// IsZero reports whether p is the zero PixelType.
func (p PixelType) IsZero() bool {
	return p == PixelType{}
}

// IsRawBytes reports whether p is a byte or an array of bytes.
// Raw bytes can view any format whose block size they divide.
func (p PixelType) IsRawBytes() bool {
	return p.Scalar == ScalarU8 && p.Count > 0
}

// Validate returns an error unless p names a real scalar with a non-zero
// count and its size in bytes fits in 32 bits.
func (p PixelType) Validate() error {
	if p.Scalar == ScalarNone || p.Scalar.Size() == 0 || p.Count == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPixelType, p)
	}
	if uint64(p.Scalar.Size())*uint64(p.Count) > math.MaxUint32 {
		return fmt.Errorf("%w: %v is larger than 4 GiB", ErrInvalidPixelType, p)
	}
	return nil
}

// String returns "u8" for single scalars and "[2]u32" for arrays.
func (p PixelType) String() string {
	if p.Count == 1 {
		return p.Scalar.String()
	}
	return fmt.Sprintf("[%d]%s", p.Count, p.Scalar)
}

// ParsePixelType parses strings such as "u8", "uint32", "[2]u32" or "[4]byte".
func ParsePixelType(s string) (PixelType, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	count := uint64(1)
	if rest, ok := strings.CutPrefix(text, "["); ok {
		n, elem, found := strings.Cut(rest, "]")
		if !found {
			return PixelType{}, fmt.Errorf("%w: %q", ErrInvalidPixelType, s)
		}
		parsed, err := strconv.ParseUint(strings.TrimSpace(n), 10, 32)
		if err != nil || parsed == 0 {
			return PixelType{}, fmt.Errorf("%w: bad count in %q", ErrInvalidPixelType, s)
		}
		count = parsed
		text = strings.TrimSpace(elem)
	}

	scalar, ok := lookupScalar(text)
	if !ok {
		return PixelType{}, fmt.Errorf("%w: unknown scalar in %q", ErrInvalidPixelType, s)
	}
	p := PixelType{Scalar: scalar, Count: uint32(count)}
	if err := p.Validate(); err != nil {
		return PixelType{}, err
	}
	return p, nil
}

func lookupScalar(name string) (Scalar, bool) {
	for i, n := range scalarNames {
		if i != int(ScalarNone) && n == name {
			return Scalar(i), true
		}
	}
	s, ok := scalarAliases[name]
	return s, ok
}

// PixelTypeOf returns the pixel type of the Go type T. T must be a numeric
// type or a fixed-size array of one; named types are resolved by kind.
// Go has no half float type, so ScalarF16 is never derived.
func PixelTypeOf[T any]() (PixelType, error) {
	t := reflect.TypeFor[T]()
	count := uint32(1)
	if t.Kind() == reflect.Array {
		if t.Len() == 0 || uint64(t.Len()) > math.MaxUint32 {
			return PixelType{}, fmt.Errorf("%w: array length of %v", ErrInvalidPixelType, t)
		}
		count = uint32(t.Len())
		t = t.Elem()
	}

	var s Scalar
	switch t.Kind() {
	case reflect.Uint8:
		s = ScalarU8
	case reflect.Int8:
		s = ScalarI8
	case reflect.Uint16:
		s = ScalarU16
	case reflect.Int16:
		s = ScalarI16
	case reflect.Uint32:
		s = ScalarU32
	case reflect.Int32:
		s = ScalarI32
	case reflect.Float32:
		s = ScalarF32
	case reflect.Uint64:
		s = ScalarU64
	case reflect.Int64:
		s = ScalarI64
	case reflect.Float64:
		s = ScalarF64
	default:
		return PixelType{}, fmt.Errorf("%w: %v", ErrInvalidPixelType, reflect.TypeFor[T]())
	}
	p := PixelType{Scalar: s, Count: count}
	if err := p.Validate(); err != nil {
		return PixelType{}, err
	}
	return p, nil
}

// IncompatiblePixelsTypeError reports that a buffer element type cannot view
// the texels of a format.
type IncompatiblePixelsTypeError struct {
	Format Format
	Pixel  PixelType
}

func (e *IncompatiblePixelsTypeError) Error() string {
	return fmt.Sprintf("format: pixel type %v is incompatible with %v", e.Pixel, e.Format)
}

// Unwrap returns ErrIncompatiblePixelsType.
func (e *IncompatiblePixelsTypeError) Unwrap() error {
	return ErrIncompatiblePixelsType
}

// Rate returns how many elements of p make up one block of f.
//
// Byte elements (u8, [n]u8) view any format whose block size in bytes they
// divide. Other elements must share the format's component scalar and their
// count must divide the number of components in a block. u16 elements also
// view half float formats.
func (f Format) Rate(p PixelType) (uint32, error) {
	if !f.IsValid() {
		return 0, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	info := formatInfoTable[f]
	if p.IsRawBytes() {
		if size := p.Size(); info.blockBytes%size == 0 {
			return info.blockBytes / size, nil
		}
	}
	if scalarViews(p.Scalar, info.scalar) && info.components%p.Count == 0 {
		return info.components / p.Count, nil
	}
	return 0, &IncompatiblePixelsTypeError{Format: f, Pixel: p}
}

// EnsureAcceptsPixelType returns an error unless p can view the texels of f.
func (f Format) EnsureAcceptsPixelType(p PixelType) error {
	_, err := f.Rate(p)
	return err
}

func scalarViews(elem, component Scalar) bool {
	if component == ScalarNone {
		return false
	}
	return elem == component || (elem == ScalarU16 && component == ScalarF16)
}
