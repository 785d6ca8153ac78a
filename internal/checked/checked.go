// Package checked provides overflow-aware arithmetic for size computations.
//
// Image extents are 32-bit per axis but their products (texel counts, block
// counts, buffer lengths) can exceed 64 bits for adversarial inputs. The
// helpers here saturate at math.MaxUint64 instead of wrapping, so a size
// computed from them can only ever be over-reported.
package checked

import (
	"math"
	"math/bits"
)

// Mul returns a*b and whether the product overflowed 64 bits.
func Mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

// MulSat returns the product of all factors, saturating at math.MaxUint64.
// An empty factor list yields 1.
func MulSat(factors ...uint64) uint64 {
	result := uint64(1)
	for _, f := range factors {
		p, overflow := Mul(result, f)
		if overflow {
			// A zero factor later on still wins.
			for _, rest := range factors {
				if rest == 0 {
					return 0
				}
			}
			return math.MaxUint64
		}
		result = p
	}
	return result
}

// AddSat returns a+b, saturating at math.MaxUint64.
func AddSat(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// CeilDiv returns ceil(a/b) for b > 0 without intermediate overflow.
func CeilDiv(a, b uint64) uint64 {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}
