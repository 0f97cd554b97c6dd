package radix

import (
	"math"
	"math/bits"
)

/*
Package radix maps keys onto order-preserving unsigned representations and
classifies a key into a bucket by the position of the highest bit at which
its representation differs from a reference top key. Two keys whose
representations share the same highest differing bit relative to a common top
always land in the same bucket; this grouping is what the heap's amortized
cost bound depends on.
*/

////////////////////////////////////////////////////////////////////////////////

// Unsigned is the set of types usable as an order-preserving key
// representation.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits maps a key to an unsigned representation of the same width that sorts
// identically to the key: for distinct keys a < b, Bits(a) < Bits(b).
type Bits[K any, U Unsigned] func(K) U

// Width returns the number of bits in the representation type U.
func Width[U Unsigned]() int {
	return bits.OnesCount64(uint64(^U(0)))
}

// Bucket returns the bucket index for key bits k relative to top bits t. It
// is 0 when the two are equal, and otherwise one more than the position of
// the highest bit at which they differ, so indices range over 0..Width.
func Bucket[U Unsigned](k, t U) int {
	return bits.Len64(uint64(k ^ t))
}

// Reverse complements a bits mapping, inverting its order. A heap built on a
// reversed mapping is min-oriented instead of max-oriented.
func Reverse[K any, U Unsigned](f Bits[K, U]) Bits[K, U] {
	return func(k K) U {
		return ^f(k)
	}
}

// Uint8 through Uint64 are identity mappings: unsigned keys already sort by
// their own bit patterns.

func Uint8(k uint8) uint8    { return k }
func Uint16(k uint16) uint16 { return k }
func Uint32(k uint32) uint32 { return k }
func Uint64(k uint64) uint64 { return k }

// Uint widens to 64 bits so the mapping is the same on 32- and 64-bit
// platforms.
func Uint(k uint) uint64 { return uint64(k) }

// Int8 through Int64 flip the sign bit, moving negative keys below positive
// ones in unsigned order.

func Int8(k int8) uint8    { return uint8(k) ^ 1<<7 }
func Int16(k int16) uint16 { return uint16(k) ^ 1<<15 }
func Int32(k int32) uint32 { return uint32(k) ^ 1<<31 }
func Int64(k int64) uint64 { return uint64(k) ^ 1<<63 }

// Int sign-extends to 64 bits before flipping, for the same reason as Uint.
func Int(k int) uint64 { return uint64(int64(k)) ^ 1<<63 }

// Float32 maps an IEEE 754 single onto unsigned bits that sort by the IEEE
// totalOrder predicate: the sign bit is flipped when clear and every bit is
// inverted when set. NaNs are accepted and sort as totalOrder places them,
// negative NaNs below -Inf and positive NaNs above +Inf.
func Float32(k float32) uint32 {
	b := math.Float32bits(k)
	if b>>31 == 0 {
		return b ^ 1<<31
	}
	return ^b
}

// Float64 is Float32 for doubles.
func Float64(k float64) uint64 {
	b := math.Float64bits(k)
	if b>>63 == 0 {
		return b ^ 1<<63
	}
	return ^b
}
