package util

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"github.com/dchest/siphash"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Hash returns the siphash of v. Strings, byte slices and the builtin
// numeric types are hashed from their raw bytes; anything else is hashed
// from its fmt %#v rendering.
func Hash(v interface{}) uint64 {
	switch x := v.(type) {
	case string:
		return siphash.Hash(sipHashKey1, sipHashKey2, []byte(x))
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x)
	case bool:
		if x {
			return getUint64Hash(1)
		}
		return getUint64Hash(0)
	case int:
		return getUint64Hash(uint64(x))
	case int8:
		return getUint64Hash(uint64(x))
	case int16:
		return getUint64Hash(uint64(x))
	case int32:
		return getUint64Hash(uint64(x))
	case int64:
		return getUint64Hash(uint64(x))
	case uint:
		return getUint64Hash(uint64(x))
	case uint8:
		return getUint64Hash(uint64(x))
	case uint16:
		return getUint64Hash(uint64(x))
	case uint32:
		return getUint64Hash(uint64(x))
	case uint64:
		return getUint64Hash(x)
	case uintptr:
		return getUint64Hash(uint64(x))
	case float32:
		return getUint64Hash(uint64(math.Float32bits(x)))
	case float64:
		return getUint64Hash(math.Float64bits(x))
	}

	return siphash.Hash(sipHashKey1, sipHashKey2, []byte(fmt.Sprintf("%#v", v)))
}

func getUint64Hash(num uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], num)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}

// Digest accumulates the hashes of a sequence of values in order. Two
// sequences with equal elements in equal order produce the same Sum64.
type Digest struct {
	h hash.Hash64
	n uint64
}

func NewDigest() *Digest {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)
	return &Digest{h: siphash.New(key[:])}
}

func (d *Digest) Add(v interface{}) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], Hash(v))
	_, _ = d.h.Write(buf[:])
	d.n++
}

// Sum64 folds the element count in so that an empty sequence and a
// sequence of zero-hash values stay distinct.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64() ^ getUint64Hash(d.n)
}
