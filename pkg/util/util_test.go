package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var p *int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))

	a := 1
	assert.False(t, IsNil(&a))
	assert.False(t, IsNil(a))
}

func TestHash1(t *testing.T) {
	assert.Equal(t, Hash(1), Hash(1))
	assert.Equal(t, Hash("a"), Hash("a"))
	assert.Equal(t, Hash("a"), Hash([]byte("a")))
	assert.NotEqual(t, Hash(1), Hash(2))
	assert.NotEqual(t, Hash("a"), Hash("b"))
}

func TestHashFallback(t *testing.T) {
	type pair struct{ a, b int }
	assert.Equal(t, Hash(pair{1, 2}), Hash(pair{1, 2}))
	assert.NotEqual(t, Hash(pair{1, 2}), Hash(pair{2, 1}))
}

func TestDigest1(t *testing.T) {
	d1, d2 := NewDigest(), NewDigest()
	for _, v := range []int{1, 2, 3} {
		d1.Add(v)
		d2.Add(v)
	}
	assert.Equal(t, d1.Sum64(), d2.Sum64())

	d3 := NewDigest()
	for _, v := range []int{3, 2, 1} {
		d3.Add(v)
	}
	assert.NotEqual(t, d1.Sum64(), d3.Sum64())
}

func TestDigestEmpty(t *testing.T) {
	empty := NewDigest()
	zero := NewDigest()
	zero.Add(0)
	assert.NotEqual(t, empty.Sum64(), zero.Sum64())
	assert.Equal(t, empty.Sum64(), NewDigest().Sum64())
}
