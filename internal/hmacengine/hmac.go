// Package hmacengine implements HMAC, RFC 2104, over any block-based hash
// in this module. The original C library this module is modeled on builds
// an HMAC context as a two-element array and reaches into its second
// element with pointer arithmetic (&ctx[1]) to hold the outer state; this
// package instead keeps the inner and outer states as two ordinary named
// fields, which is all the pointer arithmetic was ever standing in for.
package hmacengine

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// Hash is the subset of hash.Hash behavior an engine in this module
// exposes, plus Clone so HMAC can take an outer-state snapshot at Sum time
// without disturbing a running Engine.
type Hash interface {
	Reset()
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Size() int
	BlockSize() int
	Clone() Hash
}

// Engine is a running HMAC computation: an inner state primed with the
// key XORed with the ipad constant, and an outer state primed with the key
// XORed with the opad constant.
type Engine struct {
	inner, outer Hash
	ipad, opad   []byte
}

// New builds an HMAC engine over a fresh instance from newHash, keyed with
// key. A key longer than the hash's block size is itself hashed down to
// the hash's output size first, per RFC 2104 section 2.
func New(newHash func() Hash, key []byte) *Engine {
	h := newHash()
	blockSize := h.BlockSize()

	k := make([]byte, blockSize)
	if len(key) > blockSize {
		h.Write(key)
		copy(k, h.Sum(nil))
	} else {
		copy(k, key)
	}

	e := &Engine{
		ipad: make([]byte, blockSize),
		opad: make([]byte, blockSize),
	}
	for i, b := range k {
		e.ipad[i] = b ^ ipadByte
		e.opad[i] = b ^ opadByte
	}

	e.inner = newHash()
	e.inner.Write(e.ipad)
	e.outer = newHash()
	e.outer.Write(e.opad)
	return e
}

// Write absorbs message data into the inner state.
func (e *Engine) Write(p []byte) (int, error) { return e.inner.Write(p) }

// Sum finalizes the inner state, feeds its digest into a snapshot of the
// outer state, and returns the outer digest appended to out. The engine is
// left able to absorb more input.
func (e *Engine) Sum(out []byte) []byte {
	innerDigest := e.inner.Sum(nil)
	outer := e.outer.Clone()
	outer.Write(innerDigest)
	return append(out, outer.Sum(nil)...)
}

// Reset returns the engine to its freshly-keyed state.
func (e *Engine) Reset() {
	e.inner.Reset()
	e.inner.Write(e.ipad)
	e.outer.Reset()
	e.outer.Write(e.opad)
}

// Size returns the MAC length in bytes.
func (e *Engine) Size() int { return e.outer.Size() }

// BlockSize returns the underlying hash's block size.
func (e *Engine) BlockSize() int { return e.outer.BlockSize() }

// Clone returns an independent copy of the engine's running state.
func (e *Engine) Clone() Hash {
	return &Engine{
		inner: e.inner.Clone(),
		outer: e.outer.Clone(),
		ipad:  e.ipad,
		opad:  e.opad,
	}
}
