// Package sha256engine implements the shared SHA-224/SHA-256 streaming
// state machine per FIPS 180-4: 64 rounds, a 64-byte block, 64-bit bit
// length, and two distinct initial chaining values (SHA-224 truncates to
// 28 bytes of output from an entirely different IV, not a truncation of
// SHA-256's chain).
package sha256engine

import "github.com/sparkidev/hash/internal/wordcodec"

const (
	// BlockSize is the size in bytes of an input block.
	BlockSize = 64
	// Size224 is the SHA-224 digest length in bytes.
	Size224 = 28
	// Size256 is the SHA-256 digest length in bytes.
	Size256 = 32
)

var initSHA256 = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var initSHA224 = [8]uint32{
	0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
	0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
}

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Engine holds the shared SHA-224/256 chaining state.
type Engine struct {
	h      [8]uint32
	buf    [BlockSize]byte
	offset int
	length uint64
}

// Init224 sets the SHA-224 initial chain.
func (e *Engine) Init224() { e.reset(initSHA224) }

// Init256 sets the SHA-256 initial chain.
func (e *Engine) Init256() { e.reset(initSHA256) }

func (e *Engine) reset(iv [8]uint32) {
	e.h = iv
	e.offset = 0
	e.length = 0
}

// Write absorbs message data. Never allocates, never fails.
func (e *Engine) Write(p []byte) (int, error) {
	n := len(p)
	e.length += uint64(n)

	if e.offset > 0 {
		free := BlockSize - e.offset
		if free > len(p) {
			free = len(p)
		}
		copy(e.buf[e.offset:], p[:free])
		e.offset += free
		p = p[free:]
		if e.offset == BlockSize {
			e.block(e.buf[:])
			e.offset = 0
		}
	}
	for len(p) >= BlockSize {
		e.block(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		copy(e.buf[:], p)
		e.offset = len(p)
	}
	return n, nil
}

func (e *Engine) pad() {
	var length [8]byte
	wordcodec.PutUint64BE(length[:], e.length<<3)
	e.Write([]byte{0x80})
	for e.offset != 56 {
		e.Write([]byte{0})
	}
	e.Write(length[:])
}

// Sum224 finalizes a copy of the state and returns the 28-byte digest
// appended to out.
func (e *Engine) Sum224(out []byte) []byte {
	cp := *e
	cp.pad()
	var digest [Size224]byte
	for i := 0; i < 7; i++ {
		wordcodec.PutUint32BE(digest[i*4:], cp.h[i])
	}
	return append(out, digest[:]...)
}

// Sum256 finalizes a copy of the state and returns the 32-byte digest
// appended to out.
func (e *Engine) Sum256(out []byte) []byte {
	cp := *e
	cp.pad()
	var digest [Size256]byte
	for i := 0; i < 8; i++ {
		wordcodec.PutUint32BE(digest[i*4:], cp.h[i])
	}
	return append(out, digest[:]...)
}

func (e *Engine) block(p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = wordcodec.Uint32BE(p[i*4:])
	}
	for i := 16; i < 64; i++ {
		v15 := w[i-15]
		s0 := (v15>>7 | v15<<25) ^ (v15>>18 | v15<<14) ^ (v15 >> 3)
		v2 := w[i-2]
		s1 := (v2>>17 | v2<<15) ^ (v2>>19 | v2<<13) ^ (v2 >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e2, f, g, h := e.h[0], e.h[1], e.h[2], e.h[3], e.h[4], e.h[5], e.h[6], e.h[7]

	for i := 0; i < 64; i++ {
		s1 := (e2>>6 | e2<<26) ^ (e2>>11 | e2<<21) ^ (e2>>25 | e2<<7)
		ch := (e2 & f) ^ (^e2 & g)
		t1 := h + s1 + ch + k[i] + w[i]
		s0 := (a>>2 | a<<30) ^ (a>>13 | a<<19) ^ (a>>22 | a<<10)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h, g, f, e2 = g, f, e2, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	e.h[0] += a
	e.h[1] += b
	e.h[2] += c
	e.h[3] += d
	e.h[4] += e2
	e.h[5] += f
	e.h[6] += g
	e.h[7] += h
}
