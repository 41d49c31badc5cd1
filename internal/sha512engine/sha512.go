// Package sha512engine implements the streaming state machine shared by
// SHA-384, SHA-512, SHA-512/224 and SHA-512/256 per FIPS 180-4: 80 rounds,
// a 128-byte block, and a 128-bit byte length counter split into two
// 64-bit limbs. The truncated variants use their own FIPS 180-4 initial
// chain, never a post-hoc truncation of SHA-512's.
package sha512engine

import "github.com/sparkidev/hash/internal/wordcodec"

const (
	// BlockSize is the size in bytes of an input block.
	BlockSize = 128
	// Size384 is the SHA-384 digest length in bytes.
	Size384 = 48
	// Size512 is the SHA-512 digest length in bytes.
	Size512 = 64
	// Size512_224 is the SHA-512/224 digest length in bytes.
	Size512_224 = 28
	// Size512_256 is the SHA-512/256 digest length in bytes.
	Size512_256 = 32
)

var initSHA512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var initSHA384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var initSHA512_224 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var initSHA512_256 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

var k = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// Engine holds the shared SHA-384/512/512-224/512-256 chaining state and a
// 128-bit byte length counter split as two 64-bit limbs.
type Engine struct {
	h          [8]uint64
	buf        [BlockSize]byte
	offset     int
	lenLo, lenHi uint64
}

// Init384 sets the SHA-384 initial chain.
func (e *Engine) Init384() { e.reset(initSHA384) }

// Init512 sets the SHA-512 initial chain.
func (e *Engine) Init512() { e.reset(initSHA512) }

// Init512_224 sets the SHA-512/224 initial chain.
func (e *Engine) Init512_224() { e.reset(initSHA512_224) }

// Init512_256 sets the SHA-512/256 initial chain.
func (e *Engine) Init512_256() { e.reset(initSHA512_256) }

func (e *Engine) reset(iv [8]uint64) {
	e.h = iv
	e.offset = 0
	e.lenLo, e.lenHi = 0, 0
}

func (e *Engine) addLen(n uint64) {
	lo := e.lenLo + n
	if lo < e.lenLo {
		e.lenHi++
	}
	e.lenLo = lo
}

// Write absorbs message data. Never allocates, never fails.
func (e *Engine) Write(p []byte) (int, error) {
	n := len(p)
	e.addLen(uint64(n))

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
	// Bits = bytes << 3, across two 64-bit limbs: the high limb absorbs
	// the top 3 bits of the low limb's byte count.
	hi := e.lenHi<<3 | e.lenLo>>61
	lo := e.lenLo << 3

	var length [16]byte
	wordcodec.PutUint64BE(length[0:8], hi)
	wordcodec.PutUint64BE(length[8:16], lo)

	e.Write([]byte{0x80})
	for e.offset != 112 {
		e.Write([]byte{0})
	}
	e.Write(length[:])
}

func (e *Engine) sum(out []byte, n int) []byte {
	cp := *e
	cp.pad()
	var digest [Size512]byte
	for i := 0; i < 8; i++ {
		wordcodec.PutUint64BE(digest[i*8:], cp.h[i])
	}
	return append(out, digest[:n]...)
}

// Sum384 finalizes a copy of the state and returns the 48-byte digest.
func (e *Engine) Sum384(out []byte) []byte { return e.sum(out, Size384) }

// Sum512 finalizes a copy of the state and returns the 64-byte digest.
func (e *Engine) Sum512(out []byte) []byte { return e.sum(out, Size512) }

// Sum512_224 finalizes a copy of the state and returns the 28-byte digest.
func (e *Engine) Sum512_224(out []byte) []byte { return e.sum(out, Size512_224) }

// Sum512_256 finalizes a copy of the state and returns the 32-byte digest.
func (e *Engine) Sum512_256(out []byte) []byte { return e.sum(out, Size512_256) }

func (e *Engine) block(p []byte) {
	var w [80]uint64
	for i := 0; i < 16; i++ {
		w[i] = wordcodec.Uint64BE(p[i*8:])
	}
	for i := 16; i < 80; i++ {
		v15 := w[i-15]
		s0 := (v15>>1 | v15<<63) ^ (v15>>8 | v15<<56) ^ (v15 >> 7)
		v2 := w[i-2]
		s1 := (v2>>19 | v2<<45) ^ (v2>>61 | v2<<3) ^ (v2 >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e2, f, g, h := e.h[0], e.h[1], e.h[2], e.h[3], e.h[4], e.h[5], e.h[6], e.h[7]

	for i := 0; i < 80; i++ {
		s1 := (e2>>14 | e2<<50) ^ (e2>>18 | e2<<46) ^ (e2>>41 | e2<<23)
		ch := (e2 & f) ^ (^e2 & g)
		t1 := h + s1 + ch + k[i] + w[i]
		s0 := (a>>28 | a<<36) ^ (a>>34 | a<<30) ^ (a>>39 | a<<25)
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
