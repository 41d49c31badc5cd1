// Package blake2b implements BLAKE2b per RFC 7693: a keyed sponge-free
// compression function over 128-byte blocks, 12 rounds of the G function,
// little-endian output from 1 to 64 bytes. Grounded on the from-scratch
// BLAKE2b engine this module's ambient stack is built around, generalized
// to the shared Digest/state-machine shape the rest of this module's
// engines use and to support salt and personalization.
package blake2b

import "github.com/sparkidev/hash/internal/wordcodec"

import "github.com/sparkidev/hash/hasherr"

const (
	// KeyLength is the maximum key length in bytes.
	KeyLength = 64
	// MaxOutput is the maximum digest length in bytes.
	MaxOutput = 64
	// SaltLength is the salt field length in bytes.
	SaltLength = 16
	// SeparatorLength is the personalization field length in bytes.
	SeparatorLength = 16
	// RoundCount is the number of G-function rounds BLAKE2b runs.
	RoundCount = 12
	// BlockSize is the size in bytes of an input block.
	BlockSize = 128

	iv0 uint64 = 0x6a09e667f3bcc908
	iv1 uint64 = 0xbb67ae8584caa73b
	iv2 uint64 = 0x3c6ef372fe94f82b
	iv3 uint64 = 0xa54ff53a5f1d36f1
	iv4 uint64 = 0x510e527fade682d1
	iv5 uint64 = 0x9b05688c2b3e6c1f
	iv6 uint64 = 0x1f83d9abfb41bd6b
	iv7 uint64 = 0x5be0cd19137e2179
)

// parameterBlock is the 64-byte block XOR'd with the IV at initialization.
// Only sequential mode is supported, so fanout and depth are always 1.
type parameterBlock struct {
	digestSize      byte
	keyLength       byte
	salt            [SaltLength]byte
	personalization [SeparatorLength]byte
}

func (p *parameterBlock) marshal() []byte {
	buf := make([]byte, 64)
	buf[0] = p.digestSize
	buf[1] = p.keyLength
	buf[2] = 1 // fanout
	buf[3] = 1 // depth
	copy(buf[32:], p.salt[:])
	copy(buf[48:], p.personalization[:])
	return buf
}

// Digest is the running BLAKE2b state. The zero value is not usable; build
// one with New.
type Digest struct {
	h      [8]uint64
	t0, t1 uint64
	buf    [BlockSize]byte
	offset int
	size   int

	// Retained so Reset can restore a keyed hash without the caller
	// supplying the key again.
	keyLen          byte
	keyBlock        []byte
	salt            [SaltLength]byte
	personalization [SeparatorLength]byte
}

// options collects the New constructor's functional options.
type options struct {
	key             []byte
	salt            []byte
	personalization []byte
}

// Option configures a Digest at construction time.
type Option func(*options)

// WithKey enables keyed mode (BLAKE2 as a MAC). key must be at most
// KeyLength bytes.
func WithKey(key []byte) Option {
	return func(o *options) { o.key = key }
}

// WithSalt sets the salt field. salt must be at most SaltLength bytes; a
// shorter salt is right-padded with zeros.
func WithSalt(salt []byte) Option {
	return func(o *options) { o.salt = salt }
}

// WithPersonalization sets the personalization field. personalization must
// be at most SeparatorLength bytes; a shorter value is right-padded with
// zeros.
func WithPersonalization(personalization []byte) Option {
	return func(o *options) { o.personalization = personalization }
}

// New constructs a Digest producing outputBytes of output, configured by
// opts.
func New(outputBytes int, opts ...Option) (*Digest, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if outputBytes <= 0 || outputBytes > MaxOutput {
		return nil, hasherr.New("blake2b.New", hasherr.CodeBadLen)
	}
	if len(o.key) > KeyLength {
		return nil, hasherr.New("blake2b.New", hasherr.CodeBadLen)
	}
	if len(o.salt) > SaltLength {
		return nil, hasherr.New("blake2b.New", hasherr.CodeBadLen)
	}
	if len(o.personalization) > SeparatorLength {
		return nil, hasherr.New("blake2b.New", hasherr.CodeBadLen)
	}

	d := &Digest{size: outputBytes, keyLen: byte(len(o.key))}
	copy(d.salt[:], o.salt)
	copy(d.personalization[:], o.personalization)
	if len(o.key) > 0 {
		d.keyBlock = make([]byte, BlockSize)
		copy(d.keyBlock, o.key)
	}

	d.reset()
	return d, nil
}

// reset restores h/t/buf/offset from the retained parameters, including
// re-absorbing the key block in keyed mode. Shared by New and Reset.
func (d *Digest) reset() {
	p := parameterBlock{
		digestSize:      byte(d.size),
		keyLength:       d.keyLen,
		salt:            d.salt,
		personalization: d.personalization,
	}
	params := p.marshal()

	d.h[0] = iv0 ^ wordcodec.Uint64LE(params[0:8])
	d.h[1] = iv1 ^ wordcodec.Uint64LE(params[8:16])
	d.h[2] = iv2 ^ wordcodec.Uint64LE(params[16:24])
	d.h[3] = iv3 ^ wordcodec.Uint64LE(params[24:32])
	d.h[4] = iv4 ^ wordcodec.Uint64LE(params[32:40])
	d.h[5] = iv5 ^ wordcodec.Uint64LE(params[40:48])
	d.h[6] = iv6 ^ wordcodec.Uint64LE(params[48:56])
	d.h[7] = iv7 ^ wordcodec.Uint64LE(params[56:64])
	d.t0, d.t1 = 0, 0
	d.offset = 0

	if d.keyBlock != nil {
		// The key occupies the whole first block. Compression is deferred
		// until more data arrives or Sum finalizes, same as any other
		// exactly-full block.
		copy(d.buf[:], d.keyBlock)
		d.offset = BlockSize
	}
}

// Reset returns the digest to the state it had right after New, including
// re-keying if it was constructed with WithKey.
func (d *Digest) Reset() { d.reset() }

// Clone returns an independent copy of the digest's running state.
func (d *Digest) Clone() *Digest {
	cp := *d
	return &cp
}

// Size returns the digest output length in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the size in bytes of an input block.
func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs message data. Never allocates, never fails. A block that
// exactly fills the buffer is held rather than compressed immediately: the
// compression function needs to know whether a block is the last one, and
// an exactly-full block might still be followed by more input.
func (d *Digest) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		free := BlockSize - d.offset
		if len(p) <= free {
			copy(d.buf[d.offset:], p)
			d.offset += len(p)
			return n, nil
		}
		copy(d.buf[d.offset:], p[:free])
		d.t0 += BlockSize
		if d.t0 < BlockSize {
			d.t1++
		}
		d.compress(false)
		p = p[free:]
		d.offset = 0
	}
	return n, nil
}

// Sum finalizes a copy of the digest and appends the result to out,
// leaving the receiver able to absorb more input.
func (d *Digest) Sum(out []byte) []byte {
	cp := *d
	for i := cp.offset; i < BlockSize; i++ {
		cp.buf[i] = 0
	}
	cp.t0 += uint64(d.offset)
	if cp.t0 < uint64(d.offset) {
		cp.t1++
	}
	cp.compress(true)

	var digest [MaxOutput]byte
	for i := 0; i < 8; i++ {
		wordcodec.PutUint64LE(digest[i*8:], cp.h[i])
	}
	return append(out, digest[:d.size]...)
}

func (d *Digest) compress(last bool) {
	v0, v1, v2, v3 := d.h[0], d.h[1], d.h[2], d.h[3]
	v4, v5, v6, v7 := d.h[4], d.h[5], d.h[6], d.h[7]
	v8, v9, v10, v11 := iv0, iv1, iv2, iv3
	v12 := iv4 ^ d.t0
	v13 := iv5 ^ d.t1
	v14 := iv6
	v15 := iv7
	if last {
		v14 = ^v14
	}

	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = wordcodec.Uint64LE(d.buf[i*8:])
	}

	for round := 0; round < RoundCount; round++ {
		s := &sigma[round%10]
		v0, v4, v8, v12 = g(v0, v4, v8, v12, m[s[0]], m[s[1]])
		v1, v5, v9, v13 = g(v1, v5, v9, v13, m[s[2]], m[s[3]])
		v2, v6, v10, v14 = g(v2, v6, v10, v14, m[s[4]], m[s[5]])
		v3, v7, v11, v15 = g(v3, v7, v11, v15, m[s[6]], m[s[7]])

		v0, v5, v10, v15 = g(v0, v5, v10, v15, m[s[8]], m[s[9]])
		v1, v6, v11, v12 = g(v1, v6, v11, v12, m[s[10]], m[s[11]])
		v2, v7, v8, v13 = g(v2, v7, v8, v13, m[s[12]], m[s[13]])
		v3, v4, v9, v14 = g(v3, v4, v9, v14, m[s[14]], m[s[15]])
	}

	d.h[0] ^= v0 ^ v8
	d.h[1] ^= v1 ^ v9
	d.h[2] ^= v2 ^ v10
	d.h[3] ^= v3 ^ v11
	d.h[4] ^= v4 ^ v12
	d.h[5] ^= v5 ^ v13
	d.h[6] ^= v6 ^ v14
	d.h[7] ^= v7 ^ v15
}

// g is the BLAKE2b mixing function, RFC 7693 section 3.1.
func g(a, b, c, d, x, y uint64) (uint64, uint64, uint64, uint64) {
	a += b + x
	d = d ^ a
	d = d>>32 | d<<32
	c += d
	b = b ^ c
	b = b>>24 | b<<40
	a += b + y
	d = d ^ a
	d = d>>16 | d<<48
	c += d
	b = b ^ c
	b = b>>63 | b<<1
	return a, b, c, d
}

// sigma is the message-word permutation schedule. BLAKE2b runs 12 rounds
// over a 10-row table, so rounds 10 and 11 repeat rows 0 and 1.
var sigma = [10][16]byte{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}
