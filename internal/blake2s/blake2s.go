// Package blake2s implements BLAKE2s per RFC 7693: the 32-bit sibling of
// BLAKE2b, 64-byte blocks, 10 rounds of the G function, little-endian
// output from 1 to 32 bytes. Grounded on this module's BLAKE2b engine and
// its own from-scratch BLAKE2s source, restructured onto fixed-size arrays
// for the same Digest shape the rest of this module's engines share.
package blake2s

import "github.com/sparkidev/hash/internal/wordcodec"

import "github.com/sparkidev/hash/hasherr"

const (
	// KeyLength is the maximum key length in bytes.
	KeyLength = 32
	// MaxOutput is the maximum digest length in bytes.
	MaxOutput = 32
	// SaltLength is the salt field length in bytes.
	SaltLength = 8
	// SeparatorLength is the personalization field length in bytes.
	SeparatorLength = 8
	// RoundCount is the number of G-function rounds BLAKE2s runs.
	RoundCount = 10
	// BlockSize is the size in bytes of an input block.
	BlockSize = 64

	iv0 uint32 = 0x6a09e667
	iv1 uint32 = 0xbb67ae85
	iv2 uint32 = 0x3c6ef372
	iv3 uint32 = 0xa54ff53a
	iv4 uint32 = 0x510e527f
	iv5 uint32 = 0x9b05688c
	iv6 uint32 = 0x1f83d9ab
	iv7 uint32 = 0x5be0cd19
)

// sigma is the message-word permutation schedule, one row per round.
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

// parameterBlock is the 32-byte block XOR'd with the IV at initialization.
// Only sequential mode is supported, so fanout and depth are always 1.
type parameterBlock struct {
	digestSize      byte
	keyLength       byte
	salt            [SaltLength]byte
	personalization [SeparatorLength]byte
}

func (p *parameterBlock) marshal() []byte {
	buf := make([]byte, 32)
	buf[0] = p.digestSize
	buf[1] = p.keyLength
	buf[2] = 1 // fanout
	buf[3] = 1 // depth
	copy(buf[16:], p.salt[:])
	copy(buf[24:], p.personalization[:])
	return buf
}

// Digest is the running BLAKE2s state. The zero value is not usable; build
// one with New.
type Digest struct {
	h      [8]uint32
	t0, t1 uint32
	buf    [BlockSize]byte
	offset int
	size   int

	keyLen          byte
	keyBlock        []byte
	salt            [SaltLength]byte
	personalization [SeparatorLength]byte
}

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
// opts. A key longer than KeyLength is rejected with hasherr.ErrBadLen
// rather than silently truncated or ignored.
func New(outputBytes int, opts ...Option) (*Digest, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if outputBytes <= 0 || outputBytes > MaxOutput {
		return nil, hasherr.New("blake2s.New", hasherr.CodeBadLen)
	}
	if len(o.key) > KeyLength {
		return nil, hasherr.New("blake2s.New", hasherr.CodeBadLen)
	}
	if len(o.salt) > SaltLength {
		return nil, hasherr.New("blake2s.New", hasherr.CodeBadLen)
	}
	if len(o.personalization) > SeparatorLength {
		return nil, hasherr.New("blake2s.New", hasherr.CodeBadLen)
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

func (d *Digest) reset() {
	p := parameterBlock{
		digestSize:      byte(d.size),
		keyLength:       d.keyLen,
		salt:            d.salt,
		personalization: d.personalization,
	}
	params := p.marshal()

	d.h[0] = iv0 ^ wordcodec.Uint32LE(params[0:4])
	d.h[1] = iv1 ^ wordcodec.Uint32LE(params[4:8])
	d.h[2] = iv2 ^ wordcodec.Uint32LE(params[8:12])
	d.h[3] = iv3 ^ wordcodec.Uint32LE(params[12:16])
	d.h[4] = iv4 ^ wordcodec.Uint32LE(params[16:20])
	d.h[5] = iv5 ^ wordcodec.Uint32LE(params[20:24])
	d.h[6] = iv6 ^ wordcodec.Uint32LE(params[24:28])
	d.h[7] = iv7 ^ wordcodec.Uint32LE(params[28:32])
	d.t0, d.t1 = 0, 0
	d.offset = 0

	if d.keyBlock != nil {
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

// Write absorbs message data. Never allocates, never fails. An exactly-full
// block is held back from compression until either more data arrives or
// Sum finalizes it, since compression needs to know if the block is last.
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
	cp.t0 += uint32(d.offset)
	if cp.t0 < uint32(d.offset) {
		cp.t1++
	}
	cp.compress(true)

	var digest [MaxOutput]byte
	for i := 0; i < 8; i++ {
		wordcodec.PutUint32LE(digest[i*4:], cp.h[i])
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

	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = wordcodec.Uint32LE(d.buf[i*4:])
	}

	for round := 0; round < RoundCount; round++ {
		s := &sigma[round]
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

// g is the BLAKE2s mixing function, RFC 7693 section 3.1.
func g(a, b, c, d, x, y uint32) (uint32, uint32, uint32, uint32) {
	a += b + x
	d ^= a
	d = d>>16 | d<<16
	c += d
	b ^= c
	b = b>>12 | b<<20
	a += b + y
	d ^= a
	d = d>>8 | d<<24
	c += d
	b ^= c
	b = b>>7 | b<<25
	return a, b, c, d
}
