package keccak

// Rates, in bytes, for each fixed-output SHA-3 variant and the two SHAKE
// XOFs. rate = 200 - 2*securityBytes, per FIPS 202.
const (
	RateSHA3_224 = 144
	RateSHA3_256 = 136
	RateSHA3_384 = 104
	RateSHA3_512 = 72
	RateShake128 = 168
	RateShake256 = 136
)

// Domain separation bytes: 0x06 for the fixed-output SHA-3 functions,
// 0x1f for SHAKE.
const (
	DSByteSHA3  = 0x06
	DSByteShake = 0x1f
)

// Digest is a Keccak-based hash engine: a sponge plus, for the fixed-output
// variants, a declared output length. XOF variants (size 0) squeeze however
// many bytes the caller asks for.
type Digest struct {
	sponge *Sponge
	size   int
	rate   int
	dsbyte byte
}

func newDigest(rate int, dsbyte byte, size int) *Digest {
	d := &Digest{rate: rate, dsbyte: dsbyte, size: size}
	d.sponge = New(rate, dsbyte)
	return d
}

// NewSHA3_224 returns a Digest producing a 28-byte SHA3-224 digest.
func NewSHA3_224() *Digest { return newDigest(RateSHA3_224, DSByteSHA3, 28) }

// NewSHA3_256 returns a Digest producing a 32-byte SHA3-256 digest.
func NewSHA3_256() *Digest { return newDigest(RateSHA3_256, DSByteSHA3, 32) }

// NewSHA3_384 returns a Digest producing a 48-byte SHA3-384 digest.
func NewSHA3_384() *Digest { return newDigest(RateSHA3_384, DSByteSHA3, 48) }

// NewSHA3_512 returns a Digest producing a 64-byte SHA3-512 digest.
func NewSHA3_512() *Digest { return newDigest(RateSHA3_512, DSByteSHA3, 64) }

// NewShake128 returns a Digest for the SHAKE128 extendable-output function.
// Its declared size is 0, so Sum appends no bytes; callers choose the
// output length by the buffer they pass to Squeeze.
func NewShake128() *Digest { return newDigest(RateShake128, DSByteShake, 0) }

// NewShake256 returns a Digest for the SHAKE256 extendable-output function.
func NewShake256() *Digest { return newDigest(RateShake256, DSByteShake, 0) }

// Size returns the fixed digest length in bytes, or 0 for a XOF variant.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the sponge rate in bytes.
func (d *Digest) BlockSize() int { return d.rate }

// Reset returns the digest to its just-constructed state.
func (d *Digest) Reset() { d.sponge = New(d.rate, d.dsbyte) }

// Clone returns an independent copy of the digest's running state.
func (d *Digest) Clone() *Digest {
	cp := *d
	cp.sponge = d.sponge.Clone()
	return &cp
}

// Write absorbs message data. Never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.sponge.Absorb(p)
	return len(p), nil
}

// Sum finalizes a clone of the sponge and appends the fixed-length digest
// to out. The receiver is left able to absorb further input, matching the
// other engines' non-destructive Sum semantics.
func (d *Digest) Sum(out []byte) []byte {
	digest := make([]byte, d.size)
	d.sponge.Clone().Squeeze(digest)
	return append(out, digest...)
}

// Squeeze draws len(out) bytes of extendable output from a clone of the
// sponge. Used for SHAKE128/256, whose output length is chosen by the
// caller rather than fixed by the algorithm.
func (d *Digest) Squeeze(out []byte) {
	d.sponge.Clone().Squeeze(out)
}
