package keccak

import "github.com/sparkidev/hash/internal/wordcodec"

// maxRate is the full Keccak state width in bytes (25 lanes of 8 bytes),
// an upper bound on the largest rate any variant here uses (SHAKE128, 168).
const maxRate = 200

// Sponge is the Keccak sponge construction: a fixed 1600-bit state absorbed
// and squeezed in rate-sized little-endian lanes, with capacity held fixed.
// The permutation only ever sees full lanes; partial input is buffered here.
type Sponge struct {
	a         [laneCount]uint64
	rate      int
	dsbyte    byte
	buf       [maxRate]byte
	pos       int
	squeezing bool
}

// New returns a fresh sponge for the given rate (in bytes) and domain
// separation byte. rate must be a multiple of 8 and no larger than maxRate.
func New(rate int, dsbyte byte) *Sponge {
	return &Sponge{rate: rate, dsbyte: dsbyte}
}

// Clone returns an independent copy of s, so a digest can be finalized
// without disturbing the original's ability to keep absorbing.
func (s *Sponge) Clone() *Sponge {
	cp := *s
	return &cp
}

func (s *Sponge) absorbBlock(p []byte) {
	for i := 0; i*8 < s.rate; i++ {
		s.a[i] ^= wordcodec.Uint64LE(p[i*8:])
	}
	permute(&s.a)
}

// Absorb mixes p into the sponge. The slice always advances by the number
// of bytes actually consumed in each step, never by a fixed stride assumed
// ahead of time.
func (s *Sponge) Absorb(p []byte) {
	if s.pos > 0 {
		n := copy(s.buf[s.pos:s.rate], p)
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			s.absorbBlock(s.buf[:s.rate])
			s.pos = 0
		}
	}
	for len(p) >= s.rate {
		s.absorbBlock(p[:s.rate])
		p = p[s.rate:]
	}
	if len(p) > 0 {
		n := copy(s.buf[:], p)
		s.pos = n
	}
}

// pad applies multi-rate padding (the domain separation byte at the first
// free position, 0x80 at the last byte of the rate) and permutes once more,
// switching the sponge from absorbing to squeezing.
func (s *Sponge) pad() {
	var block [maxRate]byte
	copy(block[:], s.buf[:s.pos])
	block[s.pos] ^= s.dsbyte
	block[s.rate-1] ^= 0x80
	s.absorbBlock(block[:s.rate])
	s.pos = 0
	s.squeezing = true
}

// Squeeze fills out with output bytes, padding and permuting as needed. It
// may be called repeatedly to draw an arbitrary-length XOF output.
func (s *Sponge) Squeeze(out []byte) {
	if !s.squeezing {
		s.pad()
	}
	for len(out) > 0 {
		if s.pos == s.rate {
			permute(&s.a)
			s.pos = 0
		}
		var block [maxRate]byte
		for i := 0; i*8 < s.rate; i++ {
			wordcodec.PutUint64LE(block[i*8:], s.a[i])
		}
		n := copy(out, block[s.pos:s.rate])
		out = out[n:]
		s.pos += n
	}
}
