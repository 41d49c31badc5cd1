package hash

import "github.com/sparkidev/hash/internal/keccak"

// Shake128 returns outputLen bytes of SHAKE128 output for msg in a single
// call. This module only offers the single-shot form of SHAKE, per the
// non-goal excluding general extendable-output streaming.
func Shake128(msg []byte, outputLen int) []byte {
	d := keccak.NewShake128()
	d.Write(msg)
	out := make([]byte, outputLen)
	d.Squeeze(out)
	return out
}

// Shake256 returns outputLen bytes of SHAKE256 output for msg in a single
// call.
func Shake256(msg []byte, outputLen int) []byte {
	d := keccak.NewShake256()
	d.Write(msg)
	out := make([]byte, outputLen)
	d.Squeeze(out)
	return out
}
