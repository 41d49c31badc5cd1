// Package keccak implements the Keccak-f[1600] permutation and the sponge
// construction built on top of it, per FIPS 202. The permutation itself is
// not present anywhere in the example pack this package was grounded on
// (coruus-go-sha3/sha3/sha3.go references a keccakf.go that never shipped
// with the retrieved copy); it is written here directly from the published
// round-constant and rotation-offset tables, in the same flat [25]uint64
// lane layout and loop-per-step shape the sponge wrapper in that package
// assumes.
package keccak

const laneCount = 25

// rhoOffsets holds the FIPS 202 rotation amount for lane (x, y), indexed
// rhoOffsets[x][y].
var rhoOffsets = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// roundConstants holds the 24 round constants xored into lane (0,0).
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

func rotl64(x uint64, n uint) uint64 {
	if n == 0 {
		return x
	}
	return x<<n | x>>(64-n)
}

// permute applies the 24-round Keccak-f[1600] permutation to a, in place.
// a is indexed a[x+5*y] per FIPS 202's (x, y) lane coordinates.
func permute(a *[laneCount]uint64) {
	var b [laneCount]uint64
	for round := 0; round < 24; round++ {
		// theta
		var c, d [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = rotl64(a[x+5*y], rhoOffsets[x][y])
			}
		}

		// pi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[x+5*y] = a[((x+3*y)%5)+5*x]
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
