package sha512engine

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func digest512(msg []byte) []byte {
	var e Engine
	e.Init512()
	e.Write(msg)
	return e.Sum512(nil)
}

func digest384(msg []byte) []byte {
	var e Engine
	e.Init384()
	e.Write(msg)
	return e.Sum384(nil)
}

func TestSHA512EmptyVector(t *testing.T) {
	want, _ := hex.DecodeString("cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e")
	got := digest512(nil)
	if !bytes.Equal(got, want) {
		t.Errorf("SHA-512(\"\") = %x, want %x", got, want)
	}
}

// TestSHA512MillionAVector is the FIPS 180-4 long-message vector: a
// million repetitions of 'a' hashed in one call.
func TestSHA512MillionAVector(t *testing.T) {
	want, _ := hex.DecodeString("e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973ebde0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b")
	got := digest512(bytes.Repeat([]byte("a"), 1000000))
	if !bytes.Equal(got, want) {
		t.Errorf("SHA-512(10^6 'a') = %x, want %x", got, want)
	}
}

func TestSHA384EmptyVector(t *testing.T) {
	want, _ := hex.DecodeString("38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b")
	got := digest384(nil)
	if !bytes.Equal(got, want) {
		t.Errorf("SHA-384(\"\") = %x, want %x", got, want)
	}
}

func TestAllFourVariantsHaveDistinctIVs(t *testing.T) {
	var e1, e2, e3, e4 Engine
	e1.Init384()
	e2.Init512()
	e3.Init512_224()
	e4.Init512_256()
	ivs := [][8]uint64{e1.h, e2.h, e3.h, e4.h}
	for i := range ivs {
		for j := i + 1; j < len(ivs); j++ {
			if ivs[i] == ivs[j] {
				t.Errorf("variant %d and %d share an initial chain", i, j)
			}
		}
	}
}

func TestStreamingEquivalenceAcrossTwoBlockBoundary(t *testing.T) {
	msg := bytes.Repeat([]byte("x"), 300)
	want := digest512(msg)

	for _, split := range []int{0, 1, 127, 128, 129, 255, 256, 257, len(msg)} {
		var e Engine
		e.Init512()
		e.Write(msg[:split])
		e.Write(msg[split:])
		got := e.Sum512(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("split at %d: got %x, want %x", split, got, want)
		}
	}
}

func TestLengthCounterSplitsAcrossTwoLimbs(t *testing.T) {
	// A message long enough to force addLen's carry into the high limb
	// exercises the 128-bit counter without actually allocating gigabytes.
	var e Engine
	e.Init512()
	e.lenLo = ^uint64(0) - 7
	e.addLen(16)
	if e.lenHi != 1 {
		t.Errorf("lenHi = %d, want 1 after addLen carries", e.lenHi)
	}
}
