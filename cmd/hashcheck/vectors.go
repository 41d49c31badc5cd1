package main

import (
	"strings"

	hashpkg "github.com/sparkidev/hash"
)

// katVector is one literal known-answer vector this program checks directly,
// independent of self-consistency. These are the exact literals named in
// spec.md's end-to-end scenarios; every other algorithm is exercised only
// through the self-consistency checks in verify.go, since this program
// commits to checking only vectors it can state with certainty.
type katVector struct {
	id       hashpkg.AlgorithmID
	input    string
	expected string
}

var katVectors = []katVector{
	{hashpkg.SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{hashpkg.SHA512, "", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	{hashpkg.SHA3_256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{hashpkg.BLAKE2B_512, "", "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
}

// hmacKATKey and hmacKATData are the key (20 bytes of 0x0b) and data of
// RFC 4231's first HMAC-SHA-256 test case.
var (
	hmacKATKey      = []byte{0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b}
	hmacKATData     = []byte("Hi There")
	hmacKATExpected = "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"
)

// millionA is the FIPS 180-4 long-message stress input: one million
// repetitions of 'a'. Built at startup rather than carried as a literal.
var millionA = strings.Repeat("a", 1000000)

// longKatVectors holds KAT entries too large to spell out as a struct
// literal. Checked the same way as katVectors, just kept separate so the
// short vectors above stay readable.
var longKatVectors = []katVector{
	{hashpkg.SHA256, millionA, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
	{hashpkg.SHA512, millionA, "e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973ebde0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b"},
}
