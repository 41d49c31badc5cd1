package hash

import "golang.org/x/sys/cpu"

// AlgorithmID identifies a hash variant. The numeric values are part of the
// external ABI and must never be renumbered.
type AlgorithmID int

// Hash algorithm identifiers, stable across versions.
const (
	SHA224 AlgorithmID = iota + 1
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2B_224
	BLAKE2B_256
	BLAKE2B_384
	BLAKE2B_512
	BLAKE2S_224
	BLAKE2S_256
)

// MACID identifies a MAC variant. HMACSHA1 is 0; the rest of the space
// mirrors AlgorithmID.
type MACID int

// MAC algorithm identifiers, stable across versions.
const (
	HMACSHA1 MACID = iota
	HMACSHA224
	HMACSHA256
	HMACSHA384
	HMACSHA512
	HMACSHA512_224
	HMACSHA512_256
	MACSHA3_224
	MACSHA3_256
	MACSHA3_384
	MACSHA3_512
	MACBLAKE2B_224
	MACBLAKE2B_256
	MACBLAKE2B_384
	MACBLAKE2B_512
	MACBLAKE2S_224
	MACBLAKE2S_256
)

// ImplementationFlags restricts which registry entries may satisfy a
// lookup.
type ImplementationFlags int

// FlagInternal marks a method as not backed by an external library. It is
// the only flag every entry in this module carries, since this module
// never delegates to an external backend.
const FlagInternal ImplementationFlags = 0x01

// hashMethod is one registry row for a hash algorithm: name, flags, the
// declared output length, and a constructor for a fresh engine. The first
// row whose id matches and whose flags cover the caller's mask wins;
// ordering IS the preference policy.
type hashMethod struct {
	name      string
	flags     ImplementationFlags
	id        AlgorithmID
	outputLen int
	newEngine func() engine
}

var hashMethods []hashMethod

func init() {
	hashMethods = []hashMethod{
		{name: "SHA-224", flags: FlagInternal, id: SHA224, outputLen: 28, newEngine: func() engine { return newSHA256Engine(true) }},
		{name: "SHA-256", flags: FlagInternal, id: SHA256, outputLen: 32, newEngine: func() engine { return newSHA256Engine(false) }},
		{name: "SHA-384", flags: FlagInternal, id: SHA384, outputLen: 48, newEngine: func() engine { return newSHA512Engine(variantSHA384) }},
		{name: "SHA-512", flags: FlagInternal, id: SHA512, outputLen: 64, newEngine: func() engine { return newSHA512Engine(variantSHA512) }},
		{name: "SHA-512/224", flags: FlagInternal, id: SHA512_224, outputLen: 28, newEngine: func() engine { return newSHA512Engine(variantSHA512_224) }},
		{name: "SHA-512/256", flags: FlagInternal, id: SHA512_256, outputLen: 32, newEngine: func() engine { return newSHA512Engine(variantSHA512_256) }},
		{name: "SHA3-224", flags: FlagInternal, id: SHA3_224, outputLen: 28, newEngine: func() engine { return newSHA3Engine(sha3VariantFactories[SHA3_224]) }},
		{name: "SHA3-256", flags: FlagInternal, id: SHA3_256, outputLen: 32, newEngine: func() engine { return newSHA3Engine(sha3VariantFactories[SHA3_256]) }},
		{name: "SHA3-384", flags: FlagInternal, id: SHA3_384, outputLen: 48, newEngine: func() engine { return newSHA3Engine(sha3VariantFactories[SHA3_384]) }},
		{name: "SHA3-512", flags: FlagInternal, id: SHA3_512, outputLen: 64, newEngine: func() engine { return newSHA3Engine(sha3VariantFactories[SHA3_512]) }},
		{name: "BLAKE2b-224", flags: FlagInternal, id: BLAKE2B_224, outputLen: 28, newEngine: func() engine { return newBLAKE2bEngine(28) }},
		{name: "BLAKE2b-256", flags: FlagInternal, id: BLAKE2B_256, outputLen: 32, newEngine: func() engine { return newBLAKE2bEngine(32) }},
		{name: "BLAKE2b-384", flags: FlagInternal, id: BLAKE2B_384, outputLen: 48, newEngine: func() engine { return newBLAKE2bEngine(48) }},
		{name: "BLAKE2b-512", flags: FlagInternal, id: BLAKE2B_512, outputLen: 64, newEngine: func() engine { return newBLAKE2bEngine(64) }},
		{name: "BLAKE2s-224", flags: FlagInternal, id: BLAKE2S_224, outputLen: 28, newEngine: func() engine { return newBLAKE2sEngine(28) }},
		{name: "BLAKE2s-256", flags: FlagInternal, id: BLAKE2S_256, outputLen: 32, newEngine: func() engine { return newBLAKE2sEngine(32) }},
	}

	// If the CPU advertises a SHA extension, register a preferred entry for
	// SHA-256 ahead of the portable one. This module has no hand-written
	// hardware-opcode path (there's nothing in the pack it could be
	// grounded on), so the constructor below is the same portable engine;
	// the point exercised here is the registry's preference-order policy
	// reacting to a real CPU feature gate, not a faster implementation.
	if cpu.X86.HasSHA || cpu.ARM64.HasSHA2 {
		preferred := hashMethod{
			name:      "SHA-256 (CPU extension)",
			flags:     FlagInternal,
			id:        SHA256,
			outputLen: 32,
			newEngine: func() engine { return newSHA256Engine(false) },
		}
		hashMethods = append([]hashMethod{preferred}, hashMethods...)
	}
}

// hashMethodGet linearly searches hashMethods and returns the first row
// whose id matches and whose flags cover want.
func hashMethodGet(id AlgorithmID, want ImplementationFlags) (*hashMethod, bool) {
	for i := range hashMethods {
		m := &hashMethods[i]
		if m.id == id && (m.flags&want) == want {
			return m, true
		}
	}
	return nil, false
}

// hashOutputLen returns the declared output length for id, independent of
// flags, mirroring HASH_METH_get_len.
func hashOutputLen(id AlgorithmID) (int, bool) {
	for i := range hashMethods {
		if hashMethods[i].id == id {
			return hashMethods[i].outputLen, true
		}
	}
	return 0, false
}

// macMethod is one registry row for a MAC algorithm.
type macMethod struct {
	name      string
	flags     ImplementationFlags
	id        MACID
	outputLen int
	newSigner func(key []byte) engine
}

var macMethods = []macMethod{
	{name: "HMAC-SHA-1", flags: FlagInternal, id: HMACSHA1, outputLen: 20, newSigner: func(key []byte) engine { return newHMACEngine(newSHA1Engine, key) }},
	{name: "HMAC-SHA-224", flags: FlagInternal, id: HMACSHA224, outputLen: 28, newSigner: func(key []byte) engine { return newHMACEngine(func() engine { return newSHA256Engine(true) }, key) }},
	{name: "HMAC-SHA-256", flags: FlagInternal, id: HMACSHA256, outputLen: 32, newSigner: func(key []byte) engine { return newHMACEngine(func() engine { return newSHA256Engine(false) }, key) }},
	{name: "HMAC-SHA-384", flags: FlagInternal, id: HMACSHA384, outputLen: 48, newSigner: func(key []byte) engine { return newHMACEngine(func() engine { return newSHA512Engine(variantSHA384) }, key) }},
	{name: "HMAC-SHA-512", flags: FlagInternal, id: HMACSHA512, outputLen: 64, newSigner: func(key []byte) engine { return newHMACEngine(func() engine { return newSHA512Engine(variantSHA512) }, key) }},
	{name: "HMAC-SHA-512/224", flags: FlagInternal, id: HMACSHA512_224, outputLen: 28, newSigner: func(key []byte) engine { return newHMACEngine(func() engine { return newSHA512Engine(variantSHA512_224) }, key) }},
	{name: "HMAC-SHA-512/256", flags: FlagInternal, id: HMACSHA512_256, outputLen: 32, newSigner: func(key []byte) engine { return newHMACEngine(func() engine { return newSHA512Engine(variantSHA512_256) }, key) }},
	{name: "SHA3-224 (keyed)", flags: FlagInternal, id: MACSHA3_224, outputLen: 28, newSigner: func(key []byte) engine { return newKeyedSHA3Engine(sha3VariantFactories[SHA3_224], key) }},
	{name: "SHA3-256 (keyed)", flags: FlagInternal, id: MACSHA3_256, outputLen: 32, newSigner: func(key []byte) engine { return newKeyedSHA3Engine(sha3VariantFactories[SHA3_256], key) }},
	{name: "SHA3-384 (keyed)", flags: FlagInternal, id: MACSHA3_384, outputLen: 48, newSigner: func(key []byte) engine { return newKeyedSHA3Engine(sha3VariantFactories[SHA3_384], key) }},
	{name: "SHA3-512 (keyed)", flags: FlagInternal, id: MACSHA3_512, outputLen: 64, newSigner: func(key []byte) engine { return newKeyedSHA3Engine(sha3VariantFactories[SHA3_512], key) }},
	{name: "BLAKE2b-224 (keyed)", flags: FlagInternal, id: MACBLAKE2B_224, outputLen: 28, newSigner: func(key []byte) engine { return newKeyedBLAKE2bEngine(28, key) }},
	{name: "BLAKE2b-256 (keyed)", flags: FlagInternal, id: MACBLAKE2B_256, outputLen: 32, newSigner: func(key []byte) engine { return newKeyedBLAKE2bEngine(32, key) }},
	{name: "BLAKE2b-384 (keyed)", flags: FlagInternal, id: MACBLAKE2B_384, outputLen: 48, newSigner: func(key []byte) engine { return newKeyedBLAKE2bEngine(48, key) }},
	{name: "BLAKE2b-512 (keyed)", flags: FlagInternal, id: MACBLAKE2B_512, outputLen: 64, newSigner: func(key []byte) engine { return newKeyedBLAKE2bEngine(64, key) }},
	{name: "BLAKE2s-224 (keyed)", flags: FlagInternal, id: MACBLAKE2S_224, outputLen: 28, newSigner: func(key []byte) engine { return newKeyedBLAKE2sEngine(28, key) }},
	{name: "BLAKE2s-256 (keyed)", flags: FlagInternal, id: MACBLAKE2S_256, outputLen: 32, newSigner: func(key []byte) engine { return newKeyedBLAKE2sEngine(32, key) }},
}

func macMethodGet(id MACID, want ImplementationFlags) (*macMethod, bool) {
	for i := range macMethods {
		m := &macMethods[i]
		if m.id == id && (m.flags&want) == want {
			return m, true
		}
	}
	return nil, false
}

func macOutputLen(id MACID) (int, bool) {
	for i := range macMethods {
		if macMethods[i].id == id {
			return macMethods[i].outputLen, true
		}
	}
	return 0, false
}
