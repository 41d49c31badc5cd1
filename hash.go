// Package hash implements the SHA-1, SHA-2, SHA-3, BLAKE2b and BLAKE2s
// message digest families, the HMAC construction, and the native keyed
// modes of BLAKE2 and SHA-3, behind a single registry-driven Hash/Mac
// handle API. See doc.go for the package-level overview.
package hash

import (
	"github.com/sparkidev/hash/hasherr"
	"github.com/sparkidev/hash/internal/blake2b"
	"github.com/sparkidev/hash/internal/blake2s"
	"github.com/sparkidev/hash/internal/hmacengine"
	"github.com/sparkidev/hash/internal/keccak"
	"github.com/sparkidev/hash/internal/sha1engine"
	"github.com/sparkidev/hash/internal/sha256engine"
	"github.com/sparkidev/hash/internal/sha512engine"
)

// engine is the capability every concrete digest in this module presents
// to the facade and to the HMAC construction: reset to freshly-initialized
// state, absorb bytes, finalize non-destructively, report size, and clone
// for non-destructive finalization of composite constructions. Dispatch
// from an AlgorithmID to a concrete engine goes through the static
// constructor table in registry.go, never reflection or unsafe.
type engine = hmacengine.Hash

type handleState int

const (
	stateFresh handleState = iota
	stateInitialized
	stateAbsorbing
	stateFinalized
)

// Hash is a single-owner, non-shareable digest handle bound to one
// algorithm. The zero value is not usable; build one with NewHash.
type Hash struct {
	method *hashMethod
	state  handleState
	eng    engine
}

// NewHash looks up the method for (id, flags) and returns a handle in the
// Fresh state. The caller must call Init before Write or Sum.
func NewHash(id AlgorithmID, flags ImplementationFlags) (*Hash, error) {
	m, ok := hashMethodGet(id, flags)
	if !ok {
		return nil, hasherr.New("NewHash", hasherr.CodeNotFound)
	}
	return &Hash{method: m, state: stateFresh}, nil
}

// Init (re)initializes the handle, valid from Fresh or Finalized.
func (h *Hash) Init() error {
	if h.state != stateFresh && h.state != stateFinalized {
		return hasherr.New("Hash.Init", hasherr.CodeNotInitialized)
	}
	h.eng = h.method.newEngine()
	h.state = stateInitialized
	return nil
}

// Write absorbs message data. Valid from Initialized or Absorbing.
func (h *Hash) Write(p []byte) (int, error) {
	if h.state != stateInitialized && h.state != stateAbsorbing {
		return 0, hasherr.New("Hash.Write", hasherr.CodeNotInitialized)
	}
	h.state = stateAbsorbing
	return h.eng.Write(p)
}

// Sum finalizes the handle and appends the digest to out. Valid from
// Initialized or Absorbing; leaves the handle Finalized.
func (h *Hash) Sum(out []byte) ([]byte, error) {
	if h.state != stateInitialized && h.state != stateAbsorbing {
		return nil, hasherr.New("Hash.Sum", hasherr.CodeNotInitialized)
	}
	out = h.eng.Sum(out)
	h.state = stateFinalized
	return out, nil
}

// OutputLen returns the digest length in bytes for h's algorithm.
func (h *Hash) OutputLen() int { return h.method.outputLen }

// ImplName returns the registry entry name backing this handle.
func (h *Hash) ImplName() string { return h.method.name }

// OutputLen returns the declared digest length in bytes for id, without
// requiring a handle.
func OutputLen(id AlgorithmID) (int, error) {
	n, ok := hashOutputLen(id)
	if !ok {
		return 0, hasherr.New("OutputLen", hasherr.CodeNotFound)
	}
	return n, nil
}

// --- SHA-1 adapter ---

type sha1Hash struct{ e sha1engine.Engine }

func newSHA1Engine() engine {
	h := &sha1Hash{}
	h.e.Init()
	return h
}

func (h *sha1Hash) Reset()                   { h.e.Init() }
func (h *sha1Hash) Write(p []byte) (int, error) { return h.e.Write(p) }
func (h *sha1Hash) Sum(b []byte) []byte      { return h.e.Sum(b) }
func (h *sha1Hash) Size() int                { return sha1engine.Size }
func (h *sha1Hash) BlockSize() int           { return sha1engine.BlockSize }
func (h *sha1Hash) Clone() engine            { cp := *h; return &cp }

// --- SHA-224/256 adapter ---

type sha256Hash struct {
	e     sha256engine.Engine
	is224 bool
}

func newSHA256Engine(is224 bool) engine {
	h := &sha256Hash{is224: is224}
	h.Reset()
	return h
}

func (h *sha256Hash) Reset() {
	if h.is224 {
		h.e.Init224()
	} else {
		h.e.Init256()
	}
}
func (h *sha256Hash) Write(p []byte) (int, error) { return h.e.Write(p) }
func (h *sha256Hash) Sum(b []byte) []byte {
	if h.is224 {
		return h.e.Sum224(b)
	}
	return h.e.Sum256(b)
}
func (h *sha256Hash) Size() int {
	if h.is224 {
		return sha256engine.Size224
	}
	return sha256engine.Size256
}
func (h *sha256Hash) BlockSize() int { return sha256engine.BlockSize }
func (h *sha256Hash) Clone() engine  { cp := *h; return &cp }

// --- SHA-384/512/512-224/512-256 adapter ---

type sha512Variant int

const (
	variantSHA384 sha512Variant = iota
	variantSHA512
	variantSHA512_224
	variantSHA512_256
)

type sha512Hash struct {
	e       sha512engine.Engine
	variant sha512Variant
}

func newSHA512Engine(v sha512Variant) engine {
	h := &sha512Hash{variant: v}
	h.Reset()
	return h
}

func (h *sha512Hash) Reset() {
	switch h.variant {
	case variantSHA384:
		h.e.Init384()
	case variantSHA512:
		h.e.Init512()
	case variantSHA512_224:
		h.e.Init512_224()
	case variantSHA512_256:
		h.e.Init512_256()
	}
}
func (h *sha512Hash) Write(p []byte) (int, error) { return h.e.Write(p) }
func (h *sha512Hash) Sum(b []byte) []byte {
	switch h.variant {
	case variantSHA384:
		return h.e.Sum384(b)
	case variantSHA512:
		return h.e.Sum512(b)
	case variantSHA512_224:
		return h.e.Sum512_224(b)
	default:
		return h.e.Sum512_256(b)
	}
}
func (h *sha512Hash) Size() int {
	switch h.variant {
	case variantSHA384:
		return sha512engine.Size384
	case variantSHA512:
		return sha512engine.Size512
	case variantSHA512_224:
		return sha512engine.Size512_224
	default:
		return sha512engine.Size512_256
	}
}
func (h *sha512Hash) BlockSize() int { return sha512engine.BlockSize }
func (h *sha512Hash) Clone() engine  { cp := *h; return &cp }

// --- SHA-3 / SHAKE adapter ---

var sha3VariantFactories = map[AlgorithmID]func() *keccak.Digest{
	SHA3_224: keccak.NewSHA3_224,
	SHA3_256: keccak.NewSHA3_256,
	SHA3_384: keccak.NewSHA3_384,
	SHA3_512: keccak.NewSHA3_512,
}

type sha3Hash struct{ d *keccak.Digest }

func newSHA3Engine(factory func() *keccak.Digest) engine {
	return &sha3Hash{d: factory()}
}

// newKeyedSHA3Engine implements this module's native keyed SHA-3 MAC mode:
// the key is absorbed as a prefix of the message, ahead of any caller
// input. An empty key degenerates to the plain hash, matching the required
// keyed-equals-unkeyed-at-keylen-zero property.
func newKeyedSHA3Engine(factory func() *keccak.Digest, key []byte) engine {
	d := factory()
	d.Write(key)
	return &sha3Hash{d: d}
}

func (h *sha3Hash) Reset()                   { h.d.Reset() }
func (h *sha3Hash) Write(p []byte) (int, error) { return h.d.Write(p) }
func (h *sha3Hash) Sum(b []byte) []byte      { return h.d.Sum(b) }
func (h *sha3Hash) Size() int                { return h.d.Size() }
func (h *sha3Hash) BlockSize() int           { return h.d.BlockSize() }
func (h *sha3Hash) Clone() engine            { return &sha3Hash{d: h.d.Clone()} }

// --- BLAKE2b adapter ---

type blake2bHash struct{ d *blake2b.Digest }

func newBLAKE2bEngine(outputBytes int) engine {
	d, err := blake2b.New(outputBytes)
	if err != nil {
		panic(err) // outputBytes is always one of the fixed registry sizes
	}
	return &blake2bHash{d: d}
}

func newKeyedBLAKE2bEngine(outputBytes int, key []byte) engine {
	d, err := blake2b.New(outputBytes, blake2b.WithKey(key))
	if err != nil {
		panic(err)
	}
	return &blake2bHash{d: d}
}

func (h *blake2bHash) Reset()                   { h.d.Reset() }
func (h *blake2bHash) Write(p []byte) (int, error) { return h.d.Write(p) }
func (h *blake2bHash) Sum(b []byte) []byte      { return h.d.Sum(b) }
func (h *blake2bHash) Size() int                { return h.d.Size() }
func (h *blake2bHash) BlockSize() int           { return h.d.BlockSize() }
func (h *blake2bHash) Clone() engine            { return &blake2bHash{d: h.d.Clone()} }

// --- BLAKE2s adapter ---

type blake2sHash struct{ d *blake2s.Digest }

func newBLAKE2sEngine(outputBytes int) engine {
	d, err := blake2s.New(outputBytes)
	if err != nil {
		panic(err)
	}
	return &blake2sHash{d: d}
}

func newKeyedBLAKE2sEngine(outputBytes int, key []byte) engine {
	d, err := blake2s.New(outputBytes, blake2s.WithKey(key))
	if err != nil {
		panic(err)
	}
	return &blake2sHash{d: d}
}

func (h *blake2sHash) Reset()                   { h.d.Reset() }
func (h *blake2sHash) Write(p []byte) (int, error) { return h.d.Write(p) }
func (h *blake2sHash) Sum(b []byte) []byte      { return h.d.Sum(b) }
func (h *blake2sHash) Size() int                { return h.d.Size() }
func (h *blake2sHash) BlockSize() int           { return h.d.BlockSize() }
func (h *blake2sHash) Clone() engine            { return &blake2sHash{d: h.d.Clone()} }

// --- HMAC adapter ---

func newHMACEngine(newBase func() engine, key []byte) engine {
	return hmacengine.New(newBase, key)
}
