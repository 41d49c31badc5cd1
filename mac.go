package hash

import (
	"github.com/sparkidev/hash/hasherr"
	"github.com/sparkidev/hash/internal/wordcodec"
)

// Mac is a single-owner, non-shareable MAC handle bound to one algorithm.
// The zero value is not usable; build one with NewMac.
type Mac struct {
	method *macMethod
	state  handleState
	eng    engine
}

// NewMac looks up the method for (id, flags) and returns a handle in the
// Fresh state.
func NewMac(id MACID, flags ImplementationFlags) (*Mac, error) {
	m, ok := macMethodGet(id, flags)
	if !ok {
		return nil, hasherr.New("NewMac", hasherr.CodeNotFound)
	}
	return &Mac{method: m, state: stateFresh}, nil
}

// SignInit (re)initializes the handle for signing with key, valid from
// Fresh or Finalized.
func (m *Mac) SignInit(key []byte) error {
	if m.state != stateFresh && m.state != stateFinalized {
		return hasherr.New("Mac.SignInit", hasherr.CodeNotInitialized)
	}
	m.eng = m.method.newSigner(key)
	m.state = stateInitialized
	return nil
}

// SignUpdate absorbs message data. Valid from Initialized or Absorbing.
func (m *Mac) SignUpdate(p []byte) (int, error) {
	if m.state != stateInitialized && m.state != stateAbsorbing {
		return 0, hasherr.New("Mac.SignUpdate", hasherr.CodeNotInitialized)
	}
	m.state = stateAbsorbing
	return m.eng.Write(p)
}

// SignFinal finalizes the handle and appends the computed tag to out.
// Valid from Initialized or Absorbing; leaves the handle Finalized.
func (m *Mac) SignFinal(out []byte) ([]byte, error) {
	if m.state != stateInitialized && m.state != stateAbsorbing {
		return nil, hasherr.New("Mac.SignFinal", hasherr.CodeNotInitialized)
	}
	out = m.eng.Sum(out)
	m.state = stateFinalized
	return out, nil
}

// VerifyInit (re)initializes the handle for verification with key. The
// underlying construction is identical to signing; only the final
// comparison differs.
func (m *Mac) VerifyInit(key []byte) error { return m.SignInit(key) }

// VerifyUpdate absorbs message data to be verified.
func (m *Mac) VerifyUpdate(p []byte) (int, error) { return m.SignUpdate(p) }

// VerifyFinal finalizes the handle and compares the computed tag against
// expected in constant time. A tag mismatch is reported by returning false
// with a nil error; only a malformed call (wrong state) returns an error.
func (m *Mac) VerifyFinal(expected []byte) (verified bool, err error) {
	if m.state != stateInitialized && m.state != stateAbsorbing {
		return false, hasherr.New("Mac.VerifyFinal", hasherr.CodeNotInitialized)
	}
	computed := m.eng.Sum(nil)
	m.state = stateFinalized
	return wordcodec.ConstantTimeCompare(computed, expected), nil
}

// OutputLen returns the tag length in bytes for m's algorithm.
func (m *Mac) OutputLen() int { return m.method.outputLen }

// ImplName returns the registry entry name backing this handle.
func (m *Mac) ImplName() string { return m.method.name }

// MACOutputLen returns the declared tag length in bytes for id, without
// requiring a handle.
func MACOutputLen(id MACID) (int, error) {
	n, ok := macOutputLen(id)
	if !ok {
		return 0, hasherr.New("MACOutputLen", hasherr.CodeNotFound)
	}
	return n, nil
}
