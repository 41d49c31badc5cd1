package hmacengine

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/sparkidev/hash/internal/sha1engine"
	"github.com/sparkidev/hash/internal/sha256engine"
)

// sha256Adapter satisfies Hash using sha256engine.Engine, the shape the
// parent module's own adapters take.
type sha256Adapter struct{ e sha256engine.Engine }

func newSHA256Adapter() Hash {
	h := &sha256Adapter{}
	h.e.Init256()
	return h
}

func (h *sha256Adapter) Reset()                      { h.e.Init256() }
func (h *sha256Adapter) Write(p []byte) (int, error) { return h.e.Write(p) }
func (h *sha256Adapter) Sum(b []byte) []byte         { return h.e.Sum256(b) }
func (h *sha256Adapter) Size() int                   { return sha256engine.Size256 }
func (h *sha256Adapter) BlockSize() int              { return sha256engine.BlockSize }
func (h *sha256Adapter) Clone() Hash                 { cp := *h; return &cp }

type sha1Adapter struct{ e sha1engine.Engine }

func newSHA1Adapter() Hash {
	h := &sha1Adapter{}
	h.e.Init()
	return h
}

func (h *sha1Adapter) Reset()                      { h.e.Init() }
func (h *sha1Adapter) Write(p []byte) (int, error) { return h.e.Write(p) }
func (h *sha1Adapter) Sum(b []byte) []byte         { return h.e.Sum(b) }
func (h *sha1Adapter) Size() int                   { return sha1engine.Size }
func (h *sha1Adapter) BlockSize() int              { return sha1engine.BlockSize }
func (h *sha1Adapter) Clone() Hash                 { cp := *h; return &cp }

func TestRFC4231HMACSHA256Vector(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	e := New(newSHA256Adapter, key)
	e.Write([]byte("Hi There"))
	got := e.Sum(nil)
	want, _ := hex.DecodeString("b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7")
	if !bytes.Equal(got, want) {
		t.Errorf("HMAC-SHA-256 = %x, want %x", got, want)
	}
}

func TestRFC2104HMACSHA1Vector(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	e := New(newSHA1Adapter, key)
	e.Write([]byte("Hi There"))
	got := e.Sum(nil)
	want, _ := hex.DecodeString("b617318655057264e28bc0b6fb378c8ef146be00")
	if !bytes.Equal(got, want) {
		t.Errorf("HMAC-SHA-1 = %x, want %x", got, want)
	}
}

func TestKeyLengthBranches(t *testing.T) {
	msg := []byte("the message")
	shortKey := bytes.Repeat([]byte{0xaa}, 10)
	exactKey := bytes.Repeat([]byte{0xaa}, sha256engine.BlockSize)
	longKey := bytes.Repeat([]byte{0xaa}, sha256engine.BlockSize+17)

	for _, key := range [][]byte{shortKey, exactKey, longKey} {
		e := New(newSHA256Adapter, key)
		e.Write(msg)
		tag := e.Sum(nil)
		if len(tag) != sha256engine.Size256 {
			t.Errorf("key length %d: tag length = %d, want %d", len(key), len(tag), sha256engine.Size256)
		}
	}

	// A key longer than the block size must be hashed down, not truncated:
	// confirm it does not equal the tag produced by its own raw first block.
	truncated := longKey[:sha256engine.BlockSize]
	e1 := New(newSHA256Adapter, longKey)
	e1.Write(msg)
	tagLong := e1.Sum(nil)

	e2 := New(newSHA256Adapter, truncated)
	e2.Write(msg)
	tagTruncated := e2.Sum(nil)

	if bytes.Equal(tagLong, tagTruncated) {
		t.Error("an over-long key must be hashed down, not truncated to the block size")
	}
}

func TestSumIsRepeatable(t *testing.T) {
	e := New(newSHA256Adapter, []byte("key"))
	e.Write([]byte("message"))
	first := e.Sum(nil)
	second := e.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Error("repeated Sum on an HMAC engine must be idempotent")
	}
}

func TestResetReturnsToFreshlyKeyedState(t *testing.T) {
	e := New(newSHA256Adapter, []byte("key"))
	e.Write([]byte("message"))
	want := e.Sum(nil)

	e.Reset()
	e.Write([]byte("message"))
	got := e.Sum(nil)

	if !bytes.Equal(got, want) {
		t.Error("Reset must return the engine to its freshly-keyed state")
	}
}

func TestCloneDoesNotShareState(t *testing.T) {
	e := New(newSHA256Adapter, []byte("key"))
	e.Write([]byte("shared"))
	clone := e.Clone()

	e.Write([]byte(" original"))
	clone.Write([]byte(" clone"))

	if bytes.Equal(e.Sum(nil), clone.Sum(nil)) {
		t.Error("clone and original diverged in input but produced the same tag")
	}
}
