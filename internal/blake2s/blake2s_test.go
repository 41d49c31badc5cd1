package blake2s

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/sparkidev/hash/hasherr"
)

func sum(d *Digest, msg []byte) []byte {
	d.Write(msg)
	return d.Sum(nil)
}

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"", "69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"},
		{"abc", "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
	}
	for _, c := range cases {
		d, err := New(MaxOutput)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := hex.DecodeString(c.want)
		got := sum(d, []byte(c.msg))
		if !bytes.Equal(got, want) {
			t.Errorf("BLAKE2s-256(%q) = %x, want %x", c.msg, got, want)
		}
	}
}

func TestKeyedWithEmptyKeyEqualsUnkeyed(t *testing.T) {
	unkeyed, _ := New(32)
	keyed, _ := New(32, WithKey(nil))
	msg := []byte("message")
	if !bytes.Equal(sum(unkeyed, msg), sum(keyed, msg)) {
		t.Error("keyed digest with a nil key must equal the unkeyed digest")
	}
}

// TestKeyedWithNonNilZeroLengthKeyEqualsUnkeyed guards against gating keyed
// mode on the key slice's nilness: make([]byte, 0) is an ordinary,
// non-nil, zero-length key and must behave identically to a nil key.
func TestKeyedWithNonNilZeroLengthKeyEqualsUnkeyed(t *testing.T) {
	unkeyed, _ := New(32)
	keyed, _ := New(32, WithKey(make([]byte, 0)))
	msg := []byte("message")
	if !bytes.Equal(sum(unkeyed, msg), sum(keyed, msg)) {
		t.Error("keyed digest with a non-nil zero-length key must equal the unkeyed digest")
	}
}

func TestKeyedDiffersFromUnkeyed(t *testing.T) {
	unkeyed, _ := New(32)
	keyed, _ := New(32, WithKey([]byte("secret")))
	msg := []byte("message")
	if bytes.Equal(sum(unkeyed, msg), sum(keyed, msg)) {
		t.Error("keyed and unkeyed digests over the same message must differ")
	}
}

// TestOverlongKeyReturnsBadLenNotBoolean pins the documented BLAKE2s source
// ambiguity: the key-too-long case must return the BadLen error code, never
// an ambiguous bare 0/1 success value.
func TestOverlongKeyReturnsBadLenNotBoolean(t *testing.T) {
	_, err := New(32, WithKey(make([]byte, KeyLength+1)))
	if err == nil {
		t.Fatal("expected an error for an oversized key")
	}
	he, ok := err.(*hasherr.Error)
	if !ok || he.Code != hasherr.CodeBadLen {
		t.Errorf("expected CodeBadLen, got %v", err)
	}
}

func TestOutputLengthChangesEveryByte(t *testing.T) {
	d16, _ := New(16)
	d32, _ := New(32)
	out16 := sum(d16, []byte("same input, different outlen"))
	out32 := sum(d32, []byte("same input, different outlen"))
	if bytes.Equal(out16, out32[:16]) {
		t.Error("changing outlen must not just truncate the wider digest")
	}
}

func TestStreamingEquivalenceAcrossBlockBoundary(t *testing.T) {
	newDigest := func() *Digest { v, _ := New(32); return v }
	msg := bytes.Repeat([]byte("block boundary probe "), 10)
	want := sum(newDigest(), msg)

	for _, split := range []int{0, 1, BlockSize - 1, BlockSize, BlockSize + 1, len(msg)} {
		if split > len(msg) {
			continue
		}
		d := newDigest()
		d.Write(msg[:split])
		d.Write(msg[split:])
		got := d.Sum(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("split at %d: got %x, want %x", split, got, want)
		}
	}
}

func TestResetRestoresKeyedState(t *testing.T) {
	d, err := New(32, WithKey([]byte("secret")))
	if err != nil {
		t.Fatal(err)
	}
	first := sum(d, []byte("message"))
	d.Reset()
	second := sum(d, []byte("message"))
	if !bytes.Equal(first, second) {
		t.Error("Reset on a keyed digest must reproduce the same output for the same input")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d, _ := New(32)
	d.Write([]byte("shared"))
	clone := d.Clone()

	d.Write([]byte(" original"))
	clone.Write([]byte(" clone"))

	if bytes.Equal(d.Sum(nil), clone.Sum(nil)) {
		t.Error("clone and original diverged in input but produced the same digest")
	}
}
