package blake2b

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

func TestRFC7693Vectors(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"", "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
		{"abc", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
	}
	for _, c := range cases {
		d, err := New(MaxOutput)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := hex.DecodeString(c.want)
		got := sum(d, []byte(c.msg))
		if !bytes.Equal(got, want) {
			t.Errorf("BLAKE2b-512(%q) = %x, want %x", c.msg, got, want)
		}
	}
}

func TestOutputLengthChangesEveryByte(t *testing.T) {
	d28, _ := New(28)
	d32, _ := New(32)
	out28 := sum(d28, []byte("same input, different outlen"))
	out32 := sum(d32, []byte("same input, different outlen"))
	if bytes.Equal(out28, out32[:28]) {
		t.Error("changing outlen must not just truncate the wider digest")
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

func TestKeyTooLongReturnsBadLen(t *testing.T) {
	_, err := New(32, WithKey(make([]byte, KeyLength+1)))
	if !bytesIsBadLen(err) {
		t.Errorf("expected CodeBadLen for an oversized key, got %v", err)
	}
}

func TestOutputTooLargeReturnsBadLen(t *testing.T) {
	_, err := New(MaxOutput + 1)
	if !bytesIsBadLen(err) {
		t.Errorf("expected CodeBadLen for an oversized output length, got %v", err)
	}
}

func bytesIsBadLen(err error) bool {
	he, ok := err.(*hasherr.Error)
	return ok && he.Code == hasherr.CodeBadLen
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

func TestStreamingEquivalenceAcrossBlockBoundary(t *testing.T) {
	d := func() *Digest { v, _ := New(64); return v }
	msg := bytes.Repeat([]byte("block boundary probe "), 20)
	want := sum(d(), msg)

	for _, split := range []int{0, 1, BlockSize - 1, BlockSize, BlockSize + 1, len(msg)} {
		if split > len(msg) {
			continue
		}
		digest := d()
		digest.Write(msg[:split])
		digest.Write(msg[split:])
		got := digest.Sum(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("split at %d: got %x, want %x", split, got, want)
		}
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
