package hasherr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorsIsMatchesByCodeAlone(t *testing.T) {
	e1 := New("NewHash", CodeNotFound)
	if !errors.Is(e1, ErrNotFound) {
		t.Error("errors.Is should match on Code regardless of Op")
	}
	if errors.Is(e1, ErrBadLen) {
		t.Error("errors.Is should not match a different Code")
	}
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap("Hash.Write", CodeBadData, cause)
	if !errors.Is(wrapped, cause) {
		t.Error("Wrap should preserve the underlying cause for errors.Is/As")
	}
}

func TestErrorStringIncludesOpAndCode(t *testing.T) {
	err := New("Mac.SignFinal", CodeNotInitialized)
	msg := err.Error()
	if msg == "" {
		t.Fatal("Error() returned empty string")
	}
	if !strings.Contains(msg, "Mac.SignFinal") || !strings.Contains(msg, CodeNotInitialized.String()) {
		t.Errorf("Error() = %q, want it to include the op and the code", msg)
	}
}

func TestCodeStringIsNeverEmpty(t *testing.T) {
	codes := []Code{
		CodeNotFound, CodeBadData, CodeBadLen, CodeParamNull,
		CodeNotInitialized, CodeAllocFailure, CodeRandomFailure, Code(0),
	}
	for _, c := range codes {
		if c.String() == "" {
			t.Errorf("Code(%d).String() returned empty string", c)
		}
	}
}
