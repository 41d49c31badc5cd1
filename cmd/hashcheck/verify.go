package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	hashpkg "github.com/sparkidev/hash"
)

// digestOf drives a fresh handle for id through init/write/sum once.
func digestOf(id hashpkg.AlgorithmID, msg []byte) ([]byte, error) {
	h, err := hashpkg.NewHash(id, hashpkg.FlagInternal)
	if err != nil {
		return nil, err
	}
	if err := h.Init(); err != nil {
		return nil, err
	}
	if _, err := h.Write(msg); err != nil {
		return nil, err
	}
	return h.Sum(nil)
}

// checkStreaming partitions msg at every offset in splits and confirms each
// partitioned run matches the single-shot digest.
func checkStreaming(id hashpkg.AlgorithmID, msg []byte, splits []int) error {
	want, err := digestOf(id, msg)
	if err != nil {
		return fmt.Errorf("%s: single-shot digest: %w", algoName(id), err)
	}
	for _, at := range splits {
		if at < 0 || at > len(msg) {
			continue
		}
		h, err := hashpkg.NewHash(id, hashpkg.FlagInternal)
		if err != nil {
			return err
		}
		if err := h.Init(); err != nil {
			return err
		}
		if _, err := h.Write(msg[:at]); err != nil {
			return err
		}
		if _, err := h.Write(msg[at:]); err != nil {
			return err
		}
		got, err := h.Sum(nil)
		if err != nil {
			return err
		}
		if !bytes.Equal(got, want) {
			return fmt.Errorf("%s: streaming split at %d diverged from single-shot", algoName(id), at)
		}
	}
	return nil
}

// checkNoAliasing confirms two independently constructed handles over the
// same input never share state.
func checkNoAliasing(id hashpkg.AlgorithmID, msg []byte) error {
	a, err := digestOf(id, msg)
	if err != nil {
		return err
	}
	b, err := digestOf(id, msg)
	if err != nil {
		return err
	}
	if !bytes.Equal(a, b) {
		return fmt.Errorf("%s: two independent handles over identical input disagreed", algoName(id))
	}
	return nil
}

// checkNoInitForbidden confirms Write/Sum before Init are refused.
func checkNoInitForbidden(id hashpkg.AlgorithmID) error {
	h, err := hashpkg.NewHash(id, hashpkg.FlagInternal)
	if err != nil {
		return err
	}
	if _, err := h.Write([]byte("x")); err == nil {
		return fmt.Errorf("%s: Write before Init unexpectedly succeeded", algoName(id))
	}
	if _, err := h.Sum(nil); err == nil {
		return fmt.Errorf("%s: Sum before Init unexpectedly succeeded", algoName(id))
	}
	return nil
}

// verifyAlgorithm runs every self-consistency property this program checks
// for one algorithm, plus any literal KAT vector registered for it.
func verifyAlgorithm(id hashpkg.AlgorithmID) []error {
	var errs []error
	msg := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 5)

	if err := checkNoInitForbidden(id); err != nil {
		errs = append(errs, err)
	}
	if err := checkNoAliasing(id, msg); err != nil {
		errs = append(errs, err)
	}
	if err := checkStreaming(id, msg, []int{0, 1, len(msg) - 1, len(msg), len(msg) / 3, len(msg) / 2}); err != nil {
		errs = append(errs, err)
	}

	want, err := hashpkg.OutputLen(id)
	if err != nil {
		errs = append(errs, err)
	} else if d, err := digestOf(id, nil); err != nil {
		errs = append(errs, err)
	} else if len(d) != want {
		errs = append(errs, fmt.Errorf("%s: empty-input digest length %d, want %d", algoName(id), len(d), want))
	}

	for _, v := range append(append([]katVector{}, katVectors...), longKatVectors...) {
		if v.id != id {
			continue
		}
		got, err := digestOf(id, []byte(v.input))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if hex.EncodeToString(got) != v.expected {
			errs = append(errs, fmt.Errorf("%s: KAT mismatch: got %x, want %s", algoName(id), got, v.expected))
		}
	}
	return errs
}

// verifyHMACSHA256KAT checks the literal HMAC-SHA-256 vector and the
// constant-time verify path's true/false outcomes.
func verifyHMACSHA256KAT() []error {
	var errs []error

	m, err := hashpkg.NewMac(hashpkg.HMACSHA256, hashpkg.FlagInternal)
	if err != nil {
		errs = append(errs, err)
		return errs
	}
	if err := m.SignInit(hmacKATKey); err != nil {
		errs = append(errs, err)
		return errs
	}
	if _, err := m.SignUpdate(hmacKATData); err != nil {
		errs = append(errs, err)
		return errs
	}
	tag, err := m.SignFinal(nil)
	if err != nil {
		errs = append(errs, err)
		return errs
	}
	if hex.EncodeToString(tag) != hmacKATExpected {
		errs = append(errs, fmt.Errorf("HMAC-SHA-256: KAT mismatch: got %x, want %s", tag, hmacKATExpected))
	}

	if err := m.VerifyInit(hmacKATKey); err != nil {
		errs = append(errs, err)
		return errs
	}
	if _, err := m.VerifyUpdate(hmacKATData); err != nil {
		errs = append(errs, err)
		return errs
	}
	ok, err := m.VerifyFinal(tag)
	if err != nil {
		errs = append(errs, err)
	} else if !ok {
		errs = append(errs, fmt.Errorf("HMAC-SHA-256: VerifyFinal rejected a correct tag"))
	}

	tampered := append([]byte(nil), tag...)
	tampered[0] ^= 0x01
	if err := m.VerifyInit(hmacKATKey); err != nil {
		errs = append(errs, err)
		return errs
	}
	if _, err := m.VerifyUpdate(hmacKATData); err != nil {
		errs = append(errs, err)
		return errs
	}
	ok, err = m.VerifyFinal(tampered)
	if err != nil {
		errs = append(errs, err)
	} else if ok {
		errs = append(errs, fmt.Errorf("HMAC-SHA-256: VerifyFinal accepted a tampered tag"))
	}

	return errs
}
