// Package hash implements a library of message digest and keyed
// message-authentication-code primitives behind a small uniform dispatch
// layer: SHA-1, SHA-2 (224/256/384/512/512-224/512-256), SHA-3 (224/256/
// 384/512) and its SHAKE128/256 extendable-output functions in
// single-shot form, BLAKE2b (224/256/384/512) and BLAKE2s (224/256), HMAC
// over SHA-1 and the SHA-2 family, and the native keyed modes of BLAKE2 and
// SHA-3.
//
// A caller looks up an algorithm by (AlgorithmID, ImplementationFlags) or
// (MACID, ImplementationFlags) via NewHash/NewMac, then drives the
// returned handle through Init/Write/Sum or SignInit/SignUpdate/SignFinal
// and VerifyInit/VerifyUpdate/VerifyFinal. A handle is single-owner and
// non-shareable; distinct handles share no state and may be used from
// distinct goroutines without coordination.
package hash
