package main

import hashpkg "github.com/sparkidev/hash"

// algoEntry binds one CLI selector flag to the AlgorithmID it exercises.
// The flag name matches the per-algorithm selectors named in the external
// CLI surface: -sha256, -sha3_512, -blake2b, -blake2s, -sha512_224,
// -sha512_256, and so on for the rest of the enumerated set.
type algoEntry struct {
	flag string
	id   hashpkg.AlgorithmID
}

var algoTable = []algoEntry{
	{"sha224", hashpkg.SHA224},
	{"sha256", hashpkg.SHA256},
	{"sha384", hashpkg.SHA384},
	{"sha512", hashpkg.SHA512},
	{"sha512_224", hashpkg.SHA512_224},
	{"sha512_256", hashpkg.SHA512_256},
	{"sha3_224", hashpkg.SHA3_224},
	{"sha3_256", hashpkg.SHA3_256},
	{"sha3_384", hashpkg.SHA3_384},
	{"sha3_512", hashpkg.SHA3_512},
	{"blake2b_224", hashpkg.BLAKE2B_224},
	{"blake2b_256", hashpkg.BLAKE2B_256},
	{"blake2b_384", hashpkg.BLAKE2B_384},
	{"blake2b", hashpkg.BLAKE2B_512},
	{"blake2s_224", hashpkg.BLAKE2S_224},
	{"blake2s", hashpkg.BLAKE2S_256},
}

func algoName(id hashpkg.AlgorithmID) string {
	for _, a := range algoTable {
		if a.id == id {
			return a.flag
		}
	}
	return "unknown"
}
