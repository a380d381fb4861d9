package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool is a package-level pool of reusable BLAKE2b-256 hash instances.
// Content hashing sits on the hot path of every sync attempt (local hash,
// remote hash, ancestor comparison), so instances are pooled to avoid
// repeated allocations.
var hasherPool = sync.Pool{
	New: func() any {
		h, err := blake2b.New256(nil)
		if err != nil {
			// blake2b.New256 with a nil key never fails
			panic(err)
		}
		return h
	},
}

// ContentHash computes the BLAKE2b-256 digest of the given byte slice using
// a hasher pulled from the pool and returns it hex-encoded.
//
// The same function is used for local note content, provider-reported remote
// content and the persisted ancestor hash, so all three are directly
// comparable.
//
// Example usage:
//
//	digest := utils.ContentHash([]byte("# Monday\n\ncall the dentist"))
func ContentHash(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// ContentHashString is a convenience wrapper around ContentHash for string
// content.
func ContentHashString(data string) string {
	return ContentHash([]byte(data))
}
