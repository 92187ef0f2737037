package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"sync"
)

// digestPool is a package-level pool of reusable SHA-256 hash instances.
// SHA-256 needs no key material, so the pool is ready without explicit
// initialization.
var digestPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest computes a SHA-256 digest over the given byte slice using a hasher
// pulled from the package-level pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Parameters:
//
//	data - arbitrary byte slice to be digested
//
// Returns:
//
//	[]byte - raw SHA-256 digest
//
// Example usage:
//
//	sum := utils.Digest(payload)
func Digest(data []byte) []byte {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return sum
}

// DigestBase64 computes a SHA-256 digest over the given byte slice and
// returns it encoded with standard base64, the representation used inside
// the Content-Digest response header (RFC 9530).
//
// Parameters:
//
//	data - arbitrary byte slice to be digested
//
// Returns:
//
//	string - base64-encoded SHA-256 digest
//
// Example usage:
//
//	w.Header().Set("Content-Digest", "sha-256=:"+utils.DigestBase64(body)+":")
func DigestBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(Digest(data))
}
