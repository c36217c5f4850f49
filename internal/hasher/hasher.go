package hasher

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Func reduces data to a 64-bit digest. Implementations must be deterministic.
type Func func(data []byte) uint64

const (
	XXHash = "xxhash"
	FNV    = "fnv"
	SHA256 = "sha256"
)

// ErrUnknownAlgorithm is returned by Lookup for unregistered names.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Default is used when no algorithm is named.
var Default Func = XXH64

var registry = map[string]Func{
	XXHash: XXH64,
	FNV:    FNV64a,
	SHA256: SHA256Prefix,
}

// XXH64 is the 64-bit xxHash of data.
func XXH64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FNV64a is the 64-bit FNV-1a hash of data.
func FNV64a(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// SHA256Prefix returns the first 8 bytes of the SHA-256 of data as a
// big-endian integer.
func SHA256Prefix(data []byte) uint64 {
	sum := sha256.Sum256(data)
	return binary.BigEndian.Uint64(sum[:8])
}

// Lookup returns the digest function registered under name.
// An empty name returns Default.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Default, nil
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownAlgorithm, name, Names())
	}
	return fn, nil
}

// Names returns the registered algorithm names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
