package bptree

import (
	"github.com/dolthub/maphash"
	"golang.org/x/text/unicode/norm"
)

// Key is the constraint satisfied by types usable as Tree keys. The
// node layout in node.go reinterprets raw arena bytes as a K directly
// (see node.keyAt), so K must be a fixed-width, pointer-free, ordered
// scalar. This is deliberately narrower than stdlib cmp.Ordered, which
// also admits ~string: variable-length keys are an explicit non-goal
// (spec.md NON-GOALS), so ~string is excluded from the constraint
// itself rather than merely left undocumented. Callers with
// string-shaped identifiers should digest them first with
// DigestString.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

var stringDigester = maphash.NewHasher[string]()

// DigestString collapses an arbitrary string into a fixed-width int32
// suitable for use as a Tree key (matching FindSIMD's narrower int32
// eligibility, so digested string keys can exercise all three find
// variants rather than only the binary-search fallback). The string is
// first normalized to Unicode NFC so that canonically equivalent
// strings digest identically regardless of input encoding variant,
// matching the normalization policy used elsewhere in the retrieval
// pack for byte-oriented key construction.
//
// DigestString is lossy: distinct strings may collide on the same
// int32, far more readily than on the underlying 64-bit hash. Callers
// that cannot tolerate collisions must store the original string
// alongside the value and verify it on hit.
func DigestString(s string) int32 {
	normalized := norm.NFC.String(s)
	h := stringDigester.Hash(normalized)
	return int32(uint32(h))
}
