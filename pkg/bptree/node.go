// Package bptree implements an in-memory B+ tree with fixed fan-out,
// backed by a bump-allocated arena, offering three point-lookup
// strategies (linear scan, binary search, and a SIMD-style chunked
// bitmask scan) over the same underlying layout.
//
// This file implements Node, the fixed-capacity storage unit.
//
// Node Layout in Memory:
//
// A node is a byte slice view into the owning Tree's arena, laid out
// as:
//
//  1. Header (4 bytes):
//     - isLeaf (1 byte): 1 for a leaf node, 0 for an internal node
//     - padding (1 byte)
//     - numKeys (2 bytes, little-endian)
//  2. Keys (fanout * sizeof(K) bytes):
//     - numKeys entries in strictly ascending order, the remaining
//     fanout-numKeys slots hold indeterminate data that must never be
//     read
//  3. Payload (max(fanout*sizeof(V), (fanout+1)*4) bytes): an overlay
//     region interpreted one of two ways depending on isLeaf:
//     - leaf: fanout values, one per key
//     - internal: fanout+1 arena.Ref child offsets (uint32, little-endian)
//
// INTERNAL NODE Example (fanout=4, numKeys=3):
//
//	+----------------------------------------------------------------+
//	| HEADER (4 bytes): isLeaf=0, numKeys=3                          |
//	+----------------------------------------------------------------+
//	| KEYS: k0 | k1 | k2 | (unused)                                 |
//	+----------------------------------------------------------------+
//	| PAYLOAD (as child refs): c0 | c1 | c2 | c3 | (unused)          |
//	+----------------------------------------------------------------+
//
// LEAF NODE Example (fanout=4, numKeys=3):
//
//	+----------------------------------------------------------------+
//	| HEADER (4 bytes): isLeaf=1, numKeys=3                          |
//	+----------------------------------------------------------------+
//	| KEYS: k0 | k1 | k2 | (unused)                                 |
//	+----------------------------------------------------------------+
//	| PAYLOAD (as values): v0 | v1 | v2 | (unused)                   |
//	+----------------------------------------------------------------+
//
// The payload overlay is deliberately pointer-free in both
// interpretations (scalar K/V plus uint32 arena.Ref), so reinterpreting
// the same bytes as one or the other is safe with respect to the
// garbage collector: neither interpretation ever hides a live pointer
// from it. See spec.md §4.2 and design note §9.
package bptree

import (
	"encoding/binary"
	"unsafe"

	"arenabtree/pkg/arena"
)

const (
	headerSize = 4
	refSize    = 4 // sizeof(arena.Ref) on the wire
)

// node is a thin, non-owning view over a fixed-capacity block of arena
// memory. It carries no state of its own beyond the geometry needed to
// compute byte offsets; all persistent state lives in buf, which aliases
// the owning Tree's arena.
type node[K Key, V any] struct {
	buf        []byte
	fanout     int
	keySize    int
	valSize    int
	keysOffset int
	payOffset  int
}

// nodeGeometry captures the per-Tree layout constants shared by every
// node the tree allocates, computed once at Tree construction.
type nodeGeometry struct {
	fanout     int
	keySize    int
	valSize    int
	keysOffset int
	payOffset  int
	payloadLen int
	nodeSize   int
}

func newGeometry(fanout, keySize, valSize int) nodeGeometry {
	keysLen := fanout * keySize
	valuesLen := fanout * valSize
	childrenLen := (fanout + 1) * refSize
	payloadLen := valuesLen
	if childrenLen > payloadLen {
		payloadLen = childrenLen
	}

	keysOffset := headerSize
	payOffset := keysOffset + keysLen

	return nodeGeometry{
		fanout:     fanout,
		keySize:    keySize,
		valSize:    valSize,
		keysOffset: keysOffset,
		payOffset:  payOffset,
		payloadLen: payloadLen,
		nodeSize:   payOffset + payloadLen,
	}
}

// assert panics if the condition is false. Used for internal invariant
// checks: a failure here indicates a bug in this package's own
// bookkeeping, never a caller-facing error condition (spec.md places no
// recoverable-error requirement on out-of-range internal access).
func assert(cond bool, msg string) {
	if !cond {
		panic("bptree: " + msg)
	}
}

func makeNode[K Key, V any](buf []byte, g nodeGeometry) node[K, V] {
	assert(len(buf) == g.nodeSize, "node buffer size mismatch")
	return node[K, V]{
		buf:        buf,
		fanout:     g.fanout,
		keySize:    g.keySize,
		valSize:    g.valSize,
		keysOffset: g.keysOffset,
		payOffset:  g.payOffset,
	}
}

func (n node[K, V]) isLeaf() bool {
	return n.buf[0] == 1
}

func (n node[K, V]) setLeaf(leaf bool) {
	if leaf {
		n.buf[0] = 1
	} else {
		n.buf[0] = 0
	}
}

func (n node[K, V]) numKeys() int {
	return int(binary.LittleEndian.Uint16(n.buf[2:4]))
}

func (n node[K, V]) setNumKeys(count int) {
	binary.LittleEndian.PutUint16(n.buf[2:4], uint16(count))
}

// keyAt returns the key at index i. i must be in [0, numKeys()); callers
// must never read past numKeys (the tail slots hold indeterminate data,
// per spec.md's "uninitialized array slots" design note).
func (n node[K, V]) keyAt(i int) K {
	assert(i < n.fanout, "key index out of range")
	off := n.keysOffset + i*n.keySize
	return *(*K)(unsafe.Pointer(&n.buf[off]))
}

func (n node[K, V]) setKeyAt(i int, k K) {
	assert(i < n.fanout, "key index out of range")
	off := n.keysOffset + i*n.keySize
	*(*K)(unsafe.Pointer(&n.buf[off])) = k
}

// valueAt returns the value at index i in a leaf node's payload.
func (n node[K, V]) valueAt(i int) V {
	assert(i < n.fanout, "value index out of range")
	off := n.payOffset + i*n.valSize
	return *(*V)(unsafe.Pointer(&n.buf[off]))
}

func (n node[K, V]) setValueAt(i int, v V) {
	assert(i < n.fanout, "value index out of range")
	off := n.payOffset + i*n.valSize
	*(*V)(unsafe.Pointer(&n.buf[off])) = v
}

// childAt returns the arena.Ref of child i in an internal node's
// payload. i must be in [0, numKeys()+1).
func (n node[K, V]) childAt(i int) arena.Ref {
	assert(i < n.fanout+1, "child index out of range")
	off := n.payOffset + i*refSize
	return arena.Ref(binary.LittleEndian.Uint32(n.buf[off:]))
}

func (n node[K, V]) setChildAt(i int, ref arena.Ref) {
	assert(i < n.fanout+1, "child index out of range")
	off := n.payOffset + i*refSize
	binary.LittleEndian.PutUint32(n.buf[off:], uint32(ref))
}

// copyKeysValues copies n contiguous (key, value) pairs starting at
// srcIdx in src into dst starting at dstIdx. Used by leaf split.
func copyKeysValues[K Key, V any](dst, src node[K, V], dstIdx, srcIdx, count int) {
	for i := 0; i < count; i++ {
		dst.setKeyAt(dstIdx+i, src.keyAt(srcIdx+i))
		dst.setValueAt(dstIdx+i, src.valueAt(srcIdx+i))
	}
}

// shiftKeysValuesRight shifts count (key, value) pairs starting at from
// one slot to the right, to make room for an insertion at from.
func shiftKeysValuesRight[K Key, V any](n node[K, V], from, count int) {
	for i := count - 1; i >= 0; i-- {
		n.setKeyAt(from+i+1, n.keyAt(from+i))
		n.setValueAt(from+i+1, n.valueAt(from+i))
	}
}

// shiftKeysValuesLeft shifts count (key, value) pairs starting at from
// one slot to the left, closing the gap left by a removal at from-1.
func shiftKeysValuesLeft[K Key, V any](n node[K, V], from, count int) {
	for i := 0; i < count; i++ {
		n.setKeyAt(from-1+i, n.keyAt(from+i))
		n.setValueAt(from-1+i, n.valueAt(from+i))
	}
}

// copyKeysChildren copies count keys (srcIdx..) and count+1 children
// (srcChildIdx..) from src into dst. Used by internal split.
func copyKeysChildren[K Key, V any](dst, src node[K, V], dstKeyIdx, srcKeyIdx, dstChildIdx, srcChildIdx, keyCount int) {
	for i := 0; i < keyCount; i++ {
		dst.setKeyAt(dstKeyIdx+i, src.keyAt(srcKeyIdx+i))
	}
	for i := 0; i <= keyCount; i++ {
		dst.setChildAt(dstChildIdx+i, src.childAt(srcChildIdx+i))
	}
}
