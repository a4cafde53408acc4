// This file implements the two portable point-lookup variants —
// linear scan and binary search — each applying the same descent rule
// as tree.go's descendIndex through its own helper.
// Both walk the same arena-backed nodes as Insert/Remove; they differ
// only in how they locate a key within a single node's key array.
package bptree

// FindLinear looks up key using a left-to-right scan within each node,
// stopping at the first key greater-than (internal descent) or equal
// (leaf hit). Matches spec.md §4.3.1.
func (t *Tree[K, V]) FindLinear(key K) (V, bool) {
	ref := t.root
	for {
		n := t.nodeAt(ref)
		if n.isLeaf() {
			return linearLeafScan(n, key)
		}
		ref = n.childAt(linearDescend(n, key))
	}
}

func linearDescend[K Key, V any](n node[K, V], key K) int {
	count := n.numKeys()
	for i := 0; i < count; i++ {
		if key < n.keyAt(i) {
			return i
		}
	}
	return count
}

func linearLeafScan[K Key, V any](n node[K, V], key K) (V, bool) {
	count := n.numKeys()
	for i := 0; i < count; i++ {
		if n.keyAt(i) == key {
			return n.valueAt(i), true
		}
	}
	var zero V
	return zero, false
}

// FindBinary looks up key using a classical lower-bound binary search
// over each node's key array. Matches spec.md §4.3.2.
func (t *Tree[K, V]) FindBinary(key K) (V, bool) {
	ref := t.root
	for {
		n := t.nodeAt(ref)
		if n.isLeaf() {
			return binaryLeafScan(n, key)
		}
		ref = n.childAt(binaryDescend(n, key))
	}
}

// binaryDescend returns the smallest index i in [0, numKeys()] such
// that key < n.keyAt(i), via lower-bound binary search.
func binaryDescend[K Key, V any](n node[K, V], key K) int {
	lo, hi := 0, n.numKeys()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if n.keyAt(mid) <= key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func binaryLeafScan[K Key, V any](n node[K, V], key K) (V, bool) {
	count := n.numKeys()
	lo, hi := 0, count
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if n.keyAt(mid) < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < count && n.keyAt(lo) == key {
		return n.valueAt(lo), true
	}
	var zero V
	return zero, false
}
