// This file implements Tree, the recursive-descent B+ tree with split
// propagation on insert and a best-effort leaf erase on remove,
// grounded on the teacher's BTree.Insert/treeInsert/nodeSplit2/3
// family in _examples/ceth-x86-create-your-own-database/pkg/btree/tree.go
// and ssargent-freyjadb's in-memory, slice-based bptree.go, adapted
// from live-pointer children to arena.Ref children throughout.
package bptree

import (
	"arenabtree/pkg/arena"
)

// Tree is an in-memory B+ tree index with fixed fan-out M, backed by a
// single Arena. It is not safe for concurrent use (spec.md §5).
type Tree[K Key, V any] struct {
	a        *arena.Arena
	geometry nodeGeometry
	root     arena.Ref
	useSIMD  bool
}

// New constructs an empty Tree with the given fan-out, backed by a.
// fanout must be at least 4 (the minimum the split arithmetic needs to
// produce two non-empty halves); a must be non-nil. V must be a
// pointer-free type: New rejects any V whose reflect.Kind carries a
// pointer (pointer, slice, map, chan, func, interface, or string)
// because the node's payload region (node.go) is reinterpreted as raw
// arena bytes, and a live Go pointer hidden in those bytes would be
// invisible to the garbage collector. This enforces spec.md §6's
// "value type with plain-copy semantics" at construction time rather
// than leaving it as a documented caller obligation.
func New[K Key, V any](a *arena.Arena, fanout int) (*Tree[K, V], error) {
	if a == nil {
		return nil, ErrArenaUnavailable
	}
	if fanout < 4 {
		return nil, ErrFanoutTooSmall
	}
	if err := checkPointerFree[V](); err != nil {
		return nil, err
	}

	var zeroK K
	var zeroV V
	geometry := newGeometry(fanout, int(sizeofScalar(zeroK)), int(sizeofScalar(zeroV)))

	t := &Tree[K, V]{
		a:        a,
		geometry: geometry,
		useSIMD:  simdEligible(zeroK),
	}

	rootRef, err := t.allocNode(true)
	if err != nil {
		return nil, err
	}
	t.root = rootRef

	return t, nil
}

// allocNode reserves a new node of this tree's geometry from the arena
// and initializes its header (num_keys = 0, leaf tag set). Arrays are
// left uninitialized, matching spec.md §4.2's "uninitialized arrays"
// performance note.
func (t *Tree[K, V]) allocNode(leaf bool) (arena.Ref, error) {
	ref, buf, err := t.a.Allocate(t.geometry.nodeSize)
	if err != nil {
		return 0, ErrOutOfArena
	}
	n := makeNode[K, V](buf, t.geometry)
	n.setLeaf(leaf)
	n.setNumKeys(0)
	return ref, nil
}

func (t *Tree[K, V]) nodeAt(ref arena.Ref) node[K, V] {
	buf := t.a.View(ref, t.geometry.nodeSize)
	return makeNode[K, V](buf, t.geometry)
}

// descendIndex returns the smallest index i such that key < n.keyAt(i),
// or n.numKeys() if no such index exists — the descent rule used by
// Insert and Remove (spec.md §4.3). The find variants apply the same
// rule through linearDescend, binaryDescend, and simdDescend.
func descendIndex[K Key, V any](n node[K, V], key K) int {
	count := n.numKeys()
	for i := 0; i < count; i++ {
		if key < n.keyAt(i) {
			return i
		}
	}
	return count
}

// splitResult carries the sibling produced by a node split back up the
// recursive insert call stack, along with the median key to install in
// the parent.
type splitResult[K Key] struct {
	median  K
	sibling arena.Ref
}

// Insert makes key map to value. If key already exists, the existing
// value is replaced (upsert). Fails with ErrOutOfArena if a required
// node cannot be allocated; per spec.md §7 the tree must then be
// treated as poisoned, since a split that fails partway can leave
// sibling pointers installed in a parent without having grown that
// parent's own capacity check.
func (t *Tree[K, V]) Insert(key K, value V) error {
	split, err := t.insert(t.root, key, value)
	if err != nil {
		return err
	}
	if split == nil {
		return nil
	}

	newRootRef, err := t.allocNode(false)
	if err != nil {
		return err
	}
	newRoot := t.nodeAt(newRootRef)
	newRoot.setNumKeys(1)
	newRoot.setKeyAt(0, split.median)
	newRoot.setChildAt(0, t.root)
	newRoot.setChildAt(1, split.sibling)
	t.root = newRootRef

	return nil
}

func (t *Tree[K, V]) insert(ref arena.Ref, key K, value V) (*splitResult[K], error) {
	n := t.nodeAt(ref)

	if n.isLeaf() {
		return t.insertLeaf(n, key, value)
	}
	return t.insertInternal(n, key, value)
}

func (t *Tree[K, V]) insertLeaf(n node[K, V], key K, value V) (*splitResult[K], error) {
	i := descendIndex(n, key)
	count := n.numKeys()

	if i > 0 && n.keyAt(i-1) == key {
		n.setValueAt(i-1, value)
		return nil, nil
	}

	shiftKeysValuesRight(n, i, count-i)
	n.setKeyAt(i, key)
	n.setValueAt(i, value)
	n.setNumKeys(count + 1)

	if n.numKeys() < n.fanout {
		return nil, nil
	}
	return t.splitLeaf(n)
}

// splitLeaf implements the copy-up leaf split of spec.md §4.4.1: the
// right half moves to a new leaf whose first key is copied up (not
// removed) as the parent separator.
func (t *Tree[K, V]) splitLeaf(n node[K, V]) (*splitResult[K], error) {
	mid := n.fanout / 2
	total := n.numKeys()

	siblingRef, err := t.allocNode(true)
	if err != nil {
		return nil, err
	}
	sibling := t.nodeAt(siblingRef)

	movedCount := total - mid
	copyKeysValues(sibling, n, 0, mid, movedCount)
	sibling.setNumKeys(movedCount)
	n.setNumKeys(mid)

	return &splitResult[K]{median: sibling.keyAt(0), sibling: siblingRef}, nil
}

func (t *Tree[K, V]) insertInternal(n node[K, V], key K, value V) (*splitResult[K], error) {
	i := descendIndex(n, key)
	childRef := n.childAt(i)

	childSplit, err := t.insert(childRef, key, value)
	if err != nil {
		return nil, err
	}
	if childSplit == nil {
		return nil, nil
	}

	count := n.numKeys()
	shiftKeysValuesRightKeyOnly(n, i, count-i)
	shiftChildrenRight(n, i+1, count-i)
	n.setKeyAt(i, childSplit.median)
	n.setChildAt(i+1, childSplit.sibling)
	n.setNumKeys(count + 1)

	if n.numKeys() < n.fanout {
		return nil, nil
	}
	return t.splitInternal(n)
}

// splitInternal implements the move-up internal split of spec.md
// §4.4.2: the middle key is lifted into the parent and retained in
// neither child.
func (t *Tree[K, V]) splitInternal(n node[K, V]) (*splitResult[K], error) {
	mid := n.fanout / 2
	total := n.numKeys()
	median := n.keyAt(mid)

	siblingRef, err := t.allocNode(false)
	if err != nil {
		return nil, err
	}
	sibling := t.nodeAt(siblingRef)

	movedKeys := total - mid - 1
	copyKeysChildren(sibling, n, 0, mid+1, 0, mid+1, movedKeys)
	sibling.setNumKeys(movedKeys)
	n.setNumKeys(mid)

	return &splitResult[K]{median: median, sibling: siblingRef}, nil
}

// shiftKeysValuesRightKeyOnly shifts count keys one slot right without
// touching the payload region, for internal nodes whose payload holds
// children rather than values.
func shiftKeysValuesRightKeyOnly[K Key, V any](n node[K, V], from, count int) {
	for i := count - 1; i >= 0; i-- {
		n.setKeyAt(from+i+1, n.keyAt(from+i))
	}
}

// shiftChildrenRight shifts count children one slot right starting at
// from, to make room for the new sibling installed at from.
func shiftChildrenRight[K Key, V any](n node[K, V], from, count int) {
	for i := count - 1; i >= 0; i-- {
		n.setChildAt(from+i+1, n.childAt(from+i))
	}
}

// Remove deletes the entry for key, if present. It does not rebalance:
// this is a faithful best-effort leaf erase per spec.md §4.5 and the
// deletion-rebalancing design note in §9 (decision recorded in
// DESIGN.md). Returns silently if the key is absent.
func (t *Tree[K, V]) Remove(key K) {
	ref := t.root
	for {
		n := t.nodeAt(ref)
		if n.isLeaf() {
			removeFromLeaf(n, key)
			return
		}
		ref = n.childAt(descendIndex(n, key))
	}
}

func removeFromLeaf[K Key, V any](n node[K, V], key K) {
	count := n.numKeys()
	for i := 0; i < count; i++ {
		if n.keyAt(i) == key {
			shiftKeysValuesLeft(n, i+1, count-i-1)
			n.setNumKeys(count - 1)
			return
		}
	}
}
