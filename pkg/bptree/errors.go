package bptree

import "errors"

var (
	// ErrArenaUnavailable is returned by New when constructed with a nil
	// arena: a node allocation was requested with no active arena backing
	// it, mirroring spec.md §4.2's ArenaUnavailable failure.
	ErrArenaUnavailable = errors.New("bptree: no active arena")

	// ErrFanoutTooSmall is returned by New when fanout < 4, the minimum
	// the split arithmetic in §4.4.1/§4.4.2 needs to produce two
	// non-empty halves.
	ErrFanoutTooSmall = errors.New("bptree: fanout must be at least 4")

	// ErrOutOfArena is returned by Insert when the backing arena cannot
	// supply a node required mid-split. Per spec.md §7, the tree must be
	// treated as poisoned after this error: the triggering node has
	// already been overfilled in place by the time a split allocation
	// is attempted, so a failure here leaves that node's own capacity
	// invariant temporarily violated with no rollback.
	ErrOutOfArena = errors.New("bptree: arena exhausted during insert")

	// ErrValueNotPointerFree is returned by New when V (directly, or
	// through a struct field, array element, or embedded type) carries
	// a Go pointer. Storing such a V in the node's arena-backed payload
	// would hide that pointer from the garbage collector.
	ErrValueNotPointerFree = errors.New("bptree: value type is not pointer-free")
)
