//go:build unix

package arena

import (
	"golang.org/x/sys/unix"
)

// acquire maps an anonymous, private region of the given size. The
// mapping is page-backed rather than heap-backed, which keeps the
// arena's nodes off the Go heap entirely and out of the garbage
// collector's scan set (the overlay described in pkg/bptree is
// pointer-free by construction, so this is safe).
func acquire(capacity int) ([]byte, func() error, error) {
	buf, err := unix.Mmap(-1, 0, capacity, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	closer := func() error {
		return unix.Munmap(buf)
	}

	return buf, closer, nil
}
