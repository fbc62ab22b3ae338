package loop

import (
	"errors"
	"fmt"
)

// Resources is an ownership stack for handles acquired at startup (fonts,
// images, windows). Close releases them in reverse acquisition order, each
// exactly once, whichever exit path calls it first.
type Resources struct {
	names    []string
	releases []func() error
	closed   bool
}

// Push records a release function for a newly acquired handle. Handles
// pushed after Close are released immediately.
func (r *Resources) Push(name string, release func() error) {
	if r.closed {
		_ = release()
		return
	}
	r.names = append(r.names, name)
	r.releases = append(r.releases, release)
}

// Len returns the number of handles still held.
func (r *Resources) Len() int { return len(r.releases) }

// Close releases every held handle, newest first, and joins their errors.
// Subsequent calls are no-ops.
func (r *Resources) Close() error {
	if r == nil || r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	for i := len(r.releases) - 1; i >= 0; i-- {
		if err := r.releases[i](); err != nil {
			errs = append(errs, fmt.Errorf("release %s: %w", r.names[i], err))
		}
	}
	r.names = nil
	r.releases = nil
	return errors.Join(errs...)
}
