// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komb

import (
	"errors"
	"sync/atomic"
)

// ErrUnsynced is returned when a synced wrapper is requested for a
// capability that still has unserialized access paths outside the wrapper:
// a unique wrapper's original, or surviving clones of a shared wrapper.
// Rebranding such a capability as safe for concurrent use would be a
// silent data race. Build the synced wrapper from the original function
// or contract value instead.
var ErrUnsynced = errors.New("komb: capability has unsynchronized access paths; build a synced wrapper from the original capability")

// wrapCore carries the optional diagnostic name attached to a wrapper.
// The name is plain wrapper-local state: cloning a shared or synced
// wrapper copies it, and SetName on one clone never affects another.
type wrapCore struct {
	name string
}

// Name returns the wrapper's diagnostic name, or "" when unnamed.
func (c *wrapCore) Name() string { return c.name }

// SetName sets the wrapper's diagnostic name.
func (c *wrapCore) SetName(name string) { c.name = name }

// label renders the diagnostic form "<kind>(<name>)" or "<kind>".
func (c *wrapCore) label(kind string) string {
	if c.name == "" {
		return kind
	}
	return kind + "(" + c.name + ")"
}

// uniqueCore enforces single ownership at run time. Go has no move
// semantics, so consumption is an affine guarantee: the first consuming
// operation wins and every later touch panics. The counter is atomic so
// a misuse that happens to race is still detected rather than lost.
type uniqueCore struct {
	wrapCore
	used atomic.Uintptr
}

// take consumes the wrapper. Panics if it was already consumed.
func (c *uniqueCore) take(kind string) {
	if c.used.Add(1) != 1 {
		panic("komb: " + c.label(kind) + " used after being consumed")
	}
}

// guard asserts the wrapper is still live without consuming it.
// Invocation borrows; only composition and conversion consume.
func (c *uniqueCore) guard(kind string) {
	if c.used.Load() != 0 {
		panic("komb: " + c.label(kind) + " used after being consumed")
	}
}
