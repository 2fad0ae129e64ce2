// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"github.com/petermattis/goid"
)

// Bind installs value as the current binding of s on the calling
// goroutine, runs body, and restores the exact previous state (a shadowed
// binding, or unbound) on every exit path, including panic unwind.
// body's result or panic propagates unchanged; Bind itself cannot fail.
//
// The previous state lives on this call frame, so nested Bind calls on
// the same slot shadow and un-shadow through ordinary stack unwinding.
// value is borrowed: the caller keeps ownership and must keep it valid
// until Bind returns.
func Bind[T, R any](s *Slot[T], value *T, body func() R) R {
	g := goid.Get()
	sh := s.shard(g)
	prev, had := sh.install(g, value)
	defer sh.restore(g, prev, had)
	return body()
}

// With passes the current binding of s on the calling goroutine to
// consumer and returns consumer's result. The reference is valid only
// inside consumer; it must not be retained past the call.
//
// Calling With outside any enclosing Bind for s on this goroutine is a
// usage error and panics with [*UnboundError]. Use [Slot.IsBound] to probe
// without faulting.
func With[T, R any](s *Slot[T], consumer func(*T) R) R {
	g := goid.Get()
	v, ok := s.shard(g).lookup(g)
	if !ok {
		panic(&UnboundError{Slot: s.String()})
	}
	return consumer(v)
}
