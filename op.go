// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"code.hybscloud.com/kont"
	"github.com/petermattis/goid"
)

// Ask is the effect operation for reading the current binding of a slot.
// Perform(Ask[T]{Slot: s}) yields the bound *T on the evaluating
// goroutine.
type Ask[T any] struct {
	kont.Phantom[*T]
	Slot *Slot[T]
}

// DispatchSlot handles Ask against the calling goroutine's state.
// Faults with *UnboundError when no binding is active, the same policy
// as With.
func (a Ask[T]) DispatchSlot() kont.Resumed {
	g := goid.Get()
	v, ok := a.Slot.shard(g).lookup(g)
	if !ok {
		panic(&UnboundError{Slot: a.Slot.String()})
	}
	return v
}

// Bound is the effect operation for probing whether a slot has an active
// binding. Perform(Bound[T]{Slot: s}) yields a bool and never faults.
type Bound[T any] struct {
	kont.Phantom[bool]
	Slot *Slot[T]
}

// DispatchSlot handles Bound against the calling goroutine's state.
func (b Bound[T]) DispatchSlot() kont.Resumed {
	return b.Slot.IsBound()
}

// slotDispatcher is the structural interface for slot operations.
// DispatchSlot reads the calling goroutine's state, so dispatch must run
// on the goroutine whose bindings the computation means to observe.
type slotDispatcher interface {
	DispatchSlot() kont.Resumed
}
