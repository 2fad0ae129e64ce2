// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"strconv"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"github.com/petermattis/goid"
)

// shardCount is the number of goroutine-id stripes per slot.
// Power of two so stripe selection is a mask. 32 spreads lock words
// enough that unrelated goroutines rarely share one while keeping an
// idle slot small.
const shardCount = 32

// shard holds the bindings of one goroutine-id stripe.
// lock is a CAS spinlock word: 0 free, 1 held. Critical sections are a
// couple of map operations, so spinning with adaptive backoff is cheaper
// than parking the goroutine.
type shard[T any] struct {
	lock     atomix.Uint32
	bindings map[int64]*T
}

func (sh *shard[T]) acquire() {
	var bo iox.Backoff
	for !sh.lock.CompareAndSwap(0, 1) {
		bo.Wait()
	}
}

func (sh *shard[T]) release() {
	sh.lock.Store(0)
}

// install records value as the current binding for goroutine g and
// returns the state it replaces. The map is created lazily on the first
// binding that reaches this stripe.
func (sh *shard[T]) install(g int64, value *T) (prev *T, had bool) {
	sh.acquire()
	if sh.bindings == nil {
		sh.bindings = make(map[int64]*T)
	}
	prev, had = sh.bindings[g]
	sh.bindings[g] = value
	sh.release()
	return prev, had
}

// restore puts back the state captured by the matching install. The
// outermost restore removes the entry entirely, so the table holds no
// trace of goroutines without an active binding and a finished goroutine
// leaves nothing to tear down.
func (sh *shard[T]) restore(g int64, prev *T, had bool) {
	sh.acquire()
	if had {
		sh.bindings[g] = prev
	} else {
		delete(sh.bindings, g)
	}
	sh.release()
}

func (sh *shard[T]) lookup(g int64) (value *T, ok bool) {
	sh.acquire()
	value, ok = sh.bindings[g]
	sh.release()
	return value, ok
}

// Slot is a scoped goroutine-local storage location for values of type T.
//
// Declare slots as package-level variables with [New]; each declared slot
// has exactly one independent binding per goroutine, installed by [Bind]
// and read by [With]. A slot never owns the bound value: it keeps the
// caller's pointer for the duration of one Bind call and nothing longer.
type Slot[T any] struct {
	name   string
	serial Serial
	shards [shardCount]shard[T]
}

// New declares a slot for values of type T. The name appears in
// diagnostics ([UnboundError], fmt verbs); it carries no identity, two
// slots declared with the same name are still distinct.
func New[T any](name string) *Slot[T] {
	return &Slot[T]{name: name, serial: nextSerial()}
}

func (s *Slot[T]) shard(g int64) *shard[T] {
	return &s.shards[uint64(g)&(shardCount-1)]
}

// IsBound reports whether the slot has an active binding on the calling
// goroutine, without touching the value. Never fails.
func (s *Slot[T]) IsBound() bool {
	g := goid.Get()
	_, ok := s.shard(g).lookup(g)
	return ok
}

// Serial returns the serial number assigned to this slot at declaration.
func (s *Slot[T]) Serial() Serial {
	return s.serial
}

// String returns the declared name, or "slot#N" for unnamed slots.
func (s *Slot[T]) String() string {
	if s.name != "" {
		return s.name
	}
	return "slot#" + strconv.FormatUint(uint64(s.serial), 10)
}
