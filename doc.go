// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sls provides scoped goroutine-local storage.
//
// A [Slot] is a declared, statically typed storage location with one
// independent binding per goroutine. [Bind] installs a borrowed reference
// for exactly the dynamic extent of a body closure and restores the
// previous state on every exit path, including panic unwind. [With] hands
// the current binding to a consumer closure; the reference is never
// returned or stored, so it cannot outlive the call that produced it.
//
// # Architecture
//
//   - Storage: Each slot owns a sharded goroutine-id keyed table. Shards are
//     guarded by CAS spinlocks ([code.hybscloud.com/atomix]) with adaptive
//     backoff on contention ([code.hybscloud.com/iox]).
//   - Nesting: Bind keeps the previous binding on its own call frame, so
//     shadowing restores correctly through plain stack unwinding. No list or
//     stack container exists.
//   - Isolation: A binding is visible only on the goroutine that installed
//     it. No state is shared across goroutines, so operations need no
//     ordering guarantees between them.
//   - Failure: Reading an unbound slot is a usage error and panics with
//     [*UnboundError] naming the slot. Nothing else can fail.
//
// # API Topologies
//
//   - Closure world: [New], [Bind], [With], [Slot.IsBound].
//   - Cont world: [AskBind], [AskDone], [BoundBind], [Exec], [ExecBound]
//     on [code.hybscloud.com/kont] effects.
//   - Expr world: Zero-allocation variants [ExprAskBind] and
//     [ExprBoundBind], evaluated with [ExecExpr], [ExecBoundExpr]. Bridge
//     via [Reify] and [Reflect]. Stepping via [Step] and [Advance].
//   - Context bridge: [Slot.NewContext], [Slot.FromContext], [BindContext]
//     move values between context.Context plumbing and goroutine-local
//     dynamic extent.
//
// # Example
//
//	var current = sls.New[int]("current")
//
//	n := 42
//	sum := sls.Bind(current, &n, func() int {
//		return sls.With(current, func(v *int) int { return *v + 1 })
//	})
//	// sum == 43; current.IsBound() == false again
package sls
