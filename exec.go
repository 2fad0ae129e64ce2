// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"code.hybscloud.com/kont"
)

// slotHandler implements kont.Handler for slot effects. Dispatch runs on
// the evaluating goroutine, so Ask and Bound observe exactly the bindings
// active around the Exec call.
type slotHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (slotHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	d, ok := op.(slotDispatcher)
	if !ok {
		panic("sls: unhandled effect in slotHandler")
	}
	return d.DispatchSlot(), true
}

// Exec runs a Cont-world computation, handling slot effects on the
// calling goroutine. The trampoline is synchronous, so every binding
// active at the call site stays visible for the computation's whole
// extent.
func Exec[R any](eff kont.Eff[R]) R {
	return kont.Handle(eff, slotHandler[R]{})
}

// ExecExpr runs an Expr-world computation, handling slot effects on the
// calling goroutine.
func ExecExpr[R any](expr kont.Expr[R]) R {
	return kont.HandleExpr(expr, slotHandler[R]{})
}

// ExecBound binds s to value for the dynamic extent of the computation,
// then runs it like Exec. The previous state of s is restored when the
// computation completes or unwinds.
func ExecBound[T, R any](s *Slot[T], value *T, eff kont.Eff[R]) R {
	return Bind(s, value, func() R {
		return Exec(eff)
	})
}

// ExecBoundExpr binds s to value for the dynamic extent of the Expr-world
// computation, then runs it like ExecExpr.
func ExecBoundExpr[T, R any](s *Slot[T], value *T, expr kont.Expr[R]) R {
	return Bind(s, value, func() R {
		return ExecExpr(expr)
	})
}
