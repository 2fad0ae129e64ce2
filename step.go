// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a computation until the first slot effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](expr kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(expr)
}

// Advance dispatches the suspended slot operation and resumes the
// computation to its next effect or completion.
//
// Dispatch reads the calling goroutine's state, so Advance must run on a
// goroutine where the bindings the computation expects are active. An Ask
// dispatched while its slot is unbound faults with *UnboundError and
// leaves the suspension unresumed.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	d, ok := susp.Op().(slotDispatcher)
	if !ok {
		panic("sls: unhandled effect in Advance")
	}
	return susp.Resume(d.DispatchSlot())
}
