// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func askBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(*T) kont.Expr[B])
	result := f(current.(*T))
	return kont.Erased(result.Value), result.Frame
}

// ExprAskBind reads the current binding of s and passes it to f.
// Fuses ExprPerform(Ask[T]{Slot: s}) + ExprBind.
func ExprAskBind[T, B any](s *Slot[T], f func(*T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = askBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Ask[T]{Slot: s}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func boundBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(bool) kont.Expr[B])
	result := f(current.(bool))
	return kont.Erased(result.Value), result.Frame
}

// ExprBoundBind probes whether s is bound and passes the answer to f.
// Fuses ExprPerform(Bound[T]{Slot: s}) + ExprBind.
func ExprBoundBind[T, B any](s *Slot[T], f func(bool) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = boundBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Bound[T]{Slot: s}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
