// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import (
	"code.hybscloud.com/kont"
)

// AskBind reads the current binding of s and passes it to f.
// Fuses Perform(Ask[T]{Slot: s}) + Bind.
func AskBind[T, B any](s *Slot[T], f func(*T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Ask[T]{Slot: s}), f)
}

// AskDone reads the current binding of s and completes with the value
// derived by f. Fuses Perform(Ask[T]{Slot: s}) + Bind + Pure.
func AskDone[T, A any](s *Slot[T], f func(*T) A) kont.Eff[A] {
	return kont.Bind(kont.Perform(Ask[T]{Slot: s}), func(v *T) kont.Eff[A] {
		return kont.Pure(f(v))
	})
}

// BoundBind probes whether s is bound and passes the answer to f.
// Fuses Perform(Bound[T]{Slot: s}) + Bind.
func BoundBind[T, B any](s *Slot[T], f func(bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Bound[T]{Slot: s}), f)
}
