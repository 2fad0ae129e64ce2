// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls_test

import (
	"testing"

	"code.hybscloud.com/sls"
)

// mustUnbound runs f and checks that it faults with *UnboundError
// naming the wanted slot. Used by every unbound-access test.
func mustUnbound(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected unbound-access fault, got none")
		}
		ue, ok := r.(*sls.UnboundError)
		if !ok {
			t.Fatalf("panic value %#v, want *sls.UnboundError", r)
		}
		if ue.Slot != want {
			t.Fatalf("fault names slot %q, want %q", ue.Slot, want)
		}
	}()
	f()
}

// value reads the current binding of s, dereferenced.
// Fails the test on unbound access instead of unwinding it.
func value[T any](t *testing.T, s *sls.Slot[T]) T {
	t.Helper()
	if !s.IsBound() {
		t.Fatalf("slot %v unexpectedly unbound", s)
	}
	return sls.With(s, func(v *T) T { return *v })
}
