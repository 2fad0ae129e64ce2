// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

// UnboundError is the panic value raised when a slot is read while no
// binding is active on the calling goroutine. It marks a usage error,
// not a runtime condition: the read site sits outside every Bind for
// that slot on that goroutine, and there is no value to hand back.
// Recovering it to continue is not intended use.
type UnboundError struct {
	// Slot is the diagnostic name of the slot, as returned by Slot.String.
	Slot string
}

func (e *UnboundError) Error() string {
	return "sls: slot " + e.Slot + " is unbound on this goroutine"
}
