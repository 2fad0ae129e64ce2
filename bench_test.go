// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls_test

import (
	"testing"

	"code.hybscloud.com/sls"
)

// BenchmarkBindWith measures one full bind/read/restore cycle.
func BenchmarkBindWith(b *testing.B) {
	slot := sls.New[int]("bench-bind-with")
	b.ReportAllocs()
	n := 42
	for b.Loop() {
		sls.Bind(slot, &n, func() int {
			return sls.With(slot, func(v *int) int { return *v })
		})
	}
}

// BenchmarkWith measures a read inside one long-lived binding.
func BenchmarkWith(b *testing.B) {
	slot := sls.New[int]("bench-with")
	n := 42
	sls.Bind(slot, &n, func() struct{} {
		b.ReportAllocs()
		for b.Loop() {
			sls.With(slot, func(v *int) int { return *v })
		}
		return struct{}{}
	})
}

// BenchmarkIsBound measures the probe on an unbound slot.
func BenchmarkIsBound(b *testing.B) {
	slot := sls.New[int]("bench-isbound")
	b.ReportAllocs()
	for b.Loop() {
		slot.IsBound()
	}
}

// BenchmarkBindNested measures a two-level shadowed bind cycle.
func BenchmarkBindNested(b *testing.B) {
	slot := sls.New[int]("bench-nested")
	b.ReportAllocs()
	outer, inner := 1, 2
	for b.Loop() {
		sls.Bind(slot, &outer, func() int {
			return sls.Bind(slot, &inner, func() int {
				return sls.With(slot, func(v *int) int { return *v })
			})
		})
	}
}

// BenchmarkExecBoundAsk measures an effect-world read round-trip.
func BenchmarkExecBoundAsk(b *testing.B) {
	slot := sls.New[int]("bench-eff")
	b.ReportAllocs()
	n := 42
	for b.Loop() {
		sls.ExecBound(slot, &n, sls.AskDone(slot, func(v *int) int { return *v }))
	}
}

// BenchmarkBindWithParallel measures contended bind/read cycles across
// goroutines hitting the same slot's shards.
func BenchmarkBindWithParallel(b *testing.B) {
	slot := sls.New[int]("bench-parallel")
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		n := 7
		for pb.Next() {
			sls.Bind(slot, &n, func() int {
				return sls.With(slot, func(v *int) int { return *v })
			})
		}
	})
}
