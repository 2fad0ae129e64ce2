// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sls

import "context"

// ctxKey is the context key for one slot. Keying on the slot pointer
// makes the key unique per declared slot without a registry.
type ctxKey[T any] struct {
	slot *Slot[T]
}

// NewContext returns a context carrying value under this slot's identity.
// The context holds the pointer with ordinary context lifetime; nothing
// becomes goroutine-locally visible until BindContext runs.
func (s *Slot[T]) NewContext(ctx context.Context, value *T) context.Context {
	return context.WithValue(ctx, ctxKey[T]{slot: s}, value)
}

// FromContext returns the value attached to ctx for this slot, if any.
// A nil ctx carries nothing.
func (s *Slot[T]) FromContext(ctx context.Context) (*T, bool) {
	if ctx == nil {
		return nil, false
	}
	v, ok := ctx.Value(ctxKey[T]{slot: s}).(*T)
	return v, ok
}

// BindContext runs body with the value carried by ctx for s bound on the
// calling goroutine for body's dynamic extent. When ctx carries no value
// for s, body runs with the slot's state untouched.
//
// This is the hand-off point between context plumbing, which crosses API
// boundaries explicitly, and goroutine-local reach, which does not.
func BindContext[T, R any](ctx context.Context, s *Slot[T], body func() R) R {
	if v, ok := s.FromContext(ctx); ok {
		return Bind(s, v, body)
	}
	return body()
}
