// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package async waits synchronously for work started on another goroutine.
package async

import (
	"context"
	"fmt"
	"runtime/debug"
)

// PanicError is returned when the function run by [RunSync] panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// RunSync runs fn on a new goroutine and blocks until it returns.
//
// A panic in fn is recovered and returned as a *[PanicError]. If ctx is
// done first, RunSync returns ctx.Err() without waiting; fn receives the
// same ctx and is expected to stop on its own.
func RunSync[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}

	// Buffered so the goroutine never blocks once nobody is waiting.
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: &PanicError{Value: r, Stack: debug.Stack()}}
			}
		}()

		v, err := fn(ctx)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Run is like [RunSync] for functions without a result.
func Run(ctx context.Context, fn func(context.Context) error) error {
	_, err := RunSync(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
