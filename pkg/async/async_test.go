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

package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jlsalvador/enriched-utilities/pkg/async"
)

func TestRunSync(t *testing.T) {
	got, err := async.RunSync(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("RunSync() returned error: %v", err)
	}
	if got != 42 {
		t.Errorf("RunSync() = %d, want 42", got)
	}
}

func TestRunSync_Error(t *testing.T) {
	boom := errors.New("boom")

	_, err := async.RunSync(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("RunSync() error = %v, want %v", err, boom)
	}
}

func TestRunSync_Panic(t *testing.T) {
	_, err := async.RunSync(context.Background(), func(context.Context) (int, error) {
		panic("kaboom")
	})

	var panicErr *async.PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("RunSync() error = %v, want *PanicError", err)
	}
	if panicErr.Value != "kaboom" {
		t.Errorf("PanicError.Value = %v, want kaboom", panicErr.Value)
	}
	if len(panicErr.Stack) == 0 {
		t.Error("PanicError.Stack is empty")
	}
}

func TestRunSync_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	defer close(release)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := async.RunSync(ctx, func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunSync() error = %v, want context.Canceled", err)
	}
}

func TestRun(t *testing.T) {
	called := false
	if err := async.Run(context.Background(), func(context.Context) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !called {
		t.Error("Run() did not call the function")
	}
}
