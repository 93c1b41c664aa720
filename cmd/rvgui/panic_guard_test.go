package main

import (
	"errors"
	"strings"
	"testing"
)

func TestWithPanicGuardRecovers(t *testing.T) {
	called := false
	withPanicGuard("test.guard", func(any) {
		called = true
	}, func() {
		panic("boom")
	})
	if !called {
		t.Fatalf("panic callback was not called")
	}
}

func TestWithPanicGuardNoPanic(t *testing.T) {
	called := false
	withPanicGuard("test.guard.no_panic", func(any) {
		called = true
	}, func() {})
	if called {
		t.Fatalf("panic callback should not be called")
	}
}

func TestRunGuarded(t *testing.T) {
	t.Run("panic_becomes_error", func(t *testing.T) {
		err := runGuarded("test.run", func() error { panic("boom") })
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected error carrying the panic value, got %v", err)
		}
	})

	t.Run("error_passes_through", func(t *testing.T) {
		sentinel := errors.New("failed")
		if err := runGuarded("test.run", func() error { return sentinel }); !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
	})
}
