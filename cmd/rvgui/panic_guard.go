package main

import (
	"fmt"

	"github.com/oukeidos/rvgui/internal/logger"
)

// withPanicGuard runs fn and turns a panic into a logged error so shutdown
// hooks still run and unsaved settings get their final checkpoint.
func withPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}

// runGuarded executes fn and reports a recovered panic as an error.
func runGuarded(scope string, fn func() error) (err error) {
	withPanicGuard(scope, func(r any) {
		err = fmt.Errorf("internal error in %s: %v", scope, r)
	}, func() {
		err = fn()
	})
	return err
}
