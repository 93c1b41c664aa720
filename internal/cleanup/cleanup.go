package cleanup

import (
	"errors"
	"sync"
)

var (
	mu    sync.Mutex
	hooks []func() error
)

// Register adds a shutdown hook. Hooks run in LIFO order.
func Register(hook func() error) {
	if hook == nil {
		return
	}
	mu.Lock()
	hooks = append(hooks, hook)
	mu.Unlock()
}

// RunAll executes and forgets every registered hook, joining their errors.
func RunAll() error {
	mu.Lock()
	local := hooks
	hooks = nil
	mu.Unlock()

	var errs []error
	for i := len(local) - 1; i >= 0; i-- {
		if err := local[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
