package memctx

import "runtime/debug"

import "github.com/bnclabs/memctx/lib"

// RunWorker starts fn on its own goroutine, recovering a panic instead of
// letting it take the process down, the same defer/recover shape the
// teacher's compactor goroutine uses. fn typically owns a *Local for its
// whole lifetime, the per-thread partitioning this package expects when
// Go has no thread-local storage to lean on.
func RunWorker(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errorf("memctx: worker %q crashed: %v", name, r)
				errorf("\n%s", lib.GetStacktrace(2, debug.Stack()))
			}
		}()
		fn()
	}()
}
