// Package notify dispatches Observer callbacks off the goroutine that
// is mutating a Wheel, the way expiration_manager.go's onExpired
// plumbing in the teacher repo always fires user callbacks through
// robin.RightNow().Do(...) rather than calling them inline on the
// path that holds the cache's locks.
package notify

import "github.com/jiansoft/robin"

// Dispatcher runs fn, possibly asynchronously.
type Dispatcher interface {
	Dispatch(fn func())
}

// RobinDispatcher runs fn on robin's default fire-and-forget
// scheduler, matching the teacher's robin.RightNow().Do(...) calls in
// coherent.go. A slow or blocking Observer callback can never stall
// the goroutine driving Advance/Touch/Start.
type RobinDispatcher struct{}

func (RobinDispatcher) Dispatch(fn func()) {
	robin.RightNow().Do(fn)
}

// SyncDispatcher runs fn inline. Used by tests that need to assert on
// an Observer's state immediately after triggering a notification,
// without racing a background goroutine.
type SyncDispatcher struct{}

func (SyncDispatcher) Dispatch(fn func()) {
	fn()
}
