package notify

import "testing"

func TestSyncDispatcherRunsInline(t *testing.T) {
	ran := false
	SyncDispatcher{}.Dispatch(func() { ran = true })
	if !ran {
		t.Fatalf("SyncDispatcher.Dispatch should run fn before returning")
	}
}
