// Package wheeltest holds test-only support shared by this module's
// _test.go files: assertion helpers and a heap-based oracle used to
// cross-check the wheel's expiry ordering.
package wheeltest

import (
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// Equal fails the test with a coloured got/want diff if got and want
// are not reflect.DeepEqual. Carried over from the teacher's
// pqueue_test.go equal helper, generalised off *cacheEntry to any.
func Equal(t *testing.T, got, want any) {
	if !reflect.DeepEqual(got, want) {
		_, file, line, _ := runtime.Caller(1)
		t.Logf("\033[37m%s:%d:\n got: %#v\nwant: %#v\033[39m\n ", filepath.Base(file), line, got, want)
		t.FailNow()
	}
}

// LessOrEqual fails the test if a > b, reporting the call site.
// Carried over from the teacher's pqueue_test.go lessThan helper.
func LessOrEqual(t *testing.T, a, b uint64) {
	if a > b {
		_, file, line, _ := runtime.Caller(1)
		t.Logf("\033[31m%s:%d:\n a: %#v\nb: %#v\033[39m\n ", filepath.Base(file), line, a, b)
		t.FailNow()
	}
}
