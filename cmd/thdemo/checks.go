package main

import (
	"sync/atomic"
	"unsafe"

	"github.com/spboyer/testhelper/th"
	"golang.org/x/sync/errgroup"
)

// sample is one check; it reports through r and returns the outcome.
type sample func(r *th.Reporter) bool

var samples = []sample{
	func(r *th.Reporter) bool {
		return r.Check(len("hello") == 5, "len(%q) is %d", "hello", 5)
	},
	func(r *th.Reporter) bool {
		return th.CheckEqWith(r, int32(1+2), int32(3), "1+2 = %d, want %d")
	},
	func(r *th.Reporter) bool {
		return th.CheckNotEqWith(r, uint32(0), uint32(1<<31), "%d should differ from %d")
	},
	func(r *th.Reporter) bool {
		buf := make([]byte, 8)
		return th.CheckEqWith(r, unsafe.Pointer(&buf[0]), unsafe.Pointer(unsafe.SliceData(buf)), "%p should be %p")
	},
	func(r *th.Reporter) bool {
		buf := make([]byte, 8)
		return th.CheckNotEqWith(r, unsafe.Pointer(&buf[0]), unsafe.Pointer(&buf[1]), "%p should differ from %p")
	},
	func(r *th.Reporter) bool {
		v := new(int32)
		return r.CheckNotNull(unsafe.Pointer(v), "allocation at %p")
	},
	func(r *th.Reporter) bool {
		for i := range 3 {
			msg, err := th.FormatMessage(r.Capacity(), "iteration %d: got %%d, want %%d", i)
			if err != nil {
				return r.Report(false, err.Error())
			}
			if !r.CheckEqInt32(int32(i*i), int32(i)*int32(i), msg) {
				return false
			}
		}
		return true
	},
}

// runChecks runs every sample against r and returns how many passed.
func runChecks(r *th.Reporter, checks []sample, parallel bool) (passed, total int) {
	if !parallel {
		for _, check := range checks {
			if check(r) {
				passed++
			}
		}
		return passed, len(checks)
	}

	var n atomic.Int64
	eg := errgroup.Group{}
	for _, check := range checks {
		eg.Go(func() error {
			if check(r) {
				n.Add(1)
			}
			return nil
		})
	}
	_ = eg.Wait()

	return int(n.Load()), len(checks)
}
