// Package testutil holds helpers shared by package tests.
package testutil

import (
	"sync"

	dErrors "contium/pkg/domain-errors"
)

// ConcurrentResult counts how many calls of a parallel run succeeded and
// how many failed, with failures also tallied by domain code.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	ByCode    map[dErrors.Code]int32
}

// Failed returns the number of failures carrying code.
func (r *ConcurrentResult) Failed(code dErrors.Code) int32 {
	return r.ByCode[code]
}

// RunConcurrent starts n goroutines calling fn with their index and waits
// for all of them. Errors without a domain code count as internal.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	res := &ConcurrentResult{ByCode: make(map[dErrors.Code]int32)}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := range n {
		wg.Go(func() {
			err := fn(i)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				res.Successes++
				return
			}
			res.Errors++
			res.ByCode[dErrors.CodeOf(err)]++
		})
	}
	wg.Wait()
	return res
}
