// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetMemoizes(t *testing.T) {
	var (
		c     Cache[string, int]
		calls int
	)
	fill := func(s string) int {
		calls++
		n, _ := strconv.Atoi(s)
		return n
	}
	for i := 0; i < 3; i++ {
		if got := c.Get("42", fill); got != 42 {
			t.Fatalf(`Get("42") = %d, want 42`, got)
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestGetBounded(t *testing.T) {
	c := Cache[int, int]{MaxSize: 4}
	for i := 0; i < 100; i++ {
		if got := c.Get(i, func(k int) int { return k * k }); got != i*i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i*i)
		}
		if n := c.Len(); n > 4 {
			t.Fatalf("Len() = %d after %d inserts, want <= 4", n, i+1)
		}
	}
	c.Flush()
	if n := c.Len(); n != 0 {
		t.Errorf("Len() = %d after Flush, want 0", n)
	}
}

func TestGetConcurrent(t *testing.T) {
	var (
		c  Cache[int, string]
		wg sync.WaitGroup
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if got, want := c.Get(i%50, strconv.Itoa), strconv.Itoa(i%50); got != want {
					t.Errorf("Get(%d) = %q, want %q", i%50, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
