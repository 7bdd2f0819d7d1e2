package domain

import (
	"sync"
	"testing"
)

func TestIDSourceMonotonic(t *testing.T) {
	src := NewIDSource()

	prev := src.Next()
	for range 1000 {
		id := src.Next()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestIDSourceSeed(t *testing.T) {
	src := NewIDSource()
	src.Seed(1_900_000_000_000_000)

	if id := src.Next(); id <= 1_900_000_000_000_000 {
		t.Errorf("id %d not above seeded floor", id)
	}
}

func TestIDSourceConcurrent(t *testing.T) {
	src := NewIDSource()

	const goroutines, perGoroutine = 8, 200

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines*perGoroutine)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				ids <- src.Next()
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, goroutines*perGoroutine)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
	}
}
