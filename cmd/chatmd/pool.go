package main

import "runtime"

// maxAutoWorkers caps the automatic worker count.
const maxAutoWorkers = 8

// resolvePoolSize determines the number of render workers.
// Priority: explicit flag/config > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for container CPU quotas.
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return min(n, maxAutoWorkers)
}
