package main

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// seedFrom hashes a seed name so the same name replays the same placement
// An empty name seeds from the clock
func seedFrom(name string) int64 {
	if name == "" {
		return time.Now().UnixNano()
	}
	return int64(xxhash.Sum64String(name))
}
