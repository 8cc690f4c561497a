package util

import "math/rand"

// New returns a deterministic source for the given seed. A zero seed maps
// to 1 so "unset" still produces a reproducible battle.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
