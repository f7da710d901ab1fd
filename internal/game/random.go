package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// NewRandom returns the deterministic source a game uses for dice faces.
// A zero seed is replaced with the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Determinism matters more than unpredictability here.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "faces"), seedWord(seed, "rooms")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, salt)
	return h.Sum64()
}
