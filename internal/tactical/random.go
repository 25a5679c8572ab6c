package tactical

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Source is the randomness behind every simulated sensor.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Source interface {
	Float64() float64 // [0, 1)
	Intn(n int) int   // [0, n)
}

// NewSource returns a seeded source. A zero seed picks one from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewID returns prefix-<uuid>.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// spread returns a uniform value in [-half, +half).
func spread(rng Source, half float64) float64 {
	return (rng.Float64() - 0.5) * 2 * half
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
