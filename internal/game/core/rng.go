package core

// RNG is the randomness every component draws from. *math/rand.Rand
// satisfies it; tests substitute scripted sequences.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}
