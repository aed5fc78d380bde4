package domain

// RNG is the random source injected into challenge generation so that
// generation stays deterministic under test.
type RNG interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}
