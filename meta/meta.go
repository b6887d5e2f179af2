// meta/meta.go
package meta

// MIN_K defines the smallest kill modulus in the default sweep.
const MIN_K = 2

// MAX_K defines the largest kill modulus in the default sweep.
const MAX_K = 14

// STATE_LIMIT defines the default cap on discovered positions per graph.
const STATE_LIMIT = 1 << 22

// SWEEP_GOROUTINES defines the number of concurrent solves during a sweep.
const SWEEP_GOROUTINES = 4
