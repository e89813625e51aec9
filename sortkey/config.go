// Package sortkey implements the stable 64-bit key-sort primitives that
// feed the panel builder: a dense-range counting sort, an LSD radix sort
// (8-bit and 16-bit digit variants, plus a parallel count-accumulation
// path), and the dispatcher that picks between them.
package sortkey

// Config is a plain configuration struct threaded through every sort
// call. There is no package-level state: two callers with different
// Configs never interfere with each other.
type Config struct {
	// DenseThreshold is the range width below which CountingSort is used
	// instead of a radix sort. The default matches the spec's mandated
	// cutoff of 2^24.
	DenseThreshold uint64

	// DigitBits selects the radix digit width: 8 or 16. Any other value
	// is treated as 16.
	DigitBits int

	// Workers is the goroutine fan-out used by the parallel radix count
	// phase. The spec fixes this at 4 (one goroutine per digit position
	// in the 16-bit layout); Workers is kept configurable for testing but
	// ParallelRadixSort16 only ever spawns exactly 4.
	Workers int

	// Verbose, when true, is threaded through to callers that want to log
	// which path was chosen. The core itself never logs.
	Verbose bool
}

// DefaultConfig returns the spec-mandated defaults: a dense-range
// threshold of 2^24 and 16-bit radix digits.
func DefaultConfig() Config {
	return Config{
		DenseThreshold: 1 << 24,
		DigitBits:      16,
		Workers:        4,
	}
}
