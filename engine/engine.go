// Package engine is the single stable entry point a host tool embeds
// against: sort-key dispatch, panel (group boundary) construction, and
// per-group numeric reduction, with no host-specific types leaking through.
package engine

import (
	"panelsort/panel"
	"panelsort/reduce"
	"panelsort/sortkey"
)

// Config controls the sort-key dispatcher's thresholds and parallelism.
type Config = sortkey.Config

// DefaultConfig returns the package's recommended defaults.
func DefaultConfig() Config {
	return sortkey.DefaultConfig()
}

// SortHash stably sorts h ascending in place and permutes idx in place to
// match, whichever algorithm the dispatcher picks.
func SortHash(cfg Config, h []uint64, idx []int) error {
	return sortkey.SortHash(cfg, h, idx)
}

// PanelSetup builds group boundaries over a 64-bit key stream already
// sorted in h's order (see sortkey.SortHash). The returned slice has one
// more entry than there are groups: group g spans [info[g], info[g+1]).
func PanelSetup(h []uint64) []int {
	return panel.Build(h)
}

// PanelSetup128 is PanelSetup's 128-bit, collision-aware counterpart: h1 is
// the primary sort key (already sorted), h2 is the secondary key used to
// detect and repair 64-bit hash collisions within a block, and idx is the
// permutation PanelSetup128 refines in place for any colliding block.
func PanelSetup128(h1, h2 []uint64, idx []int) (panel.Result128, error) {
	return panel.Build128(h1, h2, idx)
}

// Reduce runs the named reduction over v[start:end]. name is resolved via
// FunCode; callers that already hold a code should call FunApply directly
// to skip the string lookup.
func Reduce(name string, v []float64, start, end int) (float64, error) {
	code, err := reduce.Code(name)
	if err != nil {
		return 0, err
	}
	return reduce.Apply(code, v, start, end), nil
}

// FunCode resolves a reduction's name to its numeric dispatch code.
func FunCode(name string) (float64, error) {
	return reduce.Code(name)
}

// FunApply runs the reduction identified by code over v[start:end].
func FunApply(code float64, v []float64, start, end int) float64 {
	return reduce.Apply(code, v, start, end)
}
