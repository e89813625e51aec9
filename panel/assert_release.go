//go:build !panelassert

package panel

// AssertSorted is a no-op in production builds; compile with the
// panelassert build tag to enable the check.
func AssertSorted(h []uint64) {}
