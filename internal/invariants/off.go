//go:build !invariants && !race

package invariants

// Enabled is true if we were built with the "invariants" or "race" build tags.
const Enabled = false

// CheckRows panics if rows bits shifted in below lead occupied bits overflow
// a word of the given width. No-op in non-invariant builds.
func CheckRows(rows, lead, width int) {}
