//go:build invariants || race

package invariants

import "github.com/cockroachdb/errors"

// Enabled is true if we were built with the "invariants" or "race" build tags.
const Enabled = true

// CheckRows panics if rows bits shifted in below lead occupied bits overflow
// a word of the given width.
func CheckRows(rows, lead, width int) {
	if !RowsFit(rows, lead, width) {
		panic(errors.AssertionFailedf(
			"binfield: %d rows after %d leading bits overflow a %d-bit word", rows, lead, width))
	}
}
