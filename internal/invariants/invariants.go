// Package invariants holds checks that only run in builds made with the
// "invariants" or "race" build tags.
package invariants

// RowsFit reports whether rows result bits shifted in below lead bits that
// are already in the accumulator fit in a word of the given width.
func RowsFit(rows, lead, width int) bool {
	return lead+rows <= width
}
