package schedule

import "hash/fnv"

// palette holds the block colors assigned to staff members. Order matters only
// for variety; assignment is keyed by staff ID so a staff member keeps the
// same color across sessions and selection changes.
var palette = []string{
	"#4E79A7", // blue
	"#F28E2B", // orange
	"#59A14F", // green
	"#E15759", // red
	"#B07AA1", // purple
	"#76B7B2", // teal
	"#EDC948", // yellow
	"#FF9DA7", // pink
}

// ColorFor returns the palette color for a staff member, derived from an
// FNV-1a hash of the staff ID.
func ColorFor(staffID string) string {
	h := fnv.New32a()
	h.Write([]byte(staffID))
	return palette[h.Sum32()%uint32(len(palette))]
}

// PaletteSize returns the number of distinct colors available.
func PaletteSize() int {
	return len(palette)
}
