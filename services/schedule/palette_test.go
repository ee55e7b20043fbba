package schedule

import "testing"

func TestColorForIsStable(t *testing.T) {
	a := ColorFor("staff-a")
	for i := 0; i < 10; i++ {
		if got := ColorFor("staff-a"); got != a {
			t.Fatalf("color changed across calls: %s != %s", got, a)
		}
	}
}

func TestColorForIndependentOfSelectionOrder(t *testing.T) {
	// Colors key off the staff ID itself, so reordering a selection cannot
	// reassign anyone's color.
	ids := []string{"s1", "s2", "s3"}
	before := map[string]string{}
	for _, id := range ids {
		before[id] = ColorFor(id)
	}
	reordered := []string{"s3", "s1", "s2"}
	for _, id := range reordered {
		if ColorFor(id) != before[id] {
			t.Fatalf("color for %s changed with selection order", id)
		}
	}
}

func TestColorForInPalette(t *testing.T) {
	known := map[string]bool{}
	for _, c := range palette {
		known[c] = true
	}
	if !known[ColorFor("any-id-at-all")] {
		t.Fatalf("ColorFor returned a color outside the palette")
	}
}
