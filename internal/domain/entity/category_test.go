package entity

import "testing"

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %q", c, got)
		}
	}
}

func TestParseCategoryRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "food", "SPORTS", "Food "} {
		if _, err := ParseCategory(raw); err == nil {
			t.Errorf("ParseCategory(%q) accepted", raw)
		}
	}
}

func TestCategoriesComplete(t *testing.T) {
	if len(Categories()) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(Categories()))
	}
}
