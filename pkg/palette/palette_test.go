package palette

import (
	"testing"

	"github.com/matzehuels/floorsmith/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key  string
		w, h float64
	}{
		{"living", 16, 12},
		{"Master", 14, 14},
		{" corridor ", 20, 4},
		{"balcony", 10, 6},
	}
	for _, tt := range tests {
		it, err := Lookup(tt.key)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.key, err)
			continue
		}
		if it.W != tt.w || it.H != tt.h {
			t.Errorf("Lookup(%q) = %gx%g, want %gx%g", tt.key, it.W, it.H, tt.w, tt.h)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("ballroom")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Lookup(ballroom) err = %v, want NOT_FOUND", err)
	}
}

func TestLookupMalformed(t *testing.T) {
	for _, key := range []string{"", "   ", "room<script>"} {
		if _, err := Lookup(key); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Lookup(%q) err = %v, want INVALID_INPUT", key, err)
		}
	}
}

func TestItemsIsCopy(t *testing.T) {
	a := Items()
	a[0].W = 999
	if Items()[0].W == 999 {
		t.Error("Items should return a copy")
	}
	if len(a) != 12 {
		t.Errorf("len(Items()) = %d, want 12", len(a))
	}
}
