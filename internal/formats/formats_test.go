package formats

import (
	"strings"
	"testing"
)

func TestAll_Order(t *testing.T) {
	want := []Key{Lossless, Compatible, Balanced, Compact}
	got := Keys()
	if len(got) != len(want) {
		t.Fatalf("got %d formats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("format[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAll_UniqueKeysAndExtensions(t *testing.T) {
	keys := map[Key]bool{}
	exts := map[string]bool{}
	for _, s := range All() {
		if keys[s.Key] {
			t.Errorf("duplicate key %q", s.Key)
		}
		if exts[s.Extension] {
			t.Errorf("duplicate extension %q", s.Extension)
		}
		keys[s.Key] = true
		exts[s.Extension] = true
		if !strings.HasPrefix(s.Extension, ".") {
			t.Errorf("%s: extension %q lacks leading dot", s.Key, s.Extension)
		}
		if s.Description == "" {
			t.Errorf("%s: empty description", s.Key)
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Extension = ".bmp"
	if All()[0].Extension != ".png" {
		t.Error("mutating All() result leaked into the registry")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		key     Key
		ext     string
		kind    Kind
		quality int
	}{
		{Lossless, ".png", KindPNG, 0},
		{Compatible, ".jpg", KindJPEG, 95},
		{Balanced, ".webp", KindWebP, 90},
		{Compact, ".avif", KindAVIF, 85},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			s, err := Lookup(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if s.Extension != tt.ext || s.Options.Kind != tt.kind || s.Options.Quality != tt.quality {
				t.Errorf("Lookup(%q) = %+v", tt.key, s)
			}
		})
	}

	if _, err := Lookup("tiny"); err == nil {
		t.Error("Lookup of unknown key should fail")
	}
}

func TestNormalized(t *testing.T) {
	for _, s := range All() {
		if got, want := s.Normalized(), s.Key != Lossless; got != want {
			t.Errorf("%s: Normalized() = %v, want %v", s.Key, got, want)
		}
	}
}
