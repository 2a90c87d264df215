package abbrevfile

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/sentseg"
)

func TestReader(t *testing.T) {
	src := strings.NewReader(`\lexicon{
, but 3
}
\whitelist{
% titles
Mr.
U. S.
}`)
	r := NewReader(src)
	abbrev, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if abbrev != "Mr." {
		t.Fatalf("abbreviation mismatch: got %q", abbrev)
	}
	abbrev, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if abbrev != "U. S." {
		t.Fatalf("abbreviation mismatch: got %q", abbrev)
	}
	_, err = r.Next()
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestLoadWhitelist(t *testing.T) {
	wl, err := LoadWhitelist(strings.NewReader(`\whitelist{
Dr.
e.g.
U. S.
}`))
	if err != nil {
		t.Fatal(err)
	}
	if wl.Len() != 3 {
		t.Fatalf("expected 3 entries, have %d", wl.Len())
	}
	for _, abbrev := range []string{"Dr.", "e.g.", "U.S.", "U. S."} {
		if !wl.Contains(abbrev) {
			t.Fatalf("expected %q to be whitelisted", abbrev)
		}
	}
}

func TestAddToAffectsSplitting(t *testing.T) {
	text := "Prof. Smith went home. He was tired."
	cfg := &sentseg.Config{Whitelist: sentseg.NewWhitelist()}
	if s := sentseg.Split(text, sentseg.EN, cfg); len(s) != 3 {
		t.Fatalf("without whitelist expected 3 sentences, have %q", s)
	}
	if err := AddTo(cfg.Whitelist, strings.NewReader("\\whitelist{\nProf.\n}")); err != nil {
		t.Fatal(err)
	}
	if s := sentseg.Split(text, sentseg.EN, cfg); len(s) != 2 {
		t.Fatalf("with whitelist expected 2 sentences, have %q", s)
	}
}
