package symtab

import "testing"

func TestPagedMapLookup(t *testing.T) {
	var m PagedMap
	m.Set('。', 0x01)
	m.Add("!?", 0x02)
	m.Add("?", 0x04)
	tests := []struct {
		r    rune
		want uint16
	}{
		{'。', 0x01},
		{'!', 0x02},
		{'?', 0x06},
		{'a', 0},
		{'中', 0},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := m.Lookup(tt.r); got != tt.want {
			t.Fatalf("lookup %q: got %#x, want %#x", tt.r, got, tt.want)
		}
	}
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, have %d", m.NumPages())
	}
}

func TestPagedMapClear(t *testing.T) {
	var m PagedMap
	m.Set('x', 0x10)
	m.Set('x', 0)
	if m.Lookup('x') != 0 {
		t.Fatalf("expected cleared entry for 'x'")
	}
	m.Set('y'+0x100, 0) // must not allocate a page
	if m.NumPages() != 1 {
		t.Fatalf("expected 1 page, have %d", m.NumPages())
	}
}

func TestPagedMapRangeAndAstral(t *testing.T) {
	var m PagedMap
	m.AddRange('0', '9', 0x80)
	for r := '0'; r <= '9'; r++ {
		if m.Lookup(r) != 0x80 {
			t.Fatalf("expected digit category for %q", r)
		}
	}
	m.Set(0x20000, 0x40)
	if m.Lookup(0x20000) != 0x40 {
		t.Fatalf("astral code-point lost")
	}
	m.Set(0x20000, 0)
	if m.Lookup(0x20000) != 0 {
		t.Fatalf("astral code-point not cleared")
	}
}
