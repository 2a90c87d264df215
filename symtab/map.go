/*
Package symtab holds compact lookup tables from code-points to symbol
categories.

Categories are opaque 16-bit sets to this package; package sentseg defines
their meaning.
*/
package symtab

// PagedMap maps code-points to 16-bit category sets.
// BMP code-points are held in a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Code-points outside the BMP are rare in punctuation and live in a
// plain map.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Memory:
//   - Top: 256 * 2 = 512 bytes
//   - Each populated page: 256 * 2 = 512 bytes
//
// A table touching the Latin, general punctuation, CJK punctuation and
// fullwidth blocks needs ~4 KB for pages. Ideographs are not stored per
// code-point, see package sentseg.
type PagedMap struct {
	Top    [256]uint16 // page index (1-based); 0 means none
	Pages  []uint16    // flat: NumPages*256
	astral map[rune]uint16
}

// Lookup returns the category set for a code-point, 0 if absent.
func (m *PagedMap) Lookup(r rune) uint16 {
	if r < 0 {
		return 0
	}
	if r > 0xFFFF {
		return m.astral[r]
	}
	hi := uint16(r) >> 8
	pi := m.Top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.Pages[base+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> 8 }

// EnsurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (m *PagedMap) EnsurePage(hi uint16) uint16 {
	pi := m.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 uint16 initialized to 0)
	m.Pages = append(m.Pages, make([]uint16, 256)...)
	pi = uint16(len(m.Pages) >> 8) // number of pages, 1-based index
	m.Top[hi] = pi
	return pi
}

// Set sets mapping r -> cats (cats may be 0 to clear).
func (m *PagedMap) Set(r rune, cats uint16) {
	if r < 0 {
		return
	}
	if r > 0xFFFF {
		if m.astral == nil {
			if cats == 0 {
				return
			}
			m.astral = make(map[rune]uint16)
		}
		if cats == 0 {
			delete(m.astral, r)
			return
		}
		m.astral[r] = cats
		return
	}
	hi := uint16(r) >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if cats == 0 {
			return
		}
		pi = m.EnsurePage(hi)
	}
	base := int(pi-1) << 8
	m.Pages[base+int(r&0xFF)] = cats
}

// Add merges cats into the category set of every code-point of chars.
func (m *PagedMap) Add(chars string, cats uint16) {
	for _, r := range chars {
		m.Set(r, m.Lookup(r)|cats)
	}
}

// AddRange merges cats into the category sets of code-points lo…hi (inclusive).
func (m *PagedMap) AddRange(lo, hi rune, cats uint16) {
	for r := lo; r <= hi; r++ {
		m.Set(r, m.Lookup(r)|cats)
	}
}
