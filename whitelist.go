package sentseg

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// WhitelistReader yields abbreviations one-by-one.
// It should return io.EOF when the stream is exhausted.
type WhitelistReader interface {
	Next() (abbreviation string, err error)
}

// Whitelist is a set of abbreviations whose dots do not end a sentence,
// e.g. "Mr.", "e.g." or "U. S.". Entries are normalized by stripping white
// space, so "U. S." and "U.S." are the same entry. Matching is
// case-sensitive.
//
// Entries are held twice: forward, to find multi-token abbreviations
// starting at a dot, and reversed, to find the abbreviation ending at a dot.
// A Whitelist is read-only once loaded and safe for concurrent lookups.
type Whitelist struct {
	forward  *trie.Trie
	backward *trie.Trie
	size     int
	maxLen   int // length of the longest entry in runes
}

// NewWhitelist creates a whitelist from a list of abbreviations.
func NewWhitelist(entries ...string) *Whitelist {
	wl := &Whitelist{forward: trie.New(), backward: trie.New()}
	for _, e := range entries {
		wl.Add(e)
	}
	return wl
}

// LoadWhitelist loads abbreviations from a streaming, format-agnostic source.
// See package abbrevfile for an adapter.
func LoadWhitelist(reader WhitelistReader) (*Whitelist, error) {
	wl := NewWhitelist()
	for {
		abbrev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading whitelist: %w", err)
		}
		wl.Add(abbrev)
	}
	tracer().Infof("whitelist loaded with %d entries", wl.size)
	return wl, nil
}

// Add registers an abbreviation. Empty entries are ignored.
func (wl *Whitelist) Add(abbrev string) {
	key := normalizeAbbrev(abbrev)
	if key == "" {
		return
	}
	if _, found := wl.forward.Find(key); found {
		return
	}
	wl.forward.Add(key, nil)
	wl.backward.Add(reverse(key), nil)
	wl.size++
	wl.maxLen = max(wl.maxLen, utf8.RuneCountInString(key))
}

// Contains returns true if abbrev is an entry of the whitelist.
func (wl *Whitelist) Contains(abbrev string) bool {
	if wl == nil || wl.size == 0 {
		return false
	}
	_, found := wl.forward.Find(normalizeAbbrev(abbrev))
	return found
}

// Len returns the number of entries.
func (wl *Whitelist) Len() int {
	if wl == nil {
		return 0
	}
	return wl.size
}

// matchBackward checks whether an entry ends at the dot at position dot.
// The entry must start at a word boundary. White space between the runes
// of an entry is skipped.
func (wl *Whitelist) matchBackward(seq *Sequence, dot int) bool {
	key := make([]rune, 0, wl.maxLen)
	for i := dot; i >= 0 && len(key) < wl.maxLen; i-- {
		if seq.cats[i].Is(Space) {
			if i == dot || seq.CategoryAt(i-1).Is(Space) {
				return false
			}
			continue
		}
		key = append(key, seq.runes[i])
		k := string(key)
		if !wl.backward.HasKeysWithPrefix(k) {
			return false
		}
		if _, found := wl.backward.Find(k); found && !isWordRune(seq.At(i-1)) {
			return true
		}
	}
	return false
}

// matchForward looks for an entry starting at the beginning of the word
// containing the dot at position dot and ending with a dot beyond it. It
// returns the position of the final dot of the longest such entry.
func (wl *Whitelist) matchForward(seq *Sequence, dot int) (int, bool) {
	from := dot
	for from > 0 && dot-from < wl.maxLen && !seq.cats[from-1].Is(Space) {
		from--
	}
	if isWordRune(seq.At(from - 1)) {
		return -1, false
	}
	end := -1
	key := make([]rune, 0, wl.maxLen)
	for i := from; i < seq.Len() && len(key) < wl.maxLen; i++ {
		if seq.cats[i].Is(Space) {
			if seq.CategoryAt(i - 1).Is(Space) {
				break
			}
			continue
		}
		key = append(key, seq.runes[i])
		k := string(key)
		if !wl.forward.HasKeysWithPrefix(k) {
			break
		}
		if i > dot && seq.cats[i].Is(FullStop) {
			if _, found := wl.forward.Find(k); found {
				end = i
			}
		}
	}
	return end, end > dot
}

func normalizeAbbrev(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func isWordRune(r rune) bool {
	return r != 0 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
