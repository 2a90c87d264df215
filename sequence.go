package sentseg

import (
	"strings"
	"unicode"
)

// Sequence is a cursor over the code-points of an input text. It is the single
// piece of mutable state of the automaton: conditions read it, operations
// modify it.
//
// Runes in [start, pointer) form the candidate sentence; they have been
// visited and their brackets and quotes are registered in the counters. The
// rune at pointer is the current one; it has not been registered yet.
type Sequence struct {
	runes     []rune
	cats      []Category
	pointer   int      // v_pointer: current read position, 0 ≤ pointer ≤ len(runes)
	start     int      // sentence_start: first position of the candidate
	sentences []string // committed sentences in document order

	bracketOpen  int // opening brackets visited since last reset
	bracketClose int // closing brackets visited since last reset
	bookOpen     int
	bookClose    int
	quotaLeft    int // depth of directional quotes
	quotaEn      int // number of non-directional quotes, balanced if even

	longDeferred bool // a long span found no cut point up to pointer
	cut          int  // cut position chosen by a long handler, -1 if none
}

// NewSequence creates a cursor for text, classifying code-points with cl.
// If cl is nil, the default classifier is used.
func NewSequence(text string, cl Classifier) *Sequence {
	seq := &Sequence{}
	seq.Reset(text, cl)
	return seq
}

// Reset re-initializes a sequence for a new text, re-using its buffers.
func (seq *Sequence) Reset(text string, cl Classifier) {
	if cl == nil {
		cl = DefaultClassifier()
	}
	seq.runes = append(seq.runes[:0], []rune(text)...)
	seq.cats = seq.cats[:0]
	for _, r := range seq.runes {
		seq.cats = append(seq.cats, cl.Classify(r))
	}
	seq.pointer, seq.start = 0, 0
	seq.sentences = seq.sentences[:0]
	seq.ResetQuota()
	seq.ResetBracket()
	seq.longDeferred = false
	seq.cut = -1
}

// Len returns the number of code-points of the text.
func (seq *Sequence) Len() int { return len(seq.runes) }

// Pointer returns the current read position.
func (seq *Sequence) Pointer() int { return seq.pointer }

// Start returns the position where the current candidate sentence began.
func (seq *Sequence) Start() int { return seq.start }

// Span returns the length of the candidate, excluding the current rune.
func (seq *Sequence) Span() int { return seq.pointer - seq.start }

// At returns the rune at position i or 0 if i is out of range.
func (seq *Sequence) At(i int) rune {
	if i < 0 || i >= len(seq.runes) {
		return 0
	}
	return seq.runes[i]
}

// CategoryAt returns the categories of the rune at position i or 0 if i is
// out of range.
func (seq *Sequence) CategoryAt(i int) Category {
	if i < 0 || i >= len(seq.cats) {
		return 0
	}
	return seq.cats[i]
}

// Current returns the rune at the read position, 0 at the end of input.
func (seq *Sequence) Current() rune { return seq.At(seq.pointer) }

// Previous returns the rune before the read position, 0 at the start of input.
func (seq *Sequence) Previous() rune { return seq.At(seq.pointer - 1) }

// Next returns the rune after the read position, 0 past the end of input.
func (seq *Sequence) Next() rune { return seq.At(seq.pointer + 1) }

// AtEnd is true if the read position has reached the end of input.
func (seq *Sequence) AtEnd() bool { return seq.pointer >= len(seq.runes) }

// Sentences returns the sentences committed so far. The slice is owned by
// the sequence and valid until the next Reset.
func (seq *Sequence) Sentences() []string { return seq.sentences }

// Advance moves the read position forward by one, without registering
// the current rune.
func (seq *Sequence) Advance() {
	if seq.pointer < len(seq.runes) {
		seq.pointer++
	}
}

// AddToCandidate registers the current rune with the bracket and quote
// counters and advances.
func (seq *Sequence) AddToCandidate() {
	if seq.AtEnd() {
		return
	}
	seq.register(seq.pointer)
	seq.pointer++
}

func (seq *Sequence) register(i int) {
	c := seq.cats[i]
	if c.Is(QuoteLeft|QuoteRight|QuoteEn) && !seq.countsAsQuote(i) {
		return
	}
	switch {
	case c.Is(BracketLeft):
		seq.bracketOpen++
	case c.Is(BracketRight):
		seq.bracketClose++
	case c.Is(BookLeft):
		seq.bookOpen++
	case c.Is(BookRight):
		seq.bookClose++
	case c.Is(QuoteLeft):
		seq.quotaLeft++
	case c.Is(QuoteRight):
		if seq.quotaLeft > 0 {
			seq.quotaLeft--
		}
	case c.Is(QuoteEn):
		seq.quotaEn++
	}
}

// AddToSentenceList commits the candidate up to and including the current
// rune. A leading run of white space is trimmed and an empty sentence is
// dropped. The candidate restarts just after the cut, which is also where
// the read position moves to. Counters are cleared.
func (seq *Sequence) AddToSentenceList() {
	end := min(seq.pointer, len(seq.runes)-1)
	seq.commit(end)
	seq.pointer = seq.start
	seq.ResetQuota()
	seq.ResetBracket()
	seq.longDeferred = false
	seq.cut = -1
}

// commitPrefix commits [start, end] but leaves the read position untouched.
// Counters keep track of the runes still in the candidate.
func (seq *Sequence) commitPrefix(end int) {
	invariant(end < seq.pointer, "prefix commit must end before the read position")
	seq.commit(end)
	seq.longDeferred = false
}

func (seq *Sequence) commit(end int) {
	if end >= seq.start {
		s := strings.TrimLeftFunc(string(seq.runes[seq.start:end+1]), unicode.IsSpace)
		if s != "" {
			seq.sentences = append(seq.sentences, s)
		}
	}
	seq.start = end + 1
}

// flush commits whatever is left of the candidate at the end of input.
func (seq *Sequence) flush() {
	if seq.start < len(seq.runes) {
		seq.commit(len(seq.runes) - 1)
	}
	seq.pointer = len(seq.runes)
}

// ResetQuota zeroes the quote counters.
func (seq *Sequence) ResetQuota() {
	seq.quotaLeft, seq.quotaEn = 0, 0
}

// ResetBracket zeroes the bracket and book-title counters.
func (seq *Sequence) ResetBracket() {
	seq.bracketOpen, seq.bracketClose = 0, 0
	seq.bookOpen, seq.bookClose = 0, 0
}

// nonSpaceLen counts the runes in [from, to) which are not white space.
func (seq *Sequence) nonSpaceLen(from, to int) int {
	n := 0
	for i := max(0, from); i < to && i < len(seq.cats); i++ {
		if !seq.cats[i].Is(Space) {
			n++
		}
	}
	return n
}
