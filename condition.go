package sentseg

import (
	"fmt"
	"strings"
	"unicode"
)

// ConditionKind enumerates the predicates the automaton may test.
type ConditionKind uint8

// Condition kinds. Unless noted otherwise, conditions do not modify the
// sequence.
const (
	CondAlways          ConditionKind = iota // always true; used for fallback edges
	CondEndState                             // read position has reached the end of input
	CondEndSymbolZH                          // current rune ends a Chinese sentence
	CondEndSymbolEN                          // current rune ends an English sentence
	CondComma                                // current rune is a comma
	CondWhitespace                           // current rune is white space
	CondBracketClose                         // brackets balanced; resets bracket counters
	CondBookClose                            // book-title marks balanced; resets book counters
	CondQuotaClose                           // quotes balanced after the current rune; resets quote counters
	CondLongSentence                         // candidate is too long
	CondShortSentence                        // candidate is too short
	CondNotInWhitelistDotEN                  // current '.' is not part of an abbreviation; may advance
	CondLeftQuotaZH                          // opening quote at offset
	CondRightQuotaZH                         // closing quote at offset
	CondLeftQuotaEN                          // opening quote at offset, English rules
	CondRightQuotaEN                         // closing quote at offset, English rules
	CondListQuota                            // any quote glyph at offset
	CondCutPending                           // a long handler has chosen a cut position
)

var conditionNames = [...]string{
	"Always", "IsEndState", "IsEndSymbolZH", "IsEndSymbolEN", "IsComma", "IsWhitespace",
	"IsBracketClose", "IsBookClose", "IsQuotaClose", "IsLongSentence", "IsShortSentence",
	"NotInWhitelistDotEN", "IsLeftQuotaZH", "IsRightQuotaZH", "IsLeftQuotaEN",
	"IsRightQuotaEN", "IsListQuota", "IsCutPending",
}

func (k ConditionKind) String() string {
	if int(k) < len(conditionNames) {
		return conditionNames[k]
	}
	return fmt.Sprintf("ConditionKind(%d)", int(k))
}

// Condition is a predicate over a Sequence. Offset is relative to the read
// position and is used by the quote conditions only.
type Condition struct {
	Kind   ConditionKind
	Negate bool
	Offset int
}

// Is creates a condition of kind k.
func Is(k ConditionKind) Condition {
	return Condition{Kind: k}
}

// Not creates the negation of a condition of kind k.
func Not(k ConditionKind) Condition {
	return Condition{Kind: k, Negate: true}
}

// At returns a copy of c looking at the rune at offset from the read position.
func (c Condition) At(offset int) Condition {
	c.Offset = offset
	return c
}

func (c Condition) String() string {
	var b strings.Builder
	if c.Negate {
		b.WriteString("!")
	}
	b.WriteString(c.Kind.String())
	if c.Offset != 0 {
		fmt.Fprintf(&b, "@%+d", c.Offset)
	}
	return b.String()
}

// eval evaluates a condition. This is the single dispatch point for all
// condition kinds.
func (c Condition) eval(seq *Sequence, cfg *Config) bool {
	var r bool
	switch c.Kind {
	case CondAlways:
		r = true
	case CondEndState:
		r = seq.AtEnd()
	case CondEndSymbolZH:
		r = isEndSymbolZH(seq)
	case CondEndSymbolEN:
		r = isEndSymbolEN(seq)
	case CondComma:
		r = seq.CategoryAt(seq.pointer).Is(Comma)
	case CondWhitespace:
		r = seq.CategoryAt(seq.pointer).Is(Space)
	case CondBracketClose:
		r = isBracketClose(seq)
	case CondBookClose:
		r = isBookClose(seq)
	case CondQuotaClose:
		r = isQuotaClose(seq)
	case CondLongSentence:
		r = isLongSentence(seq, cfg)
	case CondShortSentence:
		r = isShortSentence(seq, cfg)
	case CondNotInWhitelistDotEN:
		r = notInWhitelistDotEN(seq, cfg)
	case CondLeftQuotaZH:
		r = isLeftQuota(seq, seq.pointer+c.Offset, false)
	case CondRightQuotaZH:
		r = isRightQuota(seq, seq.pointer+c.Offset, false)
	case CondLeftQuotaEN:
		r = isLeftQuota(seq, seq.pointer+c.Offset, true)
	case CondRightQuotaEN:
		r = isRightQuota(seq, seq.pointer+c.Offset, true)
	case CondListQuota:
		r = seq.CategoryAt(seq.pointer + c.Offset).Is(QuoteLeft | QuoteRight | QuoteEn)
	case CondCutPending:
		r = seq.cut >= 0
	default:
		panic(fmt.Sprintf("unknown condition kind %d", c.Kind))
	}
	return r != c.Negate
}

// --- End symbols -----------------------------------------------------------

// Chinese: an end mark not followed by another end mark, or a '.' followed by
// an ideograph, white space or the end of input.
func isEndSymbolZH(seq *Sequence) bool {
	c := seq.CategoryAt(seq.pointer)
	next := seq.CategoryAt(seq.pointer + 1)
	if next.Is(EndMark | FullStop) {
		return false
	}
	if c.Is(EndMark) {
		return true
	}
	if c.Is(FullStop) {
		return next.Is(Ideograph|Space) || seq.pointer+1 >= seq.Len()
	}
	return false
}

// English: an end mark or '.' not followed by another end mark; a '.'
// followed by a digit is a decimal point. Abbreviations are left to
// CondNotInWhitelistDotEN.
func isEndSymbolEN(seq *Sequence) bool {
	c := seq.CategoryAt(seq.pointer)
	if !c.Is(EndMark | FullStop) {
		return false
	}
	next := seq.CategoryAt(seq.pointer + 1)
	if next.Is(EndMark | FullStop) {
		return false
	}
	if c.Is(FullStop) && next.Is(Digit) {
		return false
	}
	return true
}

// --- Balance ---------------------------------------------------------------

// atLastRune is true if no more runes follow the current one. Balance
// conditions hold there unconditionally, treating unbalanced input as
// implicitly closed.
func atLastRune(seq *Sequence) bool {
	return seq.pointer+1 >= seq.Len()
}

func isBracketClose(seq *Sequence) bool {
	if seq.bracketOpen <= seq.bracketClose {
		seq.bracketOpen, seq.bracketClose = 0, 0
		return true
	}
	return atLastRune(seq)
}

func isBookClose(seq *Sequence) bool {
	if seq.bookOpen <= seq.bookClose {
		seq.bookOpen, seq.bookClose = 0, 0
		return true
	}
	return atLastRune(seq)
}

// isQuotaClose checks quote balance as it will be after the current rune has
// been registered. Counters are reset only if they are balanced with and
// without the current rune, i.e. if it is not a quote itself.
func isQuotaClose(seq *Sequence) bool {
	left, en := seq.quotaLeft, seq.quotaEn
	if seq.countsAsQuote(seq.pointer) {
		c := seq.CategoryAt(seq.pointer)
		switch {
		case c.Is(QuoteLeft):
			left++
		case c.Is(QuoteRight):
			left = max(0, left-1)
		case c.Is(QuoteEn):
			en++
		}
	}
	balanced := left == 0 && en%2 == 0
	if balanced && seq.quotaLeft == 0 && seq.quotaEn%2 == 0 {
		seq.ResetQuota()
	}
	return balanced || atLastRune(seq)
}

// --- Length ----------------------------------------------------------------

func isLongSentence(seq *Sequence, cfg *Config) bool {
	if seq.longDeferred {
		return seq.Span() >= cfg.HardMax
	}
	return seq.Span() >= cfg.MaxLength
}

func isShortSentence(seq *Sequence, cfg *Config) bool {
	return seq.nonSpaceLen(seq.start, seq.pointer+1) < cfg.MinLength
}

// --- Quotes ----------------------------------------------------------------

// isLeftQuota is true if the rune at i opens a quotation. Non-directional
// quotes open if no non-directional quote is pending. With English rules,
// '‘' preceded by an alphabetic letter is an apostrophe.
func isLeftQuota(seq *Sequence, i int, english bool) bool {
	c := seq.CategoryAt(i)
	switch {
	case c.Is(QuoteLeft):
		return !english || !isAlphabetic(seq.At(i-1))
	case c.Is(QuoteEn):
		return seq.countsAsQuote(i) && seq.quotaEn%2 == 0
	}
	return false
}

// isRightQuota is true if the rune at i closes a quotation. With English
// rules, '’' between alphabetic letters is an apostrophe ("don’t").
func isRightQuota(seq *Sequence, i int, english bool) bool {
	c := seq.CategoryAt(i)
	switch {
	case c.Is(QuoteRight):
		return !english || seq.countsAsQuote(i)
	case c.Is(QuoteEn):
		return seq.countsAsQuote(i) && seq.quotaEn%2 == 1
	}
	return false
}

// countsAsQuote is false for glyphs used as apostrophes, i.e. ' and ’
// flanked by alphabetic letters on both sides. Ideographs never make a
// quote an apostrophe.
func (seq *Sequence) countsAsQuote(i int) bool {
	c := seq.CategoryAt(i)
	if !c.Is(QuoteLeft | QuoteRight | QuoteEn) {
		return false
	}
	if !c.Is(Apostrophe) {
		return true
	}
	return !(isAlphabetic(seq.At(i-1)) && isAlphabetic(seq.At(i+1)))
}

// isAlphabetic is true for letters of alphabetic scripts, excluding CJK
// ideographs, kana and hangul.
func isAlphabetic(r rune) bool {
	return r != 0 && unicode.IsLetter(r) &&
		!unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

// --- Abbreviations ---------------------------------------------------------

// notInWhitelistDotEN is true unless the current '.' is part of a whitelisted
// abbreviation. If the '.' starts a multi-token abbreviation ("U. S."), the
// read position is moved to its final '.', registering the runes in between.
// A closing quote right after a '.' is checked against the '.' ("Hi Mr.").
func notInWhitelistDotEN(seq *Sequence, cfg *Config) bool {
	if cfg.Whitelist == nil || cfg.Whitelist.Len() == 0 {
		return true
	}
	c := seq.CategoryAt(seq.pointer)
	if c.Is(QuoteRight|QuoteEn) && seq.CategoryAt(seq.pointer-1).Is(FullStop) {
		return !cfg.Whitelist.matchBackward(seq, seq.pointer-1)
	}
	if !c.Is(FullStop) {
		return true
	}
	if cfg.Whitelist.matchBackward(seq, seq.pointer) {
		return false
	}
	if end, ok := cfg.Whitelist.matchForward(seq, seq.pointer); ok {
		for seq.pointer < end {
			seq.AddToCandidate()
		}
		return false
	}
	return true
}
