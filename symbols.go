package sentseg

import (
	"sync"
	"unicode"

	"github.com/npillmayer/sentseg/symtab"
)

// Category is a set of symbol classes a code-point belongs to.
// A code-point may be part of more than one category, e.g. '!' is an
// EndMark in both Chinese and English text.
type Category uint16

// Symbol categories.
const (
	EndMark      Category = 1 << iota // 。！？!?…
	FullStop                          // ambiguous '.': abbreviation dot or sentence end
	Comma                             // , ， 、 ; ；
	Colon                             // : ：
	QuoteLeft                         // directional opening quote 「『“‘
	QuoteRight                        // directional closing quote 」』”’
	QuoteEn                           // non-directional quote " '
	Apostrophe                        // ' ’ may be an apostrophe (don't)
	BracketLeft                       // ( （ [ ［ 【 { 〔 〖
	BracketRight                      // ) ） ] ］ 】 } 〕 〗
	BookLeft                          // 《 〈
	BookRight                         // 》 〉
	Space                             // white space, including line breaks
	LineBreak                         // \n \r U+2028 U+2029
	Digit                             // decimal digits
	Ideograph                         // CJK ideographs
)

// Is returns true if c contains any of the categories in cats.
func (c Category) Is(cats Category) bool {
	return c&cats != 0
}

// Classifier maps a code-point to its symbol categories.
// Implementations must be pure functions and safe for concurrent use.
type Classifier interface {
	Classify(r rune) Category
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(rune) Category

// Classify calls f(r).
func (f ClassifierFunc) Classify(r rune) Category { return f(r) }

// --- Default classifier ----------------------------------------------------

type tableClassifier struct {
	table *symtab.PagedMap
}

var (
	defaultClassifier     *tableClassifier
	setupClassifierTables sync.Once
)

// DefaultClassifier returns the built-in classifier for Chinese and English
// punctuation. The table is built on first use (concurrency-safe).
func DefaultClassifier() Classifier {
	setupClassifierTables.Do(func() {
		defaultClassifier = &tableClassifier{table: newDefaultTable()}
		tracer().Debugf("symbol table set up with %d pages", defaultClassifier.table.NumPages())
	})
	return defaultClassifier
}

func newDefaultTable() *symtab.PagedMap {
	t := &symtab.PagedMap{}
	add := func(chars string, c Category) { t.Add(chars, uint16(c)) }
	add("。！？!?…｡‼⁇⁈⁉", EndMark)
	add(".．", FullStop)
	add(",，、;；﹐﹑", Comma)
	add(":：", Colon)
	add("「『“‘﹁﹃", QuoteLeft)
	add("」』”’﹂﹄", QuoteRight)
	add("\"＂'", QuoteEn)
	add("'’", Apostrophe)
	add("(（[［【{｛〔〖", BracketLeft)
	add(")）]］】}｝〕〗", BracketRight)
	add("《〈", BookLeft)
	add("》〉", BookRight)
	add("\n\r\u0085\u2028\u2029", LineBreak|Space)
	add(" \t\v\f\u00a0\u2002\u2003\u2009\u3000", Space)
	t.AddRange('0', '9', uint16(Digit))
	t.AddRange('０', '９', uint16(Digit))
	return t
}

// Classify returns the categories of r. Ideographs and other letters are
// not held in the table but delegated to package unicode.
func (tc *tableClassifier) Classify(r rune) Category {
	c := Category(tc.table.Lookup(r))
	if c != 0 {
		return c
	}
	if r >= 0x2E80 && unicode.Is(unicode.Han, r) {
		return Ideograph
	}
	if unicode.IsSpace(r) {
		return Space
	}
	if unicode.IsDigit(r) {
		return Digit
	}
	return 0
}
