/*
Package sentseg splits Chinese or English text into sentences.

The splitter is a hand-written finite-state automaton walking a text
code-point by code-point. Conditions inspect a cursor over the text (type
Sequence), operations mutate it, and a transition table (type Graph) wires
both together per state. There are two tables, one oriented towards Chinese
text (ZH) and one towards English text (EN).

The automaton tracks quotation nesting, brackets and book-title marks, and
will not cut a sentence while any of these is open. Overlong sentences are
re-split at a plausible position (a closing quote or a comma for Chinese,
a dialogue boundary or the best-weighted comma for English), sentences shorter
than a minimum length are merged with the text following them.

For English text, abbreviations like "Mr." or "U. S." are suppressed as
sentence ends by a whitelist, and comma positions are rated by a weighted
lexicon. Both may be loaded with package resfile.

Usage:

	sentences := sentseg.Split("今天天气很好。我很开心！", sentseg.ZH, nil)
	// => [ "今天天气很好。", "我很开心！" ]

The automaton is single-pass and does no I/O. A Splitter may be shared
between goroutines, as Lexicon, Whitelist and Classifier are read-only
after construction.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sentseg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sentseg'
func tracer() tracing.Trace {
	return tracing.Select("sentseg")
}

func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
