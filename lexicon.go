package sentseg

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
)

// MaxWeight is the maximum weight of a lexicon phrase.
const MaxWeight = 10

// LexiconReader yields weighted phrases one-by-one.
// It should return io.EOF when the stream is exhausted.
type LexiconReader interface {
	Next() (phrase string, weight int, err error)
}

// Lexicon maps short phrases starting with a comma to a weight 0…10.
// It rates how well a comma fits as a cut position in an overlong English
// sentence. Higher weights make a cut more likely.
//
// Phrases are normalized: lower-cased, comma variants folded to ',' and
// words joined by single spaces, e.g. ", and then".
//
// A Lexicon is read-only once loaded and safe for concurrent lookups.
type Lexicon struct {
	phrases    *trie.Trie
	size       int
	maxTokens  int
	Identifier string // Identifies the lexicon
}

// NewLexicon creates a lexicon from an in-memory map.
func NewLexicon(entries map[string]int) (*Lexicon, error) {
	lex := &Lexicon{phrases: trie.New(), Identifier: "lexicon: <in-memory>"}
	for phrase, weight := range entries {
		if err := lex.Add(phrase, weight); err != nil {
			return nil, err
		}
	}
	return lex, nil
}

// LoadLexicon loads weighted phrases from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package lexfile to parse concrete formats and feed this API.
func LoadLexicon(name string, reader LexiconReader) (lex *Lexicon, err error) {
	lex = &Lexicon{
		phrases:    trie.New(),
		Identifier: fmt.Sprintf("lexicon: %s", name),
	}
	var phrase string
	var weight int
	for {
		phrase, weight, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = lex.Add(phrase, weight); err != nil {
			return nil, err
		}
	}
	tracer().Infof("%s loaded with %d phrases, max key size %d", lex.Identifier, lex.size, lex.maxTokens)
	return lex, nil
}

// Add registers a phrase with a weight. A phrase already present is overwritten.
func (lex *Lexicon) Add(phrase string, weight int) error {
	if weight < 0 || weight > MaxWeight {
		return fmt.Errorf("weight of %q out of range (0..%d): %d", phrase, MaxWeight, weight)
	}
	key := NormalizePhrase(phrase)
	if key == "" {
		return fmt.Errorf("empty lexicon phrase")
	}
	if _, found := lex.phrases.Find(key); !found {
		lex.size++
	}
	lex.phrases.Add(key, weight)
	lex.maxTokens = max(lex.maxTokens, strings.Count(key, " ")+1)
	return nil
}

// Weight returns the weight of a normalized phrase.
func (lex *Lexicon) Weight(phrase string) (int, bool) {
	if lex == nil || lex.phrases == nil {
		return 0, false
	}
	node, found := lex.phrases.Find(phrase)
	if !found {
		return 0, false
	}
	w, ok := node.Meta().(int)
	return w, ok
}

// Len returns the number of phrases in the lexicon.
func (lex *Lexicon) Len() int {
	if lex == nil {
		return 0
	}
	return lex.size
}

// MaxKeySize returns the number of tokens of the longest phrase.
func (lex *Lexicon) MaxKeySize() int {
	if lex == nil {
		return 0
	}
	return lex.maxTokens
}

// NormalizePhrase normalizes a phrase to the form used for lexicon keys:
//
//	"， And  THEN" => ", and then"
func NormalizePhrase(phrase string) string {
	var b strings.Builder
	for _, r := range phrase {
		if DefaultClassifier().Classify(r).Is(Comma) {
			b.WriteString(" , ")
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
