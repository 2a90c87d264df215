package sentseg

import (
	"math"
	"strings"
	"unicode"
)

// longCutEN re-splits an overlong English candidate. Other than its Chinese
// counterpart it commits a prefix of the candidate itself and leaves the read
// position untouched, so iteration resumes where it left off.
//
// The cut position is searched for by two strategies, in order:
//
//  1. a dialogue boundary: an end symbol followed by white space, or a
//     closing quote after an end symbol
//  2. the best-rated comma (see commaCut)
//
// If neither finds a position, the decision is deferred until the candidate
// is HardMax runes long, when it is cut at the last white space.
func longCutEN(seq *Sequence, cfg *Config) {
	if i, ok := dialogueCut(seq, cfg); ok {
		tracer().Debugf("long candidate: dialogue cut at %d", i)
		seq.commitPrefix(i)
		return
	}
	if i, ok := commaCut(seq, cfg); ok {
		tracer().Debugf("long candidate: comma cut at %d", i)
		seq.commitPrefix(i)
		return
	}
	if seq.longDeferred {
		i := seq.pointer - 1
		for j := seq.pointer - 1; j > seq.start; j-- {
			if seq.cats[j].Is(Space) && !seq.cats[j-1].Is(Space) {
				i = j - 1
				break
			}
		}
		tracer().Debugf("long candidate: hard cut at %d", i)
		seq.commitPrefix(i)
		return
	}
	tracer().Debugf("long candidate at %d: no cut position, deferring", seq.pointer)
	seq.longDeferred = true
}

// dialogueCut scans the candidate forward for the first sentence boundary
// inside of it, which has been passed over because of open quotes or
// brackets. The committed part must exceed MinLength non-space runes.
func dialogueCut(seq *Sequence, cfg *Config) (int, bool) {
	for i := seq.start + 1; i < seq.pointer-1; i++ {
		c := seq.cats[i]
		next := seq.cats[i+1]
		if c.Is(EndMark|FullStop) && next.Is(Space) {
			if seq.nonSpaceLen(seq.start, i+1) <= cfg.MinLength {
				continue
			}
			if c.Is(FullStop) && cfg.Whitelist != nil && cfg.Whitelist.matchBackward(seq, i) {
				continue
			}
			return i, true
		}
		if c.Is(QuoteRight|QuoteEn) && seq.cats[i-1].Is(EndMark|FullStop) && next.Is(Space) {
			if seq.nonSpaceLen(seq.start, i+1) > cfg.MinLength {
				return i, true
			}
		}
	}
	return -1, false
}

// commaCut rates every comma of the candidate and returns the best one.
//
// A comma followed by an upper-case word scores Scoring.UpperCase. Otherwise
// the phrase starting with the comma is looked up in the lexicon, defaulting
// to Scoring.DefaultWeight. Every comma gets a bonus in [0,1] which peaks at
// the middle of the candidate.
//
// A colon at the end of a line is taken immediately, as it usually
// introduces a quotation.
func commaCut(seq *Sequence, cfg *Config) (int, bool) {
	span := seq.pointer - seq.start
	half := float64(span) / 2
	best, bestScore := -1, math.Inf(-1)
	for i := seq.start; i < seq.pointer-1; i++ {
		c := seq.cats[i]
		if c.Is(Colon) && seq.cats[i+1].Is(LineBreak) {
			if seq.nonSpaceLen(seq.start, i+1) > cfg.MinLength {
				return i, true
			}
			continue
		}
		if !c.Is(Comma) {
			continue
		}
		var score float64
		if unicode.IsUpper(seq.At(i + 2)) {
			score = cfg.Scoring.UpperCase
		} else {
			score = phraseWeight(seq, i, cfg)
		}
		if half > 0 {
			score += 1 - math.Abs(float64(i-seq.start)-half)/half
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 && seq.nonSpaceLen(seq.start, best) > cfg.MinLength {
		return best, true
	}
	return -1, false
}

// phraseWeight looks up the phrases made of the comma at i and the next
// 1…MaxKeySize-1 words. The longest phrase found determines the weight.
func phraseWeight(seq *Sequence, i int, cfg *Config) float64 {
	if cfg.Lexicon == nil {
		return cfg.Scoring.DefaultWeight
	}
	words := wordsAfter(seq, i+1, cfg.MaxKeySize-1)
	weight := cfg.Scoring.DefaultWeight
	var key strings.Builder
	key.WriteString(",")
	for _, w := range words {
		key.WriteByte(' ')
		key.WriteString(w)
		if v, ok := cfg.Lexicon.Weight(key.String()); ok {
			weight = float64(v)
		}
	}
	return weight
}

// wordsAfter collects up to n lower-cased words starting at position from.
// A word carrying trailing punctuation is the last one collected.
func wordsAfter(seq *Sequence, from, n int) []string {
	words := make([]string, 0, n)
	var w []rune
	for i := from; i <= seq.Len() && len(words) < n; i++ {
		if i < seq.Len() && !seq.cats[i].Is(Space) {
			w = append(w, unicode.ToLower(seq.runes[i]))
			continue
		}
		if len(w) == 0 {
			continue
		}
		word := strings.TrimRightFunc(string(w), unicode.IsPunct)
		if word != "" {
			words = append(words, word)
		}
		if len(word) < len(string(w)) {
			break
		}
		w = w[:0]
	}
	return words
}
