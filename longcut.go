package sentseg

// longCutZH decides where to cut an overlong Chinese candidate. It does not
// commit: it moves the read position back to the cut position and marks it,
// leaving the commit to the next transition.
//
// Candidates, in order of priority, scanning backwards from the read position:
//
//  1. a closing quote right after an end symbol or a closing book-title mark
//  2. a comma
//
// The cut keeps at least MinLength runes in the committed sentence. If no
// candidate is found, a hard cut is made at HardMax runes. If the candidate
// is not yet HardMax runes long, the decision is deferred: iteration goes on
// and the next proper end symbol will end the sentence.
func longCutZH(seq *Sequence, cfg *Config) {
	lo := max(seq.start, seq.start+cfg.MinLength-1)
	for i := seq.pointer - 1; i >= lo; i-- {
		if seq.cats[i].Is(QuoteRight) && seq.CategoryAt(i-1).Is(EndMark|FullStop|BookRight) {
			tracer().Debugf("long candidate: cut at closing quote %d", i)
			seq.setCut(i)
			return
		}
	}
	for i := seq.pointer - 1; i >= lo; i-- {
		if seq.cats[i].Is(Comma) {
			tracer().Debugf("long candidate: cut at comma %d", i)
			seq.setCut(i)
			return
		}
	}
	if hard := seq.start + cfg.HardMax - 1; hard < seq.pointer {
		tracer().Debugf("long candidate: hard cut at %d", hard)
		seq.setCut(hard)
		return
	}
	tracer().Debugf("long candidate at %d: no cut position, deferring", seq.pointer)
	seq.longDeferred = true
}
