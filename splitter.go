package sentseg

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// Split segments text into sentences. cfg may be nil, in which case the
// defaults for variant v are used (without lexicon or whitelist).
//
// The result is an ordered list of non-empty sentences, with leading white
// space trimmed. Concatenated, they reproduce text apart from the trimmed
// white space.
func Split(text string, v Variant, cfg *Config) []string {
	c := cfg.withDefaults(v)
	seq := NewSequence(text, c.Classifier)
	return graphFor(v).Run(seq, &c)
}

// Splitter splits texts with a fixed variant and configuration.
// Sequences are pooled and re-used between calls. A Splitter is safe for
// concurrent use.
type Splitter struct {
	variant Variant
	cfg     Config
	graph   *Graph
	seqs    *pool.ObjectPool
	ctx     context.Context
}

// NewSplitter creates a splitter for variant v. cfg may be nil.
func NewSplitter(v Variant, cfg *Config) (*Splitter, error) {
	if v != ZH && v != EN {
		return nil, fmt.Errorf("unknown variant %s", v)
	}
	s := &Splitter{
		variant: v,
		cfg:     cfg.withDefaults(v),
		graph:   graphFor(v),
		ctx:     context.Background(),
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Sequence{cut: -1}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	s.seqs = pool.NewObjectPool(s.ctx, factory, config)
	tracer().Infof("splitter %s: max=%d min=%d hard=%d lexicon=%d whitelist=%d", v,
		s.cfg.MaxLength, s.cfg.MinLength, s.cfg.HardMax, s.cfg.Lexicon.Len(), s.cfg.Whitelist.Len())
	return s, nil
}

// Variant returns the variant of the splitter.
func (s *Splitter) Variant() Variant { return s.variant }

// Split segments text into sentences, see function Split.
func (s *Splitter) Split(text string) []string {
	seq, pooled := s.borrow()
	if pooled {
		defer s.release(seq)
	}
	seq.Reset(text, s.cfg.Classifier)
	sentences := s.graph.Run(seq, &s.cfg)
	return append([]string(nil), sentences...)
}

// Close releases the pooled sequences. Splitting remains possible after
// Close, without pooling.
func (s *Splitter) Close() {
	s.seqs.Close(s.ctx)
}

// borrow fetches a sequence from the pool. If the pool fails, a fresh
// sequence is returned which must not be handed back.
func (s *Splitter) borrow() (*Sequence, bool) {
	o, err := s.seqs.BorrowObject(s.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow sequence from pool: %v", err)
		return &Sequence{cut: -1}, false
	}
	return o.(*Sequence), true
}

func (s *Splitter) release(seq *Sequence) {
	seq.Reset("", s.cfg.Classifier)
	if err := s.seqs.ReturnObject(s.ctx, seq); err != nil {
		tracer().Errorf("cannot return sequence to pool: %v", err)
	}
}
