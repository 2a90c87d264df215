package sentseg

import "fmt"

// Variant selects the transition table of the automaton.
type Variant int

// Supported variants.
const (
	ZH Variant = iota // Chinese-oriented table
	EN                // English-oriented table
)

func (v Variant) String() string {
	switch v {
	case ZH:
		return "ZH"
	case EN:
		return "EN"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// CommaScoring holds the constants used to rate comma positions when
// re-splitting an overlong English sentence. The defaults are empirical
// and may be tuned.
type CommaScoring struct {
	UpperCase     float64 // score of a comma followed by an upper-case word
	DefaultWeight float64 // weight of a phrase not found in the lexicon
}

// DefaultCommaScoring returns the default comma scoring constants.
func DefaultCommaScoring() CommaScoring {
	return CommaScoring{UpperCase: 10, DefaultWeight: 5}
}

// Config parametrizes a run of the automaton.
//
// Thresholds are not validated. Callers are responsible for sane values,
// i.e. MinLength < MaxLength ≤ HardMax. Zero values are replaced by the
// defaults for the variant.
type Config struct {
	MaxLength  int        // spans of this length are considered too long
	MinLength  int        // spans with fewer non-space code-points are too short
	HardMax    int        // length of a forced cut if no break point is found
	MaxKeySize int        // maximum number of tokens (comma included) of a lexicon key
	Lexicon    *Lexicon   // rates comma positions (EN only)
	Whitelist  *Whitelist // abbreviations (EN only)
	Classifier Classifier // symbol classes; DefaultClassifier() if nil
	Scoring    CommaScoring
}

// Default thresholds.
const (
	DefaultMaxLengthZH = 120
	DefaultMinLengthZH = 3
	DefaultHardMaxZH   = 160
	DefaultMaxLengthEN = 300
	DefaultMinLengthEN = 4
	DefaultHardMaxEN   = 500
	DefaultMaxKeySize  = 4
)

// DefaultConfig returns a configuration with default thresholds for variant v.
// Lexicon and whitelist are left empty, see package resfile.
func DefaultConfig(v Variant) *Config {
	c := (*Config)(nil).withDefaults(v)
	return &c
}

// withDefaults returns a copy of cfg with zero values replaced by defaults.
// cfg may be nil.
func (cfg *Config) withDefaults(v Variant) Config {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	maxLen, minLen, hardMax := DefaultMaxLengthZH, DefaultMinLengthZH, DefaultHardMaxZH
	if v == EN {
		maxLen, minLen, hardMax = DefaultMaxLengthEN, DefaultMinLengthEN, DefaultHardMaxEN
	}
	if c.MaxLength <= 0 {
		c.MaxLength = maxLen
	}
	if c.MinLength <= 0 {
		c.MinLength = minLen
	}
	if c.HardMax <= 0 {
		c.HardMax = max(hardMax, c.MaxLength)
	}
	if c.MaxKeySize <= 1 {
		c.MaxKeySize = DefaultMaxKeySize
	}
	if c.Classifier == nil {
		c.Classifier = DefaultClassifier()
	}
	if c.Scoring == (CommaScoring{}) {
		c.Scoring = DefaultCommaScoring()
	}
	return c
}
