package sentseg

import "fmt"

// Operation enumerates the actions the automaton performs on a transition.
type Operation uint8

// Operation kinds.
const (
	OpPass          Operation = iota // do nothing, just change state
	OpIndolent                       // add the current rune to the candidate
	OpNormal                         // commit the candidate including the current rune
	OpCutPreIdx                      // commit the candidate excluding the current rune
	OpLongHandler                    // find a cut position in an overlong Chinese candidate
	OpLongHandlerEN                  // commit a prefix of an overlong English candidate
	OpShortHandler                   // accumulate a candidate which is too short to be cut
	OpEndState                       // commit what is left at the end of input
)

var operationNames = [...]string{
	"Pass", "Indolent", "Normal", "CutPreIdx", "LongHandler", "LongHandlerEN",
	"ShortHandler", "EndState",
}

func (op Operation) String() string {
	if int(op) < len(operationNames) {
		return operationNames[op]
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// apply performs op on seq. This is the single dispatch point for all
// operation kinds.
func (op Operation) apply(seq *Sequence, cfg *Config) {
	switch op {
	case OpPass:
	case OpIndolent:
		seq.AddToCandidate()
	case OpNormal:
		seq.AddToSentenceList()
	case OpCutPreIdx:
		cutPreIdx(seq)
	case OpLongHandler:
		longCutZH(seq, cfg)
	case OpLongHandlerEN:
		longCutEN(seq, cfg)
	case OpShortHandler:
		tracer().Debugf("short candidate [%d,%d] kept pending", seq.start, seq.pointer)
		seq.AddToCandidate()
	case OpEndState:
		seq.flush()
	default:
		panic(fmt.Sprintf("unknown operation %d", op))
	}
}

// cutPreIdx commits the candidate up to the rune before the read position.
// The current rune, an opening quote, starts the next candidate. The read
// position ends up where it was.
func cutPreIdx(seq *Sequence) {
	if seq.pointer <= seq.start {
		return
	}
	at := seq.pointer
	seq.pointer--
	seq.AddToSentenceList()
	invariant(seq.pointer == at, "CutPreIdx moved the read position")
}

// setCut moves the read position back to position i and marks it as the
// cut position for the following commit. Forward jumps are not permitted.
func (seq *Sequence) setCut(i int) {
	invariant(i >= seq.start && i <= seq.pointer, "cut position outside of candidate")
	seq.pointer = i
	seq.cut = i
}
