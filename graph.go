package sentseg

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// State is a state of the automaton.
type State uint8

// States of the automaton. StateInit is the initial, StateEnd the terminal
// state.
const (
	StateInit State = iota
	StateQuotaHandler
	StateCutPreIdx
	StateDoCut
	StateLongHandler
	StateEnd
	stateCount
)

var stateNames = [...]string{"Init", "QuotaHandler", "CutPreIdx", "DoCut", "LongHandler", "End"}

func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Edge is a transition of the automaton. It is taken if all of its
// conditions hold; an edge without conditions is always taken. Conditions
// are evaluated in order and evaluation stops at the first one failing.
type Edge struct {
	When []Condition
	Do   Operation
	Next State
}

func (e Edge) String() string {
	conds := make([]string, len(e.When))
	for i, c := range e.When {
		conds[i] = c.String()
	}
	return fmt.Sprintf("[%s] → %s / %s", strings.Join(conds, " ∧ "), e.Next, e.Do)
}

func (e *Edge) matches(seq *Sequence, cfg *Config) bool {
	for _, c := range e.When {
		if !c.eval(seq, cfg) {
			return false
		}
	}
	return true
}

// Graph is the transition table of the automaton: an ordered list of edges
// per state. The first matching edge of a state wins; as more than one edge
// may match at a time, the order of edges is significant.
type Graph struct {
	Variant Variant
	edges   [stateCount][]Edge
}

// NewGraph creates an empty transition table.
func NewGraph(v Variant) *Graph {
	return &Graph{Variant: v}
}

// Add appends an edge to the edge list of state from.
func (g *Graph) Add(from State, when []Condition, do Operation, next State) *Graph {
	invariant(from < stateCount && next < stateCount, "state out of range")
	g.edges[from] = append(g.edges[from], Edge{When: when, Do: do, Next: next})
	return g
}

// Edges returns the ordered edge list of state s.
func (g *Graph) Edges(s State) []Edge {
	if s >= stateCount {
		return nil
	}
	return g.edges[s]
}

// Validate checks that every non-terminal state has a fallback edge as its
// last edge, that no edge follows a fallback edge and that the terminal
// state has no edges.
func (g *Graph) Validate() error {
	var errs []error
	for s := StateInit; s < stateCount; s++ {
		edges := g.edges[s]
		if s == StateEnd {
			if len(edges) > 0 {
				errs = append(errs, fmt.Errorf("terminal state %s has edges", s))
			}
			continue
		}
		if len(edges) == 0 {
			errs = append(errs, fmt.Errorf("state %s has no edges", s))
			continue
		}
		for i, e := range edges {
			if len(e.When) == 0 && i != len(edges)-1 {
				errs = append(errs, fmt.Errorf("state %s: edge %d is unreachable", s, i+1))
			}
		}
		if len(edges[len(edges)-1].When) != 0 {
			errs = append(errs, fmt.Errorf("state %s has no fallback edge", s))
		}
	}
	return errors.Join(errs...)
}

func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph(%s)\n", g.Variant)
	for s := StateInit; s < stateCount; s++ {
		for _, e := range g.edges[s] {
			fmt.Fprintf(&b, "  %-12s %s\n", s, e)
		}
	}
	return b.String()
}

// when is shorthand for a list of conditions.
func when(conds ...Condition) []Condition { return conds }

// NewGraphZH builds the transition table for Chinese text.
func NewGraphZH() *Graph {
	g := NewGraph(ZH)
	g.Add(StateInit, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateInit, when(Is(CondLongSentence)), OpLongHandler, StateLongHandler).
		Add(StateInit, when(Is(CondEndSymbolZH), Is(CondListQuota).At(1)), OpIndolent, StateQuotaHandler).
		Add(StateInit, when(Is(CondEndSymbolZH), Is(CondShortSentence)), OpShortHandler, StateInit).
		Add(StateInit, when(Not(CondShortSentence), Is(CondEndSymbolZH), Is(CondBracketClose),
			Is(CondBookClose), Is(CondQuotaClose)), OpNormal, StateDoCut).
		Add(StateInit, nil, OpIndolent, StateInit)
	g.Add(StateQuotaHandler, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateQuotaHandler, when(Not(CondShortSentence), Is(CondLeftQuotaZH)), OpCutPreIdx, StateCutPreIdx).
		Add(StateQuotaHandler, when(Is(CondWhitespace)), OpIndolent, StateQuotaHandler).
		Add(StateQuotaHandler, when(Not(CondShortSentence), Is(CondRightQuotaZH), Is(CondBracketClose),
			Is(CondBookClose), Is(CondQuotaClose)), OpNormal, StateDoCut).
		Add(StateQuotaHandler, nil, OpPass, StateInit)
	g.Add(StateCutPreIdx, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateCutPreIdx, nil, OpPass, StateInit)
	g.Add(StateDoCut, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateDoCut, nil, OpPass, StateInit)
	g.Add(StateLongHandler, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateLongHandler, when(Is(CondCutPending)), OpNormal, StateInit).
		Add(StateLongHandler, nil, OpPass, StateInit)
	return g
}

// NewGraphEN builds the transition table for English text.
func NewGraphEN() *Graph {
	g := NewGraph(EN)
	g.Add(StateInit, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateInit, when(Is(CondLongSentence)), OpLongHandlerEN, StateLongHandler).
		Add(StateInit, when(Is(CondEndSymbolEN), Is(CondListQuota).At(1)), OpIndolent, StateQuotaHandler).
		Add(StateInit, when(Is(CondEndSymbolEN), Is(CondShortSentence)), OpShortHandler, StateInit).
		Add(StateInit, when(Not(CondShortSentence), Is(CondEndSymbolEN), Is(CondBracketClose),
			Is(CondBookClose), Is(CondQuotaClose), Is(CondNotInWhitelistDotEN)), OpNormal, StateDoCut).
		Add(StateInit, nil, OpIndolent, StateInit)
	g.Add(StateQuotaHandler, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateQuotaHandler, when(Not(CondShortSentence), Is(CondLeftQuotaEN)), OpCutPreIdx, StateCutPreIdx).
		Add(StateQuotaHandler, when(Is(CondWhitespace)), OpIndolent, StateQuotaHandler).
		Add(StateQuotaHandler, when(Not(CondShortSentence), Is(CondRightQuotaEN), Is(CondBracketClose),
			Is(CondBookClose), Is(CondQuotaClose), Is(CondNotInWhitelistDotEN)), OpNormal, StateDoCut).
		Add(StateQuotaHandler, nil, OpPass, StateInit)
	g.Add(StateCutPreIdx, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateCutPreIdx, nil, OpPass, StateInit)
	g.Add(StateDoCut, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateDoCut, nil, OpPass, StateInit)
	g.Add(StateLongHandler, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateLongHandler, nil, OpPass, StateInit)
	return g
}

var (
	graphs     [2]*Graph
	setupGraph sync.Once
)

// graphFor returns the shared, read-only transition table for variant v.
func graphFor(v Variant) *Graph {
	setupGraph.Do(func() {
		graphs[ZH] = NewGraphZH()
		graphs[EN] = NewGraphEN()
		for _, g := range graphs {
			invariant(g.Validate() == nil, "invalid built-in transition table")
		}
	})
	if v == EN {
		return graphs[EN]
	}
	return graphs[ZH]
}
