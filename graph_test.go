package sentseg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinGraphsValidate(t *testing.T) {
	for _, g := range []*Graph{NewGraphZH(), NewGraphEN()} {
		if err := g.Validate(); err != nil {
			t.Fatalf("graph %s does not validate: %v", g.Variant, err)
		}
	}
}

func TestGraphEdgeOrder(t *testing.T) {
	g := NewGraphZH()
	edges := g.Edges(StateInit)
	require.Len(t, edges, 6)
	assert.Equal(t, []Condition{Is(CondEndState)}, edges[0].When)
	assert.Equal(t, OpLongHandler, edges[1].Do)
	assert.Equal(t, StateQuotaHandler, edges[2].Next)
	assert.Equal(t, OpShortHandler, edges[3].Do)
	assert.Equal(t, StateDoCut, edges[4].Next)
	assert.Empty(t, edges[5].When)
	assert.Empty(t, g.Edges(StateEnd))
	assert.Nil(t, g.Edges(State(42)))
	//
	en := NewGraphEN()
	assert.Equal(t, OpLongHandlerEN, en.Edges(StateInit)[1].Do)
	last := en.Edges(StateInit)[4].When
	assert.Equal(t, CondNotInWhitelistDotEN, last[len(last)-1].Kind)
	last = en.Edges(StateQuotaHandler)[3].When
	assert.Equal(t, CondNotInWhitelistDotEN, last[len(last)-1].Kind)
}

func TestBrokenGraph(t *testing.T) {
	g := NewGraph(ZH).
		Add(StateInit, nil, OpIndolent, StateInit).
		Add(StateInit, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateEnd, nil, OpPass, StateInit)
	err := g.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "state Init: edge 1 is unreachable")
	assert.Contains(t, msg, "state Init has no fallback edge")
	assert.Contains(t, msg, "state QuotaHandler has no edges")
	assert.Contains(t, msg, "terminal state End has edges")
}

func TestGraphString(t *testing.T) {
	s := NewGraphEN().String()
	assert.True(t, strings.HasPrefix(s, "Graph(EN)"))
	assert.Contains(t, s, "[IsEndSymbolEN ∧ IsListQuota@+1] → QuotaHandler / Indolent")
	assert.Equal(t, "State(9)", State(9).String())
	assert.Equal(t, "Operation(99)", Operation(99).String())
}

func TestRunCustomGraph(t *testing.T) {
	// cut at every comma, nothing else
	g := NewGraph(ZH).
		Add(StateInit, when(Is(CondEndState)), OpEndState, StateEnd).
		Add(StateInit, when(Is(CondComma)), OpNormal, StateDoCut).
		Add(StateInit, nil, OpIndolent, StateInit).
		Add(StateQuotaHandler, nil, OpPass, StateInit).
		Add(StateCutPreIdx, nil, OpPass, StateInit).
		Add(StateDoCut, nil, OpPass, StateInit).
		Add(StateLongHandler, nil, OpPass, StateInit)
	require.NoError(t, g.Validate())
	seq := NewSequence("一，二，三。", nil)
	got := g.Run(seq, DefaultConfig(ZH))
	assert.Equal(t, []string{"一，", "二，", "三。"}, got)
}
