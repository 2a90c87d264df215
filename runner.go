package sentseg

// Run drives seq through the transition table from StateInit to StateEnd and
// returns the committed sentences. The result is owned by seq.
//
// In every state the edges are tried in order; the operation of the first
// matching edge is applied and the automaton moves to the edge's target.
func (g *Graph) Run(seq *Sequence, cfg *Config) []string {
	invariant(cfg != nil, "Run needs a configuration")
	state := StateInit
	steps := 0
	for state != StateEnd {
		edge := g.match(state, seq, cfg)
		edge.Do.apply(seq, cfg)
		tracer().Debugf("%-12s @%d → %s / %s", state, seq.pointer, edge.Next, edge.Do)
		state = edge.Next
		steps++
	}
	tracer().Debugf("%d code-points, %d steps, %d sentences", seq.Len(), steps, len(seq.sentences))
	return seq.Sentences()
}

func (g *Graph) match(state State, seq *Sequence, cfg *Config) *Edge {
	edges := g.edges[state]
	for i := range edges {
		if edges[i].matches(seq, cfg) {
			return &edges[i]
		}
	}
	panic("no edge matches in state " + state.String() + "; table not validated?")
}
