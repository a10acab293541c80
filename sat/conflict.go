package sat

// analyzeConflict computes the first unique implication point against a
// clause found falsified at the current decision level d, and synthesises
// the asserting clause that backjumping should learn. It walks the trail —
// decision literals and their propagated units, most recent first — folding
// in the forcing clause of each current-level literal it pops until exactly
// one current-level literal remains unresolved. That literal is the first
// unique implication point; every lower-level literal encountered along the
// way is carried into the synthesised asserting clause verbatim, alongside
// the UIP's negation.
//
// This walks the trail by resolution rather than by a DFS rooted at the
// decision literal: a conflict discovered during initial resolution, before
// any decision exists, has no decision literal to root a DFS at, while
// trail-resolution needs no such root and handles both cases uniformly.
func (s *SatState) analyzeConflict(conflict *Clause) *Clause {
	d := s.decisionLevel
	frame := s.currentFrame()

	touched := frame.ImplicationGraph[:0]
	var lower []Literal
	counter := 0

	// mark takes the asserted (currently TRUE) form of a variable that
	// appeared, in its falsified form, in a clause being folded in.
	mark := func(asserted Literal) {
		lr := s.lit(asserted)
		if lr.inContradictionClause {
			return
		}
		lr.inContradictionClause = true
		touched = append(touched, asserted)
		if s.variable(asserted).DecisionLevel == d {
			counter++
		} else {
			lower = append(lower, Opp(asserted))
		}
	}

	for _, q := range conflict.Literals {
		mark(Opp(q))
	}
	frame.ContradictionLits = counter

	trail := s.trail()
	idx := len(trail) - 1
	var uip Literal
	for {
		for !s.lit(trail[idx]).inContradictionClause {
			idx--
		}
		uip = trail[idx]
		idx--
		counter--
		if counter == 0 {
			break
		}
		c := s.clause(s.lit(uip).unitOn)
		for _, q := range c.Literals {
			if q == uip {
				continue
			}
			mark(Opp(q))
		}
	}

	assertLits := make([]Literal, 0, len(lower)+1)
	assertLits = append(assertLits, Opp(uip))
	assertLits = append(assertLits, lower...)

	assertLevel := 1
	for _, l := range lower {
		if lvl := s.variable(l).DecisionLevel; lvl > assertLevel {
			assertLevel = lvl
		}
	}

	for _, l := range touched {
		s.lit(l).inContradictionClause = false
	}
	frame.ImplicationGraph = touched[:0]

	learned := newClause(0, assertLits)
	learned.DecLevel = assertLevel
	s.assertionClause = learned
	return learned
}

// trail returns every currently instantiated literal in the order it became
// true: each frame's decision literal, if any, followed by its propagated
// units. The current frame's Units may retain a stranded tail of literals
// that were enqueued but never actually set (see propagateFrame); those are
// excluded by checking the literal's own truth value, not its variable's
// Instantiated flag — the variable can already be instantiated to the
// opposite polarity by a different clause's unit forcing reached earlier in
// the same scan, and that stale entry must not be mistaken for the trail.
func (s *SatState) trail() []Literal {
	var t []Literal
	for _, f := range s.frames {
		if f.DecLit != 0 {
			t = append(t, f.DecLit)
		}
		for _, l := range f.Units {
			if s.lit(l).truth == True {
				t = append(t, l)
			}
		}
	}
	return t
}
