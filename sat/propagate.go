package sat

// setLiteral marks l's variable instantiated at the current decision level:
// every clause containing l becomes subsumed (on l), and every non-subsumed
// clause containing opp(l) loses one free literal. It returns the first
// clause discovered conflicting (its free-literal count reaching zero), or
// nil. It does not itself drive the propagation worklist — see
// propagateFrame.
func (s *SatState) setLiteral(l Literal) *Clause {
	v := s.variable(l)
	v.Instantiated = true
	v.DecisionLevel = s.decisionLevel
	s.lit(l).truth = True
	s.lit(Opp(l)).truth = False

	for _, cid := range s.lit(l).clauses {
		c := s.clause(cid)
		if !c.Subsumed {
			c.Subsumed = true
			c.SubsumedOn = l
		}
	}

	frame := s.currentFrame()
	var conflict *Clause
	for _, cid := range s.lit(Opp(l)).clauses {
		c := s.clause(cid)
		if c.Subsumed {
			continue
		}
		c.FreeLits--
		switch c.FreeLits {
		case 1:
			s.seedUnit(frame, c)
		case 0:
			if conflict == nil {
				conflict = c
			}
		}
	}
	return conflict
}

// seedUnit enqueues c's one remaining unset literal as forced by c, unless
// it was already forced at this level by an earlier clause — the first
// clause to go unit on a literal keeps the reason, later ones are ignored.
// Shared by setLiteral, UnitResolution and AssertClause — every place a
// clause is discovered or created with exactly one free literal.
func (s *SatState) seedUnit(frame *decisionFrame, c *Clause) {
	u := s.uniqueUnsetLiteral(c)
	ur := s.lit(u)
	if ur.unitOn != 0 {
		return
	}
	ur.unitOn = c.Index
	frame.Units = append(frame.Units, u)
	for _, l2 := range c.Literals {
		if l2 == u {
			continue
		}
		s.lit(l2).unitChildren = append(s.lit(l2).unitChildren, u)
	}
}

// propagateFrame drives frame.Units to closure, calling setLiteral for each
// forced literal in the order it was discovered. It returns the first
// conflict encountered, if any. frame.Units may retain a tail of literals
// enqueued but never actually set: a conflict found mid-scan still lets the
// scan that found it finish its own bookkeeping, which can enqueue further
// units that propagation then never reaches.
func (s *SatState) propagateFrame(frame *decisionFrame) *Clause {
	for i := 0; i < len(frame.Units); i++ {
		if conflict := s.setLiteral(frame.Units[i]); conflict != nil {
			return conflict
		}
	}
	return nil
}

// undoSetLiteral inverts setLiteral/seedUnit's effects on l. It is safe to
// call on a literal whose variable was never actually instantiated — the
// stranded worklist tail a mid-scan conflict can leave behind — in which
// case only the unit-forcing bookkeeping (unit_on / unit_children) is
// unwound and the clause-state fields (Subsumed/FreeLits/truth) are left
// untouched, since setLiteral never reached them for this literal either.
//
// Clearing unit_on/unit_children unconditionally also handles a subtler
// case: an antecedent can live in an earlier decision frame than the literal
// it forced, so the forced literal must be unlinked from that antecedent's
// unit_children before its own scratch fields are cleared, not only have its
// own unit_children list cleared.
func (s *SatState) undoSetLiteral(l Literal) {
	lr := s.lit(l)

	if lr.unitOn != 0 {
		c := s.clause(lr.unitOn)
		for _, al := range c.Literals {
			if al == l {
				continue
			}
			ar := s.lit(al)
			ar.unitChildren = removeLiteral(ar.unitChildren, l)
		}
	}
	lr.unitOn = 0
	lr.unitChildren = nil
	lr.inContradictionClause = false
	lr.dfsIgnore = false

	// A literal counts as "actually set" only if it is the polarity that is
	// currently TRUE — checking the variable's Instantiated flag alone would
	// also match a stranded worklist entry for the *opposite* polarity (the
	// variable can be instantiated by a different clause's unit forcing
	// before this literal's own stale Units entry is ever reached; see
	// propagateFrame).
	if lr.truth != True {
		return
	}

	v := s.variable(l)
	oppR := s.lit(Opp(l))
	oppR.inContradictionClause = false
	oppR.dfsIgnore = false
	lr.truth = Unset
	oppR.truth = Unset
	v.Instantiated = false
	v.DecisionLevel = noLevel

	for _, cid := range lr.clauses {
		c := s.clause(cid)
		if c.Subsumed && c.SubsumedOn == l {
			c.Subsumed = false
			c.SubsumedOn = 0
		}
	}
	for _, cid := range oppR.clauses {
		c := s.clause(cid)
		if !c.Subsumed {
			c.FreeLits++
		}
	}
}

func removeLiteral(lits []Literal, x Literal) []Literal {
	for i, l := range lits {
		if l == x {
			return append(lits[:i], lits[i+1:]...)
		}
	}
	return lits
}
