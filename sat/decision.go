package sat

// DecideLiteral pushes a new decision frame with l as its decision literal,
// advances the decision level, and propagates. On conflict it synthesises an
// asserting clause via analyzeConflict, stores it as AssertionClause, and
// returns it, leaving the decision frame in place so the caller can backjump
// (repeated UndoDecideLiteral) down to the clause's assertion level before
// calling AssertClause. Returns nil on success, and also when l's variable
// is already instantiated or l is out of range, in which case the call is a
// no-op indistinguishable from ordinary success.
func (s *SatState) DecideLiteral(l Literal) *Clause {
	if !s.validLiteral(l) || s.variable(l).Instantiated {
		return nil
	}
	s.decisionLevel++
	frame := &decisionFrame{DecLit: l}
	s.frames = append(s.frames, frame)
	s.assertionClause = nil

	if conflict := s.setLiteral(l); conflict != nil {
		return s.analyzeConflict(conflict)
	}
	if conflict := s.propagateFrame(frame); conflict != nil {
		return s.analyzeConflict(conflict)
	}
	return nil
}

// UndoDecideLiteral pops the current decision frame and inverts every
// assignment it performed (including those of its propagated units, in
// reverse order), restoring the SatState to its state just before the
// matched DecideLiteral. A no-op if no decision frame is above the root.
func (s *SatState) UndoDecideLiteral() {
	if s.decisionLevel <= 1 {
		return
	}
	s.undoFrame(s.currentFrame())
	s.frames = s.frames[:len(s.frames)-1]
	s.decisionLevel--
	s.assertionClause = nil
}

// UnitResolution runs the initial propagation pass, meant to be called once
// before any decision. It seeds the root frame with every natively unit
// clause, original or learned, and propagates to closure. Constructing a SatState never
// runs this implicitly; a caller invokes it explicitly once the instance is
// built.
func (s *SatState) UnitResolution() *Clause {
	frame := s.frames[0]
	for _, c := range s.clauses[1:] {
		if c == nil || c.Subsumed || c.FreeLits != 1 {
			continue
		}
		s.seedUnit(frame, c)
	}
	if conflict := s.propagateFrame(frame); conflict != nil {
		return s.analyzeConflict(conflict)
	}
	return nil
}

// UndoUnitResolution reverses, in reverse order, every literal assigned in
// the root frame: those forced by UnitResolution and by clauses asserted at
// level 1. The root frame is a degenerate frame with no decision literal of
// its own, so undoing it walks only its units list.
func (s *SatState) UndoUnitResolution() {
	s.undoFrame(s.frames[0])
	s.assertionClause = nil
}

func (s *SatState) undoFrame(frame *decisionFrame) {
	for i := len(frame.Units) - 1; i >= 0; i-- {
		s.undoSetLiteral(frame.Units[i])
	}
	frame.Units = nil
	frame.ImplicationGraph = nil
	frame.ContradictionLits = 0
	if frame.DecLit != 0 {
		s.undoSetLiteral(frame.DecLit)
	}
}

// AtAssertionLevel reports whether c's assertion level matches the current
// decision level, the precondition AssertClause requires. Returns the
// distinct third value (Unset) for a nil clause.
func (s *SatState) AtAssertionLevel(c *Clause) LBool {
	if c == nil {
		return Unset
	}
	return Lift(c.DecLevel == s.decisionLevel)
}

// AssertClause appends c to the learned clauses, wires it into each member
// literal's clauses list, then propagates any unit it creates. Precondition:
// AtAssertionLevel(c) holds — a caller backjumps (repeated UndoDecideLiteral)
// down to c.DecLevel first. Violating the precondition is a no-op returning
// nil.
func (s *SatState) AssertClause(c *Clause) *Clause {
	if s.AtAssertionLevel(c) != True {
		return nil
	}
	s.wireLearnedClause(c)
	s.assertionClause = nil

	frame := s.currentFrame()
	start := len(frame.Units)
	if !c.Subsumed && c.FreeLits == 1 {
		s.seedUnit(frame, c)
	}
	// Only the units enqueued from here on are new; those already in the
	// frame were set when the frame was first propagated.
	for i := start; i < len(frame.Units); i++ {
		if conflict := s.setLiteral(frame.Units[i]); conflict != nil {
			return s.analyzeConflict(conflict)
		}
	}
	return nil
}

// wireLearnedClause appends c to the clause arena and registers it in each
// member literal's clauses list, computing Subsumed/FreeLits from the
// current assignment — not from len(c.Literals) — since an asserting clause
// is synthesised while several of its literals may still be assigned from
// the conflicting decision level's lower ancestors.
func (s *SatState) wireLearnedClause(c *Clause) {
	c.Index = ClauseID(len(s.clauses))
	s.clauses = append(s.clauses, c)

	free := 0
	for _, l := range c.Literals {
		lr := s.lit(l)
		lr.clauses = append(lr.clauses, c.Index)
		switch lr.truth {
		case True:
			if !c.Subsumed {
				c.Subsumed = true
				c.SubsumedOn = l
			}
		case Unset:
			free++
		}
	}
	c.FreeLits = free
}
