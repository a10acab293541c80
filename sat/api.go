package sat

// IndexToVar returns the variable at index idx (1..VarCount()), or the NONE
// sentinel (zero VarID) if idx is out of range.
func (s *SatState) IndexToVar(idx int) VarID {
	if idx < 1 || idx > s.numVars {
		return 0
	}
	return VarID(idx)
}

// VarIndex returns v's 1..N index, or 0 (NONE) if v is out of range.
func (s *SatState) VarIndex(v VarID) int {
	if int(v) < 1 || int(v) > s.numVars {
		return 0
	}
	return int(v)
}

// validLiteral reports whether l is a well-formed, in-range literal.
func (s *SatState) validLiteral(l Literal) bool {
	return l != 0 && int(LiteralVar(l)) <= s.numVars
}

// InstantiatedVar reports whether v currently has a fixed truth value. Unset
// (the distinct third value) for an out-of-range v.
func (s *SatState) InstantiatedVar(v VarID) LBool {
	if int(v) < 1 || int(v) > s.numVars {
		return Unset
	}
	return Lift(s.vars[v].Instantiated)
}

// ImpliedLiteral returns the currently-true polarity of v, or the NONE
// sentinel if v is unassigned or out of range.
func (s *SatState) ImpliedLiteral(v VarID) Literal {
	if int(v) < 1 || int(v) > s.numVars {
		return 0
	}
	vv := s.vars[v]
	if !vv.Instantiated {
		return 0
	}
	if s.lit(vv.Pos).truth == True {
		return vv.Pos
	}
	return vv.Neg
}

// IrrelevantVar reports whether every original clause mentioning v is
// currently subsumed. Unset for an out-of-range v.
func (s *SatState) IrrelevantVar(v VarID) LBool {
	if int(v) < 1 || int(v) > s.numVars {
		return Unset
	}
	vv := s.vars[v]
	allSubsumed := func(cids []ClauseID) bool {
		for _, cid := range cids {
			if int(cid) > s.numOriginalClauses {
				continue // learned clause, not original
			}
			if !s.clause(cid).Subsumed {
				return false
			}
		}
		return true
	}
	return Lift(allSubsumed(s.lit(vv.Pos).clauses) && allSubsumed(s.lit(vv.Neg).clauses))
}

// ClauseCount returns the number of original clauses.
func (s *SatState) ClauseCount() int {
	return s.numOriginalClauses
}

// LearnedClauseCount returns the number of clauses learned so far.
func (s *SatState) LearnedClauseCount() int {
	return len(s.clauses) - 1 - s.numOriginalClauses
}

// VarCount returns N, the number of variables.
func (s *SatState) VarCount() int {
	return s.numVars
}

// LiteralWeight returns a literal's weight for weighted model counting.
// Weighted counting reduces to unweighted counting here: every literal
// always weighs 1.
func (s *SatState) LiteralWeight(l Literal) float64 {
	return 1
}
