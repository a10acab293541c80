package sat

// decisionFrame is one entry of the decision stack. frames[0] is the
// synthetic root frame for level 1 (no decision yet); its DecLit is the
// NONE literal.
type decisionFrame struct {
	DecLit             Literal
	Units              []Literal
	ImplicationGraph   []Literal
	ContradictionLits  int
}

// SatState is the runtime CDCL state layered on top of a Store: the
// decision stack, current decision level, and the most recent synthesised
// assertion clause. It owns every record reachable from it — freeing it
// releases the whole store.
//
// A SatState is single-threaded and cooperative: no operation suspends
// internally, and one instance must not be shared across goroutines without
// external synchronization.
type SatState struct {
	*Store

	decisionLevel   int
	frames          []*decisionFrame
	assertionClause *Clause
}

// NewSatState builds a SatState over a fresh Store for numVars variables
// and the given original clauses. The root decision frame (level 1) is
// created empty; initial unit propagation is not run implicitly here — a
// caller invokes UnitResolution explicitly once construction finishes.
func NewSatState(numVars int, clauseLits [][]Literal) (*SatState, error) {
	store, err := NewStore(numVars, clauseLits)
	if err != nil {
		return nil, err
	}
	s := &SatState{
		Store:         store,
		decisionLevel: 1,
	}
	s.frames = append(s.frames, &decisionFrame{DecLit: 0})
	return s, nil
}

func (s *SatState) currentFrame() *decisionFrame {
	return s.frames[len(s.frames)-1]
}

// DecisionLevel returns the current decision level: level 1 means no
// decision has been made yet, and the k-th decision lives at level k+1.
func (s *SatState) DecisionLevel() int {
	return s.decisionLevel
}

// AssertionClause returns the clause synthesised at the latest conflict, or
// nil (NONE) if none is pending.
func (s *SatState) AssertionClause() *Clause {
	return s.assertionClause
}
