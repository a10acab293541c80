package sat

import "fmt"

// literalRecord is the per-literal entry of the literal arena. Both
// polarities of a variable get their own record, each with its own truth
// value and unit-propagation bookkeeping, so both polarities address the
// same backing array in O(1).
type literalRecord struct {
	truth        LBool
	clauses      []ClauseID
	unitOn       ClauseID
	unitChildren []Literal

	// Conflict-analysis scratch state; zero outside that scope.
	inContradictionClause bool
	dfsIgnore             bool
}

// Store owns the contiguous variable, literal, and clause arenas. All other
// components address entities by index rather than pointer.
type Store struct {
	numVars int
	vars    []*Variable     // index 0 unused; 1..numVars.
	lits    []*literalRecord // index = int(l) + numVars; l ranges -numVars..numVars.
	clauses []*Clause        // index 0 unused; 1..numOriginal, then learned.

	numOriginalClauses int
}

// NewStore allocates the arenas for a CNF instance of numVars variables and
// the given original clauses (each a slice of signed literal indices).
// Duplicate literals within a clause are deduplicated; a clause containing
// both a literal and its opposite is a tautology and is dropped. Malformed
// input — a zero literal, a literal referencing a variable outside
// 1..numVars, or a negative numVars — is rejected with an error.
func NewStore(numVars int, clauseLits [][]Literal) (*Store, error) {
	if numVars < 0 {
		return nil, fmt.Errorf("sat: negative variable count %d", numVars)
	}

	s := &Store{
		numVars: numVars,
		vars:    make([]*Variable, numVars+1),
		lits:    make([]*literalRecord, 2*numVars+1),
		clauses: make([]*Clause, 1, len(clauseLits)+1),
	}
	for v := 1; v <= numVars; v++ {
		s.vars[v] = newVariable(VarID(v))
	}
	for l := -numVars; l <= numVars; l++ {
		if l == 0 {
			continue
		}
		s.lits[l+numVars] = &literalRecord{unitOn: 0}
	}

	for ci, lits := range clauseLits {
		deduped, tautology, err := s.dedupClause(lits)
		if err != nil {
			return nil, fmt.Errorf("sat: clause %d: %w", ci+1, err)
		}
		if tautology {
			continue
		}
		if len(deduped) == 0 {
			return nil, fmt.Errorf("sat: clause %d: empty after deduplication", ci+1)
		}
		s.addOriginalClause(deduped)
	}
	s.numOriginalClauses = len(s.clauses) - 1
	return s, nil
}

func (s *Store) dedupClause(lits []Literal) (deduped []Literal, tautology bool, err error) {
	seen := make(map[Literal]bool, len(lits))
	for _, l := range lits {
		if l == 0 || int(LiteralVar(l)) > s.numVars {
			return nil, false, fmt.Errorf("literal %d out of range for %d variables", l, s.numVars)
		}
		if seen[Opp(l)] {
			return nil, true, nil
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		deduped = append(deduped, l)
	}
	return deduped, false, nil
}

func (s *Store) addOriginalClause(lits []Literal) *Clause {
	id := ClauseID(len(s.clauses))
	c := newClause(id, lits)
	s.clauses = append(s.clauses, c)
	seenVars := make(map[VarID]bool, len(lits))
	for _, l := range lits {
		s.lit(l).clauses = append(s.lit(l).clauses, id)
		v := LiteralVar(l)
		if !seenVars[v] {
			seenVars[v] = true
			s.vars[v].NumMentioned++
		}
	}
	return c
}

func (s *Store) variable(l Literal) *Variable {
	return s.vars[LiteralVar(l)]
}

func (s *Store) lit(l Literal) *literalRecord {
	return s.lits[int(l)+s.numVars]
}

func (s *Store) clause(id ClauseID) *Clause {
	return s.clauses[id]
}

// uniqueUnsetLiteral returns the single literal of c whose truth is Unset.
// Callers only invoke this when c.FreeLits == 1, so exactly one exists.
func (s *Store) uniqueUnsetLiteral(c *Clause) Literal {
	for _, l := range c.Literals {
		if s.lit(l).truth == Unset {
			return l
		}
	}
	return 0
}
