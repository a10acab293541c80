package sat

import "testing"

// threeClauseInstance builds a three-variable instance with clauses
// {1 2}, {-1 3}, {-2 -3}.
func threeClauseInstance(t *testing.T) *SatState {
	t.Helper()
	s, err := NewSatState(3, [][]Literal{
		lits(1, 2),
		lits(-1, 3),
		lits(-2, -3),
	})
	if err != nil {
		t.Fatalf("NewSatState(): want no error, got %s", err)
	}
	return s
}

// TestDecideLiteral_propagatesToClosure checks that deciding literal 1
// propagates clause 2 (forcing 3) and clause 3 (forcing -2), with no
// conflict.
func TestDecideLiteral_propagatesToClosure(t *testing.T) {
	s := threeClauseInstance(t)

	if conflict := s.DecideLiteral(Literal(1)); conflict != nil {
		t.Fatalf("DecideLiteral(1): want no conflict, got %s", conflict)
	}

	if got, want := s.DecisionLevel(), 2; got != want {
		t.Errorf("DecisionLevel() = %d, want %d", got, want)
	}
	wantImplied := map[VarID]Literal{1: PosLiteral(1), 2: NegLiteral(2), 3: PosLiteral(3)}
	for v, want := range wantImplied {
		if s.InstantiatedVar(v) != True {
			t.Errorf("variable %d: not instantiated, want instantiated", v)
			continue
		}
		if got := s.ImpliedLiteral(v); got != want {
			t.Errorf("ImpliedLiteral(%d) = %s, want %s", v, got, want)
		}
	}

	frame := s.currentFrame()
	if got, want := frame.Units, lits(3, -2); !literalsEqual(got, want) {
		t.Errorf("frame.Units = %v, want %v", got, want)
	}
}

func literalsEqual(a, b []Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestUndoDecideLiteral_restoresState checks that undoing a decision that
// propagated a full closure restores every variable to UNSET and every
// original clause's FreeLits back to 2.
func TestUndoDecideLiteral_restoresState(t *testing.T) {
	s := threeClauseInstance(t)
	if conflict := s.DecideLiteral(Literal(1)); conflict != nil {
		t.Fatalf("DecideLiteral(1): want no conflict, got %s", conflict)
	}

	s.UndoDecideLiteral()

	if got, want := s.DecisionLevel(), 1; got != want {
		t.Errorf("DecisionLevel() = %d, want %d", got, want)
	}
	for v := VarID(1); v <= 3; v++ {
		if got := s.InstantiatedVar(v); got != False {
			t.Errorf("InstantiatedVar(%d) = %s, want false", v, got)
		}
	}
	for i := 1; i <= 3; i++ {
		c := s.clause(ClauseID(i))
		if got, want := c.FreeLits, 2; got != want {
			t.Errorf("clause %d FreeLits = %d, want %d", i, got, want)
		}
		if c.Subsumed {
			t.Errorf("clause %d: Subsumed = true, want false", i)
		}
	}
}

// TestDecideLiteral_undoRoundTrip checks that decide then undo is a no-op
// on every observable field, repeated across several literals.
func TestDecideLiteral_undoRoundTrip(t *testing.T) {
	for _, l := range []Literal{1, -1, 2, -2, 3, -3} {
		s := threeClauseInstance(t)
		before := snapshotClauses(s)

		if conflict := s.DecideLiteral(l); conflict != nil {
			s.UndoDecideLiteral()
			continue // a conflicting branch has nothing further to round-trip here.
		}
		s.UndoDecideLiteral()

		after := snapshotClauses(s)
		if got, want := after, before; !clauseSnapshotsEqual(got, want) {
			t.Errorf("decide(%s)+undo: clause state changed: got %v, want %v", l, got, want)
		}
		for v := VarID(1); v <= 3; v++ {
			if got := s.InstantiatedVar(v); got != False {
				t.Errorf("decide(%s)+undo: InstantiatedVar(%d) = %s, want false", l, v, got)
			}
		}
	}
}

type clauseSnapshot struct {
	subsumed bool
	freeLits int
}

func snapshotClauses(s *SatState) []clauseSnapshot {
	out := make([]clauseSnapshot, 0, s.numOriginalClauses)
	for i := 1; i <= s.numOriginalClauses; i++ {
		c := s.clause(ClauseID(i))
		out = append(out, clauseSnapshot{c.Subsumed, c.FreeLits})
	}
	return out
}

func clauseSnapshotsEqual(a, b []clauseSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestDecideLiteral_rejectsAlreadyInstantiated checks that deciding a
// literal whose variable is already fixed is a silent no-op.
func TestDecideLiteral_rejectsAlreadyInstantiated(t *testing.T) {
	s := threeClauseInstance(t)
	if conflict := s.DecideLiteral(Literal(1)); conflict != nil {
		t.Fatalf("DecideLiteral(1): want no conflict, got %s", conflict)
	}
	levelBefore := s.DecisionLevel()

	if conflict := s.DecideLiteral(Literal(3)); conflict != nil {
		t.Errorf("DecideLiteral(3) on an already-instantiated variable: want nil, got %s", conflict)
	}
	if got := s.DecisionLevel(); got != levelBefore {
		t.Errorf("DecisionLevel() = %d, want unchanged %d", got, levelBefore)
	}
}

// TestUndoDecideLiteral_atRootIsNoOp covers the same precondition category
// for the inverse operation.
func TestUndoDecideLiteral_atRootIsNoOp(t *testing.T) {
	s := threeClauseInstance(t)
	s.UndoDecideLiteral()
	if got, want := s.DecisionLevel(), 1; got != want {
		t.Errorf("DecisionLevel() = %d, want %d (undo at root must be a no-op)", got, want)
	}
}

// TestDecideLiteral_lastFreeVariable checks that deciding the only UNSET
// literal of an otherwise TRUE-satisfying assignment yields no conflict and
// leaves FreeLits monotone-consistent. Clause 1 ({1,2}) is already subsumed
// by variable 1; variable 2 never appears in any other (non-subsumed)
// clause, so deciding it touches no clause accounting at all.
func TestDecideLiteral_lastFreeVariable(t *testing.T) {
	s, err := NewSatState(2, [][]Literal{lits(1, 2)})
	if err != nil {
		t.Fatalf("NewSatState(): want no error, got %s", err)
	}
	if conflict := s.DecideLiteral(Literal(1)); conflict != nil {
		t.Fatalf("DecideLiteral(1): want no conflict, got %s", conflict)
	}
	c := s.clause(ClauseID(1))
	if !c.Subsumed || c.FreeLits != 2 {
		t.Fatalf("clause 1 after deciding 1: Subsumed=%v FreeLits=%d, want true/2", c.Subsumed, c.FreeLits)
	}

	if conflict := s.DecideLiteral(Literal(2)); conflict != nil {
		t.Errorf("DecideLiteral(2) on the last free variable: want no conflict, got %s", conflict)
	}
	if got := s.InstantiatedVar(2); got != True {
		t.Errorf("InstantiatedVar(2) = %s, want true", got)
	}
	if got, want := c.FreeLits, 2; got != want {
		t.Errorf("clause 1 FreeLits after deciding 2 = %d, want %d (untouched, already subsumed)", got, want)
	}
}

// TestUnitResolution_duplicateLiteralsMatchDeduplicated checks that
// duplicate literals in input clauses do not affect solver behaviour versus
// the deduplicated input.
func TestUnitResolution_duplicateLiteralsMatchDeduplicated(t *testing.T) {
	withDupes, err := NewSatState(2, [][]Literal{
		lits(1, 1, 2, 2),
		lits(-1, -1, 2),
	})
	if err != nil {
		t.Fatalf("NewSatState() with duplicate literals: want no error, got %s", err)
	}
	deduped, err := NewSatState(2, [][]Literal{
		lits(1, 2),
		lits(-1, 2),
	})
	if err != nil {
		t.Fatalf("NewSatState() deduplicated: want no error, got %s", err)
	}

	cWithDupes := withDupes.DecideLiteral(Literal(1))
	cDeduped := deduped.DecideLiteral(Literal(1))
	if (cWithDupes == nil) != (cDeduped == nil) {
		t.Fatalf("conflict mismatch: with dupes = %v, deduped = %v", cWithDupes, cDeduped)
	}

	for v := VarID(1); v <= 2; v++ {
		if got, want := withDupes.InstantiatedVar(v), deduped.InstantiatedVar(v); got != want {
			t.Errorf("variable %d: InstantiatedVar = %s (with dupes), %s (deduplicated)", v, got, want)
		}
		if got, want := withDupes.ImpliedLiteral(v), deduped.ImpliedLiteral(v); got != want {
			t.Errorf("variable %d: ImpliedLiteral = %s (with dupes), %s (deduplicated)", v, got, want)
		}
	}
}
