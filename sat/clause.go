package sat

import "strings"

// Clause is one entry of the clause arena. Literals is fixed after
// construction; Subsumed/SubsumedOn/FreeLits are the only fields the
// propagation engine mutates afterwards.
//
// This tracks a free-literal count and a single subsuming literal rather
// than watching two literals per clause: a caller can read a clause's exact
// subsumption and free-literal state at any point, which a watched-literal
// scheme doesn't keep precisely up to date between propagations. See
// DESIGN.md for the full comparison.
type Clause struct {
	Index      ClauseID
	Literals   []Literal
	Subsumed   bool
	SubsumedOn Literal
	FreeLits   int
	DecLevel   int // -1 for an original clause; assertion level for a learned one.

	marked bool
}

// newClause allocates a clause over lits. DecLevel starts at -1 (an
// original's permanent value); for a learned clause the caller overwrites it
// with the real assertion level before wiring the clause in (see
// SatState.analyzeConflict) — -1 is only ever a transient default here.
func newClause(idx ClauseID, lits []Literal) *Clause {
	return &Clause{
		Index:    idx,
		Literals: lits,
		FreeLits: len(lits),
		DecLevel: -1,
	}
}

// MarkClause sets the caller-reserved mark on c. The engine itself never
// reads or writes this flag.
func (c *Clause) MarkClause() { c.marked = true }

// UnmarkClause clears the caller-reserved mark on c.
func (c *Clause) UnmarkClause() { c.marked = false }

// MarkedClause reports the caller-reserved mark on c.
func (c *Clause) MarkedClause() bool { return c.marked }

func (c *Clause) String() string {
	var b strings.Builder
	for i, l := range c.Literals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.String())
	}
	return b.String()
}
