package sat

import "github.com/rhartert/yagh"

// OccurrenceRank ranks variables by how many original clauses mention them
// (Variable.NumMentioned), highest first. It is advisory only: nothing in
// this package consults it, and DecideLiteral never calls into it. A
// caller-built search loop may use it to pick the next variable to decide.
type OccurrenceRank struct {
	order *yagh.IntMap[int]
}

// NewOccurrenceRank builds a ranking over every variable of s, keyed by
// NumMentioned. The order among variables with equal NumMentioned is not
// defined.
func NewOccurrenceRank(s *SatState) *OccurrenceRank {
	r := &OccurrenceRank{order: yagh.New[int](s.numVars)}
	for v := 1; v <= s.numVars; v++ {
		r.order.Put(v, -s.vars[v].NumMentioned)
	}
	return r
}

// Next pops the variable with the highest remaining NumMentioned. The
// second return value is false once the ranking is exhausted.
func (r *OccurrenceRank) Next() (VarID, bool) {
	item, ok := r.order.Pop()
	if !ok {
		return 0, false
	}
	return VarID(item.Elem), true
}
