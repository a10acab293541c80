package sat

// noLevel is the decision level of a variable that has not been
// instantiated; meaningless otherwise.
const noLevel = -1

// Variable is one entry of the variable arena, with back-pointers to its
// two literals.
type Variable struct {
	Index         VarID
	Instantiated  bool
	DecisionLevel int
	Pos           Literal
	Neg           Literal
	NumMentioned  int

	marked bool
}

func newVariable(idx VarID) *Variable {
	return &Variable{
		Index:         idx,
		DecisionLevel: noLevel,
		Pos:           PosLiteral(idx),
		Neg:           NegLiteral(idx),
	}
}

// MarkVar sets the caller-reserved mark on v. The engine itself never reads
// or writes this flag.
func (v *Variable) MarkVar() { v.marked = true }

// UnmarkVar clears the caller-reserved mark on v.
func (v *Variable) UnmarkVar() { v.marked = false }

// MarkedVar reports the caller-reserved mark on v.
func (v *Variable) MarkedVar() bool { return v.marked }
