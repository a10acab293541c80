package sat

import "strconv"

// VarID identifies a variable in the range 1..N. The zero value is the NONE
// sentinel returned by lookups on out-of-range input.
type VarID int

// Literal is a signed literal index: positive for the positive polarity of a
// variable, negative for the negative polarity. Range is [-N,-1] ∪ [1,N];
// zero is the NONE sentinel. Unlike a packed internal representation, this
// type uses the caller-facing numbering directly, so a Literal can be handed
// straight to a caller or read straight off a DIMACS line without translation.
type Literal int

// ClauseID identifies a clause: 1..M for original clauses, M+1.. for learned
// ones in the order they were asserted. Zero is the NONE sentinel.
type ClauseID int

// PosLiteral returns the positive literal of v.
func PosLiteral(v VarID) Literal {
	return Literal(v)
}

// NegLiteral returns the negative literal of v.
func NegLiteral(v VarID) Literal {
	return Literal(-v)
}

// Opp returns the opposite polarity of l.
func Opp(l Literal) Literal {
	return -l
}

// LiteralVar returns the variable underlying l, ignoring polarity.
func LiteralVar(l Literal) VarID {
	if l < 0 {
		return VarID(-l)
	}
	return VarID(l)
}

// IsPositive reports whether l is the positive polarity of its variable.
func (l Literal) IsPositive() bool {
	return l > 0
}

func (l Literal) String() string {
	return strconv.Itoa(int(l))
}
