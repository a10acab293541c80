// Package parsers wires the third-party github.com/rhartert/dimacs reader
// into the sat package's Store construction.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/ahoff23/satstate/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename with
// github.com/rhartert/dimacs's ReadBuilder and builds a fresh SatState over
// the resulting instance.
//
// The builder collects the complete instance first and constructs the
// SatState only once scanning finishes, rather than streaming variables and
// clauses into a live solver as the file is read: a Store takes its full
// variable count at construction and never grows afterwards, so there is no
// live solver to stream into mid-parse.
func LoadDIMACS(filename string, gzipped bool) (*sat.SatState, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return sat.NewSatState(b.numVars, b.clauses)
}

// builder implements dimacs.Builder, collecting a full Instance rather than
// feeding a live solver (see LoadDIMACS).
type builder struct {
	numVars int
	clauses [][]sat.Literal
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	b.numVars = nVars
	b.clauses = make([][]sat.Literal, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, 0, len(tmpClause))
	for _, l := range tmpClause {
		if l < 0 {
			clause = append(clause, sat.NegLiteral(sat.VarID(-l)))
		} else {
			clause = append(clause, sat.PosLiteral(sat.VarID(l)))
		}
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
