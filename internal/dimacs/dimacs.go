package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ahoff23/satstate/sat"
)

// Instance is the fully-read result of parsing one DIMACS CNF file: the
// declared variable count and the list of clauses, each a set of signed
// literal indices in the ±1..±N convention callers use throughout this
// module.
//
// This package hands back the whole instance at once rather than streaming
// variables and clauses one at a time into a live solver as the file is
// scanned: a Store takes its full variable count at construction and never
// grows afterwards, so there is no live solver to stream into mid-parse.
type Instance struct {
	NumVars int
	Clauses [][]sat.Literal
}

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

// LoadDIMACS parses the DIMACS CNF file at filename into an Instance.
func LoadDIMACS(filename string, gzipped bool) (*Instance, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()
	return parseDIMACS(r)
}

// parseDIMACS parses the DIMACS CNF grammar: lines starting with 'c' or '%'
// are comments, a "p cnf <V> <C>" line declares the instance, and each
// subsequent non-comment line is a whitespace-separated list of signed
// integers terminated by 0.
func parseDIMACS(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)

	nVars := 0
	nClauses := 0
	for {
		if !scanner.Scan() {
			return nil, fmt.Errorf("header line not found")
		}
		line := scanner.Text()
		if line == "" || line[0] == 'c' || line[0] == '%' {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 || parts[0] != "p" || parts[1] != "cnf" {
			return nil, fmt.Errorf("malformed header line %q", line)
		}
		var err error
		nVars, err = strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("could not parse header: %w", err)
		}
		nClauses, err = strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse header: %w", err)
		}
		break
	}

	inst := &Instance{
		NumVars: nVars,
		Clauses: make([][]sat.Literal, 0, nClauses),
	}

	for nClauses > 0 && scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == 'c' || line[0] == '%' {
			continue
		}

		var clause []sat.Literal
		for _, p := range strings.Fields(line) {
			l, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("could not parse literal %q: %w", p, err)
			}
			if l == 0 {
				break // clause terminator
			}
			if l < 0 {
				clause = append(clause, sat.NegLiteral(sat.VarID(-l)))
			} else {
				clause = append(clause, sat.PosLiteral(sat.VarID(l)))
			}
		}
		inst.Clauses = append(inst.Clauses, clause)
		nClauses--
	}

	return inst, nil
}
