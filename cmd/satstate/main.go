// Command satstate is a thin CLI front end over the sat package. The
// package itself has no branching heuristic or search loop — those are a
// caller's responsibility — so this binary only demonstrates the library's
// boundary: loading an instance, running initial unit resolution, and
// exercising one bounded decide/undo/assert round, in the spirit of a
// caller-built search loop without actually being one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/ahoff23/satstate/parsers"
	"github.com/ahoff23/satstate/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip-compressed",
)

type config struct {
	instanceFile string
	gzip         bool
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzip:         *flagGzip,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

// demo runs one bounded decide/undo round against s, purely to exercise the
// library's boundary contract: it is not a search loop and makes no attempt
// to find a satisfying assignment.
func demo(s *sat.SatState) {
	for v := 1; v <= s.VarCount(); v++ {
		vid := sat.VarID(v)
		if s.InstantiatedVar(vid) == sat.True {
			continue
		}

		l := sat.PosLiteral(vid)
		fmt.Printf("c deciding literal %s\n", l)
		conflict := s.DecideLiteral(l)
		if conflict == nil {
			fmt.Printf("c decision level now %d, no conflict\n", s.DecisionLevel())
			s.UndoDecideLiteral()
			return
		}

		fmt.Printf("c conflict: asserting clause %s (assertion level %d)\n", conflict, conflict.DecLevel)
		for s.AtAssertionLevel(conflict) != sat.True {
			s.UndoDecideLiteral()
		}
		if c := s.AssertClause(conflict); c != nil {
			fmt.Printf("c secondary conflict while asserting: %s\n", c)
		}
		return
	}
	fmt.Println("c every variable already instantiated by unit resolution")
}

func run(cfg *config) error {
	s, err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzip)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", s.VarCount())
	fmt.Printf("c clauses:   %d\n", s.ClauseCount())

	if conflict := s.UnitResolution(); conflict != nil {
		fmt.Printf("c unit resolution found a top-level contradiction: %s\n", conflict)
		return nil
	}

	demo(s)
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
