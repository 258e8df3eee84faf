// Command perft walks the move generation tree of strictly legal
// moves to a given depth and counts the visited leaf nodes.  The
// resulting counts are compared against predetermined values to
// validate move generation, legality filtering, and board mutation.
//
// See https://www.chessprogramming.org/Perft_Results
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/clinaresl/table"
	"github.com/treepeck/tarrasch"
	"github.com/treepeck/tarrasch/internal/logging"
)

var log = logging.GetLog()

func main() {
	fen := flag.String("fen", tarrasch.InitialPos, "Position to search from")
	depth := flag.Int("depth", 2, "Performance test depth")
	divide := flag.Bool("divide", false, "Print the per-root-move breakdown")
	cpuprofile := flag.String("cpuprofile", "", "File to write a cpu profile")
	memprofile := flag.String("memprofile", "", "File to write a memory profile")

	flag.Parse()

	pos, err := tarrasch.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	start := time.Now()

	if *divide {
		entries := tarrasch.Divide(&pos, *depth)

		tab, err := table.NewTable("l | r")
		if err != nil {
			log.Fatal(err)
		}
		tab.AddRow("move", "nodes")
		tab.AddSingleRule()

		var nodes uint64
		for _, entry := range entries {
			tab.AddRow(entry.Move.UCI(), entry.Nodes)
			nodes += entry.Nodes
		}
		tab.AddSingleRule()
		tab.AddRow("total", nodes)

		fmt.Println(tab)
		log.Infof("Elapsed time: %s", time.Since(start))
		return
	}

	nodes := tarrasch.Perft(&pos, *depth)
	log.Infof("Nodes reached: %d", nodes)
	log.Infof("Elapsed time: %s", time.Since(start))
}
