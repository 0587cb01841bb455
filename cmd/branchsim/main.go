// branchsim replays a branch trace through a configurable predictor and
// reports aggregate hit/miss/no-prediction counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/qbriceno/branchsim/predictor"
	"github.com/qbriceno/branchsim/report"
	"github.com/qbriceno/branchsim/trace"
)

const progressInterval = 10000

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() runConfig {
	var cfg runConfig
	var method string
	flag.StringVar(&method, "method", string(predictor.KindOneLevel), "predictor method: one-level, two-level-global, gshare, two-level-local, tournament, tage")
	flag.IntVar(&cfg.cbits, "cbits", 2, "counter bits")
	flag.IntVar(&cfg.cinit, "cinit", 0, "initial counter state")
	flag.IntVar(&cfg.phtsize, "phtsize", 4096, "pattern history table size (power of two)")
	flag.StringVar(&cfg.trace, "trace", "", "path to the trace file")
	flag.IntVar(&cfg.pcbits, "pcbits", 64, "PC width in bits: 32 or 64")
	var seed int64
	flag.Int64Var(&seed, "seed", 1, "seed for TAGE's allocation PRNG")
	flag.Parse()
	cfg.method = predictor.Kind(method)
	cfg.seed = seed
	return cfg
}

func run(cfg runConfig) error {
	f, err := os.Open(cfg.trace)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := predictor.New(cfg.method, predictor.Config{
		CounterBits: cfg.cbits,
		Init:        cfg.cinit,
		PHTSize:     cfg.phtsize,
		Seed:        cfg.seed,
	})
	if err != nil {
		return err
	}

	pcMask := uint64(1)<<uint(cfg.pcbits) - 1

	tr := trace.NewReader(f)
	count := 0
	for {
		ev, ok, err := tr.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		p.Observe(ev.PC&pcMask, ev.Actual)
		count++
		if count%progressInterval == 0 {
			fmt.Printf("\rprocessed %d events", count)
		}
	}
	if count >= progressInterval {
		fmt.Println()
	}

	return report.Write(os.Stdout, report.Config{
		Method:      cfg.method,
		CounterBits: cfg.cbits,
		Init:        cfg.cinit,
		PHTSize:     cfg.phtsize,
	}, p.Stats())
}
