// Package main provides the entry point for apexsim, a cycle-accurate
// five-stage APEX instruction pipeline simulator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/apex-sim/apexsim/config"
	"github.com/apex-sim/apexsim/loader"
	"github.com/apex-sim/apexsim/pipeline"
	"github.com/apex-sim/apexsim/report"
	"github.com/apex-sim/apexsim/state"
)

var (
	multiFU    = flag.Bool("multi-fu", false, "Use the multi-function-unit engine instead of the single-FU engine")
	configPath = flag.String("config", "", "Path to engine configuration JSON file")
)

func main() {
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "APEX_Help: Usage %s <program.json> <mode> [cycles|address]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nModes: Initialize, Simulate, Display, Single_Step, ShowMem\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "APEX CPU Pipeline Simulator\n")

	programPath := flag.Arg(0)
	mode := flag.Arg(1)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "APEX_Error: %v\n", err)
		os.Exit(1)
	}

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "APEX_Error: Unable to load program: %v\n", err)
		os.Exit(1)
	}

	run := report.NewRun()

	switch mode {
	case "Initialize":
		report.LoaderSummary(os.Stdout, run, programPath, len(prog.Code))
		os.Exit(0)
	case "Simulate":
		runToCompletion(prog, cfg, cyclesArg(2), false)
	case "Display":
		runToCompletion(prog, cfg, cyclesArg(2), true)
	case "Single_Step":
		runSingleStep(prog, cfg)
	case "ShowMem":
		runShowMem(prog, cfg, addrArg(2))
	default:
		fmt.Fprintf(os.Stderr, "APEX_Help: Usage %s <program.json> <mode> [cycles|address]\n", os.Args[0])
		os.Exit(1)
	}
}

func loadConfig() (*config.EngineConfig, error) {
	if *configPath == "" {
		return config.DefaultEngineConfig(), nil
	}
	return config.LoadConfig(*configPath)
}

func cyclesArg(i int) uint64 {
	if flag.NArg() <= i {
		return 0
	}
	n, err := strconv.ParseUint(flag.Arg(i), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func addrArg(i int) int {
	if flag.NArg() <= i {
		return 0
	}
	n, _ := strconv.Atoi(flag.Arg(i))
	return n
}

// engine is the common surface runToCompletion and runSingleStep drive,
// satisfied by both pipeline.SingleFUPipeline and pipeline.MultiFUPipeline.
type engine interface {
	Tick() bool
	Halted() bool
	Stats() pipeline.Stats
	Stages() []pipeline.StageState
}

// stageSnapshots renders an engine's current stage latches as
// report.StageSnapshot values for the Display/Single_Step per-cycle trace.
func stageSnapshots(eng engine) []report.StageSnapshot {
	stages := eng.Stages()
	snaps := make([]report.StageSnapshot, len(stages))
	for i, s := range stages {
		snaps[i] = report.StageSnapshot{
			Name:     s.Name,
			HasInsn:  s.Latch.HasInsn,
			Mnemonic: s.Latch.Inst.Mnemonic,
		}
	}
	return snaps
}

func newEngine(prog *loader.Program, cfg *config.EngineConfig) (engine, *state.ArchState) {
	arch := state.NewArchState(cfg)
	if *multiFU {
		return pipeline.NewMultiFUPipeline(prog.Code, arch, cfg), arch
	}
	return pipeline.NewSingleFUPipeline(prog.Code, arch), arch
}

func runToCompletion(prog *loader.Program, cfg *config.EngineConfig, cycleArg uint64, verbose bool) {
	eng, arch := newEngine(prog, cfg)

	cycleCap := cfg.CycleCap
	if cycleArg > 0 {
		cycleCap = cycleArg
	}

	for i := uint64(0); i < cycleCap && !eng.Halted(); i++ {
		eng.Tick()
		if verbose {
			report.StageTrace(os.Stdout, eng.Stats().Cycles, arch.Z, stageSnapshots(eng)...)
		}
	}

	report.Complete(os.Stdout, eng.Stats(), eng.Halted())
	report.RegisterFile(os.Stdout, arch.Regs)
	report.DataMemory(os.Stdout, arch.Mem)
}

func runSingleStep(prog *loader.Program, cfg *config.EngineConfig) {
	eng, arch := newEngine(prog, cfg)
	scanner := bufio.NewScanner(os.Stdin)

	for !eng.Halted() {
		eng.Tick()
		report.StageTrace(os.Stdout, eng.Stats().Cycles, arch.Z, stageSnapshots(eng)...)

		if eng.Halted() {
			break
		}

		fmt.Fprintf(os.Stdout, "Press <enter> to advance the clock, or 'q' to quit:\n")
		if !scanner.Scan() {
			break
		}
		if scanner.Text() == "q" {
			break
		}
	}

	report.Complete(os.Stdout, eng.Stats(), eng.Halted())
	report.RegisterFile(os.Stdout, arch.Regs)
	report.DataMemory(os.Stdout, arch.Mem)
}

func runShowMem(prog *loader.Program, cfg *config.EngineConfig, addr int) {
	eng, arch := newEngine(prog, cfg)

	for i := uint64(0); i < cfg.CycleCap && !eng.Halted(); i++ {
		eng.Tick()
	}

	report.MemoryWord(os.Stdout, arch.Mem, addr)
}
