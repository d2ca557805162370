// Command spcplay loads a .spc snapshot and either plays it back through
// an audio sink, drops into the interactive debugger, or prints a
// disassembly listing starting at the snapshot's entry point. Grounded
// on the teacher's gopher2600.go mode dispatch (modalflag.Modes.Mode()
// switching into play/debug/disasm functions, each calling NewMode()
// and defining its own flag set before Parse()).
package main

import (
	"fmt"
	"os"

	"github.com/spc700-sound/spcsound/audiosink"
	"github.com/spc700-sound/spcsound/debugger"
	"github.com/spc700-sound/spcsound/disasm"
	"github.com/spc700-sound/spcsound/logger"
	"github.com/spc700-sound/spcsound/machine"
	"github.com/spc700-sound/spcsound/modalflag"
	"github.com/spc700-sound/spcsound/scheduler"
	"github.com/spc700-sound/spcsound/snapshot"
	"github.com/spc700-sound/spcsound/statsview"
)

func main() {
	if err := launch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}
}

func launch(args []string) error {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "DEBUG", "DISASM")
	md.AddDefaultSubMode("PLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch md.Mode() {
	case "DEBUG":
		return runDebug(md)
	case "DISASM":
		return runDisasm(md)
	default:
		return runPlay(md)
	}
}

// loadSnapshot reads and installs a .spc file, printing a one-line
// summary of it (with the ID666 song and game titles when present)
// before returning the wired Machine.
func loadSnapshot(path string) (*machine.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	state, err := snapshot.Load(data)
	if err != nil {
		return nil, err
	}

	m := machine.New()
	m.LoadState(state.PCReg, state.A, state.X, state.Y, state.PSW, state.SP, state.RAM, state.DSPRegs)
	fmt.Println(state.String())
	return m, nil
}

func runPlay(md *modalflag.Modes) error {
	md.NewMode()
	wavOut := md.AddString("wav", "", "write output to a WAV file instead of the live audio device")
	stats := md.AddBool("stats", false, "launch the live statsview dashboard")
	echoLog := md.AddBool("log", false, "echo the central log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("spcplay: play mode requires exactly one .spc file argument")
	}

	m, err := loadSnapshot(md.GetArg(0))
	if err != nil {
		return err
	}

	var sink audiosink.Sink
	if *wavOut != "" {
		sink = audiosink.NewWavSink(*wavOut)
	} else {
		sdlSink, err := audiosink.NewSDLSink()
		if err != nil {
			return fmt.Errorf("spcplay: opening audio device: %w", err)
		}
		sink = sdlSink
	}
	defer sink.Close()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	sched := scheduler.New(m, sink)
	return sched.Run()
}

func runDebug(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("spcplay: debug mode requires exactly one .spc file argument")
	}

	m, err := loadSnapshot(md.GetArg(0))
	if err != nil {
		return err
	}

	// a debug session drains into a ring buffer rather than a live or
	// WAV sink; the REPL is about inspecting CPU/DSP state, not about
	// producing audio.
	sched := scheduler.New(m, audiosink.NewRingBuffer(4096))
	dbg := debugger.New(m, sched)
	return dbg.Run(debugger.NewTerminal())
}

func runDisasm(md *modalflag.Modes) error {
	md.NewMode()
	count := md.AddInt("count", 32, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("spcplay: disasm mode requires exactly one .spc file argument")
	}

	m, err := loadSnapshot(md.GetArg(0))
	if err != nil {
		return err
	}

	for _, ins := range disasm.Range(m.Fabric, m.CPU.Reg.PC, *count) {
		fmt.Printf("%04x  %s\n", ins.Addr, ins.Text)
	}
	return nil
}
