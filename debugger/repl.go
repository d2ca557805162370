package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// Run starts the interactive REPL on term, driving d until the user
// quits or the input stream ends. Grounded on the teacher's
// debugger.inputLoop command dispatch, narrowed to the command set
// SPEC_FULL.md section 4.8 names.
func (d *Debugger) Run(term Terminal) error {
	defer term.Close()
	term.WriteLine("spc700 debugger ready; type 'help' for commands")
	for {
		line, err := term.ReadLine("(spc) ")
		if err != nil {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			term.WriteLine("step [n] | continue | break <hex> | delete <hex> | breaks | regs | mem <start> <end> | trace on|off | quit")
		case "step", "s":
			n := 1
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					n = v
				}
			}
			if err := d.stepN(n, term); err != nil {
				return err
			}
			term.WriteLine(d.DumpRegisters())
		case "continue", "c":
			if err := d.Continue(); err != nil {
				term.WriteLine(fmt.Sprintf("fatal: %v", err))
				return err
			}
			term.WriteLine(d.DumpRegisters())
		case "break", "b":
			d.handleAddrCommand(fields, term, "break", d.AddBreakpoint)
		case "delete":
			d.handleAddrCommand(fields, term, "delete", d.RemoveBreakpoint)
		case "breaks":
			for _, pc := range d.Breakpoints() {
				term.WriteLine(fmt.Sprintf("%04x", pc))
			}
		case "regs", "r":
			term.WriteLine(d.DumpRegisters())
		case "mem", "m":
			if len(fields) < 3 {
				term.WriteLine("usage: mem <hex start> <hex end>")
				continue
			}
			start, err1 := parseHex16(fields[1])
			end, err2 := parseHex16(fields[2])
			if err1 != nil || err2 != nil {
				term.WriteLine("bad address")
				continue
			}
			term.WriteLine(d.DumpMemory(start, end))
		case "trace":
			if len(fields) < 2 {
				term.WriteLine("usage: trace on|off")
				continue
			}
			d.SetTrace(fields[1] == "on")
		case "quit", "q":
			return nil
		default:
			term.WriteLine(fmt.Sprintf("unknown command %q", fields[0]))
		}
	}
}

func (d *Debugger) stepN(n int, term Terminal) error {
	for i := 0; i < n; i++ {
		if err := d.Step(); err != nil {
			term.WriteLine(fmt.Sprintf("fatal: %v", err))
			return err
		}
	}
	return nil
}

func (d *Debugger) handleAddrCommand(fields []string, term Terminal, name string, apply func(uint16)) {
	if len(fields) < 2 {
		term.WriteLine(fmt.Sprintf("usage: %s <hex address>", name))
		return
	}
	pc, err := parseHex16(fields[1])
	if err != nil {
		term.WriteLine(err.Error())
		return
	}
	apply(pc)
}

func parseHex16(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad hex address %q", s)
	}
	return uint16(v), nil
}
