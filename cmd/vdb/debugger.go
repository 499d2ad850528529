package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meadori/vibe6502/server"
)

var errUsage = errors.New("usage")

// debugger executes vdb commands against a remote emulator.
type debugger struct {
	client *server.Client
	out    io.Writer

	// lastErr is the most recent command failure, checked by scripts
	lastErr error
}

func newDebugger(client *server.Client, out io.Writer) *debugger {
	return &debugger{client: client, out: out}
}

// runScript executes one command per line. Empty lines and lines starting
// with '#' are skipped. The first failing command aborts the script.
func (d *debugger) runScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Fprintf(d.out, "(vdb) %s\n", line)
		quit := d.exec(line)
		if d.lastErr != nil {
			return fmt.Errorf("line %d: %w", lineNo, d.lastErr)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs a single command line and reports whether the session ends.
func (d *debugger) exec(line string) bool {
	d.lastErr = nil
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	ctx := context.Background()
	cmd, args := parts[0], parts[1:]

	var err error
	switch {
	case cmd == "help" || cmd == "h":
		d.help()
	case cmd == "quit" || cmd == "q" || cmd == "exit":
		return true
	case cmd == "regs" || cmd == "i" && len(args) > 0 && args[0] == "r":
		err = d.printRegs(ctx)
	case cmd == "step" || cmd == "s":
		var trace string
		if trace, err = d.client.Step(ctx); err == nil {
			fmt.Fprintln(d.out, trace)
		}
	case cmd == "until" || cmd == "u":
		err = d.until(ctx, args)
	case cmd == "line":
		var ok bool
		if ok, err = d.client.RunScanline(ctx); err == nil {
			fmt.Fprintf(d.out, "Scanline complete: %v\n", ok)
			err = d.printRegs(ctx)
		}
	case cmd == "x" || strings.HasPrefix(cmd, "x/"):
		err = d.examine(ctx, cmd, args)
	case cmd == "dis" || cmd == "d":
		err = d.disassemble(ctx, args)
	case cmd == "pause" || cmd == "p":
		if err = d.client.Pause(ctx); err == nil {
			fmt.Fprintln(d.out, "Emulator paused.")
			err = d.printRegs(ctx)
		}
	case cmd == "run" || cmd == "c" || cmd == "continue":
		if err = d.client.Resume(ctx); err == nil {
			fmt.Fprintln(d.out, "Emulator running...")
		}
	case cmd == "reset":
		if err = d.client.Reset(ctx); err == nil {
			err = d.printRegs(ctx)
		}
	case cmd == "nmi":
		if err = d.client.TriggerNMI(ctx); err == nil {
			err = d.printRegs(ctx)
		}
	case cmd == "trace":
		err = d.trace(ctx, args)
	case cmd == "save" && len(args) == 1:
		if err = d.client.SaveState(ctx, args[0]); err == nil {
			fmt.Fprintf(d.out, "State saved to %s\n", args[0])
		}
	case cmd == "load" && len(args) == 1:
		if err = d.client.LoadState(ctx, args[0]); err == nil {
			fmt.Fprintf(d.out, "State loaded from %s\n", args[0])
		}
	case cmd == "save" || cmd == "load":
		err = fmt.Errorf("%w: %s <file>", errUsage, cmd)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		d.lastErr = err
		fmt.Fprintf(d.out, "Error: %v\n", err)
	}
	return false
}

func (d *debugger) help() {
	fmt.Fprint(d.out, `Commands:
  run, c             - Resume execution
  pause, p           - Pause execution
  step, s            - Step one instruction
  until, u <addr>    - Run until PC reaches addr
  line               - Run one scanline
  regs, i r          - Print CPU registers
  x[/n] <addr>       - Examine memory (e.g. x 0000 or x/16 0000)
  dis, d <addr> [n]  - Disassemble n instructions
  reset              - Reset the CPU
  nmi                - Trigger a non-maskable interrupt
  trace on|off       - Toggle the CPU trace on the emulator host
  save <file>        - Save state on the emulator host
  load <file>        - Load state on the emulator host
  quit, q            - Exit debugger
`)
}

func (d *debugger) printRegs(ctx context.Context) error {
	state, err := d.client.GetCPUState(ctx)
	if err != nil {
		return fmt.Errorf("getting CPU state: %w", err)
	}
	fmt.Fprintln(d.out, state)
	return nil
}

func (d *debugger) until(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: until <addr>", errUsage)
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	ok, err := d.client.RunToPC(ctx, addr)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(d.out, "$%04X not reached within a frame\n", addr)
	}
	return d.printRegs(ctx)
}

func (d *debugger) examine(ctx context.Context, cmd string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: x <addr> or x/<count> <addr>", errUsage)
	}
	count := 1
	if countStr, ok := strings.CutPrefix(cmd, "x/"); ok {
		n, err := strconv.Atoi(countStr)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid count: %s", countStr)
		}
		count = n
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	data, err := d.client.ReadMemoryBlock(ctx, addr, count)
	if err != nil {
		return fmt.Errorf("reading memory: %w", err)
	}
	d.printHexDump(addr, data)
	return nil
}

func (d *debugger) disassemble(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: dis <addr> [count]", errUsage)
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	count := 10
	if len(args) == 2 {
		if count, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid count: %s", args[1])
		}
	}

	listing, err := d.client.Disassemble(ctx, addr, count)
	if err != nil {
		return err
	}
	fmt.Fprint(d.out, listing)
	return nil
}

func (d *debugger) trace(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("%w: trace on|off", errUsage)
	}
	on := args[0] == "on"
	if err := d.client.SetTrace(ctx, on); err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Trace %s.\n", args[0])
	return nil
}

// parseAddress accepts hex with an optional 0x or $ prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "$")
	addr, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %s", s)
	}
	return uint16(addr), nil
}

func (d *debugger) printHexDump(startAddr uint16, data []byte) {
	for i := 0; i < len(data); i += 16 {
		fmt.Fprintf(d.out, "%04X:", startAddr+uint16(i))
		end := min(i+16, len(data))
		for j := i; j < end; j++ {
			fmt.Fprintf(d.out, " %02X", data[j])
		}
		fmt.Fprintln(d.out)
	}
}
