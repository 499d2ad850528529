package cpu

import (
	"fmt"
	"io"
	"os"
)

// BreakKind selects when RunUntilCondition stops.
type BreakKind int

const (
	// RunToPC stops once PC equals the target after an instruction.
	RunToPC BreakKind = iota
	// RunNext stops after exactly one instruction.
	RunNext
	// RunToScanline stops once the scanline budget is spent.
	RunToScanline
	// RunFrame never stops on its own; only the budget ends the call.
	RunFrame
)

func (k BreakKind) String() string {
	switch k {
	case RunToPC:
		return "run to pc"
	case RunNext:
		return "run next"
	case RunToScanline:
		return "run to scanline"
	case RunFrame:
		return "run frame"
	}
	return "unknown break condition"
}

// BreakCondition is the stopping rule of one RunUntilCondition call.
type BreakCondition struct {
	Kind BreakKind
	PC   uint16
}

// BreakAtPC runs until PC equals pc.
func BreakAtPC(pc uint16) BreakCondition {
	return BreakCondition{Kind: RunToPC, PC: pc}
}

// BreakNext runs a single instruction.
func BreakNext() BreakCondition {
	return BreakCondition{Kind: RunNext}
}

// BreakScanline runs until the scanline budget is spent.
func BreakScanline() BreakCondition {
	return BreakCondition{Kind: RunToScanline}
}

// BreakFrame runs without a stopping rule of its own.
func BreakFrame() BreakCondition {
	return BreakCondition{Kind: RunFrame}
}

// scanlineSpent reports whether the current scanline window is used up. The
// subtraction keeps the comparison correct across Ticks wraparound.
func (c *CPU) scanlineSpent() bool {
	return int32(c.Ticks-c.scanlineEnd) >= 0
}

// RunUntilCondition executes instructions until cond is satisfied or the
// scanline budget is spent, and reports whether cond was satisfied. Each
// call that starts with a spent budget opens a new scanline window; cycles
// that overshot the previous window count against the new one.
func (c *CPU) RunUntilCondition(mem Bus, cond BreakCondition) (bool, error) {
	start := c.Ticks
	if c.scanlineSpent() {
		c.scanlineEnd += c.cfg.TicksPerScanline
		if c.scanlineSpent() {
			// far behind after direct calls to Step
			c.scanlineEnd = c.Ticks + c.cfg.TicksPerScanline
		}
	}

	for !c.scanlineSpent() {
		// single steps are shown by the caller after the instruction
		if c.Debug && cond.Kind != RunNext {
			c.trace()
		}

		if err := c.Step(mem); err != nil {
			return false, err
		}

		switch cond.Kind {
		case RunToPC:
			if c.PC == cond.PC {
				return true, nil
			}
		case RunNext:
			if c.Ticks != start {
				return true, nil
			}
		case RunToScanline:
			if c.scanlineSpent() {
				return true, nil
			}
		case RunFrame:
		}
	}

	return false, nil
}

// ScanlineRemaining returns the ticks left in the current scanline window.
func (c *CPU) ScanlineRemaining() uint32 {
	if c.scanlineSpent() {
		return 0
	}
	return c.scanlineEnd - c.Ticks
}

func (c *CPU) trace() {
	var w io.Writer = os.Stdout
	if c.cfg.Trace != nil {
		w = c.cfg.Trace
	}
	fmt.Fprintln(w, c)
}

// String renders the full processor state in the fixed trace layout.
func (c *CPU) String() string {
	return fmt.Sprintf("{opcode:%02x a:%02x x:%02x y:%02x sp:%02x pc:%04x flags:%s} tick: %d",
		c.opcode, c.A, c.X, c.Y, c.SP, c.PC, c.P, c.Ticks)
}
