package cpu

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrUnsupportedOpcode is returned for opcodes outside the supported set.
	// The instruction is not executed; PC and Ticks stay where they were.
	ErrUnsupportedOpcode = errors.New("unsupported opcode")

	// ErrDispatchInconsistency is returned when an instruction met an
	// addressing mode it cannot serve. The instruction completed with a zero
	// operand, so machine state is architecturally wrong from here on.
	ErrDispatchInconsistency = errors.New("internal dispatch inconsistency")
)

// OpcodeError describes a malformed instruction stream.
type OpcodeError struct {
	Kind   error
	Opcode byte
	PC     uint16
	Mode   Mode
}

func (e *OpcodeError) Error() string {
	if errors.Is(e.Kind, ErrDispatchInconsistency) {
		return fmt.Sprintf("%v: opcode $%02X at $%04X cannot use %v addressing", e.Kind, e.Opcode, e.PC, e.Mode)
	}
	return fmt.Sprintf("%v: $%02X at $%04X", e.Kind, e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return e.Kind
}

// inconsistent records that the current instruction reached a mode its
// handler has no case for. The first fault of an instruction wins.
func (c *CPU) inconsistent(instr *Instruction) {
	c.logger.Error("internal dispatch inconsistency",
		slog.String("opcode", hex8(c.opcode)),
		slog.String("pc", hex16(c.at)),
		slog.String("instruction", instr.Name),
		slog.String("mode", instr.Mode.String()))
	if c.fault == nil {
		c.fault = &OpcodeError{Kind: ErrDispatchInconsistency, Opcode: c.opcode, PC: c.at, Mode: instr.Mode}
	}
}

func hex8(v byte) string {
	return fmt.Sprintf("$%02X", v)
}

func hex16(v uint16) string {
	return fmt.Sprintf("$%04X", v)
}
