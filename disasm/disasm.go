// Package disasm renders 6502 machine code as text in the layout of the
// nestest reference log.
package disasm

import (
	"fmt"
	"strings"

	"github.com/meadori/vibe6502/cpu"
	"github.com/retroenv/retrogolib/nes/addressing"
	nescpu "github.com/retroenv/retrogolib/nes/cpu"
)

// Reader is the memory a disassembler reads from. Reads must be free of side
// effects.
type Reader interface {
	Read(addr uint16) byte
}

// Line is one decoded instruction.
type Line struct {
	PC    uint16
	Bytes []byte
	Text  string
	Size  int

	// Unsupported is set for encodings the CPU does not execute.
	Unsupported bool
}

func (l Line) String() string {
	return fmt.Sprintf("%04X  %-8s %s", l.PC, hexBytes(l.Bytes), l.mnemonic())
}

func (l Line) mnemonic() string {
	if l.Unsupported {
		return "*" + l.Text
	}
	return l.Text
}

// Instruction decodes the instruction at pc.
func Instruction(mem Reader, pc uint16) Line {
	return decode(mem, pc, nil)
}

// Lines decodes count consecutive instructions starting at pc.
func Lines(mem Reader, pc uint16, count int) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		line := Instruction(mem, pc)
		lines = append(lines, line)
		pc += uint16(line.Size)
	}
	return lines
}

// Listing renders count instructions starting at pc, one per line.
func Listing(mem Reader, pc uint16, count int) string {
	var sb strings.Builder
	for _, line := range Lines(mem, pc, count) {
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LogLine renders the instruction at the CPU's PC followed by the register
// file, the way the nestest log does. Memory operands are annotated with the
// effective address and the value found there.
func LogLine(mem Reader, c *cpu.CPU, cycles uint32) string {
	line := decode(mem, c.PC, c)
	prefix := ' '
	if line.Unsupported {
		prefix = '*'
	}
	return fmt.Sprintf("%04X  %-8s %c%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		line.PC, hexBytes(line.Bytes), prefix, line.Text,
		c.A, c.X, c.Y, c.P.Byte(), c.SP, cycles)
}

func decode(mem Reader, pc uint16, regs *cpu.CPU) Line {
	b := mem.Read(pc)
	op := nescpu.Opcodes[b]
	if op.Instruction == nil {
		return Line{
			PC:          pc,
			Bytes:       []byte{b},
			Text:        fmt.Sprintf(".byte $%02X", b),
			Size:        1,
			Unsupported: true,
		}
	}

	size := operandSize(op.Addressing) + 1
	line := Line{
		PC:    pc,
		Bytes: make([]byte, size),
		Size:  size,
	}
	for i := range line.Bytes {
		line.Bytes[i] = mem.Read(pc + uint16(i))
	}
	_, supported := cpu.Lookup(b)
	line.Unsupported = !supported

	name := strings.ToUpper(op.Instruction.Name)
	operand := formatOperand(mem, regs, op, line.Bytes, pc)
	if operand == "" {
		line.Text = name
	} else {
		line.Text = name + " " + operand
	}
	return line
}

func operandSize(mode addressing.Mode) int {
	switch mode {
	case addressing.ImpliedAddressing, addressing.AccumulatorAddressing:
		return 0
	case addressing.AbsoluteAddressing, addressing.AbsoluteXAddressing, addressing.AbsoluteYAddressing, addressing.IndirectAddressing:
		return 2
	default:
		return 1
	}
}

func formatOperand(mem Reader, regs *cpu.CPU, op nescpu.Opcode, data []byte, pc uint16) string {
	var lo, hi byte
	if len(data) > 1 {
		lo = data[1]
	}
	if len(data) > 2 {
		hi = data[2]
	}
	abs := uint16(hi)<<8 | uint16(lo)
	name := op.Instruction.Name
	jump := name == nescpu.Jmp.Name || name == nescpu.Jsr.Name

	switch op.Addressing {
	case addressing.ImpliedAddressing:
		return ""
	case addressing.AccumulatorAddressing:
		return "A"
	case addressing.ImmediateAddressing:
		return fmt.Sprintf("#$%02X", lo)
	case addressing.RelativeAddressing:
		return fmt.Sprintf("$%04X", pc+2+uint16(int8(lo)))
	}

	if regs == nil {
		switch op.Addressing {
		case addressing.ZeroPageAddressing:
			return fmt.Sprintf("$%02X", lo)
		case addressing.ZeroPageXAddressing:
			return fmt.Sprintf("$%02X,X", lo)
		case addressing.ZeroPageYAddressing:
			return fmt.Sprintf("$%02X,Y", lo)
		case addressing.AbsoluteAddressing:
			return fmt.Sprintf("$%04X", abs)
		case addressing.AbsoluteXAddressing:
			return fmt.Sprintf("$%04X,X", abs)
		case addressing.AbsoluteYAddressing:
			return fmt.Sprintf("$%04X,Y", abs)
		case addressing.IndirectAddressing:
			return fmt.Sprintf("($%04X)", abs)
		case addressing.IndirectXAddressing:
			return fmt.Sprintf("($%02X,X)", lo)
		case addressing.IndirectYAddressing:
			return fmt.Sprintf("($%02X),Y", lo)
		}
		return ""
	}

	switch op.Addressing {
	case addressing.ZeroPageAddressing:
		return fmt.Sprintf("$%02X = %02X", lo, mem.Read(uint16(lo)))
	case addressing.ZeroPageXAddressing:
		addr := lo + regs.X
		return fmt.Sprintf("$%02X,X @ %02X = %02X", lo, addr, mem.Read(uint16(addr)))
	case addressing.ZeroPageYAddressing:
		addr := lo + regs.Y
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", lo, addr, mem.Read(uint16(addr)))
	case addressing.AbsoluteAddressing:
		if jump {
			return fmt.Sprintf("$%04X", abs)
		}
		return fmt.Sprintf("$%04X = %02X", abs, mem.Read(abs))
	case addressing.AbsoluteXAddressing:
		addr := abs + uint16(regs.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", abs, addr, mem.Read(addr))
	case addressing.AbsoluteYAddressing:
		addr := abs + uint16(regs.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", abs, addr, mem.Read(addr))
	case addressing.IndirectAddressing:
		return fmt.Sprintf("($%04X) = %04X", abs, jumpTarget(mem, regs, abs))
	case addressing.IndirectXAddressing:
		ptr := lo + regs.X
		addr := readWord(mem, uint16(ptr))
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", lo, ptr, addr, mem.Read(addr))
	case addressing.IndirectYAddressing:
		base := readWord(mem, uint16(lo))
		addr := base + uint16(regs.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", lo, base, addr, mem.Read(addr))
	}
	return ""
}

// jumpTarget follows the pointer of an indirect jump the way the CPU will.
func jumpTarget(mem Reader, regs *cpu.CPU, ptr uint16) uint16 {
	if regs.Config().LinearIndirectJump {
		return readWord(mem, ptr)
	}
	next := ptr&0xFF00 | uint16(byte(ptr)+1)
	return uint16(mem.Read(next))<<8 | uint16(mem.Read(ptr))
}

func readWord(mem Reader, addr uint16) uint16 {
	return uint16(mem.Read(addr+1))<<8 | uint16(mem.Read(addr))
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
