package disasm

import (
	"strings"
	"testing"

	"github.com/meadori/vibe6502/cpu"
	"github.com/retroenv/retrogolib/assert"
	nescpu "github.com/retroenv/retrogolib/nes/cpu"
)

type ram [65536]byte

func (r *ram) Read(addr uint16) byte {
	return r[addr]
}

func (r *ram) load(addr uint16, data ...byte) {
	for i, b := range data {
		r[addr+uint16(i)] = b
	}
}

func TestDispatchTableMatchesOpcodeMetadata(t *testing.T) {
	for op := 0; op < 256; op++ {
		instr, ok := cpu.Lookup(byte(op))
		if !ok {
			continue
		}
		meta := nescpu.Opcodes[op]
		assert.Equal(t, true, meta.Instruction != nil)
		assert.Equal(t, instr.Name, strings.ToUpper(meta.Instruction.Name))
		if instr.Name != "BRK" {
			assert.Equal(t, int(instr.Size), operandSize(meta.Addressing)+1)
		}
	}
}

func TestInstruction(t *testing.T) {
	tests := []struct {
		program []byte
		text    string
		size    int
	}{
		{[]byte{0x4C, 0xF5, 0xC5}, "JMP $C5F5", 3},
		{[]byte{0xA9, 0x00}, "LDA #$00", 2},
		{[]byte{0x86, 0x00}, "STX $00", 2},
		{[]byte{0xB5, 0x10}, "LDA $10,X", 2},
		{[]byte{0xB6, 0x10}, "LDX $10,Y", 2},
		{[]byte{0xBD, 0x00, 0x02}, "LDA $0200,X", 3},
		{[]byte{0x6C, 0xFF, 0x02}, "JMP ($02FF)", 3},
		{[]byte{0xA1, 0x80}, "LDA ($80,X)", 2},
		{[]byte{0x11, 0x33}, "ORA ($33),Y", 2},
		{[]byte{0x4A}, "LSR A", 1},
		{[]byte{0xEA}, "NOP", 1},
		{[]byte{0xF0, 0x04}, "BEQ $C006", 2},
		{[]byte{0xD0, 0xFC}, "BNE $BFFE", 2},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var mem ram
			mem.load(0xC000, tt.program...)

			line := Instruction(&mem, 0xC000)
			assert.Equal(t, tt.text, line.Text)
			assert.Equal(t, tt.size, line.Size)
			assert.Equal(t, tt.program, line.Bytes)
			assert.Equal(t, false, line.Unsupported)
		})
	}
}

func TestUndefinedOpcode(t *testing.T) {
	var mem ram
	mem.load(0x8000, 0x02)

	line := Instruction(&mem, 0x8000)
	assert.Equal(t, true, line.Unsupported)
	assert.Equal(t, 1, line.Size)
	assert.Equal(t, true, strings.HasPrefix(line.String(), "8000  02       *"))
}

func TestListing(t *testing.T) {
	var mem ram
	mem.load(0xC000,
		0xA2, 0x05, // LDX #$05
		0xCA,       // DEX
		0xD0, 0xFD, // BNE $C002
	)

	lines := Lines(&mem, 0xC000, 3)
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, uint16(0xC003), lines[2].PC)

	want := "C000  A2 05    LDX #$05\n" +
		"C002  CA       DEX\n" +
		"C003  D0 FD    BNE $C002\n"
	assert.Equal(t, want, Listing(&mem, 0xC000, 3))
}

func TestLogLine(t *testing.T) {
	var mem ram
	mem.load(0xC000, 0x4C, 0xF5, 0xC5)
	c := cpu.New(cpu.DefaultConfig())
	c.PC = 0xC000
	c.SP = 0xFD
	c.P.Interrupt = true

	assert.Equal(t,
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		LogLine(&mem, c, 7))
}

func TestLogLineAnnotations(t *testing.T) {
	var mem ram
	mem[0x0010] = 0x11
	mem[0x0015] = 0x15
	mem[0x0080] = 0x00
	mem[0x0081] = 0x03
	mem[0x0085] = 0x00
	mem[0x0086] = 0x04
	mem[0x0300] = 0x33
	mem[0x0305] = 0x35
	mem[0x0400] = 0x44
	mem[0x02FF] = 0x7E
	mem[0x0200] = 0xDB

	c := cpu.New(cpu.DefaultConfig())
	c.X = 0x05
	c.Y = 0x05

	tests := []struct {
		program []byte
		text    string
	}{
		{[]byte{0xA5, 0x10}, "LDA $10 = 11"},
		{[]byte{0xB5, 0x10}, "LDA $10,X @ 15 = 15"},
		{[]byte{0xAD, 0x00, 0x03}, "LDA $0300 = 33"},
		{[]byte{0xBD, 0x00, 0x03}, "LDA $0300,X @ 0305 = 35"},
		{[]byte{0xA1, 0x80}, "LDA ($80,X) @ 85 = 0400 = 44"},
		{[]byte{0xB1, 0x80}, "LDA ($80),Y = 0300 @ 0305 = 35"},
		{[]byte{0x6C, 0xFF, 0x02}, "JMP ($02FF) = DB7E"},
		{[]byte{0x4C, 0x00, 0x03}, "JMP $0300"},
		{[]byte{0x20, 0x00, 0x03}, "JSR $0300"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			mem.load(0xC000, tt.program...)
			c.PC = 0xC000

			line := decode(&mem, 0xC000, c)
			assert.Equal(t, tt.text, line.Text)
		})
	}
}
