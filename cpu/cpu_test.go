package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

type mockBus struct {
	ram [65536]byte
}

func (b *mockBus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *mockBus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

func (b *mockBus) ReadWord(addr uint16) uint16 {
	return uint16(b.ram[addr+1])<<8 | uint16(b.ram[addr])
}

// load copies program to addr.
func (b *mockBus) load(addr uint16, program ...byte) {
	for i, v := range program {
		b.ram[addr+uint16(i)] = v
	}
}

func setupCPU(t *testing.T, program ...byte) (*CPU, *mockBus) {
	t.Helper()
	bus := &mockBus{}
	bus.load(ResetVector, 0x00, 0x80)
	bus.load(0x8000, program...)

	c := New(DefaultConfig())
	c.Reset(bus)
	return c, bus
}

func step(t *testing.T, c *CPU, bus *mockBus) {
	t.Helper()
	assert.NoError(t, c.Step(bus))
}

func TestNew(t *testing.T) {
	c := New(Config{})

	assert.Equal(t, ResetVector, c.PC)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, FlagUnused, c.P.Byte())
	assert.Equal(t, uint32(0), c.Ticks)
	assert.Equal(t, TicksPerScanline, c.Config().TicksPerScanline)
}

func TestReset(t *testing.T) {
	c, bus := setupCPU(t)
	c.A, c.SP = 0x12, 0x80
	c.P.Carry = true
	bus.load(ResetVector, 0x34, 0xC0)

	c.Reset(bus)

	assert.Equal(t, uint16(0xC034), c.PC)
	assert.Equal(t, byte(0x12), c.A)
	assert.Equal(t, byte(0x80), c.SP)
	assert.Equal(t, true, c.P.Carry)
	assert.Equal(t, uint32(0), c.Ticks)
}

func TestLoadThenIncrement(t *testing.T) {
	c, bus := setupCPU(t,
		0xA9, 0xFF, // LDA #$FF
		0xE8, // INX
	)

	step(t, c, bus)
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.Equal(t, uint32(2), c.Ticks)

	step(t, c, bus)
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, uint32(4), c.Ticks)

	assert.Equal(t, byte(0xFF), c.A)
	assert.Equal(t, byte(0x01), c.X)
	// INX of 0 to 1 clears the flags LDA set
	assert.Equal(t, false, c.P.Sign)
	assert.Equal(t, false, c.P.Zero)
}

func TestLoadSetsFlags(t *testing.T) {
	c, bus := setupCPU(t, 0xA9, 0xFF) // LDA #$FF
	step(t, c, bus)

	assert.Equal(t, byte(0xFF), c.A)
	assert.Equal(t, true, c.P.Sign)
	assert.Equal(t, false, c.P.Zero)
}

func TestUnsupportedOpcode(t *testing.T) {
	c, bus := setupCPU(t, 0x02)

	err := c.Step(bus)

	assert.Equal(t, true, errors.Is(err, ErrUnsupportedOpcode))
	var opErr *OpcodeError
	assert.Equal(t, true, errors.As(err, &opErr))
	assert.Equal(t, byte(0x02), opErr.Opcode)
	assert.Equal(t, uint16(0x8000), opErr.PC)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint32(0), c.Ticks)

	// the same opcode is reported again on the next attempt
	err = c.Step(bus)
	assert.Equal(t, true, errors.Is(err, ErrUnsupportedOpcode))
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestDispatchInconsistency(t *testing.T) {
	c, bus := setupCPU(t)
	instr := &Instruction{Opcode: 0xFF, Name: "LDA", Mode: Relative, Size: 2, Cycles: 2, execute: (*CPU).lda}
	c.A = 0x55
	c.at = c.PC

	instr.execute(c, bus, instr, 0x10, 0)

	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, true, c.P.Zero)
	assert.Equal(t, true, errors.Is(c.fault, ErrDispatchInconsistency))
	assert.Equal(t, Relative, c.fault.Mode)
}

func TestLookupTable(t *testing.T) {
	count := 0
	for op := 0; op < 256; op++ {
		instr, ok := Lookup(byte(op))
		if !ok {
			continue
		}
		count++
		assert.Equal(t, byte(op), instr.Opcode)
		assert.Equal(t, true, instr.Cycles >= 2)
		if instr.Name != "BRK" {
			assert.Equal(t, instr.Mode.Size(), instr.Size)
		}
	}
	assert.Equal(t, 151, count)

	_, ok := Lookup(0xFF)
	assert.Equal(t, false, ok)
}

func TestOnWriteObserver(t *testing.T) {
	type write struct {
		pc, addr uint16
		data     byte
	}
	var writes []write

	cfg := DefaultConfig()
	cfg.OnWrite = func(pc, addr uint16, data byte) {
		writes = append(writes, write{pc, addr, data})
	}
	bus := &mockBus{}
	bus.load(0x8000,
		0xA9, 0x42, // LDA #$42
		0x8D, 0x00, 0x02, // STA $0200
	)
	c := New(cfg)
	c.PC = 0x8000

	assert.NoError(t, c.Step(bus))
	assert.NoError(t, c.Step(bus))

	assert.Equal(t, 1, len(writes))
	assert.Equal(t, write{0x8002, 0x0200, 0x42}, writes[0])
	assert.Equal(t, byte(0x42), bus.ram[0x0200])
}

func TestInterrupts(t *testing.T) {
	c, bus := setupCPU(t)
	bus.load(NMIVector, 0x00, 0x90)
	bus.load(IRQVector, 0x00, 0xA0)
	c.PC = 0x8123
	c.P.Carry = true
	c.P.Break = true

	c.NMI(bus)

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, true, c.P.Interrupt)
	assert.Equal(t, uint32(7), c.Ticks)
	assert.Equal(t, byte(0xFC), c.SP)
	// B is clear in the pushed status
	assert.Equal(t, FlagUnused|FlagCarry, bus.ram[0x01FD])
	assert.Equal(t, byte(0x23), bus.ram[0x01FE])
	assert.Equal(t, byte(0x81), bus.ram[0x01FF])

	// masked while I is set
	assert.Equal(t, false, c.IRQ(bus))
	assert.Equal(t, uint16(0x9000), c.PC)

	c.P.Interrupt = false
	assert.Equal(t, true, c.IRQ(bus))
	assert.Equal(t, uint16(0xA000), c.PC)
	assert.Equal(t, uint32(14), c.Ticks)
}

func TestState(t *testing.T) {
	c, bus := setupCPU(t, 0xA9, 0x80) // LDA #$80
	step(t, c, bus)
	c.X, c.Y, c.SP = 1, 2, 0xF0
	c.P.Carry = true
	c.Debug = true
	s := c.SaveState()

	other := New(DefaultConfig())
	other.LoadState(s)

	assert.Equal(t, c.PC, other.PC)
	assert.Equal(t, c.SP, other.SP)
	assert.Equal(t, c.A, other.A)
	assert.Equal(t, c.X, other.X)
	assert.Equal(t, c.Y, other.Y)
	assert.Equal(t, c.P, other.P)
	assert.Equal(t, c.Ticks, other.Ticks)
	assert.Equal(t, c.Opcode(), other.Opcode())
	assert.Equal(t, true, other.Debug)
	assert.Equal(t, c.String(), other.String())
}
