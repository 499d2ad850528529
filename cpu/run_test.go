package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// nopBus is memory filled with NOPs, so every instruction costs 2 ticks.
func nopBus() *mockBus {
	bus := &mockBus{}
	for i := range bus.ram {
		bus.ram[i] = 0xEA
	}
	return bus
}

func TestRunNext(t *testing.T) {
	bus := nopBus()
	c := New(DefaultConfig())
	c.PC = 0x8000

	ok, err := c.RunUntilCondition(bus, BreakNext())
	assert.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint16(0x8001), c.PC)
	assert.Equal(t, uint32(2), c.Ticks)
}

func TestRunToPC(t *testing.T) {
	bus := nopBus()
	c := New(DefaultConfig())
	c.PC = 0x8000

	ok, err := c.RunUntilCondition(bus, BreakAtPC(0x8010))
	assert.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint16(0x8010), c.PC)
	assert.Equal(t, uint32(32), c.Ticks)

	// out of reach within one scanline
	ok, err = c.RunUntilCondition(bus, BreakAtPC(0x9000))
	assert.NoError(t, err)
	assert.Equal(t, false, ok)
	assert.Equal(t, uint32(114), c.Ticks)
}

func TestRunToScanlineCarriesOvershoot(t *testing.T) {
	bus := nopBus()
	c := New(DefaultConfig())
	c.PC = 0x8000

	ok, err := c.RunUntilCondition(bus, BreakScanline())
	assert.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint32(114), c.Ticks)
	assert.Equal(t, uint32(0), c.ScanlineRemaining())

	// one tick of overshoot is charged to the second window
	ok, err = c.RunUntilCondition(bus, BreakScanline())
	assert.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint32(226), c.Ticks)

	ok, err = c.RunUntilCondition(bus, BreakScanline())
	assert.NoError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, uint32(340), c.Ticks)
}

func TestRunFrameNeverSatisfied(t *testing.T) {
	bus := nopBus()
	c := New(DefaultConfig())
	c.PC = 0x8000

	for line := 1; line <= 3; line++ {
		ok, err := c.RunUntilCondition(bus, BreakFrame())
		assert.NoError(t, err)
		assert.Equal(t, false, ok)
		assert.Equal(t, true, c.Ticks >= uint32(line)*TicksPerScanline)
	}
}

func TestRunCustomBudget(t *testing.T) {
	bus := nopBus()
	c := New(Config{TicksPerScanline: 10})
	c.PC = 0x8000

	ok, err := c.RunUntilCondition(bus, BreakFrame())
	assert.NoError(t, err)
	assert.Equal(t, false, ok)
	assert.Equal(t, uint32(10), c.Ticks)
}

func TestRunWindowRemainsOpen(t *testing.T) {
	bus := nopBus()
	c := New(DefaultConfig())
	c.PC = 0x8000

	_, err := c.RunUntilCondition(bus, BreakNext())
	assert.NoError(t, err)
	assert.Equal(t, uint32(111), c.ScanlineRemaining())

	// single steps share the window that is still open
	_, err = c.RunUntilCondition(bus, BreakNext())
	assert.NoError(t, err)
	assert.Equal(t, uint32(109), c.ScanlineRemaining())
}

func TestRunStopsOnError(t *testing.T) {
	bus := nopBus()
	bus.ram[0x8004] = 0xFF
	c := New(DefaultConfig())
	c.PC = 0x8000

	ok, err := c.RunUntilCondition(bus, BreakFrame())
	assert.Equal(t, false, ok)
	assert.Equal(t, true, err != nil)
	assert.Equal(t, uint16(0x8004), c.PC)
	assert.Equal(t, uint32(8), c.Ticks)
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Trace = &buf

	bus := nopBus()
	bus.load(0x8000, 0xA9, 0x8F) // LDA #$8F
	c := New(cfg)
	c.PC = 0x8000
	c.Debug = true

	_, err := c.RunUntilCondition(bus, BreakAtPC(0x8003))
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "{opcode:00 a:00 x:00 y:00 sp:ff pc:8000 flags:------} tick: 0", lines[0])
	assert.Equal(t, "{opcode:a9 a:8f x:00 y:00 sp:ff pc:8002 flags:N-----} tick: 2", lines[1])

	// single stepping leaves the trace to the caller
	buf.Reset()
	_, err = c.RunUntilCondition(bus, BreakNext())
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestString(t *testing.T) {
	c := New(DefaultConfig())
	c.opcode = 0x4C
	c.A, c.X, c.Y, c.SP = 0x01, 0x0A, 0xFF, 0xFD
	c.PC = 0xC5F5
	c.P = Status{Zero: true, Carry: true, Interrupt: true, Decimal: true, Overflow: true}
	c.Ticks = 123456

	assert.Equal(t, "{opcode:4c a:01 x:0a y:ff sp:fd pc:c5f5 flags:-ZCIDV} tick: 123456", c.String())
}

func TestBreakKindString(t *testing.T) {
	assert.Equal(t, "run to pc", RunToPC.String())
	assert.Equal(t, "run frame", BreakFrame().Kind.String())
	assert.Equal(t, "unknown break condition", BreakKind(9).String())
}
