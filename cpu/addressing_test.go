package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestModeSize(t *testing.T) {
	assert.Equal(t, byte(1), Implied.Size())
	assert.Equal(t, byte(1), Accumulator.Size())
	assert.Equal(t, byte(2), Immediate.Size())
	assert.Equal(t, byte(2), ZeroPageY.Size())
	assert.Equal(t, byte(2), IndirectY.Size())
	assert.Equal(t, byte(2), Relative.Size())
	assert.Equal(t, byte(3), AbsoluteX.Size())
	assert.Equal(t, byte(3), Indirect.Size())
	assert.Equal(t, "(indirect),Y", IndirectY.String())
}

func TestZeroPageIndexWraps(t *testing.T) {
	c, bus := setupCPU(t,
		0xB5, 0xF0, // LDA $F0,X
		0x96, 0xFF, // STX $FF,Y
	)
	c.X = 0x20
	c.Y = 0x02
	bus.ram[0x0010] = 0x77

	step(t, c, bus)
	assert.Equal(t, byte(0x77), c.A)

	step(t, c, bus)
	assert.Equal(t, byte(0x20), bus.ram[0x0001])
	assert.Equal(t, byte(0x00), bus.ram[0x0101])
}

func TestIndirectX(t *testing.T) {
	c, bus := setupCPU(t,
		0xA1, 0xFE, // LDA ($FE,X)
		0x81, 0x20, // STA ($20,X)
	)
	c.X = 0x04
	// pointer at $02 after the wrap of $FE+4
	bus.load(0x0002, 0x00, 0x03)
	bus.ram[0x0300] = 0x5A
	bus.load(0x0024, 0x10, 0x04)

	step(t, c, bus)
	assert.Equal(t, byte(0x5A), c.A)
	assert.Equal(t, uint32(6), c.Ticks)

	step(t, c, bus)
	assert.Equal(t, byte(0x5A), bus.ram[0x0410])
	assert.Equal(t, uint32(12), c.Ticks)
}

func TestIndirectYPageCross(t *testing.T) {
	c, bus := setupCPU(t,
		0xB1, 0x10, // LDA ($10),Y
		0xB1, 0x12, // LDA ($12),Y
		0x91, 0x12, // STA ($12),Y
	)
	c.Y = 0x10
	bus.load(0x0010, 0x00, 0x03)
	bus.load(0x0012, 0xF8, 0x03)
	bus.ram[0x0310] = 0x01
	bus.ram[0x0408] = 0x02

	step(t, c, bus)
	assert.Equal(t, byte(0x01), c.A)
	assert.Equal(t, uint32(5), c.Ticks)

	step(t, c, bus)
	assert.Equal(t, byte(0x02), c.A)
	assert.Equal(t, uint32(5+6), c.Ticks)

	// stores never pay the penalty
	c.A = 0x03
	step(t, c, bus)
	assert.Equal(t, byte(0x03), bus.ram[0x0408])
	assert.Equal(t, uint32(5+6+6), c.Ticks)
}

func TestAbsoluteIndexedPageCross(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		x, y    byte
		cycles  uint32
	}{
		{"lda abs,x same page", []byte{0xBD, 0x00, 0x02}, 0x10, 0, 4},
		{"lda abs,x crossing", []byte{0xBD, 0xF8, 0x02}, 0x10, 0, 5},
		{"lda abs,y same page", []byte{0xB9, 0x00, 0x02}, 0, 0xFF, 4},
		{"lda abs,y crossing", []byte{0xB9, 0x01, 0x02}, 0, 0xFF, 5},
		{"ldx abs,y crossing", []byte{0xBE, 0xFF, 0x02}, 0, 0x01, 5},
		{"sta abs,x crossing", []byte{0x9D, 0xF8, 0x02}, 0x10, 0, 5},
		{"asl abs,x same page", []byte{0x1E, 0x00, 0x02}, 0x10, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := setupCPU(t, tt.program...)
			c.X, c.Y = tt.x, tt.y

			step(t, c, bus)
			assert.Equal(t, tt.cycles, c.Ticks)
			assert.Equal(t, uint16(0x8003), c.PC)
		})
	}
}

func TestReadModifyWritePageCross(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		cycles uint32
		fixed  uint32
	}{
		{"asl", 0x1E, 8, 7},
		{"lsr", 0x5E, 8, 7},
		{"ror", 0x7E, 8, 7},
		{"inc", 0xFE, 8, 7},
		{"dec", 0xDE, 8, 7},
		{"rol", 0x3E, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := setupCPU(t, tt.opcode, 0xF8, 0x02)
			c.X = 0x10
			step(t, c, bus)
			assert.Equal(t, tt.cycles, c.Ticks)

			cfg := DefaultConfig()
			cfg.FixedRMWCycles = true
			c = New(cfg)
			c.Reset(bus)
			c.X = 0x10
			step(t, c, bus)
			assert.Equal(t, tt.fixed, c.Ticks)
		})
	}
}

func TestAbsoluteIndexWrapsAddressSpace(t *testing.T) {
	c, bus := setupCPU(t, 0xBD, 0xFF, 0xFF) // LDA $FFFF,X
	c.X = 0x02
	bus.ram[0x0001] = 0x66

	step(t, c, bus)
	assert.Equal(t, byte(0x66), c.A)
	assert.Equal(t, uint32(5), c.Ticks)
}
