package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStackWordRoundTrip(t *testing.T) {
	c, bus := setupCPU(t)
	c.SP = 0xFD

	c.PushWord(bus, 0xBEEF)
	assert.Equal(t, byte(0xFB), c.SP)
	assert.Equal(t, byte(0xBE), bus.ram[0x01FD])
	assert.Equal(t, byte(0xEF), bus.ram[0x01FC])

	assert.Equal(t, uint16(0xBEEF), c.pullWord(bus))
	assert.Equal(t, byte(0xFD), c.SP)
}

func TestStackPointerWraps(t *testing.T) {
	c, bus := setupCPU(t)

	c.SP = 0x00
	c.push(bus, 0x42)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x42), bus.ram[0x0100])

	c.SP = 0xFF
	bus.ram[0x0100] = 0x99
	assert.Equal(t, byte(0x99), c.pull(bus))
	assert.Equal(t, byte(0x00), c.SP)
}

func TestStackWordAcrossWrap(t *testing.T) {
	c, bus := setupCPU(t)
	c.SP = 0x00

	c.PushWord(bus, 0x1234)
	assert.Equal(t, byte(0xFE), c.SP)
	assert.Equal(t, byte(0x12), bus.ram[0x0100])
	assert.Equal(t, byte(0x34), bus.ram[0x01FF])

	assert.Equal(t, uint16(0x1234), c.pullWord(bus))
	assert.Equal(t, byte(0x00), c.SP)
}

func TestStatusPushPull(t *testing.T) {
	c, bus := setupCPU(t)
	c.P = Status{Sign: true, Decimal: true, Carry: true}

	c.PushStatus(bus)
	assert.Equal(t, byte(0xA9), bus.ram[0x01FF])

	c.P = Status{}
	c.pullStatus(bus)
	assert.Equal(t, Status{Sign: true, Decimal: true, Carry: true}, c.P)
}
