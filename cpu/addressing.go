package cpu

// Mode is an addressing mode.
type Mode byte

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // (zp,X)
	IndirectY // (zp),Y
	Relative
)

var modeNames = [...]string{
	Implied:     "implied",
	Accumulator: "accumulator",
	Immediate:   "immediate",
	ZeroPage:    "zero page",
	ZeroPageX:   "zero page,X",
	ZeroPageY:   "zero page,Y",
	Absolute:    "absolute",
	AbsoluteX:   "absolute,X",
	AbsoluteY:   "absolute,Y",
	Indirect:    "indirect",
	IndirectX:   "(indirect,X)",
	IndirectY:   "(indirect),Y",
	Relative:    "relative",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown addressing mode"
}

// Size returns the encoded length of an instruction using the mode.
func (m Mode) Size() byte {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		return 2
	}
}

func makeAddress(lo, hi byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// crossPage charges the extra cycle of an indexed read that leaves the page
// of its base address.
func (c *CPU) crossPage(base, addr uint16) {
	if base&0xFF00 != addr&0xFF00 {
		c.Ticks++
	}
}

func (c *CPU) zeroPage(mem Bus, lo byte) byte {
	return mem.Read(uint16(lo))
}

func (c *CPU) zeroPageX(mem Bus, lo byte) byte {
	return mem.Read(uint16(lo + c.X))
}

func (c *CPU) zeroPageY(mem Bus, lo byte) byte {
	return mem.Read(uint16(lo + c.Y))
}

func (c *CPU) absolute(mem Bus, lo, hi byte) byte {
	return mem.Read(makeAddress(lo, hi))
}

func (c *CPU) absoluteX(mem Bus, lo, hi byte, checkPage bool) byte {
	base := makeAddress(lo, hi)
	addr := base + uint16(c.X)
	if checkPage {
		c.crossPage(base, addr)
	}
	return mem.Read(addr)
}

func (c *CPU) absoluteY(mem Bus, lo, hi byte, checkPage bool) byte {
	base := makeAddress(lo, hi)
	addr := base + uint16(c.Y)
	if checkPage {
		c.crossPage(base, addr)
	}
	return mem.Read(addr)
}

func (c *CPU) indirectX(mem Bus, lo byte) byte {
	return mem.Read(mem.ReadWord(uint16(lo + c.X)))
}

func (c *CPU) indirectY(mem Bus, lo byte, checkPage bool) byte {
	base := mem.ReadWord(uint16(lo))
	addr := base + uint16(c.Y)
	if checkPage {
		c.crossPage(base, addr)
	}
	return mem.Read(addr)
}

func (c *CPU) zeroPageWrite(mem Bus, lo, data byte) {
	c.write(mem, uint16(lo), data)
}

func (c *CPU) zeroPageXWrite(mem Bus, lo, data byte) {
	c.write(mem, uint16(lo+c.X), data)
}

func (c *CPU) zeroPageYWrite(mem Bus, lo, data byte) {
	c.write(mem, uint16(lo+c.Y), data)
}

func (c *CPU) absoluteWrite(mem Bus, lo, hi, data byte) {
	c.write(mem, makeAddress(lo, hi), data)
}

func (c *CPU) absoluteXWrite(mem Bus, lo, hi, data byte) {
	c.write(mem, makeAddress(lo, hi)+uint16(c.X), data)
}

func (c *CPU) absoluteYWrite(mem Bus, lo, hi, data byte) {
	c.write(mem, makeAddress(lo, hi)+uint16(c.Y), data)
}

func (c *CPU) indirectXWrite(mem Bus, lo, data byte) {
	c.write(mem, mem.ReadWord(uint16(lo+c.X)), data)
}

func (c *CPU) indirectYWrite(mem Bus, lo, data byte) {
	c.write(mem, mem.ReadWord(uint16(lo))+uint16(c.Y), data)
}

// pageCheck reports whether instr pays for an indexed page cross.
func (c *CPU) pageCheck(instr *Instruction) bool {
	if instr.RMW && c.cfg.FixedRMWCycles {
		return false
	}
	return instr.PageCheck
}

// load fetches the operand of instr. Immediate and accumulator operands
// need no memory access.
func (c *CPU) load(mem Bus, instr *Instruction, lo, hi byte) byte {
	switch instr.Mode {
	case Immediate:
		return lo
	case Accumulator:
		return c.A
	case ZeroPage:
		return c.zeroPage(mem, lo)
	case ZeroPageX:
		return c.zeroPageX(mem, lo)
	case ZeroPageY:
		return c.zeroPageY(mem, lo)
	case Absolute:
		return c.absolute(mem, lo, hi)
	case AbsoluteX:
		return c.absoluteX(mem, lo, hi, c.pageCheck(instr))
	case AbsoluteY:
		return c.absoluteY(mem, lo, hi, c.pageCheck(instr))
	case IndirectX:
		return c.indirectX(mem, lo)
	case IndirectY:
		return c.indirectY(mem, lo, c.pageCheck(instr))
	}
	c.inconsistent(instr)
	return 0
}

// store commits data to the operand location of instr.
func (c *CPU) store(mem Bus, instr *Instruction, lo, hi, data byte) {
	switch instr.Mode {
	case Accumulator:
		c.A = data
	case ZeroPage:
		c.zeroPageWrite(mem, lo, data)
	case ZeroPageX:
		c.zeroPageXWrite(mem, lo, data)
	case ZeroPageY:
		c.zeroPageYWrite(mem, lo, data)
	case Absolute:
		c.absoluteWrite(mem, lo, hi, data)
	case AbsoluteX:
		c.absoluteXWrite(mem, lo, hi, data)
	case AbsoluteY:
		c.absoluteYWrite(mem, lo, hi, data)
	case IndirectX:
		c.indirectXWrite(mem, lo, data)
	case IndirectY:
		c.indirectYWrite(mem, lo, data)
	default:
		c.inconsistent(instr)
	}
}
