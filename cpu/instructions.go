package cpu

// Instruction describes one opcode encoding.
type Instruction struct {
	Opcode byte
	Name   string
	Mode   Mode
	Size   byte
	Cycles byte

	// PageCheck charges one extra cycle when an indexed read crosses a page.
	PageCheck bool

	// RMW marks read-modify-write encodings that write their result back
	// to memory.
	RMW bool

	execute func(c *CPU, mem Bus, instr *Instruction, lo, hi byte)
}

// Arithmetic

func (c *CPU) adc(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)

	total := uint16(c.A) + uint16(value)
	if c.P.Carry {
		total++
	}
	result := byte(total)

	c.P.Carry = total > 0xFF
	if c.cfg.SignedOverflow {
		c.P.Overflow = (c.A^result)&(value^result)&0x80 != 0
	} else {
		c.P.Overflow = total > 0xFF
	}
	c.A = result
	c.setZN(result)
}

func (c *CPU) sbc(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)

	total := int16(c.A) - int16(value)
	if !c.P.Carry {
		total--
	}
	result := byte(total)

	c.P.Carry = total >= 0
	if c.cfg.SignedOverflow {
		c.P.Overflow = (c.A^value)&(c.A^result)&0x80 != 0
	} else {
		c.P.Overflow = total < 0
	}
	c.A = result
	c.setZN(result)
}

// Logical

func (c *CPU) and(mem Bus, instr *Instruction, lo, hi byte) {
	c.A &= c.load(mem, instr, lo, hi)
	c.setZN(c.A)
}

func (c *CPU) ora(mem Bus, instr *Instruction, lo, hi byte) {
	c.A |= c.load(mem, instr, lo, hi)
	c.setZN(c.A)
}

func (c *CPU) eor(mem Bus, instr *Instruction, lo, hi byte) {
	c.A ^= c.load(mem, instr, lo, hi)
	c.setZN(c.A)
}

func (c *CPU) bit(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)
	c.P.Zero = c.A&value == 0
	c.P.Sign = value&0x80 != 0
	c.P.Overflow = value&0x40 != 0
}

// Shifts and rotates. The carry always comes from the operand itself.

func (c *CPU) asl(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)
	c.P.Carry = value&0x80 != 0
	value <<= 1
	c.setZN(value)
	c.store(mem, instr, lo, hi, value)
}

func (c *CPU) lsr(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)
	c.P.Carry = value&0x01 != 0
	value >>= 1
	c.setZN(value)
	c.store(mem, instr, lo, hi, value)
}

func (c *CPU) rol(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)
	out := value&0x80 != 0
	value <<= 1
	if c.P.Carry {
		value |= 0x01
	}
	c.P.Carry = out
	c.setZN(value)
	c.store(mem, instr, lo, hi, value)
}

func (c *CPU) ror(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi)
	out := value&0x01 != 0
	value >>= 1
	if c.P.Carry {
		value |= 0x80
	}
	c.P.Carry = out
	c.setZN(value)
	c.store(mem, instr, lo, hi, value)
}

// Comparisons

func (c *CPU) compare(reg, value byte) {
	c.P.Carry = reg >= value
	c.setZN(reg - value)
}

func (c *CPU) cmp(mem Bus, instr *Instruction, lo, hi byte) {
	c.compare(c.A, c.load(mem, instr, lo, hi))
}

func (c *CPU) cpx(mem Bus, instr *Instruction, lo, hi byte) {
	c.compare(c.X, c.load(mem, instr, lo, hi))
}

func (c *CPU) cpy(mem Bus, instr *Instruction, lo, hi byte) {
	c.compare(c.Y, c.load(mem, instr, lo, hi))
}

// Increments and decrements never touch carry or overflow.

func (c *CPU) inc(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi) + 1
	c.setZN(value)
	c.store(mem, instr, lo, hi, value)
}

func (c *CPU) dec(mem Bus, instr *Instruction, lo, hi byte) {
	value := c.load(mem, instr, lo, hi) - 1
	c.setZN(value)
	c.store(mem, instr, lo, hi, value)
}

func (c *CPU) inx(Bus, *Instruction, byte, byte) {
	c.X++
	c.setZN(c.X)
}

func (c *CPU) iny(Bus, *Instruction, byte, byte) {
	c.Y++
	c.setZN(c.Y)
}

func (c *CPU) dex(Bus, *Instruction, byte, byte) {
	c.X--
	c.setZN(c.X)
}

func (c *CPU) dey(Bus, *Instruction, byte, byte) {
	c.Y--
	c.setZN(c.Y)
}

// Branches. PC already points at the next instruction.

func (c *CPU) branch(taken bool, offset byte) {
	if !taken {
		return
	}
	target := c.PC + uint16(int8(offset))
	c.Ticks++
	if target&0xFF00 != c.PC&0xFF00 {
		c.Ticks++
	}
	c.PC = target
}

func (c *CPU) bcc(_ Bus, _ *Instruction, lo, _ byte) { c.branch(!c.P.Carry, lo) }
func (c *CPU) bcs(_ Bus, _ *Instruction, lo, _ byte) { c.branch(c.P.Carry, lo) }
func (c *CPU) beq(_ Bus, _ *Instruction, lo, _ byte) { c.branch(c.P.Zero, lo) }
func (c *CPU) bne(_ Bus, _ *Instruction, lo, _ byte) { c.branch(!c.P.Zero, lo) }
func (c *CPU) bmi(_ Bus, _ *Instruction, lo, _ byte) { c.branch(c.P.Sign, lo) }
func (c *CPU) bpl(_ Bus, _ *Instruction, lo, _ byte) { c.branch(!c.P.Sign, lo) }
func (c *CPU) bvc(_ Bus, _ *Instruction, lo, _ byte) { c.branch(!c.P.Overflow, lo) }
func (c *CPU) bvs(_ Bus, _ *Instruction, lo, _ byte) { c.branch(c.P.Overflow, lo) }

// Jumps, subroutines and interrupts

func (c *CPU) jmp(mem Bus, instr *Instruction, lo, hi byte) {
	switch instr.Mode {
	case Absolute:
		c.PC = makeAddress(lo, hi)
	case Indirect:
		ptr := makeAddress(lo, hi)
		if c.cfg.LinearIndirectJump {
			c.PC = mem.ReadWord(ptr)
			return
		}
		// the high byte comes from the same page when the pointer sits at $xxFF
		next := ptr&0xFF00 | uint16(lo+1)
		c.PC = makeAddress(mem.Read(ptr), mem.Read(next))
	default:
		c.inconsistent(instr)
	}
}

func (c *CPU) jsr(mem Bus, _ *Instruction, lo, hi byte) {
	c.PushWord(mem, c.PC-1)
	c.PC = makeAddress(lo, hi)
}

func (c *CPU) rts(mem Bus, _ *Instruction, _, _ byte) {
	c.PC = c.pullWord(mem) + 1
}

func (c *CPU) rti(mem Bus, _ *Instruction, _, _ byte) {
	c.pullStatus(mem)
	c.PC = c.pullWord(mem)
}

// brk is encoded with a padding byte, so PC is already two past the opcode.
func (c *CPU) brk(mem Bus, _ *Instruction, _, _ byte) {
	c.PushWord(mem, c.PC)
	c.P.Break = true
	c.PushStatus(mem)
	c.P.Interrupt = true
	c.PC = mem.ReadWord(IRQVector)
}

// Loads and stores

func (c *CPU) lda(mem Bus, instr *Instruction, lo, hi byte) {
	c.A = c.load(mem, instr, lo, hi)
	c.setZN(c.A)
}

func (c *CPU) ldx(mem Bus, instr *Instruction, lo, hi byte) {
	c.X = c.load(mem, instr, lo, hi)
	c.setZN(c.X)
}

func (c *CPU) ldy(mem Bus, instr *Instruction, lo, hi byte) {
	c.Y = c.load(mem, instr, lo, hi)
	c.setZN(c.Y)
}

func (c *CPU) sta(mem Bus, instr *Instruction, lo, hi byte) {
	c.store(mem, instr, lo, hi, c.A)
}

func (c *CPU) stx(mem Bus, instr *Instruction, lo, hi byte) {
	c.store(mem, instr, lo, hi, c.X)
}

func (c *CPU) sty(mem Bus, instr *Instruction, lo, hi byte) {
	c.store(mem, instr, lo, hi, c.Y)
}

// Stack

func (c *CPU) pha(mem Bus, _ *Instruction, _, _ byte) {
	c.push(mem, c.A)
}

func (c *CPU) php(mem Bus, _ *Instruction, _, _ byte) {
	c.PushStatus(mem)
}

func (c *CPU) pla(mem Bus, _ *Instruction, _, _ byte) {
	c.A = c.pull(mem)
	c.setZN(c.A)
}

func (c *CPU) plp(mem Bus, _ *Instruction, _, _ byte) {
	c.pullStatus(mem)
}

// Flags

func (c *CPU) clc(Bus, *Instruction, byte, byte) { c.P.Carry = false }
func (c *CPU) cld(Bus, *Instruction, byte, byte) { c.P.Decimal = false }
func (c *CPU) cli(Bus, *Instruction, byte, byte) { c.P.Interrupt = false }
func (c *CPU) clv(Bus, *Instruction, byte, byte) { c.P.Overflow = false }
func (c *CPU) sec(Bus, *Instruction, byte, byte) { c.P.Carry = true }
func (c *CPU) sed(Bus, *Instruction, byte, byte) { c.P.Decimal = true }
func (c *CPU) sei(Bus, *Instruction, byte, byte) { c.P.Interrupt = true }

// Transfers. TXS is the only one that leaves the flags alone.

func (c *CPU) tax(Bus, *Instruction, byte, byte) {
	c.X = c.A
	c.setZN(c.X)
}

func (c *CPU) tay(Bus, *Instruction, byte, byte) {
	c.Y = c.A
	c.setZN(c.Y)
}

func (c *CPU) tsx(Bus, *Instruction, byte, byte) {
	c.X = c.SP
	c.setZN(c.X)
}

func (c *CPU) txa(Bus, *Instruction, byte, byte) {
	c.A = c.X
	c.setZN(c.A)
}

func (c *CPU) txs(Bus, *Instruction, byte, byte) {
	c.SP = c.X
}

func (c *CPU) tya(Bus, *Instruction, byte, byte) {
	c.A = c.Y
	c.setZN(c.A)
}

func (c *CPU) nop(Bus, *Instruction, byte, byte) {}
