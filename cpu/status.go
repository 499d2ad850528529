package cpu

// Status flag bit positions in the packed status byte.
const (
	FlagCarry     byte = 0x01
	FlagZero      byte = 0x02
	FlagInterrupt byte = 0x04
	FlagDecimal   byte = 0x08
	FlagBreak     byte = 0x10
	FlagUnused    byte = 0x20
	FlagOverflow  byte = 0x40
	FlagSign      byte = 0x80
)

// Status is the processor status register.
type Status struct {
	Sign      bool
	Overflow  bool
	Break     bool
	Decimal   bool
	Interrupt bool
	Zero      bool
	Carry     bool
}

// Byte packs the flags for pushing onto the stack. The unused bit always
// reads as 1.
func (s Status) Byte() byte {
	v := FlagUnused
	if s.Sign {
		v |= FlagSign
	}
	if s.Overflow {
		v |= FlagOverflow
	}
	if s.Break {
		v |= FlagBreak
	}
	if s.Decimal {
		v |= FlagDecimal
	}
	if s.Interrupt {
		v |= FlagInterrupt
	}
	if s.Zero {
		v |= FlagZero
	}
	if s.Carry {
		v |= FlagCarry
	}
	return v
}

// SetByte unpacks a status byte pulled from the stack.
func (s *Status) SetByte(v byte) {
	s.Sign = v&FlagSign != 0
	s.Overflow = v&FlagOverflow != 0
	s.Break = v&FlagBreak != 0
	s.Decimal = v&FlagDecimal != 0
	s.Interrupt = v&FlagInterrupt != 0
	s.Zero = v&FlagZero != 0
	s.Carry = v&FlagCarry != 0
}

// String renders the flags in trace order: sign, zero, carry, interrupt,
// decimal, overflow.
func (s Status) String() string {
	b := []byte("------")
	if s.Sign {
		b[0] = 'N'
	}
	if s.Zero {
		b[1] = 'Z'
	}
	if s.Carry {
		b[2] = 'C'
	}
	if s.Interrupt {
		b[3] = 'I'
	}
	if s.Decimal {
		b[4] = 'D'
	}
	if s.Overflow {
		b[5] = 'V'
	}
	return string(b)
}
