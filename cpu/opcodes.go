package cpu

// opcodes lists every supported encoding. Size defaults to the mode's size.
var opcodes = []Instruction{
	{Opcode: 0x69, Name: "ADC", Mode: Immediate, Cycles: 2, execute: (*CPU).adc},
	{Opcode: 0x65, Name: "ADC", Mode: ZeroPage, Cycles: 3, execute: (*CPU).adc},
	{Opcode: 0x75, Name: "ADC", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).adc},
	{Opcode: 0x6D, Name: "ADC", Mode: Absolute, Cycles: 4, execute: (*CPU).adc},
	{Opcode: 0x7D, Name: "ADC", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).adc},
	{Opcode: 0x79, Name: "ADC", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).adc},
	{Opcode: 0x61, Name: "ADC", Mode: IndirectX, Cycles: 6, execute: (*CPU).adc},
	{Opcode: 0x71, Name: "ADC", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).adc},

	{Opcode: 0x29, Name: "AND", Mode: Immediate, Cycles: 2, execute: (*CPU).and},
	{Opcode: 0x25, Name: "AND", Mode: ZeroPage, Cycles: 3, execute: (*CPU).and},
	{Opcode: 0x35, Name: "AND", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).and},
	{Opcode: 0x2D, Name: "AND", Mode: Absolute, Cycles: 4, execute: (*CPU).and},
	{Opcode: 0x3D, Name: "AND", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).and},
	{Opcode: 0x39, Name: "AND", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).and},
	{Opcode: 0x21, Name: "AND", Mode: IndirectX, Cycles: 6, execute: (*CPU).and},
	{Opcode: 0x31, Name: "AND", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).and},

	{Opcode: 0x0A, Name: "ASL", Mode: Accumulator, Cycles: 2, execute: (*CPU).asl},
	{Opcode: 0x06, Name: "ASL", Mode: ZeroPage, Cycles: 5, RMW: true, execute: (*CPU).asl},
	{Opcode: 0x16, Name: "ASL", Mode: ZeroPageX, Cycles: 6, RMW: true, execute: (*CPU).asl},
	{Opcode: 0x0E, Name: "ASL", Mode: Absolute, Cycles: 6, RMW: true, execute: (*CPU).asl},
	{Opcode: 0x1E, Name: "ASL", Mode: AbsoluteX, Cycles: 7, PageCheck: true, RMW: true, execute: (*CPU).asl},

	{Opcode: 0x90, Name: "BCC", Mode: Relative, Cycles: 2, execute: (*CPU).bcc},
	{Opcode: 0xB0, Name: "BCS", Mode: Relative, Cycles: 2, execute: (*CPU).bcs},
	{Opcode: 0xF0, Name: "BEQ", Mode: Relative, Cycles: 2, execute: (*CPU).beq},
	{Opcode: 0x30, Name: "BMI", Mode: Relative, Cycles: 2, execute: (*CPU).bmi},
	{Opcode: 0xD0, Name: "BNE", Mode: Relative, Cycles: 2, execute: (*CPU).bne},
	{Opcode: 0x10, Name: "BPL", Mode: Relative, Cycles: 2, execute: (*CPU).bpl},
	{Opcode: 0x50, Name: "BVC", Mode: Relative, Cycles: 2, execute: (*CPU).bvc},
	{Opcode: 0x70, Name: "BVS", Mode: Relative, Cycles: 2, execute: (*CPU).bvs},

	{Opcode: 0x24, Name: "BIT", Mode: ZeroPage, Cycles: 3, execute: (*CPU).bit},
	{Opcode: 0x2C, Name: "BIT", Mode: Absolute, Cycles: 4, execute: (*CPU).bit},

	{Opcode: 0x00, Name: "BRK", Mode: Implied, Size: 2, Cycles: 7, execute: (*CPU).brk},

	{Opcode: 0x18, Name: "CLC", Mode: Implied, Cycles: 2, execute: (*CPU).clc},
	{Opcode: 0xD8, Name: "CLD", Mode: Implied, Cycles: 2, execute: (*CPU).cld},
	{Opcode: 0x58, Name: "CLI", Mode: Implied, Cycles: 2, execute: (*CPU).cli},
	{Opcode: 0xB8, Name: "CLV", Mode: Implied, Cycles: 2, execute: (*CPU).clv},

	{Opcode: 0xC9, Name: "CMP", Mode: Immediate, Cycles: 2, execute: (*CPU).cmp},
	{Opcode: 0xC5, Name: "CMP", Mode: ZeroPage, Cycles: 3, execute: (*CPU).cmp},
	{Opcode: 0xD5, Name: "CMP", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).cmp},
	{Opcode: 0xCD, Name: "CMP", Mode: Absolute, Cycles: 4, execute: (*CPU).cmp},
	{Opcode: 0xDD, Name: "CMP", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).cmp},
	{Opcode: 0xD9, Name: "CMP", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).cmp},
	{Opcode: 0xC1, Name: "CMP", Mode: IndirectX, Cycles: 6, execute: (*CPU).cmp},
	{Opcode: 0xD1, Name: "CMP", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).cmp},

	{Opcode: 0xE0, Name: "CPX", Mode: Immediate, Cycles: 2, execute: (*CPU).cpx},
	{Opcode: 0xE4, Name: "CPX", Mode: ZeroPage, Cycles: 3, execute: (*CPU).cpx},
	{Opcode: 0xEC, Name: "CPX", Mode: Absolute, Cycles: 4, execute: (*CPU).cpx},

	{Opcode: 0xC0, Name: "CPY", Mode: Immediate, Cycles: 2, execute: (*CPU).cpy},
	{Opcode: 0xC4, Name: "CPY", Mode: ZeroPage, Cycles: 3, execute: (*CPU).cpy},
	{Opcode: 0xCC, Name: "CPY", Mode: Absolute, Cycles: 4, execute: (*CPU).cpy},

	{Opcode: 0xC6, Name: "DEC", Mode: ZeroPage, Cycles: 5, RMW: true, execute: (*CPU).dec},
	{Opcode: 0xD6, Name: "DEC", Mode: ZeroPageX, Cycles: 6, RMW: true, execute: (*CPU).dec},
	{Opcode: 0xCE, Name: "DEC", Mode: Absolute, Cycles: 6, RMW: true, execute: (*CPU).dec},
	{Opcode: 0xDE, Name: "DEC", Mode: AbsoluteX, Cycles: 7, PageCheck: true, RMW: true, execute: (*CPU).dec},

	{Opcode: 0xCA, Name: "DEX", Mode: Implied, Cycles: 2, execute: (*CPU).dex},
	{Opcode: 0x88, Name: "DEY", Mode: Implied, Cycles: 2, execute: (*CPU).dey},

	{Opcode: 0x49, Name: "EOR", Mode: Immediate, Cycles: 2, execute: (*CPU).eor},
	{Opcode: 0x45, Name: "EOR", Mode: ZeroPage, Cycles: 3, execute: (*CPU).eor},
	{Opcode: 0x55, Name: "EOR", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).eor},
	{Opcode: 0x4D, Name: "EOR", Mode: Absolute, Cycles: 4, execute: (*CPU).eor},
	{Opcode: 0x5D, Name: "EOR", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).eor},
	{Opcode: 0x59, Name: "EOR", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).eor},
	{Opcode: 0x41, Name: "EOR", Mode: IndirectX, Cycles: 6, execute: (*CPU).eor},
	{Opcode: 0x51, Name: "EOR", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).eor},

	{Opcode: 0xE6, Name: "INC", Mode: ZeroPage, Cycles: 5, RMW: true, execute: (*CPU).inc},
	{Opcode: 0xF6, Name: "INC", Mode: ZeroPageX, Cycles: 6, RMW: true, execute: (*CPU).inc},
	{Opcode: 0xEE, Name: "INC", Mode: Absolute, Cycles: 6, RMW: true, execute: (*CPU).inc},
	{Opcode: 0xFE, Name: "INC", Mode: AbsoluteX, Cycles: 7, PageCheck: true, RMW: true, execute: (*CPU).inc},

	{Opcode: 0xE8, Name: "INX", Mode: Implied, Cycles: 2, execute: (*CPU).inx},
	{Opcode: 0xC8, Name: "INY", Mode: Implied, Cycles: 2, execute: (*CPU).iny},

	{Opcode: 0x4C, Name: "JMP", Mode: Absolute, Cycles: 3, execute: (*CPU).jmp},
	{Opcode: 0x6C, Name: "JMP", Mode: Indirect, Cycles: 5, execute: (*CPU).jmp},
	{Opcode: 0x20, Name: "JSR", Mode: Absolute, Cycles: 6, execute: (*CPU).jsr},

	{Opcode: 0xA9, Name: "LDA", Mode: Immediate, Cycles: 2, execute: (*CPU).lda},
	{Opcode: 0xA5, Name: "LDA", Mode: ZeroPage, Cycles: 3, execute: (*CPU).lda},
	{Opcode: 0xB5, Name: "LDA", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).lda},
	{Opcode: 0xAD, Name: "LDA", Mode: Absolute, Cycles: 4, execute: (*CPU).lda},
	{Opcode: 0xBD, Name: "LDA", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).lda},
	{Opcode: 0xB9, Name: "LDA", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).lda},
	{Opcode: 0xA1, Name: "LDA", Mode: IndirectX, Cycles: 6, execute: (*CPU).lda},
	{Opcode: 0xB1, Name: "LDA", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).lda},

	{Opcode: 0xA2, Name: "LDX", Mode: Immediate, Cycles: 2, execute: (*CPU).ldx},
	{Opcode: 0xA6, Name: "LDX", Mode: ZeroPage, Cycles: 3, execute: (*CPU).ldx},
	{Opcode: 0xB6, Name: "LDX", Mode: ZeroPageY, Cycles: 4, execute: (*CPU).ldx},
	{Opcode: 0xAE, Name: "LDX", Mode: Absolute, Cycles: 4, execute: (*CPU).ldx},
	{Opcode: 0xBE, Name: "LDX", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).ldx},

	{Opcode: 0xA0, Name: "LDY", Mode: Immediate, Cycles: 2, execute: (*CPU).ldy},
	{Opcode: 0xA4, Name: "LDY", Mode: ZeroPage, Cycles: 3, execute: (*CPU).ldy},
	{Opcode: 0xB4, Name: "LDY", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).ldy},
	{Opcode: 0xAC, Name: "LDY", Mode: Absolute, Cycles: 4, execute: (*CPU).ldy},
	{Opcode: 0xBC, Name: "LDY", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).ldy},

	{Opcode: 0x4A, Name: "LSR", Mode: Accumulator, Cycles: 2, execute: (*CPU).lsr},
	{Opcode: 0x46, Name: "LSR", Mode: ZeroPage, Cycles: 5, RMW: true, execute: (*CPU).lsr},
	{Opcode: 0x56, Name: "LSR", Mode: ZeroPageX, Cycles: 6, RMW: true, execute: (*CPU).lsr},
	{Opcode: 0x4E, Name: "LSR", Mode: Absolute, Cycles: 6, RMW: true, execute: (*CPU).lsr},
	{Opcode: 0x5E, Name: "LSR", Mode: AbsoluteX, Cycles: 7, PageCheck: true, RMW: true, execute: (*CPU).lsr},

	{Opcode: 0xEA, Name: "NOP", Mode: Implied, Cycles: 2, execute: (*CPU).nop},

	{Opcode: 0x09, Name: "ORA", Mode: Immediate, Cycles: 2, execute: (*CPU).ora},
	{Opcode: 0x05, Name: "ORA", Mode: ZeroPage, Cycles: 3, execute: (*CPU).ora},
	{Opcode: 0x15, Name: "ORA", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).ora},
	{Opcode: 0x0D, Name: "ORA", Mode: Absolute, Cycles: 4, execute: (*CPU).ora},
	{Opcode: 0x1D, Name: "ORA", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).ora},
	{Opcode: 0x19, Name: "ORA", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).ora},
	{Opcode: 0x01, Name: "ORA", Mode: IndirectX, Cycles: 6, execute: (*CPU).ora},
	{Opcode: 0x11, Name: "ORA", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).ora},

	{Opcode: 0x48, Name: "PHA", Mode: Implied, Cycles: 3, execute: (*CPU).pha},
	{Opcode: 0x08, Name: "PHP", Mode: Implied, Cycles: 3, execute: (*CPU).php},
	{Opcode: 0x68, Name: "PLA", Mode: Implied, Cycles: 4, execute: (*CPU).pla},
	{Opcode: 0x28, Name: "PLP", Mode: Implied, Cycles: 4, execute: (*CPU).plp},

	{Opcode: 0x2A, Name: "ROL", Mode: Accumulator, Cycles: 2, execute: (*CPU).rol},
	{Opcode: 0x26, Name: "ROL", Mode: ZeroPage, Cycles: 5, RMW: true, execute: (*CPU).rol},
	{Opcode: 0x36, Name: "ROL", Mode: ZeroPageX, Cycles: 6, RMW: true, execute: (*CPU).rol},
	{Opcode: 0x2E, Name: "ROL", Mode: Absolute, Cycles: 6, RMW: true, execute: (*CPU).rol},
	{Opcode: 0x3E, Name: "ROL", Mode: AbsoluteX, Cycles: 7, RMW: true, execute: (*CPU).rol},

	{Opcode: 0x6A, Name: "ROR", Mode: Accumulator, Cycles: 2, execute: (*CPU).ror},
	{Opcode: 0x66, Name: "ROR", Mode: ZeroPage, Cycles: 5, RMW: true, execute: (*CPU).ror},
	{Opcode: 0x76, Name: "ROR", Mode: ZeroPageX, Cycles: 6, RMW: true, execute: (*CPU).ror},
	{Opcode: 0x6E, Name: "ROR", Mode: Absolute, Cycles: 6, RMW: true, execute: (*CPU).ror},
	{Opcode: 0x7E, Name: "ROR", Mode: AbsoluteX, Cycles: 7, PageCheck: true, RMW: true, execute: (*CPU).ror},

	{Opcode: 0x40, Name: "RTI", Mode: Implied, Cycles: 6, execute: (*CPU).rti},
	{Opcode: 0x60, Name: "RTS", Mode: Implied, Cycles: 6, execute: (*CPU).rts},

	{Opcode: 0xE9, Name: "SBC", Mode: Immediate, Cycles: 2, execute: (*CPU).sbc},
	{Opcode: 0xE5, Name: "SBC", Mode: ZeroPage, Cycles: 3, execute: (*CPU).sbc},
	{Opcode: 0xF5, Name: "SBC", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).sbc},
	{Opcode: 0xED, Name: "SBC", Mode: Absolute, Cycles: 4, execute: (*CPU).sbc},
	{Opcode: 0xFD, Name: "SBC", Mode: AbsoluteX, Cycles: 4, PageCheck: true, execute: (*CPU).sbc},
	{Opcode: 0xF9, Name: "SBC", Mode: AbsoluteY, Cycles: 4, PageCheck: true, execute: (*CPU).sbc},
	{Opcode: 0xE1, Name: "SBC", Mode: IndirectX, Cycles: 6, execute: (*CPU).sbc},
	{Opcode: 0xF1, Name: "SBC", Mode: IndirectY, Cycles: 5, PageCheck: true, execute: (*CPU).sbc},

	{Opcode: 0x38, Name: "SEC", Mode: Implied, Cycles: 2, execute: (*CPU).sec},
	{Opcode: 0xF8, Name: "SED", Mode: Implied, Cycles: 2, execute: (*CPU).sed},
	{Opcode: 0x78, Name: "SEI", Mode: Implied, Cycles: 2, execute: (*CPU).sei},

	{Opcode: 0x85, Name: "STA", Mode: ZeroPage, Cycles: 3, execute: (*CPU).sta},
	{Opcode: 0x95, Name: "STA", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).sta},
	{Opcode: 0x8D, Name: "STA", Mode: Absolute, Cycles: 4, execute: (*CPU).sta},
	{Opcode: 0x9D, Name: "STA", Mode: AbsoluteX, Cycles: 5, execute: (*CPU).sta},
	{Opcode: 0x99, Name: "STA", Mode: AbsoluteY, Cycles: 5, execute: (*CPU).sta},
	{Opcode: 0x81, Name: "STA", Mode: IndirectX, Cycles: 6, execute: (*CPU).sta},
	{Opcode: 0x91, Name: "STA", Mode: IndirectY, Cycles: 6, execute: (*CPU).sta},

	{Opcode: 0x86, Name: "STX", Mode: ZeroPage, Cycles: 3, execute: (*CPU).stx},
	{Opcode: 0x96, Name: "STX", Mode: ZeroPageY, Cycles: 4, execute: (*CPU).stx},
	{Opcode: 0x8E, Name: "STX", Mode: Absolute, Cycles: 4, execute: (*CPU).stx},

	{Opcode: 0x84, Name: "STY", Mode: ZeroPage, Cycles: 3, execute: (*CPU).sty},
	{Opcode: 0x94, Name: "STY", Mode: ZeroPageX, Cycles: 4, execute: (*CPU).sty},
	{Opcode: 0x8C, Name: "STY", Mode: Absolute, Cycles: 4, execute: (*CPU).sty},

	{Opcode: 0xAA, Name: "TAX", Mode: Implied, Cycles: 2, execute: (*CPU).tax},
	{Opcode: 0xA8, Name: "TAY", Mode: Implied, Cycles: 2, execute: (*CPU).tay},
	{Opcode: 0xBA, Name: "TSX", Mode: Implied, Cycles: 2, execute: (*CPU).tsx},
	{Opcode: 0x8A, Name: "TXA", Mode: Implied, Cycles: 2, execute: (*CPU).txa},
	{Opcode: 0x9A, Name: "TXS", Mode: Implied, Cycles: 2, execute: (*CPU).txs},
	{Opcode: 0x98, Name: "TYA", Mode: Implied, Cycles: 2, execute: (*CPU).tya},
}

// lookup is the dispatch table indexed by opcode byte. Nil entries are
// unsupported.
var lookup = createLookupTable(opcodes)

func createLookupTable(list []Instruction) [256]*Instruction {
	var table [256]*Instruction
	for i := range list {
		instr := &list[i]
		if instr.Size == 0 {
			instr.Size = instr.Mode.Size()
		}
		if table[instr.Opcode] != nil {
			panic("duplicate opcode " + hex8(instr.Opcode))
		}
		table[instr.Opcode] = instr
	}
	return table
}

// Lookup returns the descriptor of op and whether it is supported.
func Lookup(op byte) (Instruction, bool) {
	instr := lookup[op]
	if instr == nil {
		return Instruction{}, false
	}
	return *instr, true
}
