package cpu

// State is a snapshot of everything the CPU carries between instructions.
type State struct {
	PC          uint16
	SP, A, X, Y byte
	P           byte
	Opcode      byte
	Ticks       uint32
	ScanlineEnd uint32
	Debug       bool
}

func (c *CPU) SaveState() State {
	return State{
		PC:          c.PC,
		SP:          c.SP,
		A:           c.A,
		X:           c.X,
		Y:           c.Y,
		P:           c.P.Byte(),
		Opcode:      c.opcode,
		Ticks:       c.Ticks,
		ScanlineEnd: c.scanlineEnd,
		Debug:       c.Debug,
	}
}

func (c *CPU) LoadState(s State) {
	c.PC, c.SP, c.A, c.X, c.Y = s.PC, s.SP, s.A, s.X, s.Y
	c.P.SetByte(s.P)
	c.opcode = s.Opcode
	c.Ticks, c.scanlineEnd = s.Ticks, s.ScanlineEnd
	c.Debug = s.Debug
	c.fault = nil
}
