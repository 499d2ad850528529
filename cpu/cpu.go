package cpu

import (
	"io"
	"log/slog"
)

// Fixed addresses with architectural meaning.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
	StackBase   uint16 = 0x0100
)

// TicksPerScanline is the default tick budget of one RunUntilCondition call.
const TicksPerScanline uint32 = 113

// Bus defines the interface for the CPU to interact with the bus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
	ReadWord(addr uint16) uint16
}

// Config holds the tunables of a CPU.
type Config struct {
	// TicksPerScanline is the budget a single RunUntilCondition call may spend.
	TicksPerScanline uint32

	// SignedOverflow derives V from the sign of the operands and result.
	// When false, V mirrors unsigned range overflow of ADC/SBC.
	SignedOverflow bool

	// LinearIndirectJump makes JMP ($xxFF) fetch its high byte from the next
	// page instead of wrapping to the start of the same page.
	LinearIndirectJump bool

	// FixedRMWCycles drops the page-cross cycle that read-modify-write
	// instructions in absolute,X mode otherwise pay, as the hardware does.
	FixedRMWCycles bool

	// Trace receives one line per step while Debug is set. Defaults to stdout.
	Trace io.Writer

	// OnWrite, when set, sees every memory write the CPU performs together
	// with the address of the instruction performing it.
	OnWrite func(pc, addr uint16, data byte)

	Logger *slog.Logger
}

// DefaultConfig returns the configuration matching the reference emulator.
func DefaultConfig() Config {
	return Config{
		TicksPerScanline: TicksPerScanline,
	}
}

// CPU represents the 6502 CPU.
type CPU struct {
	// Program Counter
	PC uint16

	// Stack Pointer
	SP byte

	// Accumulator
	A byte

	// Index Register X
	X byte

	// Index Register Y
	Y byte

	// Processor Status
	P Status

	// Ticks counts every cycle executed since the CPU was created.
	Ticks uint32

	// Debug enables per-step trace output.
	Debug bool

	cfg    Config
	logger *slog.Logger

	opcode      byte
	at          uint16 // address of the instruction being executed
	scanlineEnd uint32
	fault       *OpcodeError
}

// New creates a new CPU instance.
func New(cfg Config) *CPU {
	if cfg.TicksPerScanline == 0 {
		cfg.TicksPerScanline = TicksPerScanline
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CPU{
		PC:     ResetVector,
		SP:     0xFF,
		cfg:    cfg,
		logger: logger,
	}
}

// Config returns the configuration the CPU was created with.
func (c *CPU) Config() Config {
	return c.cfg
}

// Opcode returns the most recently fetched opcode.
func (c *CPU) Opcode() byte {
	return c.opcode
}

// Reset loads the program counter from the reset vector. Registers and
// flags are left as they are.
func (c *CPU) Reset(mem Bus) {
	c.PC = mem.ReadWord(ResetVector)
}

// Step fetches and executes exactly one instruction.
func (c *CPU) Step(mem Bus) error {
	c.opcode = mem.Read(c.PC)

	instr := lookup[c.opcode]
	if instr == nil {
		err := &OpcodeError{Kind: ErrUnsupportedOpcode, Opcode: c.opcode, PC: c.PC}
		c.logger.Error("unsupported opcode",
			slog.String("opcode", hex8(c.opcode)),
			slog.String("pc", hex16(c.PC)))
		return err
	}

	c.at = c.PC
	var lo, hi byte
	if instr.Size > 1 {
		lo = mem.Read(c.PC + 1)
	}
	if instr.Size > 2 {
		hi = mem.Read(c.PC + 2)
	}
	c.PC += uint16(instr.Size)

	instr.execute(c, mem, instr, lo, hi)
	c.Ticks += uint32(instr.Cycles)

	if c.fault != nil {
		err := c.fault
		c.fault = nil
		return err
	}
	return nil
}

// Interrupt enters the handler whose address is stored at vector. The
// caller decides when interrupts happen.
func (c *CPU) Interrupt(mem Bus, vector uint16) {
	c.PushWord(mem, c.PC)
	c.P.Break = false
	c.PushStatus(mem)
	c.P.Interrupt = true
	c.PC = mem.ReadWord(vector)
	c.Ticks += 7
}

// NMI performs a non-maskable interrupt entry.
func (c *CPU) NMI(mem Bus) {
	c.Interrupt(mem, NMIVector)
}

// IRQ performs a maskable interrupt entry. It reports whether the interrupt
// was taken.
func (c *CPU) IRQ(mem Bus) bool {
	if c.P.Interrupt {
		return false
	}
	c.Interrupt(mem, IRQVector)
	return true
}

func (c *CPU) write(mem Bus, addr uint16, data byte) {
	if c.cfg.OnWrite != nil {
		c.cfg.OnWrite(c.at, addr, data)
	}
	mem.Write(addr, data)
}

func (c *CPU) setZN(v byte) {
	c.P.Zero = v == 0
	c.P.Sign = v&0x80 == 0x80
}
