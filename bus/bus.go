package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/meadori/vibe6502/cartridge"
	"github.com/meadori/vibe6502/cpu"
	"github.com/meadori/vibe6502/disasm"
)

// ScanlinesPerFrame is the number of scanline-sized CPU slices in a frame.
const ScanlinesPerFrame = 262

// FrameRate is the pace of Run.
const FrameRate = 60

// ErrNoCartridge is returned by Run when no ROM has been inserted.
var ErrNoCartridge = errors.New("no cartridge loaded")

// Option configures a Bus.
type Option func(*cpu.Config)

// WithWriteObserver reports every CPU write along with the address of the
// instruction that performed it. fn runs with the bus locked and must not
// call back into it.
func WithWriteObserver(fn func(pc, addr uint16, data byte)) Option {
	return func(cfg *cpu.Config) {
		cfg.OnWrite = fn
	}
}

// Bus represents the system bus.
type Bus struct {
	CPU *cpu.CPU

	mu   sync.Mutex
	mem  memory
	ram  [2048]byte
	ppu  [8]byte    // $2000-$3FFF, mirrored every 8 bytes
	io   [0x20]byte // $4000-$401F
	cart *cartridge.Cartridge

	paused        bool
	stepRequested bool
	fault         error
}

// New creates a new Bus instance.
func New(cfg cpu.Config, opts ...Option) *Bus {
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Bus{
		CPU: cpu.New(cfg),
	}
	b.mem = memory{b}
	return b
}

// memory is the lock-free view of the address space the CPU runs against
// while the bus mutex is held.
type memory struct {
	b *Bus
}

func (m memory) Read(addr uint16) byte {
	return m.b.read(addr)
}

func (m memory) Write(addr uint16, data byte) {
	m.b.write(addr, data)
}

func (m memory) ReadWord(addr uint16) uint16 {
	return uint16(m.b.read(addr+1))<<8 | uint16(m.b.read(addr))
}

func (b *Bus) read(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return b.ppu[addr&0x0007]
	case addr <= 0x401F:
		return b.io[addr-0x4000]
	}
	if b.cart != nil {
		if data, ok := b.cart.Mapper.CPUMapRead(addr); ok {
			return data
		}
	}
	return 0
}

func (b *Bus) write(addr uint16, data byte) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = data
	case addr <= 0x3FFF:
		b.ppu[addr&0x0007] = data
	case addr <= 0x401F:
		b.io[addr-0x4000] = data
	case b.cart != nil:
		b.cart.Mapper.CPUMapWrite(addr, data)
	}
}

// Read reads a byte from the bus.
func (b *Bus) Read(addr uint16) byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read(addr)
}

// Write writes a byte to the bus.
func (b *Bus) Write(addr uint16, data byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.write(addr, data)
}

// ReadWord reads a little-endian word.
func (b *Bus) ReadWord(addr uint16) uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mem.ReadWord(addr)
}

// LoadCartridge inserts cart. The CPU is not reset.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cart = cart
}

// Reset loads PC from the reset vector and clears a previous fault.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.CPU.Reset(b.mem)
	b.fault = nil
}

// Fault returns the error that halted execution, if any.
func (b *Bus) Fault() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fault
}

func (b *Bus) run(cond cpu.BreakCondition) (bool, error) {
	if b.fault != nil {
		return false, b.fault
	}
	ok, err := b.CPU.RunUntilCondition(b.mem, cond)
	if err != nil {
		b.fault = err
	}
	return ok, err
}

// Step executes one instruction and returns the CPU state after it.
func (b *Bus) Step() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.run(cpu.BreakNext())
	return b.CPU.String(), err
}

// RunToPC runs until PC equals pc, giving up after one frame.
func (b *Bus) RunToPC(pc uint16) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < ScanlinesPerFrame; i++ {
		ok, err := b.run(cpu.BreakAtPC(pc))
		if ok || err != nil {
			return ok, err
		}
	}
	return false, nil
}

// RunScanline runs one scanline's worth of ticks.
func (b *Bus) RunScanline() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.run(cpu.BreakScanline())
}

// RunFrame runs one frame's worth of scanlines.
func (b *Bus) RunFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.runFrame()
}

func (b *Bus) runFrame() error {
	for i := 0; i < ScanlinesPerFrame; i++ {
		if _, err := b.run(cpu.BreakFrame()); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the CPU at FrameRate frames per second until ctx is done or the
// CPU faults. While paused only requested single steps execute.
func (b *Bus) Run(ctx context.Context) error {
	b.mu.Lock()
	loaded := b.cart != nil
	b.mu.Unlock()
	if !loaded {
		return ErrNoCartridge
	}

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if err := b.tick(); err != nil {
			return fmt.Errorf("cpu halted: %w", err)
		}
	}
}

func (b *Bus) tick() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.paused {
		if !b.stepRequested {
			return nil
		}
		b.stepRequested = false
		_, err := b.run(cpu.BreakNext())
		return err
	}
	return b.runFrame()
}

func (b *Bus) SetPaused(paused bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paused = paused
}

func (b *Bus) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

// RequestStep asks a paused Run loop to execute one instruction.
func (b *Bus) RequestStep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stepRequested = true
}

// NMI enters the non-maskable interrupt handler.
func (b *Bus) NMI() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.CPU.NMI(b.mem)
}

// SetTrace toggles the per-instruction trace of the CPU.
func (b *Bus) SetTrace(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.CPU.Debug = on
}

// GetCPUState returns the CPU register values.
func (b *Bus) GetCPUState() (a, x, y, sp, p byte, pc uint16, ticks uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.CPU
	return c.A, c.X, c.Y, c.SP, c.P.Byte(), c.PC, c.Ticks
}

// GetMemoryBlock returns size bytes starting at addr, wrapping at $FFFF.
func (b *Bus) GetMemoryBlock(addr uint16, size uint16) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	block := make([]byte, size)
	for i := range block {
		block[i] = b.read(addr + uint16(i))
	}
	return block
}

// Disassemble renders count instructions starting at addr, one per line.
func (b *Bus) Disassemble(addr uint16, count int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return disasm.Listing(b.mem, addr, count)
}
