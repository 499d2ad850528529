package bus

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/meadori/vibe6502/cartridge"
	"github.com/meadori/vibe6502/cpu"
)

type State struct {
	Ram       [2048]byte
	PPU       [8]byte
	IO        [0x20]byte
	CPU       cpu.State
	Cartridge cartridge.State
}

// SaveState saves the entire emulator state to a file.
func (b *Bus) SaveState(filename string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	s := State{
		Ram: b.ram,
		PPU: b.ppu,
		IO:  b.io,
		CPU: b.CPU.SaveState(),
	}
	if b.cart != nil {
		s.Cartridge = b.cart.SaveState()
	}

	if err := gob.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	return nil
}

// LoadState loads the emulator state from a file. A fault recorded before
// the load is cleared.
func (b *Bus) LoadState(filename string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var s State
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return fmt.Errorf("decoding state: %w", err)
	}

	if b.cart != nil {
		if err := b.cart.LoadState(s.Cartridge); err != nil {
			return fmt.Errorf("restoring cartridge: %w", err)
		}
	}
	b.ram = s.Ram
	b.ppu = s.PPU
	b.io = s.IO
	b.CPU.LoadState(s.CPU)
	b.fault = nil

	return nil
}
