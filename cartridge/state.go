package cartridge

import "fmt"

type State struct {
	PRGRAM      []byte
	MapperState []byte
}

// prgRAM is implemented by mappers with battery or work RAM.
type prgRAM interface {
	PRGRAM() []byte
}

func (c *Cartridge) SaveState() State {
	s := State{}
	if m, ok := c.Mapper.(prgRAM); ok {
		s.PRGRAM = append([]byte(nil), m.PRGRAM()...)
	}
	s.MapperState = c.Mapper.Save()
	return s
}

func (c *Cartridge) LoadState(s State) error {
	if m, ok := c.Mapper.(prgRAM); ok && len(s.PRGRAM) > 0 {
		ram := m.PRGRAM()
		if len(s.PRGRAM) != len(ram) {
			return fmt.Errorf("PRG RAM size mismatch: state has %d bytes, cartridge %d", len(s.PRGRAM), len(ram))
		}
		copy(ram, s.PRGRAM)
	}
	return c.Mapper.Load(s.MapperState)
}
