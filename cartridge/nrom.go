package cartridge

// nrom (mapper 0) maps 16 KiB or 32 KiB of PRG ROM at $8000 and 8 KiB of
// PRG RAM at $6000. A 16 KiB image is mirrored into $C000-$FFFF.
type nrom struct {
	prgROM   []byte
	prgRAM   [0x2000]byte
	prgBanks int
}

func newNROM(cart *Cartridge) *nrom {
	return &nrom{
		prgROM:   cart.PRGROM,
		prgBanks: cart.PRGBanks(),
	}
}

// CPUMapRead implements the Mapper interface for CPU reads.
func (n *nrom) CPUMapRead(addr uint16) (byte, bool) {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		return n.prgRAM[addr-0x6000], true
	case addr >= 0x8000:
		mappedAddr := addr - 0x8000
		if n.prgBanks == 1 {
			mappedAddr &= 0x3FFF
		}
		return n.prgROM[mappedAddr], true
	}
	return 0, false
}

// CPUMapWrite implements the Mapper interface for CPU writes. ROM writes are
// claimed and dropped.
func (n *nrom) CPUMapWrite(addr uint16, data byte) bool {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		n.prgRAM[addr-0x6000] = data
		return true
	case addr >= 0x8000:
		return true
	}
	return false
}

func (n *nrom) PRGRAM() []byte {
	return n.prgRAM[:]
}

// Save returns no mapper state; PRG RAM travels in State.PRGRAM.
func (n *nrom) Save() []byte { return nil }

func (n *nrom) Load([]byte) error { return nil }
