package cartridge

import "fmt"

// uxrom represents Mapper 2 (UxROM).
// It features a switchable 16KB PRG ROM bank at $8000-$BFFF
// and a fixed 16KB PRG ROM bank at $C000-$FFFF (the last bank).
type uxrom struct {
	prgROM        []byte
	prgBanks      int
	prgBankSelect int
}

func newUxROM(cart *Cartridge) *uxrom {
	return &uxrom{
		prgROM:   cart.PRGROM,
		prgBanks: cart.PRGBanks(),
	}
}

// CPUMapRead implements the Mapper interface for CPU reads.
func (u *uxrom) CPUMapRead(addr uint16) (byte, bool) {
	switch {
	case addr >= 0x8000 && addr <= 0xBFFF:
		bank := u.prgBankSelect % u.prgBanks
		return u.prgROM[bank*prgBankSize+int(addr-0x8000)], true
	case addr >= 0xC000:
		bank := u.prgBanks - 1
		return u.prgROM[bank*prgBankSize+int(addr-0xC000)], true
	}
	return 0, false
}

// CPUMapWrite implements the Mapper interface for CPU writes. Any write to
// $8000-$FFFF selects the low bank.
func (u *uxrom) CPUMapWrite(addr uint16, data byte) bool {
	if addr >= 0x8000 {
		u.prgBankSelect = int(data)
		return true
	}
	return false
}

// Save stores the bank select register.
func (u *uxrom) Save() []byte {
	return []byte{byte(u.prgBankSelect)}
}

func (u *uxrom) Load(b []byte) error {
	switch len(b) {
	case 0:
		return nil
	case 1:
		u.prgBankSelect = int(b[0])
		return nil
	}
	return fmt.Errorf("UxROM state must be 1 byte, got %d", len(b))
}
