package cartridge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Mirroring types
const (
	MirrorHorizontal byte = 0
	MirrorVertical   byte = 1
	MirrorFourScreen byte = 4
)

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

var (
	ErrInvalidHeader     = errors.New("invalid NES ROM format: missing iNES signature")
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)

// Mapper translates CPU accesses in the cartridge space. The bool results
// report whether the mapper claimed the address.
type Mapper interface {
	CPUMapRead(addr uint16) (byte, bool)
	CPUMapWrite(addr uint16, data byte) bool
	Save() []byte
	Load(b []byte) error
}

// Cartridge represents an NES cartridge.
type Cartridge struct {
	PRGROM   []byte
	CHRROM   []byte
	MapperID byte
	Mapper   Mapper
	Mirror   byte
	IsCHRRAM bool
}

// New creates a new Cartridge instance from a .nes file.
func New(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

// Load parses an iNES image.
func Load(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("file is too small to be a valid NES ROM")
	}
	if !bytes.Equal(data[:4], []byte{'N', 'E', 'S', 0x1A}) {
		return nil, ErrInvalidHeader
	}

	c := &Cartridge{}
	prgRomSize := int(data[4]) * prgBankSize
	chrRomSize := int(data[5]) * chrBankSize
	if prgRomSize == 0 {
		return nil, fmt.Errorf("ROM declares no PRG banks")
	}

	// Bit 2 of flags 6 announces a trainer ahead of PRG
	offset := headerSize
	if data[6]&0x04 != 0 {
		offset += trainerSize
	}

	// Allocate the declared sizes so under-dumped images still map
	c.PRGROM = make([]byte, prgRomSize)
	if chrRomSize > 0 {
		c.CHRROM = make([]byte, chrRomSize)
	} else {
		c.CHRROM = make([]byte, chrBankSize)
		c.IsCHRRAM = true
	}

	if offset < len(data) {
		copy(c.PRGROM, data[offset:])
	}
	if chrStart := offset + prgRomSize; chrRomSize > 0 && chrStart < len(data) {
		copy(c.CHRROM, data[chrStart:])
	}

	c.MapperID = data[6]>>4 | data[7]&0xF0
	c.Mirror = data[6]&1 | (data[6]>>1)&MirrorFourScreen

	mapper, err := NewMapper(c, c.MapperID)
	if err != nil {
		return nil, err
	}
	c.Mapper = mapper

	return c, nil
}

// NewMapper creates a Mapper instance based on the cartridge's mapper ID.
func NewMapper(cart *Cartridge, mapperID byte) (Mapper, error) {
	switch mapperID {
	case 0:
		return newNROM(cart), nil
	case 2:
		return newUxROM(cart), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, mapperID)
	}
}

// PRGBanks returns the number of 16 KiB PRG banks.
func (c *Cartridge) PRGBanks() int {
	return len(c.PRGROM) / prgBankSize
}

// String summarizes the image for the host's startup log.
func (c *Cartridge) String() string {
	mirror := "horizontal"
	switch {
	case c.Mirror&MirrorFourScreen != 0:
		mirror = "four-screen"
	case c.Mirror&MirrorVertical != 0:
		mirror = "vertical"
	}
	chr := fmt.Sprintf("%dK CHR ROM", len(c.CHRROM)/1024)
	if c.IsCHRRAM {
		chr = fmt.Sprintf("%dK CHR RAM", len(c.CHRROM)/1024)
	}
	return fmt.Sprintf("mapper %d, %dK PRG, %s, %s mirroring",
		c.MapperID, len(c.PRGROM)/1024, chr, mirror)
}
