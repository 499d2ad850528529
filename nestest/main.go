// Command nestest runs a ROM from a fixed entry point and prints one
// nestest-format log line per instruction, for diffing against a reference
// log.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/meadori/vibe6502/bus"
	"github.com/meadori/vibe6502/cartridge"
	"github.com/meadori/vibe6502/cpu"
	"github.com/meadori/vibe6502/disasm"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// endOfOfficialTests is where nestest returns after the official opcode
// section when started at $C000.
const endOfOfficialTests = 0xC66E

func main() {
	romPath := flag.String("rom", "nestest/testdata/nestest.nes", "path to the test ROM")
	start := flag.String("start", "C000", "entry point in hex")
	steps := flag.Int("steps", 10000, "maximum number of instructions")
	sp := flag.String("sp", "FD", "initial stack pointer in hex")
	hardware := flag.Bool("hardware", false, "use hardware overflow and read-modify-write timing")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	pc, err := strconv.ParseUint(*start, 16, 16)
	if err != nil {
		log.Fatalf("invalid entry point %q: %v", *start, err)
	}
	stack, err := strconv.ParseUint(*sp, 16, 8)
	if err != nil {
		log.Fatalf("invalid stack pointer %q: %v", *sp, err)
	}

	cart, err := cartridge.New(*romPath)
	if err != nil {
		log.Fatalf("Error loading ROM from %s: %v", *romPath, err)
	}

	cfg := cpu.DefaultConfig()
	cfg.SignedOverflow = *hardware
	cfg.FixedRMWCycles = *hardware
	b := bus.New(cfg)
	b.LoadCartridge(cart)
	b.Reset()

	// nestest's reference log starts with I set and the reset cycles spent
	c := b.CPU
	c.PC = uint16(pc)
	c.SP = byte(stack)
	c.P.Interrupt = true
	c.Ticks = 7

	for i := 0; i < *steps; i++ {
		fmt.Println(disasm.LogLine(b, c, c.Ticks))

		if _, err := b.Step(); err != nil {
			if errors.Is(err, cpu.ErrUnsupportedOpcode) {
				fmt.Fprintf(os.Stderr, "stopped after %d instructions: %v\n", i, err)
				return
			}
			log.Fatalf("CPU fault: %v", err)
		}
		if c.PC == endOfOfficialTests && uint16(pc) == 0xC000 {
			fmt.Fprintf(os.Stderr, "official opcode tests finished after %d instructions, result $%02X%02X\n",
				i+1, b.Read(0x0002), b.Read(0x0003))
			return
		}
	}
}
