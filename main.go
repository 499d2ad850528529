package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/meadori/vibe6502/bus"
	"github.com/meadori/vibe6502/cartridge"
	"github.com/meadori/vibe6502/cpu"
	"github.com/meadori/vibe6502/server"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM")
	port := flag.Int("port", 50051, "port of the gRPC debugger service, 0 to disable")
	trace := flag.Bool("trace", false, "print the CPU state before every instruction")
	signedOverflow := flag.Bool("signed-overflow", false, "derive V from operand and result signs")
	fixedRMW := flag.Bool("fixed-rmw-cycles", false, "never charge read-modify-write instructions for a page cross")
	statePath := flag.String("state", "", "save state to load after reset")
	watch := flag.String("watch", "", "hex address whose writes are logged")
	paused := flag.Bool("paused", false, "start paused, waiting for the debugger")
	verbose := flag.Bool("v", false, "log CPU diagnostics")
	flag.Parse()

	log.Printf("vibe6502 %s", buildinfo.Version(version, commit, date))

	if *romPath == "" {
		log.Fatalf("missing -rom")
	}
	cart, err := cartridge.New(*romPath)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}
	log.Printf("loaded %s: %s", *romPath, cart)

	cfg := cpu.DefaultConfig()
	cfg.SignedOverflow = *signedOverflow
	cfg.FixedRMWCycles = *fixedRMW
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var opts []bus.Option
	if *watch != "" {
		addr, err := strconv.ParseUint(*watch, 16, 16)
		if err != nil {
			log.Fatalf("invalid -watch address %q: %v", *watch, err)
		}
		opts = append(opts, bus.WithWriteObserver(func(pc, a uint16, data byte) {
			if a == uint16(addr) {
				log.Printf("write $%02X to $%04X at $%04X", data, a, pc)
			}
		}))
	}

	b := bus.New(cfg, opts...)
	b.LoadCartridge(cart)
	b.Reset()
	b.SetTrace(*trace)
	b.SetPaused(*paused)

	if *statePath != "" {
		if err := b.LoadState(*statePath); err != nil {
			log.Fatalf("Failed to load state: %v", err)
		}
	}

	if *port != 0 {
		srv := server.NewGRPCServer()
		srv.SetBus(b)
		if err := srv.Start(*port); err != nil {
			log.Fatalf("Failed to start gRPC server: %v", err)
		}
		defer srv.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		a, x, y, sp, p, pc, ticks := b.GetCPUState()
		fmt.Fprintf(os.Stderr, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X ticks:%d\n", a, x, y, p, sp, pc, ticks)
		log.Fatalf("%v", err)
	}
}
