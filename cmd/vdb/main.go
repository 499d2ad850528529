package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meadori/vibe6502/server"
	"github.com/retroenv/retrogolib/buildinfo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	addr := flag.String("addr", "localhost:50051", "address of the emulator debugger service")
	script := flag.String("script", "", "file of debugger commands to run instead of reading stdin")
	flag.Parse()

	fmt.Printf("VDB - vibe6502 DeBugger %s\n", buildinfo.Version(version, commit, date))
	fmt.Printf("Connecting to emulator on %s...\n", *addr)

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	d := newDebugger(server.NewClient(conn), os.Stdout)

	if *script != "" {
		file, err := os.Open(*script)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer file.Close()

		if err := d.runScript(file); err != nil {
			log.Fatalf("Script failed: %v", err)
		}
		return
	}

	fmt.Println("Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("(vdb) ")
		if !scanner.Scan() {
			break
		}
		if quit := d.exec(scanner.Text()); quit {
			return
		}
	}
}
