package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/meadori/vibe6502/bus"
	"github.com/meadori/vibe6502/cpu"
	"github.com/meadori/vibe6502/server"
	"github.com/retroenv/retrogolib/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func newTestDebugger(t *testing.T, program ...byte) (*debugger, *bytes.Buffer) {
	t.Helper()

	b := bus.New(cpu.DefaultConfig())
	for i, v := range program {
		b.Write(0x0300+uint16(i), v)
	}
	b.CPU.PC = 0x0300

	lis := bufconn.Listen(1 << 20)
	s := server.NewGRPCServer()
	s.SetBus(b)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var out bytes.Buffer
	return newDebugger(server.NewClient(conn), &out), &out
}

func TestScript(t *testing.T) {
	d, out := newTestDebugger(t,
		0xA9, 0x42, // LDA #$42
		0x85, 0x00, // STA $00
		0xE8,             // INX
		0x4C, 0x04, 0x03, // JMP $0304
	)

	script := `# smoke test
step
until 0304
x/2 0000
dis $0300 2
regs
quit
step
`
	assert.NoError(t, d.runScript(strings.NewReader(script)))

	text := out.String()
	assert.Equal(t, true, strings.Contains(text, "{opcode:a9 a:42 x:00 y:00 sp:ff pc:0302 flags:------} tick: 2"))
	assert.Equal(t, true, strings.Contains(text, "0000: 42 00"))
	assert.Equal(t, true, strings.Contains(text, "LDA #$42"))
	assert.Equal(t, true, strings.Contains(text, "STA $00"))
	assert.Equal(t, true, strings.Contains(text, "PC: 0304"))
	// nothing runs after quit
	assert.Equal(t, 1, strings.Count(text, "(vdb) step"))
}

func TestScriptStopsOnError(t *testing.T) {
	d, out := newTestDebugger(t, 0x02)

	err := d.runScript(strings.NewReader("regs\nstep\nregs\n"))
	assert.Equal(t, true, err != nil)
	assert.Equal(t, true, strings.HasPrefix(err.Error(), "line 2:"))
	assert.Equal(t, 1, strings.Count(out.String(), "(vdb) regs"))
}

func TestUsageErrors(t *testing.T) {
	d, out := newTestDebugger(t)

	for _, line := range []string{"until", "x", "dis", "trace maybe", "save", "x/0 0000"} {
		out.Reset()
		assert.Equal(t, false, d.exec(line))
		assert.Equal(t, true, d.lastErr != nil)
		assert.Equal(t, true, strings.HasPrefix(out.String(), "Error:"))
	}

	assert.Equal(t, false, d.exec("bogus"))
	assert.Equal(t, "unknown command: bogus", d.lastErr.Error())
	d.exec("until")
	assert.Equal(t, true, errors.Is(d.lastErr, errUsage))
}

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"C000", "0xC000", "$C000", "c000"} {
		addr, err := parseAddress(s)
		assert.NoError(t, err)
		assert.Equal(t, uint16(0xC000), addr)
	}

	_, err := parseAddress("10000")
	assert.Equal(t, true, err != nil)
}
