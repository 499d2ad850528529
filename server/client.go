package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CPUState is the register file reported by the debugger.
type CPUState struct {
	A, X, Y, SP, P byte
	PC             uint16
	Ticks          uint32
}

func (s CPUState) String() string {
	return fmt.Sprintf("A: %02X  X: %02X  Y: %02X  SP: %02X  PC: %04X  Status: %08b  Ticks: %d",
		s.A, s.X, s.Y, s.SP, s.PC, s.P, s.Ticks)
}

// Client is a typed client of the debugger service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out proto.Message) error {
	return c.cc.Invoke(ctx, fullMethod(method), in, out)
}

func (c *Client) GetCPUState(ctx context.Context) (CPUState, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "GetCPUState", &emptypb.Empty{}, out); err != nil {
		return CPUState{}, err
	}

	num := func(key string) float64 {
		return out.GetFields()[key].GetNumberValue()
	}
	return CPUState{
		A:     byte(num("a")),
		X:     byte(num("x")),
		Y:     byte(num("y")),
		SP:    byte(num("sp")),
		P:     byte(num("p")),
		PC:    uint16(num("pc")),
		Ticks: uint32(num("ticks")),
	}, nil
}

// Step executes one instruction and returns the CPU trace line after it.
func (c *Client) Step(ctx context.Context) (string, error) {
	out := new(wrapperspb.StringValue)
	err := c.invoke(ctx, "Step", &emptypb.Empty{}, out)
	return out.GetValue(), err
}

func (c *Client) RunToPC(ctx context.Context, pc uint16) (bool, error) {
	out := new(wrapperspb.BoolValue)
	err := c.invoke(ctx, "RunToPC", wrapperspb.UInt32(uint32(pc)), out)
	return out.GetValue(), err
}

func (c *Client) RunScanline(ctx context.Context) (bool, error) {
	out := new(wrapperspb.BoolValue)
	err := c.invoke(ctx, "RunScanline", &emptypb.Empty{}, out)
	return out.GetValue(), err
}

func (c *Client) ReadMemoryBlock(ctx context.Context, addr uint16, size int) ([]byte, error) {
	in, err := structpb.NewStruct(map[string]any{
		"address": int(addr),
		"size":    size,
	})
	if err != nil {
		return nil, err
	}

	out := new(wrapperspb.BytesValue)
	err = c.invoke(ctx, "ReadMemoryBlock", in, out)
	return out.GetValue(), err
}

func (c *Client) Disassemble(ctx context.Context, addr uint16, count int) (string, error) {
	in, err := structpb.NewStruct(map[string]any{
		"address": int(addr),
		"count":   count,
	})
	if err != nil {
		return "", err
	}

	out := new(wrapperspb.StringValue)
	err = c.invoke(ctx, "Disassemble", in, out)
	return out.GetValue(), err
}

func (c *Client) Reset(ctx context.Context) error {
	return c.invoke(ctx, "Reset", &emptypb.Empty{}, new(emptypb.Empty))
}

func (c *Client) Pause(ctx context.Context) error {
	return c.invoke(ctx, "Pause", &emptypb.Empty{}, new(emptypb.Empty))
}

func (c *Client) Resume(ctx context.Context) error {
	return c.invoke(ctx, "Resume", &emptypb.Empty{}, new(emptypb.Empty))
}

func (c *Client) TriggerNMI(ctx context.Context) error {
	return c.invoke(ctx, "TriggerNMI", &emptypb.Empty{}, new(emptypb.Empty))
}

func (c *Client) SetTrace(ctx context.Context, on bool) error {
	return c.invoke(ctx, "SetTrace", wrapperspb.Bool(on), new(emptypb.Empty))
}

// SaveState writes a save state on the emulator host.
func (c *Client) SaveState(ctx context.Context, filename string) error {
	return c.invoke(ctx, "SaveState", wrapperspb.String(filename), new(emptypb.Empty))
}

// LoadState loads a save state file present on the emulator host.
func (c *Client) LoadState(ctx context.Context, filename string) error {
	return c.invoke(ctx, "LoadState", wrapperspb.String(filename), new(emptypb.Empty))
}
