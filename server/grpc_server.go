package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	maxMemoryBlock  = 0x1000
	maxDisassembly  = 256
	defaultDisCount = 10
)

// EmuInterface defines the methods required from the emulator bus for debugging
type EmuInterface interface {
	Reset()
	Step() (string, error)
	RunToPC(pc uint16) (bool, error)
	RunScanline() (bool, error)
	SetPaused(bool)
	NMI()
	SetTrace(bool)
	GetCPUState() (a, x, y, sp, p byte, pc uint16, ticks uint32)
	GetMemoryBlock(addr uint16, size uint16) []byte
	Disassemble(addr uint16, count int) string
	SaveState(filename string) error
	LoadState(filename string) error
}

// GRPCServer serves the debugger service for one emulator.
type GRPCServer struct {
	mu     sync.Mutex
	server *grpc.Server
	emuBus EmuInterface
}

// NewGRPCServer initializes the gRPC debugger server
func NewGRPCServer() *GRPCServer {
	return &GRPCServer{}
}

// SetBus assigns the system bus the debugger operates on
func (s *GRPCServer) SetBus(b EmuInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emuBus = b
}

func (s *GRPCServer) bus() (EmuInterface, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emuBus == nil {
		return nil, status.Error(codes.Unavailable, "emulator bus not connected")
	}
	return s.emuBus, nil
}

// fault reports an error of the emulated machine.
func fault(err error) error {
	return status.Error(codes.FailedPrecondition, err.Error())
}

// GetCPUState returns the CPU register values
func (s *GRPCServer) GetCPUState(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	a, x, y, sp, p, pc, ticks := bus.GetCPUState()
	return structpb.NewStruct(map[string]any{
		"a":     int(a),
		"x":     int(x),
		"y":     int(y),
		"sp":    int(sp),
		"p":     int(p),
		"pc":    int(pc),
		"ticks": int64(ticks),
	})
}

// Step executes one instruction and returns the resulting CPU trace line
func (s *GRPCServer) Step(ctx context.Context, in *emptypb.Empty) (*wrapperspb.StringValue, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	trace, err := bus.Step()
	if err != nil {
		return nil, fault(err)
	}
	return wrapperspb.String(trace), nil
}

// RunToPC runs until the program counter reaches the requested address
func (s *GRPCServer) RunToPC(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.BoolValue, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	if in.GetValue() > 0xFFFF {
		return nil, status.Errorf(codes.InvalidArgument, "address $%X out of range", in.GetValue())
	}

	ok, err := bus.RunToPC(uint16(in.GetValue()))
	if err != nil {
		return nil, fault(err)
	}
	return wrapperspb.Bool(ok), nil
}

// RunScanline runs one scanline's worth of CPU ticks
func (s *GRPCServer) RunScanline(ctx context.Context, in *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	ok, err := bus.RunScanline()
	if err != nil {
		return nil, fault(err)
	}
	return wrapperspb.Bool(ok), nil
}

// ReadMemoryBlock returns a block of the CPU address space
func (s *GRPCServer) ReadMemoryBlock(ctx context.Context, in *structpb.Struct) (*wrapperspb.BytesValue, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	addr, err := field(in, "address", 0, 0xFFFF)
	if err != nil {
		return nil, err
	}
	size, err := field(in, "size", 1, maxMemoryBlock)
	if err != nil {
		return nil, err
	}

	return wrapperspb.Bytes(bus.GetMemoryBlock(uint16(addr), uint16(size))), nil
}

// Disassemble renders instructions starting at an address
func (s *GRPCServer) Disassemble(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	addr, err := field(in, "address", 0, 0xFFFF)
	if err != nil {
		return nil, err
	}
	count := defaultDisCount
	if _, ok := in.GetFields()["count"]; ok {
		if count, err = field(in, "count", 1, maxDisassembly); err != nil {
			return nil, err
		}
	}

	return wrapperspb.String(bus.Disassemble(uint16(addr), count)), nil
}

// Reset triggers a reset of the CPU
func (s *GRPCServer) Reset(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	bus.Reset()
	return &emptypb.Empty{}, nil
}

// Pause suspends the emulator loop
func (s *GRPCServer) Pause(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	bus.SetPaused(true)
	return &emptypb.Empty{}, nil
}

// Resume restarts the emulator loop
func (s *GRPCServer) Resume(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	bus.SetPaused(false)
	return &emptypb.Empty{}, nil
}

// TriggerNMI enters the non-maskable interrupt handler
func (s *GRPCServer) TriggerNMI(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	bus.NMI()
	return &emptypb.Empty{}, nil
}

// SetTrace toggles the per-instruction CPU trace
func (s *GRPCServer) SetTrace(ctx context.Context, in *wrapperspb.BoolValue) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}

	bus.SetTrace(in.GetValue())
	return &emptypb.Empty{}, nil
}

// SaveState writes a save state file on the emulator host
func (s *GRPCServer) SaveState(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	if in.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing file name")
	}

	if err := bus.SaveState(in.GetValue()); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to save state: %v", err)
	}
	return &emptypb.Empty{}, nil
}

// LoadState commands the emulator to load a specific save state file
func (s *GRPCServer) LoadState(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	bus, err := s.bus()
	if err != nil {
		return nil, err
	}
	if in.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing file name")
	}

	if err := bus.LoadState(in.GetValue()); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load state: %v", err)
	}
	return &emptypb.Empty{}, nil
}

// field returns the integral number stored under key, bounded to [lo, hi].
func field(in *structpb.Struct, key string, lo, hi int) (int, error) {
	v, ok := in.GetFields()[key]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "missing field %q", key)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "field %q is not a number", key)
	}
	i := int(n.NumberValue)
	if float64(i) != n.NumberValue || i < lo || i > hi {
		return 0, status.Errorf(codes.InvalidArgument, "field %q must be an integer in [%d, %d]", key, lo, hi)
	}
	return i, nil
}

// Start begins listening for gRPC connections on the given port
func (s *GRPCServer) Start(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	log.Printf("gRPC server listening on :%d", port)

	// Run the server in a background goroutine
	go func() {
		if err := s.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return nil
}

// Serve accepts debugger connections on lis until Stop is called.
func (s *GRPCServer) Serve(lis net.Listener) error {
	srv := grpc.NewServer()
	RegisterDebuggerServer(srv, s)

	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	return srv.Serve(lis)
}

// Stop gracefully shuts down the gRPC server
func (s *GRPCServer) Stop() {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()

	if srv != nil {
		srv.GracefulStop()
	}
}
