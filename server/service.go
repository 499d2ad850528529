package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name of the debugger.
const ServiceName = "vibe6502.Debugger"

// DebuggerServer is the server API of the debugger service.
type DebuggerServer interface {
	GetCPUState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Step(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	RunToPC(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.BoolValue, error)
	RunScanline(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	ReadMemoryBlock(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	Disassemble(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Pause(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Resume(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	TriggerNMI(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	SetTrace(context.Context, *wrapperspb.BoolValue) (*emptypb.Empty, error)
	SaveState(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	LoadState(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// Debugger_ServiceDesc describes the debugger service for grpc.Server.
var Debugger_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DebuggerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetCPUState", DebuggerServer.GetCPUState),
		unary("Step", DebuggerServer.Step),
		unary("RunToPC", DebuggerServer.RunToPC),
		unary("RunScanline", DebuggerServer.RunScanline),
		unary("ReadMemoryBlock", DebuggerServer.ReadMemoryBlock),
		unary("Disassemble", DebuggerServer.Disassemble),
		unary("Reset", DebuggerServer.Reset),
		unary("Pause", DebuggerServer.Pause),
		unary("Resume", DebuggerServer.Resume),
		unary("TriggerNMI", DebuggerServer.TriggerNMI),
		unary("SetTrace", DebuggerServer.SetTrace),
		unary("SaveState", DebuggerServer.SaveState),
		unary("LoadState", DebuggerServer.LoadState),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterDebuggerServer registers srv with s.
func RegisterDebuggerServer(s grpc.ServiceRegistrar, srv DebuggerServer) {
	s.RegisterService(&Debugger_ServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary builds the method descriptor of a unary call, decoding the request
// and running it through the server's interceptor chain.
func unary[Req, Resp any](name string, call func(DebuggerServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(DebuggerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(DebuggerServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
