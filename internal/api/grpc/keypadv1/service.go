package keypadv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "keypad.v1.KeypadService"

const (
	KeypadService_Press_FullMethodName   = "/keypad.v1.KeypadService/Press"
	KeypadService_Display_FullMethodName = "/keypad.v1.KeypadService/Display"
	KeypadService_Reset_FullMethodName   = "/keypad.v1.KeypadService/Reset"
	KeypadService_History_FullMethodName = "/keypad.v1.KeypadService/History"
)

// KeypadServiceServer — серверная сторона KeypadService.
type KeypadServiceServer interface {
	Press(context.Context, *PressRequest) (*StateResponse, error)
	Display(context.Context, *DisplayRequest) (*StateResponse, error)
	Reset(context.Context, *ResetRequest) (*ResetResponse, error)
	History(context.Context, *HistoryRequest) (*HistoryResponse, error)
}

// UnimplementedKeypadServiceServer отвечает Unimplemented на все методы; встраивается в реализации.
type UnimplementedKeypadServiceServer struct{}

func (UnimplementedKeypadServiceServer) Press(context.Context, *PressRequest) (*StateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Press not implemented")
}

func (UnimplementedKeypadServiceServer) Display(context.Context, *DisplayRequest) (*StateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Display not implemented")
}

func (UnimplementedKeypadServiceServer) Reset(context.Context, *ResetRequest) (*ResetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reset not implemented")
}

func (UnimplementedKeypadServiceServer) History(context.Context, *HistoryRequest) (*HistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method History not implemented")
}

// RegisterKeypadServiceServer регистрирует реализацию на gRPC-сервере.
func RegisterKeypadServiceServer(s grpc.ServiceRegistrar, srv KeypadServiceServer) {
	s.RegisterService(&KeypadService_ServiceDesc, srv)
}

// unaryHandler связывает тип запроса и метод сервера с общей обвязкой dec → interceptor → вызов.
func unaryHandler[Req any, Resp any](fullMethod string, call func(KeypadServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(KeypadServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(KeypadServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// KeypadService_ServiceDesc — дескриптор сервиса для grpc.Server.RegisterService.
var KeypadService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KeypadServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Press",
			Handler:    unaryHandler(KeypadService_Press_FullMethodName, KeypadServiceServer.Press),
		},
		{
			MethodName: "Display",
			Handler:    unaryHandler(KeypadService_Display_FullMethodName, KeypadServiceServer.Display),
		},
		{
			MethodName: "Reset",
			Handler:    unaryHandler(KeypadService_Reset_FullMethodName, KeypadServiceServer.Reset),
		},
		{
			MethodName: "History",
			Handler:    unaryHandler(KeypadService_History_FullMethodName, KeypadServiceServer.History),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "keypad/v1/keypad.proto",
}

// KeypadServiceClient — клиентская сторона KeypadService.
type KeypadServiceClient interface {
	Press(ctx context.Context, in *PressRequest, opts ...grpc.CallOption) (*StateResponse, error)
	Display(ctx context.Context, in *DisplayRequest, opts ...grpc.CallOption) (*StateResponse, error)
	Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error)
	History(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error)
}

type keypadServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewKeypadServiceClient создаёт клиента; JSON content-subtype выставляется на каждый вызов.
func NewKeypadServiceClient(cc grpc.ClientConnInterface) KeypadServiceClient {
	return &keypadServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keypadServiceClient) Press(ctx context.Context, in *PressRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[StateResponse](ctx, c.cc, KeypadService_Press_FullMethodName, in, opts)
}

func (c *keypadServiceClient) Display(ctx context.Context, in *DisplayRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[StateResponse](ctx, c.cc, KeypadService_Display_FullMethodName, in, opts)
}

func (c *keypadServiceClient) Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error) {
	return invoke[ResetResponse](ctx, c.cc, KeypadService_Reset_FullMethodName, in, opts)
}

func (c *keypadServiceClient) History(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	return invoke[HistoryResponse](ctx, c.cc, KeypadService_History_FullMethodName, in, opts)
}
