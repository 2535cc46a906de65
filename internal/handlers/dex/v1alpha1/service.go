package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DexServiceName is the fully qualified gRPC service name
const DexServiceName = "dex.v1alpha1.DexService"

// Method names of DexService
const (
	MethodGetSpecies           = "GetSpecies"
	MethodGetEvolution         = "GetEvolution"
	MethodGetTypeEffectiveness = "GetTypeEffectiveness"
	MethodGetCacheStats        = "GetCacheStats"
)

// DexServiceServer is the server API for DexService. Requests and responses
// use well-known protobuf types so no generated message code is needed.
type DexServiceServer interface {
	GetSpecies(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	GetEvolution(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	GetTypeEffectiveness(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	GetCacheStats(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

// DexServiceDesc is the grpc.ServiceDesc for DexService
var DexServiceDesc = grpc.ServiceDesc{
	ServiceName: DexServiceName,
	HandlerType: (*DexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodGetSpecies,
			Handler: unary(MethodGetSpecies, newStringValue,
				func(srv DexServiceServer, ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
					return srv.GetSpecies(ctx, req)
				}),
		},
		{
			MethodName: MethodGetEvolution,
			Handler: unary(MethodGetEvolution, newStringValue,
				func(srv DexServiceServer, ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
					return srv.GetEvolution(ctx, req)
				}),
		},
		{
			MethodName: MethodGetTypeEffectiveness,
			Handler: unary(MethodGetTypeEffectiveness, newStringValue,
				func(srv DexServiceServer, ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
					return srv.GetTypeEffectiveness(ctx, req)
				}),
		},
		{
			MethodName: MethodGetCacheStats,
			Handler: unary(MethodGetCacheStats, newEmpty,
				func(srv DexServiceServer, ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error) {
					return srv.GetCacheStats(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dex/v1alpha1/dex.proto",
}

// RegisterDexServiceServer registers srv with the gRPC server
func RegisterDexServiceServer(s grpc.ServiceRegistrar, srv DexServiceServer) {
	s.RegisterService(&DexServiceDesc, srv)
}

func newStringValue() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }

func newEmpty() *emptypb.Empty { return &emptypb.Empty{} }

// unary builds the method handler the generated code would, routing through
// the server's interceptor chain when one is installed
func unary[Req proto.Message](
	method string,
	newReq func() Req,
	call func(DexServiceServer, context.Context, Req) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DexServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DexServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FullMethod returns the gRPC path of a DexService method
func FullMethod(method string) string {
	return "/" + DexServiceName + "/" + method
}

// DexServiceClient is the client API for DexService
type DexServiceClient interface {
	GetSpecies(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEvolution(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTypeEffectiveness(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCacheStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type dexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDexServiceClient creates a DexService client over cc
func NewDexServiceClient(cc grpc.ClientConnInterface) DexServiceClient {
	return &dexServiceClient{cc: cc}
}

func (c *dexServiceClient) GetSpecies(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetSpecies, in, opts...)
}

func (c *dexServiceClient) GetEvolution(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetEvolution, in, opts...)
}

func (c *dexServiceClient) GetTypeEffectiveness(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetTypeEffectiveness, in, opts...)
}

func (c *dexServiceClient) GetCacheStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetCacheStats, in, opts...)
}

func (c *dexServiceClient) invoke(ctx context.Context, method string, in proto.Message, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
