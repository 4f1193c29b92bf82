package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the full grpc service name.
const ServiceName = "majorleaguegithub.Leaderboard"

// Full method names.
const (
	ContributorsMethod = "/" + ServiceName + "/Contributors"
	HiringMethod       = "/" + ServiceName + "/Hiring"
)

// LeaderboardServer is the server API for Leaderboard service.
type LeaderboardServer interface {
	Contributors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Hiring(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterLeaderboardServer registers the service implementation.
func RegisterLeaderboardServer(s grpc.ServiceRegistrar, srv LeaderboardServer) {
	s.RegisterService(&leaderboardServiceDesc, srv)
}

var leaderboardServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LeaderboardServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Contributors",
			Handler: unaryHandler(ContributorsMethod, func(srv LeaderboardServer) unaryMethod {
				return srv.Contributors
			}),
		},
		{
			MethodName: "Hiring",
			Handler: unaryHandler(HiringMethod, func(srv LeaderboardServer) unaryMethod {
				return srv.Hiring
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "majorleaguegithub/leaderboard",
}

type unaryMethod func(context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method func(LeaderboardServer) unaryMethod) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		call := method(srv.(LeaderboardServer))
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
