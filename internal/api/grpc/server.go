package grpc

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Server can start grpc server handling leaderboard requests.
type Server struct {
	service LeaderboardServer
	address string
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(service LeaderboardServer, address string, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		l:       l,
	}
}

// Run runs the grpc server until ctx is done.
// Returns error when failing to open tcp connection.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return errors.Wrap(err, "starting tcp listener")
	}

	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.UnaryInterceptor(s.logInterceptor))
	RegisterLeaderboardServer(srv, s.service)

	errc := make(chan error, 1)
	go func() {
		s.l.Infof("starting grpc server, listening on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serving grpc")
	case <-ctx.Done():
	}

	srv.GracefulStop()
	<-errc
	s.l.Info("grpc server shut down")

	return nil
}

func (s *Server) logInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.l.WithFields(logrus.Fields{
		"method":   info.FullMethod,
		"code":     status.Code(err).String(),
		"duration": time.Since(start),
	}).Debug("grpc call handled")

	return resp, err
}
