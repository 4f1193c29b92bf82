package grpc

import (
	"context"

	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// AppService returns leaderboard data.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/majorleaguegithub/internal/api/grpc AppService
type AppService interface {
	Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error)
	Hiring(ctx context.Context) (*app.Hiring, error)
}

// Service implements LeaderboardServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
	l          logrus.FieldLogger
}

var _ LeaderboardServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService, l logrus.FieldLogger) *Service {
	return &Service{
		appService: appService,
		l:          l,
	}
}

// Contributors calls service and returns reply.
func (s *Service) Contributors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ContributorsRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	contributors, err := s.appService.Contributors(ctx, req.Filter())
	if err != nil {
		return nil, s.statusError(errors.Wrap(err, "service.Contributors"))
	}

	reply := ContributorsReply{
		Contributors: make([]Contributor, 0, len(contributors)),
	}
	for _, c := range contributors {
		reply.Contributors = append(reply.Contributors, newContributor(c))
	}

	return s.encode(reply)
}

// Hiring calls service and returns reply.
func (s *Service) Hiring(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	hiring, err := s.appService.Hiring(ctx)
	if err != nil {
		return nil, s.statusError(errors.Wrap(err, "service.Hiring"))
	}

	return s.encode(newHiringReply(hiring))
}

func (s *Service) encode(v interface{}) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		s.l.Errorf("encoding reply: %v", err)
		return nil, status.Error(codes.Internal, "encoding reply")
	}
	return out, nil
}

// statusError maps app errors to grpc status codes.
func (s *Service) statusError(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsScheduledForLaterError(err):
		return status.Error(codes.Unavailable, "data is being prepared, try again later")
	case app.IsTooManyRequestsError(err):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.l.Errorf("grpc service: %v", err)
	return status.Error(codes.Internal, "internal error")
}
