package grpc

import (
	"context"
	"fmt"

	"github.com/m-zajac/majorleaguegithub/internal/app"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls Leaderboard service.
type Client struct {
	conn grpc.ClientConnInterface
}

// Dial creates connection to the server. Connection is not encrypted.
func Dial(address string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating grpc client for %s: %w", address, err)
	}

	return conn, nil
}

// NewClient creates new Client instance.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Contributors returns ranked contributors matching the filter.
func (c *Client) Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error) {
	in, err := toStruct(ContributorsRequest{
		Region: filter.RegionID,
		States: filter.StateIDs,
		Cities: filter.CityIDs,
	})
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, ContributorsMethod, in, out); err != nil {
		return nil, appError(err)
	}

	var reply ContributorsReply
	if err := fromStruct(out, &reply); err != nil {
		return nil, err
	}
	contributors := make([]app.Contributor, 0, len(reply.Contributors))
	for _, m := range reply.Contributors {
		ct, err := m.ToContributor()
		if err != nil {
			return nil, err
		}
		contributors = append(contributors, ct)
	}

	return contributors, nil
}

// Hiring returns hiring manager and job openings.
func (c *Client) Hiring(ctx context.Context) (*app.Hiring, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, HiringMethod, &structpb.Struct{}, out); err != nil {
		return nil, appError(err)
	}

	var reply HiringReply
	if err := fromStruct(out, &reply); err != nil {
		return nil, err
	}

	return reply.ToHiring(), nil
}

// appError maps grpc status back to app errors.
func appError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return app.InvalidRequestError(st.Message())
	case codes.Unavailable:
		return app.ScheduledForLaterError(st.Message())
	case codes.ResourceExhausted:
		return app.TooManyRequestsError(st.Message())
	}
	return err
}
