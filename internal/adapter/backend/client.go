package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-zajac/majorleaguegithub/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns leaderboard data from the backend rest api.
// This struct is an adapter for app.BackendClient.
type Client struct {
	doer    HTTPDoer
	address string

	responseMaxSize int64
}

var _ app.BackendClient = &Client{}

// NewClient creates new backend client.
// address is api base url with protocol, eg. "http://localhost:8080".
func NewClient(doer HTTPDoer, address string) *Client {
	return &Client{
		doer:            doer,
		address:         strings.TrimRight(address, "/"),
		responseMaxSize: 1024 * 1024 * 10,
	}
}

// Contributors returns ranked contributors matching the filter.
func (c *Client) Contributors(ctx context.Context, filter app.Filter) ([]app.Contributor, error) {
	v := make(url.Values)
	if filter.RegionID != "" {
		v.Set("regionId", filter.RegionID)
	}
	for _, id := range filter.StateIDs {
		v.Add("stateId", id)
	}
	for _, id := range filter.CityIDs {
		v.Add("cityId", id)
	}

	var resp contributorsResponse
	if _, err := c.get(ctx, "/api/contributors", v, &resp); err != nil {
		return nil, err
	}

	contributors, err := resp.ToContributors()
	if err != nil {
		return nil, fmt.Errorf("decoding contributors: %w", err)
	}

	return contributors, nil
}

// Hiring returns hiring manager with job openings.
// Returns nil if backend has no hiring data.
func (c *Client) Hiring(ctx context.Context) (*app.Hiring, error) {
	var resp hiringResponse
	found, err := c.get(ctx, "/api/hiring", nil, &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return resp.ToHiring(), nil
}

// States returns all states known to the backend.
func (c *Client) States(ctx context.Context) ([]app.State, error) {
	var resp statesResponse
	if _, err := c.get(ctx, "/api/states", nil, &resp); err != nil {
		return nil, err
	}

	return resp.ToStates(), nil
}

// Regions returns all regions known to the backend.
func (c *Client) Regions(ctx context.Context) ([]app.Region, error) {
	var resp regionsResponse
	if _, err := c.get(ctx, "/api/regions", nil, &resp); err != nil {
		return nil, err
	}

	return resp.ToRegions(), nil
}

// get calls backend endpoint and unmarshals json response into v.
// Returns false when backend responded with no content.
func (c *Client) get(ctx context.Context, path string, query url.Values, v interface{}) (bool, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return false, fmt.Errorf("invalid url: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.makeRequest(req)
	if err != nil {
		return false, fmt.Errorf("calling %s: %w", path, err)
	}
	if body == nil {
		return false, nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return false, fmt.Errorf("unmarshalling %s response: %w", path, err)
	}

	return true, nil
}

func (c *Client) makeRequest(req *http.Request) ([]byte, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode/100 != 2 {
		return nil, c.statusError(resp)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.responseMaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if int64(len(b)) > c.responseMaxSize {
		return nil, errors.New("response body too large")
	}

	return b, nil
}

// statusError builds error from non 2xx response.
// Backend describes errors with ApiError json, its message is used when available.
func (c *Client) statusError(resp *http.Response) error {
	msg := fmt.Sprintf("got invalid http status code: %d", resp.StatusCode)

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var apiErr apiErrorResponse
	if err := json.Unmarshal(b, &apiErr); err == nil && apiErr.String() != "" {
		msg = fmt.Sprintf("%s (status %d)", apiErr.String(), resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests, c.checkRateLimitExceeded(resp.Header):
		return app.TooManyRequestsError(msg)
	case resp.StatusCode/100 == 4:
		return app.InvalidRequestError(msg)
	}

	return errors.New(msg)
}

func (c *Client) checkRateLimitExceeded(h http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
