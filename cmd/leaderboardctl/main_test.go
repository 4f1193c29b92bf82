package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	gotFilter    app.Filter
	contributors []app.Contributor
	hiring       *app.Hiring
	err          error
}

func (c *fakeClient) Contributors(_ context.Context, filter app.Filter) ([]app.Contributor, error) {
	c.gotFilter = filter
	return c.contributors, c.err
}

func (c *fakeClient) Hiring(context.Context) (*app.Hiring, error) {
	return c.hiring, c.err
}

type nopCloser struct {
	closed bool
}

func (c *nopCloser) Close() error {
	c.closed = true
	return nil
}

func runCmd(t *testing.T, client *fakeClient, args ...string) (string, string, error) {
	t.Helper()

	closer := &nopCloser{}
	var gotAddress string
	cmd := newRootCmd(func(address string) (leaderboardClient, io.Closer, error) {
		gotAddress = address
		return client, closer, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		assert.True(t, closer.closed)
	}
	return out.String(), gotAddress, err
}

func TestContributorsCmdFilter(t *testing.T) {
	t.Parallel()

	client := &fakeClient{contributors: []app.Contributor{}}
	_, address, err := runCmd(t, client,
		"contributors",
		"--server", "example.com:1234",
		"--region", "south",
		"--state", "FL",
		"--state", "TX",
		"--city", "1,2",
	)
	require.NoError(t, err)
	assert.Equal(t, "example.com:1234", address)
	assert.Equal(t, app.Filter{
		RegionID: "south",
		StateIDs: []string{"FL", "TX"},
		CityIDs:  []string{"1", "2"},
	}, client.gotFilter)
}

func TestContributorsCmdJSON(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		contributors: []app.Contributor{
			{Login: "jdoe", Score: 1500},
		},
	}
	out, _, err := runCmd(t, client, "contributors")
	require.NoError(t, err)
	assert.Contains(t, out, `"Login": "jdoe"`)
	assert.Contains(t, out, `"Score": 1500`)
}

func TestContributorsCmdTable(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		contributors: []app.Contributor{
			{
				Login:            "jdoe",
				Score:            2300000,
				TotalCommits:     1500,
				JavaRepos:        3,
				StarsReceived:    999,
				LatestCommitDate: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
			},
			{Login: "anon"},
		},
	}
	out, _, err := runCmd(t, client, "contributors", "--table")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "LAST COMMIT")
	assert.Contains(t, string(lines[1]), "jdoe")
	assert.Contains(t, string(lines[1]), "2.3M")
	assert.Contains(t, string(lines[1]), "1.5K")
	assert.Contains(t, string(lines[1]), "999")
	assert.Contains(t, string(lines[1]), "3/5/2024")
	assert.Contains(t, string(lines[2]), "anon")
	assert.Contains(t, string(lines[2]), "-")
}

func TestHiringCmd(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		hiring: &app.Hiring{
			Manager: &app.HiringManager{Name: "Ann"},
		},
	}
	out, _, err := runCmd(t, client, "hiring")
	require.NoError(t, err)
	assert.Contains(t, out, `"Name": "Ann"`)
}

func TestCmdError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{err: errors.New("unavailable")}
	_, _, err := runCmd(t, client, "contributors")
	require.Error(t, err)

	_, _, err = runCmd(t, client, "hiring")
	require.Error(t, err)
}

func TestCmdRejectsArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runCmd(t, &fakeClient{}, "contributors", "extra")
	require.Error(t, err)
}
