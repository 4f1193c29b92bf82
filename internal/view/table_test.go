package view

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContributors(n int) []app.Contributor {
	logins := []string{"octocat", "hubot", "monalisa", "defunkt", "mojombo"}
	cs := make([]app.Contributor, 0, n)
	for i := 0; i < n; i++ {
		cs = append(cs, app.Contributor{
			Login:            logins[i%len(logins)],
			City:             app.City{Name: "Miami", StateID: "FL"},
			Score:            float64(1000 * (n - i)),
			TotalCommits:     100 * (n - i),
			LatestCommitDate: time.Date(2024, 11, 3, 10, 0, 0, 0, time.UTC),
		})
	}
	return cs
}

func TestNewTableStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		contributors []app.Contributor
		isLoading    bool
		err          error
		wantState    State
		wantMessage  string
		wantRows     int
	}{
		{
			name:         "loading wins over everything",
			contributors: testContributors(3),
			isLoading:    true,
			err:          errors.New("boom"),
			wantState:    StateLoading,
		},
		{
			name:      "loading without data",
			isLoading: true,
			wantState: StateLoading,
		},
		{
			name:         "error wins over data",
			contributors: testContributors(3),
			err:          errors.New("backend unavailable"),
			wantState:    StateError,
			wantMessage:  "Error loading contributors: backend unavailable",
		},
		{
			name:        "error wins over empty",
			err:         errors.New("timeout"),
			wantState:   StateError,
			wantMessage: "Error loading contributors: timeout",
		},
		{
			name:         "empty",
			contributors: []app.Contributor{},
			wantState:    StateEmpty,
			wantMessage:  "No contributors found. Try selecting different cities or region.",
		},
		{
			name:        "nil list is empty",
			wantState:   StateEmpty,
			wantMessage: EmptyMessage,
		},
		{
			name:         "data",
			contributors: testContributors(4),
			wantState:    StateData,
			wantRows:     4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.contributors, tt.isLoading, tt.err, Viewport{}, nil)
			assert.Equal(t, tt.wantState, table.State)
			assert.Equal(t, tt.wantMessage, table.Message)
			assert.Len(t, table.Rows, tt.wantRows)
			if tt.wantState != StateData {
				assert.False(t, table.ShowCards())
				assert.False(t, table.ShowTable())
			}
		})
	}
}

func TestNewTableMedals(t *testing.T) {
	t.Parallel()

	table := NewTable(testContributors(5), false, nil, Viewport{Width: 1024}, nil)
	require.Len(t, table.Rows, 5)

	var medals []string
	for _, r := range table.Rows {
		medals = append(medals, r.Medal)
	}
	assert.Equal(t, []string{"🥇", "🥈", "🥉", "", ""}, medals)
	assert.Equal(t, 4, table.Rows[3].Rank)
}

func TestNewTableLayoutDoesntChangeRows(t *testing.T) {
	t.Parallel()

	contributors := testContributors(5)

	mobile := NewTable(contributors, false, nil, Viewport{Width: 375}, nil)
	desktop := NewTable(contributors, false, nil, Viewport{Width: 1280}, nil)
	unknown := NewTable(contributors, false, nil, Viewport{}, nil)

	assert.Equal(t, LayoutCards, mobile.Layout)
	assert.True(t, mobile.ShowCards())
	assert.False(t, mobile.ShowTable())

	assert.Equal(t, LayoutTable, desktop.Layout)
	assert.False(t, desktop.ShowCards())
	assert.True(t, desktop.ShowTable())

	assert.Equal(t, LayoutAuto, unknown.Layout)
	assert.True(t, unknown.ShowCards())
	assert.True(t, unknown.ShowTable())
	assert.True(t, unknown.Responsive())

	if diff := cmp.Diff(mobile.Rows, desktop.Rows); diff != "" {
		t.Errorf("rows differ between layouts (-mobile +desktop):\n%s", diff)
	}
	if diff := cmp.Diff(mobile.Rows, unknown.Rows); diff != "" {
		t.Errorf("rows differ between layouts (-mobile +unknown):\n%s", diff)
	}
	for i, r := range desktop.Rows {
		assert.Equal(t, contributors[i].Login, r.Login)
	}
}

func TestViewportLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LayoutAuto, Viewport{Width: 0}.Layout())
	assert.Equal(t, LayoutAuto, Viewport{Width: -1}.Layout())
	assert.Equal(t, LayoutCards, Viewport{Width: 599}.Layout())
	assert.Equal(t, LayoutTable, Viewport{Width: 600}.Layout())
}

func TestMedal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🥇", Medal(0))
	assert.Equal(t, "🥈", Medal(1))
	assert.Equal(t, "🥉", Medal(2))
	assert.Equal(t, "", Medal(3))
	assert.Equal(t, "", Medal(-1))
}

func TestTableColumns(t *testing.T) {
	t.Parallel()

	table := NewTable(testContributors(1), false, nil, Viewport{}, nil)
	assert.Equal(t, []string{"Contributor", "Location", "Score", "Activity", "Engagement", "Last Active"}, table.Columns)
}
