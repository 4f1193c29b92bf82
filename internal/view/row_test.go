package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestNewRow(t *testing.T) {
	t.Parallel()

	c := app.Contributor{
		Login:     "octocat",
		Name:      "The Octocat",
		AvatarURL: "https://avatars.example/octocat",
		URL:       "https://github.com/octocat",
		City:      app.City{ID: "42", Name: "Miami", StateID: "FL"},
		NearestTeam: &app.SoccerTeam{
			ID:              "mia",
			Name:            "Inter Miami CF",
			City:            "Fort Lauderdale",
			State:           "Florida",
			League:          "MLS",
			Stadium:         "Chase Stadium",
			StadiumCapacity: 21550,
			JoinedYear:      2020,
			HeadCoach:       "Gerardo Martino",
			TeamURL:         "https://www.intermiamicf.com/",
			WikipediaURL:    "https://en.wikipedia.org/wiki/Inter_Miami_CF",
			LogoURL:         "https://logos.example/mia.png",
		},
		Score:            1523.5,
		TotalCommits:     2300,
		JavaRepos:        12,
		StarsReceived:    1500,
		StarsGiven:       30,
		ForksReceived:    200,
		ForksGiven:       4,
		LatestCommitDate: time.Date(2024, 11, 3, 10, 15, 0, 0, time.UTC),
	}

	want := Row{
		Rank:           1,
		Medal:          "🥇",
		Login:          "octocat",
		Name:           "The Octocat",
		SubTitle:       "octocat",
		AvatarURL:      "https://avatars.example/octocat",
		ProfileURL:     "https://github.com/octocat",
		Location:       "Miami, FL",
		Score:          "1.5K",
		Commits:        "2.3K",
		JavaRepos:      "12",
		StarsReceived:  "1.5K",
		ForksReceived:  "200",
		LastActiveDay:  "Nov 3",
		LastActiveYear: "2024",
		ContributorTooltip: Tooltip{
			Title: "The Octocat",
			Lines: []TooltipLine{
				{Icon: "📍", Text: "Miami, FL"},
				{Icon: "⭐", Text: "1,500 stars received"},
				{Icon: "📊", Text: "2,300 commits"},
				{Icon: "💻", Text: "12 Java repositories"},
			},
		},
		ScoreTooltip: Tooltip{
			Title: "Score Components",
			Lines: []TooltipLine{
				{Text: "1. Activity Score:"},
				{Text: "• 2,300 commits"},
				{Text: "• 1,500 stars received"},
				{},
				{Text: "2. Recency Multiplier:"},
				{Text: "• Based on last commit: 11/3/2024"},
				{Text: "• Range: 1.0 (year ago) to 2.0 (today)"},
			},
		},
		ActivityTooltip: Tooltip{
			Title: "Activity Details",
			Lines: []TooltipLine{
				{Icon: "📊", Text: "2,300 commits"},
				{Icon: "💻", Text: "12 Java repositories"},
			},
		},
		EngagementTooltip: Tooltip{
			Title: "Engagement Stats",
			Lines: []TooltipLine{
				{Icon: "⭐", Text: "1,500 stars received / 30 given"},
				{Icon: "🍴", Text: "200 forks received / 4 given"},
			},
		},
		LastActivityTooltip: Tooltip{
			Title: "Last Activity",
			Lines: []TooltipLine{
				{Icon: "🕒", Text: "Last commit: 11/3/2024"},
			},
		},
		Team: &TeamTooltip{
			Name:         "Inter Miami CF",
			LogoURL:      "https://logos.example/mia.png",
			Location:     "Fort Lauderdale, Florida",
			Stadium:      "Chase Stadium (21,550 capacity)",
			Joined:       "Joined MLS: 2020",
			HeadCoach:    "Gerardo Martino",
			TeamURL:      "https://www.intermiamicf.com/",
			WikipediaURL: "https://en.wikipedia.org/wiki/Inter_Miami_CF",
		},
	}

	got := NewRow(0, c, nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewRow() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRowMinimal(t *testing.T) {
	t.Parallel()

	got := NewRow(5, app.Contributor{Login: "hubot"}, nil)

	assert.Equal(t, 6, got.Rank)
	assert.Empty(t, got.Medal)
	assert.Equal(t, "hubot", got.Name)
	assert.Empty(t, got.SubTitle)
	assert.Equal(t, "https://github.com/hubot", got.ProfileURL)
	assert.Empty(t, got.Location)
	assert.Empty(t, got.LastActiveDay)
	assert.Nil(t, got.Team)
	assert.Equal(t, "0", got.Score)
}

func TestTeamTooltipOmitsMissingFacts(t *testing.T) {
	t.Parallel()

	got := newTeamTooltip(&app.SoccerTeam{
		Name:       "Austin FC",
		City:       "Austin",
		Stadium:    "Q2 Stadium",
		JoinedYear: 2021,
	})

	want := &TeamTooltip{
		Name:     "Austin FC",
		Location: "Austin",
		Stadium:  "Q2 Stadium",
		Joined:   "Joined: 2021",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("newTeamTooltip() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, newTeamTooltip(nil))
}
