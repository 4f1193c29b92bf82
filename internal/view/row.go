package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
)

// Row is a single contributor, shared by card and table layouts.
type Row struct {
	Rank       int
	Medal      string
	Login      string
	Name       string
	SubTitle   string
	AvatarURL  string
	ProfileURL string
	Location   string

	Score          string
	Commits        string
	JavaRepos      string
	StarsReceived  string
	ForksReceived  string
	LastActiveDay  string
	LastActiveYear string

	ContributorTooltip  Tooltip
	ScoreTooltip        Tooltip
	ActivityTooltip     Tooltip
	EngagementTooltip   Tooltip
	LastActivityTooltip Tooltip
	Team                *TeamTooltip
}

// Tooltip is a titled list of lines. Empty line is a separator.
type Tooltip struct {
	Title string
	Lines []TooltipLine
}

// TooltipLine is a tooltip text with optional icon.
type TooltipLine struct {
	Icon string
	Text string
}

// TeamTooltip holds nearest team facts. Empty fields are not rendered.
type TeamTooltip struct {
	Name         string
	LogoURL      string
	Location     string
	Stadium      string
	Joined       string
	HeadCoach    string
	TeamURL      string
	WikipediaURL string
}

// NewRow builds row for contributor at 0-based position i.
func NewRow(i int, c app.Contributor, loc *time.Location) Row {
	r := Row{
		Rank:       i + 1,
		Medal:      Medal(i),
		Login:      c.Login,
		Name:       c.DisplayName(),
		AvatarURL:  c.AvatarURL,
		ProfileURL: c.URL,
		Location:   joinNonEmpty(", ", c.City.Name, c.City.StateID),

		Score:         FormatNumber(c.Score),
		Commits:       FormatNumber(float64(c.TotalCommits)),
		JavaRepos:     FormatNumber(float64(c.JavaRepos)),
		StarsReceived: FormatNumber(float64(c.StarsReceived)),
		ForksReceived: FormatNumber(float64(c.ForksReceived)),
	}
	if c.Name != "" {
		r.SubTitle = c.Login
	}
	if r.ProfileURL == "" && c.Login != "" {
		r.ProfileURL = "https://github.com/" + c.Login
	}

	lastCommit := ""
	if !c.LatestCommitDate.IsZero() {
		lastCommit = FormatDate(c.LatestCommitDate, loc)
		r.LastActiveDay = FormatShortDate(c.LatestCommitDate, loc)
		r.LastActiveYear = FormatYear(c.LatestCommitDate, loc)
	}

	r.ContributorTooltip = Tooltip{
		Title: r.Name,
		Lines: []TooltipLine{
			{Icon: "📍", Text: r.Location},
			{Icon: "⭐", Text: FormatCount(c.StarsReceived) + " stars received"},
			{Icon: "📊", Text: FormatCount(c.TotalCommits) + " commits"},
			{Icon: "💻", Text: FormatCount(c.JavaRepos) + " Java repositories"},
		},
	}
	r.ScoreTooltip = Tooltip{
		Title: "Score Components",
		Lines: []TooltipLine{
			{Text: "1. Activity Score:"},
			{Text: "• " + FormatCount(c.TotalCommits) + " commits"},
			{Text: "• " + FormatCount(c.StarsReceived) + " stars received"},
			{},
			{Text: "2. Recency Multiplier:"},
			{Text: "• Based on last commit: " + lastCommit},
			{Text: "• Range: 1.0 (year ago) to 2.0 (today)"},
		},
	}
	r.ActivityTooltip = Tooltip{
		Title: "Activity Details",
		Lines: []TooltipLine{
			{Icon: "📊", Text: FormatCount(c.TotalCommits) + " commits"},
			{Icon: "💻", Text: FormatCount(c.JavaRepos) + " Java repositories"},
		},
	}
	r.EngagementTooltip = Tooltip{
		Title: "Engagement Stats",
		Lines: []TooltipLine{
			{Icon: "⭐", Text: fmt.Sprintf("%s stars received / %s given", FormatCount(c.StarsReceived), FormatCount(c.StarsGiven))},
			{Icon: "🍴", Text: fmt.Sprintf("%s forks received / %s given", FormatCount(c.ForksReceived), FormatCount(c.ForksGiven))},
		},
	}
	r.LastActivityTooltip = Tooltip{
		Title: "Last Activity",
		Lines: []TooltipLine{
			{Icon: "🕒", Text: "Last commit: " + lastCommit},
		},
	}
	r.Team = newTeamTooltip(c.NearestTeam)

	return r
}

func newTeamTooltip(t *app.SoccerTeam) *TeamTooltip {
	if t == nil {
		return nil
	}

	tt := &TeamTooltip{
		Name:         t.Name,
		LogoURL:      t.LogoURL,
		Location:     joinNonEmpty(", ", t.City, t.State),
		HeadCoach:    t.HeadCoach,
		TeamURL:      t.TeamURL,
		WikipediaURL: t.WikipediaURL,
	}
	if t.Stadium != "" {
		tt.Stadium = t.Stadium
		if t.StadiumCapacity > 0 {
			tt.Stadium += " (" + FormatCount(t.StadiumCapacity) + " capacity)"
		}
	}
	if t.JoinedYear > 0 {
		if t.League != "" {
			tt.Joined = fmt.Sprintf("Joined %s: %d", t.League, t.JoinedYear)
		} else {
			tt.Joined = fmt.Sprintf("Joined: %d", t.JoinedYear)
		}
	}

	return tt
}

func joinNonEmpty(sep string, parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}
