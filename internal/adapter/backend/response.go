package backend

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
)

// backendTimeLayouts are accepted timestamp formats.
// Backend serializes java LocalDateTime without zone, those values are treated as UTC.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

type backendTime struct {
	time.Time
}

func (t *backendTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range backendTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unparseable timestamp %q", s)
}

type apiErrorResponse struct {
	Timestamp backendTime `json:"timestamp"`
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Message   string      `json:"message"`
	Path      string      `json:"path"`
}

func (e apiErrorResponse) String() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	}
	return ""
}

type cityResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StateID string `json:"stateId"`
}

type teamResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	League          string  `json:"league"`
	Stadium         string  `json:"stadium"`
	StadiumCapacity int     `json:"stadiumCapacity"`
	JoinedYear      int     `json:"joinedYear"`
	HeadCoach       string  `json:"headCoach"`
	TeamURL         string  `json:"teamUrl"`
	WikipediaURL    string  `json:"wikipediaUrl"`
	LogoURL         string  `json:"logoUrl"`
}

func (t *teamResponse) ToTeam() *app.SoccerTeam {
	if t == nil {
		return nil
	}
	return &app.SoccerTeam{
		ID:              t.ID,
		Name:            t.Name,
		City:            t.City,
		State:           t.State,
		Latitude:        t.Latitude,
		Longitude:       t.Longitude,
		League:          t.League,
		Stadium:         t.Stadium,
		StadiumCapacity: t.StadiumCapacity,
		JoinedYear:      t.JoinedYear,
		HeadCoach:       t.HeadCoach,
		TeamURL:         t.TeamURL,
		WikipediaURL:    t.WikipediaURL,
		LogoURL:         t.LogoURL,
	}
}

type contributorsResponse []struct {
	Login            string        `json:"login"`
	Name             string        `json:"name"`
	AvatarURL        string        `json:"avatarUrl"`
	URL              string        `json:"url"`
	City             cityResponse  `json:"city"`
	NearestTeam      *teamResponse `json:"nearestTeam"`
	Score            float64       `json:"score"`
	TotalCommits     int           `json:"totalCommits"`
	JavaRepos        int           `json:"javaRepos"`
	StarsReceived    int           `json:"starsReceived"`
	StarsGiven       int           `json:"starsGiven"`
	ForksReceived    int           `json:"forksReceived"`
	ForksGiven       int           `json:"forksGiven"`
	LatestCommitDate backendTime   `json:"latestCommitDate"`
}

// ToContributors converts response to app entities.
// Every contributor must have latest commit date.
func (r contributorsResponse) ToContributors() ([]app.Contributor, error) {
	cs := make([]app.Contributor, 0, len(r))
	for i, el := range r {
		if el.LatestCommitDate.IsZero() {
			return nil, fmt.Errorf("contributor #%d (%s): missing latest commit date", i+1, el.Login)
		}
		cs = append(cs, app.Contributor{
			Login:     el.Login,
			Name:      el.Name,
			AvatarURL: el.AvatarURL,
			URL:       el.URL,
			City: app.City{
				ID:      el.City.ID,
				Name:    el.City.Name,
				StateID: el.City.StateID,
			},
			NearestTeam:      el.NearestTeam.ToTeam(),
			Score:            el.Score,
			TotalCommits:     el.TotalCommits,
			JavaRepos:        el.JavaRepos,
			StarsReceived:    el.StarsReceived,
			StarsGiven:       el.StarsGiven,
			ForksReceived:    el.ForksReceived,
			ForksGiven:       el.ForksGiven,
			LatestCommitDate: el.LatestCommitDate.Time,
		})
	}

	return cs, nil
}

type hiringResponse struct {
	HiringManager *struct {
		Name       string `json:"name"`
		Title      string `json:"title"`
		AvatarURL  string `json:"avatarUrl"`
		ProfileURL string `json:"profileUrl"`
		Email      string `json:"email"`
	} `json:"hiringManager"`
	JobOpenings []struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Location string `json:"location"`
		URL      string `json:"url"`
	} `json:"jobOpenings"`
}

func (r hiringResponse) ToHiring() *app.Hiring {
	var h app.Hiring
	if m := r.HiringManager; m != nil {
		h.Manager = &app.HiringManager{
			Name:       m.Name,
			Title:      m.Title,
			AvatarURL:  m.AvatarURL,
			ProfileURL: m.ProfileURL,
			Email:      m.Email,
		}
	}
	if r.JobOpenings != nil {
		h.JobOpenings = make([]app.JobOpening, 0, len(r.JobOpenings))
		for _, j := range r.JobOpenings {
			h.JobOpenings = append(h.JobOpenings, app.JobOpening{
				ID:       j.ID,
				Title:    j.Title,
				Location: j.Location,
				URL:      j.URL,
			})
		}
	}

	return &h
}

type statesResponse []struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	DisplayName string   `json:"displayName"`
	IconURL     string   `json:"iconUrl"`
	RegionIDs   []string `json:"regionIds"`
}

func (r statesResponse) ToStates() []app.State {
	ss := make([]app.State, 0, len(r))
	for _, el := range r {
		ss = append(ss, app.State{
			ID:          el.ID,
			Name:        el.Name,
			Code:        el.Code,
			DisplayName: el.DisplayName,
			IconURL:     el.IconURL,
			RegionIDs:   el.RegionIDs,
		})
	}

	return ss
}

type regionsResponse []struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r regionsResponse) ToRegions() []app.Region {
	rs := make([]app.Region, 0, len(r))
	for _, el := range r {
		rs = append(rs, app.Region{
			ID:   el.ID,
			Name: el.Name,
		})
	}

	return rs
}
