package grpc

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages are carried as google.protobuf.Struct. Types below describe their fields.

// ContributorsRequest is the Contributors call input.
type ContributorsRequest struct {
	Region string   `json:"region,omitempty"`
	States []string `json:"states,omitempty"`
	Cities []string `json:"cities,omitempty"`
}

// Filter returns app filter for the request.
func (r ContributorsRequest) Filter() app.Filter {
	return app.Filter{
		RegionID: r.Region,
		StateIDs: r.States,
		CityIDs:  r.Cities,
	}
}

// ContributorsReply is the Contributors call output.
type ContributorsReply struct {
	Contributors []Contributor `json:"contributors"`
}

// City message.
type City struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	StateID string `json:"stateId"`
}

// Team message.
type Team struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	League          string `json:"league,omitempty"`
	Stadium         string `json:"stadium,omitempty"`
	StadiumCapacity int    `json:"stadiumCapacity,omitempty"`
	JoinedYear      int    `json:"joinedYear,omitempty"`
	HeadCoach       string `json:"headCoach,omitempty"`
	TeamURL         string `json:"teamUrl,omitempty"`
	WikipediaURL    string `json:"wikipediaUrl,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`
}

// Contributor message.
type Contributor struct {
	Login            string  `json:"login"`
	Name             string  `json:"name,omitempty"`
	AvatarURL        string  `json:"avatarUrl,omitempty"`
	URL              string  `json:"url,omitempty"`
	City             City    `json:"city"`
	NearestTeam      *Team   `json:"nearestTeam,omitempty"`
	Score            float64 `json:"score"`
	TotalCommits     int     `json:"totalCommits"`
	JavaRepos        int     `json:"javaRepos"`
	StarsReceived    int     `json:"starsReceived"`
	StarsGiven       int     `json:"starsGiven"`
	ForksReceived    int     `json:"forksReceived"`
	ForksGiven       int     `json:"forksGiven"`
	LatestCommitDate string  `json:"latestCommitDate,omitempty"`
}

// HiringReply is the Hiring call output.
type HiringReply struct {
	HiringManager *HiringManager `json:"hiringManager"`
	JobOpenings   []JobOpening   `json:"jobOpenings"`
}

// HiringManager message.
type HiringManager struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	Email      string `json:"email,omitempty"`
}

// JobOpening message.
type JobOpening struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url,omitempty"`
}

func newHiringReply(h *app.Hiring) HiringReply {
	reply := HiringReply{JobOpenings: []JobOpening{}}
	if h == nil {
		return reply
	}
	if m := h.Manager; m != nil {
		reply.HiringManager = &HiringManager{
			Name:       m.Name,
			Title:      m.Title,
			AvatarURL:  m.AvatarURL,
			ProfileURL: m.ProfileURL,
			Email:      m.Email,
		}
	}
	for _, j := range h.JobOpenings {
		reply.JobOpenings = append(reply.JobOpenings, JobOpening{
			ID:       j.ID,
			Title:    j.Title,
			Location: j.Location,
			URL:      j.URL,
		})
	}

	return reply
}

// ToHiring converts message back to app entity.
func (r HiringReply) ToHiring() *app.Hiring {
	h := &app.Hiring{
		JobOpenings: make([]app.JobOpening, 0, len(r.JobOpenings)),
	}
	if m := r.HiringManager; m != nil {
		h.Manager = &app.HiringManager{
			Name:       m.Name,
			Title:      m.Title,
			AvatarURL:  m.AvatarURL,
			ProfileURL: m.ProfileURL,
			Email:      m.Email,
		}
	}
	for _, j := range r.JobOpenings {
		h.JobOpenings = append(h.JobOpenings, app.JobOpening{
			ID:       j.ID,
			Title:    j.Title,
			Location: j.Location,
			URL:      j.URL,
		})
	}

	return h
}

func newContributor(c app.Contributor) Contributor {
	m := Contributor{
		Login:     c.Login,
		Name:      c.Name,
		AvatarURL: c.AvatarURL,
		URL:       c.URL,
		City: City{
			ID:      c.City.ID,
			Name:    c.City.Name,
			StateID: c.City.StateID,
		},
		Score:         c.Score,
		TotalCommits:  c.TotalCommits,
		JavaRepos:     c.JavaRepos,
		StarsReceived: c.StarsReceived,
		StarsGiven:    c.StarsGiven,
		ForksReceived: c.ForksReceived,
		ForksGiven:    c.ForksGiven,
	}
	if !c.LatestCommitDate.IsZero() {
		m.LatestCommitDate = c.LatestCommitDate.UTC().Format(time.RFC3339)
	}
	if t := c.NearestTeam; t != nil {
		m.NearestTeam = &Team{
			ID:              t.ID,
			Name:            t.Name,
			City:            t.City,
			State:           t.State,
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

	return m
}

// ToContributor converts message back to app entity.
func (c Contributor) ToContributor() (app.Contributor, error) {
	out := app.Contributor{
		Login:     c.Login,
		Name:      c.Name,
		AvatarURL: c.AvatarURL,
		URL:       c.URL,
		City: app.City{
			ID:      c.City.ID,
			Name:    c.City.Name,
			StateID: c.City.StateID,
		},
		Score:         c.Score,
		TotalCommits:  c.TotalCommits,
		JavaRepos:     c.JavaRepos,
		StarsReceived: c.StarsReceived,
		StarsGiven:    c.StarsGiven,
		ForksReceived: c.ForksReceived,
		ForksGiven:    c.ForksGiven,
	}
	if c.LatestCommitDate != "" {
		t, err := time.Parse(time.RFC3339, c.LatestCommitDate)
		if err != nil {
			return app.Contributor{}, fmt.Errorf("contributor %s: invalid latest commit date: %w", c.Login, err)
		}
		out.LatestCommitDate = t
	}
	if t := c.NearestTeam; t != nil {
		out.NearestTeam = &app.SoccerTeam{
			ID:              t.ID,
			Name:            t.Name,
			City:            t.City,
			State:           t.State,
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

	return out, nil
}

// toStruct encodes message as protobuf struct, using message json field names.
func toStruct(v interface{}) (*structpb.Struct, error) {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshalling message: %w", err)
	}
	var m map[string]interface{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshalling message: %w", err)
	}

	return structpb.NewStruct(m)
}

// fromStruct decodes protobuf struct into message.
func fromStruct(s *structpb.Struct, v interface{}) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("marshalling struct: %w", err)
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}

	return nil
}
