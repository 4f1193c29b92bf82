// Package catalog holds static soccer team reference data.
package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/m-zajac/majorleaguegithub/internal/app"
)

// Team is a catalog record as written in the yaml file.
type Team struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	City            string  `yaml:"city"`
	State           string  `yaml:"state"`
	Latitude        float64 `yaml:"latitude"`
	Longitude       float64 `yaml:"longitude"`
	League          string  `yaml:"league"`
	Stadium         string  `yaml:"stadium"`
	StadiumCapacity int     `yaml:"stadium_capacity"`
	JoinedYear      int     `yaml:"joined_year"`
	HeadCoach       string  `yaml:"head_coach"`
	TeamURL         string  `yaml:"team_url"`
	WikipediaURL    string  `yaml:"wikipedia_url"`
	LogoURL         string  `yaml:"logo_url"`
}

type file struct {
	// League is used for teams that don't set their own.
	League string `yaml:"league"`
	Teams  []Team `yaml:"teams"`
}

// Catalog is a read only team directory. Zero value is an empty catalog.
type Catalog struct {
	teams map[string]app.SoccerTeam
}

var _ app.TeamDirectory = &Catalog{}

// Load reads catalog from yaml file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading teams file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return c, nil
}

// Parse builds catalog from yaml document.
// Every team needs a unique, non empty id.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	teams := make(map[string]app.SoccerTeam, len(f.Teams))
	for i, t := range f.Teams {
		if t.ID == "" {
			return nil, fmt.Errorf("team #%d: missing id", i+1)
		}
		if _, ok := teams[t.ID]; ok {
			return nil, fmt.Errorf("team %q: duplicated id", t.ID)
		}
		if t.StadiumCapacity < 0 {
			return nil, fmt.Errorf("team %q: negative stadium capacity", t.ID)
		}
		league := t.League
		if league == "" {
			league = f.League
		}
		teams[t.ID] = app.SoccerTeam{
			ID:              t.ID,
			Name:            t.Name,
			City:            t.City,
			State:           t.State,
			Latitude:        t.Latitude,
			Longitude:       t.Longitude,
			League:          league,
			Stadium:         t.Stadium,
			StadiumCapacity: t.StadiumCapacity,
			JoinedYear:      t.JoinedYear,
			HeadCoach:       t.HeadCoach,
			TeamURL:         t.TeamURL,
			WikipediaURL:    t.WikipediaURL,
			LogoURL:         t.LogoURL,
		}
	}

	return &Catalog{teams: teams}, nil
}

// Lookup returns team with given id.
func (c *Catalog) Lookup(id string) (app.SoccerTeam, bool) {
	if c == nil {
		return app.SoccerTeam{}, false
	}
	t, ok := c.teams[id]
	return t, ok
}

// Len returns number of teams in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.teams)
}
