package app

import "time"

// City entity
type City struct {
	ID      string
	Name    string
	StateID string
}

// SoccerTeam is static reference data about a club near a contributor.
type SoccerTeam struct {
	ID              string
	Name            string
	City            string
	State           string
	Latitude        float64
	Longitude       float64
	League          string
	Stadium         string
	StadiumCapacity int
	JoinedYear      int
	HeadCoach       string
	TeamURL         string
	WikipediaURL    string
	LogoURL         string
}

// Contributor entity. Contributors come from the backend already ranked.
type Contributor struct {
	Login            string
	Name             string
	AvatarURL        string
	URL              string
	City             City
	NearestTeam      *SoccerTeam
	Score            float64
	TotalCommits     int
	JavaRepos        int
	StarsReceived    int
	StarsGiven       int
	ForksReceived    int
	ForksGiven       int
	LatestCommitDate time.Time
}

// DisplayName returns contributor's name, or login when name is not set.
func (c Contributor) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Login
}

// State entity
type State struct {
	ID          string
	Name        string
	Code        string
	DisplayName string
	IconURL     string
	RegionIDs   []string
}

// Region entity
type Region struct {
	ID   string
	Name string
}

// Filters holds reference data for the filters panel.
type Filters struct {
	Regions []Region
	States  []State
}

// HiringManager entity
type HiringManager struct {
	Name       string
	Title      string
	AvatarURL  string
	ProfileURL string
	Email      string
}

// JobOpening entity
type JobOpening struct {
	ID       string
	Title    string
	Location string
	URL      string
}

// Hiring groups hiring manager with open positions.
type Hiring struct {
	Manager     *HiringManager
	JobOpenings []JobOpening
}
