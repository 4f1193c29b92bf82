package app

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// BackendClient returns leaderboard data from the backend api.
//
//go:generate mockgen -destination mock/backend.go -package mock github.com/m-zajac/majorleaguegithub/internal/app BackendClient,TeamDirectory
type BackendClient interface {
	Contributors(ctx context.Context, filter Filter) ([]Contributor, error)
	Hiring(ctx context.Context) (*Hiring, error)
	States(ctx context.Context) ([]State, error)
	Regions(ctx context.Context) ([]Region, error)
}

// TeamDirectory knows static details of soccer teams.
type TeamDirectory interface {
	Lookup(id string) (SoccerTeam, bool)
}

// Page contains everything needed to render leaderboard page.
// Each section carries its own loading flag and error, so one failing section doesn't hide the others.
type Page struct {
	Filter Filter

	Contributors        []Contributor
	ContributorsLoading bool
	ContributorsErr     error

	Hiring        *Hiring
	HiringLoading bool
	HiringErr     error

	Filters    Filters
	FiltersErr error
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	backend BackendClient
	teams   TeamDirectory
	timeout time.Duration
}

// NewService creates new Service instance.
// teams is optional.
func NewService(backend BackendClient, teams TeamDirectory, timeout time.Duration) *Service {
	return &Service{
		backend: backend,
		teams:   teams,
		timeout: timeout,
	}
}

// Contributors returns ranked contributors matching the filter.
// Backend order is preserved. Contributors without login and repeated logins are skipped.
func (s *Service) Contributors(ctx context.Context, filter Filter) ([]Contributor, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contributors, err := s.backend.Contributors(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving contributors")
	}

	return s.normalizeContributors(contributors), nil
}

// Hiring returns hiring manager and job openings. Returns nil when backend has no hiring data.
func (s *Service) Hiring(ctx context.Context) (*Hiring, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	hiring, err := s.backend.Hiring(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving hiring")
	}

	return hiring, nil
}

// Filters returns regions and states available for filtering.
func (s *Service) Filters(ctx context.Context) (Filters, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var filters Filters
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		regions, err := s.backend.Regions(ctx)
		if err != nil {
			return errors.Wrap(err, "retrieving regions")
		}
		filters.Regions = regions
		return nil
	})
	g.Go(func() error {
		states, err := s.backend.States(ctx)
		if err != nil {
			return errors.Wrap(err, "retrieving states")
		}
		filters.States = states
		return nil
	})
	if err := g.Wait(); err != nil {
		return Filters{}, err
	}

	return filters, nil
}

// Page fetches all page sections concurrently.
// Returns error only when filter is invalid, section errors are reported in the Page.
func (s *Service) Page(ctx context.Context, filter Filter) (Page, error) {
	if err := filter.Validate(); err != nil {
		return Page{}, err
	}

	page := Page{Filter: filter}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		contributors, err := s.Contributors(ctx, filter)
		page.Contributors = contributors
		page.ContributorsLoading, page.ContributorsErr = foldLoading(err)
	}()
	go func() {
		defer wg.Done()
		hiring, err := s.Hiring(ctx)
		page.Hiring = hiring
		page.HiringLoading, page.HiringErr = foldLoading(err)
	}()
	go func() {
		defer wg.Done()
		page.Filters, page.FiltersErr = s.Filters(ctx)
	}()
	wg.Wait()

	return page, nil
}

// foldLoading turns "scheduled for later" error into loading flag.
func foldLoading(err error) (bool, error) {
	if IsScheduledForLaterError(err) {
		return true, nil
	}
	return false, err
}

func (s *Service) normalizeContributors(contributors []Contributor) []Contributor {
	result := make([]Contributor, 0, len(contributors))
	seen := make(map[string]bool, len(contributors))
	for _, c := range contributors {
		if c.Login == "" || seen[c.Login] {
			continue
		}
		seen[c.Login] = true

		c.Score = nonNegativeFloat(c.Score)
		c.TotalCommits = nonNegative(c.TotalCommits)
		c.JavaRepos = nonNegative(c.JavaRepos)
		c.StarsReceived = nonNegative(c.StarsReceived)
		c.StarsGiven = nonNegative(c.StarsGiven)
		c.ForksReceived = nonNegative(c.ForksReceived)
		c.ForksGiven = nonNegative(c.ForksGiven)
		c.NearestTeam = s.completeTeam(c.NearestTeam)

		result = append(result, c)
	}

	return result
}

// completeTeam fills missing team details from the directory.
// Returns a new value, cached backend data is never modified.
func (s *Service) completeTeam(team *SoccerTeam) *SoccerTeam {
	if team == nil || s.teams == nil {
		return team
	}
	known, ok := s.teams.Lookup(team.ID)
	if !ok {
		return team
	}

	t := *team
	fillString(&t.Name, known.Name)
	fillString(&t.City, known.City)
	fillString(&t.State, known.State)
	fillString(&t.League, known.League)
	fillString(&t.Stadium, known.Stadium)
	fillString(&t.HeadCoach, known.HeadCoach)
	fillString(&t.TeamURL, known.TeamURL)
	fillString(&t.WikipediaURL, known.WikipediaURL)
	fillString(&t.LogoURL, known.LogoURL)
	if t.StadiumCapacity == 0 {
		t.StadiumCapacity = known.StadiumCapacity
	}
	if t.JoinedYear == 0 {
		t.JoinedYear = known.JoinedYear
	}
	if t.Latitude == 0 && t.Longitude == 0 {
		t.Latitude, t.Longitude = known.Latitude, known.Longitude
	}

	return &t
}

func fillString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
