package view

import (
	"net/url"
	"sort"
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
)

// LoadingRefreshSeconds is how often the browser reloads the page while data is being prepared.
const LoadingRefreshSeconds = 2

// Meta contains page title and OpenGraph properties.
type Meta struct {
	Title       string
	Description string
	Type        string
	ImageURL    string
	SiteName    string
}

// Options are page rendering settings not coming from the data.
type Options struct {
	Theme    Mode
	Viewport Viewport
	Location *time.Location
	Meta     Meta
}

// Layout is the whole page view model.
type Layout struct {
	Meta           Meta
	Theme          Mode
	Palette        Palette
	Header         Header
	Filters        FiltersPanel
	Table          Table
	Hiring         *HiringSection
	RefreshSeconds int
}

// Header is the page top bar.
type Header struct {
	Title          string
	Subtitle       string
	HomeURL        string
	ThemeToggleURL string
	ThemeToggleTo  Mode
}

// FiltersPanel lists regions and states. Selecting an option links to the filtered page.
type FiltersPanel struct {
	Regions  []FilterOption
	States   []FilterOption
	Active   bool
	ClearURL string
	Error    string
}

// FilterOption is a single clickable filter.
type FilterOption struct {
	ID       string
	Label    string
	IconURL  string
	Selected bool
	URL      string
}

// HiringSection is the sticky hiring banner.
type HiringSection struct {
	Manager     app.HiringManager
	JobOpenings []app.JobOpening
}

// NewLayout composes page view model.
func NewLayout(page app.Page, opts Options) Layout {
	theme := opts.Theme
	if _, ok := ParseMode(string(theme)); !ok {
		theme = ModeDark
	}

	l := Layout{
		Meta:    opts.Meta,
		Theme:   theme,
		Palette: theme.Palette(),
		Header: Header{
			Title:          opts.Meta.SiteName,
			Subtitle:       opts.Meta.Description,
			HomeURL:        PageURL(app.Filter{}, theme),
			ThemeToggleURL: PageURL(page.Filter, theme.Toggle()),
			ThemeToggleTo:  theme.Toggle(),
		},
		Filters: newFiltersPanel(page.Filter, page.Filters, page.FiltersErr, theme),
		Table:   NewTable(page.Contributors, page.ContributorsLoading, page.ContributorsErr, opts.Viewport, opts.Location),
		Hiring:  newHiringSection(page),
	}
	if l.Header.Title == "" {
		l.Header.Title = l.Meta.Title
	}
	if page.ContributorsLoading || page.HiringLoading {
		l.RefreshSeconds = LoadingRefreshSeconds
	}

	return l
}

// newHiringSection returns nil unless hiring is loaded and has both a manager and some job openings.
func newHiringSection(page app.Page) *HiringSection {
	if page.HiringLoading || page.HiringErr != nil || page.Hiring == nil {
		return nil
	}
	if page.Hiring.Manager == nil || len(page.Hiring.JobOpenings) == 0 {
		return nil
	}

	return &HiringSection{
		Manager:     *page.Hiring.Manager,
		JobOpenings: page.Hiring.JobOpenings,
	}
}

func newFiltersPanel(filter app.Filter, filters app.Filters, err error, theme Mode) FiltersPanel {
	p := FiltersPanel{
		Active:   !filter.IsEmpty(),
		ClearURL: PageURL(app.Filter{}, theme),
	}
	if err != nil {
		p.Error = "Error loading filters: " + err.Error()
		return p
	}

	for _, r := range filters.Regions {
		f := app.Filter{RegionID: r.ID}
		selected := filter.RegionID == r.ID
		if selected {
			f.RegionID = ""
		}
		p.Regions = append(p.Regions, FilterOption{
			ID:       r.ID,
			Label:    r.Name,
			Selected: selected,
			URL:      PageURL(f, theme),
		})
	}

	selectedStates := make(map[string]bool, len(filter.StateIDs))
	for _, id := range filter.StateIDs {
		selectedStates[id] = true
	}
	for _, s := range filters.States {
		if filter.RegionID != "" && !contains(s.RegionIDs, filter.RegionID) && !selectedStates[s.ID] {
			continue
		}
		label := s.DisplayName
		if label == "" {
			label = s.Name
		}

		// Toggle the state, city selection is kept.
		f := app.Filter{
			RegionID: filter.RegionID,
			CityIDs:  filter.CityIDs,
		}
		for _, id := range filter.StateIDs {
			if id != s.ID {
				f.StateIDs = append(f.StateIDs, id)
			}
		}
		if !selectedStates[s.ID] {
			f.StateIDs = append(f.StateIDs, s.ID)
		}

		p.States = append(p.States, FilterOption{
			ID:       s.ID,
			Label:    label,
			IconURL:  s.IconURL,
			Selected: selectedStates[s.ID],
			URL:      PageURL(f, theme),
		})
	}
	sort.SliceStable(p.States, func(i, j int) bool {
		return p.States[i].Label < p.States[j].Label
	})

	return p
}

// PageURL returns leaderboard page url for given filter and theme.
func PageURL(filter app.Filter, theme Mode) string {
	v := make(url.Values)
	if filter.RegionID != "" {
		v.Set("region", filter.RegionID)
	}
	for _, id := range filter.StateIDs {
		v.Add("state", id)
	}
	for _, id := range filter.CityIDs {
		v.Add("city", id)
	}
	if theme != "" {
		v.Set("theme", string(theme))
	}
	if len(v) == 0 {
		return "/"
	}

	return "/?" + v.Encode()
}

func contains(ss []string, s string) bool {
	for _, el := range ss {
		if el == s {
			return true
		}
	}
	return false
}
