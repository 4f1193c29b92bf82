package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/majorleaguegithub/internal/app"
	"github.com/m-zajac/majorleaguegithub/internal/view"
	"github.com/sirupsen/logrus"
)

const (
	themeCookieName = "theme"
	themeCookieAge  = 365 * 24 * time.Hour

	maxViewportWidth = 10000
)

// Client hints carrying viewport width.
var viewportHints = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// NewPageHandler creates handlerfunc rendering the leaderboard page.
func NewPageHandler(
	service Service,
	renderer Renderer,
	conf PageConfig,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", strings.Join(viewportHints, ", "))
		w.Header().Add("Vary", strings.Join(append(viewportHints, "Cookie"), ", "))

		filter := getFilter(r)
		theme := getTheme(w, r, conf.DefaultTheme)

		page, err := service.Page(r.Context(), filter)
		if err != nil {
			if app.IsInvalidRequestError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			l.Errorf("page handler: getting page: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		layout := view.NewLayout(page, view.Options{
			Theme:    theme,
			Viewport: getViewport(r),
			Location: conf.Location,
			Meta:     conf.Meta,
		})

		w.Header().Set("Content-type", "text/html; charset=utf-8")
		if layout.RefreshSeconds > 0 {
			w.Header().Set("Cache-Control", "no-store")
		}
		if err := renderer.Render(w, layout); err != nil {
			l.Errorf("page handler: rendering: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
		}
	}
}

type filterResponse struct {
	Region string   `json:"region,omitempty"`
	States []string `json:"states,omitempty"`
	Cities []string `json:"cities,omitempty"`
}

type cityResponse struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	StateID string `json:"stateId"`
}

type teamResponse struct {
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

type contributor struct {
	Login            string        `json:"login"`
	Name             string        `json:"name,omitempty"`
	AvatarURL        string        `json:"avatarUrl,omitempty"`
	URL              string        `json:"url,omitempty"`
	City             cityResponse  `json:"city"`
	NearestTeam      *teamResponse `json:"nearestTeam,omitempty"`
	Score            float64       `json:"score"`
	TotalCommits     int           `json:"totalCommits"`
	JavaRepos        int           `json:"javaRepos"`
	StarsReceived    int           `json:"starsReceived"`
	StarsGiven       int           `json:"starsGiven"`
	ForksReceived    int           `json:"forksReceived"`
	ForksGiven       int           `json:"forksGiven"`
	LatestCommitDate string        `json:"latestCommitDate,omitempty"`
}

type contributorsResponse struct {
	Filter       filterResponse `json:"filter"`
	Contributors []contributor  `json:"contributors"`
}

func newContributorsResponse(filter app.Filter, contributors []app.Contributor) contributorsResponse {
	resp := contributorsResponse{
		Filter: filterResponse{
			Region: filter.RegionID,
			States: filter.StateIDs,
			Cities: filter.CityIDs,
		},
		Contributors: make([]contributor, 0, len(contributors)),
	}
	for _, c := range contributors {
		el := contributor{
			Login:     c.Login,
			Name:      c.Name,
			AvatarURL: c.AvatarURL,
			URL:       c.URL,
			City: cityResponse{
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
			el.LatestCommitDate = c.LatestCommitDate.UTC().Format(time.RFC3339)
		}
		if t := c.NearestTeam; t != nil {
			el.NearestTeam = &teamResponse{
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
		resp.Contributors = append(resp.Contributors, el)
	}

	return resp
}

// NewContributorsHandler creates handlerfunc returning contributors as json.
// Responds with 202 while data is being prepared.
func NewContributorsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := getFilter(r)

		contributors, err := service.Contributors(r.Context(), filter)
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case app.IsScheduledForLaterError(err):
				writeJSON(w, http.StatusAccepted, map[string]string{"status": "loading"})
			default:
				l.Errorf("contributors handler: %v", err)
				http.Error(w, "", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, newContributorsResponse(filter, contributors))
	}
}

// NewHealthHandler creates handlerfunc for liveness checks.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

// getFilter reads filter from url query. Repeated params and comma separated lists are both accepted.
func getFilter(r *http.Request) app.Filter {
	q := r.URL.Query()
	return app.Filter{
		RegionID: strings.TrimSpace(q.Get("region")),
		StateIDs: getListParam(q["state"]),
		CityIDs:  getListParam(q["city"]),
	}
}

func getListParam(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// getTheme returns theme from query, then from cookie, then the default.
// Theme chosen in query is remembered in a cookie.
func getTheme(w http.ResponseWriter, r *http.Request, defaultTheme view.Mode) view.Mode {
	if m, ok := view.ParseMode(r.URL.Query().Get("theme")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     themeCookieName,
			Value:    string(m),
			Path:     "/",
			MaxAge:   int(themeCookieAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return m
	}
	if c, err := r.Cookie(themeCookieName); err == nil {
		if m, ok := view.ParseMode(c.Value); ok {
			return m
		}
	}
	return defaultTheme
}

// getViewport reads viewport width from "vw" query param or client hints.
func getViewport(r *http.Request) view.Viewport {
	candidates := []string{r.URL.Query().Get("vw")}
	for _, h := range viewportHints {
		candidates = append(candidates, r.Header.Get(h))
	}
	for _, s := range candidates {
		if s == "" {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v > 0 && v <= maxViewportWidth {
			return view.Viewport{Width: v}
		}
	}
	return view.Viewport{}
}
