package view

import (
	"time"

	"github.com/m-zajac/majorleaguegithub/internal/app"
)

// MobileBreakpoint is the viewport width (px) below which cards are used instead of the table.
const MobileBreakpoint = 600

// Messages shown instead of the data.
const (
	EmptyMessage       = "No contributors found. Try selecting different cities or region."
	ErrorMessagePrefix = "Error loading contributors: "
)

// Columns of the desktop table.
var Columns = []string{"Contributor", "Location", "Score", "Activity", "Engagement", "Last Active"}

var medals = []string{"🥇", "🥈", "🥉"}

// State is what the contributors table shows.
type State int

// Table states, in priority order.
const (
	StateLoading State = iota + 1
	StateError
	StateEmpty
	StateData
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StateData:
		return "data"
	}
	return "unknown"
}

// DataLayout tells how rows are presented.
type DataLayout int

// Available layouts.
const (
	// LayoutAuto renders both layouts, css media query picks one.
	LayoutAuto DataLayout = iota
	LayoutCards
	LayoutTable
)

// Viewport describes the browser window. Zero width means unknown.
type Viewport struct {
	Width int
}

// Layout returns layout for the viewport.
func (v Viewport) Layout() DataLayout {
	switch {
	case v.Width <= 0:
		return LayoutAuto
	case v.Width < MobileBreakpoint:
		return LayoutCards
	}
	return LayoutTable
}

// Table is the contributors table view model.
type Table struct {
	State   State
	Message string
	Layout  DataLayout
	Columns []string
	Rows    []Row
}

// NewTable builds table view model. Exactly one state is selected:
// loading wins over error, error wins over empty, empty wins over data.
// Rows keep the input order.
func NewTable(contributors []app.Contributor, isLoading bool, err error, viewport Viewport, loc *time.Location) Table {
	t := Table{
		Layout:  viewport.Layout(),
		Columns: Columns,
	}

	switch {
	case isLoading:
		t.State = StateLoading
	case err != nil:
		t.State = StateError
		t.Message = ErrorMessagePrefix + err.Error()
	case len(contributors) == 0:
		t.State = StateEmpty
		t.Message = EmptyMessage
	default:
		t.State = StateData
		t.Rows = make([]Row, 0, len(contributors))
		for i, c := range contributors {
			t.Rows = append(t.Rows, NewRow(i, c, loc))
		}
	}

	return t
}

// ShowCards tells if card layout should be rendered.
func (t Table) ShowCards() bool {
	return t.State == StateData && t.Layout != LayoutTable
}

// ShowTable tells if table layout should be rendered.
func (t Table) ShowTable() bool {
	return t.State == StateData && t.Layout != LayoutCards
}

// Responsive tells if both layouts are rendered and css decides.
func (t Table) Responsive() bool {
	return t.Layout == LayoutAuto
}

// Medal returns medal for given 0-based position, or empty string.
func Medal(i int) string {
	if i < 0 || i >= len(medals) {
		return ""
	}
	return medals[i]
}
