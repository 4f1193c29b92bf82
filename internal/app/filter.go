package app

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	maxFilterStates = 50
	maxFilterCities = 50
)

var filterIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Filter narrows contributors list to given region, states and cities.
// Zero value means no filtering.
type Filter struct {
	RegionID string
	StateIDs []string
	CityIDs  []string
}

// IsEmpty tells if filter doesn't narrow anything.
func (f Filter) IsEmpty() bool {
	return f.RegionID == "" && len(f.StateIDs) == 0 && len(f.CityIDs) == 0
}

// Validate returns InvalidRequestError when filter params are malformed.
func (f Filter) Validate() error {
	if f.RegionID != "" && !filterIDPattern.MatchString(f.RegionID) {
		return InvalidRequestError(fmt.Sprintf("invalid region id %q", f.RegionID))
	}
	if len(f.StateIDs) > maxFilterStates {
		return InvalidRequestError(fmt.Sprintf("too many states, max is %d", maxFilterStates))
	}
	if len(f.CityIDs) > maxFilterCities {
		return InvalidRequestError(fmt.Sprintf("too many cities, max is %d", maxFilterCities))
	}
	for _, id := range f.StateIDs {
		if !filterIDPattern.MatchString(id) {
			return InvalidRequestError(fmt.Sprintf("invalid state id %q", id))
		}
	}
	for _, id := range f.CityIDs {
		if !filterIDPattern.MatchString(id) {
			return InvalidRequestError(fmt.Sprintf("invalid city id %q", id))
		}
	}

	return nil
}

// Key returns canonical string representation of the filter.
// Filters selecting the same data have equal keys.
func (f Filter) Key() string {
	return "r=" + f.RegionID +
		";s=" + strings.Join(sortedUnique(f.StateIDs), ",") +
		";c=" + strings.Join(sortedUnique(f.CityIDs), ",")
}

func sortedUnique(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
