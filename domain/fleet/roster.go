package fleet

import (
	"sort"
	"strings"

	lo "github.com/samber/lo"
)

// Roster is the fleet reported on. Vessels fixes output order and makes the
// vessel-quarter output dense; Aliases maps names as they appear in source
// data to their reported name.
type Roster struct {
	Vessels []string
	Aliases map[string]string
}

// Resolve trims name and applies any alias.
func (r Roster) Resolve(name string) string {
	name = strings.TrimSpace(name)
	if alias, ok := r.Aliases[name]; ok {
		return alias
	}
	return name
}

// Normalize returns a copy of projects with vessel names resolved.
func (r Roster) Normalize(projects []Project) []Project {
	return lo.Map(projects, func(p Project, _ int) Project {
		p.Vessel = r.Resolve(p.Vessel)
		return p
	})
}

// Contains reports whether vessel is on the roster.
func (r Roster) Contains(vessel string) bool {
	return lo.Contains(r.Vessels, vessel)
}

// Order lists roster vessels in roster order followed by any other vessel
// seen in projects, sorted by name. Blank vessel names are ignored.
func (r Roster) Order(projects []Project) []string {
	order := lo.Uniq(r.Vessels)
	extra := lo.Uniq(lo.FilterMap(projects, func(p Project, _ int) (string, bool) {
		return p.Vessel, p.Vessel != "" && !lo.Contains(order, p.Vessel)
	}))
	sort.Strings(extra)
	return append(order, extra...)
}

// Extras are vessels seen in projects that are not on the roster.
func (r Roster) Extras(projects []Project) []string {
	return lo.Without(r.Order(projects), r.Vessels...)
}

func (r Roster) rank(vessel string) int {
	if i := lo.IndexOf(r.Vessels, vessel); i >= 0 {
		return i
	}
	return len(r.Vessels)
}
