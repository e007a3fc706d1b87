// Package filter implements the match filter pipeline: a Criteria struct of
// optional constraints applied as a conjunction over the tracked player's
// match collection. Apply never mutates its input and always returns a fresh
// slice, so filtering is a strict subset operation and reset is lossless.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/stats"
)

// Criteria is the full set of optional match constraints. A zero field means
// "no constraint". Duration bounds are in seconds; UI-facing minute values
// are converted at the boundary (see FromMinutes).
type Criteria struct {
	Role      model.Role `json:"role,omitempty"`
	Champion  string     `json:"champion,omitempty"`
	Text      string     `json:"text,omitempty"`
	GameMode  string     `json:"gameMode,omitempty"`
	DateFrom  *time.Time `json:"dateFrom,omitempty"`
	DateTo    *time.Time `json:"dateTo,omitempty"`
	MinLength int        `json:"minLengthSec,omitempty"`
	MaxLength int        `json:"maxLengthSec,omitempty"`
	WinsOnly  bool       `json:"winsOnly,omitempty"`
	LossOnly  bool       `json:"lossOnly,omitempty"`
	MinKDA    *float64   `json:"minKda,omitempty"`
	MaxKDA    *float64   `json:"maxKda,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool {
	return c.Role == "" && c.Champion == "" && c.Text == "" && c.GameMode == "" &&
		c.DateFrom == nil && c.DateTo == nil &&
		c.MinLength == 0 && c.MaxLength == 0 &&
		!c.WinsOnly && !c.LossOnly &&
		c.MinKDA == nil && c.MaxKDA == nil
}

// FromMinutes converts a UI-facing minute value to the internal seconds unit.
func FromMinutes(min int) int {
	return min * 60
}

// Apply returns the subset of views satisfying every set constraint, as a
// new slice. The input is never modified. An empty Criteria returns a copy
// of the full input.
func Apply(views []model.PlayerMatch, c Criteria) []model.PlayerMatch {
	out := make([]model.PlayerMatch, 0, len(views))
	for _, v := range views {
		if matches(v, c) {
			out = append(out, v)
		}
	}
	return out
}

func matches(v model.PlayerMatch, c Criteria) bool {
	p := v.Participant
	info := v.Match.Info

	if c.Role != "" && p.Role() != c.Role {
		return false
	}
	if c.Champion != "" && !strings.EqualFold(p.ChampionName, c.Champion) {
		return false
	}
	if c.GameMode != "" && !strings.EqualFold(info.GameMode, c.GameMode) {
		return false
	}
	if c.Text != "" && !textMatch(v, c.Text) {
		return false
	}

	created := v.Match.CreationTime()
	if c.DateFrom != nil && created.Before(*c.DateFrom) {
		return false
	}
	// DateTo is inclusive through end-of-day local time.
	if c.DateTo != nil {
		end := endOfDay(*c.DateTo)
		if created.After(end) {
			return false
		}
	}

	if c.MinLength > 0 && info.GameDuration < c.MinLength {
		return false
	}
	if c.MaxLength > 0 && info.GameDuration > c.MaxLength {
		return false
	}

	if c.WinsOnly && !p.Win {
		return false
	}
	if c.LossOnly && p.Win {
		return false
	}

	if c.MinKDA != nil || c.MaxKDA != nil {
		kda := stats.KDA(p.Kills, p.Deaths, p.Assists)
		// +Inf passes any minimum and fails any finite maximum.
		if c.MinKDA != nil && kda < *c.MinKDA {
			return false
		}
		if c.MaxKDA != nil && kda > *c.MaxKDA {
			return false
		}
	}
	return true
}

func textMatch(v model.PlayerMatch, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(v.Participant.ChampionName), needle) ||
		strings.Contains(strings.ToLower(v.Match.Info.GameMode), needle) ||
		strings.Contains(strings.ToLower(v.Match.Metadata.MatchID), needle)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// QuickFilters are the named shortcut criteria. Applying one replaces all
// previously active criteria (replace, not merge).
var QuickFilters = map[string]func() Criteria{
	"recent-wins": func() Criteria {
		return Criteria{WinsOnly: true}
	},
	"long-games": func() Criteria {
		return Criteria{MinLength: FromMinutes(35)}
	},
	"high-kda": func() Criteria {
		min := 3.0
		return Criteria{MinKDA: &min}
	},
	"ranked-only": func() Criteria {
		return Criteria{GameMode: "CLASSIC"}
	},
}

// QuickFilter resolves a named quick filter. The returned Criteria is a
// complete replacement for whatever was previously active.
func QuickFilter(name string) (Criteria, bool) {
	fn, ok := QuickFilters[name]
	if !ok {
		return Criteria{}, false
	}
	return fn(), true
}

// QuickFilterNames returns the available shortcut names, sorted.
func QuickFilterNames() []string {
	names := make([]string, 0, len(QuickFilters))
	for name := range QuickFilters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
