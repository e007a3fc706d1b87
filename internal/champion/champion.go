// Package champion aggregates the tracked player's matches per champion and
// derives teammate synergy pairs. Aggregation is pure: inputs are never
// mutated, results are recomputed from whatever view set is passed in.
package champion

import (
	"math"
	"sort"
	"strings"

	"github.com/riftlab/riftmetrics/internal/model"
)

// Aggregate groups the views by champion id and accumulates totals. Mastery
// level/points are joined by champion id when a snapshot is available. The
// result is unsorted; callers apply a SortSpec.
func Aggregate(views []model.PlayerMatch, mastery map[int]model.MasteryEntry) []model.ChampionAggregate {
	byID := make(map[int]*model.ChampionAggregate)
	var order []int
	for _, v := range views {
		p := v.Participant
		agg := byID[p.ChampionID]
		if agg == nil {
			agg = &model.ChampionAggregate{
				ChampionID:   p.ChampionID,
				ChampionName: p.ChampionName,
			}
			byID[p.ChampionID] = agg
			order = append(order, p.ChampionID)
		}
		agg.Games++
		if p.Win {
			agg.Wins++
		}
		agg.Kills += p.Kills
		agg.Deaths += p.Deaths
		agg.Assists += p.Assists
		agg.Gold += p.GoldEarned
		agg.CS += p.TotalCS()
		agg.VisionScore += p.VisionScore
		agg.Damage += p.TotalDamage()
		agg.DurationSec += v.Match.Info.GameDuration
	}

	out := make([]model.ChampionAggregate, 0, len(order))
	for _, id := range order {
		agg := *byID[id]
		if m, ok := mastery[id]; ok {
			agg.MasteryLevel = m.ChampionLevel
			agg.MasteryPoints = m.ChampionPoints
		}
		out = append(out, agg)
	}
	return out
}

// SortKey identifies one sortable column of the champion table.
type SortKey string

const (
	SortByName    SortKey = "name"
	SortByGames   SortKey = "games"
	SortByWins    SortKey = "wins"
	SortByWinRate SortKey = "winrate"
	SortByKDA     SortKey = "kda"
	SortByCS      SortKey = "cs"
	SortByGold    SortKey = "gold"
	SortByVision  SortKey = "vision"
	SortByMastery SortKey = "mastery"
)

// SortKeys lists every accepted key, for flag help and validation.
var SortKeys = []SortKey{
	SortByName, SortByGames, SortByWins, SortByWinRate,
	SortByKDA, SortByCS, SortByGold, SortByVision, SortByMastery,
}

// ParseSortKey validates a raw key string.
func ParseSortKey(s string) (SortKey, bool) {
	k := SortKey(strings.ToLower(s))
	for _, known := range SortKeys {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// SortCriterion is one level of the sort stack.
type SortCriterion struct {
	Key  SortKey
	Desc bool
}

// SortSpec is an ordered stack of sort criteria, earliest pushed wins first.
// Pushing a key already on the stack flips its direction in place instead of
// appending, so repeated selection of the same column toggles asc/desc.
type SortSpec struct {
	stack []SortCriterion
}

// Push adds key to the stack in descending order, or flips the direction of
// the existing entry for that key.
func (s *SortSpec) Push(key SortKey) {
	for i := range s.stack {
		if s.stack[i].Key == key {
			s.stack[i].Desc = !s.stack[i].Desc
			return
		}
	}
	s.stack = append(s.stack, SortCriterion{Key: key, Desc: true})
}

// Criteria returns a copy of the current stack, in priority order.
func (s *SortSpec) Criteria() []SortCriterion {
	out := make([]SortCriterion, len(s.stack))
	copy(out, s.stack)
	return out
}

// Sort orders aggs in place according to the stack. With an empty stack the
// input order is preserved.
func (s *SortSpec) Sort(aggs []model.ChampionAggregate) {
	if len(s.stack) == 0 {
		return
	}
	sort.SliceStable(aggs, func(i, j int) bool {
		for _, c := range s.stack {
			cmp := compare(&aggs[i], &aggs[j], c.Key)
			if cmp == 0 {
				continue
			}
			if c.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compare returns -1/0/+1 for a single key. Name compares case-sensitively;
// everything else is numeric. Win rate and KDA are derived per comparison so
// the stack never works on stale values.
func compare(a, b *model.ChampionAggregate, key SortKey) int {
	switch key {
	case SortByName:
		return strings.Compare(a.ChampionName, b.ChampionName)
	case SortByGames:
		return compareInt(a.Games, b.Games)
	case SortByWins:
		return compareInt(a.Wins, b.Wins)
	case SortByWinRate:
		return compareFloat(a.WinRate(), b.WinRate())
	case SortByKDA:
		return compareFloat(a.KDA(), b.KDA())
	case SortByCS:
		return compareFloat(a.AvgCS(), b.AvgCS())
	case SortByGold:
		return compareFloat(a.AvgGold(), b.AvgGold())
	case SortByVision:
		return compareFloat(a.AvgVision(), b.AvgVision())
	case SortByMastery:
		if a.MasteryLevel != b.MasteryLevel {
			return compareInt(a.MasteryLevel, b.MasteryLevel)
		}
		return compareInt(a.MasteryPoints, b.MasteryPoints)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloat treats two +Inf values as equal so perfect-KDA champions tie
// instead of thrashing the stable sort.
func compareFloat(a, b float64) int {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AggregateFilter restricts a champion table. Zero fields mean no constraint;
// all set fields must hold. Filtering copies, so the unfiltered table can be
// restored without recomputing.
type AggregateFilter struct {
	MinGames        int
	MinWinRate      float64
	MaxWinRate      float64
	MinKDA          float64
	MinMasteryLevel int
	NameContains    string
}

// IsEmpty reports whether no constraint is set.
func (f AggregateFilter) IsEmpty() bool {
	return f.MinGames == 0 && f.MinWinRate == 0 && f.MaxWinRate == 0 &&
		f.MinKDA == 0 && f.MinMasteryLevel == 0 && f.NameContains == ""
}

// Apply returns the aggregates passing every set constraint, as a new slice.
func (f AggregateFilter) Apply(aggs []model.ChampionAggregate) []model.ChampionAggregate {
	out := make([]model.ChampionAggregate, 0, len(aggs))
	for _, a := range aggs {
		if f.keep(&a) {
			out = append(out, a)
		}
	}
	return out
}

func (f AggregateFilter) keep(a *model.ChampionAggregate) bool {
	if f.MinGames > 0 && a.Games < f.MinGames {
		return false
	}
	if f.MinWinRate > 0 && a.WinRate() < f.MinWinRate {
		return false
	}
	if f.MaxWinRate > 0 && a.WinRate() > f.MaxWinRate {
		return false
	}
	// +Inf KDA passes any minimum.
	if f.MinKDA > 0 && a.KDA() < f.MinKDA {
		return false
	}
	if f.MinMasteryLevel > 0 && a.MasteryLevel < f.MinMasteryLevel {
		return false
	}
	if f.NameContains != "" &&
		!strings.Contains(strings.ToLower(a.ChampionName), strings.ToLower(f.NameContains)) {
		return false
	}
	return true
}

// MinSynergyGames is the sample-size floor below which a teammate pair is
// noise rather than signal.
const MinSynergyGames = 3

// Synergy enumerates the tracked player's teammates across all views and
// accumulates per champion-pair records: games played together, wins, and the
// pair's combined K/D/A. Pair keys are the two champion names in
// lexicographic order, so (Ahri, Jinx) and (Jinx, Ahri) are one entry. Only
// pairs with at least MinSynergyGames games are returned, sorted by win rate
// descending, ties by games descending.
func Synergy(views []model.PlayerMatch) []model.SynergyPair {
	byKey := make(map[string]*model.SynergyPair)
	for _, v := range views {
		p := v.Participant
		for i := range v.Match.Info.Participants {
			mate := &v.Match.Info.Participants[i]
			if mate.TeamID != p.TeamID || mate.PUUID == p.PUUID {
				continue
			}
			a, b := p.ChampionName, mate.ChampionName
			if a > b {
				a, b = b, a
			}
			key := a + "|" + b
			pair := byKey[key]
			if pair == nil {
				pair = &model.SynergyPair{ChampionA: a, ChampionB: b}
				byKey[key] = pair
			}
			pair.Games++
			if p.Win {
				pair.Wins++
			}
			pair.Kills += p.Kills + mate.Kills
			pair.Deaths += p.Deaths + mate.Deaths
			pair.Assists += p.Assists + mate.Assists
		}
	}

	out := make([]model.SynergyPair, 0, len(byKey))
	for _, pair := range byKey {
		if pair.Games < MinSynergyGames {
			continue
		}
		out = append(out, *pair)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinRate() != out[j].WinRate() {
			return out[i].WinRate() > out[j].WinRate()
		}
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Key() < out[j].Key()
	})
	return out
}
