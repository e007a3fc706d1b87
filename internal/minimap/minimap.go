// Package minimap places match icons on a schematic 100x100 mini-map. Lane
// roles spread along fixed lane paths per team side, jungle and unknown roles
// scatter inside elliptical jungle zones. All coordinates are percentages
// clamped to [2,98] so icons never clip the map edge.
package minimap

import (
	"math"
	"math/rand"

	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/stats"
)

// Point is a position in percent space, origin top-left.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// lanePath is a straight lane segment: origin plus a direction vector whose
// length is the full lane span.
type lanePath struct {
	originX, originY float64
	dirX, dirY       float64
}

// ellipseZone is a jungle scatter region.
type ellipseZone struct {
	centerX, centerY float64
	rx, ry           float64
}

// Blue side runs bottom-left to top-right, red side mirrors it. UTILITY
// shares the bot lane with BOTTOM but hugs the support line slightly closer
// to the river.
var lanes = map[int]map[model.Role]lanePath{
	model.TeamBlue: {
		model.RoleTop:     {originX: 10, originY: 75, dirX: 0, dirY: -55},
		model.RoleMiddle:  {originX: 30, originY: 70, dirX: 35, dirY: -35},
		model.RoleBottom:  {originX: 25, originY: 90, dirX: 55, dirY: 0},
		model.RoleUtility: {originX: 28, originY: 85, dirX: 50, dirY: 0},
	},
	model.TeamRed: {
		model.RoleTop:     {originX: 20, originY: 25, dirX: 55, dirY: 0},
		model.RoleMiddle:  {originX: 70, originY: 30, dirX: -35, dirY: 35},
		model.RoleBottom:  {originX: 90, originY: 70, dirX: 0, dirY: -55},
		model.RoleUtility: {originX: 85, originY: 65, dirX: 0, dirY: -50},
	},
}

var jungles = map[int]ellipseZone{
	model.TeamBlue: {centerX: 35, centerY: 60, rx: 18, ry: 14},
	model.TeamRed:  {centerX: 65, centerY: 40, rx: 18, ry: 14},
}

const (
	clampMin = 2.0
	clampMax = 98.0

	laneSpread = 0.8 // fraction of the lane span icons spread across
	laneJitter = 6.0 // perpendicular jitter band width in percent
)

// Placer computes icon positions. The random source is injected so layouts
// are reproducible under a fixed seed.
type Placer struct {
	rng *rand.Rand
}

// NewPlacer returns a Placer seeded with the given value.
func NewPlacer(seed int64) *Placer {
	return &Placer{rng: rand.New(rand.NewSource(seed))}
}

// Place positions the icon at index (of count total icons sharing the same
// team and role). Lane roles interpolate along the lane path; JUNGLE and
// UNKNOWN scatter uniformly in the jungle zone's bounding box.
func (pl *Placer) Place(team int, role model.Role, index, count int) Point {
	paths, ok := lanes[team]
	if !ok {
		paths = lanes[model.TeamBlue]
	}
	if lane, ok := paths[role]; ok {
		return pl.placeLane(lane, index, count, laneSpread)
	}
	zone, ok := jungles[team]
	if !ok {
		zone = jungles[model.TeamBlue]
	}
	return pl.placeEllipse(zone)
}

func (pl *Placer) placeLane(lane lanePath, index, count int, spread float64) Point {
	t := 0.5
	if count > 1 {
		t = float64(index) / float64(count-1)
	}
	x := lane.originX + lane.dirX*t*spread
	y := lane.originY + lane.dirY*t*spread

	// Perpendicular jitter so stacked icons fan out across the lane width.
	length := math.Hypot(lane.dirX, lane.dirY)
	if length > 0 {
		perpX, perpY := -lane.dirY/length, lane.dirX/length
		j := (pl.rng.Float64() - 0.5) * laneJitter
		x += perpX * j
		y += perpY * j
	}
	return Point{X: clamp(x), Y: clamp(y)}
}

func (pl *Placer) placeEllipse(zone ellipseZone) Point {
	x := zone.centerX + (pl.rng.Float64()*2-1)*zone.rx
	y := zone.centerY + (pl.rng.Float64()*2-1)*zone.ry
	return Point{X: clamp(x), Y: clamp(y)}
}

// PlaceEnhanced refines Place with per-view context: the spread tightens as
// the icon count grows so dense collections stay inside the lane, the point
// drifts along the lane with the performance delta from an average game, and
// the match's time of day adds a small deterministic offset.
func (pl *Placer) PlaceEnhanced(view model.PlayerMatch, index, count int) Point {
	p := view.Participant
	team := p.TeamID
	role := p.Role()

	paths, ok := lanes[team]
	if !ok {
		paths = lanes[model.TeamBlue]
	}
	lane, isLane := paths[role]
	if !isLane {
		zone, ok := jungles[team]
		if !ok {
			zone = jungles[model.TeamBlue]
		}
		pt := pl.placeEllipse(zone)
		return pl.applyContext(pt, view)
	}

	// Denser collections spread across less of the lane.
	spread := laneSpread
	if count > 10 {
		spread = laneSpread * 10 / float64(count)
		if spread < 0.3 {
			spread = 0.3
		}
	}
	pt := pl.placeLane(lane, index, count, spread)
	return pl.applyContext(pt, view)
}

// applyContext adds the KDA bias and time-of-day offset shared by all
// enhanced placements.
func (pl *Placer) applyContext(pt Point, view model.PlayerMatch) Point {
	p := view.Participant

	// Performance bias: above-average games drift toward the enemy side of
	// the lane, poor games toward their own base. 2.0 is the neutral KDA.
	kda := stats.CappedKDA(stats.KDA(p.Kills, p.Deaths, p.Assists))
	bias := (kda - 2.0) / stats.InfKDACap * 4.0

	// Time of day nudges the point so same-role games from different
	// sessions do not stack exactly.
	hour := view.Match.CreationTime().Hour()
	offset := (float64(hour)/23.0 - 0.5) * 2.0

	return Point{X: clamp(pt.X + bias + offset), Y: clamp(pt.Y - bias)}
}

// PositionedIcon is one placed match icon, ready for rendering.
type PositionedIcon struct {
	Point
	MatchID string     `json:"matchId"`
	Role    model.Role `json:"role"`
	TeamID  int        `json:"teamId"`
	Win     bool       `json:"win"`
	Score   float64    `json:"score"` // drives icon size/intensity
}

// Layout places every view and returns the full icon set, recomputed from
// scratch on each call. Indexing is per (team, role) group so lane spreading
// only counts icons that share a path.
func (pl *Placer) Layout(views []model.PlayerMatch) []PositionedIcon {
	type group struct {
		team int
		role model.Role
	}
	counts := make(map[group]int)
	for _, v := range views {
		counts[group{v.Participant.TeamID, v.Participant.Role()}]++
	}

	seen := make(map[group]int)
	out := make([]PositionedIcon, 0, len(views))
	for _, v := range views {
		g := group{v.Participant.TeamID, v.Participant.Role()}
		idx := seen[g]
		seen[g]++

		out = append(out, PositionedIcon{
			Point:   pl.PlaceEnhanced(v, idx, counts[g]),
			MatchID: v.Match.Metadata.MatchID,
			Role:    v.Participant.Role(),
			TeamID:  v.Participant.TeamID,
			Win:     v.Participant.Win,
			Score:   stats.PerformanceScore(v),
		})
	}
	return out
}

func clamp(v float64) float64 {
	if v < clampMin {
		return clampMin
	}
	if v > clampMax {
		return clampMax
	}
	return v
}
