// Package stats provides the pure statistic calculators used across the
// tool. All functions are stateless; division-by-zero cases return defined
// sentinel values (0 or +Inf) rather than errors, and every consumer is
// expected to handle both.
package stats

import (
	"fmt"
	"math"

	"github.com/riftlab/riftmetrics/internal/model"
)

// InfKDACap is the finite sentinel substituted for an infinite KDA when the
// value feeds into composite score arithmetic.
const InfKDACap = 10.0

// WinRate returns wins/total as a percentage, 0 when total is 0.
func WinRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// KDA returns (kills+assists)/deaths, +Inf when deaths is 0.
func KDA(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return math.Inf(1)
	}
	return float64(kills+assists) / float64(deaths)
}

// FormatKDA renders a KDA value for display: "Perfect" for +Inf.
func FormatKDA(v float64) string {
	if math.IsInf(v, 1) {
		return "Perfect"
	}
	return fmt.Sprintf("%.2f", v)
}

// CappedKDA clamps an infinite KDA to InfKDACap for use in composite math.
func CappedKDA(v float64) float64 {
	if math.IsInf(v, 1) || v > InfKDACap {
		return InfKDACap
	}
	return v
}

// GoldPerMinute returns gold normalized to a per-minute rate, 0 for a
// zero-length game.
func GoldPerMinute(gold, durationSeconds int) float64 {
	if durationSeconds == 0 {
		return 0
	}
	return float64(gold) / (float64(durationSeconds) / 60)
}

// DamageShare returns the participant's fraction of its team's champion
// damage as a percentage, 0 when the team dealt none.
func DamageShare(p *model.ParticipantRecord, m *model.MatchRecord) float64 {
	var teamTotal int
	for i := range m.Info.Participants {
		if m.Info.Participants[i].TeamID == p.TeamID {
			teamTotal += m.Info.Participants[i].TotalDamage()
		}
	}
	if teamTotal == 0 {
		return 0
	}
	return float64(p.TotalDamage()) / float64(teamTotal) * 100
}

// KillParticipation returns (kills+assists)/teamKills as a percentage,
// 0 when the team scored no kills.
func KillParticipation(p *model.ParticipantRecord, m *model.MatchRecord) float64 {
	var teamKills int
	for i := range m.Info.Participants {
		if m.Info.Participants[i].TeamID == p.TeamID {
			teamKills += m.Info.Participants[i].Kills
		}
	}
	if teamKills == 0 {
		return 0
	}
	return float64(p.Kills+p.Assists) / float64(teamKills) * 100
}

// PerformanceScore is the composite score used for mini-map icon scaling:
// a weighted sum of normalized KDA, damage per gold, vision per minute, and
// a binary win bonus. Result is clamped to [0,1]. HeatScore uses a different
// weight set.
func PerformanceScore(pm model.PlayerMatch) float64 {
	p := pm.Participant
	dur := pm.Match.Info.GameDuration

	normKDA := CappedKDA(KDA(p.Kills, p.Deaths, p.Assists)) / InfKDACap

	dmgPerGold := 0.0
	if p.GoldEarned > 0 {
		dmgPerGold = math.Min(float64(p.TotalDamage())/float64(p.GoldEarned)/2.0, 1.0)
	}

	visionPerMin := 0.0
	if dur > 0 {
		visionPerMin = math.Min(float64(p.VisionScore)/(float64(dur)/60)/3.0, 1.0)
	}

	winBonus := 0.0
	if p.Win {
		winBonus = 1.0
	}

	score := 0.3*normKDA + 0.25*dmgPerGold + 0.2*visionPerMin + 0.25*winBonus
	return clamp01(score)
}

// HeatScore is the composite score variant used by the champion heatmap:
// weighted normalized KDA, win rate, and CS per minute. Result in [0,1].
func HeatScore(kda, winRate, csPerMin float64) float64 {
	normKDA := CappedKDA(kda) / InfKDACap
	normCS := math.Min(csPerMin/10.0, 1.0)
	score := 0.4*normKDA + 0.3*(winRate/100) + 0.3*normCS
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
