package stats

import (
	"math"
	"testing"

	"github.com/riftlab/riftmetrics/internal/model"
)

func TestWinRate(t *testing.T) {
	cases := []struct {
		wins, total int
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0}, // zero total is defined as 0, not an error
		{0, 10, 0},
		{3, 4, 75.0},
		{10, 10, 100.0},
		{1, 3, 100.0 / 3},
	}
	for _, c := range cases {
		got := WinRate(c.wins, c.total)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WinRate(%d, %d): want %f, got %f", c.wins, c.total, c.want, got)
		}
	}
}

func TestKDA_ZeroDeathsIsInfinite(t *testing.T) {
	got := KDA(5, 0, 3)
	if !math.IsInf(got, 1) {
		t.Errorf("KDA(5,0,3): want +Inf, got %f", got)
	}
	// Zero everything is still Inf — deaths drives the branch.
	if !math.IsInf(KDA(0, 0, 0), 1) {
		t.Error("KDA(0,0,0): want +Inf")
	}
}

func TestKDA_Basic(t *testing.T) {
	cases := []struct {
		k, d, a int
		want    float64
	}{
		{10, 2, 5, 7.5},
		{0, 5, 0, 0},
		{3, 1, 2, 5},
		{20, 5, 11, 6.2},
	}
	for _, c := range cases {
		got := KDA(c.k, c.d, c.a)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("KDA(%d,%d,%d): want %f, got %f", c.k, c.d, c.a, c.want, got)
		}
	}
}

func TestFormatKDA(t *testing.T) {
	if got := FormatKDA(math.Inf(1)); got != "Perfect" {
		t.Errorf("FormatKDA(+Inf): want Perfect, got %q", got)
	}
	if got := FormatKDA(6.2); got != "6.20" {
		t.Errorf("FormatKDA(6.2): want 6.20, got %q", got)
	}
}

func TestCappedKDA(t *testing.T) {
	if got := CappedKDA(math.Inf(1)); got != InfKDACap {
		t.Errorf("CappedKDA(+Inf): want %f, got %f", InfKDACap, got)
	}
	if got := CappedKDA(42); got != InfKDACap {
		t.Errorf("CappedKDA(42): want %f, got %f", InfKDACap, got)
	}
	if got := CappedKDA(3.5); got != 3.5 {
		t.Errorf("CappedKDA(3.5): want 3.5, got %f", got)
	}
}

func TestGoldPerMinute(t *testing.T) {
	if got := GoldPerMinute(12000, 1800); got != 400 {
		t.Errorf("GoldPerMinute(12000, 1800): want 400, got %f", got)
	}
	if got := GoldPerMinute(500, 0); got != 0 {
		t.Errorf("GoldPerMinute(500, 0): want 0, got %f", got)
	}
}

// makeMatch builds a two-participant match on the same team for share tests.
func makeMatch(a, b model.ParticipantRecord) *model.MatchRecord {
	return &model.MatchRecord{
		Info: model.MatchInfo{
			GameDuration: 1800,
			Participants: []model.ParticipantRecord{a, b},
		},
	}
}

func TestDamageShare(t *testing.T) {
	a := model.ParticipantRecord{PUUID: "a", TeamID: model.TeamBlue, PhysicalDamageDealtToChampions: 3000}
	b := model.ParticipantRecord{PUUID: "b", TeamID: model.TeamBlue, MagicDamageDealtToChampions: 1000}
	m := makeMatch(a, b)

	got := DamageShare(&m.Info.Participants[0], m)
	if got != 75.0 {
		t.Errorf("DamageShare: want 75.0, got %f", got)
	}

	// Zero team damage is 0, not NaN.
	z1 := model.ParticipantRecord{PUUID: "a", TeamID: model.TeamBlue}
	z2 := model.ParticipantRecord{PUUID: "b", TeamID: model.TeamBlue}
	zm := makeMatch(z1, z2)
	if got := DamageShare(&zm.Info.Participants[0], zm); got != 0 {
		t.Errorf("DamageShare with zero team damage: want 0, got %f", got)
	}
}

func TestKillParticipation(t *testing.T) {
	a := model.ParticipantRecord{PUUID: "a", TeamID: model.TeamBlue, Kills: 4, Assists: 2}
	b := model.ParticipantRecord{PUUID: "b", TeamID: model.TeamBlue, Kills: 6}
	m := makeMatch(a, b)

	// (4+2) / (4+6) = 60%
	if got := KillParticipation(&m.Info.Participants[0], m); got != 60.0 {
		t.Errorf("KillParticipation: want 60.0, got %f", got)
	}
}

func TestPerformanceScore_Bounds(t *testing.T) {
	p := model.ParticipantRecord{
		PUUID: "a", TeamID: model.TeamBlue,
		Kills: 20, Deaths: 0, Assists: 15,
		GoldEarned: 15000, VisionScore: 80, Win: true,
		PhysicalDamageDealtToChampions: 50000,
	}
	m := &model.MatchRecord{Info: model.MatchInfo{
		GameDuration: 1800,
		Participants: []model.ParticipantRecord{p},
	}}
	pm := model.PlayerMatch{Match: m, Participant: &m.Info.Participants[0]}

	score := PerformanceScore(pm)
	if score < 0 || score > 1 {
		t.Errorf("PerformanceScore out of [0,1]: %f", score)
	}
	// Perfect KDA + win should land near the top.
	if score < 0.5 {
		t.Errorf("PerformanceScore for a dominant win unexpectedly low: %f", score)
	}
}

func TestHeatScore_Bounds(t *testing.T) {
	cases := []struct {
		kda, wr, cs float64
	}{
		{math.Inf(1), 100, 12},
		{0, 0, 0},
		{3.2, 55, 6.5},
	}
	for _, c := range cases {
		got := HeatScore(c.kda, c.wr, c.cs)
		if got < 0 || got > 1 {
			t.Errorf("HeatScore(%f, %f, %f) out of [0,1]: %f", c.kda, c.wr, c.cs, got)
		}
	}
	// Maxed inputs saturate.
	if got := HeatScore(math.Inf(1), 100, 20); got != 1.0 {
		t.Errorf("HeatScore maxed: want 1.0, got %f", got)
	}
}
