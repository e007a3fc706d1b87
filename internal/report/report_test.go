package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/riftlab/riftmetrics/internal/minimap"
	"github.com/riftlab/riftmetrics/internal/model"
)

func sampleDataset() *model.Dataset {
	m := &model.MatchRecord{
		Metadata: model.MatchMetadata{MatchID: "NA1_100"},
		Info: model.MatchInfo{
			GameCreation: 1735732800000,
			GameDuration: 1930,
			GameMode:     "CLASSIC",
			QueueID:      420,
		},
	}
	m.Info.Participants = []model.ParticipantRecord{{
		PUUID:              "p1",
		RiotIDGameName:     "Tracked",
		ChampionName:       "Ahri",
		TeamPosition:       "MIDDLE",
		Win:                true,
		Kills:              7, Deaths: 0, Assists: 5,
		GoldEarned:         12000,
		TotalMinionsKilled: 210,
	}}
	return &model.Dataset{
		Matches:         []*model.MatchRecord{m},
		PlayerMatches:   []model.PlayerMatch{{Match: m, Participant: &m.Info.Participants[0]}},
		MainPlayerPUUID: "p1",
		MainPlayerName:  "Tracked",
		Queues:          map[int]string{420: "5v5 Ranked Solo games"},
		Ranked: []model.RankedEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", LeaguePoints: 45, Wins: 30, Losses: 25},
		},
	}
}

// TestPrintMatchTable_PerfectKDA: zero deaths render as Perfect, not +Inf.
func TestPrintMatchTable_PerfectKDA(t *testing.T) {
	ds := sampleDataset()
	var buf bytes.Buffer
	PrintMatchTable(&buf, ds, ds.PlayerMatches)

	out := buf.String()
	if !strings.Contains(out, "Perfect") {
		t.Errorf("zero-death row should show Perfect:\n%s", out)
	}
	if strings.Contains(out, "Inf") {
		t.Errorf("raw Inf leaked into the table:\n%s", out)
	}
	if !strings.Contains(out, "Ahri") || !strings.Contains(out, "7/0/5") {
		t.Errorf("match row incomplete:\n%s", out)
	}
	if !strings.Contains(out, "5v5 Ranked Solo games") {
		t.Errorf("queue name not resolved:\n%s", out)
	}
}

func TestPrintChampionTable(t *testing.T) {
	aggs := []model.ChampionAggregate{
		{ChampionName: "Ahri", Games: 4, Wins: 3, Kills: 20, Deaths: 5, Assists: 11, MasteryLevel: 7, MasteryPoints: 250000},
		{ChampionName: "Zed", Games: 2, Wins: 2, Kills: 10, Deaths: 0, Assists: 4},
	}
	var buf bytes.Buffer
	PrintChampionTable(&buf, aggs)

	out := buf.String()
	for _, want := range []string{"Ahri", "75.0%", "6.20", "Perfect", "L7 (250k)", "—"} {
		if !strings.Contains(out, want) {
			t.Errorf("champion table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSynergyTable(t *testing.T) {
	pairs := []model.SynergyPair{
		{ChampionA: "Ahri", ChampionB: "Jinx", Games: 4, Wins: 3, Kills: 30, Deaths: 10, Assists: 20},
	}
	var buf bytes.Buffer
	PrintSynergyTable(&buf, pairs)

	out := buf.String()
	if !strings.Contains(out, "Ahri + Jinx") || !strings.Contains(out, "75.0%") {
		t.Errorf("synergy table incomplete:\n%s", out)
	}

	buf.Reset()
	PrintSynergyTable(&buf, nil)
	if !strings.Contains(buf.String(), "No teammate pairs") {
		t.Errorf("empty pair set should print a notice, got:\n%s", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	ds := sampleDataset()
	aggs := []model.ChampionAggregate{
		{ChampionName: "Ahri", Games: 1, Wins: 1, Kills: 7, Deaths: 0, Assists: 5},
	}
	var buf bytes.Buffer
	PrintSummary(&buf, ds, aggs)

	out := buf.String()
	for _, want := range []string{"Tracked", "1 W / 0 L", "Solo/Duo", "GOLD II 45 LP", "Recent form: W", "Most played"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMinimap(t *testing.T) {
	icons := []minimap.PositionedIcon{
		{Point: minimap.Point{X: 50, Y: 50}, MatchID: "m1", Win: true},
		{Point: minimap.Point{X: 2, Y: 98}, MatchID: "m2", Win: false},
	}
	var buf bytes.Buffer
	PrintMinimap(&buf, icons)

	out := buf.String()
	if !strings.Contains(out, "o") || !strings.Contains(out, "x") {
		t.Errorf("grid should contain win and loss markers:\n%s", out)
	}
	if !strings.Contains(out, "2 placed") {
		t.Errorf("footer missing:\n%s", out)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(1930); got != "32m10s" {
		t.Errorf("formatDuration(1930): want 32m10s, got %s", got)
	}
	if got := formatDuration(7260); got != "2h01m" {
		t.Errorf("formatDuration(7260): want 2h01m, got %s", got)
	}
}

func TestFormatPoints(t *testing.T) {
	if got := formatPoints(250000); got != "250k" {
		t.Errorf("formatPoints(250000): want 250k, got %s", got)
	}
	if got := formatPoints(800); got != "800" {
		t.Errorf("formatPoints(800): want 800, got %s", got)
	}
}
