package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riftlab/riftmetrics/internal/minimap"
	"github.com/riftlab/riftmetrics/internal/model"
)

func sampleDataset() *model.Dataset {
	ds := &model.Dataset{MainPlayerName: "Tracked"}
	for i := 0; i < 5; i++ {
		m := &model.MatchRecord{
			Metadata: model.MatchMetadata{MatchID: "m" + string(rune('0'+i))},
			Info: model.MatchInfo{
				GameCreation: time.Date(2025, 6, 1+i, 12, 0, 0, 0, time.UTC).UnixMilli(),
				GameDuration: 1800,
			},
		}
		m.Info.Participants = []model.ParticipantRecord{{
			PUUID:        "p1",
			ChampionName: "Ahri",
			TeamID:       model.TeamBlue,
			TeamPosition: "MIDDLE",
			Win:          i%2 == 0,
			Kills:        5, Deaths: 2, Assists: 3,
			GoldEarned: 10000,
		}}
		ds.Matches = append(ds.Matches, m)
		ds.PlayerMatches = append(ds.PlayerMatches, model.PlayerMatch{
			Match: m, Participant: &m.Info.Participants[0],
		})
	}
	return ds
}

func TestRenderDashboard(t *testing.T) {
	ds := sampleDataset()
	aggs := []model.ChampionAggregate{
		{ChampionName: "Ahri", Games: 5, Wins: 3, Kills: 25, Deaths: 10, Assists: 15},
	}
	icons := minimap.NewPlacer(1).Layout(ds.PlayerMatches)

	out := filepath.Join(t.TempDir(), "dashboard.html")
	if err := RenderDashboard(ds, aggs, icons, DefaultConfig(), out); err != nil {
		t.Fatalf("RenderDashboard: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read rendered dashboard: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Win rate trend", "Champion win rates", "Champion heat", "Role distribution", "Match positions"} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing chart %q", want)
		}
	}
}

func TestRenderChart_CreatesParentDir(t *testing.T) {
	ds := sampleDataset()
	out := filepath.Join(t.TempDir(), "nested", "trend.html")
	if err := RenderChart(WinRateTrend(ds.PlayerMatches, DefaultConfig()), out); err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("rendered file missing: %v", err)
	}
}

func TestMinimapScatter_SplitsByResult(t *testing.T) {
	icons := []minimap.PositionedIcon{
		{Point: minimap.Point{X: 10, Y: 10}, Win: true, Score: 0.8},
		{Point: minimap.Point{X: 90, Y: 90}, Win: false, Score: 0.2},
	}
	out := filepath.Join(t.TempDir(), "map.html")
	if err := RenderChart(MinimapScatter(icons, DefaultConfig()), out); err != nil {
		t.Fatalf("render scatter: %v", err)
	}
	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), "Wins") || !strings.Contains(string(data), "Losses") {
		t.Error("scatter should carry separate win/loss series")
	}
}
