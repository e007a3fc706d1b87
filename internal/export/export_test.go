package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/stats"
)

func sampleAggs() []model.ChampionAggregate {
	return []model.ChampionAggregate{
		{ChampionName: "Ahri", Games: 4, Wins: 3, Kills: 20, Deaths: 5, Assists: 11, Gold: 48000, CS: 800},
		{ChampionName: "Zed", Games: 2, Wins: 2, Kills: 10, Deaths: 0, Assists: 4, Gold: 26000, CS: 420},
	}
}

// TestChampionJSONRoundTrip: the exported champion JSON decodes back to the
// same games/wins/winRate/kda values.
func TestChampionJSONRoundTrip(t *testing.T) {
	rows := ChampionRows(sampleAggs())

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rows); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var back []ChampionRow
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("decode exported JSON: %v", err)
	}
	if len(back) != len(rows) {
		t.Fatalf("want %d rows back, got %d", len(rows), len(back))
	}
	for i := range rows {
		if back[i] != rows[i] {
			t.Errorf("row %d changed in transit:\n  out: %+v\n  in:  %+v", i, rows[i], back[i])
		}
	}

	if back[0].Games != 4 || back[0].Wins != 3 || back[0].WinRate != 75.0 || back[0].KDA != 6.2 {
		t.Errorf("Ahri row: want 4/3/75.00/6.20, got %+v", back[0])
	}
}

// TestChampionRows_PerfectKDACapped: +Inf cannot appear in an export, the
// capped value does.
func TestChampionRows_PerfectKDACapped(t *testing.T) {
	rows := ChampionRows(sampleAggs())
	if rows[1].KDA != stats.InfKDACap {
		t.Errorf("perfect KDA should export as the cap %v, got %v", stats.InfKDACap, rows[1].KDA)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rows); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), "Inf") {
		t.Errorf("Inf leaked into JSON:\n%s", buf.String())
	}
}

func TestWriteChampionsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChampionsCSV(&buf, ChampionRows(sampleAggs())); err != nil {
		t.Fatalf("WriteChampionsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse exported CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "champion" || records[0][3] != "win_rate" {
		t.Errorf("unexpected header order: %v", records[0])
	}
	if records[1][0] != "Ahri" || records[1][1] != "4" || records[1][3] != "75.00" || records[1][4] != "6.20" {
		t.Errorf("Ahri CSV row wrong: %v", records[1])
	}
}

func sampleViews() (*model.Dataset, []model.PlayerMatch) {
	m := &model.MatchRecord{
		Metadata: model.MatchMetadata{MatchID: "NA1_100"},
		Info: model.MatchInfo{
			GameCreation: 1735732800000, // 2025-01-01 12:00 UTC
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			QueueID:      420,
		},
	}
	m.Info.Participants = []model.ParticipantRecord{{
		PUUID:              "p1",
		ChampionName:       "Ahri",
		TeamPosition:       "MIDDLE",
		Win:                true,
		Kills:              10, Deaths: 2, Assists: 5,
		GoldEarned:         12000,
		TotalMinionsKilled: 210,
		VisionScore:        25,
	}}
	ds := &model.Dataset{Queues: map[int]string{420: "5v5 Ranked Solo games"}}
	return ds, []model.PlayerMatch{{Match: m, Participant: &m.Info.Participants[0]}}
}

func TestMatchRows(t *testing.T) {
	ds, views := sampleViews()
	rows := MatchRows(ds, views)
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.MatchID != "NA1_100" || r.Champion != "Ahri" || r.Role != "MIDDLE" {
		t.Errorf("identity fields wrong: %+v", r)
	}
	if r.KDA != 7.5 {
		t.Errorf("KDA: want 7.5, got %v", r.KDA)
	}
	if r.GoldPerMin != 400 {
		t.Errorf("GoldPerMin: want 400, got %v", r.GoldPerMin)
	}
	if r.Mode != "5v5 Ranked Solo games" {
		t.Errorf("Mode: want resolved queue name, got %q", r.Mode)
	}
}

func TestWriteMatchesCSV(t *testing.T) {
	ds, views := sampleViews()
	var buf bytes.Buffer
	if err := WriteMatchesCSV(&buf, MatchRows(ds, views)); err != nil {
		t.Fatalf("WriteMatchesCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse exported CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want header + 1 row, got %d records", len(records))
	}
	if len(records[0]) != len(matchCSVHeader) {
		t.Errorf("header width: want %d, got %d", len(matchCSVHeader), len(records[0]))
	}
	if records[1][2] != "Ahri" || records[1][11] != "true" {
		t.Errorf("match CSV row wrong: %v", records[1])
	}
}
