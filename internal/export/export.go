// Package export serializes match and champion views to JSON and CSV with a
// fixed field order, so exports diff cleanly between runs.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/stats"
)

// MatchRow is one exported match from the tracked player's perspective.
type MatchRow struct {
	MatchID    string  `json:"matchId"`
	Date       string  `json:"date"` // RFC 3339
	Champion   string  `json:"champion"`
	Role       string  `json:"role"`
	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	Assists    int     `json:"assists"`
	KDA        float64 `json:"kda"` // capped; see stats.InfKDACap
	CS         int     `json:"cs"`
	GoldPerMin float64 `json:"goldPerMin"`
	Vision     int     `json:"vision"`
	Win        bool    `json:"win"`
	Mode       string  `json:"mode"`
	DurationS  int     `json:"durationSec"`
}

// ChampionRow is one exported champion aggregate. WinRate and KDA are
// denormalized into the row so the export round-trips without recomputation.
type ChampionRow struct {
	Champion string  `json:"champion"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"winRate"`
	KDA      float64 `json:"kda"` // capped
	AvgCS    float64 `json:"avgCs"`
	AvgGold  float64 `json:"avgGold"`
}

// MatchRows flattens player-match views into export rows.
func MatchRows(ds *model.Dataset, views []model.PlayerMatch) []MatchRow {
	rows := make([]MatchRow, 0, len(views))
	for _, v := range views {
		p := v.Participant
		rows = append(rows, MatchRow{
			MatchID:    v.Match.Metadata.MatchID,
			Date:       v.Match.CreationTime().UTC().Format("2006-01-02T15:04:05Z07:00"),
			Champion:   p.ChampionName,
			Role:       string(p.Role()),
			Kills:      p.Kills,
			Deaths:     p.Deaths,
			Assists:    p.Assists,
			KDA:        round2(stats.CappedKDA(stats.KDA(p.Kills, p.Deaths, p.Assists))),
			CS:         p.TotalCS(),
			GoldPerMin: round2(stats.GoldPerMinute(p.GoldEarned, v.Match.Info.GameDuration)),
			Vision:     p.VisionScore,
			Win:        p.Win,
			Mode:       ds.QueueName(v.Match),
			DurationS:  v.Match.Info.GameDuration,
		})
	}
	return rows
}

// ChampionRows flattens aggregates into export rows.
func ChampionRows(aggs []model.ChampionAggregate) []ChampionRow {
	rows := make([]ChampionRow, 0, len(aggs))
	for i := range aggs {
		a := &aggs[i]
		rows = append(rows, ChampionRow{
			Champion: a.ChampionName,
			Games:    a.Games,
			Wins:     a.Wins,
			WinRate:  round2(a.WinRate()),
			KDA:      round2(stats.CappedKDA(a.KDA())),
			AvgCS:    round2(a.AvgCS()),
			AvgGold:  round2(a.AvgGold()),
		})
	}
	return rows
}

// WriteJSON writes rows as indented JSON with a trailing newline.
func WriteJSON(w io.Writer, rows any) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// matchCSVHeader fixes the CSV column order for match exports.
var matchCSVHeader = []string{
	"match_id", "date", "champion", "role", "kills", "deaths", "assists",
	"kda", "cs", "gold_per_min", "vision", "win", "mode", "duration_sec",
}

// WriteMatchesCSV writes the match rows in matchCSVHeader order.
func WriteMatchesCSV(w io.Writer, rows []MatchRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(matchCSVHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.MatchID,
			r.Date,
			r.Champion,
			r.Role,
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Deaths),
			strconv.Itoa(r.Assists),
			formatFloat(r.KDA),
			strconv.Itoa(r.CS),
			formatFloat(r.GoldPerMin),
			strconv.Itoa(r.Vision),
			strconv.FormatBool(r.Win),
			r.Mode,
			strconv.Itoa(r.DurationS),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write CSV row %s: %w", r.MatchID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var championCSVHeader = []string{
	"champion", "games", "wins", "win_rate", "kda", "avg_cs", "avg_gold",
}

// WriteChampionsCSV writes the champion rows in championCSVHeader order.
func WriteChampionsCSV(w io.Writer, rows []ChampionRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(championCSVHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Champion,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			formatFloat(r.WinRate),
			formatFloat(r.KDA),
			formatFloat(r.AvgCS),
			formatFloat(r.AvgGold),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write CSV row %s: %w", r.Champion, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
