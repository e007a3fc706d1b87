// Package report renders the terminal tables: match list, champion table,
// synergy pairs, and the summary panel.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riftlab/riftmetrics/internal/minimap"
	"github.com/riftlab/riftmetrics/internal/model"
	"github.com/riftlab/riftmetrics/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintHeader prints the one-line dataset header above any table.
func PrintHeader(w io.Writer, ds *model.Dataset) {
	fmt.Fprintf(w, "\nPlayer: %s  |  Matches: %d  |  Champions: %d\n\n",
		ds.MainPlayerName, len(ds.PlayerMatches), len(championSet(ds.PlayerMatches)))
}

func championSet(views []model.PlayerMatch) map[int]struct{} {
	set := make(map[int]struct{})
	for _, v := range views {
		set[v.Participant.ChampionID] = struct{}{}
	}
	return set
}

// PrintMatchTable writes the match list, newest first.
func PrintMatchTable(w io.Writer, ds *model.Dataset, views []model.PlayerMatch) {
	table := newTable(w)
	table.Header("DATE", "CHAMPION", "ROLE", "K/D/A", "KDA", "CS", "GOLD/MIN", "RESULT", "MODE", "LENGTH")

	for _, v := range views {
		p := v.Participant
		result := "Loss"
		if p.Win {
			result = "Win"
		}
		table.Append(
			v.Match.CreationTime().Format("2006-01-02 15:04"),
			p.ChampionName,
			string(p.Role()),
			fmt.Sprintf("%d/%d/%d", p.Kills, p.Deaths, p.Assists),
			stats.FormatKDA(stats.KDA(p.Kills, p.Deaths, p.Assists)),
			strconv.Itoa(p.TotalCS()),
			fmt.Sprintf("%.0f", stats.GoldPerMinute(p.GoldEarned, v.Match.Info.GameDuration)),
			result,
			ds.QueueName(v.Match),
			formatDuration(v.Match.Info.GameDuration),
		)
	}
	table.Render()
}

// PrintChampionTable writes the per-champion aggregate table. Aggregates are
// printed in the order given; sorting happens upstream.
func PrintChampionTable(w io.Writer, aggs []model.ChampionAggregate) {
	table := newTable(w)
	table.Header("CHAMPION", "GAMES", "WINS", "WIN%", "KDA", "AVG_CS", "AVG_VISION", "AVG_GOLD", "MASTERY")

	for i := range aggs {
		a := &aggs[i]
		mastery := "—"
		if a.MasteryLevel > 0 {
			mastery = fmt.Sprintf("L%d (%s)", a.MasteryLevel, formatPoints(a.MasteryPoints))
		}
		table.Append(
			a.ChampionName,
			strconv.Itoa(a.Games),
			strconv.Itoa(a.Wins),
			fmt.Sprintf("%.1f%%", a.WinRate()),
			stats.FormatKDA(a.KDA()),
			fmt.Sprintf("%.1f", a.AvgCS()),
			fmt.Sprintf("%.1f", a.AvgVision()),
			fmt.Sprintf("%.0f", a.AvgGold()),
			mastery,
		)
	}
	table.Render()
}

// PrintSynergyTable writes the teammate pair table.
func PrintSynergyTable(w io.Writer, pairs []model.SynergyPair) {
	if len(pairs) == 0 {
		fmt.Fprintln(w, "No teammate pairs with enough shared games.")
		return
	}
	table := newTable(w)
	table.Header("PAIR", "GAMES", "WINS", "WIN%", "AVG_KDA")

	for i := range pairs {
		p := &pairs[i]
		table.Append(
			p.ChampionA+" + "+p.ChampionB,
			strconv.Itoa(p.Games),
			strconv.Itoa(p.Wins),
			fmt.Sprintf("%.1f%%", p.WinRate()),
			stats.FormatKDA(p.KDA()),
		)
	}
	table.Render()
}

// PrintSummary writes the overall summary panel: totals, derived rates, the
// ranked snapshot, and the most-played champions.
func PrintSummary(w io.Writer, ds *model.Dataset, aggs []model.ChampionAggregate) {
	views := ds.PlayerMatches

	var wins, kills, deaths, assists, gold, seconds int
	for _, v := range views {
		p := v.Participant
		if p.Win {
			wins++
		}
		kills += p.Kills
		deaths += p.Deaths
		assists += p.Assists
		gold += p.GoldEarned
		seconds += v.Match.Info.GameDuration
	}

	fmt.Fprintf(w, "\nPlayer: %s\n", ds.MainPlayerName)
	fmt.Fprintf(w, "Matches: %d  (%d W / %d L, %.1f%%)\n",
		len(views), wins, len(views)-wins, stats.WinRate(wins, len(views)))
	fmt.Fprintf(w, "KDA: %s  (%d/%d/%d)\n",
		stats.FormatKDA(stats.KDA(kills, deaths, assists)), kills, deaths, assists)
	if seconds > 0 {
		fmt.Fprintf(w, "Gold/min: %.0f  |  Time played: %s\n",
			stats.GoldPerMinute(gold, seconds), formatDuration(seconds))
	}
	if form := recentForm(views, 10); form != "" {
		fmt.Fprintf(w, "Recent form: %s  (newest first)\n", form)
	}

	for _, r := range ds.Ranked {
		fmt.Fprintf(w, "%s: %s %s %d LP  (%d W / %d L, %.1f%%)\n",
			queueLabel(r.QueueType), r.Tier, r.Rank, r.LeaguePoints, r.Wins, r.Losses, r.WinRate())
	}

	if len(aggs) > 0 {
		fmt.Fprintln(w, "\nMost played:")
		top := aggs
		if len(top) > 5 {
			top = top[:5]
		}
		table := newTable(w)
		table.Header("CHAMPION", "GAMES", "WIN%", "KDA")
		for i := range top {
			a := &top[i]
			table.Append(
				a.ChampionName,
				strconv.Itoa(a.Games),
				fmt.Sprintf("%.1f%%", a.WinRate()),
				stats.FormatKDA(a.KDA()),
			)
		}
		table.Render()
	}
}

// PrintMinimap renders the placed icons as an ASCII grid, wins as o and
// losses as x. Width fixes the aspect ratio at roughly 2:1 terminal cells.
func PrintMinimap(w io.Writer, icons []minimap.PositionedIcon) {
	const gridW, gridH = 60, 30
	grid := make([][]byte, gridH)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", gridW))
	}
	for _, ic := range icons {
		gx := int(math.Round(ic.X / 100 * float64(gridW-1)))
		gy := int(math.Round(ic.Y / 100 * float64(gridH-1)))
		ch := byte('x')
		if ic.Win {
			ch = 'o'
		}
		grid[gy][gx] = ch
	}
	for _, row := range grid {
		fmt.Fprintf(w, "  %s\n", row)
	}
	fmt.Fprintf(w, "\n  %d placed  (o = win, x = loss)\n", len(icons))
}

// recentForm renders the last n games as a W/L string, newest first.
func recentForm(views []model.PlayerMatch, n int) string {
	if len(views) < n {
		n = len(views)
	}
	var b strings.Builder
	for _, v := range views[:n] {
		if v.Participant.Win {
			b.WriteByte('W')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}

func formatDuration(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%dh%02dm", seconds/3600, seconds%3600/60)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}

func formatPoints(points int) string {
	if points >= 1000 {
		return fmt.Sprintf("%.0fk", float64(points)/1000)
	}
	return strconv.Itoa(points)
}

func queueLabel(queueType string) string {
	switch queueType {
	case "RANKED_SOLO_5x5":
		return "Solo/Duo"
	case "RANKED_FLEX_SR":
		return "Flex"
	default:
		return queueType
	}
}
