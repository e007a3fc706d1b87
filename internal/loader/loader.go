// Package loader reads the static JSON data directory and produces the
// normalized in-memory Dataset every other component consumes. Loading is
// fail-fast: a missing or unparsable required file aborts the whole load,
// there is no partial-success mode.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/riftlab/riftmetrics/internal/model"
)

// File names expected inside the data directory. Match records live under
// matchesDir, one JSON file per game.
const (
	matchesDir   = "matches"
	championFile = "champion.json"
	itemFile     = "item.json"
	queueFile    = "queues.json"
	rankedFile   = "ranked.json"
	masteryFile  = "mastery.json"
)

// Load reads every data file under dir and returns the assembled Dataset.
func Load(dir string) (*model.Dataset, error) {
	matches, err := loadMatches(filepath.Join(dir, matchesDir))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no match files found in %s", filepath.Join(dir, matchesDir))
	}

	champions, err := loadChampions(filepath.Join(dir, championFile))
	if err != nil {
		return nil, err
	}
	items, err := loadItems(filepath.Join(dir, itemFile))
	if err != nil {
		return nil, err
	}
	queues, err := loadQueues(filepath.Join(dir, queueFile))
	if err != nil {
		return nil, err
	}
	ranked, err := loadRanked(filepath.Join(dir, rankedFile))
	if err != nil {
		return nil, err
	}
	mastery, err := loadMastery(filepath.Join(dir, masteryFile))
	if err != nil {
		return nil, err
	}

	return Assemble(matches, champions, items, queues, ranked, mastery)
}

// Assemble builds the Dataset from already-decoded records: identifies the
// main player by majority vote, pairs each match with that player's stat
// block, and sorts everything newest-first.
func Assemble(
	matches []*model.MatchRecord,
	champions map[int]model.ChampionInfo,
	items map[int]string,
	queues map[int]string,
	ranked []model.RankedEntry,
	mastery map[int]model.MasteryEntry,
) (*model.Dataset, error) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Info.GameCreation > matches[j].Info.GameCreation
	})

	puuid := mainPlayerPUUID(matches)
	if puuid == "" {
		return nil, fmt.Errorf("could not identify a tracked player: no participant ids present")
	}
	return AssembleFor(puuid, matches, champions, items, queues, ranked, mastery)
}

// AssembleFor builds the Dataset for an explicitly pinned puuid, bypassing
// the majority vote.
func AssembleFor(
	puuid string,
	matches []*model.MatchRecord,
	champions map[int]model.ChampionInfo,
	items map[int]string,
	queues map[int]string,
	ranked []model.RankedEntry,
	mastery map[int]model.MasteryEntry,
) (*model.Dataset, error) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Info.GameCreation > matches[j].Info.GameCreation
	})

	ds := &model.Dataset{
		Matches:         matches,
		MainPlayerPUUID: puuid,
		Champions:       champions,
		Items:           items,
		Queues:          queues,
		Mastery:         mastery,
		Ranked:          ranked,
	}

	// Pair matches with the tracked player's participant block. Matches
	// whose info block has no participant for the chosen puuid are partial
	// data and are silently excluded from the player view.
	for _, m := range matches {
		p := m.ParticipantByPUUID(puuid)
		if p == nil {
			continue
		}
		ds.PlayerMatches = append(ds.PlayerMatches, model.PlayerMatch{Match: m, Participant: p})
		if ds.MainPlayerName == "" && p.RiotIDGameName != "" {
			ds.MainPlayerName = p.RiotIDGameName
		}
	}
	if ds.MainPlayerName == "" {
		ds.MainPlayerName = puuid
	}
	return ds, nil
}

// mainPlayerPUUID counts each puuid's occurrences across all matches'
// metadata participant lists and returns the one with the maximum count.
// Ties break toward first appearance in (newest-first) match order.
func mainPlayerPUUID(matches []*model.MatchRecord) string {
	counts := make(map[string]int)
	var order []string
	for _, m := range matches {
		for _, id := range m.Metadata.Participants {
			if id == "" {
				continue
			}
			if counts[id] == 0 {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	best, bestCount := "", 0
	for _, id := range order {
		if counts[id] > bestCount {
			best, bestCount = id, counts[id]
		}
	}
	return best
}

func loadMatches(dir string) ([]*model.MatchRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read matches dir: %w", err)
	}

	var matches []*model.MatchRecord
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read match file %s: %w", e.Name(), err)
		}
		var m model.MatchRecord
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse match file %s: %w", e.Name(), err)
		}
		matches = append(matches, &m)
	}
	return matches, nil
}

// championJSON is the Data Dragon champion dictionary wrapper.
type championJSON struct {
	Data map[string]struct {
		Key   string   `json:"key"`
		ID    string   `json:"id"`
		Name  string   `json:"name"`
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	} `json:"data"`
}

func loadChampions(path string) (map[int]model.ChampionInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read champion dictionary: %w", err)
	}
	var raw championJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse champion dictionary: %w", err)
	}

	out := make(map[int]model.ChampionInfo, len(raw.Data))
	for _, c := range raw.Data {
		id, err := strconv.Atoi(c.Key)
		if err != nil {
			return nil, fmt.Errorf("champion dictionary: bad key %q for %s", c.Key, c.ID)
		}
		out[id] = model.ChampionInfo{Key: c.Key, ID: c.ID, Name: c.Name, Title: c.Title, Tags: c.Tags}
	}
	return out, nil
}

// itemJSON is the Data Dragon item dictionary wrapper.
type itemJSON struct {
	Data map[string]struct {
		Name string `json:"name"`
	} `json:"data"`
}

func loadItems(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item dictionary: %w", err)
	}
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse item dictionary: %w", err)
	}

	out := make(map[int]string, len(raw.Data))
	for key, item := range raw.Data {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("item dictionary: bad key %q", key)
		}
		out[id] = item.Name
	}
	return out, nil
}

type queueEntry struct {
	QueueID     int    `json:"queueId"`
	Description string `json:"description"`
}

func loadQueues(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read queue dictionary: %w", err)
	}
	var raw []queueEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse queue dictionary: %w", err)
	}

	out := make(map[int]string, len(raw))
	for _, q := range raw {
		out[q.QueueID] = q.Description
	}
	return out, nil
}

func loadRanked(path string) ([]model.RankedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ranked summary: %w", err)
	}
	var out []model.RankedEntry
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse ranked summary: %w", err)
	}
	return out, nil
}

func loadMastery(path string) (map[int]model.MasteryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mastery snapshot: %w", err)
	}
	var raw []model.MasteryEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse mastery snapshot: %w", err)
	}

	out := make(map[int]model.MasteryEntry, len(raw))
	for _, e := range raw {
		out[e.ChampionID] = e
	}
	return out, nil
}
