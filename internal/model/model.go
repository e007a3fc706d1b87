package model

import (
	"math"
	"time"
)

// Role is the position a participant played in a match.
type Role string

const (
	RoleTop     Role = "TOP"
	RoleJungle  Role = "JUNGLE"
	RoleMiddle  Role = "MIDDLE"
	RoleBottom  Role = "BOTTOM"
	RoleUtility Role = "UTILITY"
	RoleUnknown Role = "UNKNOWN"
)

// Roles lists every known role in lane order, UNKNOWN last.
var Roles = []Role{RoleTop, RoleJungle, RoleMiddle, RoleBottom, RoleUtility, RoleUnknown}

// ParseRole maps a raw teamPosition string to a Role. Anything unrecognized
// (including the empty string on remakes and some queue types) is UNKNOWN.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleTop, RoleJungle, RoleMiddle, RoleBottom, RoleUtility:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Team side ids as used by the match-v5 schema.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// ---- Raw match records as stored on disk (Riot match-v5 schema) ----

// MatchRecord is one played game, read from a match JSON file.
// Immutable once loaded.
type MatchRecord struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64               `json:"gameCreation"` // ms since epoch
	GameDuration int                 `json:"gameDuration"` // seconds
	GameMode     string              `json:"gameMode"`
	GameVersion  string              `json:"gameVersion"`
	QueueID      int                 `json:"queueId"`
	Participants []ParticipantRecord `json:"participants"`
	Teams        []TeamRecord        `json:"teams"`
}

// CreationTime converts the raw ms-epoch creation stamp to a time.Time.
func (m *MatchRecord) CreationTime() time.Time {
	return time.UnixMilli(m.Info.GameCreation)
}

// ParticipantByPUUID returns the stat block for the given puuid, or nil.
func (m *MatchRecord) ParticipantByPUUID(puuid string) *ParticipantRecord {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}

// ParticipantRecord is one player's performance in a match.
// Owned by its parent MatchRecord; never mutated after load.
type ParticipantRecord struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"` // raw; use Role() for the normalized value

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldEarned           int `json:"goldEarned"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`
	VisionScore          int `json:"visionScore"`

	PhysicalDamageDealtToChampions int `json:"physicalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int `json:"magicDamageDealtToChampions"`
	TrueDamageDealtToChampions     int `json:"trueDamageDealtToChampions"`

	Win bool `json:"win"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // trinket
}

// Role returns the normalized position for this participant.
func (p *ParticipantRecord) Role() Role {
	return ParseRole(p.TeamPosition)
}

// TotalCS is lane plus jungle minions.
func (p *ParticipantRecord) TotalCS() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// TotalDamage is the summed champion damage across all three types.
func (p *ParticipantRecord) TotalDamage() int {
	return p.PhysicalDamageDealtToChampions + p.MagicDamageDealtToChampions + p.TrueDamageDealtToChampions
}

// Items returns the seven item slots in order.
func (p *ParticipantRecord) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// TeamRecord is one side's summary within a match.
type TeamRecord struct {
	TeamID     int            `json:"teamId"`
	Win        bool           `json:"win"`
	Objectives TeamObjectives `json:"objectives"`
}

type TeamObjectives struct {
	Baron    ObjectiveCount `json:"baron"`
	Dragon   ObjectiveCount `json:"dragon"`
	Tower    ObjectiveCount `json:"tower"`
	Champion ObjectiveCount `json:"champion"`
}

type ObjectiveCount struct {
	Kills int `json:"kills"`
}

// ---- Reference dictionaries ----

// ChampionInfo is one entry from the champion dictionary.
type ChampionInfo struct {
	Key   string   `json:"key"` // numeric id as string
	ID    string   `json:"id"`  // e.g. "Aatrox"
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// MasteryEntry is one row of the champion-mastery snapshot.
type MasteryEntry struct {
	ChampionID     int `json:"championId"`
	ChampionLevel  int `json:"championLevel"`
	ChampionPoints int `json:"championPoints"`
}

// RankedEntry is one ranked-queue summary row.
type RankedEntry struct {
	QueueType    string `json:"queueType"` // RANKED_SOLO_5x5, RANKED_FLEX_SR
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// WinRate returns the ranked win percentage, 0 when no games are recorded.
func (r *RankedEntry) WinRate() float64 {
	total := r.Wins + r.Losses
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total) * 100
}

// ---- Derived views ----

// PlayerMatch pairs a match with the tracked player's participant block.
// Invariant: Participant.PUUID equals the dataset's MainPlayerPUUID.
type PlayerMatch struct {
	Match       *MatchRecord
	Participant *ParticipantRecord
}

// Dataset is the normalized in-memory view produced by the loader.
// Matches and PlayerMatches are sorted newest-first.
type Dataset struct {
	Matches         []*MatchRecord
	PlayerMatches   []PlayerMatch
	MainPlayerPUUID string
	MainPlayerName  string

	Champions map[int]ChampionInfo // by numeric champion id
	Items     map[int]string
	Queues    map[int]string
	Mastery   map[int]MasteryEntry // by champion id
	Ranked    []RankedEntry
}

// QueueName resolves a queue id to its description, falling back to the mode.
func (d *Dataset) QueueName(m *MatchRecord) string {
	if name, ok := d.Queues[m.Info.QueueID]; ok && name != "" {
		return name
	}
	return m.Info.GameMode
}

// ChampionAggregate holds accumulated statistics for one champion across a
// set of PlayerMatch views. Recomputed whenever the underlying set changes.
type ChampionAggregate struct {
	ChampionID   int
	ChampionName string

	Games int
	Wins  int

	Kills   int
	Deaths  int
	Assists int

	Gold        int
	CS          int
	VisionScore int
	Damage      int
	DurationSec int

	MasteryLevel  int
	MasteryPoints int
}

// WinRate returns the win percentage across aggregated games, 0 when empty.
func (a *ChampionAggregate) WinRate() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.Games) * 100
}

// KDA returns (kills+assists)/deaths over the aggregate, +Inf with zero deaths.
func (a *ChampionAggregate) KDA() float64 {
	if a.Deaths == 0 {
		return math.Inf(1)
	}
	return float64(a.Kills+a.Assists) / float64(a.Deaths)
}

func (a *ChampionAggregate) AvgCS() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.CS) / float64(a.Games)
}

func (a *ChampionAggregate) AvgVision() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.VisionScore) / float64(a.Games)
}

func (a *ChampionAggregate) AvgGold() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Gold) / float64(a.Games)
}

// CSPerMinute is total CS over total time played on the champion.
func (a *ChampionAggregate) CSPerMinute() float64 {
	if a.DurationSec == 0 {
		return 0
	}
	return float64(a.CS) / (float64(a.DurationSec) / 60)
}

// SynergyPair is an unordered pair of champions observed as teammates.
// ChampionA sorts before ChampionB (canonical key order), so (A,B) and
// (B,A) collapse to one entry.
type SynergyPair struct {
	ChampionA string
	ChampionB string

	Games   int
	Wins    int
	Kills   int
	Deaths  int
	Assists int
}

// Key returns the canonical map key for the pair.
func (s *SynergyPair) Key() string {
	return s.ChampionA + "|" + s.ChampionB
}

// WinRate returns the pair's win percentage, 0 when empty.
func (s *SynergyPair) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games) * 100
}

// KDA returns the combined KDA over all pair games, +Inf with zero deaths.
func (s *SynergyPair) KDA() float64 {
	if s.Deaths == 0 {
		return math.Inf(1)
	}
	return float64(s.Kills+s.Assists) / float64(s.Deaths)
}
