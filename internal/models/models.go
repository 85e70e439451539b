// Package models holds the normalized record types shared across all
// sports. Only fields every sport agrees on are strongly typed; the
// sport-variable stat sets stay as string-keyed maps.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// GameState is the canonical match state. Upstream responses spell the
// state several ways ("f", "F", "종료", ...); all translation into this
// enum happens inside the sports mapping layer, nowhere else.
type GameState string

const (
	StateScheduled  GameState = "B"
	StateInProgress GameState = "I"
	StateFinished   GameState = "F"
)

// NormalizeState translates an upstream state code to the canonical
// enum. Unrecognized codes fall back to StateScheduled, matching the
// upstream convention that anything unannounced is a future game.
func NormalizeState(raw string) GameState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "f", "finished", "final", "ended", "종료":
		return StateFinished
	case "i", "in_progress", "live", "playing", "진행중":
		return StateInProgress
	case "b", "before", "scheduled", "예정":
		return StateScheduled
	default:
		return StateScheduled
	}
}

// Finished reports whether stats for the game can be expected upstream.
func (s GameState) Finished() bool { return s == StateFinished }

// Game is the normalized game record produced by the response mappers.
// Extra carries upstream fields with no struct slot so schema drift
// never drops data.
type Game struct {
	GameID       string    `json:"game_id"`
	LeagueID     string    `json:"league_id"`
	LeagueName   string    `json:"league_name"`
	MatchDate    string    `json:"match_date"` // YYYYMMDD
	MatchTime    string    `json:"match_time"`
	HomeTeamID   string    `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   string    `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
	State        GameState `json:"state"`
	ArenaName    string    `json:"arena_name"`
	Compe        string    `json:"compe"`

	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Clone returns a copy of the game with its own Extra map, so holders
// of the copy cannot mutate shared state through it.
func (g Game) Clone() Game {
	out := g
	if g.Extra != nil {
		out.Extra = make(map[string]interface{}, len(g.Extra))
		for k, v := range g.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// StatLine is a sport-variable stat record. Field sets differ per sport
// and per endpoint; nothing outside the sport mappers may assume a
// fixed schema across sports.
type StatLine map[string]interface{}

// String returns the stat's value as a string, or "" when absent.
// Upstream is inconsistent about scalar types (IDs arrive as JSON
// numbers on some endpoints), so non-string scalars are rendered, not
// discarded. Whole-number floats print without a decimal part.
func (s StatLine) String(key string) string {
	switch v := s[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Clone returns a shallow copy. Mock datasets hand out clones so
// callers can never mutate the shared fixtures.
func (s StatLine) Clone() StatLine {
	out := make(StatLine, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// CloneStatLines shallow-copies a stat line slice.
func CloneStatLines(in []StatLine) []StatLine {
	out := make([]StatLine, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

// GameRecord is one box-score row for side-by-side team display.
// Row order is significant and fixed per sport.
type GameRecord struct {
	Label string      `json:"label"`
	Home  interface{} `json:"home"`
	Away  interface{} `json:"away"`
}

// TeamBox is one team's side of a game-details response.
type TeamBox struct {
	TeamID  string     `json:"team_id"`
	Name    string     `json:"name"`
	Score   int        `json:"score"`
	Players []StatLine `json:"players"`
}

// GameDetails aggregates the per-game sub-fetches for consumers.
type GameDetails struct {
	GameID      string       `json:"game_id"`
	Sport       string       `json:"sport"`
	League      string       `json:"league"`
	Date        string       `json:"date"` // MM.DD display form
	State       GameState    `json:"state"`
	HomeTeam    TeamBox      `json:"home_team"`
	AwayTeam    TeamBox      `json:"away_team"`
	GameRecords []GameRecord `json:"game_records"`
}
