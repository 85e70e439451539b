package sports

import (
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/models"
)

// FieldMap translates upstream field names to the normalized internal
// names. An empty map means the endpoint already answers in normalized
// names and records pass through unchanged.
type FieldMap map[string]string

// Mapper is implemented once per sport. It owns every piece of
// knowledge about the sport's upstream field names and the order of its
// box-score display rows.
type Mapper interface {
	GameFieldMap() FieldMap
	TeamStatsFieldMap() FieldMap
	PlayerStatsFieldMap() FieldMap

	// BuildGameRecords produces the ordered box-score rows for a
	// finished game. Row order is fixed per sport.
	BuildGameRecords(home, away models.StatLine) []models.GameRecord
}

// ApplyFieldMap maps one raw record into normalized names. Mapped
// fields are copied first; every upstream field not present in the map
// is then carried through under its original name, so new upstream
// fields survive without code changes. Nothing is dropped silently.
func ApplyFieldMap(record map[string]interface{}, fieldMap FieldMap) map[string]interface{} {
	if len(fieldMap) == 0 {
		return record
	}

	mapped := make(map[string]interface{}, len(record))
	for apiField, internalField := range fieldMap {
		if v, ok := record[apiField]; ok {
			mapped[internalField] = v
		}
	}
	for key, value := range record {
		if _, isMapped := fieldMap[key]; isMapped {
			continue
		}
		if _, taken := mapped[key]; taken {
			continue
		}
		mapped[key] = value
	}
	return mapped
}

// legacyListKeys are envelope keys seen in older upstream responses.
var legacyListKeys = []string{"games", "team_stats", "teams", "player_stats", "players", "data", "results", "items", "list"}

// UnwrapList extracts the record list from any of the upstream envelope
// shapes: a bare list, {"Data": {"list": [...]}}, {"Data": [...]}, or a
// legacy key. ok is false when no shape matches; callers degrade to an
// empty result rather than failing, since upstream schema drift should
// read as "no data".
func UnwrapList(response interface{}) ([]map[string]interface{}, bool) {
	if items, ok := asRecordList(response); ok {
		return items, true
	}

	envelope, ok := response.(map[string]interface{})
	if !ok {
		return nil, false
	}

	if data, ok := envelope["Data"]; ok {
		if inner, ok := data.(map[string]interface{}); ok {
			if items, ok := asRecordList(inner["list"]); ok {
				return items, true
			}
		}
		if items, ok := asRecordList(data); ok {
			return items, true
		}
	}

	for _, key := range legacyListKeys {
		if items, ok := asRecordList(envelope[key]); ok {
			return items, true
		}
	}
	return nil, false
}

func asRecordList(v interface{}) ([]map[string]interface{}, bool) {
	raw, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	records := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if rec, ok := item.(map[string]interface{}); ok {
			records = append(records, rec)
		}
	}
	return records, true
}

// MapStatList unwraps a stats response and applies a field map to each
// record. An unrecognized envelope logs a warning and yields an empty
// list; it never fails the caller.
func MapStatList(response interface{}, fieldMap FieldMap, log *logrus.Entry, what string) []models.StatLine {
	records, ok := UnwrapList(response)
	if !ok {
		log.WithField("records", what).Warn("Could not find record list in API response")
		return []models.StatLine{}
	}
	stats := make([]models.StatLine, 0, len(records))
	for _, rec := range records {
		stats = append(stats, models.StatLine(ApplyFieldMap(rec, fieldMap)))
	}
	return stats
}

// MapGames unwraps a games response, applies the sport's game field
// map, and lifts each record into the typed Game struct. A record with
// no game ID is a hard error: game_id is the identity key for every
// downstream operation and a batch without it is unusable.
func MapGames(response interface{}, m Mapper, log *logrus.Entry) ([]models.Game, error) {
	records, ok := UnwrapList(response)
	if !ok {
		log.Warn("Could not find games list in API response")
		return []models.Game{}, nil
	}

	fieldMap := m.GameFieldMap()
	games := make([]models.Game, 0, len(records))
	for _, rec := range records {
		mapped := ApplyFieldMap(rec, fieldMap)
		game, err := GameFromRecord(mapped)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

// gameFields are the normalized names with a struct slot on Game.
var gameFields = map[string]bool{
	"game_id": true, "league_id": true, "league_name": true,
	"match_date": true, "match_time": true,
	"home_team_id": true, "home_team_name": true,
	"away_team_id": true, "away_team_name": true,
	"home_score": true, "away_score": true,
	"state": true, "arena_name": true, "compe": true,
}

// GameFromRecord lifts a normalized record map into the typed Game.
// Upstream fields without a struct slot land in Extra.
func GameFromRecord(record map[string]interface{}) (models.Game, error) {
	gameID := StatString(record, "game_id")
	if gameID == "" {
		return models.Game{}, apierror.New(apierror.KindUnknown,
			"game record missing required field game_id")
	}

	game := models.Game{
		GameID:       gameID,
		LeagueID:     StatString(record, "league_id"),
		LeagueName:   StatString(record, "league_name"),
		MatchDate:    StatString(record, "match_date"),
		MatchTime:    StatString(record, "match_time"),
		HomeTeamID:   StatString(record, "home_team_id"),
		HomeTeamName: StatString(record, "home_team_name"),
		AwayTeamID:   StatString(record, "away_team_id"),
		AwayTeamName: StatString(record, "away_team_name"),
		HomeScore:    StatInt(record, "home_score"),
		AwayScore:    StatInt(record, "away_score"),
		State:        models.NormalizeState(StatString(record, "state")),
		ArenaName:    StatString(record, "arena_name"),
		Compe:        StatString(record, "compe"),
	}

	for key, value := range record {
		if gameFields[key] {
			continue
		}
		if game.Extra == nil {
			game.Extra = make(map[string]interface{})
		}
		game.Extra[key] = value
	}
	return game, nil
}
