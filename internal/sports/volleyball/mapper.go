package volleyball

import (
	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

// Mapper translates volleyball upstream responses into the normalized
// schema and builds the box-score display rows.
type Mapper struct{}

func (Mapper) GameFieldMap() sports.FieldMap {
	return sports.FieldMap{
		"GAME_ID":        "game_id",
		"LEAGUE_NAME":    "league_name",
		"MATCH_DATE":     "match_date",
		"MATCH_TIME":     "match_time",
		"HOME_TEAM_ID":   "home_team_id",
		"AWAY_TEAM_ID":   "away_team_id",
		"HOME_TEAM_NAME": "home_team_name",
		"AWAY_TEAM_NAME": "away_team_name",
		"HOME_SCORE":     "home_score",
		"AWAY_SCORE":     "away_score",
		"STATE":          "state",
		"ARENA_NAME":     "arena_name",
		"COMPE":          "compe",
	}
}

func (Mapper) TeamStatsFieldMap() sports.FieldMap   { return sports.FieldMap{} }
func (Mapper) PlayerStatsFieldMap() sports.FieldMap { return sports.FieldMap{} }

// BuildGameRecords produces the volleyball box-score rows. Row order is
// fixed.
func (Mapper) BuildGameRecords(home, away models.StatLine) []models.GameRecord {
	return []models.GameRecord{
		{
			Label: "Attacks",
			Home:  sports.StatInt(home, "home_team_attack_cn"),
			Away:  sports.StatInt(away, "away_team_attack_cn"),
		},
		{
			Label: "Attack Attempts",
			Home:  sports.StatInt(home, "home_team_attack_try_cn"),
			Away:  sports.StatInt(away, "away_team_attack_try_cn"),
		},
		{
			Label: "Blocks",
			Home:  sports.StatInt(home, "home_team_block_cn"),
			Away:  sports.StatInt(away, "away_team_block_cn"),
		},
		{
			Label: "Serve Aces",
			Home:  sports.StatInt(home, "home_team_serve_ace_cn"),
			Away:  sports.StatInt(away, "away_team_serve_ace_cn"),
		},
		{
			Label: "Serve Errors",
			Home:  sports.StatInt(home, "home_team_serve_error_cn"),
			Away:  sports.StatInt(away, "away_team_serve_error_cn"),
		},
		{
			Label: "Digs",
			Home:  sports.StatInt(home, "home_team_dig_cn"),
			Away:  sports.StatInt(away, "away_team_dig_cn"),
		},
		{
			Label: "Errors",
			Home:  sports.StatInt(home, "home_team_error_cn"),
			Away:  sports.StatInt(away, "away_team_error_cn"),
		},
	}
}
