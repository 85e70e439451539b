package football

import (
	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

// Mapper translates football upstream responses into the normalized
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

// BuildGameRecords produces the football box-score rows. Possession is
// a clock string and passes through untouched. Row order is fixed.
func (Mapper) BuildGameRecords(home, away models.StatLine) []models.GameRecord {
	possession := func(s models.StatLine, key string) string {
		if v := s.String(key); v != "" {
			return v
		}
		return "00:00"
	}

	return []models.GameRecord{
		{
			Label: "Total Yards",
			Home:  sports.StatInt(home, "home_team_total_yards"),
			Away:  sports.StatInt(away, "away_team_total_yards"),
		},
		{
			Label: "Passing Yards",
			Home:  sports.StatInt(home, "home_team_passing_yards"),
			Away:  sports.StatInt(away, "away_team_passing_yards"),
		},
		{
			Label: "Rushing Yards",
			Home:  sports.StatInt(home, "home_team_rushing_yards"),
			Away:  sports.StatInt(away, "away_team_rushing_yards"),
		},
		{
			Label: "First Downs",
			Home:  sports.StatInt(home, "home_team_first_downs"),
			Away:  sports.StatInt(away, "away_team_first_downs"),
		},
		{
			Label: "Turnovers",
			Home:  sports.StatInt(home, "home_team_turnovers"),
			Away:  sports.StatInt(away, "away_team_turnovers"),
		},
		{
			Label: "Sacks",
			Home:  sports.StatInt(home, "home_team_sacks"),
			Away:  sports.StatInt(away, "away_team_sacks"),
		},
		{
			Label: "Possession",
			Home:  possession(home, "home_team_possession"),
			Away:  possession(away, "away_team_possession"),
		},
	}
}
