package basketball

import (
	"fmt"

	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

// Mapper translates basketball upstream responses into the normalized
// schema and builds the box-score display rows.
type Mapper struct{}

// GameFieldMap maps the upper-case games list schema. The stats
// endpoints already answer in normalized lower-case names, so their
// maps are empty and records pass through unchanged.
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

// BuildGameRecords produces the basketball box-score rows. Shooting
// splits render as "made/attempted"; rebounds combine offensive and
// defensive boards. Row order is fixed.
func (Mapper) BuildGameRecords(home, away models.StatLine) []models.GameRecord {
	homeSplit := func(made, att string) string {
		return fmt.Sprintf("%d/%d", sports.StatInt(home, made), sports.StatInt(home, att))
	}
	awaySplit := func(made, att string) string {
		return fmt.Sprintf("%d/%d", sports.StatInt(away, made), sports.StatInt(away, att))
	}

	return []models.GameRecord{
		{
			Label: "Field Goals",
			Home:  homeSplit("home_team_fgm_cn", "home_team_fga_cn"),
			Away:  awaySplit("away_team_fgm_cn", "away_team_fga_cn"),
		},
		{
			Label: "3-Pointers",
			Home:  homeSplit("home_team_pgm3_cn", "home_team_pga3_cn"),
			Away:  awaySplit("away_team_pgm3_cn", "away_team_pga3_cn"),
		},
		{
			Label: "Free Throws",
			Home:  homeSplit("home_team_ftm_cn", "home_team_fta_cn"),
			Away:  awaySplit("away_team_ftm_cn", "away_team_fta_cn"),
		},
		{
			Label: "Rebounds",
			Home:  sports.StatInt(home, "home_team_oreb_cn") + sports.StatInt(home, "home_team_dreb_cn"),
			Away:  sports.StatInt(away, "away_team_oreb_cn") + sports.StatInt(away, "away_team_dreb_cn"),
		},
		{
			Label: "Assists",
			Home:  sports.StatInt(home, "home_team_assist_cn"),
			Away:  sports.StatInt(away, "away_team_assist_cn"),
		},
		{
			Label: "Turnovers",
			Home:  sports.StatInt(home, "home_team_turnover_cn"),
			Away:  sports.StatInt(away, "away_team_turnover_cn"),
		},
		{
			Label: "Steals",
			Home:  sports.StatInt(home, "home_team_steal_cn"),
			Away:  sports.StatInt(away, "away_team_steal_cn"),
		},
		{
			Label: "Blocks",
			Home:  sports.StatInt(home, "home_team_block_cn"),
			Away:  sports.StatInt(away, "away_team_block_cn"),
		},
		{
			Label: "Fouls",
			Home:  sports.StatInt(home, "home_team_pfoul_cn"),
			Away:  sports.StatInt(away, "away_team_pfoul_cn"),
		},
	}
}
