package soccer

import (
	"fmt"
	"math"

	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

// Mapper translates soccer upstream responses into the normalized
// schema, derives the standings fields the upstream omits, and builds
// the match display rows.
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

// accuracyPct formats accurate/total as a percentage with one decimal.
// A zero denominator renders as "-" rather than a bogus number.
func accuracyPct(accurate, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", float64(accurate)/float64(total)*100)
}

// DeriveRankFields adds the standings values the upstream omits:
// goal difference, and win rate as points earned over points available
// in a 3-points-per-win competition.
func DeriveRankFields(rankings []models.StatLine) []models.StatLine {
	for _, r := range rankings {
		goalsFor := sports.StatInt(r, "goals_for")
		goalsAgainst := sports.StatInt(r, "goals_against")
		r["goal_diff"] = goalsFor - goalsAgainst

		points := sports.StatInt(r, "points")
		gamesPlayed := sports.StatInt(r, "games_played")
		if gamesPlayed > 0 {
			rate := float64(points) / float64(gamesPlayed*3) * 100
			r["win_rate"] = math.Round(rate*10) / 10
		} else {
			r["win_rate"] = "-"
		}
	}
	return rankings
}

// BuildGameRecords produces the soccer match rows. Accuracy rows are
// derived from the raw attempt counts. Row order is fixed.
func (Mapper) BuildGameRecords(home, away models.StatLine) []models.GameRecord {
	return []models.GameRecord{
		{
			Label: "Possession",
			Home:  home.String("home_team_possession"),
			Away:  away.String("away_team_possession"),
		},
		{
			Label: "Shots",
			Home:  sports.StatInt(home, "home_team_shoot_cn"),
			Away:  sports.StatInt(away, "away_team_shoot_cn"),
		},
		{
			Label: "Shots on Target",
			Home:  sports.StatInt(home, "home_team_effect_shoot_cn"),
			Away:  sports.StatInt(away, "away_team_effect_shoot_cn"),
		},
		{
			Label: "Shot Accuracy",
			Home: accuracyPct(
				sports.StatInt(home, "home_team_effect_shoot_cn"),
				sports.StatInt(home, "home_team_shoot_cn")),
			Away: accuracyPct(
				sports.StatInt(away, "away_team_effect_shoot_cn"),
				sports.StatInt(away, "away_team_shoot_cn")),
		},
		{
			Label: "Passes",
			Home:  sports.StatInt(home, "home_team_pass_cn"),
			Away:  sports.StatInt(away, "away_team_pass_cn"),
		},
		{
			Label: "Pass Accuracy",
			Home: accuracyPct(
				sports.StatInt(home, "home_team_effect_pass_cn"),
				sports.StatInt(home, "home_team_pass_cn")),
			Away: accuracyPct(
				sports.StatInt(away, "away_team_effect_pass_cn"),
				sports.StatInt(away, "away_team_pass_cn")),
		},
		{
			Label: "Fouls",
			Home:  sports.StatInt(home, "home_team_foul_cn"),
			Away:  sports.StatInt(away, "away_team_foul_cn"),
		},
		{
			Label: "Corners",
			Home:  sports.StatInt(home, "home_team_corner_kick_cn"),
			Away:  sports.StatInt(away, "away_team_corner_kick_cn"),
		},
		{
			Label: "Yellow Cards",
			Home:  sports.StatInt(home, "home_team_yellow_card_cn"),
			Away:  sports.StatInt(away, "away_team_yellow_card_cn"),
		},
		{
			Label: "Red Cards",
			Home:  sports.StatInt(home, "home_team_red_card_cn"),
			Away:  sports.StatInt(away, "away_team_red_card_cn"),
		},
		{
			Label: "Saves",
			Home:  sports.StatInt(home, "home_team_save_cn"),
			Away:  sports.StatInt(away, "away_team_save_cn"),
		},
	}
}
