package soccer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports/soccer"
)

func TestDeriveRankFields(t *testing.T) {
	rankings := []models.StatLine{
		{
			"team_name": "Arsenal", "games_played": float64(12),
			"goals_for": float64(26), "goals_against": float64(9),
			"points": float64(29),
		},
		{
			"team_name": "Newly Promoted", "games_played": float64(0),
			"goals_for": float64(0), "goals_against": float64(0),
			"points": float64(0),
		},
	}

	derived := soccer.DeriveRankFields(rankings)

	assert.Equal(t, 17, derived[0]["goal_diff"])
	// 29 of 36 available points.
	assert.InDelta(t, 80.6, derived[0]["win_rate"], 0.01)

	// Zero games played cannot produce a rate.
	assert.Equal(t, 0, derived[1]["goal_diff"])
	assert.Equal(t, "-", derived[1]["win_rate"])
}

func TestBuildGameRecords(t *testing.T) {
	home := models.StatLine{
		"home_team_possession": "58%",
		"home_team_shoot_cn":   float64(15), "home_team_effect_shoot_cn": float64(7),
		"home_team_pass_cn": float64(612), "home_team_effect_pass_cn": float64(534),
		"home_team_foul_cn": float64(9), "home_team_corner_kick_cn": float64(6),
		"home_team_yellow_card_cn": float64(1), "home_team_red_card_cn": float64(0),
		"home_team_save_cn": float64(4),
	}
	away := models.StatLine{
		"away_team_possession": "42%",
		"away_team_shoot_cn":   float64(11), "away_team_effect_shoot_cn": float64(5),
		"away_team_pass_cn": float64(443), "away_team_effect_pass_cn": float64(361),
		"away_team_foul_cn": float64(13), "away_team_corner_kick_cn": float64(4),
		"away_team_yellow_card_cn": float64(3), "away_team_red_card_cn": float64(0),
		"away_team_save_cn": float64(5),
	}

	records := soccer.Mapper{}.BuildGameRecords(home, away)
	require.Len(t, records, 11)

	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Possession", "Shots", "Shots on Target", "Shot Accuracy",
		"Passes", "Pass Accuracy", "Fouls", "Corners",
		"Yellow Cards", "Red Cards", "Saves",
	}, labels)

	assert.Equal(t, "58%", records[0].Home)
	assert.Equal(t, 15, records[1].Home)
	assert.Equal(t, "46.7", records[3].Home) // 7 of 15
	assert.Equal(t, "45.5", records[3].Away) // 5 of 11
	assert.Equal(t, "87.3", records[5].Home) // 534 of 612
}

func TestBuildGameRecordsZeroDenominator(t *testing.T) {
	records := soccer.Mapper{}.BuildGameRecords(models.StatLine{}, models.StatLine{})
	require.Len(t, records, 11)

	assert.Equal(t, "-", records[3].Home) // shot accuracy with no shots
	assert.Equal(t, "-", records[5].Home) // pass accuracy with no passes
}
