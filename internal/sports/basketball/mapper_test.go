package basketball_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports/basketball"
)

func TestBuildGameRecords(t *testing.T) {
	home := models.StatLine{
		"home_team_fgm_cn": float64(42), "home_team_fga_cn": float64(88),
		"home_team_pgm3_cn": float64(15), "home_team_pga3_cn": float64(39),
		"home_team_ftm_cn": float64(13), "home_team_fta_cn": float64(16),
		"home_team_oreb_cn": float64(10), "home_team_dreb_cn": float64(34),
		"home_team_assist_cn": float64(27), "home_team_turnover_cn": float64(11),
		"home_team_steal_cn": float64(8), "home_team_block_cn": float64(5),
		"home_team_pfoul_cn": float64(17),
	}
	away := models.StatLine{
		"away_team_fgm_cn": float64(38), "away_team_fga_cn": float64(85),
		"away_team_pgm3_cn": float64(12), "away_team_pga3_cn": float64(35),
		"away_team_ftm_cn": float64(16), "away_team_fta_cn": float64(20),
		"away_team_oreb_cn": float64(8), "away_team_dreb_cn": float64(31),
		"away_team_assist_cn": float64(22), "away_team_turnover_cn": float64(14),
		"away_team_steal_cn": float64(6), "away_team_block_cn": float64(3),
		"away_team_pfoul_cn": float64(19),
	}

	records := basketball.Mapper{}.BuildGameRecords(home, away)
	require.Len(t, records, 9)

	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Field Goals", "3-Pointers", "Free Throws", "Rebounds",
		"Assists", "Turnovers", "Steals", "Blocks", "Fouls",
	}, labels)

	assert.Equal(t, "42/88", records[0].Home)
	assert.Equal(t, "38/85", records[0].Away)
	assert.Equal(t, "15/39", records[1].Home)
	assert.Equal(t, 44, records[3].Home) // 10 offensive + 34 defensive
	assert.Equal(t, 39, records[3].Away)
	assert.Equal(t, 27, records[4].Home)
}

func TestBuildGameRecordsMissingStatsDefaultToZero(t *testing.T) {
	records := basketball.Mapper{}.BuildGameRecords(models.StatLine{}, models.StatLine{})
	require.Len(t, records, 9)
	assert.Equal(t, "0/0", records[0].Home)
	assert.Equal(t, 0, records[3].Home)
}

func TestGameFieldMapCoversGameSchema(t *testing.T) {
	fm := basketball.Mapper{}.GameFieldMap()
	assert.Equal(t, "game_id", fm["GAME_ID"])
	assert.Equal(t, "home_team_name", fm["HOME_TEAM_NAME"])
	assert.Equal(t, "state", fm["STATE"])
	assert.Len(t, fm, 13)

	// Stats endpoints answer in normalized names already.
	assert.Empty(t, basketball.Mapper{}.TeamStatsFieldMap())
	assert.Empty(t, basketball.Mapper{}.PlayerStatsFieldMap())
}
