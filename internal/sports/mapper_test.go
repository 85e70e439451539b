package sports_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

func testEntry() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log.WithField("sport", "test")
}

type stubMapper struct{}

func (stubMapper) GameFieldMap() sports.FieldMap {
	return sports.FieldMap{
		"GAME_ID":        "game_id",
		"HOME_TEAM_NAME": "home_team_name",
		"AWAY_TEAM_NAME": "away_team_name",
		"STATE":          "state",
	}
}
func (stubMapper) TeamStatsFieldMap() sports.FieldMap   { return sports.FieldMap{} }
func (stubMapper) PlayerStatsFieldMap() sports.FieldMap { return sports.FieldMap{} }
func (stubMapper) BuildGameRecords(home, away models.StatLine) []models.GameRecord {
	return nil
}

func TestApplyFieldMapTranslatesAndMerges(t *testing.T) {
	record := map[string]interface{}{
		"GAME_ID":        "G1",
		"HOME_TEAM_NAME": "Boston",
		"quarter":        "4Q",
	}
	mapped := sports.ApplyFieldMap(record, stubMapper{}.GameFieldMap())

	assert.Equal(t, "G1", mapped["game_id"])
	assert.Equal(t, "Boston", mapped["home_team_name"])
	// Unmapped upstream fields survive under their original name.
	assert.Equal(t, "4Q", mapped["quarter"])
	assert.NotContains(t, mapped, "GAME_ID")
}

func TestApplyFieldMapEmptyIsPassthrough(t *testing.T) {
	record := map[string]interface{}{"game_id": "G1", "tot_score": float64(31)}
	mapped := sports.ApplyFieldMap(record, sports.FieldMap{})
	assert.Equal(t, record, mapped)
}

func TestApplyFieldMapIsIdempotent(t *testing.T) {
	record := map[string]interface{}{
		"GAME_ID":        "G1",
		"HOME_TEAM_NAME": "Boston",
		"quarter":        "4Q",
	}
	fieldMap := stubMapper{}.GameFieldMap()

	once := sports.ApplyFieldMap(record, fieldMap)
	twice := sports.ApplyFieldMap(once, fieldMap)

	// Mapped output contains no upstream names, so a second pass has
	// nothing left to translate.
	assert.Equal(t, once, twice)
}

func TestApplyFieldMapNeverOverwritesMappedField(t *testing.T) {
	// Upstream sends both the raw name and a field that maps onto the
	// same normalized name; the mapped value must win.
	record := map[string]interface{}{
		"GAME_ID": "mapped",
		"game_id": "raw",
	}
	mapped := sports.ApplyFieldMap(record, sports.FieldMap{"GAME_ID": "game_id"})
	assert.Equal(t, "mapped", mapped["game_id"])
}

func TestUnwrapListEnvelopes(t *testing.T) {
	record := map[string]interface{}{"game_id": "G1"}

	tests := []struct {
		name     string
		response interface{}
	}{
		{"bare list", []interface{}{record}},
		{"Data.list", map[string]interface{}{
			"Data": map[string]interface{}{"list": []interface{}{record}},
		}},
		{"Data as list", map[string]interface{}{
			"Data": []interface{}{record},
		}},
		{"legacy games key", map[string]interface{}{
			"games": []interface{}{record},
		}},
		{"legacy data key", map[string]interface{}{
			"data": []interface{}{record},
		}},
		{"legacy results key", map[string]interface{}{
			"results": []interface{}{record},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ok := sports.UnwrapList(tt.response)
			require.True(t, ok)
			require.Len(t, items, 1)
			assert.Equal(t, "G1", items[0]["game_id"])
		})
	}
}

func TestUnwrapListUnrecognized(t *testing.T) {
	_, ok := sports.UnwrapList(map[string]interface{}{"unexpected": "shape"})
	assert.False(t, ok)

	_, ok = sports.UnwrapList("not an envelope")
	assert.False(t, ok)

	_, ok = sports.UnwrapList(nil)
	assert.False(t, ok)
}

func TestMapGames(t *testing.T) {
	response := map[string]interface{}{
		"Data": map[string]interface{}{
			"list": []interface{}{
				map[string]interface{}{
					"GAME_ID":        "G1",
					"HOME_TEAM_NAME": "Boston",
					"AWAY_TEAM_NAME": "New York",
					"STATE":          "f",
					"HOME_SCORE":     float64(112),
				},
			},
		},
	}

	games, err := sports.MapGames(response, stubMapper{}, testEntry())
	require.NoError(t, err)
	require.Len(t, games, 1)

	assert.Equal(t, "G1", games[0].GameID)
	assert.Equal(t, "Boston", games[0].HomeTeamName)
	assert.Equal(t, models.StateFinished, games[0].State)
	// HOME_SCORE is not in the stub's map; it lands in Extra untouched.
	assert.Equal(t, float64(112), games[0].Extra["HOME_SCORE"])
}

func TestMapGamesUnrecognizedEnvelopeIsEmptyNotError(t *testing.T) {
	games, err := sports.MapGames(map[string]interface{}{"weird": true}, stubMapper{}, testEntry())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestMapGamesMissingGameIDFails(t *testing.T) {
	response := []interface{}{
		map[string]interface{}{"HOME_TEAM_NAME": "Boston"},
	}
	_, err := sports.MapGames(response, stubMapper{}, testEntry())
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindUnknown))
	assert.Contains(t, err.Error(), "game_id")
}

func TestMapStatListUnrecognizedEnvelopeIsEmpty(t *testing.T) {
	stats := sports.MapStatList(map[string]interface{}{"weird": true}, sports.FieldMap{}, testEntry(), "team stats")
	assert.Empty(t, stats)
}

func TestGameFromRecordLiftsKnownFieldsAndKeepsExtras(t *testing.T) {
	record := map[string]interface{}{
		"game_id":        "G1",
		"home_team_name": "Boston",
		"away_team_name": "New York",
		"home_score":     "112",
		"away_score":     float64(104),
		"state":          "F",
		"referee":        "T. Brothers",
	}
	g, err := sports.GameFromRecord(record)
	require.NoError(t, err)

	assert.Equal(t, 112, g.HomeScore)
	assert.Equal(t, 104, g.AwayScore)
	assert.Equal(t, models.StateFinished, g.State)
	assert.Equal(t, "T. Brothers", g.Extra["referee"])
	assert.NotContains(t, g.Extra, "game_id")
}
