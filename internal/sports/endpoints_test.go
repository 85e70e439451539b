package sports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

func TestBasePath(t *testing.T) {
	assert.Equal(t, "/data3V1/livescore", sports.BasePath("production"))
	assert.Equal(t, "/dev/data3V1/livescore", sports.BasePath("development"))
	assert.Equal(t, "/dev/data3V1/livescore", sports.BasePath(""))
}

func TestEndpointResolution(t *testing.T) {
	base := sports.BasePath("development")
	cfg := sports.NewEndpointConfig("basketball", base,
		map[sports.Operation]string{
			sports.OpTeamStats: base + "/basketballTeamStat",
		},
		sports.OpGames,
	)

	path, err := cfg.Endpoint(sports.OpTeamStats)
	require.NoError(t, err)
	assert.Equal(t, base+"/basketballTeamStat", path)

	path, err = cfg.Endpoint(sports.OpGames)
	require.NoError(t, err)
	assert.Equal(t, base+"/gameList", path)
}

func TestEndpointSportSpecificWinsOverCommon(t *testing.T) {
	base := sports.BasePath("development")
	cfg := sports.NewEndpointConfig("soccer", base,
		map[sports.Operation]string{
			sports.OpGames: base + "/soccerGameList",
		},
		sports.OpGames,
	)

	path, err := cfg.Endpoint(sports.OpGames)
	require.NoError(t, err)
	assert.Equal(t, base+"/soccerGameList", path)
}

func TestEndpointUnknownOperationListsAvailable(t *testing.T) {
	base := sports.BasePath("development")
	cfg := sports.NewEndpointConfig("volleyball", base,
		map[sports.Operation]string{
			sports.OpTeamStats:   base + "/volleyballTeamStat",
			sports.OpPlayerStats: base + "/volleyballPlayerStat",
		},
		sports.OpGames,
	)

	_, err := cfg.Endpoint(sports.OpLineup)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Contains(t, err.Error(), "lineup")
	assert.Contains(t, err.Error(), "volleyball")
	assert.Contains(t, err.Error(), "games")
	assert.Contains(t, err.Error(), "team_stats")
	assert.Contains(t, err.Error(), "player_stats")
}

func TestHasOperation(t *testing.T) {
	base := sports.BasePath("development")
	cfg := sports.NewEndpointConfig("football", base,
		map[sports.Operation]string{
			sports.OpTeamStats: base + "/footballTeamStat",
		},
		sports.OpGames,
	)

	assert.True(t, cfg.HasOperation(sports.OpTeamStats))
	assert.True(t, cfg.HasOperation(sports.OpGames))
	assert.False(t, cfg.HasOperation(sports.OpTeamRank))
}

func TestOperationsTagsCommonEntries(t *testing.T) {
	base := sports.BasePath("development")
	cfg := sports.NewEndpointConfig("basketball", base,
		map[sports.Operation]string{
			sports.OpTeamStats: base + "/basketballTeamStat",
		},
		sports.OpGames,
	)

	ops := cfg.Operations()
	assert.Equal(t, base+"/basketballTeamStat", ops[sports.OpTeamStats])
	assert.Equal(t, "[common] "+base+"/gameList", ops[sports.OpGames])
}
