// Package basketball implements the basketball upstream client.
package basketball

import "github.com/stitts-dev/livescore-service/internal/sports"

// Endpoints builds the basketball endpoint set. The games list resolves
// through the common table; everything else is basketball-specific.
func Endpoints(basePath string) sports.EndpointConfig {
	return sports.NewEndpointConfig("basketball", basePath,
		map[sports.Operation]string{
			sports.OpTeamStats:   basePath + "/basketballTeamStat",
			sports.OpPlayerStats: basePath + "/basketballPlayerStat",
			sports.OpLineup:      basePath + "/basketballLineup",
			sports.OpTeamRank:    basePath + "/basketballTeamRank",
			sports.OpTeamVsList:  basePath + "/basketballTeamVsList",
		},
		sports.OpGames,
	)
}
