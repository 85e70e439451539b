// Package football implements the American football upstream client.
package football

import "github.com/stitts-dev/livescore-service/internal/sports"

// Endpoints builds the football endpoint set. Football only exposes the
// core operations upstream.
func Endpoints(basePath string) sports.EndpointConfig {
	return sports.NewEndpointConfig("football", basePath,
		map[sports.Operation]string{
			sports.OpTeamStats:   basePath + "/footballTeamStat",
			sports.OpPlayerStats: basePath + "/footballPlayerStat",
		},
		sports.OpGames,
	)
}
