// Package volleyball implements the volleyball upstream client.
package volleyball

import "github.com/stitts-dev/livescore-service/internal/sports"

// Endpoints builds the volleyball endpoint set. Volleyball only exposes
// the core operations upstream.
func Endpoints(basePath string) sports.EndpointConfig {
	return sports.NewEndpointConfig("volleyball", basePath,
		map[sports.Operation]string{
			sports.OpTeamStats:   basePath + "/volleyballTeamStat",
			sports.OpPlayerStats: basePath + "/volleyballPlayerStat",
		},
		sports.OpGames,
	)
}
