// Package soccer implements the soccer upstream client.
package soccer

import "github.com/stitts-dev/livescore-service/internal/sports"

// Endpoints builds the soccer endpoint set. Soccer is the only sport
// with per-player season aggregates upstream.
func Endpoints(basePath string) sports.EndpointConfig {
	return sports.NewEndpointConfig("soccer", basePath,
		map[sports.Operation]string{
			sports.OpTeamStats:         basePath + "/soccerTeamStat",
			sports.OpPlayerStats:       basePath + "/soccerPlayerStat",
			sports.OpLineup:            basePath + "/soccerLineup",
			sports.OpTeamRank:          basePath + "/soccerTeamRank",
			sports.OpPlayerSeasonStats: basePath + "/soccerPlayerSeasonStat",
		},
		sports.OpGames,
	)
}
