// Package handlers wires the HTTP surface to the game service.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/services"
	"github.com/stitts-dev/livescore-service/internal/sports"
	"github.com/stitts-dev/livescore-service/internal/utils"
)

// SportsHandler handles the livescore API endpoints
type SportsHandler struct {
	service *services.GameService
	logger  *logrus.Logger
}

// NewSportsHandler creates a new sports handler
func NewSportsHandler(service *services.GameService, logger *logrus.Logger) *SportsHandler {
	return &SportsHandler{
		service: service,
		logger:  logger,
	}
}

// ListSports returns the registered sport names
func (h *SportsHandler) ListSports(c *gin.Context) {
	utils.SendSuccess(c, gin.H{
		"sports": h.service.Registry().Sports(),
	})
}

// GetGames returns the games for a date and sport.
// GET /api/v1/games?date=YYYYMMDD&sport=basketball&refresh=true
func (h *SportsHandler) GetGames(c *gin.Context) {
	date := c.Query("date")
	sport := c.Query("sport")
	if date == "" || sport == "" {
		utils.SendBadRequest(c, "date and sport query parameters are required")
		return
	}
	forceRefresh := c.Query("refresh") == "true"

	games, err := h.service.GamesByDate(c.Request.Context(), date, sport, forceRefresh)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"date":  date,
			"sport": sport,
		}).Error("Failed to get games")
		utils.SendAPIError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"date":  date,
		"sport": sport,
		"count": len(games),
		"games": games,
	})
}

// GetGameDetails returns the aggregated view of one finished game.
// GET /api/v1/games/:gameID/details?sport=basketball&date=YYYYMMDD
func (h *SportsHandler) GetGameDetails(c *gin.Context) {
	gameID := c.Param("gameID")
	sport := c.Query("sport")
	if sport == "" {
		utils.SendBadRequest(c, "sport query parameter is required")
		return
	}
	date := c.Query("date")

	details, err := h.service.GameDetails(c.Request.Context(), sport, gameID, date)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"game_id": gameID,
			"sport":   sport,
		}).Error("Failed to get game details")
		utils.SendAPIError(c, err)
		return
	}

	utils.SendSuccess(c, details)
}

// GetLineup returns a team's lineup for a game.
// GET /api/v1/games/:gameID/lineup?sport=soccer&team_id=OT22253
func (h *SportsHandler) GetLineup(c *gin.Context) {
	gameID := c.Param("gameID")
	sport := c.Query("sport")
	teamID := c.Query("team_id")
	if sport == "" || teamID == "" {
		utils.SendBadRequest(c, "sport and team_id query parameters are required")
		return
	}

	lineup, err := h.service.Lineup(c.Request.Context(), sport, gameID, teamID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"game_id": gameID,
			"sport":   sport,
			"team_id": teamID,
		}).Error("Failed to get lineup")
		utils.SendAPIError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"game_id": gameID,
		"team_id": teamID,
		"lineup":  lineup,
	})
}

// GetTeamRank returns league standings.
// GET /api/v1/rankings?sport=soccer&season_id=2025&league_id=OT22187
func (h *SportsHandler) GetTeamRank(c *gin.Context) {
	sport := c.Query("sport")
	seasonID := c.Query("season_id")
	leagueID := c.Query("league_id")
	if sport == "" || seasonID == "" || leagueID == "" {
		utils.SendBadRequest(c, "sport, season_id and league_id query parameters are required")
		return
	}

	rankings, err := h.service.TeamRank(c.Request.Context(), sport, seasonID, leagueID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"sport":     sport,
			"season_id": seasonID,
			"league_id": leagueID,
		}).Error("Failed to get team rankings")
		utils.SendAPIError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"season_id": seasonID,
		"league_id": leagueID,
		"rankings":  rankings,
	})
}

// GetTeamVs returns head-to-head comparison data for a matchup.
// GET /api/v1/games/:gameID/head-to-head?sport=basketball&...
func (h *SportsHandler) GetTeamVs(c *gin.Context) {
	sport := c.Query("sport")
	if sport == "" {
		utils.SendBadRequest(c, "sport query parameter is required")
		return
	}
	q := sports.TeamVsQuery{
		GameID:     c.Param("gameID"),
		SeasonID:   c.Query("season_id"),
		LeagueID:   c.Query("league_id"),
		HomeTeamID: c.Query("home_team_id"),
		AwayTeamID: c.Query("away_team_id"),
	}

	data, err := h.service.TeamVsList(c.Request.Context(), sport, q)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"game_id": q.GameID,
			"sport":   sport,
		}).Error("Failed to get head-to-head data")
		utils.SendAPIError(c, err)
		return
	}

	utils.SendSuccess(c, data)
}

// GetPlayerSeasonStats returns a player's season aggregates.
// GET /api/v1/players/:playerID/season-stats?sport=soccer&league_id=...&season_id=...&team_id=...
func (h *SportsHandler) GetPlayerSeasonStats(c *gin.Context) {
	playerID := c.Param("playerID")
	sport := c.Query("sport")
	leagueID := c.Query("league_id")
	seasonID := c.Query("season_id")
	teamID := c.Query("team_id")
	if sport == "" || leagueID == "" || seasonID == "" || teamID == "" {
		utils.SendBadRequest(c, "sport, league_id, season_id and team_id query parameters are required")
		return
	}

	stats, err := h.service.PlayerSeasonStats(c.Request.Context(), sport, leagueID, seasonID, teamID, playerID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"player_id": playerID,
			"sport":     sport,
		}).Error("Failed to get player season stats")
		utils.SendAPIError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"player_id": playerID,
		"stats":     stats,
	})
}

// GetCacheInfo returns the cache bounds and current size.
// GET /api/v1/cache
func (h *SportsHandler) GetCacheInfo(c *gin.Context) {
	info := h.service.Cache().GetInfo()
	utils.SendSuccess(c, gin.H{
		"current_size": info.CurrentSize,
		"max_size":     info.MaxSize,
		"ttl_seconds":  int(info.TTL.Seconds()),
	})
}

// ClearCache drops every cached day.
// DELETE /api/v1/cache
func (h *SportsHandler) ClearCache(c *gin.Context) {
	h.service.Cache().Clear()
	utils.SendSuccessWithMessage(c, nil, "cache cleared")
}
