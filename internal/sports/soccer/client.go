package soccer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

// LeagueIDMap translates league display names to upstream league IDs.
var LeagueIDMap = map[string]string{
	"EPL":        "OT22187",
	"La Liga":    "OT22200",
	"Bundesliga": "OT22214",
	"Serie A":    "OT22228",
	"K League 1": "KL1",
}

const DefaultLeague = "EPL"

// Client is the soccer upstream client.
type Client struct {
	*sports.Base
	mapper Mapper
}

func New(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		Base: sports.NewBase("soccer", Endpoints(sports.BasePath(cfg.Env)), cfg, logger),
	}
}

func (c *Client) Mapper() sports.Mapper { return c.mapper }

// Games returns the soccer games for a YYYYMMDD date.
func (c *Client) Games(ctx context.Context, date string) ([]models.Game, error) {
	if err := c.ValidateDate(date); err != nil {
		return nil, err
	}

	if c.UsesMock() {
		games := mockGamesFor(date)
		c.Logger().WithFields(logrus.Fields{
			"source": c.Source(),
			"date":   date,
			"count":  len(games),
		}).Info("Retrieved soccer games")
		return games, nil
	}

	params := url.Values{}
	params.Set("search_date", date)
	params.Set("compe", "soccer")
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpGames, params)
	if err != nil {
		return nil, err
	}
	games, err := sports.MapGames(response, c.mapper, c.Logger())
	if err != nil {
		return nil, err
	}
	c.Logger().WithFields(logrus.Fields{
		"source": c.Source(),
		"date":   date,
		"count":  len(games),
	}).Info("Retrieved soccer games")
	return games, nil
}

// TeamStats returns the two team stat lines for a game, home first.
func (c *Client) TeamStats(ctx context.Context, gameID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		stats, ok := mockTeamStats[gameID]
		if !ok {
			return nil, apierror.New(apierror.KindNotFound, "game %s not found", gameID)
		}
		return models.CloneStatLines(stats), nil
	}

	params := url.Values{}
	params.Set("game_id", gameID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpTeamStats, params)
	if err != nil {
		return nil, err
	}
	stats := sports.MapStatList(response, c.mapper.TeamStatsFieldMap(), c.Logger(), "team stats")
	if len(stats) == 0 {
		return nil, apierror.New(apierror.KindNotFound, "no team stats found for game %s", gameID)
	}
	return stats, nil
}

// PlayerStats returns per-player match stats for a game.
func (c *Client) PlayerStats(ctx context.Context, gameID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		stats, ok := mockPlayerStats[gameID]
		if !ok {
			return nil, apierror.New(apierror.KindNotFound, "game %s not found", gameID)
		}
		return models.CloneStatLines(stats), nil
	}

	params := url.Values{}
	params.Set("game_id", gameID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpPlayerStats, params)
	if err != nil {
		return nil, err
	}
	stats := sports.MapStatList(response, c.mapper.PlayerStatsFieldMap(), c.Logger(), "player stats")
	if len(stats) == 0 {
		return nil, apierror.New(apierror.KindNotFound, "no player stats found for game %s", gameID)
	}
	return stats, nil
}

// Lineup returns the lineup for one team in a game.
func (c *Client) Lineup(ctx context.Context, gameID, teamID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		lineup, ok := mockLineups[gameID+"_"+teamID]
		if !ok {
			return nil, apierror.New(apierror.KindNotFound,
				"lineup not found for game %s, team %s", gameID, teamID)
		}
		return models.CloneStatLines(lineup), nil
	}

	params := url.Values{}
	params.Set("game_id", gameID)
	params.Set("team_id", teamID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpLineup, params)
	if err != nil {
		return nil, err
	}
	lineup := sports.MapStatList(response, sports.FieldMap{}, c.Logger(), "lineup")
	if len(lineup) == 0 {
		return nil, apierror.New(apierror.KindNotFound,
			"no lineup found for game %s, team %s", gameID, teamID)
	}
	return lineup, nil
}

// TeamRank returns league standings for a season, with the derived
// goal-difference and win-rate fields filled in.
func (c *Client) TeamRank(ctx context.Context, seasonID, leagueID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		rankings, ok := mockTeamRank[leagueID+"_"+seasonID]
		if !ok {
			c.Logger().WithFields(logrus.Fields{
				"league_id": leagueID,
				"season_id": seasonID,
			}).Warn("Team rankings not found")
			return []models.StatLine{}, nil
		}
		return DeriveRankFields(models.CloneStatLines(rankings)), nil
	}

	params := url.Values{}
	params.Set("league_id", leagueID)
	params.Set("season_id", seasonID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpTeamRank, params)
	if err != nil {
		return nil, err
	}
	rankings := sports.MapStatList(response, sports.FieldMap{}, c.Logger(), "team rankings")
	return DeriveRankFields(rankings), nil
}

// PlayerSeasonStats returns a player's season aggregates.
func (c *Client) PlayerSeasonStats(ctx context.Context, leagueID, seasonID, teamID, playerID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		key := fmt.Sprintf("%s_%s_%s_%s", leagueID, seasonID, teamID, playerID)
		stats, ok := mockPlayerSeasonStats[key]
		if !ok {
			return nil, apierror.New(apierror.KindNotFound,
				"player season stats not found for league=%s, season=%s, team=%s, player=%s",
				leagueID, seasonID, teamID, playerID)
		}
		return models.CloneStatLines(stats), nil
	}

	params := url.Values{}
	params.Set("league_id", leagueID)
	params.Set("season_id", seasonID)
	params.Set("team_id", teamID)
	params.Set("player_id", playerID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpPlayerSeasonStats, params)
	if err != nil {
		return nil, err
	}
	stats := sports.MapStatList(response, sports.FieldMap{}, c.Logger(), "player season stats")
	if len(stats) == 0 {
		return nil, apierror.New(apierror.KindNotFound,
			"no player season stats found for league=%s, season=%s, team=%s, player=%s",
			leagueID, seasonID, teamID, playerID)
	}
	return stats, nil
}
