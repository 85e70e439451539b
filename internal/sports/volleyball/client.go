package volleyball

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
)

// LeagueIDMap translates league display names to upstream league IDs.
var LeagueIDMap = map[string]string{
	"V-League Men":   "VLM",
	"V-League Women": "VLW",
}

const DefaultLeague = "V-League Men"

// Client is the volleyball upstream client.
type Client struct {
	*sports.Base
	mapper Mapper
}

func New(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		Base: sports.NewBase("volleyball", Endpoints(sports.BasePath(cfg.Env)), cfg, logger),
	}
}

func (c *Client) Mapper() sports.Mapper { return c.mapper }

// Games returns the volleyball games for a YYYYMMDD date.
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
		}).Info("Retrieved volleyball games")
		return games, nil
	}

	params := url.Values{}
	params.Set("search_date", date)
	params.Set("compe", "volleyball")
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
	}).Info("Retrieved volleyball games")
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

// PlayerStats returns per-player box scores for a game.
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
