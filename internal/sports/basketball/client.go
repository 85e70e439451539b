package basketball

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
	"NBA":  "OT313",
	"KBL":  "KBL",
	"WKBL": "WKBL",
}

// DefaultLeague is the league assumed when a query names none.
const DefaultLeague = "NBA"

// Client is the basketball upstream client.
type Client struct {
	*sports.Base
	mapper Mapper
}

func New(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		Base: sports.NewBase("basketball", Endpoints(sports.BasePath(cfg.Env)), cfg, logger),
	}
}

func (c *Client) Mapper() sports.Mapper { return c.mapper }

// Games returns the basketball games for a YYYYMMDD date.
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
		}).Info("Retrieved basketball games")
		return games, nil
	}

	params := url.Values{}
	params.Set("search_date", date)
	params.Set("compe", "basketball")
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
	}).Info("Retrieved basketball games")
	return games, nil
}

// TeamStats returns the two team stat lines for a game, home first.
func (c *Client) TeamStats(ctx context.Context, gameID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		stats, ok := mockTeamStats[gameID]
		if !ok {
			return nil, c.mockStatsMissing(gameID, "team stats")
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

// PlayerStats returns per-player box scores for a game. The upstream
// player endpoint is keyed by team, so the live path first reads team
// stats to discover both team IDs, then fetches each side and
// concatenates home before away.
func (c *Client) PlayerStats(ctx context.Context, gameID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		stats, ok := mockPlayerStats[gameID]
		if !ok {
			return nil, c.mockStatsMissing(gameID, "player stats")
		}
		return models.CloneStatLines(stats), nil
	}

	teamStats, err := c.TeamStats(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(teamStats) < 2 {
		return nil, apierror.New(apierror.KindNotFound,
			"could not get team IDs for game %s", gameID)
	}
	homeTeamID := teamStats[0].String("home_team_id")
	awayTeamID := teamStats[1].String("away_team_id")
	if homeTeamID == "" || awayTeamID == "" {
		return nil, apierror.New(apierror.KindNotFound,
			"team IDs not found in team stats for game %s", gameID)
	}

	var all []models.StatLine
	for _, teamID := range []string{homeTeamID, awayTeamID} {
		params := url.Values{}
		params.Set("game_id", gameID)
		params.Set("team_id", teamID)
		params.Set("fmt", "json")

		response, err := c.GetJSON(ctx, sports.OpPlayerStats, params)
		if err != nil {
			return nil, err
		}
		all = append(all, sports.MapStatList(response, c.mapper.PlayerStatsFieldMap(), c.Logger(), "player stats")...)
	}
	if len(all) == 0 {
		return nil, apierror.New(apierror.KindNotFound, "no player stats found for game %s", gameID)
	}
	return all, nil
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

// TeamRank returns league standings for a season.
func (c *Client) TeamRank(ctx context.Context, seasonID, leagueID string) ([]models.StatLine, error) {
	if c.UsesMock() {
		rankings, ok := mockTeamRank[seasonID+"_"+leagueID]
		if !ok {
			return nil, apierror.New(apierror.KindNotFound,
				"rankings not found for season %s, league %s", seasonID, leagueID)
		}
		return models.CloneStatLines(rankings), nil
	}

	params := url.Values{}
	params.Set("season_id", seasonID)
	params.Set("league_id", leagueID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpTeamRank, params)
	if err != nil {
		return nil, err
	}
	rankings := sports.MapStatList(response, sports.FieldMap{}, c.Logger(), "team rankings")
	if len(rankings) == 0 {
		return nil, apierror.New(apierror.KindNotFound,
			"no rankings found for season %s, league %s", seasonID, leagueID)
	}
	return rankings, nil
}

// TeamVsList returns head-to-head comparison data for a matchup.
func (c *Client) TeamVsList(ctx context.Context, q sports.TeamVsQuery) (models.StatLine, error) {
	if c.UsesMock() {
		data, ok := mockTeamVsList[q.GameID]
		if !ok {
			c.Logger().WithField("game_id", q.GameID).Warn("Team vs list not found")
			return nil, apierror.New(apierror.KindNotFound,
				"team vs list not found for game %s", q.GameID)
		}
		return data.Clone(), nil
	}

	params := url.Values{}
	params.Set("season_id", q.SeasonID)
	params.Set("league_id", q.LeagueID)
	params.Set("game_id", q.GameID)
	params.Set("home_team_id", q.HomeTeamID)
	params.Set("away_team_id", q.AwayTeamID)
	params.Set("fmt", "json")

	response, err := c.GetJSON(ctx, sports.OpTeamVsList, params)
	if err != nil {
		return nil, err
	}
	record, ok := response.(map[string]interface{})
	if !ok || len(record) == 0 {
		return nil, apierror.New(apierror.KindNotFound,
			"no team vs list found for game %s", q.GameID)
	}
	return models.StatLine(record), nil
}

// mockStatsMissing distinguishes "game exists but has not started" from
// a genuinely unknown game ID.
func (c *Client) mockStatsMissing(gameID, what string) error {
	for _, games := range mockGames {
		for _, g := range games {
			if g.GameID == gameID && g.State == models.StateScheduled {
				return apierror.New(apierror.KindNotFound,
					"game %s has not started yet, %s not available", gameID, what)
			}
		}
	}
	return apierror.New(apierror.KindNotFound, "game %s not found", gameID)
}
