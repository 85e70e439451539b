// Package services contains the orchestration layer between the HTTP
// handlers and the per-sport upstream clients.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/cache"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/models"
	"github.com/stitts-dev/livescore-service/internal/sports"
	"github.com/stitts-dev/livescore-service/internal/sports/registry"
)

// detailsScanDays bounds the backward search for a game when the
// caller does not say which day it was played.
const detailsScanDays = 7

// GameService serves game lists and per-game detail aggregates. Game
// lists go through the cache; per-game stats always hit the client.
type GameService struct {
	registry *registry.Registry
	cache    *cache.GameCache
	cfg      *config.Config
	log      *logrus.Logger

	mu      sync.Mutex
	clients map[string]sports.Client
	now     func() time.Time
}

func NewGameService(reg *registry.Registry, gameCache *cache.GameCache, cfg *config.Config, log *logrus.Logger) *GameService {
	return &GameService{
		registry: reg,
		cache:    gameCache,
		cfg:      cfg,
		log:      log,
		clients:  make(map[string]sports.Client),
		now:      time.Now,
	}
}

// Registry exposes the sport registry for listing endpoints.
func (s *GameService) Registry() *registry.Registry { return s.registry }

// Cache exposes the game cache for introspection endpoints.
func (s *GameService) Cache() *cache.GameCache { return s.cache }

// client returns the memoized client for a sport, constructing it on
// first use so breaker and limiter state survive across requests.
func (s *GameService) client(sport string) (sports.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.clients[sport]; ok {
		return c, nil
	}
	c, err := s.registry.CreateClient(sport, s.cfg, s.log)
	if err != nil {
		return nil, err
	}
	s.clients[sport] = c
	return c, nil
}

// GamesByDate returns a day's games for a sport. Live-mode reads go
// through the cache; forceRefresh invalidates first. Mock-mode reads
// bypass the cache entirely so fixtures never mask each other.
func (s *GameService) GamesByDate(ctx context.Context, date, sport string, forceRefresh bool) ([]models.Game, error) {
	client, err := s.client(sport)
	if err != nil {
		return nil, err
	}

	if client.UsesMock() {
		return client.Games(ctx, date)
	}

	if forceRefresh {
		s.cache.Invalidate(date, sport)
	} else if cached := s.cache.GetCachedGames(date, sport); cached != nil {
		return cached, nil
	}

	games, err := client.Games(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cache.CacheGames(date, sport, games)
	return games, nil
}

// findGame locates a game by ID. With a date it looks only at that day;
// without one it scans backward from today. During a scan, a day whose
// fetch fails is skipped so it cannot hide the game on an earlier day.
func (s *GameService) findGame(ctx context.Context, sport, gameID, date string) (*models.Game, error) {
	dates := []string{}
	if date != "" {
		dates = append(dates, date)
	} else {
		today := s.now()
		for i := 0; i < detailsScanDays; i++ {
			dates = append(dates, today.AddDate(0, 0, -i).Format("20060102"))
		}
	}

	for _, d := range dates {
		if g := s.cache.FindGameInCache(d, sport, gameID); g != nil {
			return g, nil
		}
		games, err := s.GamesByDate(ctx, d, sport, false)
		if err != nil {
			if date != "" {
				return nil, err
			}
			s.log.WithFields(logrus.Fields{
				"sport": sport,
				"date":  d,
			}).WithError(err).Warn("Skipping day in game scan")
			continue
		}
		for i := range games {
			if games[i].GameID == gameID {
				return &games[i], nil
			}
		}
	}
	return nil, apierror.New(apierror.KindNotFound, "game %s not found for %s", gameID, sport)
}

// GameDetails assembles the full per-game view: team boxes, player
// boxes split by side, and the sport's ordered display rows. The two
// stat fetches run concurrently.
func (s *GameService) GameDetails(ctx context.Context, sport, gameID, date string) (*models.GameDetails, error) {
	client, err := s.client(sport)
	if err != nil {
		return nil, err
	}

	game, err := s.findGame(ctx, sport, gameID, date)
	if err != nil {
		return nil, err
	}
	if !game.State.Finished() {
		return nil, apierror.New(apierror.KindValidation,
			"game %s has not finished; details are only available for finished games", gameID)
	}

	var (
		wg          sync.WaitGroup
		teamStats   []models.StatLine
		playerStats []models.StatLine
		teamErr     error
		playerErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		teamStats, teamErr = client.TeamStats(ctx, gameID)
	}()
	go func() {
		defer wg.Done()
		playerStats, playerErr = client.PlayerStats(ctx, gameID)
	}()
	wg.Wait()

	if teamErr != nil {
		return nil, teamErr
	}
	if playerErr != nil {
		return nil, playerErr
	}
	if len(teamStats) < 2 {
		return nil, apierror.New(apierror.KindNotFound,
			"incomplete team stats for game %s", gameID)
	}

	homePlayers := make([]models.StatLine, 0, len(playerStats))
	awayPlayers := make([]models.StatLine, 0, len(playerStats))
	for _, p := range playerStats {
		switch p.String("team_id") {
		case game.HomeTeamID:
			homePlayers = append(homePlayers, p)
		case game.AwayTeamID:
			awayPlayers = append(awayPlayers, p)
		}
	}

	return &models.GameDetails{
		GameID: game.GameID,
		Sport:  sport,
		League: game.LeagueName,
		Date:   displayDate(game.MatchDate),
		State:  game.State,
		HomeTeam: models.TeamBox{
			TeamID:  game.HomeTeamID,
			Name:    game.HomeTeamName,
			Score:   game.HomeScore,
			Players: homePlayers,
		},
		AwayTeam: models.TeamBox{
			TeamID:  game.AwayTeamID,
			Name:    game.AwayTeamName,
			Score:   game.AwayScore,
			Players: awayPlayers,
		},
		GameRecords: client.Mapper().BuildGameRecords(teamStats[0], teamStats[1]),
	}, nil
}

// Lineup returns a team's lineup for sports that publish one.
func (s *GameService) Lineup(ctx context.Context, sport, gameID, teamID string) ([]models.StatLine, error) {
	client, err := s.client(sport)
	if err != nil {
		return nil, err
	}
	provider, ok := client.(sports.LineupProvider)
	if !ok {
		return nil, apierror.New(apierror.KindValidation,
			"lineup is not supported for %s", sport)
	}
	return provider.Lineup(ctx, gameID, teamID)
}

// TeamRank returns league standings for sports that publish them.
func (s *GameService) TeamRank(ctx context.Context, sport, seasonID, leagueID string) ([]models.StatLine, error) {
	client, err := s.client(sport)
	if err != nil {
		return nil, err
	}
	provider, ok := client.(sports.RankProvider)
	if !ok {
		return nil, apierror.New(apierror.KindValidation,
			"team rankings are not supported for %s", sport)
	}
	return provider.TeamRank(ctx, seasonID, leagueID)
}

// TeamVsList returns head-to-head data for sports that publish it.
func (s *GameService) TeamVsList(ctx context.Context, sport string, q sports.TeamVsQuery) (models.StatLine, error) {
	client, err := s.client(sport)
	if err != nil {
		return nil, err
	}
	provider, ok := client.(sports.HeadToHeadProvider)
	if !ok {
		return nil, apierror.New(apierror.KindValidation,
			"head-to-head comparison is not supported for %s", sport)
	}
	return provider.TeamVsList(ctx, q)
}

// PlayerSeasonStats returns season aggregates for sports that publish
// them.
func (s *GameService) PlayerSeasonStats(ctx context.Context, sport, leagueID, seasonID, teamID, playerID string) ([]models.StatLine, error) {
	client, err := s.client(sport)
	if err != nil {
		return nil, err
	}
	provider, ok := client.(sports.SeasonStatsProvider)
	if !ok {
		return nil, apierror.New(apierror.KindValidation,
			"player season stats are not supported for %s", sport)
	}
	return provider.PlayerSeasonStats(ctx, leagueID, seasonID, teamID, playerID)
}

// displayDate renders YYYYMMDD as MM.DD for detail views.
func displayDate(matchDate string) string {
	if len(matchDate) != 8 {
		return matchDate
	}
	return matchDate[4:6] + "." + matchDate[6:8]
}
