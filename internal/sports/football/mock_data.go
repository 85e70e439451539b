package football

import "github.com/stitts-dev/livescore-service/internal/models"

// Development fixtures keyed by "{date}_football" and game ID.

var mockGames = map[string][]models.Game{
	"20251118_football": {
		{
			GameID:       "OT4110120251118001",
			LeagueID:     "OT41101",
			LeagueName:   "NFL",
			MatchDate:    "20251118",
			MatchTime:    "10:15",
			HomeTeamID:   "OT41122",
			HomeTeamName: "Philadelphia",
			AwayTeamID:   "OT41130",
			AwayTeamName: "Dallas",
			HomeScore:    27,
			AwayScore:    20,
			State:        models.StateFinished,
			ArenaName:    "Lincoln Financial Field",
			Compe:        "football",
		},
	},
}

func mockGamesFor(date string) []models.Game {
	games := mockGames[date+"_football"]
	out := make([]models.Game, len(games))
	copy(out, games)
	return out
}

var mockTeamStats = map[string][]models.StatLine{
	"OT4110120251118001": {
		{
			"game_id": "OT4110120251118001", "home_team_id": "OT41122",
			"home_team_total_yards": float64(398), "home_team_passing_yards": float64(264),
			"home_team_rushing_yards": float64(134), "home_team_first_downs": float64(22),
			"home_team_turnovers": float64(1), "home_team_sacks": float64(4),
			"home_team_possession": "33:12",
		},
		{
			"game_id": "OT4110120251118001", "away_team_id": "OT41130",
			"away_team_total_yards": float64(311), "away_team_passing_yards": float64(245),
			"away_team_rushing_yards": float64(66), "away_team_first_downs": float64(18),
			"away_team_turnovers": float64(2), "away_team_sacks": float64(2),
			"away_team_possession": "26:48",
		},
	},
}

var mockPlayerStats = map[string][]models.StatLine{
	"OT4110120251118001": {
		{
			"game_id": "OT4110120251118001", "team_id": "OT41122",
			"player_id": "OT4112207", "player_name": "J. Hurts",
			"passing_yards": float64(264), "passing_td": float64(2),
			"rushing_yards": float64(45), "rushing_td": float64(1), "interceptions": float64(0),
		},
		{
			"game_id": "OT4110120251118001", "team_id": "OT41130",
			"player_id": "OT4113004", "player_name": "D. Prescott",
			"passing_yards": float64(245), "passing_td": float64(2),
			"rushing_yards": float64(12), "rushing_td": float64(0), "interceptions": float64(2),
		},
	},
}
