package volleyball

import "github.com/stitts-dev/livescore-service/internal/models"

// Development fixtures keyed by "{date}_volleyball" and game ID.

var mockGames = map[string][]models.Game{
	"20251118_volleyball": {
		{
			GameID:       "VLM20251118001",
			LeagueID:     "VLM",
			LeagueName:   "V-League Men",
			MatchDate:    "20251118",
			MatchTime:    "19:00",
			HomeTeamID:   "VL01",
			HomeTeamName: "Incheon",
			AwayTeamID:   "VL04",
			AwayTeamName: "Daejeon",
			HomeScore:    3,
			AwayScore:    1,
			State:        models.StateFinished,
			ArenaName:    "Gyeyang Gymnasium",
			Compe:        "volleyball",
		},
	},
}

func mockGamesFor(date string) []models.Game {
	games := mockGames[date+"_volleyball"]
	out := make([]models.Game, len(games))
	copy(out, games)
	return out
}

var mockTeamStats = map[string][]models.StatLine{
	"VLM20251118001": {
		{
			"game_id": "VLM20251118001", "home_team_id": "VL01",
			"home_team_attack_cn": float64(52), "home_team_attack_try_cn": float64(98),
			"home_team_block_cn": float64(9), "home_team_serve_ace_cn": float64(6),
			"home_team_serve_error_cn": float64(11), "home_team_dig_cn": float64(41),
			"home_team_error_cn": float64(19),
		},
		{
			"game_id": "VLM20251118001", "away_team_id": "VL04",
			"away_team_attack_cn": float64(44), "away_team_attack_try_cn": float64(102),
			"away_team_block_cn": float64(6), "away_team_serve_ace_cn": float64(3),
			"away_team_serve_error_cn": float64(14), "away_team_dig_cn": float64(38),
			"away_team_error_cn": float64(26),
		},
	},
}

var mockPlayerStats = map[string][]models.StatLine{
	"VLM20251118001": {
		{
			"game_id": "VLM20251118001", "team_id": "VL01",
			"player_id": "VL0109", "player_name": "Kim M.",
			"attack_cn": float64(21), "block_cn": float64(3),
			"serve_ace_cn": float64(2), "dig_cn": float64(8), "tot_score": float64(26),
		},
		{
			"game_id": "VLM20251118001", "team_id": "VL04",
			"player_id": "VL0411", "player_name": "Lee S.",
			"attack_cn": float64(18), "block_cn": float64(2),
			"serve_ace_cn": float64(1), "dig_cn": float64(11), "tot_score": float64(21),
		},
	},
}
