package basketball

import "github.com/stitts-dev/livescore-service/internal/models"

// Development fixtures keyed the same way the live API is queried:
// games by "{date}_basketball", stats by game ID, lineups by
// "{gameID}_{teamID}", standings by "{seasonID}_{leagueID}".

var mockGames = map[string][]models.Game{
	"20251118_basketball": {
		{
			GameID:       "OT31320251118001",
			LeagueID:     "OT313",
			LeagueName:   "NBA",
			MatchDate:    "20251118",
			MatchTime:    "09:00",
			HomeTeamID:   "OT31246",
			HomeTeamName: "Boston",
			AwayTeamID:   "OT31263",
			AwayTeamName: "New York",
			HomeScore:    112,
			AwayScore:    104,
			State:        models.StateFinished,
			ArenaName:    "TD Garden",
			Compe:        "basketball",
		},
		{
			GameID:       "OT31320251118002",
			LeagueID:     "OT313",
			LeagueName:   "NBA",
			MatchDate:    "20251118",
			MatchTime:    "11:30",
			HomeTeamID:   "OT31250",
			HomeTeamName: "Denver",
			AwayTeamID:   "OT31255",
			AwayTeamName: "Oklahoma City",
			HomeScore:    58,
			AwayScore:    61,
			State:        models.StateInProgress,
			ArenaName:    "Ball Arena",
			Compe:        "basketball",
		},
		{
			GameID:       "OT31320251118003",
			LeagueID:     "OT313",
			LeagueName:   "NBA",
			MatchDate:    "20251118",
			MatchTime:    "12:00",
			HomeTeamID:   "OT31254",
			HomeTeamName: "LA Lakers",
			AwayTeamID:   "OT31260",
			AwayTeamName: "Golden State",
			State:        models.StateScheduled,
			ArenaName:    "Crypto.com Arena",
			Compe:        "basketball",
		},
	},
}

func mockGamesFor(date string) []models.Game {
	games := mockGames[date+"_basketball"]
	out := make([]models.Game, len(games))
	copy(out, games)
	return out
}

// Team stats come back home side first, matching the live endpoint.
var mockTeamStats = map[string][]models.StatLine{
	"OT31320251118001": {
		{
			"game_id": "OT31320251118001", "home_team_id": "OT31246",
			"home_team_fgm_cn": float64(42), "home_team_fga_cn": float64(88),
			"home_team_pgm3_cn": float64(15), "home_team_pga3_cn": float64(39),
			"home_team_ftm_cn": float64(13), "home_team_fta_cn": float64(16),
			"home_team_oreb_cn": float64(10), "home_team_dreb_cn": float64(34),
			"home_team_assist_cn": float64(27), "home_team_turnover_cn": float64(11),
			"home_team_steal_cn": float64(8), "home_team_block_cn": float64(5),
			"home_team_pfoul_cn": float64(17),
		},
		{
			"game_id": "OT31320251118001", "away_team_id": "OT31263",
			"away_team_fgm_cn": float64(38), "away_team_fga_cn": float64(85),
			"away_team_pgm3_cn": float64(12), "away_team_pga3_cn": float64(35),
			"away_team_ftm_cn": float64(16), "away_team_fta_cn": float64(20),
			"away_team_oreb_cn": float64(8), "away_team_dreb_cn": float64(31),
			"away_team_assist_cn": float64(22), "away_team_turnover_cn": float64(14),
			"away_team_steal_cn": float64(6), "away_team_block_cn": float64(3),
			"away_team_pfoul_cn": float64(19),
		},
	},
	"OT31320251118002": {
		{
			"game_id": "OT31320251118002", "home_team_id": "OT31250",
			"home_team_fgm_cn": float64(22), "home_team_fga_cn": float64(46),
			"home_team_pgm3_cn": float64(7), "home_team_pga3_cn": float64(19),
			"home_team_ftm_cn": float64(7), "home_team_fta_cn": float64(9),
			"home_team_oreb_cn": float64(5), "home_team_dreb_cn": float64(16),
			"home_team_assist_cn": float64(14), "home_team_turnover_cn": float64(6),
			"home_team_steal_cn": float64(4), "home_team_block_cn": float64(2),
			"home_team_pfoul_cn": float64(9),
		},
		{
			"game_id": "OT31320251118002", "away_team_id": "OT31255",
			"away_team_fgm_cn": float64(24), "away_team_fga_cn": float64(48),
			"away_team_pgm3_cn": float64(8), "away_team_pga3_cn": float64(21),
			"away_team_ftm_cn": float64(5), "away_team_fta_cn": float64(6),
			"away_team_oreb_cn": float64(4), "away_team_dreb_cn": float64(18),
			"away_team_assist_cn": float64(16), "away_team_turnover_cn": float64(7),
			"away_team_steal_cn": float64(5), "away_team_block_cn": float64(3),
			"away_team_pfoul_cn": float64(8),
		},
	},
}

var mockPlayerStats = map[string][]models.StatLine{
	"OT31320251118001": {
		{
			"game_id": "OT31320251118001", "team_id": "OT31246",
			"player_id": "OT3124601", "player_name": "J. Tatum",
			"tot_score": float64(31), "rebound_cn": float64(9),
			"assist_cn": float64(6), "steal_cn": float64(2),
			"block_cn": float64(1), "play_min": "36:42",
		},
		{
			"game_id": "OT31320251118001", "team_id": "OT31246",
			"player_id": "OT3124602", "player_name": "J. Brown",
			"tot_score": float64(24), "rebound_cn": float64(5),
			"assist_cn": float64(4), "steal_cn": float64(3),
			"block_cn": float64(0), "play_min": "34:10",
		},
		{
			"game_id": "OT31320251118001", "team_id": "OT31263",
			"player_id": "OT3126301", "player_name": "J. Brunson",
			"tot_score": float64(28), "rebound_cn": float64(3),
			"assist_cn": float64(8), "steal_cn": float64(1),
			"block_cn": float64(0), "play_min": "37:55",
		},
		{
			"game_id": "OT31320251118001", "team_id": "OT31263",
			"player_id": "OT3126302", "player_name": "K. Towns",
			"tot_score": float64(22), "rebound_cn": float64(12),
			"assist_cn": float64(3), "steal_cn": float64(0),
			"block_cn": float64(2), "play_min": "35:03",
		},
	},
}

var mockLineups = map[string][]models.StatLine{
	"OT31320251118001_OT31246": {
		{"player_id": "OT3124601", "player_name": "J. Tatum", "position": "F", "starter": true},
		{"player_id": "OT3124602", "player_name": "J. Brown", "position": "G", "starter": true},
		{"player_id": "OT3124603", "player_name": "D. White", "position": "G", "starter": true},
		{"player_id": "OT3124604", "player_name": "K. Porzingis", "position": "C", "starter": true},
		{"player_id": "OT3124605", "player_name": "S. Hauser", "position": "F", "starter": true},
	},
	"OT31320251118001_OT31263": {
		{"player_id": "OT3126301", "player_name": "J. Brunson", "position": "G", "starter": true},
		{"player_id": "OT3126302", "player_name": "K. Towns", "position": "C", "starter": true},
		{"player_id": "OT3126303", "player_name": "M. Bridges", "position": "F", "starter": true},
		{"player_id": "OT3126304", "player_name": "O. Anunoby", "position": "F", "starter": true},
		{"player_id": "OT3126305", "player_name": "J. Hart", "position": "G", "starter": true},
	},
}

var mockTeamRank = map[string][]models.StatLine{
	"2025_OT313": {
		{"rank": float64(1), "team_id": "OT31255", "team_name": "Oklahoma City", "wins": float64(14), "losses": float64(2), "win_pct": "0.875"},
		{"rank": float64(2), "team_id": "OT31246", "team_name": "Boston", "wins": float64(12), "losses": float64(4), "win_pct": "0.750"},
		{"rank": float64(3), "team_id": "OT31250", "team_name": "Denver", "wins": float64(11), "losses": float64(5), "win_pct": "0.688"},
		{"rank": float64(4), "team_id": "OT31263", "team_name": "New York", "wins": float64(10), "losses": float64(6), "win_pct": "0.625"},
	},
}

var mockTeamVsList = map[string]models.StatLine{
	"OT31320251118001": {
		"game_id":        "OT31320251118001",
		"home_team_id":   "OT31246",
		"away_team_id":   "OT31263",
		"total_meetings": float64(8),
		"home_wins":      float64(5),
		"away_wins":      float64(3),
		"last_meeting":   "20251022",
	},
}
