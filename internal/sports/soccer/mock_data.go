package soccer

import "github.com/stitts-dev/livescore-service/internal/models"

// Development fixtures. Games are keyed by "{date}_soccer", stats by
// game ID, lineups by "{gameID}_{teamID}", standings by
// "{leagueID}_{seasonID}", season stats by the full four-part key.

var mockGames = map[string][]models.Game{
	"20251118_soccer": {
		{
			GameID:       "OT2218720251118001",
			LeagueID:     "OT22187",
			LeagueName:   "EPL",
			MatchDate:    "20251118",
			MatchTime:    "04:30",
			HomeTeamID:   "OT22253",
			HomeTeamName: "Arsenal",
			AwayTeamID:   "OT22260",
			AwayTeamName: "Tottenham",
			HomeScore:    2,
			AwayScore:    1,
			State:        models.StateFinished,
			ArenaName:    "Emirates Stadium",
			Compe:        "soccer",
		},
		{
			GameID:       "OT2218720251118002",
			LeagueID:     "OT22187",
			LeagueName:   "EPL",
			MatchDate:    "20251118",
			MatchTime:    "06:00",
			HomeTeamID:   "OT22255",
			HomeTeamName: "Liverpool",
			AwayTeamID:   "OT22258",
			AwayTeamName: "Manchester City",
			State:        models.StateScheduled,
			ArenaName:    "Anfield",
			Compe:        "soccer",
		},
	},
}

func mockGamesFor(date string) []models.Game {
	games := mockGames[date+"_soccer"]
	out := make([]models.Game, len(games))
	copy(out, games)
	return out
}

var mockTeamStats = map[string][]models.StatLine{
	"OT2218720251118001": {
		{
			"game_id": "OT2218720251118001", "home_team_id": "OT22253",
			"home_team_possession": "58%",
			"home_team_shoot_cn":   float64(15), "home_team_effect_shoot_cn": float64(7),
			"home_team_pass_cn": float64(612), "home_team_effect_pass_cn": float64(534),
			"home_team_foul_cn": float64(9), "home_team_corner_kick_cn": float64(6),
			"home_team_yellow_card_cn": float64(1), "home_team_red_card_cn": float64(0),
			"home_team_save_cn": float64(4),
		},
		{
			"game_id": "OT2218720251118001", "away_team_id": "OT22260",
			"away_team_possession": "42%",
			"away_team_shoot_cn":   float64(11), "away_team_effect_shoot_cn": float64(5),
			"away_team_pass_cn": float64(443), "away_team_effect_pass_cn": float64(361),
			"away_team_foul_cn": float64(13), "away_team_corner_kick_cn": float64(4),
			"away_team_yellow_card_cn": float64(3), "away_team_red_card_cn": float64(0),
			"away_team_save_cn": float64(5),
		},
	},
}

var mockPlayerStats = map[string][]models.StatLine{
	"OT2218720251118001": {
		{
			"game_id": "OT2218720251118001", "team_id": "OT22253",
			"player_id": "OT253039", "player_name": "B. Saka",
			"goal_cn": float64(1), "assist_cn": float64(0),
			"shoot_cn": float64(4), "pass_cn": float64(38), "play_min": float64(90),
		},
		{
			"game_id": "OT2218720251118001", "team_id": "OT22253",
			"player_id": "OT253044", "player_name": "M. Odegaard",
			"goal_cn": float64(0), "assist_cn": float64(2),
			"shoot_cn": float64(2), "pass_cn": float64(71), "play_min": float64(85),
		},
		{
			"game_id": "OT2218720251118001", "team_id": "OT22260",
			"player_id": "OT260018", "player_name": "H. Son",
			"goal_cn": float64(1), "assist_cn": float64(0),
			"shoot_cn": float64(3), "pass_cn": float64(29), "play_min": float64(90),
		},
	},
}

var mockLineups = map[string][]models.StatLine{
	"OT2218720251118001_OT22253": {
		{"player_id": "OT253001", "player_name": "D. Raya", "position": "GK", "starter": true},
		{"player_id": "OT253039", "player_name": "B. Saka", "position": "FW", "starter": true},
		{"player_id": "OT253044", "player_name": "M. Odegaard", "position": "MF", "starter": true},
		{"player_id": "OT253012", "player_name": "W. Saliba", "position": "DF", "starter": true},
	},
	"OT2218720251118001_OT22260": {
		{"player_id": "OT260002", "player_name": "G. Vicario", "position": "GK", "starter": true},
		{"player_id": "OT260018", "player_name": "H. Son", "position": "FW", "starter": true},
		{"player_id": "OT260024", "player_name": "J. Maddison", "position": "MF", "starter": true},
	},
}

// Standings deliberately omit goal_diff and win_rate; those are derived
// at read time by DeriveRankFields.
var mockTeamRank = map[string][]models.StatLine{
	"OT22187_2025": {
		{
			"rank": float64(1), "team_id": "OT22253", "team_name": "Arsenal",
			"games_played": float64(12), "wins": float64(9), "draws": float64(2), "losses": float64(1),
			"goals_for": float64(26), "goals_against": float64(9), "points": float64(29),
		},
		{
			"rank": float64(2), "team_id": "OT22258", "team_name": "Manchester City",
			"games_played": float64(12), "wins": float64(8), "draws": float64(1), "losses": float64(3),
			"goals_for": float64(24), "goals_against": float64(12), "points": float64(25),
		},
		{
			"rank": float64(3), "team_id": "OT22255", "team_name": "Liverpool",
			"games_played": float64(12), "wins": float64(7), "draws": float64(3), "losses": float64(2),
			"goals_for": float64(21), "goals_against": float64(11), "points": float64(24),
		},
	},
}

var mockPlayerSeasonStats = map[string][]models.StatLine{
	"OT22187_2025_OT22253_OT253039": {
		{
			"league_id": "OT22187", "season_id": "2025",
			"team_id": "OT22253", "player_id": "OT253039", "player_name": "B. Saka",
			"games_played": float64(12), "goal_cn": float64(6), "assist_cn": float64(7),
			"shoot_cn": float64(34), "effect_shoot_cn": float64(17), "play_min": float64(1042),
		},
	},
}
