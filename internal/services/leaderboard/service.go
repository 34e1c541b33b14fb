package leaderboard

import (
	"sort"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Rank builds the leaderboard from profiles, highest score first.
// Equal scores keep the order the profiles were given in.
func Rank(profiles []*model.Profile) []model.PlayerScore {
	scores := make([]model.PlayerScore, 0, len(profiles))
	for _, p := range profiles {
		scores = append(scores, model.PlayerScore{
			Name:       p.Name,
			Score:      p.Score,
			TotalGames: p.TotalGames,
			TotalWins:  p.TotalWins,
			WinRate:    WinRate(p.TotalWins, p.TotalGames),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return scores
}

// WinRate returns wins as a percentage of games, or 0 with no games played
func WinRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}
