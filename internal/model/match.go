package model

import "fmt"

// MatchResult holds the final tallies of a completed match
type MatchResult struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
	// Streak is the consecutive-win count at the end of the match
	Streak int `json:"streak"`
}

// Rounds returns the number of rounds played
func (r MatchResult) Rounds() int {
	return r.Wins + r.Losses + r.Ties
}

// Summary returns the line recorded in a profile's game history
func (r MatchResult) Summary() string {
	return fmt.Sprintf("Player Wins: %d, Computer Wins: %d, Ties: %d", r.Wins, r.Losses, r.Ties)
}

// Record adds a round outcome to the tallies
func (r *MatchResult) Record(o Outcome) {
	switch o {
	case OutcomeWin:
		r.Wins++
		r.Streak++
	case OutcomeLoss:
		r.Losses++
		r.Streak = 0
	default:
		r.Ties++
		r.Streak = 0
	}
}
