package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// ProfileView is the printable form of a profile; the password is never shown
type ProfileView struct {
	Name         string            `json:"name"`
	Score        int               `json:"score"`
	TotalGames   int               `json:"total_games"`
	TotalWins    int               `json:"total_wins"`
	Achievements []AchievementView `json:"achievements"`
	Friends      []string          `json:"friends"`
	GameHistory  []string          `json:"game_history"`
	Messages     []string          `json:"messages"`
}

// AchievementView pairs an achievement with its unlock state
type AchievementView struct {
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Leaderboard is the printable ranking
type Leaderboard struct {
	Entries []model.PlayerScore `json:"entries"`
}

// Messages is a printable message list
type Messages struct {
	Items []string `json:"messages"`
}

// NewProfileView builds the printable form of p
func NewProfileView(p *model.Profile) ProfileView {
	v := ProfileView{
		Name:        p.Name,
		Score:       p.Score,
		TotalGames:  p.TotalGames,
		TotalWins:   p.TotalWins,
		Friends:     nonNil(p.Friends),
		GameHistory: nonNil(p.GameHistory),
		Messages:    nonNil(p.Messages),
	}
	for _, id := range model.Achievements {
		v.Achievements = append(v.Achievements, AchievementView{
			Description: id.Description(),
			Unlocked:    p.Achievements.Unlocked(id),
		})
	}
	return v
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ProfileView:
		o.printProfile(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case Messages:
		o.printMessages(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printProfile(p ProfileView) {
	fmt.Fprintf(o.w, "\nProfile for %s:\n", p.Name)
	fmt.Fprintf(o.w, "Total Games: %d\n", p.TotalGames)
	fmt.Fprintf(o.w, "Total Wins: %d\n", p.TotalWins)
	fmt.Fprintf(o.w, "Score: %d\n", p.Score)

	fmt.Fprintln(o.w, "Achievements:")
	for _, a := range p.Achievements {
		state := "Locked"
		if a.Unlocked {
			state = "Unlocked"
		}
		fmt.Fprintf(o.w, "- %s: %s\n", a.Description, state)
	}

	fmt.Fprintln(o.w, "Friends:")
	for _, f := range p.Friends {
		fmt.Fprintf(o.w, "- %s\n", f)
	}

	fmt.Fprintln(o.w, "Game History:")
	for _, g := range p.GameHistory {
		fmt.Fprintf(o.w, "- %s\n", g)
	}

	fmt.Fprintln(o.w, "Messages:")
	for _, m := range p.Messages {
		fmt.Fprintf(o.w, "- %s\n", m)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Fprintln(o.w, "\nLeaderboard:")
	fmt.Fprintf(o.w, "%10s%10s%15s%15s%15s\n", "Name", "Score", "Total Games", "Total Wins", "Win Rate")
	for _, e := range l.Entries {
		fmt.Fprintf(o.w, "%10s%10d%15d%15d%14.2f%%\n", e.Name, e.Score, e.TotalGames, e.TotalWins, e.WinRate)
	}
}

func (o *Output) printMessages(m Messages) {
	fmt.Fprintln(o.w, "\nMessages:")
	for _, msg := range m.Items {
		fmt.Fprintln(o.w, msg)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
