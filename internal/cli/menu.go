package cli

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/mcoot/rockpaperscissors/internal/factory"
	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/services/leaderboard"
	"github.com/mcoot/rockpaperscissors/internal/services/match"
)

const menuText = "\n1. Register\n2. Login\n3. Play Game\n4. View Profile\n5. View Leaderboard\n" +
	"6. Reset Leaderboard\n7. Add Friend\n8. Send Message\n9. View Messages\n10. Exit\nEnter your choice: "

// Menu is the interactive numbered menu
type Menu struct {
	app     *factory.App
	console *Console
	out     *Output
}

// NewMenu creates a menu reading answers from in and printing to out
func NewMenu(app *factory.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app:     app,
		console: NewConsole(in, out),
		out:     NewOutput("text", out),
	}
}

// Run shows the menu until Exit is chosen or input ends
func (m *Menu) Run(ctx context.Context) error {
	for {
		choice, err := m.console.Word(menuText)
		if err != nil {
			return endOfInput(err)
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = m.register(ctx)
		case "2":
			actionErr = m.login(ctx)
		case "3":
			actionErr = m.play(ctx)
		case "4":
			actionErr = m.viewProfile()
		case "5":
			m.viewLeaderboard()
		case "6":
			m.resetLeaderboard(ctx)
		case "7":
			actionErr = m.addFriend(ctx)
		case "8":
			actionErr = m.sendMessage(ctx)
		case "9":
			actionErr = m.viewMessages()
		case "10":
			return nil
		default:
			m.console.Println("Invalid choice. Please try again.")
		}

		if actionErr != nil {
			return endOfInput(actionErr)
		}
	}
}

// endOfInput treats running out of input as a normal exit
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) credentials() (string, string, error) {
	name, err := m.console.Word("Enter your name: ")
	if err != nil {
		return "", "", err
	}
	password, err := m.console.Word("Enter your password: ")
	if err != nil {
		return "", "", err
	}
	return name, password, nil
}

func (m *Menu) register(ctx context.Context) error {
	name, password, err := m.credentials()
	if err != nil {
		return err
	}

	_, err = m.app.AuthService.Register(ctx, name, password)
	switch {
	case err == nil:
		m.console.Printf("Registration successful. Welcome, %s!\n", name)
	case errors.Is(err, model.ErrNameTaken):
		m.console.Println("Name already taken. Please choose a different name.")
	case errors.Is(err, model.ErrInvalidName):
		m.console.Println("Names and passwords must be a single word without '|'.")
	default:
		m.console.Printf("Registration failed: %s\n", err)
	}
	return nil
}

func (m *Menu) login(ctx context.Context) error {
	name, password, err := m.credentials()
	if err != nil {
		return err
	}

	if _, err := m.app.AuthService.Login(ctx, name, password); err != nil {
		m.console.Println("Invalid name or password.")
		return nil
	}
	m.console.Printf("Login successful. Welcome, %s!\n", name)
	return nil
}

func (m *Menu) play(ctx context.Context) error {
	if _, err := m.app.MatchRunner.CurrentPlayer(); err != nil {
		m.console.Println("Please register or login first.")
		return nil
	}

	rounds, err := m.console.Int(
		"Enter the number of rounds you want to play: ",
		"Invalid input. Please enter a positive number: ",
		func(n int) bool { return n > 0 },
	)
	if err != nil {
		return err
	}

	player := match.PlayerFunc(func(ctx context.Context, round int) (model.Move, error) {
		m.console.Printf("\nRound %d:\n", round)
		n, err := m.console.Int(
			"Enter your move (0 for ROCK, 1 for PAPER, 2 for SCISSORS): ",
			"Invalid input. Please enter 0, 1, or 2: ",
			func(n int) bool { return model.Move(n).Valid() },
		)
		if err != nil {
			return 0, err
		}
		return model.ParseMove(n)
	})

	report, err := m.app.MatchRunner.Run(ctx, rounds, player, m.showRound)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			m.console.Println("Profile not found.")
			return nil
		}
		return err
	}

	r := report.Result
	m.console.Println("\nFinal Results:")
	m.console.Printf("Player Wins: %d\n", r.Wins)
	m.console.Printf("Computer Wins: %d\n", r.Losses)
	m.console.Printf("Ties: %d\n", r.Ties)
	m.console.Println(report.Verdict())
	for _, id := range report.Unlocked {
		m.console.Printf("Achievement unlocked: %s\n", id.Description())
	}
	return nil
}

func (m *Menu) showRound(r match.Round) {
	m.console.Printf("You played: %s\n", r.Player)
	m.console.Printf("Computer played: %s\n", r.Computer)
	switch r.Outcome {
	case model.OutcomeWin:
		m.console.Println("You win!")
	case model.OutcomeLoss:
		m.console.Println("Computer wins!")
	default:
		m.console.Println("It's a tie!")
	}
}

// lookup prompts for a name and returns that profile, reporting when it is missing
func (m *Menu) lookup() (*model.Profile, bool, error) {
	name, err := m.console.Word("Enter your name: ")
	if err != nil {
		return nil, false, err
	}
	p, err := m.app.Store.Get(name)
	if err != nil {
		m.console.Println("Profile not found.")
		return nil, false, nil
	}
	return p, true, nil
}

func (m *Menu) viewProfile() error {
	p, ok, err := m.lookup()
	if err != nil || !ok {
		return err
	}
	m.out.Print(NewProfileView(p))
	return nil
}

func (m *Menu) viewLeaderboard() {
	m.out.Print(Leaderboard{Entries: leaderboard.Rank(m.app.Store.All())})
}

func (m *Menu) resetLeaderboard(ctx context.Context) {
	m.app.Store.Reset(ctx)
	m.app.Session.Forget(m.app.Session.Players()...)
	m.console.Println("Leaderboard has been reset.")
}

func (m *Menu) addFriend(ctx context.Context) error {
	name, err := m.console.Word("Enter your name: ")
	if err != nil {
		return err
	}
	friend, err := m.console.Word("Enter your friend's name: ")
	if err != nil {
		return err
	}

	p, err := m.app.Store.Get(name)
	if err != nil {
		m.console.Println("Profile not found.")
		return nil
	}

	added, err := m.app.SocialService.AddFriend(p, friend)
	switch {
	case err != nil:
		m.console.Printf("Could not add friend: %s\n", err)
	case added:
		m.app.Store.Flush(ctx)
		m.console.Printf("Added %s as a friend.\n", friend)
	default:
		m.console.Printf("%s is already your friend.\n", friend)
	}
	return nil
}

func (m *Menu) sendMessage(ctx context.Context) error {
	name, err := m.console.Word("Enter your name: ")
	if err != nil {
		return err
	}
	recipient, err := m.console.Word("Enter the recipient's name: ")
	if err != nil {
		return err
	}
	text, err := m.console.Line("Enter your message: ")
	if err != nil {
		return err
	}

	p, err := m.app.Store.Get(name)
	if err != nil {
		m.console.Println("Profile not found.")
		return nil
	}

	if _, err := m.app.SocialService.SendMessage(p, recipient, text); err != nil {
		m.console.Printf("Could not send message: %s\n", err)
		return nil
	}
	m.app.Store.Flush(ctx)
	m.console.Printf("Message sent to %s: %s\n", recipient, text)
	return nil
}

func (m *Menu) viewMessages() error {
	p, ok, err := m.lookup()
	if err != nil || !ok {
		return err
	}
	m.out.Print(Messages{Items: slices.Collect(m.app.SocialService.Messages(p))})
	return nil
}
