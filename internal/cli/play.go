package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mcoot/numberguess/internal/dependencies/random"
	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/services/game"
)

// localRandom is the secret source for offline rounds
var localRandom random.Random = random.New()

// roundDriver applies player actions to a round and reports the resulting view
type roundDriver interface {
	Current() (Game, error)
	Guess(text string) (Game, error)
	NewGame() (Game, error)
}

func newPlayCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively",
		Long: `Play a round interactively. Type a number and press enter to guess.

Commands:
  new    start a new round (once the current one is over)
  quit   leave the game

With --local the round runs in-process and no server is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var driver roundDriver
			if local {
				driver = newLocalDriver(localRandom)
			} else {
				driver = &remoteDriver{client: client}
			}
			return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), driver)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Play offline without a server")

	return cmd
}

// runPlay reads one action per line until quit or end of input
func runPlay(in io.Reader, out io.Writer, driver roundDriver) error {
	g, err := driver.Current()
	if err != nil {
		return err
	}
	renderRound(out, g)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "q":
			return nil
		case "new":
			if g.NewGameLocked {
				fmt.Fprintln(out, "Finish this round first.")
				continue
			}
			g, err = driver.NewGame()
		default:
			if g.SubmitLocked {
				fmt.Fprintln(out, `Round over. Type "new" to play again or "quit" to leave.`)
				continue
			}
			g, err = driver.Guess(line)
		}
		if err != nil {
			return err
		}
		renderRound(out, g)
	}
}

// renderRound prints the terminal rendering of a round
func renderRound(out io.Writer, g Game) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "GUESS A NUMBER BETWEEN 0 AND 100")
	fmt.Fprintf(out, "%d Trials Remaining\n", g.TrialsRemaining)
	if g.Feedback != "" {
		fmt.Fprintln(out, g.Feedback)
	}
	if g.IsOver() {
		fmt.Fprintln(out, `Type "new" to play again or "quit" to leave.`)
	}
}

// remoteDriver plays the signed-in player's round on the server
type remoteDriver struct {
	client *Client
}

func (d *remoteDriver) Current() (Game, error) {
	var g Game
	err := d.client.Get("/api/v1/game", &g)
	return g, err
}

func (d *remoteDriver) Guess(text string) (Game, error) {
	var g Game
	err := d.client.Post("/api/v1/game/guess", map[string]string{"text": text}, &g)
	return g, err
}

func (d *remoteDriver) NewGame() (Game, error) {
	var g Game
	err := d.client.Post("/api/v1/game", nil, &g)
	return g, err
}

// localDriver runs the round rules in-process
type localDriver struct {
	state  model.GameState
	random random.Random
}

func newLocalDriver(r random.Random) *localDriver {
	return &localDriver{
		state:  model.NewNotStartedGame("local"),
		random: r,
	}
}

func (d *localDriver) Current() (Game, error) {
	if d.state.Status == model.GameStatusNotStarted {
		return d.NewGame()
	}
	return gameFromState(d.state), nil
}

func (d *localDriver) Guess(text string) (Game, error) {
	d.state = game.SubmitGuess(game.SetGuessText(d.state, text))
	return gameFromState(d.state), nil
}

func (d *localDriver) NewGame() (Game, error) {
	d.state = game.Start(d.state, model.GameID(uuid.NewString()), game.DrawSecret(d.random))
	return gameFromState(d.state), nil
}

// gameFromState builds the same view the API returns, hiding the secret until the round ends
func gameFromState(s model.GameState) Game {
	g := Game{
		ID:              string(s.ID),
		Status:          string(s.Status),
		GuessText:       s.GuessText,
		TrialsRemaining: s.TrialsRemaining,
		MaxTrials:       model.MaxTrials,
		Feedback:        s.Feedback,
		InputLocked:     s.InputLocked,
		SubmitLocked:    s.SubmitLocked,
		NewGameLocked:   s.NewGameLocked,
		LastGuess:       s.LastGuess,
	}
	if s.IsOver() {
		g.SecretNumber = s.SecretNumber
	}
	return g
}
