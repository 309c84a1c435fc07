// internal/session/session.go
//
// Session loop for the terminal game.
// Responsibilities:
//   - Print the rules once, then play rounds until the player declines.
//   - Drive each round: Guess #N → read → evaluate → report.
//   - Record finished rounds in the round store and log a summary at exit.
//
// Notes:
//   - A closed input stream counts as "no" at any prompt, so piping a finite
//     script into the game ends cleanly with the farewell message.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/robalobadob/bagels/internal/game"
	"github.com/robalobadob/bagels/internal/input"
	"github.com/robalobadob/bagels/internal/store"
	"github.com/robalobadob/bagels/internal/ui"
)

// SecretSource produces the secret for each new round.
type SecretSource interface {
	Generate() game.Secret
}

// Session bundles the collaborators of one play session.
type Session struct {
	secrets SecretSource
	in      *input.Reader
	out     *ui.Printer
	rounds  store.Store
	log     zerolog.Logger
}

// New constructs a Session reading player input from in and writing game text to out.
func New(secrets SecretSource, in io.Reader, out io.Writer, rounds store.Store, log zerolog.Logger) *Session {
	p := ui.NewPrinter(out)
	return &Session{
		secrets: secrets,
		in:      input.NewReader(in, p.Prompt),
		out:     p,
		rounds:  rounds,
		log:     log,
	}
}

// Run plays rounds until the player declines to continue or input ends.
// It returns an error only for failures of the input stream itself.
func (s *Session) Run(ctx context.Context) error {
	s.out.Intro()
	for {
		r, err := s.playRound()
		if r != nil && r.Finished {
			if serr := s.rounds.Save(ctx, r); serr != nil {
				return fmt.Errorf("save round: %w", serr)
			}
		}
		if err != nil {
			if errors.Is(err, input.ErrClosed) {
				break
			}
			return err
		}

		s.out.PlayAgain()
		again, err := s.in.ReadAnswer()
		if err != nil && !errors.Is(err, input.ErrClosed) {
			return fmt.Errorf("read answer: %w", err)
		}
		if !again {
			break
		}
	}

	s.out.Farewell()
	s.logSummary(ctx)
	return nil
}

// playRound runs one round to a terminal state. The round is returned even
// when input fails part-way through.
func (s *Session) playRound() (*game.Round, error) {
	r := game.NewRound(s.secrets.Generate())
	s.log.Debug().Str("round", r.ID).Msg("round started")
	s.out.RoundStart()

	for !r.Finished {
		s.out.GuessHeader(r.Turn() + 1)
		guess, err := s.in.ReadGuess()
		if err != nil {
			if errors.Is(err, input.ErrClosed) {
				s.log.Debug().Str("round", r.ID).Int("turn", r.Turn()).Msg("input closed mid-round")
				return r, err
			}
			return r, fmt.Errorf("read guess: %w", err)
		}

		res, state, err := r.ApplyGuess(guess)
		if err != nil {
			return r, err
		}
		s.log.Debug().
			Str("round", r.ID).
			Int("turn", r.Turn()).
			Ints("guess", guess[:]).
			Bool("win", res.Win).
			Msg("guess evaluated")

		switch {
		case res.Win:
			s.out.Win()
		case state == game.StateExhausted:
			s.out.Clues(res.Clues)
			s.out.GameOver()
		default:
			s.out.Clues(res.Clues)
		}
	}

	s.log.Debug().Str("round", r.ID).Str("state", string(r.State())).Int("guesses", r.Turn()).Msg("round finished")
	return r, nil
}

func (s *Session) logSummary(ctx context.Context) {
	played, won, err := s.rounds.Summary(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("round summary unavailable")
		return
	}
	s.log.Info().Int("played", played).Int("won", won).Msg("session finished")
}
