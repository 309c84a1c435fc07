// internal/ui/printer.go
//
// Player-facing text for the terminal game.
// Every line the player sees is written here; the game engine and the input
// reader never print.
//
// Styles are built from a renderer bound to the output writer, so colour is
// emitted only when that writer is a terminal.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/bagels/internal/game"
)

var (
	colorFermi  = lipgloss.Color("#2CD7C7")
	colorPico   = lipgloss.Color("#F4D03F")
	colorBagels = lipgloss.Color("#8A9BA8")
	colorError  = lipgloss.Color("#E74C3C")
)

type styles struct {
	title  lipgloss.Style
	fermi  lipgloss.Style
	pico   lipgloss.Style
	bagels lipgloss.Style
	win    lipgloss.Style
	lose   lipgloss.Style
	muted  lipgloss.Style
}

// Printer writes game text to out.
type Printer struct {
	out io.Writer
	st  styles
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		st: styles{
			title:  r.NewStyle().Bold(true),
			fermi:  r.NewStyle().Foreground(colorFermi).Bold(true),
			pico:   r.NewStyle().Foreground(colorPico),
			bagels: r.NewStyle().Foreground(colorBagels),
			win:    r.NewStyle().Foreground(colorFermi).Bold(true),
			lose:   r.NewStyle().Foreground(colorError),
			muted:  r.NewStyle().Foreground(colorBagels),
		},
	}
}

// Intro prints the rules once per session.
func (p *Printer) Intro() {
	p.line(p.st.title.Render(fmt.Sprintf("I am thinking of a secret %d digit number. No digit will be repeated.", game.MaxDigits)))
	p.line("Here are some clues:")
	p.line(fmt.Sprintf(" '%s'   - When your guess has the correct digit in the wrong place.", p.clue(game.CluePico)))
	p.line(fmt.Sprintf(" '%s'  - When your guess has the correct digit in the correct place.", p.clue(game.ClueFermi)))
	p.line(fmt.Sprintf(" '%s' - When your guess has no correct digits.", p.clue(game.ClueBagels)))
	p.line(fmt.Sprintf("You have %d guesses.", game.MaxGuesses))
}

// RoundStart announces that a new secret has been drawn.
func (p *Printer) RoundStart() { p.line("I have thought of a number.") }

// GuessHeader prints the turn counter, starting at 1.
func (p *Printer) GuessHeader(n int) { p.line(fmt.Sprintf("Guess #%d", n)) }

// Prompt prints the input marker without a newline.
func (p *Printer) Prompt() { fmt.Fprint(p.out, p.st.muted.Render(">")+" ") }

// Clues prints the clue tokens separated by single spaces.
func (p *Printer) Clues(clues []game.Clue) {
	parts := make([]string, len(clues))
	for i, c := range clues {
		parts[i] = p.clue(c)
	}
	p.line(strings.Join(parts, " "))
}

// Win congratulates the player on guessing the secret.
func (p *Printer) Win() { p.line(p.st.win.Render("You got it!")) }

// GameOver reports that the round ended without a win.
func (p *Printer) GameOver() { p.line(p.st.lose.Render("Sorry, that's a game over!")) }

// PlayAgain asks whether to start another round.
func (p *Printer) PlayAgain() { p.line("Play again? Answer <Yes/no>: ") }

// Farewell prints the closing line of the session.
func (p *Printer) Farewell() { p.line("Thanks for playing!") }

func (p *Printer) clue(c game.Clue) string {
	switch c {
	case game.ClueFermi:
		return p.st.fermi.Render(string(c))
	case game.CluePico:
		return p.st.pico.Render(string(c))
	default:
		return p.st.bagels.Render(string(c))
	}
}

func (p *Printer) line(s string) { fmt.Fprintln(p.out, s) }
