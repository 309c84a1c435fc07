// internal/game/types.go
//
// Core type definitions for the Bagels game engine.
// Defines:
//   - Clue: per-digit hint produced for a guess (Fermi/Pico/Bagels).
//   - Secret, Guess: fixed-width digit sequences.
//   - Result: tagged evaluation outcome (clues or win).
//   - Round: state for a single in-progress or finished round.

package game

const (
	// MaxGuesses is the number of guesses the player gets per round.
	MaxGuesses = 10
	// MaxDigits is the length of the secret and of every guess.
	MaxDigits = 3
)

// Clue represents the hint emitted for a guess.
// Possible values:
//   - "Fermi":  digit is correct and in the correct position.
//   - "Pico":   digit exists in the secret but in a different position.
//   - "Bagels": no guessed digit exists in the secret at all.
type Clue string

const (
	ClueFermi  Clue = "Fermi"
	CluePico   Clue = "Pico"
	ClueBagels Clue = "Bagels"
)

// Secret is the number the player has to deduce: distinct digits in 1..9.
type Secret [MaxDigits]int

// Guess is one attempt: digits in 0..9, repeats allowed.
type Guess [MaxDigits]int

// Result is the outcome of evaluating a guess against a secret.
// Win is set only when every digit matched positionally, and Clues is then empty.
type Result struct {
	Clues []Clue
	Win   bool
}

// State is the coarse lifecycle of a round.
type State string

const (
	StatePlaying   State = "playing"   // awaiting the next guess
	StateWon       State = "won"       // secret guessed
	StateExhausted State = "exhausted" // MaxGuesses used without a win
)

// Round holds the state of a single Bagels round.
type Round struct {
	ID       string  // Unique round identifier (random hex string).
	Secret   Secret  // The number to deduce; never changes once the round starts.
	Max      int     // Maximum number of guesses allowed (MaxGuesses).
	Digits   int     // Digits per guess (MaxDigits).
	Guesses  []Guess // Guesses made so far.
	Finished bool    // True once the round is over (won or exhausted).
	Won      bool    // True if the round was finished with a win.
}
