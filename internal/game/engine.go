// internal/game/engine.go
//
// Core game engine for a single Bagels round.
// Responsibilities:
//   - Create new rounds around a secret (10 guesses, 3 digits).
//   - Evaluate guesses into Fermi/Pico/Bagels clues.
//   - Track state transitions: playing → won/exhausted.
//
// Notes:
//   - The engine performs no I/O; a win is reported through Result.Win and the
//     caller decides what to print.
//   - randomID() is a compact hex identifier for correlating rounds in logs.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sort"
)

// ErrRoundFinished is returned when a guess is applied to a finished round.
var ErrRoundFinished = errors.New("round finished")

// NewRound constructs a new round around secret.
func NewRound(secret Secret) *Round {
	return &Round{
		ID:      randomID(),
		Secret:  secret,
		Max:     MaxGuesses,
		Digits:  MaxDigits,
		Guesses: []Guess{},
	}
}

// ApplyGuess evaluates a guess and advances the round.
// Returns: the evaluation result, the new state, or ErrRoundFinished.
//
// State transitions:
//   - Win → Finished = true, Won = true.
//   - Else if the number of guesses reaches r.Max → Finished = true (exhausted).
func (r *Round) ApplyGuess(guess Guess) (Result, State, error) {
	if r.Finished {
		return Result{}, r.State(), ErrRoundFinished
	}

	res := Evaluate(r.Secret, guess)
	r.Guesses = append(r.Guesses, guess)

	if res.Win {
		r.Finished, r.Won = true, true
	} else if len(r.Guesses) >= r.Max {
		r.Finished = true
	}
	return res, r.State(), nil
}

// Turn is the number of guesses made so far.
func (r *Round) Turn() int { return len(r.Guesses) }

// State reports the current lifecycle state.
func (r *Round) State() State {
	if r.Finished {
		if r.Won {
			return StateWon
		}
		return StateExhausted
	}
	return StatePlaying
}

// Evaluate scores guess against secret.
//
// For each position i:
//   - guess[i] == secret[i]           → Fermi
//   - guess[i] anywhere else in secret → Pico
//   - otherwise nothing.
//
// No clue at all yields [Bagels]; three Fermi yields a win with no clues.
// Multiple clues are sorted so their order says nothing about positions.
func Evaluate(secret Secret, guess Guess) Result {
	clues := make([]Clue, 0, MaxDigits)
	fermi := 0
	for i, d := range guess {
		switch {
		case d == secret[i]:
			clues = append(clues, ClueFermi)
			fermi++
		case secret.contains(d):
			clues = append(clues, CluePico)
		}
	}

	switch {
	case len(clues) == 0:
		return Result{Clues: []Clue{ClueBagels}}
	case fermi == MaxDigits:
		return Result{Clues: []Clue{}, Win: true}
	case len(clues) > 1:
		sort.Slice(clues, func(i, j int) bool { return clues[i] < clues[j] })
	}
	return Result{Clues: clues}
}

// contains reports whether d is one of the secret's digits, at any position.
func (s Secret) contains(d int) bool {
	for _, x := range s {
		if x == d {
			return true
		}
	}
	return false
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
