// internal/input/reader.go
//
// Line-oriented player input.
//
// Responsibilities:
//   - Read guesses, re-prompting silently until a line is exactly MaxDigits
//     decimal digits.
//   - Read yes/no answers for the play-again prompt.
//
// Constraints:
//   • Reads block on the underlying reader; there is no timeout and no retry limit.
//   • A trailing '\r' is dropped so CRLF input behaves like LF input.
//   • Over-long lines are discarded whole and treated as invalid input.
//   • ErrClosed is returned only when the stream ends.

package input

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/robalobadob/bagels/internal/game"
)

// ErrClosed reports that the input stream ended before a line was read.
var ErrClosed = errors.New("input: stream closed")

// Reader reads player input one line at a time.
type Reader struct {
	br     *bufio.Reader
	prompt func()
}

// NewReader wraps r. prompt, if non-nil, runs before every line is read.
func NewReader(r io.Reader, prompt func()) *Reader {
	return &Reader{br: bufio.NewReader(r), prompt: prompt}
}

// ReadGuess prompts until a valid guess is entered.
func (r *Reader) ReadGuess() (game.Guess, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return game.Guess{}, err
		}
		if g, ok := ParseGuess(line); ok {
			return g, nil
		}
	}
}

// ReadAnswer reads one line and reports whether it is a case-insensitive "yes".
func (r *Reader) ReadAnswer() (bool, error) {
	line, err := r.readLine()
	if err != nil {
		return false, err
	}
	return IsAffirmative(line), nil
}

// readLine returns the next line without its terminator. A line longer than
// the read buffer is consumed in full and reported as "", which is never a
// valid guess or answer.
func (r *Reader) readLine() (string, error) {
	if r.prompt != nil {
		r.prompt()
	}
	line, isPrefix, err := r.br.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrClosed
		}
		return "", err
	}
	if !isPrefix {
		return strings.TrimSuffix(string(line), "\r"), nil
	}
	for isPrefix {
		if _, isPrefix, err = r.br.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil
			}
			return "", err
		}
	}
	return "", nil
}

// ParseGuess converts a line of exactly MaxDigits ASCII digits into a Guess.
func ParseGuess(line string) (game.Guess, bool) {
	var g game.Guess
	if len(line) != game.MaxDigits || !isDigits(line) {
		return g, false
	}
	for i := 0; i < game.MaxDigits; i++ {
		g[i] = int(line[i] - '0')
	}
	return g, true
}

// IsAffirmative reports whether s is "yes" in any letter case.
func IsAffirmative(s string) bool {
	return strings.EqualFold(s, "yes")
}

// isDigits reports whether s is all ASCII 0-9.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
