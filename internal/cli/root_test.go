package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/bagels/internal/cli"
	"github.com/robalobadob/bagels/internal/game"
)

func TestRootCmd_SeededRoundIsWinnable(t *testing.T) {
	secret := game.NewSeededGenerator(99).Generate()
	guess := ""
	for _, d := range secret {
		guess += string(rune('0' + d))
	}

	var out bytes.Buffer
	cmd := cli.NewRootCmd(cli.Config{LogLevel: "disabled"}, strings.NewReader(guess+"\nno\n"), &out)
	cmd.SetArgs([]string{"--seed", "99"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Guess #1\n> You got it!\n")
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestRootCmd_ConfigSeed(t *testing.T) {
	secret := game.NewSeededGenerator(5).Generate()
	guess := ""
	for _, d := range secret {
		guess += string(rune('0' + d))
	}

	var out bytes.Buffer
	cmd := cli.NewRootCmd(cli.Config{LogLevel: "disabled", Seed: 5, HasSeed: true}, strings.NewReader(guess+"\n"), &out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "You got it!")
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmd(cli.Config{LogLevel: "loud"}, strings.NewReader(""), &out)
	cmd.SetArgs(nil)
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmd(cli.Config{LogLevel: "warn"}, strings.NewReader(""), &out)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BAGELS_SEED", "17")
	cfg := cli.ConfigFromEnv()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(17), cfg.Seed)

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("BAGELS_SEED", "not-a-number")
	cfg = cli.ConfigFromEnv()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.HasSeed)
}
