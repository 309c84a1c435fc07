// internal/cli/root.go
//
// Command-line entry for the terminal game.
// Responsibilities:
//   - Resolve runtime options from the environment and flags.
//   - Set the global zerolog level.
//   - Wire generator, round store and session onto stdin/stdout.

package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/bagels/internal/game"
	"github.com/robalobadob/bagels/internal/session"
	"github.com/robalobadob/bagels/internal/store"
)

// Config holds runtime options resolved from flags and the environment.
type Config struct {
	LogLevel string // zerolog level name
	Seed     uint64 // secret seed, used only when HasSeed is set
	HasSeed  bool
}

// ConfigFromEnv reads LOG_LEVEL and BAGELS_SEED.
func ConfigFromEnv() Config {
	cfg := Config{LogLevel: getEnv("LOG_LEVEL", "warn")}
	if v := os.Getenv("BAGELS_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed, cfg.HasSeed = n, true
		} else {
			log.Warn().Str("BAGELS_SEED", v).Msg("ignoring invalid seed")
		}
	}
	return cfg
}

// NewRootCmd builds the bagels command around in/out.
func NewRootCmd(cfg Config, in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "bagels",
		Short:         "Deduce a secret three-digit number from Fermi/Pico/Bagels clues",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(lvl)
			if cmd.Flags().Changed("seed") {
				cfg.HasSeed = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var gen *game.Generator
			if cfg.HasSeed {
				gen = game.NewSeededGenerator(cfg.Seed)
			} else {
				gen = game.NewGenerator(nil)
			}
			s := session.New(gen, in, out, store.NewMemoryStore(), log.Logger)
			return s.Run(cmd.Context())
		},
	}

	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the secret numbers (default random)")
	return root
}

// Execute runs the bagels command on the process's stdin and stdout.
func Execute() error {
	root := NewRootCmd(ConfigFromEnv(), os.Stdin, os.Stdout)
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("bagels exited")
		return err
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
