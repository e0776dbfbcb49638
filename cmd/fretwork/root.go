package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/fretwork/pitch"
)

// envPrefix scopes environment overrides: FRETWORK_MAX_FRET, FRETWORK_TUNING, ...
const envPrefix = "FRETWORK"

// tunings maps the --tuning flag values onto instrument constructors.
var tunings = map[string]func() pitch.Tuning{
	"standard": pitch.StandardGuitar,
	"drop-d":   pitch.DropD,
	"ukulele":  pitch.StandardUkulele,
}

// app carries the CLI-wide state shared by subcommands.
type app struct {
	cfgFile string
	verbose bool
	tuning  string
	log     *zap.Logger
	v       *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "fretwork",
		Short: "Chord voicing generator for fretted instruments",
		Long: `fretwork enumerates every playable voicing of a chord on a fretted
instrument, assigns the most natural fingering to each, and ranks the
result by difficulty and neck position.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.fretwork.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.tuning, "tuning", "standard", "instrument tuning (standard, drop-d, ukulele)")

	cmd.AddCommand(newVoicingsCmd(a))
	cmd.AddCommand(newFormulasCmd(a))

	return cmd
}

// init layers configuration (flags over env over config file) and builds
// the logger. Flag values registered with the viper instance keep their
// flag defaults unless the env or the config file overrides them.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(".fretwork")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath("$HOME")
		a.v.AddConfigPath(".")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	level := zapcore.InfoLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log

	return nil
}

// selectTuning resolves the --tuning flag value.
func (a *app) selectTuning() (pitch.Tuning, error) {
	mk, ok := tunings[a.tuning]
	if !ok {
		return nil, fmt.Errorf("unknown tuning %q (want standard, drop-d or ukulele)", a.tuning)
	}

	return mk(), nil
}
