package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathbuddy/internal/config"
	"github.com/abhisek/mathbuddy/internal/logging"
	"github.com/abhisek/mathbuddy/internal/ui/theme"
)

// errIncorrect makes the process exit non-zero without printing an error.
var errIncorrect = errors.New("incorrect answer")

// cliState is the state shared by every subcommand, built once in
// PersistentPreRunE.
type cliState struct {
	cfg    config.Config
	log    *zap.Logger
	styles theme.Styles
}

var rt = &cliState{
	cfg:    config.Default(),
	log:    zap.NewNop(),
	styles: theme.Default(),
}

var rootCmd = &cobra.Command{
	Use:   "mathbuddy",
	Short: "Math practice problems for levels 1-6",
	Long: `MathBuddy generates randomized math problems for young learners
(levels 1-6) and checks their answers, accepting the usual alternate forms
such as "5/4" for "1 1/4" or "half past 3" for "3:30".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPractice,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errIncorrect) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	_ = rt.log.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MATHBUDDY_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("theme", "", "Color theme: purple, blue, green, orange or pink")

	addLevelFlags(rootCmd)
	rootCmd.Flags().Int("count", 5, "Number of problems to practice")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves the configuration (defaults, file, env, then flags) and
// builds the logger and styles.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	styles, err := theme.New(cfg.Theme)
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.log = log
	rt.styles = styles
	log.Debug("config resolved",
		zap.Int("year_level", cfg.YearLevel),
		zap.String("difficulty", cfg.Difficulty),
		zap.String("topic", cfg.Topic),
		zap.Uint64("seed", cfg.Seed),
	)
	return nil
}

// addLevelFlags registers the flags that choose what problems to generate.
func addLevelFlags(cmd *cobra.Command) {
	cmd.Flags().Int("year", 0, "Year level 1-6 (default from config)")
	cmd.Flags().String("difficulty", "", "Difficulty: easy, medium, hard or challenge")
	cmd.Flags().String("topic", "", "Topic, e.g. fractions (default: random from the level's topics)")
	cmd.Flags().Uint64("seed", 0, "Random seed for reproducible problems (0 = clock)")
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if flags.Lookup("year") == nil {
		return
	}
	if flags.Changed("year") {
		cfg.YearLevel, _ = flags.GetInt("year")
	}
	if flags.Changed("difficulty") {
		cfg.Difficulty, _ = flags.GetString("difficulty")
	}
	if flags.Changed("topic") {
		cfg.Topic, _ = flags.GetString("topic")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
}
