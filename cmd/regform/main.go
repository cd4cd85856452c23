// Package main provides the regform binary entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/regform/internal/config"
	"github.com/jask/regform/internal/form"
	"github.com/jask/regform/internal/keys"
	"github.com/jask/regform/internal/logging"
	"github.com/jask/regform/internal/review"
	"github.com/jask/regform/internal/tui"
	"github.com/jask/regform/internal/wizard"
)

const (
	Version = "0.1.0"
	appName = "regform"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath  string
	logLevel    string
	noAltScreen bool
	prefill     string
}

func rootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Three-screen registration form in the terminal",
		Long: `regform collects personal, educational and additional details
over three screens, validates each screen before moving on, and shows
a read-only summary once submitted.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (TOML)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Render inline instead of the alternate screen")
	cmd.Flags().StringVar(&flags.prefill, "prefill", "", "Answers file (TOML) to start the form with")

	cmd.AddCommand(keysCmd(&flags), configCmd(&flags), checkCmd(), versionCmd())
	return cmd
}

func run(ctx context.Context, flags rootFlags, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	registry, err := keys.Load(cfg.Keys.Path)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Keys.Path).Msg("keybindings rejected, using defaults")
	}

	sessionOpts := []wizard.Option{wizard.WithLogger(logger)}
	if flags.prefill != "" {
		answers, err := form.LoadAnswers(flags.prefill)
		if err != nil {
			return err
		}
		sessionOpts = append(sessionOpts, wizard.WithAnswers(answers))
		logger.Info().Str("path", flags.prefill).Msg("answers prefilled")
	}
	session := wizard.New(sessionOpts...)
	app := tui.New(ctx, session, tui.Options{
		Keys:      registry,
		Logger:    logger,
		FirstYear: cfg.Form.FirstYear,
		YearSpan:  cfg.Form.YearSpan,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen && !flags.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	logger.Info().Msg("session started")
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if session.Submitted() {
		logSubmission(logger, session)
		_, err := io.WriteString(out, review.Build(session.Answers, session.Reference()).Text())
		return err
	}
	logger.Info().Int("screen", int(session.Screen())).Msg("session closed before submit")
	return nil
}

// logSubmission records the reference only; answers stay out of the log.
func logSubmission(logger zerolog.Logger, s *wizard.Session) {
	logger.Info().
		Str("reference", s.Reference()).
		Int("skills", len(s.Answers.Skills)).
		Msg("session closed after submit")
}

func keysCmd(flags *rootFlags) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the effective keybindings as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			registry, loadErr := keys.Load(cfg.Keys.Path)
			if write {
				if loadErr != nil {
					return loadErr
				}
				if err := registry.WriteFile(cfg.Keys.Path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.Keys.Path)
				return nil
			}
			if loadErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warn: %v\n", loadErr)
			}
			data, err := registry.EncodeTOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the bindings to the configured keybindings file")
	return cmd
}

func configCmd(flags *rootFlags) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			path := flags.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if write {
				if err := config.Save(path, cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "config:          %s\n", path)
			fmt.Fprintf(w, "ui.alt_screen:   %t\n", cfg.UI.AltScreen)
			fmt.Fprintf(w, "form.year_span:  %d\n", cfg.Form.YearSpan)
			fmt.Fprintf(w, "form.first_year: %d\n", cfg.Form.FirstYear)
			fmt.Fprintf(w, "log.path:        %s\n", cfg.Log.Path)
			fmt.Fprintf(w, "log.level:       %s\n", cfg.Log.Level)
			fmt.Fprintf(w, "keys.path:       %s\n", cfg.Keys.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the effective values to the config file")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <answers.toml>",
		Short: "Validate an answers file against every screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := form.LoadAnswers(args[0])
			if err != nil {
				return err
			}
			errs := form.ValidateAll(answers)
			w := cmd.OutOrStdout()
			if errs.Empty() {
				fmt.Fprintln(w, "ok: all screens pass")
				return nil
			}
			for _, f := range errs.Fields() {
				fmt.Fprintf(w, "screen %d  %-14s %s\n", form.ScreenOf(f), f, errs.Get(f))
			}
			return fmt.Errorf("%d field(s) fail validation", len(errs))
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
