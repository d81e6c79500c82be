package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"peoplepicker/internal/config"
	"peoplepicker/internal/logging"
	"peoplepicker/internal/people"
	"peoplepicker/internal/ui"
)

type options struct {
	configPath string
	peopleFile string
	debounce   time.Duration
	logFile    string
	logLevel   string
	noMouse    bool
}

// runFunc starts the program once settings are resolved
type runFunc func(ctx context.Context, out io.Writer, cfg *config.Config) error

func newRootCmd() *cobra.Command {
	return newRootCmdWith(run)
}

func newRootCmdWith(start runFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "peoplepicker",
		Short:         "Search a list of people by name and pick one",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return start(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.peopleFile, "people", "", "JSON file with the people to search (default: built-in list)")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", 300*time.Millisecond, "Quiet period before the list is filtered")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file; empty string disables logging")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := configService(opts)
			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", svc.Path())
			}
			if err := svc.SaveToPath(config.DefaultConfig(), svc.Path()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configService(opts).Path())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func configService(opts *options) config.Service {
	if opts.configPath != "" {
		return config.NewServiceAt(opts.configPath)
	}
	return config.NewService()
}

// loadSettings reads the config file and applies the flags the user set
func loadSettings(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := configService(opts).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("people") {
		cfg.PeopleFile = opts.peopleFile
	}
	if flags.Changed("debounce") {
		cfg.Debounce = config.Duration{Duration: opts.debounce}
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("no-mouse") {
		cfg.Mouse = !opts.noMouse
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run starts the program and prints the chosen person, if any, once it exits
func run(ctx context.Context, out io.Writer, cfg *config.Config) error {
	logger, level, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	source, err := people.Load(cfg.PeopleFile)
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}
	logger.Info("starting",
		zap.Int("people", source.Len()),
		zap.String("people_file", cfg.PeopleFile),
		zap.Duration("debounce", cfg.Debounce.Duration),
		zap.Stringer("log_level", level))

	model := ui.NewModel(ui.Options{
		Config: cfg,
		People: source.All(),
		Logger: logger,
	})
	defer model.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}

	if selected, ok := model.Widget().Selected(); ok {
		logger.Info("selection", zap.String("person", selected.String()))
		fmt.Fprintln(out, selected.String())
	}
	return nil
}
