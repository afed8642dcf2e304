// Package cli wires configuration, logging and the board into the
// listboard command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/listboard/internal/board"
	"github.com/idilsaglam/listboard/internal/config"
	"github.com/idilsaglam/listboard/internal/logging"
	"github.com/idilsaglam/listboard/internal/model"
	"github.com/idilsaglam/listboard/internal/store/jsonstore"
	"github.com/idilsaglam/listboard/internal/tui"
	"github.com/idilsaglam/listboard/internal/ui"
)

// Options carry the process surroundings into the command tree.
type Options struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	NewID   model.IDFunc
	// RunBoard starts the interactive board; tests replace it.
	RunBoard func(*board.Store, tui.Options) error
}

type flags struct {
	configPath string
	seedPath   string
	theme      string
	logLevel   string
}

// usageError marks errors that should exit with status 2.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt = withDefaults(opt)
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(opt)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(opt.Stderr, ui.ThemeNamed("classic"), err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(opt.Stderr, cmd.UsageString())
		return 2
	}
	return 1
}

func withDefaults(opt Options) Options {
	if opt.Version == "" {
		opt.Version = "dev"
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Getenv == nil {
		opt.Getenv = os.Getenv
	}
	if opt.NewID == nil {
		opt.NewID = model.UUIDs()
	}
	if opt.RunBoard == nil {
		opt.RunBoard = tui.Run
	}
	return opt
}

func newRootCmd(opt Options) *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "listboard",
		Short:         "Drag-and-drop list board for the terminal",
		Long:          "listboard shows groups of items side by side. Drag items between groups, edit them inline, add and delete them.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(opt, f)
		},
	}
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to config TOML (env LISTBOARD_CONFIG)")
	pf.StringVar(&f.theme, "theme", "", "theme override: classic, neon or mono")
	pf.StringVar(&f.logLevel, "log-level", "", "log level override: debug, info, warn or error")
	root.Flags().StringVar(&f.seedPath, "seed", "", "JSON seed file to start from")

	root.AddCommand(newSeedCmd(opt, &f), newVersionCmd(opt))
	return root
}

// loadConfig resolves the config path, loads it and applies flag overrides.
func loadConfig(opt Options, f flags) (config.Config, error) {
	path := f.configPath
	if path == "" {
		path = strings.TrimSpace(opt.Getenv("LISTBOARD_CONFIG"))
	}
	cfg, err := config.Load(path, config.Default())
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if f.theme != "" {
		cfg.Theme.Name = strings.ToLower(f.theme)
	}
	if f.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(f.logLevel)
	}
	if f.seedPath != "" {
		cfg.Board.SeedFile = f.seedPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, usageError{fmt.Errorf("invalid settings: %w", err)}
	}
	return cfg, nil
}

func runBoard(opt Options, f flags) error {
	cfg, err := loadConfig(opt, f)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.ForBoard(cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(opt.Stderr, "warning: close log file: %v\n", err)
		}
	}()

	initial, err := initialBoard(cfg.Board, opt.NewID)
	if err != nil {
		logger.Error("load seed failed", "seed_file", cfg.Board.SeedFile, "err", err)
		return err
	}
	logger.Info("board starting", "groups", len(initial.Groups), "items", initial.ItemCount(), "theme", cfg.Theme.Name)

	store := board.NewStore(initial, opt.NewID)
	err = opt.RunBoard(store, tui.Options{
		Theme:       ui.ThemeNamed(cfg.Theme.Name),
		Keys:        cfg.Keys,
		ColumnWidth: cfg.Board.ColumnWidth,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("board stopped", "err", err)
		return fmt.Errorf("tui: %w", err)
	}
	groups, items := store.Stats()
	logger.Info("board closed", "groups", groups, "items", items)
	return nil
}

func initialBoard(cfg config.BoardConfig, newID model.IDFunc) (model.Board, error) {
	if cfg.SeedFile == "" {
		return jsonstore.Generated(cfg.SeedGroups, newID), nil
	}
	b, err := jsonstore.Load(cfg.SeedFile, newID)
	if err != nil {
		return model.Board{}, fmt.Errorf("load seed: %w", err)
	}
	return b, nil
}
