package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/listboard/internal/logging"
	"github.com/idilsaglam/listboard/internal/store/jsonstore"
	"github.com/idilsaglam/listboard/internal/ui"
)

func newSeedCmd(opt Options, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <path>",
		Short: "Write the default board as a JSON seed file",
		Example: `  listboard seed board.json
  listboard --seed board.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opt, *f)
			if err != nil {
				return err
			}
			logger, err := logging.New(opt.Stderr, cfg.Logging.Level)
			if err != nil {
				return err
			}
			b := jsonstore.Generated(cfg.Board.SeedGroups, opt.NewID)
			if err := jsonstore.Save(args[0], b); err != nil {
				logger.Error("write seed failed", "path", args[0], "err", err)
				return fmt.Errorf("save: %w", err)
			}
			logger.Debug("seed written", "path", args[0], "groups", len(b.Groups))

			theme := ui.ThemeNamed(cfg.Theme.Name)
			ui.OK(opt.Stdout, theme, "seed written")
			lines := []string{theme.Title.Render(args[0])}
			for i, g := range b.Groups {
				lines = append(lines, fmt.Sprintf("group %d  %s", i+1, theme.Muted.Render(fmt.Sprintf("%d items", len(g.Items)))))
			}
			ui.Panel(opt.Stdout, theme, lines)
			return nil
		},
	}
}

func newVersionCmd(opt Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(opt.Stdout, "listboard %s\n", opt.Version)
		},
	}
}
