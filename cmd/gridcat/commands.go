// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrid/grid"
)

// Output modes accepted by --mode.
const (
	modeRows  = "rows"
	modeCols  = "cols"
	modeItems = "items"
)

// config holds the parsed command-line flags.
type config struct {
	mode    string
	crop    string
	order   string
	upper   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "gridcat [file]",
		Short: "Print a text block as a grid by rows, columns or items",
		Long: `gridcat reads equal-width lines (from a file or stdin) into a grid
and prints them through a view: rows, columns or storage order, with an
optional crop window.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg.verbose)
			err := runCat(cmd, args, cfg, logger)
			if err != nil {
				logger.Error("gridcat failed", "error", err)
			}

			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.mode, "mode", "m", modeRows, "output mode: rows, cols or items")
	f.StringVarP(&cfg.crop, "crop", "c", "", "crop window as x0:x1,y0:y1 (empty side is unbounded)")
	f.StringVar(&cfg.order, "order", "row", "storage order: row or col")
	f.BoolVar(&cfg.upper, "upper", false, "upper-case every cell before printing")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runCat(cmd *cobra.Command, args []string, cfg config, logger *slog.Logger) error {
	order, err := parseOrder(cfg.order)
	if err != nil {
		return err
	}
	var idx grid.Index2D = grid.All
	if cfg.crop != "" {
		if idx, err = parseCrop(cfg.crop); err != nil {
			return err
		}
	}

	in := cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("gridcat: %w", err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	g, err := readGrid(in, grid.WithOrder(order))
	if err != nil {
		return fmt.Errorf("gridcat: %s: %w", name, err)
	}
	logger.Debug("grid loaded", "source", name, "size", g.Size(), "order", g.Order())

	if cfg.upper {
		upperAll(g)
	}

	view, ok := g.Crop(idx)
	if !ok {
		return fmt.Errorf("gridcat: %w: %q on %v grid", errCropRange, cfg.crop, g.Size())
	}
	logger.Debug("view ready", "rect", view.Rect(), "mode", cfg.mode)

	return render(cmd.OutOrStdout(), view, cfg.mode)
}

// render prints v according to mode: one line per row or column, or every
// item in the underlying storage order on a single line.
func render(w io.Writer, v grid.Reader[rune], mode string) error {
	switch mode {
	case modeRows:
		return writeLines(w, v.RowsUnchecked(grid.All))
	case modeCols:
		return writeLines(w, v.ColsUnchecked(grid.All))
	case modeItems:
		_, err := fmt.Fprintln(w, string(grid.Collect(v.ItemsUnchecked(grid.All))))

		return err
	default:
		return fmt.Errorf("gridcat: %w: %q", errMode, mode)
	}
}

func writeLines(w io.Writer, lines grid.Iter[grid.Iter[rune]]) error {
	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		if _, err := fmt.Fprintln(w, string(grid.Collect(line))); err != nil {
			return err
		}
	}

	return nil
}
