package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/eglconfig"
	"github.com/gogpu/eglconfig/internal/watch"
	"github.com/gogpu/eglconfig/table"
)

// maxListedRejections caps the per-config lines printed on no match.
const maxListedRejections = 16

func newSelectCmd() *cobra.Command {
	var (
		configsPath   string
		profileName   string
		surfaceFormat string
		watchTable    bool
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the first config matching a profile",
		Example: `  eglselect select --configs pixel7.yaml
  eglselect select --configs pixel7.yaml --profile es3-window-d24s8 --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selectorFor(profileName, surfaceFormat)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !watchTable {
				return runSelect(out, configsPath, sel)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchSelect(ctx, out, configsPath, sel)
		},
	}

	cmd.Flags().StringVarP(&configsPath, "configs", "c", "", "YAML config table")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "warp-compositor", "requirement profile")
	cmd.Flags().StringVar(&surfaceFormat, "surface-format", "", "match channel sizes to a host surface format (rgba8, bgra8, r8)")
	cmd.Flags().BoolVarP(&watchTable, "watch", "w", false, "re-run whenever the config table changes")
	_ = cmd.MarkFlagRequired("configs")

	return cmd
}

// runSelect loads the table afresh and runs one selection.
func runSelect(out io.Writer, path string, sel *eglconfig.Selector) error {
	tbl, err := table.Load(path)
	if err != nil {
		return err
	}

	c, err := sel.Select(tbl)
	var nm *eglconfig.NoMatchError
	if errors.As(err, &nm) {
		printNoMatch(out, nm)
		return err
	}
	if err != nil {
		return err
	}

	d, err := eglconfig.Describe(tbl, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: config %d\n", sel.Requirements().Name, d.ID)
	printDescription(out, d)
	return nil
}

// watchSelect runs a selection now and again after every table change until
// ctx is done. Selection failures are reported, not fatal.
func watchSelect(ctx context.Context, out io.Writer, path string, sel *eglconfig.Selector) error {
	log := eglconfig.Logger()
	run := func() {
		if err := runSelect(out, path, sel); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}

	fw, err := watch.NewFileWatcher(path, func() {
		log.Info("config table changed, selecting again", "path", path)
		run()
	})
	if err != nil {
		return err
	}
	defer fw.Close()

	run()
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printDescription(out io.Writer, d eglconfig.Description) {
	fmt.Fprintf(out, "  color          R%d G%d B%d A%d (%v)\n", d.Red, d.Green, d.Blue, d.Alpha, d.ColorFormat)
	fmt.Fprintf(out, "  depth/stencil  D%d S%d (%v)\n", d.Depth, d.Stencil, d.DepthStencilFormat)
	fmt.Fprintf(out, "  samples        %d\n", d.Samples)
	fmt.Fprintf(out, "  renderable     %s\n", eglconfig.FormatValue(eglconfig.RenderableType, d.RenderableType))
	fmt.Fprintf(out, "  surface        %s\n", eglconfig.FormatValue(eglconfig.SurfaceType, d.SurfaceType))
}

func printNoMatch(out io.Writer, nm *eglconfig.NoMatchError) {
	fmt.Fprintf(out, "%s: no match among %d configs\n", nm.Profile, nm.Examined)
	if s := nm.Summary(); s != "" {
		fmt.Fprintf(out, "  first failing check: %s\n", s)
	}
	for i, r := range nm.Rejections {
		if i == maxListedRejections {
			fmt.Fprintf(out, "  ... %d more\n", len(nm.Rejections)-i)
			break
		}
		fmt.Fprintf(out, "  %s\n", r)
	}
}
