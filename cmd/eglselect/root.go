package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/eglconfig"
	"github.com/gogpu/eglconfig/profile"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	verbose      bool
	profilesPath string
}

// newRootCmd builds the command tree. Tests build a fresh tree per run.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "eglselect",
		Short: "Pick an EGL config from a recorded config table",
		Long: `eglselect runs the eglconfig selector against a YAML dump of the
configurations an EGL display reports.

A profile names the requirements: the EGL_RENDERABLE_TYPE and
EGL_SURFACE_TYPE bits a config must have, and the attributes it must match
exactly. The first config in table order that passes wins.`,
		Version:       fmt.Sprintf("%s (commit: %s, lib: %s)", version, commit, eglconfig.Version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), opts.verbose)
			return loadProfiles(opts.profilesPath)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every rejected config")
	root.PersistentFlags().StringVar(&opts.profilesPath, "profiles", "", "TOML profile file (default $XDG_CONFIG_HOME/eglselect/profiles.toml)")

	root.AddCommand(
		newSelectCmd(),
		newCheckCmd(),
		newProfilesCmd(),
	)
	return root
}

// setupLogger routes library logging to w.
func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	eglconfig.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// loadProfiles adds user profiles to the registry. An explicit path must
// exist; the default path may not.
func loadProfiles(path string) error {
	if path != "" {
		if _, err := profile.LoadFile(path); err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
		return nil
	}
	if _, err := profile.LoadDefault(); err != nil {
		eglconfig.Logger().Warn("ignoring default profile file", "path", profile.DefaultPath(), "error", err)
	}
	return nil
}
