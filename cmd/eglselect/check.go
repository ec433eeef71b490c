package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/eglconfig"
	"github.com/gogpu/eglconfig/table"
)

func newCheckCmd() *cobra.Command {
	var (
		configsPath   string
		profileName   string
		surfaceFormat string
		id            int32
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check one config against a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selectorFor(profileName, surfaceFormat)
			if err != nil {
				return err
			}
			tbl, err := table.Load(configsPath)
			if err != nil {
				return err
			}
			c, ok := tbl.Lookup(id)
			if !ok {
				return fmt.Errorf("config %d not in %s", id, configsPath)
			}

			match, rej, err := sel.Match(tbl, c)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !match {
				fmt.Fprintf(out, "config %d does not match %s\n  %s\n", id, profileName, rej)
				return &eglconfig.NoMatchError{Profile: profileName, Examined: 1, Rejections: []eglconfig.Rejection{rej}}
			}
			fmt.Fprintf(out, "config %d matches %s\n", id, profileName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configsPath, "configs", "c", "", "YAML config table")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "warp-compositor", "requirement profile")
	cmd.Flags().StringVar(&surfaceFormat, "surface-format", "", "match channel sizes to a host surface format (rgba8, bgra8, r8)")
	cmd.Flags().Int32Var(&id, "id", 0, "EGL_CONFIG_ID to check")
	_ = cmd.MarkFlagRequired("configs")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
