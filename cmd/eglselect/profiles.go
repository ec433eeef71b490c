package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/eglconfig"
	"github.com/gogpu/eglconfig/profile"
)

func newProfilesCmd() *cobra.Command {
	var showList bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List requirement profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range profile.List() {
				req, _ := profile.Get(name)
				fmt.Fprintln(out, req)
				if showList {
					fmt.Fprintf(out, "  %v\n", attribList(req))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showList, "attrib-list", false, "also print the EGL_NONE-terminated list in hex")
	return cmd
}

func attribList(req eglconfig.Requirements) []string {
	list := req.AttribList()
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = fmt.Sprintf("0x%X", v)
	}
	return out
}
