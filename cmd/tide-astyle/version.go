package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tide-astyle/internal/config"
	"github.com/bethropolis/tide-astyle/internal/engine"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the plugin and engine versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", config.PluginName, config.PluginVersion)

			eng, err := engine.New(rt.cfg.Engine.EngineOptions())
			if err != nil {
				fmt.Fprintf(out, "Artistic Style: unavailable (%v)\n", err)
				return nil
			}
			fmt.Fprintf(out, "Artistic Style %s (%s backend)\n", eng.Version(), rt.cfg.Engine.Backend)
			return nil
		},
	}
}
