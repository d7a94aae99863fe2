// cmd/tide-astyle/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bethropolis/tide-astyle/internal/config"
)

var rt = &cliState{}

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Format source code with Artistic Style",
	Long:          config.PluginDescription,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// A missing .env is fine.
		_ = godotenv.Load()
		return rt.setup(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		rt.close()
	},
}

func init() {
	config.DefineFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newFormatCmd(), newConfigCmd(), newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		rt.close()
		os.Exit(1)
	}
}
