//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/cottand/worlds/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "worlds [subcommand]",
	Short:        "worlds 🌍\n evaluate and print sentences about possible worlds",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.EvalCmd)
	rootCmd.AddCommand(cmd.ShowCmd)
	rootCmd.AddCommand(cmd.LabelsCmd)
	rootCmd.AddCommand(cmd.TableCmd)
}
