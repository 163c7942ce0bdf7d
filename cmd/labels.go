package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var LabelsCmd = newLabelsCmd()

func newLabelsCmd() *cobra.Command {
	var logLevel *string
	c := &cobra.Command{
		Use:          "labels SENTENCE",
		Short:        "List the labels of a sentence, one per line",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	logLevel = addLogLevelFlag(c)

	c.RunE = func(c *cobra.Command, args []string) error {
		_, q, err := setup(c, *logLevel, args[0])
		if err != nil {
			return err
		}
		for _, label := range q.Labels() {
			if _, err := fmt.Fprintln(c.OutOrStdout(), label); err != nil {
				return err
			}
		}
		return nil
	}
	return c
}
