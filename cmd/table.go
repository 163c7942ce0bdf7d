package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var TableCmd = newTableCmd()

const tableLong = `Evaluate a sentence in every world over the parts it mentions.

Only parts mentioned by the sentence are listed: for table "a=1 and not b=2" the single
row is a=1, b=2. Worlds choosing any other part of a partitioning are not listed.`

func newTableCmd() *cobra.Command {
	var logLevel *string
	c := &cobra.Command{
		Use:          "table SENTENCE",
		Short:        "Evaluate a sentence in every world over the parts it mentions",
		Long:         tableLong,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	logLevel = addLogLevelFlag(c)

	c.RunE = func(c *cobra.Command, args []string) error {
		_, q, err := setup(c, *logLevel, args[0])
		if err != nil {
			return err
		}
		rows, err := q.TruthTable()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, row := range rows {
			world := row.World.String()
			if world == "" {
				world = "-"
			}
			fmt.Fprintf(tw, "%s\t%v\n", world, row.Value)
		}
		return tw.Flush()
	}
	return c
}
