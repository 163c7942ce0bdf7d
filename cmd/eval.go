package cmd

import (
	"errors"
	"fmt"
	"maps"

	"github.com/cottand/worlds/sentence"
	"github.com/cottand/worlds/world"
	"github.com/cottand/worlds/worlds"
	"github.com/spf13/cobra"
)

var EvalCmd = newEvalCmd()

func newEvalCmd() *cobra.Command {
	var (
		worldPath string
		choose    []string
		lenient   bool
		logLevel  *string
	)
	c := &cobra.Command{
		Use:          "eval SENTENCE",
		Short:        "Evaluate a sentence in a world",
		Long:         "Evaluate a sentence in the world read from --world and amended by --choose, printing true or false",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	c.Flags().StringVarP(&worldPath, "world", "w", "", "YAML file mapping each partitioning to its chosen part")
	c.Flags().StringArrayVarP(&choose, "choose", "c", nil, "partitioning=part choice, overrides --world (repeatable)")
	c.Flags().BoolVar(&lenient, "lenient", false, "labels of partitionings missing from the world are false, defaults to $WORLDS_LENIENT")
	logLevel = addLogLevelFlag(c)

	c.RunE = func(c *cobra.Command, args []string) error {
		cfg, q, err := setup(c, *logLevel, args[0])
		if err != nil {
			return err
		}

		w, err := readWorld(worldPath, choose)
		if err != nil {
			return errors.New(worlds.Describe(err))
		}
		cliLogger.Debug("world read", "world", w)

		var assignment sentence.Assignment = w
		if lenient || cfg.Lenient {
			assignment = w.Lenient()
		}
		value, err := q.Evaluate(assignment)
		if err != nil {
			return errors.New(worlds.Describe(err))
		}
		_, err = fmt.Fprintln(c.OutOrStdout(), value)
		return err
	}
	return c
}

func readWorld(path string, choose []string) (world.Choices, error) {
	w := world.Choices{}
	if path != "" {
		loaded, err := world.LoadFile(path)
		if err != nil {
			return nil, err
		}
		w = loaded
	}
	chosen, err := world.ParseChoices(choose)
	if err != nil {
		return nil, err
	}
	maps.Copy(w, chosen)
	return w, nil
}
