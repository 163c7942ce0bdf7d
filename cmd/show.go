package cmd

import (
	"fmt"

	"github.com/cottand/worlds/format"
	"github.com/spf13/cobra"
)

var ShowCmd = newShowCmd()

// styleFlag is a format.Style that remembers whether it was set
type styleFlag struct {
	style format.Style
	set   bool
}

func (s *styleFlag) String() string { return s.style.String() }
func (s *styleFlag) Type() string   { return "style" }
func (s *styleFlag) Set(v string) error {
	s.set = true
	return s.style.UnmarshalText([]byte(v))
}

// resolve returns the flag if it was set, or the configured style
func (s *styleFlag) resolve(configured format.Style) format.Style {
	if s.set {
		return s.style
	}
	return configured
}

func newShowCmd() *cobra.Command {
	var (
		style    styleFlag
		logLevel *string
	)
	c := &cobra.Command{
		Use:          "show SENTENCE",
		Short:        "Print a sentence in canonical form",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	c.Flags().VarP(&style, "style", "s", "plain, unicode or color, defaults to $DATALOG_FORMAT")
	logLevel = addLogLevelFlag(c)

	c.RunE = func(c *cobra.Command, args []string) error {
		cfg, q, err := setup(c, *logLevel, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.OutOrStdout(), q.Show(style.resolve(cfg.Style)))
		return err
	}
	return c
}
