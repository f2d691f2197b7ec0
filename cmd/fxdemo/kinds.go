package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/effect"
	"github.com/gogpu/effect/config"
	"github.com/gogpu/effect/kernel"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the effect kinds and their pipeline keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tKEY\tDIRECT DRAW\tDEFAULTS")
			for _, k := range kernel.Defaults().Kinds() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", k, config.Key(k), yesNo(k.SupportsDirectDraw()), effect.Box(effect.NewParams(k)))
			}
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
