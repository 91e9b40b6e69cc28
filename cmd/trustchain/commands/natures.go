package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trustchain/internal/nature"
)

func naturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "natures",
		Short: "List the block natures this build understands",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tNATURE\tKIND\tVERSION\tPREFERRED")
			for _, n := range nature.All() {
				preferred := ""
				if nature.Preferred(n.Kind()) == n {
					preferred = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", uint64(n), n, n.Kind(), n.Version(), preferred)
			}
			return tw.Flush()
		},
	}
}
