package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nuxtgen/pkg/templates"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFILENAME\tWRITE")
			for _, tpl := range templates.NewRegistry().Templates() {
				fmt.Fprintf(w, "%s\t%s\t%v\n", tpl.Name, tpl.Filename, tpl.Write)
			}
			return w.Flush()
		},
	}
}
