package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFormulasCmd(a *app) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "formulas",
		Short: "List the known chord formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINTERVALS")
			for _, name := range cat.Names() {
				qs, err := cat.Qualities(name)
				if err != nil {
					return err
				}
				tokens := make([]string, len(qs))
				for i, q := range qs {
					tokens[i] = q.String()
				}
				fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(tokens, " "))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&catalogPath, "formulas", "", "YAML file with extra chord formulas")

	return cmd
}
