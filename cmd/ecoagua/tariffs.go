package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func tariffsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "Inspect the tariff catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured tariffs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), "console")
			if err != nil {
				return err
			}
			defer a.Close()

			list, err := a.tariffs.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tPRICE/M3\tCURRENCY")
			for _, t := range list {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", t.Key, t.Name, t.PricePerM3, t.Currency)
			}
			return tw.Flush()
		},
	})
	return cmd
}
