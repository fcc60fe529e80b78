package main

import (
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		quantity string
		price    string
		section  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the list",
		Long: `Add an item with a quantity, unit price and store section.

Names are unique on the list, ignoring case and surrounding spaces.
A price that cannot be read counts as zero.`,
		Example: `  # Two liters of milk at 4.50 each
  buddy add Milk --qty 2 --price 4.50 --section dairy

  # Section labels work too
  buddy add "Frozen Pizza" -s Frios`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			sec := model.DefaultSection
			if section != "" {
				if sec, err = parseSection(section, s.labels); err != nil {
					return err
				}
			}

			item, err := s.manager.AddItem(cmd.Context(), shopping.Draft{
				Name:          args[0],
				QuantityText:  quantity,
				UnitPriceText: price,
				Section:       sec,
			})
			if err != nil {
				return listError(args[0], err)
			}
			if err := s.saved(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %s to %s", item.Name, s.labels.Label(item.Section))))
			fmt.Fprintf(out, "%s %s\n", cli.TotalStyle.Render("Total:"), s.money.Format(s.manager.TotalPrice()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&quantity, "qty", "q", "1", "quantity (a whole number)")
	cmd.Flags().StringVarP(&price, "price", "p", "0", "unit price")
	cmd.Flags().StringVarP(&section, "section", "s", "", "store section (default: frozen)")

	return cmd
}
