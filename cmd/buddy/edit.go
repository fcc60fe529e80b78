package main

import (
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/spf13/cobra"
)

func editCmd() *cobra.Command {
	var (
		name     string
		quantity string
		price    string
		section  string
	)

	cmd := &cobra.Command{
		Use:   "edit <item>",
		Short: "Change an item's name, quantity, price or section",
		Long: `Change the fields given as flags and keep the rest.

Edits are never rejected: an empty name becomes "Unnamed", a quantity below one
becomes 1, and a negative or unreadable price becomes 0. The purchased flag
is kept.`,
		Example: `  buddy edit milk --qty 3
  buddy edit 1f3a --name "Whole milk" --price 5.20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			item, err := resolveItem(s.manager.Items(), args[0])
			if err != nil {
				return err
			}

			s.manager.BeginEdit(item)
			draft := s.manager.Draft()
			flags := cmd.Flags()
			if flags.Changed("name") {
				draft.Name = name
			}
			if flags.Changed("qty") {
				draft.QuantityText = quantity
			}
			if flags.Changed("price") {
				draft.UnitPriceText = price
			}
			if flags.Changed("section") {
				if draft.Section, err = parseSection(section, s.labels); err != nil {
					s.manager.CancelEdit()
					return err
				}
			}
			s.manager.SetDraft(draft)

			if err := s.manager.CommitEdit(cmd.Context()); err != nil {
				return listError(draft.Name, err)
			}
			if err := s.saved(); err != nil {
				return err
			}

			updated, err := resolveItem(s.manager.Items(), item.ID.String())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Updated "+formatItem(updated, s.money)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVarP(&quantity, "qty", "q", "", "new quantity")
	cmd.Flags().StringVarP(&price, "price", "p", "", "new unit price")
	cmd.Flags().StringVarP(&section, "section", "s", "", "new section")

	return cmd
}
