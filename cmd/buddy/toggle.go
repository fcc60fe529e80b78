package main

import (
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/spf13/cobra"
)

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item>",
		Short: "Mark an item as purchased, or back to pending",
		Long:  `Flip the purchased flag of an item, named by its name or id prefix.`,
		Args:  cobra.ExactArgs(1),
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
			s.manager.TogglePurchased(cmd.Context(), item.ID)
			if err := s.saved(); err != nil {
				return err
			}

			msg := fmt.Sprintf("%s is in the cart", item.Name)
			if item.IsPurchased {
				msg = fmt.Sprintf("%s is back on the list", item.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
			return nil
		},
	}
}
