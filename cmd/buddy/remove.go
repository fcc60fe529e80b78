package main

import (
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from the list",
		Args:    cobra.ExactArgs(1),
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

			s.manager.RequestDelete(item)
			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Remove %q from the list?", item.Name))
				if err != nil {
					s.manager.CancelDelete()
					return err
				}
				if !ok {
					s.manager.CancelDelete()
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Nothing removed."))
					return nil
				}
			}

			s.manager.ConfirmDelete(cmd.Context())
			if err := s.saved(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Removed "+item.Name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation")

	return cmd
}

func clearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from the list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			count := len(s.manager.Items())
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("The list is already empty."))
				return nil
			}

			s.manager.RequestDeleteAll()
			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Remove all %d items?", count))
				if err != nil {
					s.manager.CancelDeleteAll()
					return err
				}
				if !ok {
					s.manager.CancelDeleteAll()
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Nothing removed."))
					return nil
				}
			}

			removed := s.manager.ConfirmDeleteAll(cmd.Context())
			if err := s.saved(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed %d items", removed)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation")

	return cmd
}
