package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		section string
		pending bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the list grouped by section",
		Long: `Show every item grouped by store section. Unpurchased items come first
within a section, then by name. The total covers purchased items too.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			var only model.Section
			if section != "" {
				if only, err = parseSection(section, s.labels); err != nil {
					return err
				}
			}

			state := s.manager.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Shopping list"))

			if len(state.Items) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("Your list is empty. Add something with: buddy add <name>"))
				return nil
			}

			shown := 0
			for _, group := range state.Groups() {
				if only != "" && group.Section != only {
					continue
				}
				items := group.Items
				if pending {
					items = unpurchased(items)
				}
				if len(items) == 0 {
					continue
				}
				shown += len(items)

				fmt.Fprintf(out, "\n%s (%d)\n", cli.SectionStyle(group.Section).Render(s.labels.Label(group.Section)), group.Count)
				for _, item := range items {
					fmt.Fprintln(out, "  "+formatItem(item, s.money))
				}
			}
			if shown == 0 {
				fmt.Fprintln(out, cli.FormatInfo("Nothing to show."))
			}

			fmt.Fprintf(out, "\n%s %s\n", cli.TotalStyle.Render("Total:"), s.money.Format(state.TotalPrice()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", "", "only show one section")
	cmd.Flags().BoolVar(&pending, "pending", false, "hide purchased items")

	return cmd
}

func unpurchased(items []model.Item) []model.Item {
	var out []model.Item
	for _, item := range items {
		if !item.IsPurchased {
			out = append(out, item)
		}
	}
	return out
}

func totalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show what the list costs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			state := s.manager.Snapshot()
			var inCart float64
			for _, item := range state.Items {
				if item.IsPurchased {
					inCart += item.TotalPrice()
				}
			}
			total := state.TotalPrice()

			var buf bytes.Buffer
			w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total:\t%s\n", s.money.Format(total))
			fmt.Fprintf(w, "In cart:\t%s\n", s.money.Format(inCart))
			fmt.Fprintf(w, "Still to buy:\t%s", s.money.Format(total-inCart))
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(fmt.Sprintf("%d items", len(state.Items)), buf.String()))
			return nil
		},
	}
}

func sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List store sections and how many items each holds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			counts := make(map[model.Section]int)
			for _, group := range s.manager.ItemsBySection() {
				counts[group.Section] = group.Count
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SECTION\tID\tITEMS")
			fmt.Fprintln(w, strings.Repeat("-", 7)+"\t"+strings.Repeat("-", 2)+"\t"+strings.Repeat("-", 5))
			for _, section := range s.labels.Sorted() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.labels.Label(section), section, counts[section])
			}
			return w.Flush()
		},
	}
}
