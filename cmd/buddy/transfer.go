package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/Veraticus/shopping-buddy/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as JSON",
		Long: `Write the list in the same JSON form the stores use, to a file or stdout.
The result can be read back with "buddy import".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := storage.EncodeItems(s.manager.Items())
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Exported %d items to %s", len(s.manager.Items()), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func importCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Add items from a JSON export",
		Long: `Add every item from a file written by "buddy export". Items whose name is
already on the list are skipped. Use --replace to clear the list first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			incoming, err := storage.DecodeItems(data)
			if err != nil {
				return common.NewUserError("The file is not a buddy export", err)
			}

			s, err := openLoadedSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if replace {
				s.manager.ConfirmDeleteAll(cmd.Context())
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "\nImport interrupted; items added so far are saved.")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			added, skipped := importItems(ctx, s.manager, incoming, cmd.ErrOrStderr())
			if err := s.saved(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d items", added)))
			if skipped > 0 {
				fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipped %d items already on the list", skipped)))
			}
			if handler.WasInterrupted() {
				return common.NewUserError("Import interrupted", ctx.Err())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "clear the list before importing")

	return cmd
}

// importItems adds each item through the manager, so names stay unique and
// every addition is saved. It stops early when ctx is done.
func importItems(ctx context.Context, manager *shopping.Manager, items []model.Item, progress io.Writer) (added, skipped int) {
	bar := progressbar.NewOptions(len(items),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing items"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(progress)
		}),
	)

	for _, item := range items {
		if ctx.Err() != nil {
			break
		}

		created, err := manager.AddItem(ctx, shopping.Draft{
			Name:          item.Name,
			QuantityText:  model.FormatQuantity(item.Quantity),
			UnitPriceText: model.FormatPrice(item.UnitPrice),
			Section:       item.Section,
		})
		switch {
		case errors.Is(err, common.ErrDuplicateItem):
			skipped++
		case err != nil:
			slog.Warn("skipping item", "name", item.Name, "error", err)
			skipped++
		default:
			added++
			if item.IsPurchased {
				manager.TogglePurchased(ctx, created.ID)
			}
		}

		if err := bar.Add(1); err != nil {
			slog.Warn("failed to update progress bar", "error", err)
		}
	}
	return added, skipped
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
