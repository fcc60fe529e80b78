package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/config"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/Veraticus/shopping-buddy/internal/storage"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// session bundles what one command needs: settings, the persistence gateway
// and a manager over it.
type session struct {
	settings *config.Settings
	gateway  *storage.Gateway
	manager  *shopping.Manager
	money    *cli.Money
	labels   *cli.Labels
}

// openSession loads settings and opens the configured store. The manager is
// not initialized yet; call load for commands that need the saved list.
func openSession(ctx context.Context) (*session, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, storage.Options{
		Backend:      storage.Backend(settings.Storage.Backend),
		DatabasePath: settings.Storage.DatabasePath,
		FilePath:     settings.Storage.FilePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	gateway := storage.NewGateway(store)
	return &session{
		settings: settings,
		gateway:  gateway,
		manager:  shopping.NewManager(gateway, shopping.WithDuplicateWarningDelay(settings.List.DuplicateWarningDelay)),
		money:    cli.NewMoney(settings.Display.Locale, settings.Display.Currency),
		labels:   cli.NewLabels(settings.Display.Locale),
	}, nil
}

// openLoadedSession opens a session and waits for the saved list.
func openLoadedSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}

	s.manager.Initialize(ctx)
	if err := s.manager.WaitReady(ctx); err != nil {
		s.close()
		return nil, err
	}
	if err := s.gateway.LastLoadErr(); err != nil && !errors.Is(err, common.ErrNotFound) {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("The saved list could not be read; starting with an empty list."))
	}
	return s, nil
}

func (s *session) close() {
	s.manager.Close()
	if err := s.gateway.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// saved reports a failed save as a user error. The manager already applied
// the change in memory.
func (s *session) saved() error {
	if err := s.gateway.LastSaveErr(); err != nil {
		return common.NewUserError("Your change could not be saved", err)
	}
	return nil
}

// resolveItem finds an item by name (ignoring case), full id, or an id
// prefix of at least four characters.
func resolveItem(items []model.Item, ref string) (model.Item, error) {
	ref = strings.TrimSpace(ref)
	for _, item := range items {
		if model.SameName(item.Name, ref) {
			return item, nil
		}
	}

	if id, err := uuid.Parse(ref); err == nil {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}

	if len(ref) >= 4 {
		var matches []model.Item
		for _, item := range items {
			if strings.HasPrefix(item.ID.String(), strings.ToLower(ref)) {
				matches = append(matches, item)
			}
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
	}

	return model.Item{}, common.NewUserError(fmt.Sprintf("No item matches %q", ref), common.ErrNotFound)
}

// parseSection accepts a section identifier or its display label.
func parseSection(value string, labels *cli.Labels) (model.Section, error) {
	for _, section := range model.AllSections() {
		if model.SameName(section.String(), value) || model.SameName(labels.Label(section), value) {
			return section, nil
		}
	}
	_, err := model.ParseSection(value)
	return "", common.NewUserError(fmt.Sprintf("Unknown section %q (see: buddy sections)", value), err)
}

// listError turns a rejected add or edit into a message for the user.
func listError(name string, err error) error {
	var validation *model.ValidationError
	switch {
	case errors.Is(err, common.ErrDuplicateItem):
		return common.NewUserError(fmt.Sprintf("%q is already on the list", strings.TrimSpace(name)), err)
	case errors.Is(err, common.ErrInvalidQuantity):
		return common.NewUserError("Quantity must be a whole number", err)
	case errors.As(err, &validation):
		return common.NewUserError("Item rejected: "+validation.Error(), err)
	}
	return err
}

func confirm(cmd *cobra.Command, question string) (bool, error) {
	return cli.NewLineReader(cmd.InOrStdin()).Confirm(cmd.Context(), cmd.OutOrStdout(), question)
}

func formatItem(item model.Item, money *cli.Money) string {
	check := cli.UncheckedIcon
	style := lipgloss.NewStyle()
	if item.IsPurchased {
		check = cli.CheckedIcon
		style = cli.PurchasedStyle
	}
	line := fmt.Sprintf("%s %s  %d × %s = %s",
		check,
		item.Name,
		item.Quantity,
		money.Format(item.UnitPrice),
		money.Format(item.TotalPrice()),
	)
	return style.Render(line) + "  " + cli.SubtleStyle.Render(shortID(item.ID))
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
