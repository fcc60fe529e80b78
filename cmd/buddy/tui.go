package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/shopping-buddy/internal/config"
	"github.com/Veraticus/shopping-buddy/internal/tui"
	"github.com/Veraticus/shopping-buddy/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list",
		Long: `Open the full-screen list. Items load in the background; every change is
saved as soon as it is made.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			return tui.Run(cmd.Context(), s.manager, tuiOptions(s.settings.Display)...)
		},
	}

	flags := cmd.Flags()
	flags.String("theme", config.DefaultTheme, fmt.Sprintf("color theme (%s)", strings.Join(themes.Names(), ", ")))
	flags.Bool("show-help", true, "show the key help footer")
	_ = viper.BindPFlag(config.KeyDisplayTheme, flags.Lookup("theme"))
	_ = viper.BindPFlag(config.KeyDisplayShowHelp, flags.Lookup("show-help"))

	return cmd
}

// tuiOptions turns validated display settings into TUI options.
func tuiOptions(display config.DisplaySettings) []tui.Option {
	opts := []tui.Option{
		tui.WithLocale(display.Locale, display.Currency),
		tui.WithHelp(display.ShowHelp),
	}
	if theme, ok := themes.ByName(display.Theme); ok {
		opts = append(opts, tui.WithTheme(theme))
	}
	return opts
}
