package tui

import (
	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/tui/themes"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Money    *cli.Money
	Labels   *cli.Labels
	KeyMap   KeyMap
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Money:    cli.NewMoney(language.BrazilianPortuguese, currency.BRL),
		Labels:   cli.NewLabels(language.BrazilianPortuguese),
		KeyMap:   DefaultKeyMap(),
		Width:    80,
		Height:   24,
		ShowHelp: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLocale formats money and section names for tag in unit.
func WithLocale(tag language.Tag, unit currency.Unit) Option {
	return func(c *Config) {
		c.Money = cli.NewMoney(tag, unit)
		c.Labels = cli.NewLabels(tag)
	}
}

// WithHelp toggles the help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
