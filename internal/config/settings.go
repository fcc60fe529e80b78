package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/tui/themes"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Viper keys.
const (
	KeyStorageBackend        = "storage.backend"
	KeyDatabasePath          = "database.path"
	KeyFilePath              = "storage.file_path"
	KeyDisplayLocale         = "display.locale"
	KeyDisplayCurrency       = "display.currency"
	KeyDisplayTheme          = "display.theme"
	KeyDisplayShowHelp       = "display.show_help"
	KeyDuplicateWarningDelay = "list.duplicate_warning_delay"
	KeyLogLevel              = "logging.level"
	KeyLogFormat             = "logging.format"
)

// Defaults.
const (
	DefaultBackend               = "sqlite"
	DefaultLocale                = "pt-BR"
	DefaultCurrency              = "BRL"
	DefaultTheme                 = "default"
	DefaultDuplicateWarningDelay = 3 * time.Second
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "console"
)

var backends = []string{"sqlite", "file", "memory"}

// Settings is the validated application configuration.
type Settings struct {
	Storage StorageSettings
	Logging LoggingSettings
	Display DisplaySettings
	List    ListSettings
}

// StorageSettings selects and locates the item store.
type StorageSettings struct {
	Backend      string
	DatabasePath string
	FilePath     string
}

// DisplaySettings controls how money and the TUI are shown.
type DisplaySettings struct {
	Locale   language.Tag
	Currency currency.Unit
	Theme    string
	ShowHelp bool
}

// ListSettings tunes the list manager.
type ListSettings struct {
	DuplicateWarningDelay time.Duration
}

// LoggingSettings configures slog.
type LoggingSettings struct {
	Level  string
	Format string
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	dataDir := DefaultDataDir()
	v.SetDefault(KeyStorageBackend, DefaultBackend)
	v.SetDefault(KeyDatabasePath, filepath.Join(dataDir, "buddy.db"))
	v.SetDefault(KeyFilePath, filepath.Join(dataDir, "items.json"))
	v.SetDefault(KeyDisplayLocale, DefaultLocale)
	v.SetDefault(KeyDisplayCurrency, DefaultCurrency)
	v.SetDefault(KeyDisplayTheme, DefaultTheme)
	v.SetDefault(KeyDisplayShowHelp, true)
	v.SetDefault(KeyDuplicateWarningDelay, DefaultDuplicateWarningDelay)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
}

// Load reads settings from the global viper instance.
func Load() (*Settings, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates settings from v. Missing keys fall back to
// the defaults.
func LoadFrom(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)

	backend := strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageBackend)))
	if !slices.Contains(backends, backend) {
		return nil, fmt.Errorf("%w: %s must be one of %s, got %q",
			common.ErrInvalidConfig, KeyStorageBackend, strings.Join(backends, ", "), backend)
	}

	tag, err := language.Parse(v.GetString(KeyDisplayLocale))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyDisplayLocale, err)
	}

	unit, err := currency.ParseISO(v.GetString(KeyDisplayCurrency))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyDisplayCurrency, err)
	}

	theme := strings.ToLower(strings.TrimSpace(v.GetString(KeyDisplayTheme)))
	if _, ok := themes.ByName(theme); !ok {
		return nil, fmt.Errorf("%w: %s must be one of %s, got %q",
			common.ErrInvalidConfig, KeyDisplayTheme, strings.Join(themes.Names(), ", "), theme)
	}

	delay := v.GetDuration(KeyDuplicateWarningDelay)
	if delay <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyDuplicateWarningDelay)
	}

	level := v.GetString(KeyLogLevel)
	if _, err := common.ParseLevel(level); err != nil {
		return nil, err
	}

	return &Settings{
		Storage: StorageSettings{
			Backend:      backend,
			DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
			FilePath:     ExpandPath(v.GetString(KeyFilePath)),
		},
		Display: DisplaySettings{
			Locale:   tag,
			Currency: unit,
			Theme:    theme,
			ShowHelp: v.GetBool(KeyDisplayShowHelp),
		},
		List: ListSettings{
			DuplicateWarningDelay: delay,
		},
		Logging: LoggingSettings{
			Level:  level,
			Format: v.GetString(KeyLogFormat),
		},
	}, nil
}
