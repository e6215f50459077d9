package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// LayoutConfig controls the printable document layout. It is loaded from an
// optional posledger.yml and can be edited without restarting the service.
type LayoutConfig struct {
	Title         string `mapstructure:"title"`
	DateFormat    string `mapstructure:"dateFormat"`
	FilenameStem  string `mapstructure:"filenameStem"`
	EmptyCategory string `mapstructure:"emptyCategory"`
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Title:         "Invoice",
		DateFormat:    "2006-01-02 15:04:05",
		FilenameStem:  "invoice",
		EmptyCategory: "-",
	}
}

type LayoutConfigHolder struct {
	current atomic.Value // holds LayoutConfig
}

func NewLayoutConfigHolder() (*LayoutConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("posledger")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/posledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POSLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultLayoutConfig()
		v.SetDefault("layout.title", defaults.Title)
		v.SetDefault("layout.dateFormat", defaults.DateFormat)
		v.SetDefault("layout.filenameStem", defaults.FilenameStem)
		v.SetDefault("layout.emptyCategory", defaults.EmptyCategory)
	}

	var cfg LayoutConfig
	if err := v.UnmarshalKey("layout", &cfg); err != nil {
		return nil, err
	}
	cfg = withLayoutDefaults(cfg)
	if err := validateLayoutConfig(cfg); err != nil {
		return nil, err
	}

	holder := &LayoutConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// The global logger is in place by the time a reload can fire;
		// this holder is built before the logger module.
		reloadLog := zap.L().Named("config.layout")

		var updated LayoutConfig
		if err := v.UnmarshalKey("layout", &updated); err != nil {
			reloadLog.Error("reload failed", zap.Error(err))
			return
		}
		updated = withLayoutDefaults(updated)
		if err := validateLayoutConfig(updated); err != nil {
			reloadLog.Warn("invalid config ignored", zap.Error(err))
			return
		}
		holder.current.Store(updated)
		reloadLog.Info("layout reloaded", zap.String("file", e.Name))
	})

	return holder, nil
}

// NewStaticLayoutConfigHolder pins the layout config; used by tests and by
// callers that do not want file watching.
func NewStaticLayoutConfigHolder(cfg LayoutConfig) *LayoutConfigHolder {
	holder := &LayoutConfigHolder{}
	holder.current.Store(withLayoutDefaults(cfg))
	return holder
}

func (h *LayoutConfigHolder) Get() LayoutConfig {
	return h.current.Load().(LayoutConfig)
}

func withLayoutDefaults(cfg LayoutConfig) LayoutConfig {
	defaults := DefaultLayoutConfig()
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = defaults.Title
	}
	if strings.TrimSpace(cfg.DateFormat) == "" {
		cfg.DateFormat = defaults.DateFormat
	}
	if strings.TrimSpace(cfg.FilenameStem) == "" {
		cfg.FilenameStem = defaults.FilenameStem
	}
	if strings.TrimSpace(cfg.EmptyCategory) == "" {
		cfg.EmptyCategory = defaults.EmptyCategory
	}
	return cfg
}

func validateLayoutConfig(cfg LayoutConfig) error {
	if strings.ContainsAny(cfg.FilenameStem, `/\`) {
		return errors.New("layout.filenameStem cannot contain path separators")
	}
	return nil
}
