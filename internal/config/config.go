package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "America/Managua"
	defaultInterval = 5 * time.Minute

	configPathEnv     = "PATIODASH_CONFIG"
	basculaURLEnv     = "BASCULA_JSON_URL"
	generalURLEnv     = "SHEET_URL_GENERAL"
	fechasURLEnv      = "SHEET_URL_FECHAS"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
	httpAddrEnv       = "HTTP_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	HTTP       HTTPConfig       `yaml:"http"`
	Refresh    RefreshConfig    `yaml:"refresh"`
	Feeds      FeedsConfig      `yaml:"feeds"`
	Alerting   AlertingConfig   `yaml:"alerting"`
	General    GeneralConfig    `yaml:"general"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig describes the read-only API listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// RefreshConfig defines the polling cadence and calendar semantics.
type RefreshConfig struct {
	Interval string         `yaml:"interval"`
	Timezone string         `yaml:"timezone"`
	location *time.Location `yaml:"-"`
}

// Every resolves the refresh interval string, defaulting to five minutes.
func (r RefreshConfig) Every() time.Duration {
	if d, err := time.ParseDuration(r.Interval); err == nil && d > 0 {
		return d
	}
	return defaultInterval
}

// Location resolves the configured timezone to a time.Location.
func (r RefreshConfig) Location() *time.Location {
	if r.location != nil {
		return r.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// FeedConfig describes one upstream source. Strategy selects how a sheet
// feed is fetched: "csv" (published CSV export) or "html" (pubhtml table).
type FeedConfig struct {
	URL      string `yaml:"url"`
	Strategy string `yaml:"strategy"`
}

// FeedsConfig groups the three polled sources.
type FeedsConfig struct {
	Bascula FeedConfig `yaml:"bascula"`
	General FeedConfig `yaml:"general"`
	Fechas  FeedConfig `yaml:"fechas"`
}

// AlertingConfig defines the staleness threshold and outbound channel.
type AlertingConfig struct {
	Days     int            `yaml:"days"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// GeneralConfig carries the general-progress process-stage sequence. The
// list is configuration, not code: its membership has changed across
// deployments.
type GeneralConfig struct {
	ProcessOrder []string `yaml:"processOrder"`
}

// ClassifierConfig carries the Robusta allow-lists.
type ClassifierConfig struct {
	RobustaClients []string `yaml:"robustaClients"`
	RobustaPatios  []string `yaml:"robustaPatios"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(basculaURLEnv); v != "" {
		c.Feeds.Bascula.URL = v
	}
	if v := os.Getenv(generalURLEnv); v != "" {
		c.Feeds.General.URL = v
	}
	if v := os.Getenv(fechasURLEnv); v != "" {
		c.Feeds.Fechas.URL = v
	}
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Alerting.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Alerting.Telegram.ChatID = v
	}
	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Refresh.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Refresh.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}
	if override.HTTP.Addr != "" {
		base.HTTP = override.HTTP
	}

	if override.Refresh.Interval != "" {
		base.Refresh.Interval = override.Refresh.Interval
	}
	if override.Refresh.Timezone != "" {
		base.Refresh.Timezone = override.Refresh.Timezone
	}

	base.Feeds.Bascula = mergeFeed(base.Feeds.Bascula, override.Feeds.Bascula)
	base.Feeds.General = mergeFeed(base.Feeds.General, override.Feeds.General)
	base.Feeds.Fechas = mergeFeed(base.Feeds.Fechas, override.Feeds.Fechas)

	if override.Alerting.Days > 0 {
		base.Alerting.Days = override.Alerting.Days
	}
	if override.Alerting.Telegram.BotToken != "" {
		base.Alerting.Telegram.BotToken = override.Alerting.Telegram.BotToken
	}
	if override.Alerting.Telegram.ChatID != "" {
		base.Alerting.Telegram.ChatID = override.Alerting.Telegram.ChatID
	}

	if len(override.General.ProcessOrder) > 0 {
		base.General.ProcessOrder = override.General.ProcessOrder
	}
	if len(override.Classifier.RobustaClients) > 0 {
		base.Classifier.RobustaClients = override.Classifier.RobustaClients
	}
	if len(override.Classifier.RobustaPatios) > 0 {
		base.Classifier.RobustaPatios = override.Classifier.RobustaPatios
	}

	return base
}

func mergeFeed(base, override FeedConfig) FeedConfig {
	if override.URL != "" {
		base.URL = override.URL
	}
	if override.Strategy != "" {
		base.Strategy = override.Strategy
	}
	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info"},
		HTTP:    HTTPConfig{Addr: ":8080"},
		Refresh: RefreshConfig{Interval: "5m", Timezone: defaultTimezone, location: tz},
		Feeds: FeedsConfig{
			Bascula: FeedConfig{
				URL: "https://raw.githubusercontent.com/olamMat/TemperaturasRepo/refs/heads/main/JSONBascula.json",
			},
			General: FeedConfig{
				URL:      "https://docs.google.com/spreadsheets/d/e/2PACX-1vTmkOu3MtRM8A5lWnbZiSsmml38oQfDH7lymtUq2Mxao2EIgGkkAso9O6JnI0Ys1g/pub?output=csv",
				Strategy: "csv",
			},
			Fechas: FeedConfig{
				URL:      "https://docs.google.com/spreadsheets/d/e/2PACX-1vTkjuaFRpult81iqXUoM_0s0aO_Hx2NXI-Vt3b7NjydPhDjWpNt1xl_SuHxZ_8y7Q/pub?output=csv",
				Strategy: "csv",
			},
		},
		Alerting: AlertingConfig{Days: 3},
		General: GeneralConfig{
			ProcessOrder: []string{
				"No Asignado", "Tendido", "Enfarde", "Sin Catacion",
				"Analizado", "Envio", "Almacén", "Tendido/Rechazado",
			},
		},
		Classifier: ClassifierConfig{
			RobustaClients: []string{"Nueva Guinea", "El Rama"},
			RobustaPatios:  []string{"Patio Waswali"},
		},
	}
}
