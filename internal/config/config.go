// Package config handles configuration loading and defaults for the focus app.
// Configuration is loaded from XDG-compliant paths (typically ~/.config/focus/config.yaml).
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"focus/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the default data directory (~/.focus)
	DataDir string `yaml:"data_dir,omitempty"`

	// Session configures durations and break cadence
	Session SessionConfig `yaml:"session,omitempty"`

	// Gamification configures XP awards
	Gamification GamificationConfig `yaml:"gamification,omitempty"`

	// Streaks configures daily streak qualification
	Streaks StreaksConfig `yaml:"streaks,omitempty"`

	// Goals configures daily targets
	Goals GoalsConfig `yaml:"goals,omitempty"`

	// Notifications configures desktop notifications and speech
	Notifications NotificationConfig `yaml:"notifications,omitempty"`

	// Theme customizes the visual appearance
	Theme ThemeConfig `yaml:"theme,omitempty"`
}

// SessionConfig defines session and break durations (all in minutes).
type SessionConfig struct {
	// DefaultDuration is the suggested session length
	DefaultDuration int `yaml:"default_duration,omitempty"`

	// ShortBreak follows most sessions
	ShortBreak int `yaml:"short_break,omitempty"`

	// LongBreak follows every Nth session
	LongBreak int `yaml:"long_break,omitempty"`

	// SessionsBeforeLongBreak is N for the long-break cadence
	SessionsBeforeLongBreak int `yaml:"sessions_before_long_break,omitempty"`
}

// GamificationConfig defines XP award amounts and rates.
type GamificationConfig struct {
	// BaseXP is awarded for every completed session
	BaseXP int `yaml:"base_xp,omitempty"`

	// GoalBonus is awarded when the session goal was achieved (half for partial)
	GoalBonus int `yaml:"goal_bonus,omitempty"`

	// NoDistractionBonus is awarded for a zero-distraction session
	NoDistractionBonus int `yaml:"no_distraction_bonus,omitempty"`

	// FirstSessionBonus is awarded for the first session of the day
	FirstSessionBonus int `yaml:"first_session_bonus,omitempty"`

	// StreakMultiplier is the per-streak-day rate of the XP multiplier (capped at 2x)
	StreakMultiplier float64 `yaml:"streak_multiplier,omitempty"`

	// CriticalHitChance is the probability of a double-XP critical hit
	CriticalHitChance float64 `yaml:"critical_hit_chance,omitempty"`
}

// StreaksConfig defines daily streak qualification rules.
type StreaksConfig struct {
	// SessionsPerDay is the completed-session count that makes a day qualify
	SessionsPerDay int `yaml:"sessions_per_day,omitempty"`

	// FreezeEarnDays is the streak length interval that earns a freeze
	FreezeEarnDays int `yaml:"freeze_earn_days,omitempty"`
}

// GoalsConfig defines daily targets shown in status and stats views.
type GoalsConfig struct {
	// DailySessions is the target session count per day
	DailySessions int `yaml:"daily_sessions,omitempty"`

	// DailyFocusMinutes is the target focus time per day
	DailyFocusMinutes int `yaml:"daily_focus_minutes,omitempty"`
}

// NotificationConfig defines desktop notification and speech settings.
type NotificationConfig struct {
	// Enabled enables/disables notifications
	Enabled bool `yaml:"enabled,omitempty"`

	// Sound is the notification sound name (platform dependent)
	Sound string `yaml:"sound,omitempty"`

	// Voice enables spoken announcements (session complete, break over)
	Voice bool `yaml:"voice,omitempty"`
}

// ThemeConfig defines color settings.
type ThemeConfig struct {
	// Primary color for focused elements (hex, e.g., "#FF5733")
	Primary string `yaml:"primary,omitempty"`

	// Accent color for highlights (hex)
	Accent string `yaml:"accent,omitempty"`

	// Muted color for secondary text (hex)
	Muted string `yaml:"muted,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
		Session: SessionConfig{
			DefaultDuration:         20,
			ShortBreak:              5,
			LongBreak:               15,
			SessionsBeforeLongBreak: 4,
		},
		Gamification: GamificationConfig{
			BaseXP:             50,
			GoalBonus:          15,
			NoDistractionBonus: 20,
			FirstSessionBonus:  25,
			StreakMultiplier:   0.1,
			CriticalHitChance:  0.10,
		},
		Streaks: StreaksConfig{
			SessionsPerDay: 3,
			FreezeEarnDays: 7,
		},
		Goals: GoalsConfig{
			DailySessions:     3,
			DailyFocusMinutes: 120,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   "Glass",
			Voice:   true,
		},
		Theme: ThemeConfig{
			Primary: "#06B6D4", // Cyan
			Accent:  "#10B981", // Emerald
			Muted:   "#6B7280", // Gray
		},
	}
}

// defaultDataDir returns the default data directory path.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".focus"
	}
	return filepath.Join(home, ".focus")
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "focus")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "focus")
}

// configPath returns the path to the config file.
func configPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults.
// If no config file exists, returns default configuration. Malformed
// or missing keys fall back to their defaults per key.
func Load() (*Config, error) {
	return loadFrom(configPath())
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		// A type error still decodes every well-typed field; the mistyped
		// keys stay at their zero values and the presence-aware merge below
		// substitutes the default for each of them. Only a document that
		// cannot be parsed at all is fatal.
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	var doc yaml.Node
	_ = yaml.Unmarshal(data, &doc) // best-effort; absent doc keeps string-only merge

	cfg.mergeFromYAML(&userCfg, &doc)
	return cfg, nil
}

// mergeFromYAML layers userCfg over c. Strings merge when non-empty; numeric
// and boolean fields merge only when actually present in the YAML document,
// so explicit zeros (e.g. critical_hit_chance: 0) survive the merge while
// absent keys keep their defaults.
func (c *Config) mergeFromYAML(other *Config, doc *yaml.Node) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.Notifications.Sound != "" {
		c.Notifications.Sound = other.Notifications.Sound
	}
	if other.Theme.Primary != "" {
		c.Theme.Primary = other.Theme.Primary
	}
	if other.Theme.Accent != "" {
		c.Theme.Accent = other.Theme.Accent
	}
	if other.Theme.Muted != "" {
		c.Theme.Muted = other.Theme.Muted
	}

	if doc == nil || len(doc.Content) == 0 {
		// Can't inspect presence: only apply positive numerics.
		mergePositive(&c.Session.DefaultDuration, other.Session.DefaultDuration)
		mergePositive(&c.Session.ShortBreak, other.Session.ShortBreak)
		mergePositive(&c.Session.LongBreak, other.Session.LongBreak)
		mergePositive(&c.Session.SessionsBeforeLongBreak, other.Session.SessionsBeforeLongBreak)
		mergePositive(&c.Gamification.BaseXP, other.Gamification.BaseXP)
		mergePositive(&c.Streaks.SessionsPerDay, other.Streaks.SessionsPerDay)
		mergePositive(&c.Streaks.FreezeEarnDays, other.Streaks.FreezeEarnDays)
		return
	}

	type numField struct {
		section, key string
		tag          string // expected YAML scalar tag
		apply        func()
	}
	fields := []numField{
		{"session", "default_duration", "!!int", func() { mergePositive(&c.Session.DefaultDuration, other.Session.DefaultDuration) }},
		{"session", "short_break", "!!int", func() { mergePositive(&c.Session.ShortBreak, other.Session.ShortBreak) }},
		{"session", "long_break", "!!int", func() { mergePositive(&c.Session.LongBreak, other.Session.LongBreak) }},
		{"session", "sessions_before_long_break", "!!int", func() { mergePositive(&c.Session.SessionsBeforeLongBreak, other.Session.SessionsBeforeLongBreak) }},
		{"gamification", "base_xp", "!!int", func() { mergeNonNegative(&c.Gamification.BaseXP, other.Gamification.BaseXP) }},
		{"gamification", "goal_bonus", "!!int", func() { mergeNonNegative(&c.Gamification.GoalBonus, other.Gamification.GoalBonus) }},
		{"gamification", "no_distraction_bonus", "!!int", func() { mergeNonNegative(&c.Gamification.NoDistractionBonus, other.Gamification.NoDistractionBonus) }},
		{"gamification", "first_session_bonus", "!!int", func() { mergeNonNegative(&c.Gamification.FirstSessionBonus, other.Gamification.FirstSessionBonus) }},
		{"gamification", "streak_multiplier", "!!float", func() {
			if other.Gamification.StreakMultiplier >= 0 {
				c.Gamification.StreakMultiplier = other.Gamification.StreakMultiplier
			}
		}},
		{"gamification", "critical_hit_chance", "!!float", func() {
			if other.Gamification.CriticalHitChance >= 0 && other.Gamification.CriticalHitChance <= 1 {
				c.Gamification.CriticalHitChance = other.Gamification.CriticalHitChance
			}
		}},
		{"streaks", "sessions_per_day", "!!int", func() { mergePositive(&c.Streaks.SessionsPerDay, other.Streaks.SessionsPerDay) }},
		{"streaks", "freeze_earn_days", "!!int", func() { mergePositive(&c.Streaks.FreezeEarnDays, other.Streaks.FreezeEarnDays) }},
		{"goals", "daily_sessions", "!!int", func() { mergePositive(&c.Goals.DailySessions, other.Goals.DailySessions) }},
		{"goals", "daily_focus_minutes", "!!int", func() { mergePositive(&c.Goals.DailyFocusMinutes, other.Goals.DailyFocusMinutes) }},
		{"notifications", "enabled", "!!bool", func() { c.Notifications.Enabled = other.Notifications.Enabled }},
		{"notifications", "voice", "!!bool", func() { c.Notifications.Voice = other.Notifications.Voice }},
	}

	for _, f := range fields {
		node := yamlLookup(doc, f.section, f.key)
		if node != nil && scalarHasTag(node, f.tag) {
			f.apply()
		}
	}
}

func mergePositive(dst *int, val int) {
	if val > 0 {
		*dst = val
	}
}

func mergeNonNegative(dst *int, val int) {
	if val >= 0 {
		*dst = val
	}
}

// yamlLookup walks the given mapping path and returns the value node, or
// nil when any segment is absent.
func yamlLookup(doc *yaml.Node, path ...string) *yaml.Node {
	if doc == nil || len(path) == 0 {
		return nil
	}

	n := doc
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	for _, key := range path {
		if n == nil || n.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Kind == yaml.ScalarNode && n.Content[i].Value == key {
				next = n.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

// scalarHasTag reports whether the node is a scalar of the wanted type.
// Mistyped keys (say a word where a number belongs) fail the check and keep
// their defaults. Ints are acceptable where floats are wanted.
func scalarHasTag(n *yaml.Node, tag string) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}
	if tag == "!!float" {
		return n.Tag == "!!float" || n.Tag == "!!int"
	}
	return n.Tag == tag
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path := configPath()
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return fsutil.WriteFileAtomic(path, data, 0600)
}

// GetDataDir returns the resolved data directory path, expanding a leading ~.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}

	if c.DataDir == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return c.DataDir
	}

	if strings.HasPrefix(c.DataDir, "~/") || strings.HasPrefix(c.DataDir, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			trimmed := strings.TrimPrefix(c.DataDir, "~/")
			trimmed = strings.TrimPrefix(trimmed, `~\`)
			return filepath.Join(home, trimmed)
		}
	}
	return c.DataDir
}
