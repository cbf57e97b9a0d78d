// Package logging provides config-driven, category-scoped structured logging.
// All categories share one zap core; each category is a named child logger that
// can be switched off individually through the logging.categories config map.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config resolution
	CategoryAPI       Category = "api"       // Generation service calls
	CategoryJourney   Category = "journey"   // Request building, parsing, reconciliation
	CategorySession   Category = "session"   // Controller state transitions
	CategoryHTTP      Category = "http"      // Web surface
	CategoryCatalog   Category = "catalog"   // Campaign catalog loading
	CategoryDashboard Category = "dashboard" // Analytics exports
	CategoryTUI       Category = "tui"       // Terminal wizard
)

// Options mirrors config.LoggingConfig to avoid an import cycle.
type Options struct {
	Level       string          // debug, info, warn, error
	Format      string          // json, console
	OutputPaths []string        // defaults to stderr
	Categories  map[string]bool // per-category toggles; missing = enabled
}

var (
	mu         sync.RWMutex
	base       = zap.NewNop()
	categories map[string]bool
	loggers    = make(map[Category]*zap.SugaredLogger)
)

// Initialize builds the shared zap logger from opts and installs it.
// The returned logger is the uncategorized base, for callers that want zap fields.
func Initialize(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(opts.Format) {
	case "console", "text":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	if opts.Level != "" {
		lvl, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg.Level = lvl
	}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
		cfg.ErrorOutputPaths = opts.OutputPaths
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	Install(l, opts.Categories)
	return l, nil
}

// Install replaces the shared logger. Tests use it with zaptest observers.
func Install(l *zap.Logger, cats map[string]bool) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	defer mu.Unlock()
	base = l
	categories = cats
	loggers = make(map[Category]*zap.SugaredLogger)
}

// Base returns the uncategorized logger.
func Base() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// IsCategoryEnabled returns whether a specific category is enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabledLocked(category)
}

func categoryEnabledLocked(category Category) bool {
	if categories == nil {
		return true
	}
	enabled, exists := categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) the logger for the given category.
// Disabled categories get a no-op logger.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	var l *zap.SugaredLogger
	if categoryEnabledLocked(category) {
		l = base.Named(string(category)).Sugar()
	} else {
		l = zap.NewNop().Sugar()
	}
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Safe to call on shutdown regardless of state.
func Sync() {
	_ = Base().Sync()
}

// Level reports the enabled level of the shared core.
func Level() zapcore.Level {
	return zapcore.LevelOf(Base().Core())
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// These are no-ops if the category is disabled
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Infof(format, args...)
}

// BootWarn logs a warning to the boot category
func BootWarn(format string, args ...interface{}) {
	Get(CategoryBoot).Warnf(format, args...)
}

// API logs to the api category
func API(format string, args ...interface{}) {
	Get(CategoryAPI).Infof(format, args...)
}

// APIDebug logs debug to the api category
func APIDebug(format string, args ...interface{}) {
	Get(CategoryAPI).Debugf(format, args...)
}

// APIError logs an error to the api category
func APIError(format string, args ...interface{}) {
	Get(CategoryAPI).Errorf(format, args...)
}

// Journey logs to the journey category
func Journey(format string, args ...interface{}) {
	Get(CategoryJourney).Infof(format, args...)
}

// JourneyDebug logs debug to the journey category
func JourneyDebug(format string, args ...interface{}) {
	Get(CategoryJourney).Debugf(format, args...)
}

// JourneyWarn logs a warning to the journey category
func JourneyWarn(format string, args ...interface{}) {
	Get(CategoryJourney).Warnf(format, args...)
}

// Session logs to the session category
func Session(format string, args ...interface{}) {
	Get(CategorySession).Infof(format, args...)
}

// SessionDebug logs debug to the session category
func SessionDebug(format string, args ...interface{}) {
	Get(CategorySession).Debugf(format, args...)
}

// Catalog logs to the catalog category
func Catalog(format string, args ...interface{}) {
	Get(CategoryCatalog).Infof(format, args...)
}

// Dashboard logs to the dashboard category
func Dashboard(format string, args ...interface{}) {
	Get(CategoryDashboard).Infof(format, args...)
}

// TUI logs debug to the tui category
func TUI(format string, args ...interface{}) {
	Get(CategoryTUI).Debugf(format, args...)
}
