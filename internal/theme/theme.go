// Package theme holds the dark/light preference of one visitor.
package theme

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/joshua-takyi/eventsphere/internal/models"
)

const (
	Dark  = "dark"
	Light = "light"

	keyPrefix = "theme:"
)

// Theme is the preference flag plus the boundary it is persisted through.
type Theme struct {
	mu     sync.RWMutex
	isDark bool
	repo   models.PreferenceRepo
	key    string
	logger *slog.Logger
}

// New returns a light theme stored under the given owner id.
func New(repo models.PreferenceRepo, owner string, logger *slog.Logger) *Theme {
	if logger == nil {
		logger = slog.Default()
	}
	return &Theme{
		repo:   repo,
		key:    keyPrefix + owner,
		logger: logger,
	}
}

func (t *Theme) IsDark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isDark
}

func (t *Theme) Name() string {
	if t.IsDark() {
		return Dark
	}
	return Light
}

// Initialize reads the stored preference. Values written by older pages as
// JSON booleans are read and rewritten as "dark"/"light".
func (t *Theme) Initialize(ctx context.Context) error {
	value, found, err := t.repo.LoadPreference(ctx, t.key)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	isDark, canonical := decode(value)
	t.mu.Lock()
	t.isDark = found && isDark
	t.mu.Unlock()

	if found && value != canonical {
		if err := t.repo.SavePreference(ctx, t.key, canonical); err != nil {
			t.logger.Warn("theme migration failed", "key", t.key, "value", value, "error", err)
		} else {
			t.logger.Debug("theme migrated", "key", t.key, "from", value, "to", canonical)
		}
	}
	return nil
}

// Toggle flips the flag and persists it before returning. The flag stays
// flipped when persistence fails; the error is logged and returned.
func (t *Theme) Toggle(ctx context.Context) (bool, error) {
	t.mu.Lock()
	t.isDark = !t.isDark
	isDark := t.isDark
	t.mu.Unlock()

	if err := t.repo.SavePreference(ctx, t.key, encode(isDark)); err != nil {
		t.logger.Error("failed to persist theme", "key", t.key, "error", err)
		return isDark, fmt.Errorf("save theme: %w", err)
	}
	return isDark, nil
}

func encode(isDark bool) string {
	if isDark {
		return Dark
	}
	return Light
}

// decode maps any stored value to the flag and its canonical encoding.
// Unknown values count as light.
func decode(value string) (bool, string) {
	switch value {
	case Dark, "true":
		return true, Dark
	default:
		return false, Light
	}
}
