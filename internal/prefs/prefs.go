// Package prefs persists the dashboard's locale and theme choices.
package prefs

import (
	"fmt"
	"sync"

	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/util"
)

// Preference store keys.
const (
	KeyLocale = "portalLang"
	KeyTheme  = "portalTheme"
)

// Store is an opaque key-value store. Get returns "" for a missing key.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Preferences reads and writes display choices through a Store.
type Preferences struct {
	store Store
}

// New creates a preferences adapter over store.
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Load returns the stored preferences. Missing, unrecognized or unreadable
// values fall back to the defaults.
func (p *Preferences) Load() model.Preferences {
	out := model.DefaultPreferences()

	if v, err := p.store.Get(KeyLocale); err != nil {
		util.Warn("Failed to read %s: %v", KeyLocale, err)
	} else if loc := model.Locale(v); loc == model.LocaleZH || loc == model.LocaleEN {
		out.Locale = loc
	}

	if v, err := p.store.Get(KeyTheme); err != nil {
		util.Warn("Failed to read %s: %v", KeyTheme, err)
	} else if th := model.Theme(v); th == model.ThemeDay || th == model.ThemeNight {
		out.Theme = th
	}

	return out
}

// SetLocale persists the locale.
func (p *Preferences) SetLocale(loc model.Locale) error {
	if err := p.store.Set(KeyLocale, string(loc)); err != nil {
		return fmt.Errorf("failed to save locale: %w", err)
	}
	return nil
}

// SetTheme persists the theme.
func (p *Preferences) SetTheme(theme model.Theme) error {
	if err := p.store.Set(KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// MemoryStore is a Store that lives only for the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

// Set implements Store.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
