package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/signup/internal/logger"
)

// Preferences is the persistence the Manager needs.
type Preferences interface {
	Load() (Mode, bool, error)
	Save(Mode) error
}

// Manager holds the current mode for the lifetime of the program.
type Manager struct {
	mu    sync.RWMutex
	mode  Mode
	store Preferences
	log   *logger.Logger
}

// DetectDark reports whether the terminal background is dark.
func DetectDark() bool {
	return lipgloss.HasDarkBackground()
}

// NewManager picks the starting mode: the stored preference, then the
// detected terminal background, then light. A nil detectDark skips
// detection. Store read failures are logged and treated as "no preference".
func NewManager(store Preferences, detectDark func() bool, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{mode: Light, store: store, log: log.With("component", "theme")}

	if store != nil {
		stored, ok, err := store.Load()
		switch {
		case err != nil:
			m.log.Warn(err, "ignoring unreadable theme preference")
		case ok:
			m.mode = stored
			return m
		}
	}

	if detectDark != nil && detectDark() {
		m.mode = Dark
	}
	return m
}

// Mode returns the active mode.
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Palette returns the colours for the active mode.
func (m *Manager) Palette() Palette {
	return PaletteFor(m.Mode())
}

// Set switches to mode and persists it. The returned error is informational:
// the in-memory mode changes even when the write fails.
func (m *Manager) Set(mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mode = mode
	return m.persistLocked()
}

// Apply switches to mode in memory only; pair it with Persist.
func (m *Manager) Apply(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}

// Persist writes the mode that is current when it runs, so overlapping calls
// always leave the last applied mode on disk.
func (m *Manager) Persist() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persistLocked()
}

// Toggle flips between light and dark and returns the new mode.
func (m *Manager) Toggle() (Mode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mode = m.mode.Opposite()
	return m.mode, m.persistLocked()
}

// persistLocked saves m.mode; m.mu must be held.
func (m *Manager) persistLocked() error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(m.mode); err != nil {
		m.log.Warn(err, "could not persist theme preference")
		return err
	}
	m.log.WithFields(map[string]any{"theme": m.mode.String()}).Debug("theme preference saved")
	return nil
}
