// Package portfolio persists the set of tracked tickers as a small JSON
// state file.
package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// State is the on-disk portfolio document.
type State struct {
	Assets    []string  `json:"assets"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Manager guards the state file with a mutex so scheduler tasks and CLI
// invocations in the same process cannot interleave writes.
type Manager struct {
	path  string
	mu    sync.Mutex
	state State
}

// NewManager loads the portfolio file, creating an empty portfolio when
// none exists.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		m.state = State{Assets: []string{}, CreatedAt: time.Now().UTC()}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read portfolio: %w", err)
	}
	if err := json.Unmarshal(data, &m.state); err != nil {
		return nil, fmt.Errorf("parse portfolio: %w", err)
	}
	return m, nil
}

func (m *Manager) save() error {
	m.state.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal portfolio: %w", err)
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create portfolio dir: %w", err)
		}
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write portfolio: %w", err)
	}
	return nil
}

// Add inserts a ticker. Adding an existing ticker is a no-op.
func (m *Manager) Add(ticker string) (added bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.state.Assets {
		if t == ticker {
			return false, nil
		}
	}
	m.state.Assets = append(m.state.Assets, ticker)
	sort.Strings(m.state.Assets)
	return true, m.save()
}

// Remove deletes a ticker, reporting whether it was present.
func (m *Manager) Remove(ticker string) (removed bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.state.Assets {
		if t == ticker {
			m.state.Assets = append(m.state.Assets[:i], m.state.Assets[i+1:]...)
			return true, m.save()
		}
	}
	return false, nil
}

// List returns a copy of the tracked tickers.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.state.Assets))
	copy(out, m.state.Assets)
	return out
}
