package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// envOpenAIKey is the build/environment-supplied default key. It is read
// once at process start and acts as the lowest-priority key source; a
// persisted key always wins.
var envOpenAIKey = os.Getenv("OPENAI_API_KEY")

// Store reads and writes the persisted forge settings.
type Store struct {
	// Path is the settings file location.
	Path string
}

// NewStore creates a store rooted at the default settings path
// (<user config dir>/forge/settings.json).
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, NewStoreError("failed to resolve user config directory", err)
	}
	return &Store{Path: filepath.Join(dir, "forge", "settings.json")}, nil
}

// NewStoreAt creates a store with an explicit settings file path.
func NewStoreAt(path string) *Store {
	return &Store{Path: path}
}

// Load reads the persisted settings. A missing file is a valid, expected
// state and yields the defaults (demo/fallback mode).
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, NewStoreError("failed to read settings file", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, NewStoreError("failed to parse settings file", err)
	}
	return settings, nil
}

// Save writes the settings, creating the parent directory if needed.
func (s *Store) Save(settings Settings) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return NewStoreError("failed to create settings directory", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return NewStoreError("failed to encode settings", err)
	}

	// Settings hold credentials; keep them owner-readable only.
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return NewStoreError("failed to write settings file", err)
	}
	return nil
}

// SetKey persists the OpenAI API key.
func (s *Store) SetKey(key string) error {
	settings, err := s.Load()
	if err != nil {
		return err
	}
	settings.OpenAIKey = key
	return s.Save(settings)
}

// ClearKey removes the persisted OpenAI API key.
func (s *Store) ClearKey() error {
	settings, err := s.Load()
	if err != nil {
		return err
	}
	settings.OpenAIKey = ""
	return s.Save(settings)
}

// ResolveOpenAIKey returns the effective API key: the persisted key when
// set, otherwise the environment-supplied default. Empty means no key is
// available and callers should use deterministic fallbacks.
func ResolveOpenAIKey(settings Settings) string {
	if settings.OpenAIKey != "" {
		return settings.OpenAIKey
	}
	return envOpenAIKey
}

// StoreError reports a settings persistence failure.
type StoreError struct {
	// Message is the human-readable description.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("settings store: %s (caused by: %v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("settings store: %s", e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{Message: message, Cause: cause}
}
