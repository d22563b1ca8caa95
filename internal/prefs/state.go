package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jask/emojipick/internal/emoji"
)

const stateFile = "state.json"

// State is picker UI state carried between runs.
type State struct {
	Category emoji.CategoryID `json:"category"`
}

func statePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "emojipick")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFile), nil
}

func SaveState(s State) error {
	path, err := statePath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadState returns the saved state. A missing file yields the zero State,
// and an unknown category is dropped.
func LoadState() (State, error) {
	path, err := statePath()
	if err != nil {
		return State{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, err
	}
	if _, ok := emoji.LookupCategory(s.Category); !ok {
		s.Category = ""
	}
	return s, nil
}
