// Package save round-trips the finance-sim player state and the quiz
// profile through durable TOML documents. Decoding is tolerant of
// partial or legacy field sets: missing fields keep their documented
// defaults.
package save

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"moneyquest/internal/model"
)

// Default save file names inside the data directory.
const (
	PlayerFile  = "player.toml"
	ProfileFile = "profile.toml"
)

// EncodePlayer serializes the player state.
func EncodePlayer(state *model.PlayerState) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(state); err != nil {
		return nil, fmt.Errorf("encode player state: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePlayer parses a player save. Fields absent from the document
// keep the new-game defaults; internally-computed fields are clamped
// into range.
func DecodePlayer(data []byte) (*model.PlayerState, error) {
	state := model.NewPlayerState()
	if err := toml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decode player state: %w", err)
	}
	state.Normalize()
	return state, nil
}

// EncodeProfile serializes the quiz profile.
func EncodeProfile(profile *model.QuizSaveState) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(profile); err != nil {
		return nil, fmt.Errorf("encode quiz profile: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeProfile parses a quiz profile save with defaulting like
// DecodePlayer.
func DecodeProfile(data []byte) (*model.QuizSaveState, error) {
	profile := model.NewQuizSaveState()
	if err := toml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("decode quiz profile: %w", err)
	}
	profile.Normalize()
	return profile, nil
}

// LoadPlayer reads the player save at path, returning a fresh state
// when the file does not exist yet. A malformed file is an error; the
// caller keeps its current in-memory state.
func LoadPlayer(path string) (*model.PlayerState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPlayerState(), nil
		}
		return nil, fmt.Errorf("read player save: %w", err)
	}
	return DecodePlayer(data)
}

// WritePlayer writes the player save, creating the directory if
// needed.
func WritePlayer(path string, state *model.PlayerState) error {
	data, err := EncodePlayer(state)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// LoadProfile reads the quiz profile at path, returning a fresh
// profile when the file does not exist yet.
func LoadProfile(path string) (*model.QuizSaveState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewQuizSaveState(), nil
		}
		return nil, fmt.Errorf("read quiz profile: %w", err)
	}
	return DecodeProfile(data)
}

// WriteProfile writes the quiz profile, creating the directory if
// needed.
func WriteProfile(path string, profile *model.QuizSaveState) error {
	data, err := EncodeProfile(profile)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}
