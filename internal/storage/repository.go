package storage

import (
	"errors"

	"github.com/Noty-chan/rogue-prison/internal/game"
)

var ErrSaveNotFound = errors.New("save not found")

type Repository interface {
	// GetSave returns ErrSaveNotFound when no slot has the id.
	GetSave(id string) (*game.SaveSlot, error)
	// PutSave inserts or replaces the slot.
	PutSave(s *game.SaveSlot) error
	// DeleteSavesBefore removes slots last written before the unix time
	// and reports how many went.
	DeleteSavesBefore(cutoff int64) (int64, error)

	// RecordRunResult appends a history row. Recording the same outcome
	// twice is a no-op.
	RecordRunResult(r *game.RunResult) error
	// ListRunResults returns the newest rows of a save first.
	ListRunResults(saveID string, limit int) ([]game.RunResult, error)
}
