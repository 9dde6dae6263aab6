package service

import (
	"errors"

	"github.com/Noty-chan/rogue-prison/internal/game"
)

// SaveRepo is the minimal repository interface required by Bootstrap and
// Act.
type SaveRepo interface {
	GetSave(id string) (*game.SaveSlot, error)
	PutSave(s *game.SaveSlot) error
	RecordRunResult(r *game.RunResult) error
}

type HistoryRepo interface {
	ListRunResults(saveID string, limit int) ([]game.RunResult, error)
}

type PurgeRepo interface {
	DeleteSavesBefore(cutoff int64) (int64, error)
}

var (
	ErrMissingSaveID = errors.New("save id is required")
	ErrPersistence   = errors.New("save storage failed")
)

// Result is what the HTTP layer returns after every call.
type Result struct {
	SaveID string
	State  *game.State
}
