package service

import (
	"fmt"

	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/keys"
)

// History lists the finished runs of a save, newest first.
func History(repo HistoryRepo, rawSID string, limit int) ([]game.RunResult, error) {
	sid := keys.SaveID(rawSID)
	if sid == "" {
		return nil, ErrMissingSaveID
	}
	rows, err := repo.ListRunResults(sid, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return rows, nil
}
