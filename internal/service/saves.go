package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/progression"
	"github.com/Noty-chan/rogue-prison/internal/storage"
)

const (
	toastCorruptSave = "Save was corrupted and has been reset."
	toastOldSave     = "Save was from an older version and has been reset."
)

// loadState returns the stored state of a save together with the raw
// document it was decoded from. Missing saves yield a fresh state;
// unreadable or outdated ones are replaced with a fresh state and a toast.
func loadState(repo SaveRepo, d *progression.Dispatcher, sid string) (*game.State, []byte, error) {
	slot, err := repo.GetSave(sid)
	if errors.Is(err, storage.ErrSaveNotFound) {
		return d.NewState(), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var st game.State
	if err := json.Unmarshal(slot.Document, &st); err != nil {
		logging.Warn("corrupt save replaced", logging.Fields{
			constants.LogFieldSaveID: sid,
			constants.LogFieldError:  err.Error(),
		})
		fresh := d.NewState()
		fresh.UI.Toast = toastCorruptSave
		return fresh, nil, nil
	}
	if st.Version != game.SaveVersion {
		logging.Warn("outdated save replaced", logging.Fields{
			constants.LogFieldSaveID:  sid,
			constants.LogFieldVersion: st.Version,
		})
		fresh := d.NewState()
		fresh.UI.Toast = toastOldSave
		return fresh, nil, nil
	}
	return &st, slot.Document, nil
}

func persistState(repo SaveRepo, d *progression.Dispatcher, sid string, st *game.State) error {
	st.UpdatedAt = d.Now().Unix()
	doc, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}
	slot := &game.SaveSlot{ID: sid, Version: st.Version, Document: doc, UpdatedAt: st.UpdatedAt}
	if err := repo.PutSave(slot); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
