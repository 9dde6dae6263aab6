package service

import (
	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/keys"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/progression"
)

// Bootstrap opens a save. An empty id mints a new save with a fresh state;
// any other id is loaded, repaired if needed, and written back so its
// expiry clock restarts.
func Bootstrap(repo SaveRepo, d *progression.Dispatcher, rawSID string) (*Result, error) {
	sid := keys.SaveID(rawSID)
	if sid == "" {
		sid = keys.NewSaveID()
		st := d.NewState()
		if err := persistState(repo, d, sid, st); err != nil {
			return nil, err
		}
		logging.Info("save created", logging.Fields{constants.LogFieldSaveID: sid})
		return &Result{SaveID: sid, State: st}, nil
	}

	unlock := saveLocks.lock(sid)
	defer unlock()

	st, _, err := loadState(repo, d, sid)
	if err != nil {
		return nil, err
	}
	if err := persistState(repo, d, sid, st); err != nil {
		return nil, err
	}
	return &Result{SaveID: sid, State: st}, nil
}
