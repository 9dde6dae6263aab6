package service

import (
	"encoding/json"
	"fmt"

	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/game"
	"github.com/Noty-chan/rogue-prison/internal/keys"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/progression"
)

const toastInternalError = "Error: the action failed and was undone."

// Act applies one action to a save and persists the outcome. Rejected
// actions are not errors here: the state carries the rejection toast and is
// saved like any other. A panic inside the dispatcher restores the state
// as it was before the action.
func Act(repo SaveRepo, d *progression.Dispatcher, rawSID string, a progression.Action) (*Result, error) {
	sid := keys.SaveID(rawSID)
	if sid == "" {
		return nil, ErrMissingSaveID
	}
	unlock := saveLocks.lock(sid)
	defer unlock()

	st, raw, err := loadState(repo, d, sid)
	if err != nil {
		return nil, err
	}
	before := st.Meta.LastRun

	if perr := dispatchSafely(d, st, a); perr != nil {
		logging.Error("action panicked; state restored", perr, logging.Fields{
			constants.LogFieldSaveID: sid,
			constants.LogFieldAction: a.Type,
		})
		st = restore(d, raw)
		st.UI.Toast = toastInternalError
	}

	if err := persistState(repo, d, sid, st); err != nil {
		return nil, err
	}
	recordFinishedRun(repo, sid, before, st.Meta.LastRun)
	return &Result{SaveID: sid, State: st}, nil
}

// dispatchSafely runs the dispatcher and turns a panic into an error.
// Rejections are expected and not logged.
func dispatchSafely(d *progression.Dispatcher, st *game.State, a progression.Action) (perr error) {
	defer func() {
		if r := recover(); r != nil {
			perr = fmt.Errorf("panic: %v", r)
		}
	}()
	if err := d.Dispatch(st, a); err != nil && !progression.IsRejected(err) {
		logging.Warn("action failed", logging.Fields{
			constants.LogFieldAction: a.Type,
			constants.LogFieldError:  err.Error(),
		})
	}
	return nil
}

func restore(d *progression.Dispatcher, raw []byte) *game.State {
	if raw != nil {
		var st game.State
		if err := json.Unmarshal(raw, &st); err == nil {
			return &st
		}
	}
	return d.NewState()
}

// recordFinishedRun appends a history row when the action finished a run.
// A failed write is logged; the save itself is already stored.
func recordFinishedRun(repo SaveRepo, sid string, before, after *game.RunSummary) {
	if after == nil || sameRun(before, after) {
		return
	}
	if err := repo.RecordRunResult(game.NewRunResult(sid, *after)); err != nil {
		logging.Error("failed to record run result", err, logging.Fields{
			constants.LogFieldSaveID: sid,
			constants.LogFieldRunID:  after.RunID,
		})
		return
	}
	logging.Info("run finished", logging.Fields{
		constants.LogFieldSaveID: sid,
		constants.LogFieldRunID:  after.RunID,
		constants.LogFieldResult: after.Result,
		constants.LogFieldFloor:  after.Floor,
	})
}

func sameRun(a, b *game.RunSummary) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.RunID == b.RunID && a.Result == b.Result && a.Loop == b.Loop && a.At == b.At
}
